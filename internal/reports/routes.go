package reports

import (
	"net/http"

	"github.com/MemberTrackr/MT-Backend/internal/auth"
	"github.com/MemberTrackr/MT-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	verifier := auth.TokenInfo{}

	r.Get("/user/{userId}", UserReportsHandler)
	r.Get("/{id}", ReportHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(verifier))
		r.Post("/", CreateReportHandler)
		r.Put("/{id}", UpdateReportHandler)
	})

	return r
}
