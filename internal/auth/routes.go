package auth

import (
	"net/http"

	"github.com/MemberTrackr/MT-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	verifier := TokenInfo{}

	r.Post("/register", RegisterHandler)
	r.Post("/login", LoginHandler)
	r.Get("/users", UsersHandler)
	r.Get("/users/{id}", UserHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(verifier))
		r.Get("/me", MeHandler)
	})

	return r
}
