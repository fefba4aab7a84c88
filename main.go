package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/MemberTrackr/MT-Backend/internal/auth"
	"github.com/MemberTrackr/MT-Backend/internal/db"
	"github.com/MemberTrackr/MT-Backend/internal/middleware"
	"github.com/MemberTrackr/MT-Backend/internal/reports"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	auth.Init()
	reports.Init()
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Get("/", RootHandler)

	r.Mount("/auth", auth.SetupRoutes())
	r.Mount("/reports", reports.SetupRoutes())

	fmt.Println("Server listening on port :" + port + "...")

	http.ListenAndServe("0.0.0.0:"+port, r)
}
