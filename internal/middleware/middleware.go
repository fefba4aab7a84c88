package middleware

import (
	"context"
	"net/http"

	"github.com/MemberTrackr/MT-Backend/internal/utils"
)

// TokenVerifier checks a bearer token and returns the user ID it is bound to.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// AuthMiddleware guards protected routes. The client sends its token in the
// x-auth-token header; on success the bound user ID is injected into the
// request context for handlers downstream.
func AuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("x-auth-token")
			if token == "" {
				http.Error(w, "No token, authorization denied", http.StatusUnauthorized)
				return
			}

			userID, err := verifier.VerifyToken(token)
			if err != nil {
				http.Error(w, "Token is not valid", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), utils.ContextUserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

var allowed = map[string]struct{}{
	"http://localhost:5173":               {},
	"http://localhost:5174":               {},
	"https://membertrackr.github.io":      {},
	"https://app.membertrackr.dev":        {},
	"https://mt-backend.onrender.com":     {},
	"https://trackr-dev.membertrackr.dev": {},
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// Echo the origin back only if it’s on our allow-list
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin") // important for caches
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods",
				"GET, POST, PUT, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers",
				"Content-Type, x-auth-token")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
