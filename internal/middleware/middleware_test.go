package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MemberTrackr/MT-Backend/internal/middleware"
	"github.com/MemberTrackr/MT-Backend/internal/utils"
)

// mockVerifier implements middleware.TokenVerifier without any signing key.
type mockVerifier struct {
	userID string
	err    error
}

func (m mockVerifier) VerifyToken(token string) (string, error) {
	return m.userID, m.err
}

// callWithToken wraps a simple 200-OK inner handler in the provided middleware,
// optionally setting the x-auth-token header, and returns the recorded response.
func callWithToken(t *testing.T, mw func(http.Handler) http.Handler, token string) *httptest.ResponseRecorder {
	t.Helper()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := mw(inner)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// TestAuthMiddleware_MissingToken verifies that a request without an
// x-auth-token header receives a 401 response.
func TestAuthMiddleware_MissingToken(t *testing.T) {
	verifier := mockVerifier{}
	mw := middleware.AuthMiddleware(verifier)

	rec := callWithToken(t, mw, "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "No token") {
		t.Errorf("expected body to contain %q, got: %q", "No token", body)
	}
}

// TestAuthMiddleware_InvalidToken verifies that a verifier error (expired,
// forged, malformed) results in a 401 response.
func TestAuthMiddleware_InvalidToken(t *testing.T) {
	verifier := mockVerifier{err: errors.New("token is expired")}
	mw := middleware.AuthMiddleware(verifier)

	rec := callWithToken(t, mw, "some-bad-token")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// TestAuthMiddleware_ValidToken verifies that a request with a verifiable
// token receives a 200 response and that the userID is injected into the
// request context.
func TestAuthMiddleware_ValidToken(t *testing.T) {
	const wantUserID = "test-user-123"

	verifier := mockVerifier{userID: wantUserID}

	// inner handler reads and checks the userID from context
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "userID not in context", http.StatusInternalServerError)
			return
		}
		if gotUserID != wantUserID {
			http.Error(w, "wrong userID in context: "+gotUserID, http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	mw := middleware.AuthMiddleware(verifier)
	handler := mw(inner)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("x-auth-token", "valid-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}
}

// TestCORSMiddleware_Preflight verifies that an OPTIONS request from an
// allowed origin is answered directly with 204 and the CORS headers.
func TestCORSMiddleware_Preflight(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("inner handler should not run for preflight")
	})
	handler := middleware.CORSMiddleware(inner)

	req := httptest.NewRequest(http.MethodOptions, "/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("expected origin echoed back, got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "x-auth-token") {
		t.Errorf("expected x-auth-token in allowed headers, got %q", got)
	}
}

// TestCORSMiddleware_UnknownOrigin verifies that origins off the allow-list
// get no Access-Control-Allow-Origin header.
func TestCORSMiddleware_UnknownOrigin(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.CORSMiddleware(inner)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allow-origin header, got %q", got)
	}
}
