package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newFakeServer stands in for the backend, checking token transport and
// serving canned responses.
func newFakeServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if creds["email"] != "alice@example.com" || creds["password"] != "pw1" {
			http.Error(w, "Invalid Credentials", http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(AuthResult{
			Token: "tok-abc",
			User:  User{ID: "u1", Name: "Alice", Email: "alice@example.com"},
		})
	})

	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-auth-token") != "tok-abc" {
			http.Error(w, "Token is not valid", http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(User{ID: "u1", Name: "Alice", Email: "alice@example.com"})
	})

	mux.HandleFunc("GET /reports/user/u1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Report{
			{ID: "r1", UserID: "u1", Day: 1, Date: "2024-01-01"},
			{ID: "r2", UserID: "u1", Day: 2, Date: "2024-01-02"},
		})
	})

	mux.HandleFunc("PUT /reports/r1", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-auth-token") == "" {
			http.Error(w, "No token, authorization denied", http.StatusUnauthorized)
			return
		}
		body, _ := io.ReadAll(r.Body)
		// Echo the raw body back in a header so tests can inspect the wire shape.
		w.Header().Set("X-Raw-Body", string(body))
		json.NewEncoder(w).Encode(Report{ID: "r1", UserID: "u1", Day: 1, Content: "updated"})
	})

	mux.HandleFunc("GET /reports/missing", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Report not found", http.StatusNotFound)
	})

	return httptest.NewServer(mux)
}

func TestLoginAndMe(t *testing.T) {
	srv := newFakeServer(t)
	defer srv.Close()

	client := New(srv.URL)
	ctx := context.Background()

	result, err := client.Login(ctx, "alice@example.com", "pw1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token != "tok-abc" || result.User.ID != "u1" {
		t.Errorf("unexpected login result: %+v", result)
	}

	// Without a token /auth/me is rejected.
	if _, err := client.Me(ctx); err == nil {
		t.Error("expected Me to fail without a token")
	}

	client.SetToken(result.Token)
	user, err := client.Me(ctx)
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if user.ID != "u1" {
		t.Errorf("expected user u1, got %q", user.ID)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	srv := newFakeServer(t)
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.Login(context.Background(), "alice@example.com", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", apiErr.Status)
	}
	if !strings.Contains(apiErr.Message, "Invalid Credentials") {
		t.Errorf("expected server message, got %q", apiErr.Message)
	}
}

func TestReportsFor(t *testing.T) {
	srv := newFakeServer(t)
	defer srv.Close()

	client := New(srv.URL)
	reports, err := client.ReportsFor(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ReportsFor: %v", err)
	}
	if len(reports) != 2 || reports[0].Day != 1 || reports[1].Day != 2 {
		t.Errorf("unexpected reports: %+v", reports)
	}
}

// TestUpdateReportWireShape verifies the day field is left off the wire
// entirely when not being changed.
func TestUpdateReportWireShape(t *testing.T) {
	srv := newFakeServer(t)
	defer srv.Close()

	client := New(srv.URL)
	client.SetToken("tok-abc")
	ctx := context.Background()

	// Capture the raw body via the echo header.
	var lastBody string
	origDo := client.httpc.Transport
	client.httpc.Transport = roundTripFunc(func(req *http.Request) (*http.Response, error) {
		transport := origDo
		if transport == nil {
			transport = http.DefaultTransport
		}
		resp, err := transport.RoundTrip(req)
		if resp != nil {
			lastBody = resp.Header.Get("X-Raw-Body")
		}
		return resp, err
	})

	if _, err := client.UpdateReport(ctx, "r1", "new text", nil); err != nil {
		t.Fatalf("UpdateReport: %v", err)
	}
	if strings.Contains(lastBody, `"day"`) {
		t.Errorf("day should be omitted when nil, body was %s", lastBody)
	}

	day := 4
	if _, err := client.UpdateReport(ctx, "r1", "new text", &day); err != nil {
		t.Fatalf("UpdateReport with day: %v", err)
	}
	if !strings.Contains(lastBody, `"day":4`) {
		t.Errorf("expected day in body, got %s", lastBody)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestNotFoundError(t *testing.T) {
	srv := newFakeServer(t)
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.Report(context.Background(), "missing")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", apiErr.Status)
	}
}
