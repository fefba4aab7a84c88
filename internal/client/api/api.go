// Package api is the HTTP client for the MemberTrackr REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Report struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	Day       int       `json:"day"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// APIError carries the status and short message the server responded with.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.Status)
}

type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken sets the bearer token sent in the x-auth-token header.
// An empty string clears it.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("x-auth-token", c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (AuthResult, error) {
	var result AuthResult
	payload := map[string]string{"name": name, "email": email, "password": password}
	err := c.do(ctx, http.MethodPost, "/auth/register", payload, &result)
	return result, err
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	var result AuthResult
	payload := map[string]string{"email": email, "password": password}
	err := c.do(ctx, http.MethodPost, "/auth/login", payload, &result)
	return result, err
}

// Me validates the held token and returns the user it is bound to.
func (c *Client) Me(ctx context.Context) (User, error) {
	var user User
	err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user)
	return user, err
}

func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	err := c.do(ctx, http.MethodGet, "/auth/users", nil, &users)
	return users, err
}

func (c *Client) User(ctx context.Context, id string) (User, error) {
	var user User
	err := c.do(ctx, http.MethodGet, "/auth/users/"+id, nil, &user)
	return user, err
}

// ReportsFor returns a member's reports ordered by ascending day.
func (c *Client) ReportsFor(ctx context.Context, userID string) ([]Report, error) {
	var reports []Report
	err := c.do(ctx, http.MethodGet, "/reports/user/"+userID, nil, &reports)
	return reports, err
}

func (c *Client) Report(ctx context.Context, id string) (Report, error) {
	var report Report
	err := c.do(ctx, http.MethodGet, "/reports/"+id, nil, &report)
	return report, err
}

func (c *Client) CreateReport(ctx context.Context, userID, date string) (Report, error) {
	var report Report
	payload := map[string]string{"user_id": userID, "date": date}
	err := c.do(ctx, http.MethodPost, "/reports", payload, &report)
	return report, err
}

// UpdateReport replaces a report's content and, when day is non-nil, its day.
func (c *Client) UpdateReport(ctx context.Context, id, content string, day *int) (Report, error) {
	var report Report
	payload := struct {
		Content string `json:"content"`
		Day     *int   `json:"day,omitempty"`
	}{Content: content, Day: day}
	err := c.do(ctx, http.MethodPut, "/reports/"+id, payload, &report)
	return report, err
}
