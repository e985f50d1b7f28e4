// ABOUTME: Tests for the SmartSales365 API client pipeline
// ABOUTME: Uses httptest to verify header injection and error translation

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// staticToken is a TokenSource returning a fixed value
type staticToken string

func (s staticToken) Access() string { return string(s) }

// mutableToken is a TokenSource whose value can change between requests
type mutableToken struct {
	access string
}

func (m *mutableToken) Access() string { return m.access }

func newTestClient(url string, tokens TokenSource) *Client {
	return New(url, tokens, 5*time.Second)
}

func TestBearerHeaderAttachedWhenTokenPresent(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(Paginated[Product]{})
	}))
	defer server.Close()

	c := newTestClient(server.URL, staticToken("tok-123"))
	if _, err := c.Products(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}
}

func TestNoBearerHeaderWhenTokenAbsent(t *testing.T) {
	var hasAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		json.NewEncoder(w).Encode(Paginated[Product]{})
	}))
	defer server.Close()

	c := newTestClient(server.URL, staticToken(""))
	if _, err := c.Products(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hasAuth {
		t.Error("request without a stored token must not carry an Authorization header")
	}
}

func TestTokenReadAtSendTime(t *testing.T) {
	var auths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(Paginated[Product]{})
	}))
	defer server.Close()

	tokens := &mutableToken{}
	c := newTestClient(server.URL, tokens)

	if _, err := c.Products(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tokens.access = "rotated"
	if _, err := c.Products(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if auths[0] != "" {
		t.Errorf("first request Authorization = %q, want empty", auths[0])
	}
	if auths[1] != "Bearer rotated" {
		t.Errorf("second request Authorization = %q, want Bearer rotated", auths[1])
	}
}

func TestRequestIDHeaderPresent(t *testing.T) {
	var gotID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode(Paginated[Product]{})
	}))
	defer server.Close()

	c := newTestClient(server.URL, staticToken(""))
	if _, err := c.Products(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID == "" {
		t.Error("expected an X-Request-ID header on every request")
	}
}

func TestErrorResponseCarriesDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "stock insuficiente"})
	}))
	defer server.Close()

	c := newTestClient(server.URL, staticToken("tok"))
	_, err := c.Products(context.Background())
	if err == nil {
		t.Fatal("expected error for 400 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", apiErr.StatusCode)
	}
	if apiErr.Detail != "stock insuficiente" {
		t.Errorf("Detail = %q, want backend detail string", apiErr.Detail)
	}
}

func TestErrorResponseWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestClient(server.URL, staticToken("tok"))
	_, err := c.Products(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Error() != "backend returned status 500" {
		t.Errorf("Error() = %q", apiErr.Error())
	}
}

func TestConnectionError(t *testing.T) {
	c := newTestClient("http://127.0.0.1:1", staticToken(""))
	_, err := c.Products(context.Background())
	if err == nil {
		t.Error("expected connection error, got nil")
	}
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		json.NewEncoder(w).Encode(Paginated[Product]{})
	}))
	defer server.Close()

	c := newTestClient(server.URL, staticToken(""))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Products(ctx); err == nil {
		t.Error("expected error for canceled context, got nil")
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token/" {
			t.Errorf("expected path /token/, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}

		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["username"] != "admin_test" || body["password"] != "secret" {
			t.Errorf("unexpected credentials: %v", body)
		}

		json.NewEncoder(w).Encode(Credentials{Access: "A", Refresh: "B"})
	}))
	defer server.Close()

	c := newTestClient(server.URL, staticToken(""))
	creds, err := c.Authenticate(context.Background(), "admin_test", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.Access != "A" || creds.Refresh != "B" {
		t.Errorf("Credentials = %+v, want access A refresh B", creds)
	}
}

func TestAuthenticateRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "No active account found with the given credentials"})
	}))
	defer server.Close()

	c := newTestClient(server.URL, staticToken(""))
	if _, err := c.Authenticate(context.Background(), "admin_test", "wrong"); err == nil {
		t.Error("expected error for rejected login")
	}
}
