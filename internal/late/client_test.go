package late

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestListAccounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer key" {
			t.Errorf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		if r.URL.Path != "/accounts" || r.URL.Query().Get("profileId") != "prof1" {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		w.Write([]byte(`{"accounts":[{"_id":"a1","platform":"instagram","username":"acme"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", time.Second)
	accounts, err := c.ListAccounts(context.Background(), "prof1")
	if err != nil {
		t.Fatalf("ListAccounts: %v", err)
	}
	if len(accounts) != 1 || accounts[0].ID != "a1" || accounts[0].Platform != "instagram" {
		t.Fatalf("unexpected accounts: %+v", accounts)
	}
}

func TestCreatePost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.Content != "hello" || len(req.Platforms) != 1 || req.Platforms[0].AccountID != "a1" {
			t.Errorf("unexpected body: %+v", req)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"post":{"_id":"lp1","status":"scheduled"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", time.Second)
	post, err := c.CreatePost(context.Background(), &CreatePostRequest{
		Content:   "hello",
		Platforms: []PlatformTarget{{Platform: "instagram", AccountID: "a1"}},
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.ID != "lp1" {
		t.Fatalf("got post id %q", post.ID)
	}
}

func TestErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"content too long"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", time.Second)
	err := c.DeletePost(context.Background(), "lp1")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "content too long" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestBreakerOpensOnServerErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", time.Second)
	for i := 0; i < 5; i++ {
		c.DeletePost(context.Background(), "lp1")
	}

	err := c.DeletePost(context.Background(), "lp1")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable once breaker is open, got %v", err)
	}
	if calls != 5 {
		t.Fatalf("expected 5 upstream calls, got %d", calls)
	}
}
