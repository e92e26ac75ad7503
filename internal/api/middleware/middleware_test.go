package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/contentflow/configs"
	"github.com/maheshrc27/contentflow/internal/models"
	"github.com/maheshrc27/contentflow/internal/ratelimit"
	"github.com/maheshrc27/contentflow/pkg/utils"
)

const secret = "0123456789abcdef0123456789abcdef"

type stubKeys struct{}

func (stubKeys) Create(ctx context.Context, userID string) error { return nil }

func (stubKeys) List(ctx context.Context, userID string) ([]*models.ApiKey, error) { return nil, nil }

func (stubKeys) GetUserID(ctx context.Context, apiKey string) (string, error) {
	if apiKey == "good-key" {
		return "key-user", nil
	}
	return "", errors.New("unknown key")
}

func (stubKeys) RemoveAPIKey(ctx context.Context, userID, keyID string) error { return nil }

func authApp() *fiber.App {
	cfg := config.Config{SecretKey: secret, CookieName: "session"}
	app := fiber.New()
	app.Get("/me", NewAuthMiddleware(cfg, stubKeys{}).AuthMiddleware(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string))
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	token, err := utils.GenerateToken(secret, "jwt-user", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		build  func(*http.Request)
		target string
		status int
	}{
		{"no credentials", func(*http.Request) {}, "/me", fiber.StatusUnauthorized},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, "/me", fiber.StatusOK},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "session", Value: token}) }, "/me", fiber.StatusOK},
		{"bad bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, "/me", fiber.StatusUnauthorized},
		{"api key", func(*http.Request) {}, "/me?api_key=good-key", fiber.StatusOK},
		{"bad api key", func(*http.Request) {}, "/me?api_key=bad", fiber.StatusUnauthorized},
	}

	app := authApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			tt.build(req)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
		})
	}
}

func TestPortalRateLimitPerToken(t *testing.T) {
	app := fiber.New()
	app.Post("/upload/:token", PortalRateLimit(ratelimit.NewInMemoryLimiter(1, time.Hour, 2)), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	send := func(token string) int {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/upload/"+token, nil))
		if err != nil {
			t.Fatal(err)
		}
		return resp.StatusCode
	}

	for i := 0; i < 2; i++ {
		if got := send("abc"); got != fiber.StatusNoContent {
			t.Fatalf("request %d status = %d", i+1, got)
		}
	}
	if got := send("abc"); got != fiber.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", got)
	}
	if got := send("xyz"); got != fiber.StatusNoContent {
		t.Fatalf("other token status = %d", got)
	}
}
