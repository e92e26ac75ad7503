package late

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

var ErrUnavailable = errors.New("publishing provider unavailable")

type Account struct {
	ID             string `json:"_id"`
	Platform       string `json:"platform"`
	Username       string `json:"username"`
	DisplayName    string `json:"displayName"`
	ProfilePicture string `json:"profilePicture"`
}

type PlatformTarget struct {
	Platform  string `json:"platform"`
	AccountID string `json:"accountId"`
}

type MediaItem struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type CreatePostRequest struct {
	Content      string           `json:"content"`
	Platforms    []PlatformTarget `json:"platforms"`
	MediaItems   []MediaItem      `json:"mediaItems,omitempty"`
	ScheduledFor string           `json:"scheduledFor,omitempty"`
	Timezone     string           `json:"timezone,omitempty"`
	PublishNow   bool             `json:"publishNow,omitempty"`
}

type Post struct {
	ID     string `json:"_id"`
	Status string `json:"status"`
}

// APIError is a non-2xx answer from the provider.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("late: status %d: %s", e.StatusCode, e.Message)
}

//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mocks/client.go -package=mocks
type Client interface {
	ListAccounts(ctx context.Context, profileID string) ([]Account, error)
	CreatePost(ctx context.Context, req *CreatePostRequest) (*Post, error)
	DeletePost(ctx context.Context, postID string) error
}

type client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
}

func NewClient(baseURL, apiKey string, timeout time.Duration) Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "LateAPI",
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		IsSuccessful: func(err error) bool {
			// client errors say nothing about provider health
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				return apiErr.StatusCode < 500
			}
			return err == nil
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
		},
	})

	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		breaker: breaker,
	}
}

func (c *client) ListAccounts(ctx context.Context, profileID string) ([]Account, error) {
	var resp struct {
		Accounts []Account `json:"accounts"`
	}
	path := "/accounts"
	if profileID != "" {
		path += "?profileId=" + profileID
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}

func (c *client) CreatePost(ctx context.Context, req *CreatePostRequest) (*Post, error) {
	var resp struct {
		Post Post `json:"post"`
	}
	if err := c.do(ctx, http.MethodPost, "/posts", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Post, nil
}

func (c *client) DeletePost(ctx context.Context, postID string) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+postID, nil, nil)
}

func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.send(ctx, method, path, body, out)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrUnavailable
	}
	return err
}

func (c *client) send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		msg := strings.TrimSpace(string(respBody))
		if json.Unmarshal(respBody, &errResp) == nil {
			if errResp.Error != "" {
				msg = errResp.Error
			} else if errResp.Message != "" {
				msg = errResp.Message
			}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	return json.Unmarshal(respBody, out)
}
