// Package client is a Go SDK for the contentflow HTTP API. Client implements
// planner.Backend so the planner state containers can persist through it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/maheshrc27/contentflow/pkg/planner"
	"github.com/sethvargo/go-retry"
)

// Error is a {success:false} answer from the API.
type Error struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Client struct {
	baseURL    string
	apiKey     string
	token      string
	http       *http.Client
	retryDelay time.Duration
}

type Option func(*Client)

// WithAPIKey authenticates with a key created through /api/api_key/new.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithToken authenticates with a session JWT.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		http:       &http.Client{Timeout: 15 * time.Second},
		retryDelay: 250 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ planner.Backend = (*Client)(nil)

// ListScheduled fetches a client's scheduled posts, optionally narrowed to a
// project. A timed out request is retried once.
func (c *Client) ListScheduled(ctx context.Context, key planner.Key) ([]*planner.ScheduledPost, error) {
	q := url.Values{}
	q.Set("client_id", key.ClientID)
	if key.ProjectID != "" {
		q.Set("project_id", key.ProjectID)
	}

	var resp struct {
		Posts []*planner.ScheduledPost `json:"posts"`
	}
	backoff := retry.WithMaxRetries(1, retry.NewConstant(c.retryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.do(ctx, http.MethodGet, "/api/calendar/scheduled", q, nil, &resp)
		if isTimeout(err) {
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp.Posts, nil
}

func (c *Client) CreateScheduled(ctx context.Context, sp *planner.ScheduledPost) (*planner.ScheduledPost, error) {
	var resp struct {
		Post *planner.ScheduledPost `json:"post"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/calendar/scheduled", nil, sp, &resp); err != nil {
		return nil, err
	}
	return resp.Post, nil
}

func (c *Client) UpdateScheduled(ctx context.Context, id string, u planner.Update) (*planner.ScheduledPost, error) {
	body := struct {
		PostID  string         `json:"postId"`
		Updates planner.Update `json:"updates"`
	}{PostID: id, Updates: u}

	var resp struct {
		Post *planner.ScheduledPost `json:"post"`
	}
	if err := c.do(ctx, http.MethodPatch, "/api/calendar/scheduled", nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.Post, nil
}

func (c *Client) DeleteScheduled(ctx context.Context, id string) error {
	q := url.Values{}
	q.Set("id", id)
	return c.do(ctx, http.MethodDelete, "/api/calendar/scheduled", q, nil, nil)
}

// Submit hands a scheduled post to the publishing queue.
func (c *Client) Submit(ctx context.Context, id string) (*planner.ScheduledPost, error) {
	return c.action(ctx, id, "submit")
}

func (c *Client) PublishNow(ctx context.Context, id string) (*planner.ScheduledPost, error) {
	return c.action(ctx, id, "publish")
}

func (c *Client) action(ctx context.Context, id, name string) (*planner.ScheduledPost, error) {
	var resp struct {
		Post *planner.ScheduledPost `json:"post"`
	}
	path := "/api/calendar/scheduled/" + url.PathEscape(id) + "/" + name
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Post, nil
}

func (c *Client) ListPostTags(ctx context.Context, postID string) ([]Tag, error) {
	var resp struct {
		Tags []Tag `json:"tags"`
	}
	if err := c.do(ctx, http.MethodGet, tagsPath(postID), nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tags, nil
}

func (c *Client) AddPostTag(ctx context.Context, postID, tagID string) (*Tag, error) {
	var resp struct {
		Tag *Tag `json:"tag"`
	}
	body := map[string]string{"tag_id": tagID}
	if err := c.do(ctx, http.MethodPost, tagsPath(postID), nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.Tag, nil
}

func (c *Client) RemovePostTag(ctx context.Context, postID, tagID string) error {
	return c.do(ctx, http.MethodDelete, tagsPath(postID)+"/"+url.PathEscape(tagID), nil, nil, nil)
}

func tagsPath(postID string) string {
	return "/api/posts/" + url.PathEscape(postID) + "/tags"
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	if c.apiKey != "" {
		if query == nil {
			query = url.Values{}
		}
		query.Set("api_key", c.apiKey)
	}
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var errResp struct {
			Error   string `json:"error"`
			Details string `json:"details"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			apiErr.Message = errResp.Error
			apiErr.Details = errResp.Details
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	return json.Unmarshal(respBody, out)
}

// StatusCode returns the HTTP status of an API error, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
