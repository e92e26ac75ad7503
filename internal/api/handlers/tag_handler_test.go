package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentflow/internal/models"
	"github.com/maheshrc27/contentflow/internal/repository"
	"github.com/maheshrc27/contentflow/internal/repository/mocks"
	"github.com/maheshrc27/contentflow/internal/service"
	"go.uber.org/mock/gomock"
)

const (
	userID   = "user-1"
	clientID = "5f0c7a1e-2b3d-4c5e-8f9a-0b1c2d3e4f50"
	postID   = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
	tagID    = "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
)

type tagDeps struct {
	resolver *mocks.MockPostResolver
	clients  *mocks.MockClientRepository
	tags     *mocks.MockTagRepository
	postTags *mocks.MockPostTagRepository
	app      *fiber.App
}

func newTagApp(t *testing.T) *tagDeps {
	ctrl := gomock.NewController(t)
	d := &tagDeps{
		resolver: mocks.NewMockPostResolver(ctrl),
		clients:  mocks.NewMockClientRepository(ctrl),
		tags:     mocks.NewMockTagRepository(ctrl),
		postTags: mocks.NewMockPostTagRepository(ctrl),
	}
	h := NewTagHandler(service.NewTagService(d.resolver, d.clients, d.tags, d.postTags))

	d.app = fiber.New()
	api := d.app.Group("/api", func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		return c.Next()
	})
	api.Get("/posts/:postId/tags", h.ListPostTags)
	api.Post("/posts/:postId/tags", h.AddPostTag)
	api.Delete("/posts/:postId/tags/:tagId", h.RemovePostTag)
	return d
}

func (d *tagDeps) owner(owner string) {
	d.resolver.EXPECT().Resolve(gomock.Any(), postID).
		Return(&repository.ResolvedPost{Kind: repository.PostKindCalendar, ID: postID, ClientID: clientID}, nil)
	d.clients.EXPECT().GetByID(gomock.Any(), clientID).
		Return(&models.Client{ID: clientID, UserID: owner}, nil)
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	body := map[string]any{}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	return resp.StatusCode, body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestListPostTagsForbidden(t *testing.T) {
	d := newTagApp(t)
	d.owner("another-user")

	status, body := do(t, d.app, httptest.NewRequest(http.MethodGet, "/api/posts/"+postID+"/tags", nil))
	if status != fiber.StatusForbidden {
		t.Fatalf("status = %d", status)
	}
	if body["success"] != false {
		t.Fatalf("body = %v", body)
	}
	if _, ok := body["tags"]; ok {
		t.Fatal("forbidden response must not carry tags")
	}
}

func TestListPostTags(t *testing.T) {
	d := newTagApp(t)
	d.owner(userID)
	d.postTags.EXPECT().ListTags(gomock.Any(), postID).
		Return([]*models.Tag{{ID: tagID, Name: "Launch", Color: "#6366f1"}}, nil)

	status, body := do(t, d.app, httptest.NewRequest(http.MethodGet, "/api/posts/"+postID+"/tags", nil))
	if status != fiber.StatusOK {
		t.Fatalf("status = %d body = %v", status, body)
	}
	tags, _ := body["tags"].([]any)
	if len(tags) != 1 {
		t.Fatalf("tags = %v", body["tags"])
	}
}

func TestAddPostTagStatuses(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		setup  func(d *tagDeps)
		status int
		errMsg string
	}{
		{
			name:   "missing tag id",
			body:   `{}`,
			setup:  func(d *tagDeps) {},
			status: fiber.StatusBadRequest,
			errMsg: "tag_id is required",
		},
		{
			name:   "malformed tag id",
			body:   `{"tag_id":"123"}`,
			setup:  func(d *tagDeps) {},
			status: fiber.StatusBadRequest,
			errMsg: "Invalid tag_id",
		},
		{
			name: "unknown tag",
			body: `{"tag_id":"` + tagID + `"}`,
			setup: func(d *tagDeps) {
				d.owner(userID)
				d.tags.EXPECT().GetByID(gomock.Any(), tagID).Return(nil, nil)
			},
			status: fiber.StatusNotFound,
			errMsg: "Tag not found",
		},
		{
			name: "duplicate",
			body: `{"tag_id":"` + tagID + `"}`,
			setup: func(d *tagDeps) {
				d.owner(userID)
				d.tags.EXPECT().GetByID(gomock.Any(), tagID).Return(&models.Tag{ID: tagID, ClientID: clientID}, nil)
				d.postTags.EXPECT().Exists(gomock.Any(), postID, tagID).Return(true, nil)
			},
			status: fiber.StatusConflict,
			errMsg: "Tag already added to this post",
		},
		{
			name: "created",
			body: `{"tag_id":"` + tagID + `"}`,
			setup: func(d *tagDeps) {
				d.owner(userID)
				d.tags.EXPECT().GetByID(gomock.Any(), tagID).
					Return(&models.Tag{ID: tagID, ClientID: clientID, Name: "Launch", Color: "#6366f1"}, nil)
				d.postTags.EXPECT().Exists(gomock.Any(), postID, tagID).Return(false, nil)
				d.postTags.EXPECT().Create(gomock.Any(), postID, tagID).Return("pt-1", nil)
			},
			status: fiber.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTagApp(t)
			tt.setup(d)

			status, body := do(t, d.app, jsonRequest(http.MethodPost, "/api/posts/"+postID+"/tags", tt.body))
			if status != tt.status {
				t.Fatalf("status = %d, want %d (%v)", status, tt.status, body)
			}
			if tt.errMsg != "" && body["error"] != tt.errMsg {
				t.Fatalf("error = %v, want %q", body["error"], tt.errMsg)
			}
			if tt.status == fiber.StatusCreated {
				tag, _ := body["tag"].(map[string]any)
				if tag["id"] != tagID || tag["name"] != "Launch" {
					t.Fatalf("tag = %v", body["tag"])
				}
			}
		})
	}
}

func TestAddPostTagStorageFailureCarriesDetails(t *testing.T) {
	d := newTagApp(t)
	d.owner(userID)
	d.tags.EXPECT().GetByID(gomock.Any(), tagID).Return(&models.Tag{ID: tagID, ClientID: clientID}, nil)
	d.postTags.EXPECT().Exists(gomock.Any(), postID, tagID).Return(false, nil)
	d.postTags.EXPECT().Create(gomock.Any(), postID, tagID).Return("", io.ErrUnexpectedEOF)

	status, body := do(t, d.app, jsonRequest(http.MethodPost, "/api/posts/"+postID+"/tags", `{"tag_id":"`+tagID+`"}`))
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d", status)
	}
	if body["error"] != "Failed to add tag" || body["details"] != io.ErrUnexpectedEOF.Error() {
		t.Fatalf("body = %v", body)
	}
}

func TestRemovePostTag(t *testing.T) {
	d := newTagApp(t)
	d.owner(userID)
	d.postTags.EXPECT().Remove(gomock.Any(), postID, tagID).Return(nil)

	status, body := do(t, d.app, httptest.NewRequest(http.MethodDelete, "/api/posts/"+postID+"/tags/"+tagID, nil))
	if status != fiber.StatusOK || body["success"] != true {
		t.Fatalf("status = %d body = %v", status, body)
	}
}
