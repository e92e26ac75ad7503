package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentflow/internal/models"
	"github.com/maheshrc27/contentflow/internal/service"
	"github.com/maheshrc27/contentflow/internal/transfer"
	"github.com/maheshrc27/contentflow/pkg/apperror"
)

type stubPortal struct {
	service.PortalService
	results []transfer.ApprovalResult
	err     error
}

func (s *stubPortal) ApplyApprovals(ctx context.Context, token string, d []transfer.ApprovalDecision) ([]transfer.ApprovalResult, error) {
	return s.results, s.err
}

func portalApp(s service.PortalService) *fiber.App {
	h := NewPortalHandler(s)
	app := fiber.New()
	app.Post("/api/portal/:token/approvals", h.Approvals)
	return app
}

func TestApprovalsPartialFailure(t *testing.T) {
	app := portalApp(&stubPortal{results: []transfer.ApprovalResult{
		{PostID: "a", Status: models.ApprovalApproved},
		{PostID: "b", Error: "Post not found"},
	}})

	status, body := do(t, app, jsonRequest(http.MethodPost, "/api/portal/tok/approvals",
		`{"decisions":[{"post_id":"a","approved":true},{"post_id":"b","approved":false}]}`))
	if status != fiber.StatusMultiStatus {
		t.Fatalf("status = %d", status)
	}
	failed, _ := body["failed"].([]any)
	if body["success"] != false || len(failed) != 1 {
		t.Fatalf("body = %v", body)
	}
}

func TestApprovalsAllApplied(t *testing.T) {
	app := portalApp(&stubPortal{results: []transfer.ApprovalResult{{PostID: "a", Status: models.ApprovalRejected}}})

	status, body := do(t, app, jsonRequest(http.MethodPost, "/api/portal/tok/approvals", `{"decisions":[{"post_id":"a"}]}`))
	if status != fiber.StatusOK || body["success"] != true {
		t.Fatalf("status = %d body = %v", status, body)
	}
}

func TestApprovalsUnknownPortal(t *testing.T) {
	app := portalApp(&stubPortal{err: apperror.NotFound("Portal not found")})

	status, body := do(t, app, jsonRequest(http.MethodPost, "/api/portal/tok/approvals", `{"decisions":[{"post_id":"a"}]}`))
	if status != fiber.StatusNotFound || body["error"] != "Portal not found" {
		t.Fatalf("status = %d body = %v", status, body)
	}
}
