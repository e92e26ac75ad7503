package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/maheshrc27/contentflow/internal/models"
	"github.com/maheshrc27/contentflow/internal/repository/mocks"
	"github.com/maheshrc27/contentflow/internal/transfer"
	"github.com/maheshrc27/contentflow/pkg/apperror"
	"go.uber.org/mock/gomock"
)

const (
	testToken     = "portaltoken0123456789abcdefghijk"
	approvedID    = "4d5e6f70-8192-4a3b-9c4d-5e6f708192a3"
	foreignPostID = "5e6f7081-92a3-4b4c-8d5e-6f708192a3b4"
	brokenID      = "6f708192-a3b4-4c5d-9e6f-708192a3b4c5"
)

type noopStorage struct {
	deleted []string
}

func (s *noopStorage) Upload(ctx context.Context, key string, file []byte, contentType string) (string, error) {
	return "https://media.example.com/" + key, nil
}

func (s *noopStorage) Delete(ctx context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *noopStorage) KeyFromURL(url string) string {
	key, _ := strings.CutPrefix(url, "https://media.example.com/")
	if key == url {
		return ""
	}
	return key
}

type portalFixture struct {
	projects *mocks.MockProjectRepository
	uploads  *mocks.MockPortalUploadRepository
	posts    *mocks.MockCalendarPostRepository
	storage  *noopStorage
	svc      PortalService
}

func newPortalFixture(t *testing.T) *portalFixture {
	ctrl := gomock.NewController(t)
	f := &portalFixture{
		projects: mocks.NewMockProjectRepository(ctrl),
		uploads:  mocks.NewMockPortalUploadRepository(ctrl),
		posts:    mocks.NewMockCalendarPostRepository(ctrl),
		storage:  &noopStorage{},
	}
	f.svc = NewPortalService(f.projects, f.uploads, f.posts, f.storage)
	f.projects.EXPECT().GetByPortalToken(gomock.Any(), testToken).
		Return(&models.Project{ID: testProjectID, ClientID: testClientID, PortalToken: testToken}, nil).AnyTimes()
	return f
}

func TestApplyApprovalsCollectsFailures(t *testing.T) {
	f := newPortalFixture(t)
	f.posts.EXPECT().GetByID(gomock.Any(), approvedID).
		Return(&models.ScheduledPost{ID: approvedID, ProjectID: testProjectID}, nil)
	f.posts.EXPECT().UpdateApproval(gomock.Any(), approvedID, models.ApprovalApproved, "").Return(nil)
	f.posts.EXPECT().GetByID(gomock.Any(), foreignPostID).
		Return(&models.ScheduledPost{ID: foreignPostID, ProjectID: "someone-elses-project"}, nil)
	f.posts.EXPECT().GetByID(gomock.Any(), brokenID).
		Return(&models.ScheduledPost{ID: brokenID, ProjectID: testProjectID}, nil)
	f.posts.EXPECT().UpdateApproval(gomock.Any(), brokenID, models.ApprovalRejected, "too dark").
		Return(errors.New("deadlock detected"))

	results, err := f.svc.ApplyApprovals(context.Background(), testToken, []transfer.ApprovalDecision{
		{PostID: approvedID, Approved: true},
		{PostID: foreignPostID, Approved: true},
		{PostID: brokenID, Approved: false, Feedback: "too dark"},
		{PostID: "bogus"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Fatalf("results = %+v", results)
	}
	if results[0].Status != models.ApprovalApproved || results[0].Error != "" {
		t.Fatalf("first = %+v", results[0])
	}
	if results[1].Error != "Post not found" {
		t.Fatalf("second = %+v", results[1])
	}
	if results[2].Error != "deadlock detected" {
		t.Fatalf("third = %+v", results[2])
	}
	if results[3].Error == "" {
		t.Fatalf("fourth = %+v", results[3])
	}
	if failed := ApprovalFailures(results); len(failed) != 3 {
		t.Fatalf("failures = %+v", failed)
	}
}

func TestApplyApprovalsUnknownToken(t *testing.T) {
	f := newPortalFixture(t)
	f.projects.EXPECT().GetByPortalToken(gomock.Any(), "missing").Return(nil, nil)

	_, err := f.svc.ApplyApprovals(context.Background(), "missing", []transfer.ApprovalDecision{{PostID: approvedID}})
	if !apperror.IsNotFound(err) {
		t.Fatalf("err = %v", err)
	}
}

func TestDeleteUploadScopedToProject(t *testing.T) {
	f := newPortalFixture(t)
	f.uploads.EXPECT().GetByID(gomock.Any(), approvedID).
		Return(&models.PortalUpload{ID: approvedID, ProjectID: "another-project"}, nil)
	f.uploads.EXPECT().Remove(gomock.Any(), gomock.Any()).Times(0)

	if err := f.svc.DeleteUpload(context.Background(), testToken, approvedID); !apperror.IsNotFound(err) {
		t.Fatalf("err = %v", err)
	}
}

func TestDeleteUploadRemovesFile(t *testing.T) {
	f := newPortalFixture(t)
	f.uploads.EXPECT().GetByID(gomock.Any(), approvedID).
		Return(&models.PortalUpload{ID: approvedID, ProjectID: testProjectID, FileURL: "https://media.example.com/portal/x.pdf"}, nil)
	f.uploads.EXPECT().Remove(gomock.Any(), approvedID).Return(nil)

	if err := f.svc.DeleteUpload(context.Background(), testToken, approvedID); err != nil {
		t.Fatal(err)
	}
	if len(f.storage.deleted) != 1 || f.storage.deleted[0] != "portal/x.pdf" {
		t.Fatalf("deleted = %v", f.storage.deleted)
	}
}
