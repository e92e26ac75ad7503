package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"mime/multipart"
	"strings"

	"github.com/maheshrc27/contentflow/internal/models"
	"github.com/maheshrc27/contentflow/internal/repository"
	"github.com/maheshrc27/contentflow/internal/transfer"
	"github.com/maheshrc27/contentflow/pkg/apperror"
	"golang.org/x/sync/errgroup"
)

const approvalConcurrency = 8

// PortalService backs the client-facing portal. Every call is addressed by
// the project's portal token instead of a user session.
type PortalService interface {
	Project(ctx context.Context, token string) (*models.Project, error)
	Upload(ctx context.Context, token, notes string, file *multipart.FileHeader) (*models.PortalUpload, error)
	ListUploads(ctx context.Context, token string) ([]*models.PortalUpload, error)
	UpdateNotes(ctx context.Context, token, uploadID, notes string) (*models.PortalUpload, error)
	DeleteUpload(ctx context.Context, token, uploadID string) error
	ListPosts(ctx context.Context, token string) ([]*models.ScheduledPost, error)
	// ApplyApprovals applies each decision independently. Failures do not
	// stop the others and are reported per post.
	ApplyApprovals(ctx context.Context, token string, decisions []transfer.ApprovalDecision) ([]transfer.ApprovalResult, error)
}

type portalService struct {
	prj     repository.ProjectRepository
	pu      repository.PortalUploadRepository
	sp      repository.CalendarPostRepository
	storage ObjectStorage
}

func NewPortalService(
	prj repository.ProjectRepository,
	pu repository.PortalUploadRepository,
	sp repository.CalendarPostRepository,
	storage ObjectStorage) PortalService {
	return &portalService{
		prj:     prj,
		pu:      pu,
		sp:      sp,
		storage: storage,
	}
}

func (s *portalService) Project(ctx context.Context, token string) (*models.Project, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, apperror.BadRequest("Portal token is required")
	}

	project, err := s.prj.GetByPortalToken(ctx, token)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to load portal")
	}
	if project == nil {
		return nil, apperror.NotFound("Portal not found")
	}
	return project, nil
}

func (s *portalService) Upload(ctx context.Context, token, notes string, file *multipart.FileHeader) (*models.PortalUpload, error) {
	project, err := s.Project(ctx, token)
	if err != nil {
		return nil, err
	}

	up, err := readUpload(file, portalTypes)
	if err != nil {
		return nil, err
	}

	key, err := objectKey("portal/"+project.ID, up.Type.Extension)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to generate file name")
	}

	url, err := s.storage.Upload(ctx, key, up.Data, up.Type.MIME.Value)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to upload file")
	}

	pu := &models.PortalUpload{
		ProjectID: project.ID,
		FileName:  up.Name,
		FileType:  up.Type.MIME.Value,
		FileSize:  int64(len(up.Data)),
		FileURL:   url,
		Notes:     notes,
	}
	pu.ID, err = s.pu.Create(ctx, pu)
	if err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			slog.Info(delErr.Error())
		}
		return nil, apperror.Wrap(err, "Failed to save upload")
	}
	return pu, nil
}

func (s *portalService) ListUploads(ctx context.Context, token string) ([]*models.PortalUpload, error) {
	project, err := s.Project(ctx, token)
	if err != nil {
		return nil, err
	}

	uploads, err := s.pu.ListByProjectID(ctx, project.ID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to fetch uploads")
	}
	if uploads == nil {
		uploads = []*models.PortalUpload{}
	}
	return uploads, nil
}

// projectUpload loads an upload and checks it belongs to the token's project.
func (s *portalService) projectUpload(ctx context.Context, token, uploadID string) (*models.PortalUpload, error) {
	project, err := s.Project(ctx, token)
	if err != nil {
		return nil, err
	}
	if uploadID == "" {
		return nil, apperror.BadRequest("upload_id is required")
	}
	if err := requireUUID(uploadID, "upload_id"); err != nil {
		return nil, err
	}

	pu, err := s.pu.GetByID(ctx, uploadID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to load upload")
	}
	if pu == nil || pu.ProjectID != project.ID {
		return nil, apperror.NotFound("Upload not found")
	}
	return pu, nil
}

func (s *portalService) UpdateNotes(ctx context.Context, token, uploadID, notes string) (*models.PortalUpload, error) {
	pu, err := s.projectUpload(ctx, token, uploadID)
	if err != nil {
		return nil, err
	}

	if err := s.pu.UpdateNotes(ctx, pu.ID, notes); err != nil {
		return nil, apperror.Wrap(err, "Failed to update notes")
	}
	pu.Notes = notes
	return pu, nil
}

func (s *portalService) DeleteUpload(ctx context.Context, token, uploadID string) error {
	pu, err := s.projectUpload(ctx, token, uploadID)
	if err != nil {
		return err
	}

	if err := s.pu.Remove(ctx, pu.ID); err != nil {
		return apperror.Wrap(err, "Failed to delete upload")
	}
	if key := s.storage.KeyFromURL(pu.FileURL); key != "" {
		if err := s.storage.Delete(ctx, key); err != nil {
			slog.Info("failed to delete portal file", "upload_id", pu.ID, "error", err.Error())
		}
	}
	return nil
}

func (s *portalService) ListPosts(ctx context.Context, token string) ([]*models.ScheduledPost, error) {
	project, err := s.Project(ctx, token)
	if err != nil {
		return nil, err
	}

	posts, err := s.sp.List(ctx, transfer.ScheduledFilter{ClientID: project.ClientID, ProjectID: project.ID})
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to fetch posts")
	}
	if posts == nil {
		posts = []*models.ScheduledPost{}
	}
	return posts, nil
}

func (s *portalService) ApplyApprovals(ctx context.Context, token string, decisions []transfer.ApprovalDecision) ([]transfer.ApprovalResult, error) {
	project, err := s.Project(ctx, token)
	if err != nil {
		return nil, err
	}
	if len(decisions) == 0 {
		return nil, apperror.BadRequest("No decisions provided")
	}

	results := make([]transfer.ApprovalResult, len(decisions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(approvalConcurrency)
	for i, d := range decisions {
		g.Go(func() error {
			results[i] = s.applyApproval(gctx, project, d)
			return nil
		})
	}
	// decisions never fail the group, errors live in results
	_ = g.Wait()

	return results, nil
}

func (s *portalService) applyApproval(ctx context.Context, project *models.Project, d transfer.ApprovalDecision) transfer.ApprovalResult {
	res := transfer.ApprovalResult{PostID: d.PostID}

	if err := requireUUID(d.PostID, "post_id"); err != nil {
		res.Error = apperror.GetMessage(err)
		return res
	}

	sp, err := s.sp.GetByID(ctx, d.PostID)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	if sp == nil || sp.ProjectID != project.ID {
		res.Error = "Post not found"
		return res
	}

	status := models.ApprovalRejected
	if d.Approved {
		status = models.ApprovalApproved
	}

	if err := s.sp.UpdateApproval(ctx, sp.ID, status, d.Feedback); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			res.Error = "Post not found"
		} else {
			res.Error = err.Error()
		}
		return res
	}

	res.Status = status
	return res
}

// ApprovalFailures returns the results that carry an error.
func ApprovalFailures(results []transfer.ApprovalResult) []transfer.ApprovalResult {
	var failed []transfer.ApprovalResult
	for _, r := range results {
		if r.Error != "" {
			failed = append(failed, r)
		}
	}
	return failed
}
