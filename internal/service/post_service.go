package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"mime/multipart"

	"github.com/maheshrc27/contentflow/internal/models"
	"github.com/maheshrc27/contentflow/internal/repository"
	"github.com/maheshrc27/contentflow/pkg/apperror"
)

// PostService manages queue items: uploaded images waiting to be scheduled.
type PostService interface {
	CreatePost(ctx context.Context, userID, clientID, projectID, caption string, file *multipart.FileHeader) (*models.Post, error)
	List(ctx context.Context, userID, clientID, projectID string) ([]*models.Post, error)
	UpdateCaption(ctx context.Context, userID, postID, caption string) (*models.Post, error)
	Remove(ctx context.Context, userID, postID string) error
}

type postService struct {
	db      *sql.DB
	pr      repository.PostRepository
	pt      repository.PostTagRepository
	prj     repository.ProjectRepository
	c       repository.ClientRepository
	ma      repository.MediaAssetRepository
	storage ObjectStorage
}

func NewPostService(
	db *sql.DB,
	pr repository.PostRepository,
	pt repository.PostTagRepository,
	prj repository.ProjectRepository,
	c repository.ClientRepository,
	ma repository.MediaAssetRepository,
	storage ObjectStorage) PostService {
	return &postService{
		db:      db,
		pr:      pr,
		pt:      pt,
		prj:     prj,
		c:       c,
		ma:      ma,
		storage: storage,
	}
}

// ownedProject checks the project exists under a client the user owns.
func ownedProject(ctx context.Context, clients repository.ClientRepository, projects repository.ProjectRepository, userID, clientID, projectID string) (*models.Project, error) {
	if _, err := ownedClient(ctx, clients, userID, clientID); err != nil {
		return nil, err
	}
	if err := requireUUID(projectID, "project_id"); err != nil {
		return nil, err
	}

	project, err := projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to load project")
	}
	if project == nil || project.ClientID != clientID {
		return nil, apperror.NotFound("Project not found")
	}
	return project, nil
}

func (s *postService) CreatePost(ctx context.Context, userID, clientID, projectID, caption string, file *multipart.FileHeader) (*models.Post, error) {
	if _, err := ownedProject(ctx, s.c, s.prj, userID, clientID, projectID); err != nil {
		return nil, err
	}

	up, err := readUpload(file, imageTypes)
	if err != nil {
		return nil, err
	}

	key, err := objectKey("posts/"+clientID, up.Type.Extension)
	if err != nil {
		slog.Info(err.Error())
		return nil, apperror.Wrap(err, "Failed to generate file name")
	}

	url, err := s.storage.Upload(ctx, key, up.Data, up.Type.MIME.Value)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to upload image")
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	_, err = s.ma.Create(ctx, tx, &models.MediaAsset{
		ClientID: clientID,
		FileName: up.Name,
		FileType: up.Type.MIME.Value,
		FileSize: int64(len(up.Data)),
		FileURL:  url,
	})
	if err != nil {
		return nil, apperror.Wrap(err, "Error saving media file")
	}

	post := &models.Post{
		ClientID:  clientID,
		ProjectID: projectID,
		Caption:   caption,
		ImageURL:  url,
	}
	post.ID, err = s.pr.Create(ctx, tx, post)
	if err != nil {
		return nil, apperror.Wrap(err, "Error creating post")
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return post, nil
}

func (s *postService) List(ctx context.Context, userID, clientID, projectID string) ([]*models.Post, error) {
	if _, err := ownedProject(ctx, s.c, s.prj, userID, clientID, projectID); err != nil {
		return nil, err
	}

	posts, err := s.pr.List(ctx, clientID, projectID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to fetch posts")
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return posts, nil
}

func (s *postService) ownedPost(ctx context.Context, userID, postID string) (*models.Post, error) {
	if err := requireUUID(postID, "post id"); err != nil {
		return nil, err
	}

	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to load post")
	}
	if post == nil {
		return nil, apperror.NotFound("Post not found")
	}
	if _, err := ownedClient(ctx, s.c, userID, post.ClientID); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) UpdateCaption(ctx context.Context, userID, postID, caption string) (*models.Post, error) {
	post, err := s.ownedPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if err := s.pr.UpdateCaption(ctx, postID, caption); err != nil {
		return nil, apperror.Wrap(err, "Failed to update caption")
	}
	post.Caption = caption
	return post, nil
}

// Remove deletes the queue item. Its scheduled posts go with it.
func (s *postService) Remove(ctx context.Context, userID, postID string) error {
	post, err := s.ownedPost(ctx, userID, postID)
	if err != nil {
		return err
	}

	// post_tags has no foreign key, so the tags of the post and of the
	// scheduled posts cascading from it are removed here.
	if err := s.pt.RemoveByPost(ctx, postID); err != nil {
		return apperror.Wrap(err, "Error removing post")
	}
	if err := s.pr.Remove(ctx, postID); err != nil {
		return apperror.Wrap(err, "Error removing post")
	}

	if key := s.storage.KeyFromURL(post.ImageURL); key != "" {
		if err := s.storage.Delete(ctx, key); err != nil {
			slog.Info("failed to delete post image", "post_id", postID, "error", err.Error())
		}
	}
	return nil
}
