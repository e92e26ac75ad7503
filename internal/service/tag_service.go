package service

import (
	"context"

	"github.com/maheshrc27/contentflow/internal/models"
	"github.com/maheshrc27/contentflow/internal/repository"
	"github.com/maheshrc27/contentflow/pkg/apperror"
)

// TagService manages tag assignments on posts. A post id may name either a
// calendar scheduled post or a queue post.
type TagService interface {
	ListPostTags(ctx context.Context, userID, postID string) ([]*models.Tag, error)
	AddPostTag(ctx context.Context, userID, postID, tagID string) (*models.Tag, error)
	RemovePostTag(ctx context.Context, userID, postID, tagID string) error
}

type tagService struct {
	resolver repository.PostResolver
	c        repository.ClientRepository
	t        repository.TagRepository
	pt       repository.PostTagRepository
}

func NewTagService(
	resolver repository.PostResolver,
	c repository.ClientRepository,
	t repository.TagRepository,
	pt repository.PostTagRepository) TagService {
	return &tagService{
		resolver: resolver,
		c:        c,
		t:        t,
		pt:       pt,
	}
}

// authorizePost resolves the post and checks the caller owns its client.
func (s *tagService) authorizePost(ctx context.Context, userID, postID string) (*repository.ResolvedPost, error) {
	if err := requireUUID(postID, "post id"); err != nil {
		return nil, err
	}

	post, err := s.resolver.Resolve(ctx, postID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to load post")
	}
	if post == nil {
		return nil, apperror.NotFound("Post not found")
	}

	client, err := s.c.GetByID(ctx, post.ClientID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to load client")
	}
	if client == nil {
		return nil, apperror.NotFound("Client not found")
	}
	if client.UserID != userID {
		return nil, apperror.Forbidden("Access denied")
	}
	return post, nil
}

func (s *tagService) ListPostTags(ctx context.Context, userID, postID string) ([]*models.Tag, error) {
	if _, err := s.authorizePost(ctx, userID, postID); err != nil {
		return nil, err
	}

	tags, err := s.pt.ListTags(ctx, postID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to fetch tags")
	}
	return tags, nil
}

func (s *tagService) AddPostTag(ctx context.Context, userID, postID, tagID string) (*models.Tag, error) {
	if err := requireUUID(tagID, "tag_id"); err != nil {
		return nil, err
	}

	post, err := s.authorizePost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	tag, err := s.t.GetByID(ctx, tagID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to load tag")
	}
	if tag == nil {
		return nil, apperror.NotFound("Tag not found")
	}
	if tag.ClientID != post.ClientID {
		return nil, apperror.Forbidden("Tag belongs to another client")
	}

	exists, err := s.pt.Exists(ctx, postID, tagID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to check existing tag")
	}
	if exists {
		return nil, apperror.Conflict("Tag already added to this post")
	}

	if _, err := s.pt.Create(ctx, postID, tagID); err != nil {
		return nil, apperror.Wrap(err, "Failed to add tag")
	}

	return &models.Tag{ID: tag.ID, Name: tag.Name, Color: tag.Color}, nil
}

// RemovePostTag succeeds whether or not the pair existed.
func (s *tagService) RemovePostTag(ctx context.Context, userID, postID, tagID string) error {
	if err := requireUUID(tagID, "tag id"); err != nil {
		return err
	}
	if _, err := s.authorizePost(ctx, userID, postID); err != nil {
		return err
	}

	if err := s.pt.Remove(ctx, postID, tagID); err != nil {
		return apperror.Wrap(err, "Failed to remove tag")
	}
	return nil
}
