package service

import (
	"context"
	"strings"

	"github.com/maheshrc27/contentflow/internal/models"
	"github.com/maheshrc27/contentflow/internal/repository"
	"github.com/maheshrc27/contentflow/internal/transfer"
	"github.com/maheshrc27/contentflow/pkg/apperror"
	"github.com/maheshrc27/contentflow/pkg/utils"
)

const defaultTagColor = "#6366f1"

type ClientService interface {
	CreateClient(ctx context.Context, userID string, req *transfer.CreateClientRequest) (*models.Client, error)
	ListClients(ctx context.Context, userID string) ([]*models.Client, error)
	GetClient(ctx context.Context, userID, clientID string) (*models.Client, error)
	CreateProject(ctx context.Context, userID, clientID string, req *transfer.CreateProjectRequest) (*models.Project, error)
	ListProjects(ctx context.Context, userID, clientID string) ([]*models.Project, error)
	CreateTag(ctx context.Context, userID, clientID string, req *transfer.CreateTagRequest) (*models.Tag, error)
	ListTags(ctx context.Context, userID, clientID string) ([]*models.Tag, error)
}

type clientService struct {
	c repository.ClientRepository
	p repository.ProjectRepository
	t repository.TagRepository
}

func NewClientService(c repository.ClientRepository, p repository.ProjectRepository, t repository.TagRepository) ClientService {
	return &clientService{
		c: c,
		p: p,
		t: t,
	}
}

func (s *clientService) CreateClient(ctx context.Context, userID string, req *transfer.CreateClientRequest) (*models.Client, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.BadRequest("Client name is required")
	}

	postingTime := req.DefaultPostingTime
	if postingTime == "" {
		postingTime = defaultPostingTime
	}
	if !validClock(postingTime) {
		return nil, apperror.BadRequest("default_posting_time must be HH:MM")
	}

	client := &models.Client{
		UserID:             userID,
		Name:               name,
		LateProfileID:      req.LateProfileID,
		DefaultPostingTime: postingTime,
	}

	id, err := s.c.Create(ctx, client)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to create client")
	}
	client.ID = id
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, userID string) ([]*models.Client, error) {
	clients, err := s.c.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to fetch clients")
	}
	return clients, nil
}

func (s *clientService) GetClient(ctx context.Context, userID, clientID string) (*models.Client, error) {
	return ownedClient(ctx, s.c, userID, clientID)
}

func (s *clientService) CreateProject(ctx context.Context, userID, clientID string, req *transfer.CreateProjectRequest) (*models.Project, error) {
	if _, err := ownedClient(ctx, s.c, userID, clientID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.BadRequest("Project name is required")
	}

	token, err := utils.GeneratePortalToken()
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to generate portal token")
	}

	project := &models.Project{
		ClientID:    clientID,
		Name:        name,
		PortalToken: token,
	}

	id, err := s.p.Create(ctx, project)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to create project")
	}
	project.ID = id
	return project, nil
}

func (s *clientService) ListProjects(ctx context.Context, userID, clientID string) ([]*models.Project, error) {
	if _, err := ownedClient(ctx, s.c, userID, clientID); err != nil {
		return nil, err
	}

	projects, err := s.p.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to fetch projects")
	}
	return projects, nil
}

func (s *clientService) CreateTag(ctx context.Context, userID, clientID string, req *transfer.CreateTagRequest) (*models.Tag, error) {
	if _, err := ownedClient(ctx, s.c, userID, clientID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.BadRequest("Tag name is required")
	}
	color := req.Color
	if color == "" {
		color = defaultTagColor
	}

	tag := &models.Tag{
		ClientID: clientID,
		Name:     name,
		Color:    color,
	}

	id, err := s.t.Create(ctx, tag)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to create tag")
	}
	tag.ID = id
	return tag, nil
}

func (s *clientService) ListTags(ctx context.Context, userID, clientID string) ([]*models.Tag, error) {
	if _, err := ownedClient(ctx, s.c, userID, clientID); err != nil {
		return nil, err
	}

	tags, err := s.t.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to fetch tags")
	}
	return tags, nil
}
