package service

import (
	"context"
	"log/slog"

	"github.com/maheshrc27/contentflow/internal/models"
	"github.com/maheshrc27/contentflow/internal/repository"
	"github.com/maheshrc27/contentflow/pkg/apperror"
	"github.com/maheshrc27/contentflow/pkg/utils"
)

const maxApiKeys = 5

type ApiKeyService interface {
	Create(ctx context.Context, userID string) error
	List(ctx context.Context, userID string) ([]*models.ApiKey, error)
	GetUserID(ctx context.Context, apiKey string) (string, error)
	RemoveAPIKey(ctx context.Context, userID, keyID string) error
}

type apiKeyService struct {
	k repository.ApiKeyRepository
}

func NewApiKeyService(k repository.ApiKeyRepository) ApiKeyService {
	return &apiKeyService{
		k: k,
	}
}

func (s *apiKeyService) Create(ctx context.Context, userID string) error {
	keys, err := s.k.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if len(keys) >= maxApiKeys {
		return apperror.BadRequest("Only 5 API Keys can be created.")
	}

	key, err := utils.GenerateRandomKey(16)
	if err != nil {
		slog.Info(err.Error())
		return apperror.Wrap(err, "Error generating API key")
	}

	_, err = s.k.Create(ctx, &models.ApiKey{
		UserID: userID,
		ApiKey: key,
	})
	if err != nil {
		return apperror.Wrap(err, "Error saving API key")
	}
	return nil
}

func (s *apiKeyService) GetUserID(ctx context.Context, apiKey string) (string, error) {
	userID, isExist, err := s.k.GetByKey(ctx, apiKey)
	if err != nil {
		return "", err
	}

	if !isExist {
		return "", apperror.Unauthorized("Key doesn't exist")
	}

	return userID, nil
}

func (s *apiKeyService) List(ctx context.Context, userID string) ([]*models.ApiKey, error) {
	apiKeys, err := s.k.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Wrap(err, "Error getting API keys")
	}
	return apiKeys, nil
}

func (s *apiKeyService) RemoveAPIKey(ctx context.Context, userID, keyID string) error {
	if userID == "" {
		return apperror.Unauthorized("UserID is not valid")
	}

	if keyID == "" {
		return apperror.BadRequest("KeyID is not valid")
	}

	isValid, err := s.k.CheckByUserID(ctx, keyID, userID)
	if err != nil {
		return err
	}

	if !isValid {
		slog.Info("api key not found", "key_id", keyID)
		return apperror.NotFound("Key doesn't exist")
	}

	return s.k.Remove(ctx, keyID)
}
