package service

import (
	"context"
	"errors"
	"log/slog"

	config "github.com/maheshrc27/contentflow/configs"
	"github.com/maheshrc27/contentflow/internal/models"
	"github.com/maheshrc27/contentflow/internal/repository"
	"github.com/maheshrc27/contentflow/internal/transfer"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

type AuthService interface {
	LoginURL(state string) string
	LoginCallback(ctx context.Context, code string) (userID string, err error)
}

type authService struct {
	cfg          config.Config
	u            repository.UserRepository
	oauth2Config *oauth2.Config
}

func NewAuthService(cfg config.Config, u repository.UserRepository) AuthService {
	return &authService{
		cfg: cfg,
		u:   u,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURI,
			Scopes:       []string{oauth2api.UserinfoEmailScope, oauth2api.UserinfoProfileScope},
			Endpoint:     google.Endpoint,
		},
	}
}

func (s *authService) LoginURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (s *authService) LoginCallback(ctx context.Context, code string) (string, error) {
	if code == "" {
		err := errors.New("code or state is empty")
		slog.Info(err.Error())
		return "", err
	}

	if s.oauth2Config.ClientID == "" || s.oauth2Config.ClientSecret == "" || s.oauth2Config.RedirectURL == "" {
		err := errors.New("OAuth2 configuration is incomplete")
		slog.Info(err.Error())
		return "", err
	}

	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	userInfo, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		return "", err
	}

	user, isExist, err := s.u.GetByEmail(ctx, userInfo.Email)
	if err != nil {
		return "", err
	}

	if isExist && user.GoogleID != "" {
		return user.ID, nil
	}

	userID, err := s.u.Create(ctx, nil, &models.User{
		GoogleID:       userInfo.ID,
		Email:          userInfo.Email,
		Name:           userInfo.Name,
		ProfilePicture: userInfo.Picture,
	})
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return userID, nil
}

func (s *authService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*transfer.GoogleUserInfo, error) {
	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(s.oauth2Config.TokenSource(ctx, token)))
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return &transfer.GoogleUserInfo{
		ID:      info.Id,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}
