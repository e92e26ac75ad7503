package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/maheshrc27/contentflow/internal/late"
	"github.com/maheshrc27/contentflow/internal/models"
	"github.com/maheshrc27/contentflow/internal/repository"
	"github.com/maheshrc27/contentflow/pkg/apperror"
	"github.com/redis/go-redis/v9"
)

const accountCacheTTL = 10 * time.Minute

type AccountService interface {
	ListAccounts(ctx context.Context, userID, clientID string) ([]*models.ConnectedAccount, error)
	SyncForUser(ctx context.Context, userID, clientID string) ([]*models.ConnectedAccount, error)
	Sync(ctx context.Context, client *models.Client) ([]*models.ConnectedAccount, error)
	// ValidateSubset fails unless every id is an account of clientID.
	ValidateSubset(ctx context.Context, clientID string, accountIDs []string) ([]*models.ConnectedAccount, error)
}

type accountService struct {
	c   repository.ClientRepository
	a   repository.AccountRepository
	lc  late.Client
	rdb *redis.Client
}

// NewAccountService builds the service. rdb may be nil to disable caching.
func NewAccountService(
	c repository.ClientRepository,
	a repository.AccountRepository,
	lc late.Client,
	rdb *redis.Client) AccountService {
	return &accountService{
		c:   c,
		a:   a,
		lc:  lc,
		rdb: rdb,
	}
}

func accountCacheKey(clientID string) string {
	return "accounts:" + clientID
}

func (s *accountService) ListAccounts(ctx context.Context, userID, clientID string) ([]*models.ConnectedAccount, error) {
	if _, err := ownedClient(ctx, s.c, userID, clientID); err != nil {
		return nil, err
	}

	if cached, ok := s.cached(ctx, clientID); ok {
		return cached, nil
	}

	accounts, err := s.a.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to fetch accounts")
	}
	s.store(ctx, clientID, accounts)
	return accounts, nil
}

func (s *accountService) SyncForUser(ctx context.Context, userID, clientID string) ([]*models.ConnectedAccount, error) {
	client, err := ownedClient(ctx, s.c, userID, clientID)
	if err != nil {
		return nil, err
	}
	return s.Sync(ctx, client)
}

// Sync mirrors the provider's accounts for the client's profile into the
// database, removing accounts the provider no longer reports.
func (s *accountService) Sync(ctx context.Context, client *models.Client) ([]*models.ConnectedAccount, error) {
	if client.LateProfileID == "" {
		return nil, apperror.BadRequest("Client has no publishing profile")
	}

	remote, err := s.lc.ListAccounts(ctx, client.LateProfileID)
	if err != nil {
		if errors.Is(err, late.ErrUnavailable) {
			return nil, apperror.WrapWithCode(err, "unavailable", "Publishing provider is unavailable")
		}
		return nil, apperror.Wrap(err, "Failed to fetch accounts from provider")
	}

	tx, err := s.a.BeginTx(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to start transaction")
	}
	defer tx.Rollback()

	keep := make([]string, 0, len(remote))
	for _, ra := range remote {
		platform := models.NormalizePlatform(ra.Platform)
		if platform == "" {
			slog.Info("skipping account on unsupported platform", "platform", ra.Platform, "client_id", client.ID)
			continue
		}
		_, err := s.a.Upsert(ctx, tx, &models.ConnectedAccount{
			ClientID:       client.ID,
			LateAccountID:  ra.ID,
			Platform:       platform,
			Username:       ra.Username,
			DisplayName:    ra.DisplayName,
			ProfilePicture: ra.ProfilePicture,
		})
		if err != nil {
			return nil, apperror.Wrap(err, "Failed to save account")
		}
		keep = append(keep, ra.ID)
	}

	if _, err := s.a.RemoveMissing(ctx, tx, client.ID, keep); err != nil {
		return nil, apperror.Wrap(err, "Failed to prune accounts")
	}

	if err := tx.Commit(); err != nil {
		return nil, apperror.Wrap(err, "Failed to commit accounts")
	}

	s.invalidate(ctx, client.ID)

	accounts, err := s.a.ListByClientID(ctx, client.ID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to fetch accounts")
	}
	return accounts, nil
}

func (s *accountService) ValidateSubset(ctx context.Context, clientID string, accountIDs []string) ([]*models.ConnectedAccount, error) {
	if len(accountIDs) == 0 {
		return nil, nil
	}
	for _, id := range accountIDs {
		if err := requireUUID(id, "account id"); err != nil {
			return nil, err
		}
	}

	accounts, err := s.a.ListByIDs(ctx, accountIDs)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to load accounts")
	}

	byID := make(map[string]*models.ConnectedAccount, len(accounts))
	for _, acc := range accounts {
		byID[acc.ID] = acc
	}

	ordered := make([]*models.ConnectedAccount, 0, len(accountIDs))
	for _, id := range accountIDs {
		acc, ok := byID[id]
		if !ok || acc.ClientID != clientID {
			return nil, apperror.BadRequest("Account " + id + " is not connected to this client")
		}
		ordered = append(ordered, acc)
	}
	return ordered, nil
}

func (s *accountService) cached(ctx context.Context, clientID string) ([]*models.ConnectedAccount, bool) {
	if s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, accountCacheKey(clientID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Info(err.Error())
		}
		return nil, false
	}
	var accounts []*models.ConnectedAccount
	if err := json.Unmarshal(raw, &accounts); err != nil {
		slog.Info(err.Error())
		return nil, false
	}
	return accounts, true
}

func (s *accountService) store(ctx context.Context, clientID string, accounts []*models.ConnectedAccount) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(accounts)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, accountCacheKey(clientID), raw, accountCacheTTL).Err(); err != nil {
		slog.Info(err.Error())
	}
}

func (s *accountService) invalidate(ctx context.Context, clientID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, accountCacheKey(clientID)).Err(); err != nil {
		slog.Info(err.Error())
	}
}
