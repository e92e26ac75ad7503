package job

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/maheshrc27/contentflow/internal/models"
	"github.com/maheshrc27/contentflow/internal/repository"
	"github.com/maheshrc27/contentflow/internal/service"
)

const (
	syncConcurrency = 5
	syncTimeout     = 5 * time.Minute
)

// AccountSyncJob refreshes every client's connected accounts from the
// publishing provider.
type AccountSyncJob struct {
	cr repository.ClientRepository
	as service.AccountService
}

func NewAccountSyncJob(cr repository.ClientRepository, as service.AccountService) *AccountSyncJob {
	return &AccountSyncJob{
		cr: cr,
		as: as,
	}
}

func (j *AccountSyncJob) SyncAccounts() {
	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	clients, err := j.cr.ListAll(ctx)
	if err != nil {
		slog.Info(err.Error())
		return
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, syncConcurrency)

	for _, client := range clients {
		if client.LateProfileID == "" {
			continue
		}
		wg.Add(1)
		semaphore <- struct{}{}

		go func(client *models.Client) {
			defer wg.Done()
			defer func() { <-semaphore }()

			accounts, err := j.as.Sync(ctx, client)
			if err != nil {
				slog.Info("unable to sync accounts", "client_id", client.ID, "error", err.Error())
				return
			}
			slog.Debug("accounts synced", "client_id", client.ID, "count", len(accounts))
		}(client)
	}

	wg.Wait()
}
