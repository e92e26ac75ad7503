package planner

import (
	"context"
	"errors"
	"testing"
)

var storeKey = Key{ClientID: "c1", ProjectID: "p1"}

func loadedStore(t *testing.T, backend *fakeBackend, notifier Notifier) *Store {
	t.Helper()
	backend.stored = []*ScheduledPost{
		{ID: idA, ClientID: "c1", ProjectID: "p1", ScheduledDate: "2025-03-10", ScheduledTime: "09:00", Status: StatusPending},
	}
	s := NewStore(backend, notifier)
	if _, err := s.Load(context.Background(), storeKey); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestStoreMoveAndSetTime(t *testing.T) {
	backend := &fakeBackend{}
	s := loadedStore(t, backend, nil)
	ctx := context.Background()

	if err := s.Move(ctx, idA, "2025-03-10"); err != nil {
		t.Fatal(err)
	}
	if len(backend.updates) != 0 {
		t.Fatal("moving to the same date should not persist")
	}

	if err := s.Move(ctx, idA, "2025-03-11"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetTime(ctx, idA, "14:30"); err != nil {
		t.Fatal(err)
	}
	got := s.Get(idA)
	if got.ScheduledDate != "2025-03-11" || got.ScheduledTime != "14:30" {
		t.Fatalf("post = %+v", got)
	}
	if err := s.SetTime(ctx, idA, "2pm"); !errors.Is(err, ErrInvalidTime) {
		t.Fatalf("err = %v", err)
	}
}

func TestStoreRollbackOnFailure(t *testing.T) {
	backend := &fakeBackend{}
	notifier := &recordingNotifier{}
	s := loadedStore(t, backend, notifier)
	ctx := context.Background()
	backend.fail = true

	if err := s.SetAccounts(ctx, idA, []string{"acc-9"}); !errors.Is(err, errBackend) {
		t.Fatalf("err = %v", err)
	}
	if got := s.Get(idA); len(got.AccountIDs) != 0 {
		t.Fatalf("accounts not restored: %v", got.AccountIDs)
	}
	if err := s.Remove(ctx, idA); err == nil {
		t.Fatal("expected error")
	}
	if s.Get(idA) == nil {
		t.Fatal("removed post not restored")
	}
	if backend.lists != 3 {
		t.Fatalf("lists = %d, want initial load plus one refetch per failure", backend.lists)
	}
	if notifier.count() != 2 {
		t.Fatalf("alerts = %d", notifier.count())
	}
}

func TestStoreCreateRollback(t *testing.T) {
	backend := &fakeBackend{}
	s := loadedStore(t, backend, nil)
	backend.fail = true

	sp := &ScheduledPost{ID: idB, ClientID: "c1", ProjectID: "p1", ScheduledDate: "2025-03-12", Status: StatusPending}
	if _, err := s.Create(context.Background(), sp); err == nil {
		t.Fatal("expected error")
	}
	if len(s.List(storeKey)) != 1 {
		t.Fatalf("list = %v", s.List(storeKey))
	}
}

func TestStoreUnknownPost(t *testing.T) {
	s := NewStore(&fakeBackend{}, nil)
	if err := s.SetStatus(context.Background(), "missing", StatusScheduled); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("err = %v", err)
	}
}
