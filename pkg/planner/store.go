package planner

import (
	"context"
	"fmt"
	"sync"
)

// Store is the single source of truth for scheduled posts on the client.
// Every mutation is applied locally first, then persisted; when the backend
// rejects it the whole state is restored from a snapshot and refetched.
type Store struct {
	mu       sync.Mutex
	backend  Backend
	notifier Notifier
	posts    map[Key][]*ScheduledPost
}

func NewStore(backend Backend, notifier Notifier) *Store {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Store{
		backend:  backend,
		notifier: notifier,
		posts:    make(map[Key][]*ScheduledPost),
	}
}

func (s *Store) snapshot() map[Key][]*ScheduledPost {
	out := make(map[Key][]*ScheduledPost, len(s.posts))
	for k, list := range s.posts {
		out[k] = cloneList(list)
	}
	return out
}

func (s *Store) locate(id string) (Key, int) {
	for k, list := range s.posts {
		for i, p := range list {
			if p.ID == id {
				return k, i
			}
		}
	}
	return Key{}, -1
}

// Load replaces the partition with the backend's view.
func (s *Store) Load(ctx context.Context, key Key) ([]*ScheduledPost, error) {
	posts, err := s.backend.ListScheduled(ctx, key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[key] = cloneList(posts)
	return cloneList(posts), nil
}

func (s *Store) List(key Key) []*ScheduledPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneList(s.posts[key])
}

func (s *Store) Get(id string) *ScheduledPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	k, i := s.locate(id)
	if i < 0 {
		return nil
	}
	return s.posts[k][i].Clone()
}

// rollback restores snap, reloads the affected partition and alerts.
func (s *Store) rollback(ctx context.Context, snap map[Key][]*ScheduledPost, key Key, action string, cause error) {
	s.mu.Lock()
	s.posts = snap
	s.mu.Unlock()

	// a failed refetch leaves the restored snapshot in place
	s.Load(ctx, key)
	s.notifier.Alert(fmt.Sprintf("Failed to %s: %v", action, cause))
}

func (s *Store) Create(ctx context.Context, sp *ScheduledPost) (*ScheduledPost, error) {
	key := sp.Key()

	s.mu.Lock()
	snap := s.snapshot()
	s.posts[key] = append(s.posts[key], sp.Clone())
	s.mu.Unlock()

	saved, err := s.backend.CreateScheduled(ctx, sp.Clone())
	if err != nil {
		s.rollback(ctx, snap, key, "schedule post", err)
		return nil, err
	}

	s.mu.Lock()
	if k, i := s.locate(sp.ID); i >= 0 && saved != nil {
		s.posts[k][i] = saved.Clone()
	}
	s.mu.Unlock()

	if saved == nil {
		return sp.Clone(), nil
	}
	return saved.Clone(), nil
}

// Update applies u optimistically and persists it.
func (s *Store) Update(ctx context.Context, id string, u Update, action string) error {
	s.mu.Lock()
	key, i := s.locate(id)
	if i < 0 {
		s.mu.Unlock()
		return ErrPostNotFound
	}
	snap := s.snapshot()
	updated := s.posts[key][i].Clone()
	u.apply(updated)
	s.posts[key][i] = updated
	s.mu.Unlock()

	if _, err := s.backend.UpdateScheduled(ctx, id, u); err != nil {
		s.rollback(ctx, snap, key, action, err)
		return err
	}
	return nil
}

func (s *Store) Move(ctx context.Context, id, newDate string) error {
	if !validDate(newDate) {
		return ErrInvalidDate
	}
	if cur := s.Get(id); cur != nil && cur.ScheduledDate == newDate {
		return nil
	}
	return s.Update(ctx, id, Update{ScheduledDate: &newDate}, "move post")
}

func (s *Store) SetTime(ctx context.Context, id, clock string) error {
	if clock != "" && !validClock(clock) {
		return ErrInvalidTime
	}
	return s.Update(ctx, id, Update{ScheduledTime: &clock}, "update time")
}

func (s *Store) SetAccounts(ctx context.Context, id string, accountIDs []string) error {
	ids := append([]string{}, accountIDs...)
	return s.Update(ctx, id, Update{AccountIDs: &ids}, "update accounts")
}

func (s *Store) SetStatus(ctx context.Context, id, status string) error {
	return s.Update(ctx, id, Update{Status: &status}, "update status")
}

func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	key, i := s.locate(id)
	if i < 0 {
		s.mu.Unlock()
		return ErrPostNotFound
	}
	snap := s.snapshot()
	list := s.posts[key]
	s.posts[key] = append(list[:i:i], list[i+1:]...)
	s.mu.Unlock()

	if err := s.backend.DeleteScheduled(ctx, id); err != nil {
		s.rollback(ctx, snap, key, "delete post", err)
		return err
	}
	return nil
}
