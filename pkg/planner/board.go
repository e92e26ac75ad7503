package planner

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Board is the calendar column view: scheduled posts of one partition
// bucketed by date.
type Board struct {
	mu       sync.Mutex
	key      Key
	buckets  map[string][]*ScheduledPost
	moving   map[string]struct{}
	backend  Backend
	notifier Notifier
	reload   func(ctx context.Context)
}

type BoardOption func(*Board)

func WithNotifier(n Notifier) BoardOption {
	return func(b *Board) { b.notifier = n }
}

// WithReload replaces the refetch run after a failed mutation has been
// rolled back.
func WithReload(fn func(ctx context.Context)) BoardOption {
	return func(b *Board) { b.reload = fn }
}

func NewBoard(backend Backend, key Key, opts ...BoardOption) *Board {
	b := &Board{
		key:      key,
		buckets:  make(map[string][]*ScheduledPost),
		moving:   make(map[string]struct{}),
		backend:  backend,
		notifier: nopNotifier{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Load replaces the board contents.
func (b *Board) Load(posts []*ScheduledPost) {
	buckets := BucketByDate(posts)
	for _, list := range buckets {
		sortByTime(list)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.buckets = buckets
}

// Refresh refetches the board's partition from the backend. The current
// contents stay when the fetch fails.
func (b *Board) Refresh(ctx context.Context) error {
	posts, err := b.backend.ListScheduled(ctx, b.key)
	if err != nil {
		return err
	}
	b.Load(posts)
	return nil
}

func (b *Board) snapshot() map[string][]*ScheduledPost {
	out := make(map[string][]*ScheduledPost, len(b.buckets))
	for date, list := range b.buckets {
		out[date] = cloneList(list)
	}
	return out
}

// Buckets returns a deep copy of the date to posts mapping.
func (b *Board) Buckets() map[string][]*ScheduledPost {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot()
}

func (b *Board) PostsOn(date string) []*ScheduledPost {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneList(b.buckets[date])
}

func (b *Board) IsMoving(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.moving[id]
	return ok
}

// locate finds the bucket holding id.
func (b *Board) locate(id string) (string, int) {
	for date, list := range b.buckets {
		for i, p := range list {
			if p.ID == id {
				return date, i
			}
		}
	}
	return "", -1
}

func (b *Board) removeAt(date string, i int) *ScheduledPost {
	list := b.buckets[date]
	p := list[i]
	rest := append(list[:i:i], list[i+1:]...)
	if len(rest) == 0 {
		delete(b.buckets, date)
	} else {
		b.buckets[date] = rest
	}
	return p
}

// MovePost moves the post named by dragKey to targetDate. Dropping a post on
// its own date, or a key no bucket knows, does nothing.
func (b *Board) MovePost(ctx context.Context, dragKey, targetDate string) error {
	id, err := ParseDragKey(dragKey)
	if err != nil {
		return err
	}
	if !validDate(targetDate) {
		return ErrInvalidDate
	}

	b.mu.Lock()
	source, i := b.locate(id)
	if i < 0 || source == targetDate {
		b.mu.Unlock()
		return nil
	}

	snap := b.snapshot()

	moved := b.removeAt(source, i).Clone()
	moved.ScheduledDate = targetDate
	b.buckets[targetDate] = append(b.buckets[targetDate], moved)
	sortByTime(b.buckets[targetDate])

	b.moving[id] = struct{}{}
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.moving, id)
		b.mu.Unlock()
	}()

	date := targetDate
	if _, err := b.backend.UpdateScheduled(ctx, id, Update{ScheduledDate: &date}); err != nil {
		b.rollback(ctx, snap, fmt.Sprintf("Failed to move post: %v", err))
		return err
	}
	return nil
}

// Remove deletes a post with the same rollback protocol as MovePost.
func (b *Board) Remove(ctx context.Context, id string) error {
	b.mu.Lock()
	date, i := b.locate(id)
	if i < 0 {
		b.mu.Unlock()
		return ErrPostNotFound
	}
	snap := b.snapshot()
	b.removeAt(date, i)
	b.moving[id] = struct{}{}
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.moving, id)
		b.mu.Unlock()
	}()

	if err := b.backend.DeleteScheduled(ctx, id); err != nil {
		b.rollback(ctx, snap, fmt.Sprintf("Failed to delete post: %v", err))
		return err
	}
	return nil
}

func (b *Board) rollback(ctx context.Context, snap map[string][]*ScheduledPost, msg string) {
	b.mu.Lock()
	b.buckets = snap
	b.mu.Unlock()

	if b.reload != nil {
		b.reload(ctx)
	} else {
		b.Refresh(ctx)
	}
	b.notifier.Alert(msg)
}

// sortByTime orders posts by HH:MM ascending. Posts without a time come first
// and ties keep their order.
func sortByTime(list []*ScheduledPost) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].ScheduledTime < list[j].ScheduledTime
	})
}
