package planner

import (
	"context"
	"errors"
	"sync"
)

var errBackend = errors.New("backend down")

type fakeBackend struct {
	mu      sync.Mutex
	fail    bool
	lists   int
	updates []string
	deletes []string
	created []*ScheduledPost
	stored  []*ScheduledPost
}

func (f *fakeBackend) ListScheduled(ctx context.Context, key Key) ([]*ScheduledPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	var out []*ScheduledPost
	for _, p := range f.stored {
		if p.Key() == key {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

func (f *fakeBackend) CreateScheduled(ctx context.Context, sp *ScheduledPost) (*ScheduledPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errBackend
	}
	f.created = append(f.created, sp.Clone())
	return sp, nil
}

func (f *fakeBackend) UpdateScheduled(ctx context.Context, id string, u Update) (*ScheduledPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, id)
	if f.fail {
		return nil, errBackend
	}
	return &ScheduledPost{ID: id}, nil
}

func (f *fakeBackend) DeleteScheduled(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, id)
	if f.fail {
		return errBackend
	}
	return nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	msgs []string
}

func (n *recordingNotifier) Alert(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.msgs)
}
