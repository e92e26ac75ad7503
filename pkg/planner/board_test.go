package planner

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

const (
	idA = "0b6e2f44-8c1d-4a57-9a3e-1f2d3c4b5a60"
	idB = "7d1c9e20-3b4a-4f6e-8a2d-9c8b7a6f5e41"
	idC = "c3a1b2d4-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
)

func boardFixture() []*ScheduledPost {
	return []*ScheduledPost{
		{ID: idA, ScheduledDate: "2025-03-10", ScheduledTime: "15:00", Status: StatusPending},
		{ID: idB, ScheduledDate: "2025-03-12", ScheduledTime: "09:30", Status: StatusPending},
		{ID: idC, ScheduledDate: "2025-03-12", ScheduledTime: "18:00", Status: StatusScheduled},
	}
}

func ids(list []*ScheduledPost) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func TestParseDragKey(t *testing.T) {
	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{"scheduled-" + idA, idA, false},
		{"queue-" + idB, idB, false},
		{"scheduled", "", true},
		{"-" + idA, "", true},
		{"scheduled-", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := ParseDragKey(tt.key)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDragKey) {
					t.Fatalf("err = %v, want ErrInvalidDragKey", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseDragKey(%q) = %q, %v", tt.key, got, err)
			}
		})
	}
}

func TestMovePostSortsTargetByTime(t *testing.T) {
	backend := &fakeBackend{}
	b := NewBoard(backend, Key{})
	b.Load(boardFixture())

	if err := b.MovePost(context.Background(), DragKey("scheduled", idA), "2025-03-12"); err != nil {
		t.Fatalf("move: %v", err)
	}

	buckets := b.Buckets()
	if _, ok := buckets["2025-03-10"]; ok {
		t.Fatal("empty source bucket should be removed")
	}
	if got, want := ids(buckets["2025-03-12"]), []string{idB, idA, idC}; !reflect.DeepEqual(got, want) {
		t.Fatalf("target order = %v, want %v", got, want)
	}
	if len(backend.updates) != 1 || backend.updates[0] != idA {
		t.Fatalf("backend updates = %v", backend.updates)
	}
	if b.IsMoving(idA) {
		t.Fatal("moving marker should be cleared")
	}
}

func TestMovePostNoop(t *testing.T) {
	tests := []struct {
		name string
		key  string
		date string
	}{
		{"same date", DragKey("scheduled", idB), "2025-03-12"},
		{"unknown post", DragKey("scheduled", "ffffffff-0000-0000-0000-000000000000"), "2025-03-12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{}
			b := NewBoard(backend, Key{})
			b.Load(boardFixture())
			before := b.Buckets()

			if err := b.MovePost(context.Background(), tt.key, tt.date); err != nil {
				t.Fatalf("move: %v", err)
			}
			if len(backend.updates) != 0 {
				t.Fatalf("backend called: %v", backend.updates)
			}
			if !reflect.DeepEqual(before, b.Buckets()) {
				t.Fatal("board changed")
			}
		})
	}
}

func TestMovePostRollsBack(t *testing.T) {
	backend := &fakeBackend{fail: true}
	notifier := &recordingNotifier{}
	reloaded := 0
	b := NewBoard(backend, Key{}, WithNotifier(notifier), WithReload(func(context.Context) { reloaded++ }))
	b.Load(boardFixture())
	before := b.Buckets()

	err := b.MovePost(context.Background(), DragKey("scheduled", idC), "2025-03-10")
	if !errors.Is(err, errBackend) {
		t.Fatalf("err = %v, want backend error", err)
	}
	if !reflect.DeepEqual(before, b.Buckets()) {
		t.Fatal("board not restored")
	}
	if reloaded != 1 || notifier.count() != 1 {
		t.Fatalf("reloaded = %d alerts = %d", reloaded, notifier.count())
	}
	if backend.lists != 0 {
		t.Fatalf("ListScheduled calls = %d, reload hook should replace the refetch", backend.lists)
	}
	if b.IsMoving(idC) {
		t.Fatal("moving marker should be cleared after failure")
	}
}

func TestMovePostRejectsBadInput(t *testing.T) {
	b := NewBoard(&fakeBackend{}, Key{})
	b.Load(boardFixture())

	if err := b.MovePost(context.Background(), "nohyphen", "2025-03-12"); !errors.Is(err, ErrInvalidDragKey) {
		t.Fatalf("err = %v", err)
	}
	if err := b.MovePost(context.Background(), DragKey("scheduled", idA), "12/03/2025"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("err = %v", err)
	}
}

func TestMovePostRefetchesAfterRollback(t *testing.T) {
	// The server moved idB to 2025-03-11 behind the board's back.
	server := boardFixture()
	server[1].ScheduledDate = "2025-03-11"
	backend := &fakeBackend{fail: true, stored: server}
	notifier := &recordingNotifier{}
	b := NewBoard(backend, Key{}, WithNotifier(notifier))
	b.Load(boardFixture())

	if err := b.MovePost(context.Background(), DragKey("scheduled", idC), "2025-03-10"); err == nil {
		t.Fatal("expected error")
	}
	if backend.lists != 1 {
		t.Fatalf("ListScheduled calls = %d, want 1", backend.lists)
	}
	if got := ids(b.PostsOn("2025-03-11")); !reflect.DeepEqual(got, []string{idB}) {
		t.Fatalf("2025-03-11 = %v, want refetched server state", got)
	}
	if got := ids(b.PostsOn("2025-03-12")); !reflect.DeepEqual(got, []string{idC}) {
		t.Fatalf("2025-03-12 = %v", got)
	}
	if notifier.count() != 1 {
		t.Fatalf("alerts = %d", notifier.count())
	}
}

func TestBoardRefetchUsesKey(t *testing.T) {
	key := Key{ClientID: "client-1", ProjectID: "project-1"}
	mine := &ScheduledPost{ID: idA, ClientID: key.ClientID, ProjectID: key.ProjectID, ScheduledDate: "2025-03-10"}
	other := &ScheduledPost{ID: idB, ClientID: "client-2", ScheduledDate: "2025-03-10"}
	b := NewBoard(&fakeBackend{stored: []*ScheduledPost{mine, other}}, key)

	if err := b.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := ids(b.PostsOn("2025-03-10")); !reflect.DeepEqual(got, []string{idA}) {
		t.Fatalf("posts = %v", got)
	}
}

func TestBoardRemoveRollsBack(t *testing.T) {
	backend := &fakeBackend{fail: true, stored: boardFixture()}
	b := NewBoard(backend, Key{})
	b.Load(boardFixture())

	if err := b.Remove(context.Background(), idB); err == nil {
		t.Fatal("expected error")
	}
	if got := ids(b.PostsOn("2025-03-12")); !reflect.DeepEqual(got, []string{idB, idC}) {
		t.Fatalf("posts = %v", got)
	}
}

func TestBucketsAreCopies(t *testing.T) {
	b := NewBoard(&fakeBackend{}, Key{})
	b.Load(boardFixture())

	b.Buckets()["2025-03-12"][0].Caption = "mutated"
	if b.PostsOn("2025-03-12")[0].Caption != "" {
		t.Fatal("Buckets leaked internal state")
	}
}
