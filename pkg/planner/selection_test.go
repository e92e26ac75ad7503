package planner

import (
	"errors"
	"reflect"
	"testing"
)

func TestAccountSelectionGatesDrag(t *testing.T) {
	s := NewAccountSelection()
	if s.CanDrag("p1") {
		t.Fatal("no accounts selected")
	}
	if _, err := s.BeginDrag("p1"); !errors.Is(err, ErrDragDisabled) {
		t.Fatalf("err = %v", err)
	}

	if !s.Toggle("p1", "acc-1") || !s.Toggle("p1", "acc-2") {
		t.Fatal("toggle should select")
	}
	got, err := s.BeginDrag("p1")
	if err != nil || !reflect.DeepEqual(got, []string{"acc-1", "acc-2"}) {
		t.Fatalf("BeginDrag = %v, %v", got, err)
	}

	if s.Toggle("p1", "acc-1") {
		t.Fatal("second toggle should deselect")
	}
	s.Toggle("p1", "acc-2")
	if s.CanDrag("p1") {
		t.Fatal("selection is empty again")
	}
}

func TestAccountSelectionCopies(t *testing.T) {
	s := NewAccountSelection()
	in := []string{"acc-1"}
	s.Set("p1", in)
	in[0] = "changed"
	if s.Selected("p1")[0] != "acc-1" {
		t.Fatal("Set kept caller slice")
	}
}
