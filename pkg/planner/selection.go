package planner

import "sync"

// AccountSelection holds the destination accounts chosen per queued post.
// A post can only be dragged onto the calendar once it has at least one.
type AccountSelection struct {
	mu       sync.Mutex
	selected map[string][]string
}

func NewAccountSelection() *AccountSelection {
	return &AccountSelection{selected: make(map[string][]string)}
}

// Toggle adds or removes accountID and reports whether it is now selected.
func (s *AccountSelection) Toggle(postID, accountID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.selected[postID]
	for i, id := range list {
		if id == accountID {
			s.selected[postID] = append(list[:i:i], list[i+1:]...)
			return false
		}
	}
	s.selected[postID] = append(list, accountID)
	return true
}

func (s *AccountSelection) Set(postID string, accountIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected[postID] = append([]string{}, accountIDs...)
}

func (s *AccountSelection) Selected(postID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.selected[postID]...)
}

func (s *AccountSelection) CanDrag(postID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.selected[postID]) > 0
}

// BeginDrag returns the accounts to schedule with, or ErrDragDisabled.
// Clearing a selection later never unschedules anything.
func (s *AccountSelection) BeginDrag(postID string) ([]string, error) {
	accounts := s.Selected(postID)
	if len(accounts) == 0 {
		return nil, ErrDragDisabled
	}
	return accounts, nil
}
