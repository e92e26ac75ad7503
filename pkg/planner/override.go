package planner

import "sync"

// TimeOverride tracks per-post times and the shared "apply to all" time.
//
// Applying the global time overwrites every post's effective time, which is
// what gets persisted. The individually chosen values are kept, so clearing
// the override shows them again.
type TimeOverride struct {
	mu         sync.Mutex
	individual map[string]string
	effective  map[string]string
	global     string
	applied    bool
}

func NewTimeOverride() *TimeOverride {
	return &TimeOverride{
		individual: make(map[string]string),
		effective:  make(map[string]string),
	}
}

// SetIndividual records a per-post time. It is refused while the global time
// is applied.
func (o *TimeOverride) SetIndividual(postID, clock string) error {
	if clock != "" && !validClock(clock) {
		return ErrInvalidTime
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.applied {
		return ErrOverrideActive
	}
	o.individual[postID] = clock
	o.effective[postID] = clock
	return nil
}

// SetGlobal picks a new global value. Changing it lifts a previous apply.
func (o *TimeOverride) SetGlobal(clock string) error {
	if clock != "" && !validClock(clock) {
		return ErrInvalidTime
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.global = clock
	o.applied = false
	return nil
}

// ApplyGlobal sets the global time on every listed post and returns the ids
// whose effective time changed.
func (o *TimeOverride) ApplyGlobal(postIDs []string) ([]string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.global == "" {
		return nil, ErrNoGlobalTime
	}

	var changed []string
	for _, id := range postIDs {
		if o.effective[id] != o.global {
			changed = append(changed, id)
		}
		o.effective[id] = o.global
	}
	o.applied = true
	return changed, nil
}

// ClearGlobal drops the global time and unlocks the individual selectors.
// Posts keep the applied time in storage: Displayed shows the individual
// value again while Effective still reports the global one. Callers that
// want the individual values persisted must save Displayed values again.
func (o *TimeOverride) ClearGlobal() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.global = ""
	o.applied = false
}

func (o *TimeOverride) Applied() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.applied
}

func (o *TimeOverride) Global() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.global
}

// Displayed is the value a post's time selector shows.
func (o *TimeOverride) Displayed(postID string) string {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.applied {
		return o.global
	}
	return o.individual[postID]
}

// Disabled reports whether a post's time selector is read-only.
func (o *TimeOverride) Disabled(postID string) bool {
	return o.Applied()
}

// Effective is the time to persist for a post.
func (o *TimeOverride) Effective(postID string) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.effective[postID]
}
