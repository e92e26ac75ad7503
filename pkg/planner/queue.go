package planner

import (
	"sync"

	"github.com/google/uuid"
)

// Queue keeps queue items and the scheduled posts created from them, both
// per (client, project). The two lists are independent views: scheduling a
// post does not take it out of the queue.
type Queue struct {
	mu        sync.Mutex
	posts     map[Key][]*Post
	scheduled map[Key][]*ScheduledPost
	newID     func() string
}

func NewQueue() *Queue {
	return &Queue{
		posts:     make(map[Key][]*Post),
		scheduled: make(map[Key][]*ScheduledPost),
		newID:     uuid.NewString,
	}
}

// AddPost appends the post to its partition unless that id is already there.
func (q *Queue) AddPost(p *Post) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	key := p.Key()
	for _, existing := range q.posts[key] {
		if existing.ID == p.ID {
			return false
		}
	}
	cp := *p
	q.posts[key] = append(q.posts[key], &cp)
	return true
}

func (q *Queue) find(key Key, postID string) (int, *Post) {
	for i, p := range q.posts[key] {
		if p.ID == postID {
			return i, p
		}
	}
	return -1, nil
}

func (q *Queue) UpdateCaption(key Key, postID, caption string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	_, p := q.find(key, postID)
	if p == nil {
		return ErrPostNotFound
	}
	p.Caption = caption
	return nil
}

func (q *Queue) RemovePost(key Key, postID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	i, _ := q.find(key, postID)
	if i < 0 {
		return false
	}
	list := q.posts[key]
	q.posts[key] = append(list[:i:i], list[i+1:]...)
	if len(q.posts[key]) == 0 {
		delete(q.posts, key)
	}
	return true
}

func (q *Queue) Posts(key Key) []*Post {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]*Post, 0, len(q.posts[key]))
	for _, p := range q.posts[key] {
		cp := *p
		out = append(out, &cp)
	}
	return out
}

// SchedulePost creates a pending scheduled post for a queued post. The time
// is left empty and set separately.
func (q *Queue) SchedulePost(postID, date string, accountIDs []string, projectID, clientID string) (*ScheduledPost, error) {
	if !validDate(date) {
		return nil, ErrInvalidDate
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	key := Key{ClientID: clientID, ProjectID: projectID}
	_, p := q.find(key, postID)
	if p == nil {
		return nil, ErrPostNotFound
	}

	sp := &ScheduledPost{
		ID:            q.newID(),
		PostID:        p.ID,
		ClientID:      clientID,
		ProjectID:     projectID,
		Caption:       p.Caption,
		ImageURL:      p.ImageURL,
		ScheduledDate: date,
		AccountIDs:    append([]string{}, accountIDs...),
		Status:        StatusPending,
	}
	q.scheduled[key] = append(q.scheduled[key], sp)
	return sp.Clone(), nil
}

func (q *Queue) Scheduled(key Key) []*ScheduledPost {
	q.mu.Lock()
	defer q.mu.Unlock()

	return cloneList(q.scheduled[key])
}
