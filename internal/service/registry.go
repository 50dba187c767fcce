package service

import (
	"errors"
	"sync"
)

var ErrSessionNotFound = errors.New("session not found")

// Registry keeps live sessions in memory. When Max is reached the oldest
// session is closed and dropped.
type Registry struct {
	Max int

	mu       sync.Mutex
	sessions map[string]*Session
	order    []string
}

func NewRegistry(max int) *Registry {
	return &Registry{Max: max, sessions: map[string]*Session{}}
}

func (r *Registry) Add(s *Session) {
	var evicted []*Session
	r.mu.Lock()
	if r.sessions == nil {
		r.sessions = map[string]*Session{}
	}
	for r.Max > 0 && len(r.order) >= r.Max {
		oldest := r.order[0]
		r.order = r.order[1:]
		if old, ok := r.sessions[oldest]; ok {
			evicted = append(evicted, old)
			delete(r.sessions, oldest)
		}
	}
	r.sessions[s.ID] = s
	r.order = append(r.order, s.ID)
	r.mu.Unlock()

	for _, old := range evicted {
		old.Close()
	}
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Remove closes and forgets the session.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if !ok {
		r.mu.Unlock()
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.mu.Unlock()

	s.Close()
	return nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
