package player

import "github.com/google/uuid"

// Registry maps player ids to their sessions.
type Registry struct {
	order    *Roster
	sessions map[uuid.UUID]*Session
}

func NewRegistry() *Registry {
	return &Registry{order: NewRoster(), sessions: map[uuid.UUID]*Session{}}
}

func (r *Registry) Put(s *Session) {
	r.order.Add(s.ID())
	r.sessions[s.ID()] = s
}

func (r *Registry) Get(id uuid.UUID) (*Session, bool) {
	s, ok := r.sessions[id]
	return s, ok
}

func (r *Registry) Delete(id uuid.UUID) (*Session, bool) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	delete(r.sessions, id)
	r.order.Remove(id)
	return s, true
}

func (r *Registry) Len() int {
	return r.order.Len()
}

// Each visits sessions in join order.
func (r *Registry) Each(fn func(s *Session)) {
	for _, id := range r.order.IDs() {
		if s, ok := r.sessions[id]; ok {
			fn(s)
		}
	}
}
