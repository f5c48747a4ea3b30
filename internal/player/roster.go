package player

import "github.com/google/uuid"

// Roster is an insertion-ordered set of player ids.
type Roster struct {
	ids   []uuid.UUID
	index map[uuid.UUID]struct{}
}

func NewRoster() *Roster {
	return &Roster{index: map[uuid.UUID]struct{}{}}
}

func (r *Roster) Add(id uuid.UUID) bool {
	if _, ok := r.index[id]; ok {
		return false
	}
	r.index[id] = struct{}{}
	r.ids = append(r.ids, id)
	return true
}

func (r *Roster) Remove(id uuid.UUID) bool {
	if _, ok := r.index[id]; !ok {
		return false
	}
	delete(r.index, id)
	for i, v := range r.ids {
		if v == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return true
}

func (r *Roster) Contains(id uuid.UUID) bool {
	_, ok := r.index[id]
	return ok
}

func (r *Roster) Len() int {
	return len(r.ids)
}

// IDs returns a copy in insertion order.
func (r *Roster) IDs() []uuid.UUID {
	out := make([]uuid.UUID, len(r.ids))
	copy(out, r.ids)
	return out
}

func (r *Roster) Clear() {
	r.ids = nil
	r.index = map[uuid.UUID]struct{}{}
}
