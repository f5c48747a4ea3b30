package pattern

import "github.com/bloops-games/colorparty/internal/random"

const HistorySize = 12

func NewSelector(size int, rnd random.Source) *Selector {
	return &Selector{size: size, window: HistorySize, rnd: rnd}
}

// Selector picks pattern ids so that no id repeats within the history window.
type Selector struct {
	size    int
	window  int
	rnd     random.Source
	history []int
}

// Next returns a pattern id in [1, size] that is not in the history and records it.
func (s *Selector) Next() int {
	candidates := make([]int, 0, s.size)
CandidateLoop:
	for id := 1; id <= s.size; id++ {
		for _, used := range s.history {
			if used == id {
				continue CandidateLoop
			}
		}
		candidates = append(candidates, id)
	}

	// unreachable while size > window
	if len(candidates) == 0 {
		for id := 1; id <= s.size; id++ {
			candidates = append(candidates, id)
		}
	}

	id := candidates[random.Intn(s.rnd, len(candidates))]
	s.history = append(s.history, id)
	if len(s.history) > s.window {
		s.history = s.history[1:]
	}

	return id
}

// History returns the recent ids, oldest first.
func (s *Selector) History() []int {
	out := make([]int, len(s.history))
	copy(out, s.history)
	return out
}
