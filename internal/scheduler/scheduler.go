package scheduler

import (
	"sort"
	"time"
)

const TicksPerSecond = 20

// TickInterval is the wall clock duration of one tick.
const TickInterval = time.Second / TicksPerSecond

// Seconds converts whole seconds to ticks.
func Seconds(n int) uint64 {
	return uint64(n * TicksPerSecond)
}

// Task is a scheduled callback, Cancel is safe to call any number of times.
type Task struct {
	seq       uint64
	due       uint64
	period    uint64
	fn        func()
	cancelled bool
}

func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

func (t *Task) Cancelled() bool {
	return t == nil || t.cancelled
}

// Scheduler runs callbacks on whatever goroutine calls Tick. It is not safe for
// concurrent use, all scheduling happens on the engine goroutine.
type Scheduler struct {
	now   uint64
	seq   uint64
	tasks []*Task
}

func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the number of ticks processed so far.
func (s *Scheduler) Now() uint64 {
	return s.now
}

// RunLater runs fn once after delay ticks, a zero delay means the next tick.
func (s *Scheduler) RunLater(delay uint64, fn func()) *Task {
	return s.schedule(delay, 0, fn)
}

// RunTimer runs fn after delay ticks and then every period ticks until cancelled.
func (s *Scheduler) RunTimer(delay, period uint64, fn func()) *Task {
	if period == 0 {
		period = 1
	}
	return s.schedule(delay, period, fn)
}

func (s *Scheduler) schedule(delay, period uint64, fn func()) *Task {
	if delay == 0 {
		delay = 1
	}
	s.seq++
	t := &Task{seq: s.seq, due: s.now + delay, period: period, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Tick advances the clock by one tick and runs every due task in schedule order.
func (s *Scheduler) Tick() {
	s.now++

	var due []*Task
	for _, t := range s.tasks {
		if !t.cancelled && t.due <= s.now {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})

	for _, t := range due {
		if t.cancelled {
			continue
		}
		if t.period == 0 {
			t.cancelled = true
		} else {
			t.due = s.now + t.period
		}
		t.fn()
	}

	s.compact()
}

// Advance runs n ticks.
func (s *Scheduler) Advance(n uint64) {
	for i := uint64(0); i < n; i++ {
		s.Tick()
	}
}

// Pending returns the number of live tasks.
func (s *Scheduler) Pending() int {
	var n int
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Group tracks tasks owned by one component so they can be cancelled together.
type Group struct {
	tasks []*Task
}

// Add tracks t and forgets tasks that were cancelled or have fired for good.
func (g *Group) Add(t *Task) *Task {
	g.prune()
	g.tasks = append(g.tasks, t)
	return t
}

func (g *Group) prune() {
	live := g.tasks[:0]
	for _, t := range g.tasks {
		if !t.Cancelled() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(g.tasks); i++ {
		g.tasks[i] = nil
	}
	g.tasks = live
}

// CancelAll cancels every tracked task and forgets them.
func (g *Group) CancelAll() {
	for _, t := range g.tasks {
		t.Cancel()
	}
	g.tasks = nil
}

func (g *Group) Live() int {
	g.prune()
	return len(g.tasks)
}
