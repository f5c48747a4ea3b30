package scheduler

import "testing"

func TestRunLater(t *testing.T) {
	t.Parallel()

	s := New()
	var fired int
	s.RunLater(3, func() { fired++ })

	s.Advance(2)
	if fired != 0 {
		t.Fatalf("expected %#v got %#v", 0, fired)
	}

	s.Advance(5)
	if fired != 1 {
		t.Errorf("expected %#v got %#v", 1, fired)
	}
	if s.Pending() != 0 {
		t.Errorf("expected %#v got %#v", 0, s.Pending())
	}
}

func TestRunTimerCancel(t *testing.T) {
	t.Parallel()

	s := New()
	var fired int
	var task *Task
	task = s.RunTimer(20, 20, func() {
		fired++
		if fired == 3 {
			task.Cancel()
			task.Cancel()
		}
	})

	s.Advance(200)
	if fired != 3 {
		t.Errorf("expected %#v got %#v", 3, fired)
	}
	if !task.Cancelled() {
		t.Errorf("expected task to be cancelled")
	}
}

func TestCancelBeforeDue(t *testing.T) {
	t.Parallel()

	s := New()
	var fired bool
	task := s.RunLater(1, func() { fired = true })
	task.Cancel()
	s.Advance(5)

	if fired {
		t.Errorf("cancelled task fired")
	}
}

func TestOrderWithinTick(t *testing.T) {
	t.Parallel()

	s := New()
	var order []int
	s.RunLater(5, func() { order = append(order, 1) })
	s.RunLater(5, func() { order = append(order, 2) })
	s.RunLater(4, func() { order = append(order, 0) })
	s.Advance(5)

	expected := []int{0, 1, 2}
	if len(order) != len(expected) {
		t.Fatalf("expected %#v got %#v", expected, order)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("expected %#v got %#v", expected, order)
		}
	}
}

func TestTaskScheduledDuringTickRunsLater(t *testing.T) {
	t.Parallel()

	s := New()
	var inner bool
	s.RunLater(1, func() {
		s.RunLater(0, func() { inner = true })
	})

	s.Tick()
	if inner {
		t.Fatalf("nested task ran in the same tick")
	}
	s.Tick()
	if !inner {
		t.Errorf("nested task did not run on the next tick")
	}
}

func TestGroupCancelAll(t *testing.T) {
	t.Parallel()

	s := New()
	g := &Group{}
	var fired int
	g.Add(s.RunTimer(1, 1, func() { fired++ }))
	g.Add(s.RunLater(10, func() { fired++ }))

	s.Tick()
	g.CancelAll()
	g.CancelAll()
	s.Advance(20)

	if fired != 1 {
		t.Errorf("expected %#v got %#v", 1, fired)
	}
	if g.Live() != 0 {
		t.Errorf("expected %#v got %#v", 0, g.Live())
	}
}

func TestGroupForgetsFinishedTasks(t *testing.T) {
	t.Parallel()

	s := New()
	g := &Group{}
	timer := g.Add(s.RunTimer(0, 5, func() {}))
	for i := 0; i < 100; i++ {
		g.Add(s.RunLater(0, func() {}))
		s.Tick()
	}
	cancelled := g.Add(s.RunLater(50, func() {}))
	cancelled.Cancel()
	g.Add(s.RunLater(50, func() {}))

	if len(g.tasks) != 2 {
		t.Errorf("expected %#v got %#v", 2, len(g.tasks))
	}
	if g.Live() != 2 || len(g.tasks) != 2 {
		t.Errorf("expected %#v got %#v", 2, g.Live())
	}

	timer.Cancel()
	if g.Live() != 1 {
		t.Errorf("expected %#v got %#v", 1, g.Live())
	}
}
