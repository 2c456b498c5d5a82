package trigger

import (
	"slices"
	"time"
)

// Timer is a pending one-shot callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer, false if it had already fired or been stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// FrameScheduler is a Scheduler driven by frame timestamps. Callbacks only
// run inside Advance, so they execute on the goroutine that drives the UI
// and need no locking. Use Deadline to ask the window for a redraw when the
// next timer is due.
//
// The zero value is ready to use.
type FrameScheduler struct {
	now     time.Time
	seq     uint64
	pending []*frameTimer
}

type frameTimer struct {
	s        *FrameScheduler
	seq      uint64
	delay    time.Duration
	deadline time.Time
	// anchored is false until the scheduler has seen a frame time.
	anchored bool
	f        func()
}

func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

func (s *FrameScheduler) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &frameTimer{s: s, seq: s.seq, delay: d, f: f}
	if !s.now.IsZero() {
		t.deadline = s.now.Add(d)
		t.anchored = true
	}
	s.pending = append(s.pending, t)
	return t
}

// Now returns the last time passed to Advance.
func (s *FrameScheduler) Now() time.Time {
	return s.now
}

// Len returns the number of pending timers.
func (s *FrameScheduler) Len() int {
	return len(s.pending)
}

// Advance moves the clock to now and runs, in deadline order, the
// callbacks that were due when it was called. Callbacks may schedule or
// stop timers; timers they schedule run on a later Advance, even with a
// zero delay. Time never moves backwards. It returns the number of
// callbacks run.
func (s *FrameScheduler) Advance(now time.Time) int {
	if now.Before(s.now) {
		now = s.now
	}
	s.now = now
	for _, t := range s.pending {
		if !t.anchored {
			t.deadline = now.Add(t.delay)
			t.anchored = true
		}
	}

	fired := 0
	for _, t := range s.due() {
		// an earlier callback may have stopped t.
		if !s.remove(t) {
			continue
		}
		t.f()
		fired++
	}
	return fired
}

// Deadline reports when the earliest pending timer is due.
func (s *FrameScheduler) Deadline() (time.Time, bool) {
	var next *frameTimer
	for _, t := range s.pending {
		if !t.anchored {
			continue
		}
		if next == nil || t.before(next) {
			next = t
		}
	}
	if next == nil {
		return time.Time{}, false
	}
	return next.deadline, true
}

func (s *FrameScheduler) due() []*frameTimer {
	var due []*frameTimer
	for _, t := range s.pending {
		if t.anchored && !t.deadline.After(s.now) {
			due = append(due, t)
		}
	}
	slices.SortFunc(due, func(a, b *frameTimer) int {
		switch {
		case a.before(b):
			return -1
		case b.before(a):
			return 1
		}
		return 0
	})
	return due
}

func (s *FrameScheduler) remove(t *frameTimer) bool {
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

func (t *frameTimer) Stop() bool {
	return t.s.remove(t)
}

// before orders timers by deadline, then by creation.
func (t *frameTimer) before(o *frameTimer) bool {
	if !t.deadline.Equal(o.deadline) {
		return t.deadline.Before(o.deadline)
	}
	return t.seq < o.seq
}
