package trigger

import (
	"testing"
	"time"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestFrameSchedulerOrder(t *testing.T) {
	s := NewFrameScheduler()
	s.Advance(t0)

	var got []string
	s.AfterFunc(300*time.Millisecond, func() { got = append(got, "c") })
	s.AfterFunc(100*time.Millisecond, func() { got = append(got, "a") })
	s.AfterFunc(100*time.Millisecond, func() { got = append(got, "b") })

	if d, ok := s.Deadline(); !ok || !d.Equal(t0.Add(100*time.Millisecond)) {
		t.Fatalf("Deadline() = %v, %v", d, ok)
	}

	if n := s.Advance(t0.Add(50 * time.Millisecond)); n != 0 {
		t.Fatalf("fired %d timers early", n)
	}
	if n := s.Advance(t0.Add(time.Second)); n != 3 {
		t.Fatalf("fired %d timers, want 3", n)
	}
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("order = %v", got)
	}
	if _, ok := s.Deadline(); ok {
		t.Fatal("deadline left after all timers fired")
	}
}

func TestFrameSchedulerStop(t *testing.T) {
	s := NewFrameScheduler()
	s.Advance(t0)

	fired := false
	timer := s.AfterFunc(time.Second, func() { fired = true })
	if !timer.Stop() {
		t.Fatal("Stop() on pending timer returned false")
	}
	if timer.Stop() {
		t.Fatal("second Stop() returned true")
	}
	s.Advance(t0.Add(2 * time.Second))
	if fired {
		t.Fatal("stopped timer fired")
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d", s.Len())
	}
}

func TestFrameSchedulerUnanchored(t *testing.T) {
	var s FrameScheduler
	fired := 0
	s.AfterFunc(time.Second, func() { fired++ })

	if _, ok := s.Deadline(); ok {
		t.Fatal("unanchored timer reported a deadline")
	}

	// the first frame anchors the timer instead of firing it.
	s.Advance(t0)
	if fired != 0 {
		t.Fatal("timer fired on the anchoring frame")
	}
	s.Advance(t0.Add(time.Second))
	if fired != 1 {
		t.Fatalf("fired = %d", fired)
	}
}

func TestFrameSchedulerNestedSchedule(t *testing.T) {
	s := NewFrameScheduler()
	s.Advance(t0)

	var got []int
	s.AfterFunc(0, func() {
		got = append(got, 1)
		s.AfterFunc(0, func() { got = append(got, 2) })
		s.AfterFunc(time.Minute, func() { got = append(got, 3) })
	})

	if n := s.Advance(t0); n != 1 || len(got) != 1 {
		t.Fatalf("first advance fired %d, got = %v", n, got)
	}
	// the zero-delay timer scheduled by the callback waits for the next
	// frame, which is due right away.
	if d, ok := s.Deadline(); !ok || !d.Equal(t0) {
		t.Fatalf("Deadline() = %v, %v", d, ok)
	}
	if n := s.Advance(t0); n != 1 || len(got) != 2 {
		t.Fatalf("second advance fired %d, got = %v", n, got)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d", s.Len())
	}
}

func TestFrameSchedulerSelfReschedule(t *testing.T) {
	s := NewFrameScheduler()
	s.Advance(t0)

	runs := 0
	var tick func()
	tick = func() {
		runs++
		s.AfterFunc(0, tick)
	}
	s.AfterFunc(0, tick)

	for i := 1; i <= 3; i++ {
		if n := s.Advance(t0); n != 1 {
			t.Fatalf("advance %d fired %d callbacks, want 1", i, n)
		}
	}
	if runs != 3 || s.Len() != 1 {
		t.Fatalf("runs = %d, Len() = %d", runs, s.Len())
	}
}

func TestFrameSchedulerStopDuringAdvance(t *testing.T) {
	s := NewFrameScheduler()
	s.Advance(t0)

	fired := false
	var second Timer
	s.AfterFunc(0, func() { second.Stop() })
	second = s.AfterFunc(0, func() { fired = true })

	if n := s.Advance(t0); n != 1 {
		t.Fatalf("fired %d callbacks, want 1", n)
	}
	if fired {
		t.Fatal("timer stopped by an earlier callback still fired")
	}
}

func TestFrameSchedulerMonotonic(t *testing.T) {
	s := NewFrameScheduler()
	s.Advance(t0.Add(time.Second))
	s.Advance(t0)
	if !s.Now().Equal(t0.Add(time.Second)) {
		t.Fatalf("clock moved backwards to %v", s.Now())
	}
}
