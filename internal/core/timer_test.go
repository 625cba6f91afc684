package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFrameSchedulerRunsWhenDue(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewFrameScheduler(clock.now)

	calls := 0
	s.AfterFunc(500*time.Millisecond, func() { calls++ })

	if n := s.Poll(); n != 0 || calls != 0 {
		t.Fatalf("poll before deadline ran %d callbacks", n)
	}
	clock.advance(499 * time.Millisecond)
	if s.Poll(); calls != 0 {
		t.Fatal("callback ran early")
	}
	clock.advance(time.Millisecond)
	if n := s.Poll(); n != 1 || calls != 1 {
		t.Fatalf("poll at deadline ran %d callbacks, calls=%d", n, calls)
	}
	clock.advance(time.Second)
	if s.Poll(); calls != 1 {
		t.Fatal("callback must run once")
	}
	if s.Pending() != 0 {
		t.Fatalf("pending = %d, want 0", s.Pending())
	}
}

func TestFrameSchedulerStop(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewFrameScheduler(clock.now)

	ran := false
	h := s.AfterFunc(time.Millisecond, func() { ran = true })
	if !h.Stop() {
		t.Fatal("first Stop must report true")
	}
	if h.Stop() {
		t.Fatal("second Stop must report false")
	}
	clock.advance(time.Second)
	s.Poll()
	if ran {
		t.Fatal("stopped callback ran")
	}
	if s.Pending() != 0 {
		t.Fatalf("pending = %d, want 0", s.Pending())
	}
}

func TestFrameSchedulerStopAfterFire(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewFrameScheduler(clock.now)
	h := s.AfterFunc(0, func() {})
	s.Poll()
	if h.Stop() {
		t.Fatal("Stop after the callback ran must report false")
	}
}

func TestFrameSchedulerReschedulingWaitsForNextPoll(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewFrameScheduler(clock.now)

	calls := 0
	var tick func()
	tick = func() {
		calls++
		s.AfterFunc(0, tick)
	}
	s.AfterFunc(0, tick)

	for i := 1; i <= 3; i++ {
		s.Poll()
		if calls != i {
			t.Fatalf("after poll %d calls = %d", i, calls)
		}
	}
}

func TestTimerSchedulerFires(t *testing.T) {
	done := make(chan struct{})
	TimerScheduler{}.AfterFunc(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timer callback never fired")
	}
}

func TestTimerSchedulerStop(t *testing.T) {
	fired := make(chan struct{}, 1)
	h := TimerScheduler{}.AfterFunc(time.Hour, func() { fired <- struct{}{} })
	if !h.Stop() {
		t.Fatal("Stop on a pending timer must report true")
	}
}
