package core

import (
	"sync"
	"time"
)

// Handle is a pending scheduled callback.
type Handle interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the callback, false meaning it already ran or was stopped.
	Stop() bool
}

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Handle
}

// TimerScheduler schedules callbacks on runtime timers. Callbacks run on their
// own goroutine.
type TimerScheduler struct{}

// AfterFunc wraps time.AfterFunc.
func (TimerScheduler) AfterFunc(d time.Duration, f func()) Handle {
	return time.AfterFunc(d, f)
}

// FrameScheduler queues callbacks until a frame loop polls for them, so they
// run on the polling goroutine.
type FrameScheduler struct {
	mu    sync.Mutex
	now   func() time.Time
	tasks []*frameTask
}

type frameTask struct {
	due     time.Time
	fn      func()
	stopped bool
	fired   bool
	owner   *FrameScheduler
}

// NewFrameScheduler constructs a FrameScheduler. A nil clock uses time.Now.
func NewFrameScheduler(now func() time.Time) *FrameScheduler {
	if now == nil {
		now = time.Now
	}
	return &FrameScheduler{now: now}
}

// AfterFunc queues f to run on the first Poll at least d from now.
func (s *FrameScheduler) AfterFunc(d time.Duration, f func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &frameTask{due: s.now().Add(d), fn: f, owner: s}
	s.tasks = append(s.tasks, t)
	return t
}

// Poll runs every callback that is due and returns how many ran. Callbacks
// queued while polling wait for the next Poll.
func (s *FrameScheduler) Poll() int {
	s.mu.Lock()
	now := s.now()
	var due []*frameTask
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		switch {
		case t.stopped:
		case !now.Before(t.due):
			t.fired = true
			due = append(due, t)
		default:
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
	s.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
	return len(due)
}

// Pending returns the number of queued callbacks that have not fired or been
// stopped.
func (s *FrameScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (t *frameTask) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
