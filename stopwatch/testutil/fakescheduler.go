package testutil

import (
	"sync"
	"time"

	"github.com/lapwatch-app/lapwatch/stopwatch"
)

// FakeScheduler fires registrations only when the test advances its clock.
type FakeScheduler struct {
	mtx     sync.Mutex
	now     time.Duration
	handles []*FakeHandle
	armed   int
}

var _ stopwatch.Scheduler = (*FakeScheduler)(nil)

type FakeHandle struct {
	sched     *FakeScheduler
	period    time.Duration
	next      time.Duration
	fn        func()
	cancelled bool
}

func (f *FakeScheduler) Every(period time.Duration, fn func()) stopwatch.Handle {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	h := &FakeHandle{sched: f, period: period, next: f.now + period, fn: fn}
	f.handles = append(f.handles, h)
	f.armed++
	return h
}

func (h *FakeHandle) Cancel() {
	h.sched.mtx.Lock()
	defer h.sched.mtx.Unlock()
	h.cancelled = true
}

// Advance moves the fake clock forward by d, firing every live registration
// once per period boundary crossed, in time order.
func (f *FakeScheduler) Advance(d time.Duration) {
	f.mtx.Lock()
	target := f.now + d
	f.mtx.Unlock()

	for {
		h := f.nextDue(target)
		if h == nil {
			break
		}
		h.fn()
	}

	f.mtx.Lock()
	f.now = target
	f.mtx.Unlock()
}

// nextDue pops the earliest due firing at or before target and moves the clock to it.
func (f *FakeScheduler) nextDue(target time.Duration) *FakeHandle {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	var due *FakeHandle
	for _, h := range f.handles {
		if h.cancelled || h.next > target {
			continue
		}
		if due == nil || h.next < due.next {
			due = h
		}
	}
	if due == nil {
		return nil
	}
	f.now = due.next
	due.next += due.period
	return due
}

// Active returns the number of registrations that have not been cancelled.
func (f *FakeScheduler) Active() int {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	n := 0
	for _, h := range f.handles {
		if !h.cancelled {
			n++
		}
	}
	return n
}

// Armed returns the total number of registrations ever made.
func (f *FakeScheduler) Armed() int {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.armed
}

func (f *FakeScheduler) Now() time.Duration {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.now
}
