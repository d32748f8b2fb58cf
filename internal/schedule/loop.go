// Package schedule provides a single-threaded timer queue for driving the game.
//
// A Loop never starts goroutines. Time only moves when the owner calls Advance
// or AdvanceTo, and due callbacks run synchronously inside that call in order
// of due time, then creation order. The terminal platform pumps a Loop from
// Bubble Tea ticks; tests pump it by hand.
package schedule

import (
	"container/heap"
	"time"
)

// Timer is a handle to a one-shot or recurring callback.
type Timer struct {
	when    time.Time
	period  time.Duration // Zero for one-shot timers
	fn      func()
	seq     uint64
	index   int // Position in the heap, -1 when not queued
	stopped bool
}

// Stop cancels the timer. It returns true if the call stopped a pending timer,
// false if the timer had already fired (one-shot) or was already stopped.
// Stopping a recurring timer from inside its own callback prevents rescheduling.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	return t.index >= 0
}

// Active reports whether the timer will fire again.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped && t.index >= 0
}

// Loop is a deterministic event loop of timers.
// The zero value is not usable; call New.
type Loop struct {
	now   time.Time
	seq   uint64
	queue timerQueue
}

// New creates a loop whose clock starts at start.
func New(start time.Time) *Loop {
	return &Loop{now: start}
}

// Now returns the loop's current time.
func (l *Loop) Now() time.Time {
	return l.now
}

// AfterFunc schedules fn to run once, d after the current loop time.
func (l *Loop) AfterFunc(d time.Duration, fn func()) *Timer {
	return l.schedule(d, 0, fn)
}

// MinPeriod is the shortest period a recurring timer runs at.
const MinPeriod = time.Millisecond

// Every schedules fn to run every d, starting d after the current loop time.
// Periods shorter than MinPeriod are raised to MinPeriod.
func (l *Loop) Every(d time.Duration, fn func()) *Timer {
	if d < MinPeriod {
		d = MinPeriod
	}
	return l.schedule(d, d, fn)
}

func (l *Loop) schedule(d, period time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	l.seq++
	t := &Timer{
		when:   l.now.Add(d),
		period: period,
		fn:     fn,
		seq:    l.seq,
		index:  -1,
	}
	heap.Push(&l.queue, t)
	return t
}

// Advance moves the clock forward by d and runs every callback that becomes
// due. It returns the number of callbacks run.
func (l *Loop) Advance(d time.Duration) int {
	return l.AdvanceTo(l.now.Add(d))
}

// AdvanceTo moves the clock to target and runs every callback due at or before
// it. Callbacks see Now() equal to their own due time, so timers they schedule
// are relative to that instant. A target in the past is ignored.
func (l *Loop) AdvanceTo(target time.Time) int {
	fired := 0
	for len(l.queue) > 0 {
		next := l.queue[0]
		// Stopped timers are dropped lazily when they reach the head.
		if next.stopped {
			heap.Pop(&l.queue)
			continue
		}
		if next.when.After(target) {
			break
		}

		heap.Pop(&l.queue)
		if next.when.After(l.now) {
			l.now = next.when
		}
		if next.period > 0 {
			next.when = next.when.Add(next.period)
			l.seq++
			next.seq = l.seq
			heap.Push(&l.queue, next)
		}
		next.fn()
		fired++
	}
	if target.After(l.now) {
		l.now = target
	}
	return fired
}

// Pending returns the number of timers still scheduled.
func (l *Loop) Pending() int {
	n := 0
	for _, t := range l.queue {
		if !t.stopped {
			n++
		}
	}
	return n
}

// timerQueue orders timers by due time, then creation order.
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].when.Equal(q[j].when) {
		return q[i].seq < q[j].seq
	}
	return q[i].when.Before(q[j].when)
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
