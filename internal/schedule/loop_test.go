package schedule

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestAfterFuncFiresOnce(t *testing.T) {
	l := New(epoch)
	calls := 0
	timer := l.AfterFunc(500*time.Millisecond, func() { calls++ })

	if n := l.Advance(499 * time.Millisecond); n != 0 {
		t.Errorf("Advance before due fired %d callbacks, expected 0", n)
	}
	if !timer.Active() {
		t.Error("timer should be active before it fires")
	}

	l.Advance(time.Millisecond)
	if calls != 1 {
		t.Errorf("expected 1 call after due time, got %d", calls)
	}
	if timer.Active() {
		t.Error("one-shot timer should be inactive after firing")
	}

	l.Advance(10 * time.Second)
	if calls != 1 {
		t.Errorf("one-shot timer fired again, calls = %d", calls)
	}
	if timer.Stop() {
		t.Error("Stop() after firing should return false")
	}
}

func TestEveryRepeats(t *testing.T) {
	l := New(epoch)
	calls := 0
	l.Every(time.Second, func() { calls++ })

	if n := l.Advance(3500 * time.Millisecond); n != 3 {
		t.Errorf("Advance(3.5s) fired %d callbacks, expected 3", n)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
	if l.Pending() != 1 {
		t.Errorf("recurring timer should stay pending, Pending() = %d", l.Pending())
	}
}

func TestStopCancelsPending(t *testing.T) {
	l := New(epoch)
	fired := false
	timer := l.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Error("Stop() on a pending timer should return true")
	}
	if timer.Stop() {
		t.Error("second Stop() should return false")
	}

	l.Advance(2 * time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
	if l.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", l.Pending())
	}
}

func TestRecurringStopFromCallback(t *testing.T) {
	l := New(epoch)
	calls := 0
	var timer *Timer
	timer = l.Every(time.Second, func() {
		calls++
		if calls == 2 {
			timer.Stop()
		}
	})

	l.Advance(10 * time.Second)
	if calls != 2 {
		t.Errorf("expected recurring timer to stop after 2 calls, got %d", calls)
	}
	if timer.Active() {
		t.Error("timer should be inactive after stopping itself")
	}
}

func TestOrderingByTimeThenCreation(t *testing.T) {
	l := New(epoch)
	var order []string

	l.AfterFunc(2*time.Second, func() { order = append(order, "late") })
	l.AfterFunc(time.Second, func() { order = append(order, "first") })
	l.AfterFunc(time.Second, func() { order = append(order, "second") })

	l.Advance(5 * time.Second)

	expected := []string{"first", "second", "late"}
	if len(order) != len(expected) {
		t.Fatalf("order = %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("order[%d] = %q, expected %q", i, order[i], expected[i])
		}
	}
}

func TestCallbacksSeeTheirDueTime(t *testing.T) {
	l := New(epoch)
	var chained time.Time

	l.AfterFunc(time.Second, func() {
		// Scheduled from inside a callback, relative to the callback's due time
		l.AfterFunc(time.Second, func() { chained = l.Now() })
	})

	// A single large advance must still run the chained timer at epoch+2s
	l.Advance(10 * time.Second)

	if !chained.Equal(epoch.Add(2 * time.Second)) {
		t.Errorf("chained timer ran at %v, expected %v", chained.Sub(epoch), 2*time.Second)
	}
	if !l.Now().Equal(epoch.Add(10 * time.Second)) {
		t.Errorf("Now() = %v after advance, expected +10s", l.Now().Sub(epoch))
	}
}

func TestAdvanceToPastIsIgnored(t *testing.T) {
	l := New(epoch)
	l.Advance(time.Second)
	l.AdvanceTo(epoch)
	if !l.Now().Equal(epoch.Add(time.Second)) {
		t.Errorf("clock moved backwards to %v", l.Now())
	}
}

func TestEveryClampsShortPeriods(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second, time.Nanosecond} {
		l := New(epoch)
		calls := 0
		l.Every(d, func() { calls++ })

		if n := l.Advance(time.Second); n != int(time.Second/MinPeriod) {
			t.Errorf("Every(%v): Advance(1s) fired %d callbacks, expected %d", d, n, int(time.Second/MinPeriod))
		}
	}
}
