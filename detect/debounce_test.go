package detect

import (
	"testing"
	"time"
)

func TestDebouncerCoalescesBurst(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	fired := make(chan struct{}, 16)
	for i := 0; i < 10; i++ {
		d.Trigger(func() { fired <- struct{}{} })
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("debounced job never fired")
	}

	// The burst must collapse into a single invocation.
	select {
	case <-fired:
		t.Fatal("burst fired more than once")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	fired := make(chan struct{}, 1)
	d.Trigger(func() { fired <- struct{}{} })
	d.Stop()

	select {
	case <-fired:
		t.Fatal("job fired after Stop")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDebouncerRejectsTriggerAfterStop(t *testing.T) {
	d := NewDebouncer(time.Millisecond)
	d.Stop()

	fired := make(chan struct{}, 1)
	d.Trigger(func() { fired <- struct{}{} })

	select {
	case <-fired:
		t.Fatal("trigger after Stop fired")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDebouncerSequentialTriggers(t *testing.T) {
	d := NewDebouncer(5 * time.Millisecond)
	defer d.Stop()

	fired := make(chan int, 2)
	d.Trigger(func() { fired <- 1 })

	select {
	case v := <-fired:
		if v != 1 {
			t.Fatalf("unexpected job: %d", v)
		}
	case <-time.After(time.Second):
		t.Fatal("first job never fired")
	}

	// A trigger after a quiet period fires again.
	d.Trigger(func() { fired <- 2 })
	select {
	case v := <-fired:
		if v != 2 {
			t.Fatalf("unexpected job: %d", v)
		}
	case <-time.After(time.Second):
		t.Fatal("second job never fired")
	}
}
