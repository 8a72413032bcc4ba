package detect

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/drake/autosize/measure"
)

// fakeSize feeds the poll loop a controllable terminal size.
type fakeSize struct {
	w atomic.Int64
	h atomic.Int64
}

func newFakeSize(w, h int) *fakeSize {
	f := &fakeSize{}
	f.set(w, h)
	return f
}

func (f *fakeSize) set(w, h int) {
	f.w.Store(int64(w))
	f.h.Store(int64(h))
}

func (f *fakeSize) get(uintptr) (int, int, error) {
	return int(f.w.Load()), int(f.h.Load()), nil
}

// waitJob receives one notification closure or fails the test.
func waitJob(t *testing.T, out <-chan func()) func() {
	t.Helper()
	select {
	case job := <-out:
		return job
	case <-time.After(2 * time.Second):
		t.Fatal("no notification arrived")
		return nil
	}
}

func TestTermNotifiesOnSettledChange(t *testing.T) {
	out := make(chan func(), 16)
	fake := newFakeSize(80, 24)

	det := NewTerm(0, time.Millisecond, 5*time.Millisecond, out)
	det.sizeFn = fake.get

	region := measure.NewRegion(measure.Insets{}, measure.BorderBox)
	det.OnSize(region.Resize)

	fired := 0
	det.Subscribe(region, func() { fired++ })

	if err := det.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	defer det.Stop()

	if w, h := det.Size(); w != 80 || h != 24 {
		t.Fatalf("initial size = %dx%d, want 80x24", w, h)
	}

	fake.set(120, 40)
	waitJob(t, out)()

	if fired != 1 {
		t.Errorf("expected 1 callback, got %d", fired)
	}
	if region.OuterWidth() != 120 || region.OuterHeight() != 40 {
		t.Errorf("region not updated before callbacks: %dx%d",
			region.OuterWidth(), region.OuterHeight())
	}
}

func TestTermUnsubscribedNodeSkipsPending(t *testing.T) {
	out := make(chan func(), 16)
	fake := newFakeSize(80, 24)

	det := NewTerm(0, time.Millisecond, 5*time.Millisecond, out)
	det.sizeFn = fake.get

	region := measure.NewRegion(measure.Insets{}, measure.BorderBox)
	fired := 0
	det.Subscribe(region, func() { fired++ })

	if err := det.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	defer det.Stop()

	fake.set(120, 40)
	job := waitJob(t, out)

	// Unsubscribe between queueing and delivery: the callback must not run.
	det.Unsubscribe(region)
	job()

	if fired != 0 {
		t.Errorf("unsubscribed node received %d callbacks", fired)
	}
}

func TestTermStopSilences(t *testing.T) {
	out := make(chan func(), 16)
	fake := newFakeSize(80, 24)

	det := NewTerm(0, time.Millisecond, 5*time.Millisecond, out)
	det.sizeFn = fake.get

	if err := det.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	fake.set(120, 40)
	det.Stop()

	// Anything already queued may drain, but nothing new may arrive.
	deadline := time.After(50 * time.Millisecond)
	for {
		select {
		case <-out:
		case <-deadline:
			return
		}
	}
}

func TestTermSizeReadableWhilePolling(t *testing.T) {
	out := make(chan func(), 64)
	fake := newFakeSize(80, 24)

	det := NewTerm(0, time.Millisecond, time.Millisecond, out)
	det.sizeFn = fake.get

	if err := det.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	defer det.Stop()

	// Mutate the terminal size from one goroutine while reading Size from
	// the test goroutine; the race detector verifies the guard.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			fake.set(80+i, 24+i)
			time.Sleep(100 * time.Microsecond)
		}
	}()

	for {
		select {
		case <-done:
			return
		default:
			// Width always leads height here, so a torn read shows up as
			// an impossible pair even without -race.
			if w, h := det.Size(); h > w {
				t.Fatalf("inconsistent size %dx%d", w, h)
			}
		}
	}
}

func TestTermStopIsTerminal(t *testing.T) {
	out := make(chan func(), 1)
	fake := newFakeSize(80, 24)

	det := NewTerm(0, time.Millisecond, time.Millisecond, out)
	det.sizeFn = fake.get

	if err := det.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	det.Stop()

	if err := det.Start(); err == nil {
		t.Fatal("start after stop should fail")
	}
}

func TestTermStartFailsWithoutTerminal(t *testing.T) {
	out := make(chan func(), 1)
	det := NewTerm(0, time.Millisecond, time.Millisecond, out)
	det.sizeFn = func(uintptr) (int, int, error) {
		return 0, 0, errors.New("not a terminal")
	}

	if err := det.Start(); err == nil {
		t.Fatal("start should fail when the size cannot be read")
	}
}

func TestTermDoubleStartRejected(t *testing.T) {
	out := make(chan func(), 1)
	fake := newFakeSize(80, 24)
	det := NewTerm(0, time.Millisecond, time.Millisecond, out)
	det.sizeFn = fake.get

	if err := det.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	defer det.Stop()

	if err := det.Start(); err == nil {
		t.Fatal("second start should fail")
	}
}
