package detect

import (
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/x/term"

	"github.com/drake/autosize/measure"
)

// Compile-time check that Term implements Detector
var _ Detector = (*Term)(nil)

// Term watches a terminal for size changes by polling. Raw changes are
// debounced so a drag-resize burst collapses into one notification.
//
// Notifications are posted as closures onto an owner-provided channel and
// subscriber state is only touched inside those closures, so everything the
// owner cares about runs on the owner's goroutine. The owner drains the
// channel in its event loop:
//
//	events := make(chan func(), 16)
//	det := detect.NewTerm(os.Stdout.Fd(), 0, 0, events)
//	det.Subscribe(region, onResize)
//	det.Start()
//	for job := range events {
//		job()
//	}
type Term struct {
	fd       uintptr
	interval time.Duration
	out      chan<- func()
	debounce *Debouncer
	stop     chan struct{}
	started  bool
	closed   bool

	// sizeFn is swappable in tests; defaults to term.GetSize.
	sizeFn func(fd uintptr) (int, int, error)

	// Last size read. Written by the poll goroutine, read by the owner via
	// Size, so the pair is guarded.
	mu    sync.Mutex
	lastW int
	lastH int

	// Owner goroutine state, only touched inside posted closures.
	subs   map[measure.Node]Callback
	onSize func(width, height int)
}

const (
	defaultPollInterval   = 250 * time.Millisecond
	defaultDebounceWindow = 100 * time.Millisecond
)

// NewTerm creates a terminal detector for fd. Zero interval or window
// select the defaults. The out channel receives notification closures to
// run on the owner's goroutine.
func NewTerm(fd uintptr, interval, window time.Duration, out chan<- func()) *Term {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if window <= 0 {
		window = defaultDebounceWindow
	}
	return &Term{
		fd:       fd,
		interval: interval,
		out:      out,
		debounce: NewDebouncer(window),
		stop:     make(chan struct{}),
		sizeFn:   term.GetSize,
		subs:     make(map[measure.Node]Callback),
	}
}

// OnSize sets a hook that runs before subscriber callbacks on each settled
// size change. Owners use it to push the new size into their regions so
// subscribers re-measure against fresh geometry.
func (t *Term) OnSize(fn func(width, height int)) {
	t.onSize = fn
}

// Subscribe implements Detector. Call from the owner goroutine.
func (t *Term) Subscribe(node measure.Node, fn Callback) {
	t.subs[node] = fn
}

// Unsubscribe implements Detector. A notification already queued will no
// longer see the node.
func (t *Term) Unsubscribe(node measure.Node) {
	delete(t.subs, node)
}

// Size returns the most recent size read from the terminal.
func (t *Term) Size() (width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastW, t.lastH
}

// Start reads the initial size and launches the poll loop. It fails when
// the fd cannot be measured (not a terminal), or after Stop.
func (t *Term) Start() error {
	if t.started {
		return errors.New("detect: already started")
	}
	if t.closed {
		return errors.New("detect: stopped")
	}
	w, h, err := t.sizeFn(t.fd)
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.lastW, t.lastH = w, h
	t.mu.Unlock()
	t.started = true
	go t.loop()
	return nil
}

// Stop halts polling and invalidates any pending debounced notification.
// A stopped detector is done for good; create a new one to poll again.
func (t *Term) Stop() {
	if !t.started {
		return
	}
	t.started = false
	t.closed = true
	close(t.stop)
	t.debounce.Stop()
}

func (t *Term) loop() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			w, h, err := t.sizeFn(t.fd)
			if err != nil {
				continue
			}
			t.mu.Lock()
			changed := w != t.lastW || h != t.lastH
			if changed {
				t.lastW, t.lastH = w, h
			}
			t.mu.Unlock()
			if !changed {
				continue
			}
			t.debounce.Trigger(func() { t.post(w, h) })
		}
	}
}

// post hands the settled size to the owner goroutine. Drops the
// notification when the owner is shutting down.
func (t *Term) post(width, height int) {
	select {
	case t.out <- func() { t.deliver(width, height) }:
	case <-t.stop:
	}
}

func (t *Term) deliver(width, height int) {
	if t.onSize != nil {
		t.onSize(width, height)
	}
	for _, fn := range t.subs {
		fn()
	}
}
