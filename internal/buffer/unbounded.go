package buffer

import (
	"fmt"
	"os"
)

// Warn reports a dropped item when a buffer hits its hard limit. It defaults
// to stderr; replace it before creating buffers when stderr would corrupt
// the display, e.g. under an alt-screen TUI.
var Warn = func(hardLimit int) {
	fmt.Fprintf(os.Stderr, "[Buffer] Warning: Queue limit reached (%d). Dropping oldest item.\n", hardLimit)
}

// Unbounded creates a channel buffer that grows as needed, so producers
// (the resize poll loop, timers) never block on a slow consumer.
// It returns a write-only channel to feed data in, and a read-only channel
// to read data out.
//
// initialCap: The starting size of the backing slice.
// hardLimit: The maximum number of items to buffer before dropping.
//
// Usage:
//
//	in, out := buffer.Unbounded[func()](16, 1024)
//	in <- job
//	next := <-out
func Unbounded[T any](initialCap int, hardLimit int) (chan<- T, <-chan T) {
	in := make(chan T, 10)  // Small input buffer to reduce context switching
	out := make(chan T, 10) // Small output buffer

	go func() {
		defer close(out)

		queue := make([]T, 0, initialCap)

		for {
			var next T
			var downstream chan T

			// Enable the 'out' case only if we have data to send.
			if len(queue) > 0 {
				next = queue[0]
				downstream = out
			}

			select {
			case val, ok := <-in:
				if !ok {
					// Input channel closed. Flush remaining queue then exit.
					for _, item := range queue {
						out <- item
					}
					return
				}

				// Safety valve: if the consumer is dead, drop the oldest
				// item rather than grow without bound.
				if len(queue) >= hardLimit {
					Warn(hardLimit)
					queue = queue[1:]
				}

				queue = append(queue, val)

			case downstream <- next:
				// Data sent successfully. Pop from queue.
				queue = queue[1:]
			}
		}
	}()

	return in, out
}
