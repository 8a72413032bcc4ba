// Package detect delivers resize notifications to subscribed nodes.
// Detectors only say "this node's size may have changed"; reading the new
// geometry is the subscriber's job.
package detect

import (
	"github.com/mattn/go-isatty"

	"github.com/drake/autosize/measure"
)

// Callback is invoked when a subscribed node's size may have changed.
type Callback func()

// Detector notifies subscribers about container size changes.
type Detector interface {
	// Subscribe registers fn to run when node's size changes. Subscribing
	// the same node again replaces the previous callback.
	Subscribe(node measure.Node, fn Callback)

	// Unsubscribe removes node's callback. Pending notifications that have
	// not fired yet will no longer reach it.
	Unsubscribe(node measure.Node)
}

// Available reports whether fd is a terminal that can be measured. When it
// returns false there is no resize signal to detect and components should
// fall back to their configured defaults.
func Available(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Manual is a push-based Detector: the owner decides when a node changed
// and calls Dispatch. Used by the bubbletea adapter (window size messages
// already arrive as discrete events) and by tests.
type Manual struct {
	subs map[measure.Node]Callback
}

// Compile-time check that Manual implements Detector
var _ Detector = (*Manual)(nil)

// NewManual creates an empty manual detector.
func NewManual() *Manual {
	return &Manual{subs: make(map[measure.Node]Callback)}
}

// Subscribe implements Detector.
func (m *Manual) Subscribe(node measure.Node, fn Callback) {
	m.subs[node] = fn
}

// Unsubscribe implements Detector.
func (m *Manual) Unsubscribe(node measure.Node) {
	delete(m.subs, node)
}

// Subscribed reports whether node currently has a callback.
func (m *Manual) Subscribed(node measure.Node) bool {
	_, ok := m.subs[node]
	return ok
}

// Dispatch notifies a single node, if subscribed.
func (m *Manual) Dispatch(node measure.Node) {
	if fn, ok := m.subs[node]; ok {
		fn()
	}
}

// DispatchAll notifies every subscribed node.
func (m *Manual) DispatchAll() {
	for _, fn := range m.subs {
		fn()
	}
}
