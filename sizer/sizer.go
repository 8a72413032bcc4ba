// Package sizer provides a container component that measures the content
// area available inside its node and hands the dimensions to a child render
// function, re-measuring when the container resizes.
//
// The provider only re-renders when an enabled axis actually changed, so
// resize chatter that leaves the content area alone costs nothing.
package sizer

import (
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/drake/autosize/detect"
	"github.com/drake/autosize/measure"
)

// RenderFunc produces the child's view for a measured content area. Axes
// the provider has disabled, or has not measured yet, arrive undefined.
type RenderFunc func(Size) string

// Options configures a Provider.
type Options struct {
	// DisableWidth stops width from being measured or reported; the child
	// always sees an undefined width.
	DisableWidth bool

	// DisableHeight stops height from being measured or reported.
	DisableHeight bool

	// DefaultWidth is reported before the first concrete measurement, e.g.
	// when no terminal is attached. Ignored for a disabled axis.
	DefaultWidth Dim

	// DefaultHeight is the pre-measurement height.
	DefaultHeight Dim

	// OnResize is invoked with the new size whenever the gate accepts a
	// change, including the very first concrete measurement.
	OnResize func(Size)

	// CacheSize > 0 memoizes child output per size in an LRU cache, so
	// bouncing between a handful of sizes does not re-invoke an expensive
	// child. Zero disables caching.
	CacheSize int
}

// Stats counts measurement activity, for the debug monitor and tests.
type Stats struct {
	// MeasurePasses is the number of times the node was measured.
	MeasurePasses uint64
	// Accepted is the number of size changes that passed the gate.
	Accepted uint64
	// Gated is the number of resize events rejected as no-ops.
	Gated uint64
}

// Provider measures its node and renders a child with the result.
//
// Lifecycle: New renders the defaults unmeasured, Mount performs the first
// measurement and subscribes to resize notifications, every later event is
// gated, and Unmount ends the lifecycle for good. A provider without a
// detector, or whose node cannot be measured, stays on its defaults; that
// is the designed headless fallback, not an error.
type Provider struct {
	render   RenderFunc
	opts     Options
	node     measure.Node
	detector detect.Detector

	last     Size
	measured bool
	mounted  bool
	closed   bool
	view     string

	cache *lru.Cache[Size, string]
	stats Stats
}

// New creates an unmounted provider and renders the child once with the
// configured defaults (undefined where absent).
func New(render RenderFunc, opts Options) *Provider {
	p := &Provider{render: render, opts: opts}
	if opts.CacheSize > 0 {
		// New only fails for non-positive sizes.
		p.cache, _ = lru.New[Size, string](opts.CacheSize)
	}
	p.last = p.defaults()
	p.view = p.renderChild(p.last)
	return p
}

// defaults is the pre-measurement size: defaults where provided, undefined
// otherwise, and always undefined on disabled axes.
func (p *Provider) defaults() Size {
	var s Size
	if !p.opts.DisableWidth {
		s.Width = p.opts.DefaultWidth
	}
	if !p.opts.DisableHeight {
		s.Height = p.opts.DefaultHeight
	}
	return s
}

// Mount attaches the provider to its node, performs the initial measurement
// pass, and subscribes to resize notifications. A nil detector skips the
// subscription; the provider then only ever measures once. A nil node skips
// measurement entirely and leaves the defaults standing.
func (p *Provider) Mount(node measure.Node, d detect.Detector) error {
	if p.mounted {
		return errors.New("sizer: already mounted")
	}
	if p.closed {
		return errors.New("sizer: unmounted")
	}
	p.node = node
	p.detector = d
	p.mounted = true
	if d != nil && node != nil {
		d.Subscribe(node, p.onResizeEvent)
	}
	p.onResizeEvent()
	return nil
}

// Unmount unsubscribes from resize notifications and drops the node handle.
// Resize events arriving afterwards are no-ops, and the provider cannot be
// mounted again. The last view and size stay readable.
func (p *Provider) Unmount() {
	if !p.mounted {
		return
	}
	p.closed = true
	if p.detector != nil && p.node != nil {
		p.detector.Unsubscribe(p.node)
	}
	p.mounted = false
	p.node = nil
	p.detector = nil
}

// Mounted reports whether the provider is attached to a node.
func (p *Provider) Mounted() bool { return p.mounted }

// Measured reports whether at least one concrete measurement happened.
func (p *Provider) Measured() bool { return p.measured }

// Size returns the last size handed to the child (defaults before the
// first measurement).
func (p *Provider) Size() Size { return p.last }

// View returns the child's most recent output.
func (p *Provider) View() string { return p.view }

// Stats returns measurement counters.
func (p *Provider) Stats() Stats { return p.stats }

// onResizeEvent re-measures and applies the change gate: only when an
// enabled axis's value differs from the stored one does the child render
// again and OnResize fire. The first concrete measurement always counts as
// a change from the unmeasured state.
func (p *Provider) onResizeEvent() {
	if !p.mounted || p.node == nil {
		return
	}
	next := p.measure()
	p.stats.MeasurePasses++

	// Disabled axes are undefined on both sides, so whole-struct equality
	// compares exactly the enabled axes.
	if p.measured && next == p.last {
		p.stats.Gated++
		return
	}

	p.measured = true
	p.last = next
	p.stats.Accepted++
	p.view = p.renderChild(next)
	if p.opts.OnResize != nil {
		p.opts.OnResize(next)
	}
}

// measure reads the node's content area for each enabled axis. Disabled
// axes are never computed, let alone reported.
func (p *Provider) measure() Size {
	var s Size
	if !p.opts.DisableWidth {
		s.Width = Fixed(measure.ContentWidth(p.node))
	}
	if !p.opts.DisableHeight {
		s.Height = Fixed(measure.ContentHeight(p.node))
	}
	return s
}

func (p *Provider) renderChild(s Size) string {
	if p.cache != nil {
		if out, ok := p.cache.Get(s); ok {
			return out
		}
	}
	out := p.render(s)
	if p.cache != nil {
		p.cache.Add(s, out)
	}
	return out
}
