package measure

// Compile-time check that Region implements Node
var _ Node = (*Region)(nil)

// Region is a concrete Node for a rectangular screen area. The owner of the
// layout (a window, a pane manager) sets the outer size; the component
// placed inside only reads it.
type Region struct {
	width   int
	height  int
	padding Insets
	sizing  BoxSizing
}

// NewRegion creates a zero-sized region with the given padding and sizing.
func NewRegion(padding Insets, sizing BoxSizing) *Region {
	return &Region{padding: padding, sizing: sizing}
}

// Resize sets the outer size. Negative values are clamped to zero.
func (r *Region) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	r.width = width
	r.height = height
}

// SetPadding replaces the region's padding.
func (r *Region) SetPadding(p Insets) {
	r.padding = p
}

// OuterWidth implements Node.
func (r *Region) OuterWidth() int { return r.width }

// OuterHeight implements Node.
func (r *Region) OuterHeight() int { return r.height }

// Padding implements Node.
func (r *Region) Padding() Insets { return r.padding }

// BoxSizing implements Node.
func (r *Region) BoxSizing() BoxSizing { return r.sizing }
