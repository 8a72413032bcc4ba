// Package measure models the rectangular regions a component can be placed
// in, and the box-sizing math that turns an outer size into a content area.
package measure

// BoxSizing selects how padding relates to a node's stated size.
type BoxSizing int

const (
	// BorderBox means padding is included inside the stated size, so the
	// content area is the outer size minus padding (default; terminal
	// styles behave this way).
	BorderBox BoxSizing = iota
	// ContentBox means the stated size already is the content area.
	ContentBox
)

// Insets holds per-edge padding in cells.
type Insets struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Horizontal returns left + right.
func (i Insets) Horizontal() int {
	return i.Left + i.Right
}

// Vertical returns top + bottom.
func (i Insets) Vertical() int {
	return i.Top + i.Bottom
}

// Node is a measurable container. Implementations own the outer size;
// consumers only read it.
type Node interface {
	// OuterWidth returns the stated width of the node in cells.
	OuterWidth() int

	// OuterHeight returns the stated height of the node in cells.
	OuterHeight() int

	// Padding returns the node's padding.
	Padding() Insets

	// BoxSizing returns how the stated size relates to padding.
	BoxSizing() BoxSizing
}

// ContentWidth returns the horizontal content area of n, never negative.
func ContentWidth(n Node) int {
	w := n.OuterWidth()
	if n.BoxSizing() == BorderBox {
		w -= n.Padding().Horizontal()
	}
	if w < 0 {
		return 0
	}
	return w
}

// ContentHeight returns the vertical content area of n, never negative.
func ContentHeight(n Node) int {
	h := n.OuterHeight()
	if n.BoxSizing() == BorderBox {
		h -= n.Padding().Vertical()
	}
	if h < 0 {
		return 0
	}
	return h
}
