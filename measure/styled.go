package measure

import "github.com/charmbracelet/lipgloss"

// Compile-time check that Styled implements Node
var _ Node = (*Styled)(nil)

// Styled is a Node whose padding comes from a lipgloss style. Terminal
// styles are border-box: padding renders inside the stated size.
type Styled struct {
	style  lipgloss.Style
	width  int
	height int
}

// NewStyled creates a styled node. The outer size starts at zero; call
// Resize when the container allocates space.
func NewStyled(style lipgloss.Style) *Styled {
	return &Styled{style: style}
}

// Resize sets the outer size allocated to the styled box.
func (s *Styled) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.width = width
	s.height = height
}

// Style returns the backing style.
func (s *Styled) Style() lipgloss.Style { return s.style }

// OuterWidth implements Node.
func (s *Styled) OuterWidth() int { return s.width }

// OuterHeight implements Node.
func (s *Styled) OuterHeight() int { return s.height }

// Padding implements Node.
func (s *Styled) Padding() Insets {
	return Insets{
		Top:    s.style.GetPaddingTop(),
		Right:  s.style.GetPaddingRight(),
		Bottom: s.style.GetPaddingBottom(),
		Left:   s.style.GetPaddingLeft(),
	}
}

// BoxSizing implements Node.
func (s *Styled) BoxSizing() BoxSizing { return BorderBox }
