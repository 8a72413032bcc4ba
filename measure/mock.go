package measure

// MockNode implements Node for tests. Every field is settable so tests can
// script arbitrary geometry without a terminal.
type MockNode struct {
	Width  int
	Height int
	Pad    Insets
	Sizing BoxSizing
}

// NewMockNode creates a mock node with the given outer size, no padding,
// border-box sizing.
func NewMockNode(width, height int) *MockNode {
	return &MockNode{Width: width, Height: height}
}

// OuterWidth implements Node.
func (m *MockNode) OuterWidth() int { return m.Width }

// OuterHeight implements Node.
func (m *MockNode) OuterHeight() int { return m.Height }

// Padding implements Node.
func (m *MockNode) Padding() Insets { return m.Pad }

// BoxSizing implements Node.
func (m *MockNode) BoxSizing() BoxSizing { return m.Sizing }
