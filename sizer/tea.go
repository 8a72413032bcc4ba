package sizer

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/autosize/detect"
	"github.com/drake/autosize/measure"
)

// Model adapts a Provider to Bubble Tea. Window size messages resize the
// backing region and dispatch through a manual detector, so the provider's
// gating and callbacks behave exactly as they do under a polling detector.
//
// Until the first tea.WindowSizeMsg arrives the child sees the configured
// defaults, which also covers headless runs where no message ever comes.
type Model struct {
	provider *Provider
	region   *measure.Region
	detector *detect.Manual
}

// NewModel creates a model with a zero-padding border-box region.
func NewModel(render RenderFunc, opts Options) Model {
	return Model{
		provider: New(render, opts),
		region:   measure.NewRegion(measure.Insets{}, measure.BorderBox),
		detector: detect.NewManual(),
	}
}

// SetPadding sets the region padding, typically matching the style the
// parent wraps this component's view in.
func (m Model) SetPadding(p measure.Insets) {
	m.region.SetPadding(p)
}

// Provider exposes the wrapped provider for stats and size queries.
func (m Model) Provider() *Provider { return m.provider }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles window size messages. Other messages are ignored; compose
// this model inside a parent that routes what it needs.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.region.Resize(size.Width, size.Height)
		if !m.provider.Mounted() {
			// First size message: mount performs the initial measurement
			// and subscribes to the detector.
			_ = m.provider.Mount(m.region, m.detector)
		} else {
			m.detector.Dispatch(m.region)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	return m.provider.View()
}

// Unmount detaches the provider; further size messages are no-ops.
func (m Model) Unmount() {
	m.provider.Unmount()
}
