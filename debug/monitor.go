// Package debug provides runtime monitoring and diagnostics.
package debug

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/drake/autosize/sizer"
)

// Enabled returns true if debug mode is active (AUTOSIZE_DEBUG=1).
func Enabled() bool {
	return os.Getenv("AUTOSIZE_DEBUG") == "1"
}

// Monitor periodically logs provider measurement statistics when debug mode
// is enabled.
type Monitor struct {
	provider *sizer.Provider
	interval time.Duration
	ctx      context.Context
	logger   *log.Logger
}

// NewMonitor creates a new monitor for the given provider.
// If debug mode is not enabled, returns nil.
func NewMonitor(ctx context.Context, p *sizer.Provider) *Monitor {
	if !Enabled() {
		return nil
	}

	return &Monitor{
		provider: p,
		interval: 5 * time.Second,
		ctx:      ctx,
		logger:   log.New(os.Stderr, "", log.LstdFlags),
	}
}

// Start begins the monitoring loop in a goroutine.
func (m *Monitor) Start() {
	if m == nil {
		return
	}
	go m.run()
}

func (m *Monitor) run() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Println("[DEBUG] Monitor started")

	for {
		select {
		case <-m.ctx.Done():
			m.logger.Println("[DEBUG] Monitor stopped")
			return
		case <-ticker.C:
			m.logStats()
		}
	}
}

func (m *Monitor) logStats() {
	s := m.provider.Stats()

	m.logger.Printf("[DEBUG] measures=%d accepted=%d gated=%d mounted=%v size=%s",
		s.MeasurePasses,
		s.Accepted,
		s.Gated,
		m.provider.Mounted(),
		m.provider.Size(),
	)
}
