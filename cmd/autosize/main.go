package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/drake/autosize/config"
	"github.com/drake/autosize/debug"
	"github.com/drake/autosize/detect"
	"github.com/drake/autosize/internal/buffer"
	"github.com/drake/autosize/measure"
	"github.com/drake/autosize/script"
	"github.com/drake/autosize/sizer"
	"github.com/drake/autosize/style"
)

func main() {
	// Parse flags
	plain := flag.Bool("plain", false, "Use plain console output instead of the TUI")
	poll := flag.Duration("poll", 250*time.Millisecond, "Terminal size poll interval (plain mode)")
	window := flag.Duration("debounce", 100*time.Millisecond, "Resize debounce window (plain mode)")
	scriptPath := flag.String("script", "", "Lua script with resize hooks (default: config dir init.lua)")
	defW := flag.Int("default-width", 0, "Width reported before the first measurement (0 = undefined)")
	defH := flag.Int("default-height", 0, "Height reported before the first measurement (0 = undefined)")
	flag.Parse()

	opts := sizer.Options{}
	if *defW > 0 {
		opts.DefaultWidth = sizer.Fixed(*defW)
	}
	if *defH > 0 {
		opts.DefaultHeight = sizer.Fixed(*defH)
	}

	if *plain {
		runPlain(opts, *poll, *window, *scriptPath)
		return
	}
	runTUI(opts, *scriptPath)
}

// loadScript initializes the Lua engine and loads the hook script, if any.
// Returns nil when there is nothing to run.
func loadScript(host script.Host, path string) *script.Engine {
	if path == "" {
		path = config.InitFile()
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}

	eng := script.NewEngine(host)
	if err := eng.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "script init failed: %v\n", err)
		return nil
	}
	if err := eng.DoFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "script %s failed: %v\n", path, err)
		eng.Close()
		return nil
	}
	return eng
}

// --- TUI mode ---

type demoState struct {
	vp     viewport.Model
	styles style.Styles
	engine *script.Engine
	logs   []string
}

func (d *demoState) Print(text string) {
	d.logs = append(d.logs, text)
	if len(d.logs) > 100 {
		d.logs = d.logs[len(d.logs)-100:]
	}
}

type demoModel struct {
	state *demoState
	sizer sizer.Model
}

func newDemoModel(opts sizer.Options, scriptPath string) demoModel {
	state := &demoState{
		vp:     viewport.New(0, 0),
		styles: style.DefaultStyles(),
	}
	state.engine = loadScript(state, scriptPath)

	userHook := opts.OnResize
	opts.OnResize = func(s sizer.Size) {
		state.Print(fmt.Sprintf("resize accepted: %s", s))
		if state.engine != nil {
			state.engine.CallResize(s)
		}
		if userHook != nil {
			userHook(s)
		}
	}

	m := demoModel{state: state}
	m.sizer = sizer.NewModel(state.render, opts)

	// The container style pads the content; the region must subtract the
	// same padding or the child overflows.
	m.sizer.SetPadding(measure.Insets{
		Top:    state.styles.Container.GetPaddingTop(),
		Right:  state.styles.Container.GetPaddingRight(),
		Bottom: state.styles.Container.GetPaddingBottom(),
		Left:   state.styles.Container.GetPaddingLeft(),
	})
	return m
}

// render is the child render function: it receives the measured content
// area and fills it.
func (d *demoState) render(s sizer.Size) string {
	if !s.Width.Defined || !s.Height.Defined {
		return d.styles.Muted.Render("waiting for first measurement...")
	}

	w, h := s.Width.Value, s.Height.Value
	vpHeight := h - 1 // one line reserved for the status bar
	if vpHeight < 0 {
		vpHeight = 0
	}
	d.vp.Width = w
	d.vp.Height = vpHeight
	d.vp.SetContent(d.content(w, vpHeight))

	return d.vp.View() + "\n" + d.statusLine(w, s)
}

// content renders the measured box interior: a header plus the most recent
// resize log lines.
func (d *demoState) content(width, height int) string {
	lines := []string{
		d.styles.Content.Render(fmt.Sprintf("content area %dx%d", width, height)),
		"",
	}
	logs := d.logs
	if len(logs) > height-2 && height > 2 {
		logs = logs[len(logs)-(height-2):]
	}
	for _, l := range logs {
		lines = append(lines, d.styles.Muted.Render(l))
	}
	return strings.Join(lines, "\n")
}

func (d *demoState) statusLine(width int, s sizer.Size) string {
	left := s.String()
	right := "q: quit"
	pad := width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if pad < 1 {
		pad = 1
	}
	return d.styles.Dimensions.Render(left) +
		strings.Repeat(" ", pad) +
		d.styles.StatusBar.Render(right)
}

// Init implements tea.Model.
func (m demoModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.sizer.Unmount()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		var cmd tea.Cmd
		m.sizer, cmd = m.sizer.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m demoModel) View() string {
	return m.state.styles.Container.Render(m.sizer.View())
}

func runTUI(opts sizer.Options, scriptPath string) {
	m := newDemoModel(opts, scriptPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	debug.NewMonitor(ctx, m.sizer.Provider()).Start()

	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "autosize: %v\n", err)
		os.Exit(1)
	}
}

// --- Plain mode ---

// plainHost routes script output straight to stdout.
type plainHost struct{}

func (plainHost) Print(text string) { fmt.Println(text) }

// runPlain drives a provider from the polling terminal detector, printing a
// line per accepted resize. Without a terminal it degrades to a single
// render with the configured defaults.
func runPlain(opts sizer.Options, poll, window time.Duration, scriptPath string) {
	eng := loadScript(plainHost{}, scriptPath)

	opts.OnResize = func(s sizer.Size) {
		fmt.Printf("content area: %s\n", s)
		if eng != nil {
			eng.CallResize(s)
		}
	}

	p := sizer.New(func(s sizer.Size) string {
		return "content area: " + s.String()
	}, opts)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	debug.NewMonitor(ctx, p).Start()

	fd := os.Stdout.Fd()
	if !detect.Available(fd) {
		// Headless: one render with defaults, no updates.
		fmt.Println(p.View())
		return
	}

	// Resize notifications flow through an unbounded buffer so the poll
	// goroutine never blocks on this loop.
	in, out := buffer.Unbounded[func()](16, 1024)
	det := detect.NewTerm(fd, poll, window, in)

	region := measure.NewRegion(measure.Insets{}, measure.BorderBox)
	det.OnSize(region.Resize)

	if err := det.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "autosize: %v\n", err)
		os.Exit(1)
	}
	region.Resize(det.Size())

	if err := p.Mount(region, det); err != nil {
		fmt.Fprintf(os.Stderr, "autosize: %v\n", err)
		os.Exit(1)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	for {
		select {
		case job := <-out:
			job()
		case <-sig:
			det.Stop()
			p.Unmount()
			return
		}
	}
}
