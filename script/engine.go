// Package script embeds a small Lua engine so resize behavior can be
// extended without recompiling: scripts register hooks that run on every
// accepted size change.
package script

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	glua "github.com/yuin/gopher-lua"

	"github.com/drake/autosize/sizer"
)

// Host is how scripts talk back to the application.
type Host interface {
	// Print displays a line of script output.
	Print(text string)
}

// Engine wraps gopher-lua and manages the VM lifecycle. It is pure
// mechanism: it runs Lua code and exposes the autosize API, and knows
// nothing about config dirs or boot order.
type Engine struct {
	L    *glua.LState
	host Host

	// Cached table reference
	table *glua.LTable

	// Hooks registered via autosize.on_resize, in registration order.
	onResize []*glua.LFunction
}

// NewEngine creates an Engine with the given Host.
func NewEngine(host Host) *Engine {
	return &Engine{host: host}
}

// Init initializes (or re-initializes) the Lua VM with fresh state and
// registers the API. Loading scripts is the caller's job.
func (e *Engine) Init() error {
	if e.L != nil {
		e.L.Close()
	}
	e.L = glua.NewState()
	e.onResize = nil
	e.registerAPI()
	return nil
}

// Close cleans up the Lua state.
func (e *Engine) Close() {
	e.onResize = nil
	if e.L != nil {
		e.L.Close()
		e.L = nil
	}
}

// DoString executes a raw string of Lua code. The name parameter is used
// for stack traces.
func (e *Engine) DoString(name, code string) error {
	fn, err := e.L.Load(strings.NewReader(code), name)
	if err != nil {
		return err
	}
	e.L.Push(fn)
	return e.L.PCall(0, 0, nil)
}

// DoFile executes a Lua file from the filesystem. Missing files are an
// error; callers that treat the script as optional check existence first.
func (e *Engine) DoFile(path string) error {
	path = expandTilde(path)
	code, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return e.DoString(filepath.Base(path), string(code))
}

// HookCount returns the number of registered resize hooks.
func (e *Engine) HookCount() int {
	return len(e.onResize)
}

// CallResize invokes every registered hook with the new size. Undefined
// axes arrive as nil on the Lua side. Hook errors are reported to the host
// and do not stop the remaining hooks.
func (e *Engine) CallResize(s sizer.Size) {
	if e.L == nil {
		return
	}
	for _, fn := range e.onResize {
		e.L.Push(fn)
		e.L.Push(dimValue(s.Width))
		e.L.Push(dimValue(s.Height))
		if err := e.L.PCall(2, 0, nil); err != nil {
			e.host.Print("script error: " + err.Error())
		}
	}
}

// registerAPI builds the global autosize table.
func (e *Engine) registerAPI() {
	e.table = e.L.NewTable()
	e.L.SetGlobal("autosize", e.table)

	// autosize.on_resize(fn): register a hook called with (width, height);
	// a disabled or unmeasured axis is nil.
	e.L.SetField(e.table, "on_resize", e.L.NewFunction(func(L *glua.LState) int {
		fn := L.CheckFunction(1)
		e.onResize = append(e.onResize, fn)
		return 0
	}))

	// autosize.print(text): display a line via the host.
	e.L.SetField(e.table, "print", e.L.NewFunction(func(L *glua.LState) int {
		e.host.Print(L.CheckString(1))
		return 0
	}))

	// autosize.format(w, h): "WxH" with "-" for nil axes, matching the Go
	// side's Size.String.
	e.L.SetField(e.table, "format", e.L.NewFunction(func(L *glua.LState) int {
		L.Push(glua.LString(formatAxis(L.Get(1)) + "x" + formatAxis(L.Get(2))))
		return 1
	}))
}

func formatAxis(v glua.LValue) string {
	if n, ok := v.(glua.LNumber); ok {
		return fmt.Sprintf("%d", int(n))
	}
	return "-"
}

func dimValue(d sizer.Dim) glua.LValue {
	if !d.Defined {
		return glua.LNil
	}
	return glua.LNumber(d.Value)
}

// expandTilde resolves a leading ~/ against the user home dir.
func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
