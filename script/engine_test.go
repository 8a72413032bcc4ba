package script

import (
	"strings"
	"testing"

	"github.com/drake/autosize/sizer"
)

// mockHost collects script output for assertions.
type mockHost struct {
	lines []string
}

func (h *mockHost) Print(text string) {
	h.lines = append(h.lines, text)
}

func newTestEngine(t *testing.T) (*Engine, *mockHost) {
	t.Helper()
	host := &mockHost{}
	eng := NewEngine(host)
	if err := eng.Init(); err != nil {
		t.Fatalf("engine init failed: %v", err)
	}
	t.Cleanup(eng.Close)
	return eng, host
}

func TestResizeHookReceivesDimensions(t *testing.T) {
	eng, host := newTestEngine(t)

	err := eng.DoString("test", `
		autosize.on_resize(function(w, h)
			autosize.print("got " .. w .. "x" .. h)
		end)
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	if eng.HookCount() != 1 {
		t.Fatalf("expected 1 hook, got %d", eng.HookCount())
	}

	eng.CallResize(sizer.Size{Width: sizer.Fixed(192), Height: sizer.Fixed(75)})

	if len(host.lines) != 1 || host.lines[0] != "got 192x75" {
		t.Errorf("unexpected output: %v", host.lines)
	}
}

func TestDisabledAxisIsNilInLua(t *testing.T) {
	eng, host := newTestEngine(t)

	err := eng.DoString("test", `
		autosize.on_resize(function(w, h)
			if w == nil then
				autosize.print("w=nil")
			else
				autosize.print("w=" .. w)
			end
			autosize.print("h=" .. h)
		end)
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}

	eng.CallResize(sizer.Size{Height: sizer.Fixed(40)})

	want := []string{"w=nil", "h=40"}
	if len(host.lines) != len(want) {
		t.Fatalf("unexpected output: %v", host.lines)
	}
	for i := range want {
		if host.lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, host.lines[i], want[i])
		}
	}
}

func TestFormatMatchesGoSide(t *testing.T) {
	eng, host := newTestEngine(t)

	err := eng.DoString("test", `
		autosize.print(autosize.format(192, 75))
		autosize.print(autosize.format(nil, 75))
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}

	if len(host.lines) != 2 || host.lines[0] != "192x75" || host.lines[1] != "-x75" {
		t.Errorf("unexpected output: %v", host.lines)
	}
}

func TestHookErrorReportedAndOthersStillRun(t *testing.T) {
	eng, host := newTestEngine(t)

	err := eng.DoString("test", `
		autosize.on_resize(function(w, h)
			error("boom")
		end)
		autosize.on_resize(function(w, h)
			autosize.print("second hook ran")
		end)
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}

	eng.CallResize(sizer.Size{Width: sizer.Fixed(10), Height: sizer.Fixed(10)})

	if len(host.lines) != 2 {
		t.Fatalf("unexpected output: %v", host.lines)
	}
	if !strings.HasPrefix(host.lines[0], "script error:") {
		t.Errorf("error not reported: %q", host.lines[0])
	}
	if host.lines[1] != "second hook ran" {
		t.Errorf("second hook did not run: %q", host.lines[1])
	}
}

func TestInitResetsHooks(t *testing.T) {
	eng, _ := newTestEngine(t)

	if err := eng.DoString("test", `autosize.on_resize(function() end)`); err != nil {
		t.Fatalf("script failed: %v", err)
	}
	if err := eng.Init(); err != nil {
		t.Fatalf("re-init failed: %v", err)
	}
	if eng.HookCount() != 0 {
		t.Errorf("hooks survived re-init: %d", eng.HookCount())
	}
}

func TestCallResizeWithoutInitIsNoop(t *testing.T) {
	eng := NewEngine(&mockHost{})
	// Must not panic.
	eng.CallResize(sizer.Size{Width: sizer.Fixed(1), Height: sizer.Fixed(1)})
}
