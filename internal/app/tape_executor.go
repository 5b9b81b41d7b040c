package app

import (
	"fmt"
	"time"

	"github.com/dodorz/albumdesk/internal/tape"
	"github.com/dodorz/albumdesk/internal/wm"
)

// The following methods implement the tape.Executor interface for
// scripted automation and headless playback.

var _ tape.Executor = (*Desktop)(nil)

// VirtualClock is a manually advanced clock for headless playback.
type VirtualClock struct {
	t time.Time
}

// NewVirtualClock returns a clock starting at start.
func NewVirtualClock(start time.Time) *VirtualClock {
	return &VirtualClock{t: start}
}

// Now returns the current virtual time.
func (c *VirtualClock) Now() time.Time { return c.t }

// Add moves the clock forward.
func (c *VirtualClock) Add(d time.Duration) { c.t = c.t.Add(d) }

// SetClock makes Advance drive the given clock instead of waiting for real
// ticks. The manager must have been built with the clock's Now.
func (m *Desktop) SetClock(c *VirtualClock) {
	m.clock = c
}

func (m *Desktop) lookup(title string) (*wm.Window, error) {
	w, err := m.WM.Lookup(title)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", title, err)
	}
	return w, nil
}

// OpenWindow opens title as if its desktop icon was double-clicked.
func (m *Desktop) OpenWindow(title string) error {
	if title == "" {
		return wm.ErrEmptyTitle
	}
	m.Open(title)
	return nil
}

// CloseWindow starts closing title.
func (m *Desktop) CloseWindow(title string) error {
	if _, err := m.lookup(title); err != nil {
		return err
	}
	m.WM.Close(title)
	return nil
}

// FocusWindow brings title to the front.
func (m *Desktop) FocusWindow(title string) error {
	w, err := m.lookup(title)
	if err != nil {
		return err
	}
	if !w.IsVisible() {
		return fmt.Errorf("%q is minimized", title)
	}
	m.WM.BringToFront(title)
	return nil
}

// MinimizeWindow hides title to the taskbar.
func (m *Desktop) MinimizeWindow(title string) error {
	if _, err := m.lookup(title); err != nil {
		return err
	}
	m.WM.Minimize(title)
	return nil
}

// ClickTaskbar clicks the taskbar button of title.
func (m *Desktop) ClickTaskbar(title string) error {
	if _, err := m.lookup(title); err != nil {
		return err
	}
	m.WM.TaskbarClick(title)
	return nil
}

// DragWindow presses the header of title, moves the pointer by (dx, dy)
// and releases it.
func (m *Desktop) DragWindow(title string, dx, dy int) error {
	w, err := m.lookup(title)
	if err != nil {
		return err
	}
	if !w.IsVisible() {
		return fmt.Errorf("%q is minimized", title)
	}
	grab := wm.Point{X: w.X + 1, Y: w.Y}
	m.WM.PointerDown(title, grab, wm.ButtonPrimary, wm.TargetHeader)
	m.WM.PointerMove(wm.Point{X: grab.X + dx, Y: grab.Y + dy})
	m.WM.PointerUp()
	return nil
}

// SendKey delivers a key to the focused window.
func (m *Desktop) SendKey(key string) error {
	if m.WM.Focused() == nil {
		return fmt.Errorf("no focused window for key %q", key)
	}
	m.WM.HandleKey(key)
	return nil
}

// CycleWindows moves focus to the next or previous visible window.
func (m *Desktop) CycleWindows(forward bool) error {
	m.WM.CycleFocus(forward)
	return nil
}

// Advance runs frames until d has elapsed on the virtual clock.
func (m *Desktop) Advance(d time.Duration) error {
	if m.clock == nil {
		return fmt.Errorf("advance needs a virtual clock")
	}
	frame := tape.FrameInterval
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		step := min(frame, d-elapsed)
		m.clock.Add(step)
		m.Tick(m.clock.Now())
	}
	return nil
}

// ExpectWindow checks the state of title: "open", "closed", "visible",
// "hidden" or "focused".
func (m *Desktop) ExpectWindow(title, state string) error {
	w, ok := m.WM.Window(title)
	var got bool
	switch state {
	case "open":
		got = ok
	case "closed":
		got = !ok
	case "visible":
		got = ok && w.IsVisible()
	case "hidden":
		got = ok && !w.IsVisible()
	case "focused":
		got = ok && w.Focused
	default:
		return fmt.Errorf("unknown window state %q", state)
	}
	if !got {
		return fmt.Errorf("expected %q to be %s", title, state)
	}
	return nil
}

// WindowRow is one row of the window table printed after headless playback.
type WindowRow struct {
	Title   string
	Kind    string
	State   string
	Focused bool
	Z       int
	Rect    wm.Rect
}

// WindowTable describes every open window, bottom to top.
func (m *Desktop) WindowTable() []WindowRow {
	windows := m.WM.Windows()
	rows := make([]WindowRow, 0, len(windows))
	for _, w := range windows {
		state := w.Visibility.String()
		if w.Closing {
			state = "closing"
		}
		rows = append(rows, WindowRow{
			Title:   w.Title,
			Kind:    w.Kind.String(),
			State:   state,
			Focused: w.Focused,
			Z:       w.Z,
			Rect:    w.Rect,
		})
	}
	return rows
}
