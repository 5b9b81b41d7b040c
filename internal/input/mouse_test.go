package input

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/dodorz/albumdesk/internal/wm"
)

func click(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func TestClickHeaderControls(t *testing.T) {
	tests := []struct {
		name   string
		offset func(w *wm.Window) (int, int)
		check  func(t *testing.T, w *wm.Window)
	}{
		{
			name:   "close control",
			offset: func(w *wm.Window) (int, int) { return w.Width - 2, 0 },
			check: func(t *testing.T, w *wm.Window) {
				if !w.Closing {
					t.Error("expected the window to be closing")
				}
			},
		},
		{
			name:   "minimize control",
			offset: func(w *wm.Window) (int, int) { return w.Width - 6, 0 },
			check: func(t *testing.T, w *wm.Window) {
				if w.IsVisible() {
					t.Error("expected the window to be minimized")
				}
			},
		},
		{
			name:   "body focuses",
			offset: func(w *wm.Window) (int, int) { return 2, 2 },
			check: func(t *testing.T, w *wm.Window) {
				if !w.Focused || w.Closing || !w.IsVisible() {
					t.Errorf("expected a focused visible window, got %+v", w)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDesktop(t)
			d.Open("About")
			d.Open("Contact")
			d.WM.Minimize("Contact")

			w, _ := d.WM.Window("About")
			dx, dy := tt.offset(w)
			HandleInput(click(w.X+dx, w.Y+dy), d)
			tt.check(t, w)
		})
	}
}

func TestDragByHeader(t *testing.T) {
	d := newTestDesktop(t)
	d.Open("About")
	w, _ := d.WM.Window("About")
	x0, y0 := w.X, w.Y

	HandleInput(click(x0+2, y0), d)
	if d.WM.DragState() != wm.DragDragging {
		t.Fatal("a header press should start a drag")
	}
	HandleInput(tea.MouseMotionMsg{X: x0 + 7, Y: y0 + 3, Button: tea.MouseLeft}, d)
	HandleInput(tea.MouseReleaseMsg{X: x0 + 7, Y: y0 + 3, Button: tea.MouseLeft}, d)

	if w.X != x0+5 || w.Y != y0+3 {
		t.Errorf("window at (%d,%d), want (%d,%d)", w.X, w.Y, x0+5, y0+3)
	}
	if d.WM.DragState() != wm.DragIdle {
		t.Error("release should end the drag")
	}

	HandleInput(tea.MouseMotionMsg{X: 0, Y: 0}, d)
	if w.X != x0+5 {
		t.Error("motion after release must not move the window")
	}
}

func TestRightClickDoesNotDrag(t *testing.T) {
	d := newTestDesktop(t)
	d.Open("About")
	w, _ := d.WM.Window("About")

	HandleInput(tea.MouseClickMsg{X: w.X + 2, Y: w.Y, Button: tea.MouseRight}, d)
	if d.WM.DragState() != wm.DragIdle {
		t.Error("only the primary button drags")
	}
}

func TestIconDoubleClick(t *testing.T) {
	d := newTestDesktop(t)
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	at := base
	now = func() time.Time { return at }
	t.Cleanup(func() { now = time.Now })

	r := d.IconRect(0)
	title := d.Icons[0].Title

	HandleInput(click(r.Min.X, r.Min.Y), d)
	if d.SelectedIcon != 0 {
		t.Fatalf("SelectedIcon = %d, want 0", d.SelectedIcon)
	}
	at = base.Add(2 * time.Second)
	HandleInput(click(r.Min.X, r.Min.Y), d)
	if _, ok := d.WM.Window(title); ok {
		t.Fatal("slow second click should not open the window")
	}
	at = at.Add(100 * time.Millisecond)
	HandleInput(click(r.Min.X, r.Min.Y), d)
	if _, ok := d.WM.Window(title); !ok {
		t.Errorf("double-click should open %q", title)
	}
}

func TestTaskbarClicks(t *testing.T) {
	d := newTestDesktop(t)
	d.Open("About")
	d.WM.Minimize("About")

	items := d.TaskbarItems()
	if len(items) != 1 {
		t.Fatalf("expected one taskbar item, got %d", len(items))
	}
	r := items[0].Rect
	HandleInput(click(r.Min.X+1, r.Min.Y), d)

	w, _ := d.WM.Window("About")
	if !w.IsVisible() || !w.Focused {
		t.Error("taskbar click should restore and focus the window")
	}
	HandleInput(click(r.Min.X+1, r.Min.Y), d)
	if !w.IsVisible() {
		t.Error("taskbar click must never hide a window")
	}

	s := d.StartButtonRect()
	HandleInput(click(s.Min.X+1, s.Min.Y), d)
	if !d.ShowStartMenu {
		t.Error("start button should open the start menu")
	}
}

func TestStartMenuClick(t *testing.T) {
	d := newTestDesktop(t)
	d.ToggleStartMenu()

	r := d.StartMenuRect()
	items := d.StartMenuItems()
	HandleInput(click(r.Min.X+2, r.Min.Y+1), d)
	if d.ShowStartMenu {
		t.Error("choosing an entry should close the menu")
	}
	if _, ok := d.WM.Window(items[0]); !ok {
		t.Errorf("expected %q to be open", items[0])
	}

	d.ToggleStartMenu()
	HandleInput(click(d.Width-1, 0), d)
	if d.ShowStartMenu {
		t.Error("clicking outside should close the menu")
	}
}

func TestDesktopClickKeepsFocus(t *testing.T) {
	d := newTestDesktop(t)
	d.Open("About")
	d.SelectedIcon = 2

	HandleInput(click(d.Width-1, 0), d)
	if f := d.WM.Focused(); f == nil || f.Title != "About" {
		t.Error("clicking the bare desktop should not blur the focused window")
	}
	if d.SelectedIcon != -1 {
		t.Error("clicking the bare desktop should clear the icon selection")
	}
}

func TestMouseWheelScrollsLogs(t *testing.T) {
	d := newTestDesktop(t)
	for i := range 60 {
		d.LogInfo("line %d", i)
	}
	d.ToggleLogs()
	start := d.LogScrollOffset

	HandleInput(tea.MouseWheelMsg{X: 10, Y: 10, Button: tea.MouseWheelUp}, d)
	if d.LogScrollOffset != start-1 {
		t.Errorf("LogScrollOffset = %d, want %d", d.LogScrollOffset, start-1)
	}
}
