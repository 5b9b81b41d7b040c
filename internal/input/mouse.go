package input

import (
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/dodorz/albumdesk/internal/app"
	"github.com/dodorz/albumdesk/internal/wm"
)

// now is the click clock, replaced in tests.
var now = time.Now

func toButton(b tea.MouseButton) wm.Button {
	switch b {
	case tea.MouseRight:
		return wm.ButtonSecondary
	case tea.MouseMiddle:
		return wm.ButtonMiddle
	default:
		return wm.ButtonPrimary
	}
}

// handleMouseClick hit-tests from the top of the stack down: start menu,
// taskbar, windows (header controls before focus), desktop icons and
// finally the bare desktop.
func handleMouseClick(msg tea.MouseClickMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	X := mouse.X
	Y := mouse.Y

	if d.ShowStartMenu {
		if d.InStartMenu(X, Y) {
			if i := d.StartMenuItemAt(X, Y); i >= 0 && mouse.Button == tea.MouseLeft {
				return d, activateStartMenuItem(d, i)
			}
			return d, nil
		}
		if !d.InTaskbar(Y) {
			d.ShowStartMenu = false
			d.StartMenuIndex = -1
		}
	}

	if d.InTaskbar(Y) {
		if mouse.Button != tea.MouseLeft {
			return d, nil
		}
		if uv.Pos(X, Y).In(d.StartButtonRect()) {
			d.ToggleStartMenu()
			return d, nil
		}
		d.ShowStartMenu = false
		if title, ok := d.TaskbarItemAt(X, Y); ok {
			d.WM.TaskbarClick(title)
		}
		return d, nil
	}

	if w, target, ok := d.WindowAt(X, Y); ok {
		d.WM.PointerDown(w.Title, d.ToDesktop(X, Y), toButton(mouse.Button), target)
		return d, nil
	}

	if i := d.IconAt(X, Y); i >= 0 {
		if mouse.Button == tea.MouseLeft {
			d.ClickIcon(i, now())
		}
		return d, nil
	}

	d.ClearSelection()
	return d, nil
}

// handleMouseMotion feeds every motion to the drag controller, wherever the
// pointer is.
func handleMouseMotion(msg tea.MouseMotionMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	d.WM.PointerMove(d.ToDesktop(mouse.X, mouse.Y))
	return d, nil
}

// handleMouseRelease ends any drag, wherever the pointer is.
func handleMouseRelease(_ tea.MouseReleaseMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.WM.PointerUp()
	return d, nil
}

// handleMouseWheel scrolls the log viewer, or the focused window when the
// pointer is over it.
func handleMouseWheel(msg tea.MouseWheelMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()

	delta := 0
	switch mouse.Button {
	case tea.MouseWheelUp:
		delta = -1
	case tea.MouseWheelDown:
		delta = 1
	default:
		return d, nil
	}

	if d.ShowLogs {
		d.ScrollLogs(delta)
		return d, nil
	}

	w, _, ok := d.WindowAt(mouse.X, mouse.Y)
	if !ok || !w.Focused {
		return d, nil
	}
	if delta < 0 {
		d.WM.HandleKey("up")
	} else {
		d.WM.HandleKey("down")
	}
	return d, nil
}
