package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/dodorz/albumdesk/internal/app"
)

// HandleKeyPress routes a key press. Overlays get the first look, then
// configured bindings, then the desktop icons (when no window has focus)
// and finally the focused window.
func HandleKeyPress(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	key := msg.String()
	focused := d.WM.Focused()

	if d.ShowLogs && handleLogViewerKey(key, d) {
		return d, nil
	}
	if d.ShowStartMenu {
		if handled, cmd := handleStartMenuKey(key, d); handled {
			return d, cmd
		}
	}

	if action, ok := d.Keybinds.Action(key, focused == nil); ok {
		return GetDispatcher().Dispatch(action, msg, d)
	}

	if focused == nil {
		handleDesktopKey(key, d)
		return d, nil
	}

	d.WM.HandleKey(key)
	return d, nil
}

func handleLogViewerKey(key string, d *app.Desktop) bool {
	switch key {
	case "up", "k":
		d.ScrollLogs(-1)
	case "down", "j":
		d.ScrollLogs(1)
	case "pgup":
		d.ScrollLogs(-10)
	case "pgdown":
		d.ScrollLogs(10)
	default:
		return false
	}
	return true
}

func handleStartMenuKey(key string, d *app.Desktop) (bool, tea.Cmd) {
	switch key {
	case "up", "k":
		d.MoveStartMenuSelection(-1)
	case "down", "j":
		d.MoveStartMenuSelection(1)
	case "enter":
		if d.StartMenuIndex < 0 {
			return true, nil
		}
		return true, activateStartMenuItem(d, d.StartMenuIndex)
	default:
		return false, nil
	}
	return true, nil
}

// activateStartMenuItem opens the entry at index i or quits.
func activateStartMenuItem(d *app.Desktop, i int) tea.Cmd {
	items := d.StartMenuItems()
	if i < 0 || i >= len(items) {
		return nil
	}
	if items[i] == app.QuitItem {
		d.ShowStartMenu = false
		return tea.Quit
	}
	d.Open(items[i])
	return nil
}

// handleDesktopKey moves the icon selection and opens the selected icon.
func handleDesktopKey(key string, d *app.Desktop) {
	if len(d.Icons) == 0 {
		return
	}
	switch key {
	case "up", "left", "k", "h":
		d.SelectedIcon = max(0, d.SelectedIcon-1)
	case "down", "right", "j", "l":
		d.SelectedIcon = min(len(d.Icons)-1, d.SelectedIcon+1)
	case "enter":
		if d.SelectedIcon >= 0 {
			d.Open(d.Icons[d.SelectedIcon].Title)
		}
	}
}
