package app

import (
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/dodorz/albumdesk/internal/config"
	"github.com/dodorz/albumdesk/internal/wm"
)

// Screen geometry shared by rendering and mouse hit testing. All rectangles
// are in screen cells.

// TaskbarItem is a taskbar button laid out on screen.
type TaskbarItem struct {
	Title string
	Rect  uv.Rectangle
}

// Header control columns, counted from the right edge of the window.
const (
	closeControlWidth    = 4 // "[x]" plus the corner
	minimizeControlLeft  = 7
	minimizeControlRight = 5
)

// IconRect returns the clickable area of desktop icon i.
func (m *Desktop) IconRect(i int) uv.Rectangle {
	rows := max(1, (m.GetUsableHeight()-1)/config.IconCellHeight)
	col, row := i/rows, i%rows
	x := 1 + col*config.IconCellWidth
	y := m.GetTopMargin() + 1 + row*config.IconCellHeight
	return uv.Rect(x, y, config.IconCellWidth-2, config.IconCellHeight-1)
}

// IconAt returns the icon under the screen cell, or -1.
func (m *Desktop) IconAt(x, y int) int {
	p := uv.Pos(x, y)
	for i := range m.Icons {
		if p.In(m.IconRect(i)) {
			return i
		}
	}
	return -1
}

// StartButtonRect returns the start button area.
func (m *Desktop) StartButtonRect() uv.Rectangle {
	return uv.Rect(0, m.GetTaskbarY(), config.StartButtonWidth, config.TaskbarHeight)
}

// InTaskbar reports whether the screen row belongs to the taskbar.
func (m *Desktop) InTaskbar(y int) bool {
	ty := m.GetTaskbarY()
	return y >= ty && y < ty+config.TaskbarHeight
}

// trayText is the right-aligned tray: system stats and clock.
func (m *Desktop) trayText() string {
	var tray string
	if !config.HideSysInfo {
		tray = m.Stats.String()
	}
	if !config.HideClock && !m.Clock.IsZero() {
		if tray != "" {
			tray += "  "
		}
		tray += m.Clock.Format("15:04")
	}
	if tray == "" {
		return ""
	}
	return " " + tray + " "
}

// TaskbarItems lays out one button per open window between the start
// button and the tray. Buttons that do not fit are left out.
func (m *Desktop) TaskbarItems() []TaskbarItem {
	icons := m.WM.TaskbarIcons()
	if len(icons) == 0 {
		return nil
	}
	left := config.StartButtonWidth + 1
	right := m.Width - ansi.StringWidth(m.trayText())
	avail := right - left
	if avail <= 0 {
		return nil
	}

	width := min(config.TaskbarItemWidth, avail/len(icons)-1)
	width = max(width, 6)

	y := m.GetTaskbarY()
	items := make([]TaskbarItem, 0, len(icons))
	x := left
	for _, icon := range icons {
		if x+width > right {
			break
		}
		items = append(items, TaskbarItem{Title: icon.Title, Rect: uv.Rect(x, y, width, config.TaskbarHeight)})
		x += width + 1
	}
	return items
}

// TaskbarItemAt returns the title of the taskbar button under the cell.
func (m *Desktop) TaskbarItemAt(x, y int) (string, bool) {
	p := uv.Pos(x, y)
	for _, item := range m.TaskbarItems() {
		if p.In(item.Rect) {
			return item.Title, true
		}
	}
	return "", false
}

// StartMenuRect returns the start menu area, attached to the start button.
func (m *Desktop) StartMenuRect() uv.Rectangle {
	h := len(m.StartMenuItems()) + 2
	y := m.GetTaskbarY() - h
	if config.TaskbarPosition == "top" {
		y = config.TaskbarHeight
	}
	return uv.Rect(0, max(0, y), config.StartMenuWidth, h)
}

// StartMenuItemAt returns the index of the start menu entry under the cell, or -1.
func (m *Desktop) StartMenuItemAt(x, y int) int {
	r := m.StartMenuRect()
	inner := uv.Rect(r.Min.X+1, r.Min.Y+1, r.Dx()-2, r.Dy()-2)
	if !uv.Pos(x, y).In(inner) {
		return -1
	}
	i := y - inner.Min.Y
	if i >= len(m.StartMenuItems()) {
		return -1
	}
	return i
}

// InStartMenu reports whether the cell is inside the open start menu.
func (m *Desktop) InStartMenu(x, y int) bool {
	return m.ShowStartMenu && uv.Pos(x, y).In(m.StartMenuRect())
}

// WindowRect returns the screen area a window occupies.
func (m *Desktop) WindowRect(w *wm.Window) uv.Rectangle {
	return uv.Rect(w.X, w.Y+m.GetTopMargin(), w.Width, w.Height)
}

// WindowAt returns the topmost visible window under the screen cell and
// the part of it that was hit. Windows that are closing do not take clicks.
func (m *Desktop) WindowAt(x, y int) (*wm.Window, wm.Target, bool) {
	windows := m.WM.Windows()
	p := uv.Pos(x, y)
	for i := len(windows) - 1; i >= 0; i-- {
		w := windows[i]
		if !w.IsVisible() || w.Closing {
			continue
		}
		r := m.WindowRect(w)
		if p.In(r) {
			return w, HeaderTarget(w.Width, x-r.Min.X, y-r.Min.Y), true
		}
	}
	return nil, wm.TargetBody, false
}

// HeaderTarget classifies a window-local cell. The header is the first
// row; close and minimize controls sit at its right end.
func HeaderTarget(width, localX, localY int) wm.Target {
	if localY != 0 {
		return wm.TargetBody
	}
	switch {
	case localX >= width-closeControlWidth:
		return wm.TargetClose
	case localX >= width-minimizeControlLeft && localX <= width-minimizeControlRight:
		return wm.TargetMinimize
	default:
		return wm.TargetHeader
	}
}
