package app

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/dodorz/albumdesk/internal/config"
	"github.com/dodorz/albumdesk/internal/theme"
	"github.com/dodorz/albumdesk/internal/wm"
)

// renderDesktop draws the wallpaper and the desktop icons.
func (m *Desktop) renderDesktop() []*lipgloss.Layer {
	height := m.GetUsableHeight()
	if m.Width <= 0 || height <= 0 {
		return nil
	}

	wallpaper := lipgloss.NewStyle().
		Background(theme.DesktopBg()).
		Foreground(theme.DesktopPattern()).
		Width(m.Width).
		Height(height).
		Render(wallpaperPattern(m.Width, height))
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(wallpaper).X(0).Y(m.GetTopMargin()).Z(config.ZIndexDesktop).ID("desktop"),
	}

	for i, icon := range m.Icons {
		r := m.IconRect(i)
		if r.Max.Y > m.GetTopMargin()+height || r.Max.X > m.Width {
			break
		}
		layers = append(layers, lipgloss.NewLayer(m.renderIcon(icon, i == m.SelectedIcon, r.Dx())).
			X(r.Min.X).Y(r.Min.Y).Z(config.ZIndexDesktop+1).ID("icon-"+icon.Title))
	}
	return layers
}

// wallpaperPattern returns a sparse, staggered dot grid of the given size.
func wallpaperPattern(width, height int) string {
	dot := "·"
	if config.UseASCIIOnly {
		dot = "."
	}
	rows := make([]string, height)
	for y := range height {
		var b strings.Builder
		for x := range width {
			if y%2 == 0 && (x+y*2)%8 == 0 {
				b.WriteString(dot)
			} else {
				b.WriteByte(' ')
			}
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

func iconGlyph(kind wm.Kind) string {
	switch {
	case config.UseASCIIOnly && kind == wm.KindMedia:
		return "[#]"
	case config.UseASCIIOnly:
		return "[=]"
	case kind == wm.KindMedia:
		return "♫"
	default:
		return "▤"
	}
}

func (m *Desktop) renderIcon(icon Icon, selected bool, width int) string {
	style := lipgloss.NewStyle().Foreground(theme.IconFg()).Background(theme.DesktopBg())
	if selected {
		style = style.Background(theme.IconSelectedBg())
	}
	center := func(s string) string {
		s = truncateTitle(s, width)
		pad := width - ansi.StringWidth(s)
		return strings.Repeat(" ", pad/2) + s + strings.Repeat(" ", pad-pad/2)
	}

	label := strings.Split(lipgloss.NewStyle().Width(width).Render(icon.Title), "\n")
	lines := []string{center(iconGlyph(icon.Kind))}
	for i := 0; i < config.IconCellHeight-2; i++ {
		line := ""
		if i < len(label) {
			line = strings.TrimSpace(label[i])
		}
		if i == config.IconCellHeight-3 && len(label) > config.IconCellHeight-2 {
			line = truncateTitle(line+" "+label[i+1], width)
		}
		lines = append(lines, center(line))
	}
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}

// renderTaskbar draws the start button, one button per open window and the tray.
func (m *Desktop) renderTaskbar() *lipgloss.Layer {
	bar := lipgloss.NewStyle().Background(theme.TaskbarBg()).Foreground(theme.TaskbarFg())

	startLabel := " ◆ Start "
	if config.UseASCIIOnly {
		startLabel = " * Start "
	}
	startStyle := lipgloss.NewStyle().Background(theme.StartButtonBg()).Foreground(theme.TaskbarFg()).Bold(true)
	if m.ShowStartMenu {
		startStyle = startStyle.Reverse(true)
	}

	var b strings.Builder
	b.WriteString(startStyle.Render(fitLines(startLabel, config.StartButtonWidth, 1)))
	used := config.StartButtonWidth

	focused := m.WM.Focused()
	for _, item := range m.TaskbarItems() {
		gap := item.Rect.Min.X - used
		b.WriteString(bar.Render(strings.Repeat(" ", max(gap, 0))))

		style := bar
		if w, ok := m.WM.Window(item.Title); ok {
			switch {
			case focused != nil && focused.ID == w.ID:
				style = style.Background(theme.TaskbarActive()).Bold(true)
			case !w.IsVisible() || w.Closing:
				style = style.Foreground(theme.TaskbarHidden())
			}
		}
		width := item.Rect.Dx()
		b.WriteString(style.Render(fitLines(" "+truncateTitle(item.Title, width-2)+" ", width, 1)))
		used = item.Rect.Max.X
	}

	tray := m.trayText()
	fill := m.Width - used - ansi.StringWidth(tray)
	b.WriteString(bar.Render(strings.Repeat(" ", max(fill, 0))))
	if fill >= 0 {
		b.WriteString(bar.Foreground(theme.TrayFg()).Render(tray))
	}

	return lipgloss.NewLayer(b.String()).X(0).Y(m.GetTaskbarY()).Z(config.ZIndexTaskbar).ID("taskbar")
}

func (m *Desktop) renderOverlays() []*lipgloss.Layer {
	var layers []*lipgloss.Layer

	if m.ShowStartMenu {
		layers = append(layers, m.renderStartMenu())
	}

	if m.ShowLogs {
		layers = append(layers, m.renderLogViewer())
	}

	notifY := m.GetTopMargin() + 1
	for i, notif := range m.Notifications {
		if i >= 3 {
			break
		}
		maxNotifWidth := min(max(m.Width-8, 20), 60)
		notifBox := lipgloss.NewStyle().
			Background(theme.NotificationColor(notif.Type)).
			Foreground(theme.NotificationFg()).
			Padding(0, 1).
			Bold(true).
			Render(truncateTitle(notif.Message, maxNotifWidth-2))

		notifX := max(m.Width-lipgloss.Width(notifBox)-2, 0)
		layers = append(layers, lipgloss.NewLayer(notifBox).
			X(notifX).Y(notifY+i*2).Z(config.ZIndexNotifications).
			ID(fmt.Sprintf("notif-%s", notif.ID)))
	}

	return layers
}

func (m *Desktop) renderStartMenu() *lipgloss.Layer {
	r := m.StartMenuRect()
	inner := r.Dx() - 2

	var lines []string
	for i, item := range m.StartMenuItems() {
		style := lipgloss.NewStyle().Foreground(theme.TaskbarFg()).Background(theme.StartMenuBg())
		if i == m.StartMenuIndex {
			style = style.Background(theme.StartMenuHighlight()).Bold(true)
		}
		lines = append(lines, style.Render(fitLines(" "+truncateTitle(item, inner-2), inner, 1)))
	}

	menu := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(theme.BorderFocused()).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(menu).X(r.Min.X).Y(r.Min.Y).Z(config.ZIndexStartMenu).ID("start-menu")
}

func (m *Desktop) renderLogViewer() *lipgloss.Layer {
	width := min(config.LogViewerWidth, max(m.Width-4, 20))
	inner := width - 2
	perPage := m.logsPerPage()
	m.LogScrollOffset = max(0, min(m.LogScrollOffset, m.maxLogScroll()))

	logLines := []string{
		lipgloss.NewStyle().Foreground(theme.LogViewerTitle()).Bold(true).Render("System Logs"),
		"",
	}
	end := min(m.LogScrollOffset+perPage, len(m.LogMessages))
	for _, msg := range m.LogMessages[m.LogScrollOffset:end] {
		levelColor := theme.LogViewerInfo()
		switch msg.Level {
		case "ERROR":
			levelColor = theme.LogViewerError()
		case "WARN":
			levelColor = theme.LogViewerWarn()
		}
		levelStr := lipgloss.NewStyle().Foreground(levelColor).Render(fmt.Sprintf("[%s]", msg.Level))
		line := fmt.Sprintf("%s %s %s", msg.Time.Format("15:04:05"), levelStr, msg.Message)
		logLines = append(logLines, ansi.Truncate(line, inner, "…"))
	}
	logLines = append(logLines, "",
		lipgloss.NewStyle().Foreground(theme.TaskbarHidden()).
			Render(fmt.Sprintf("%s to close, up/down to scroll", m.Keybinds.GetKeysForDisplay(config.ActionToggleLogs))))

	box := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(theme.LogViewerTitle()).
		Background(theme.LogViewerBg()).
		Render(fitLines(strings.Join(logLines, "\n"), inner, len(logLines)))

	x := max((m.Width-lipgloss.Width(box))/2, 0)
	y := max((m.Height-lipgloss.Height(box))/2, 0)
	return lipgloss.NewLayer(box).X(x).Y(y).Z(config.ZIndexLogs).ID("logs")
}
