package app

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/dodorz/albumdesk/internal/config"
	"github.com/dodorz/albumdesk/internal/theme"
)

func getBorder() lipgloss.Border {
	if config.UseASCIIOnly {
		return lipgloss.ASCIIBorder()
	}
	switch config.BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	case "block":
		return lipgloss.BlockBorder()
	case "ascii":
		return lipgloss.ASCIIBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// fitLines truncates or pads s to exactly width columns and height rows.
func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		w := ansi.StringWidth(line)
		switch {
		case w > width:
			lines[i] = ansi.Truncate(line, width, "")
		case w < width:
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return strings.Join(lines, "\n")
}

// truncateTitle shortens a title to maxWidth cells with an ellipsis.
func truncateTitle(title string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(title) <= maxWidth {
		return title
	}
	tail := "…"
	if config.UseASCIIOnly {
		tail = "."
	}
	return ansi.Truncate(title, maxWidth, tail)
}

// renderHeader draws the top border row of a window: the title on the left
// and the minimize and close controls at the right end.
func renderHeader(title string, width int, borderColor color.Color, border lipgloss.Border) string {
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	if width < 2 {
		return borderStyle.Render(strings.Repeat(border.Top, max(width, 0)))
	}
	if width < config.MinWindowWidth {
		return borderStyle.Render(border.TopLeft + strings.Repeat(border.Top, width-2) + border.TopRight)
	}

	minimize := lipgloss.NewStyle().Foreground(theme.ControlMinimize()).Render("[_]")
	closeBtn := lipgloss.NewStyle().Foreground(theme.ControlClose()).Bold(true).Render("[x]")

	titleSpace := width - minimizeControlLeft - 1
	name := truncateTitle(title, titleSpace-2)
	badge := ""
	if name != "" {
		badge = lipgloss.NewStyle().Foreground(theme.WindowFg()).Bold(true).Render(" " + name + " ")
	}
	fill := titleSpace - ansi.StringWidth(badge)

	return borderStyle.Render(border.TopLeft) +
		badge +
		borderStyle.Render(strings.Repeat(border.Top, max(fill, 0))) +
		minimize + closeBtn +
		borderStyle.Render(border.TopRight)
}

// clipToCanvas cuts the parts of a layer that fall left of or above the
// canvas, returning the visible content and its new origin.
func clipToCanvas(content string, x, y int) (string, int, int) {
	if x >= 0 && y >= 0 {
		return content, x, y
	}
	lines := strings.Split(content, "\n")
	if y < 0 {
		if -y >= len(lines) {
			return "", 0, 0
		}
		lines = lines[-y:]
		y = 0
	}
	if x < 0 {
		for i, line := range lines {
			lines[i] = ansi.Cut(line, -x, ansi.StringWidth(line))
		}
		x = 0
	}
	return strings.Join(lines, "\n"), x, y
}
