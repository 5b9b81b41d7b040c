// Package theme provides color themes for the desktop, its windows and the taskbar.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming is disabled and standard terminal colors are used.
// Unknown names fall back to the default tint; the returned error reports
// that and any custom theme file that could not be loaded.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	var errs []error
	if themesDir, err := GetThemesDir(); err == nil {
		if _, err := LoadCustomThemes(themesDir); err != nil {
			errs = append(errs, err)
		}
	}

	if !tint.SetTintID(themeName) {
		tint.SetTintID("default")
		errs = append(errs, fmt.Errorf("unknown theme %q, using default", themeName))
	}

	return errors.Join(errs...)
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Available returns the IDs of every registered theme, sorted.
func Available() []string {
	tint.NewDefaultRegistry()
	if themesDir, err := GetThemesDir(); err == nil {
		_, _ = LoadCustomThemes(themesDir)
	}
	ids := tint.TintIDs()
	sort.Strings(ids)
	return ids
}

// pick returns the themed color, or fallback when theming is off.
func pick(themed func(*tint.Tint) color.Color, fallback string) color.Color {
	if t := Current(); t != nil {
		return themed(t)
	}
	return lipgloss.Color(fallback)
}

// DesktopBg returns the wallpaper color.
func DesktopBg() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.Bg }, "#1d2b53")
}

// DesktopPattern returns the color of the wallpaper dot pattern.
func DesktopPattern() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.BrightBlack }, "#2f3f73")
}

// IconFg returns the color of desktop icon labels.
func IconFg() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.Fg }, "#e5e5e5")
}

// IconSelectedBg returns the background of the selected desktop icon.
func IconSelectedBg() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.Blue }, "#3a5fcd")
}

// WindowBg returns the background inside windows.
func WindowBg() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.Black }, "#101018")
}

// WindowFg returns the text color inside windows.
func WindowFg() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.White }, "#e5e5e5")
}

// BorderFocused returns the border and title bar color of the focused window.
func BorderFocused() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.BrightCyan }, "#AFFFFF")
}

// BorderUnfocused returns the border and title bar color of other windows.
func BorderUnfocused() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.BrightBlack }, "#7f7f8f")
}

// ControlClose returns the color of the close control.
func ControlClose() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.BrightRed }, "#ff5f5f")
}

// ControlMinimize returns the color of the minimize control.
func ControlMinimize() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.BrightYellow }, "#ffd75f")
}

// TaskbarBg returns the background color for the taskbar.
func TaskbarBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

// TaskbarFg returns the foreground color for the taskbar.
func TaskbarFg() color.Color {
	return lipgloss.Color("#a0a0a8")
}

// TaskbarActive returns the highlight of the focused window's taskbar button.
func TaskbarActive() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.BrightGreen }, "#00ff00")
}

// TaskbarHidden returns the color of buttons for minimized windows.
func TaskbarHidden() color.Color {
	return lipgloss.Color("#606070")
}

// StartButtonBg returns the start button background.
func StartButtonBg() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.Green }, "#2e8b57")
}

// StartMenuBg returns the start menu background.
func StartMenuBg() color.Color {
	return lipgloss.Color("#1a1a2e")
}

// StartMenuHighlight returns the hovered start menu entry color.
func StartMenuHighlight() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.BrightBlue }, "#5c5cff")
}

// TrayFg returns the color of the clock and system readout.
func TrayFg() color.Color {
	return lipgloss.Color("#d0d0d8")
}

// PlayerAccent returns the color of the player progress bar and state glyph.
func PlayerAccent() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.BrightPurple }, "#d75fff")
}

// LogViewerTitle returns the color for log viewer titles.
func LogViewerTitle() color.Color {
	return lipgloss.Color("14")
}

// LogViewerError returns the color for error messages in the log viewer.
func LogViewerError() color.Color {
	return lipgloss.Color("9")
}

// LogViewerWarn returns the color for warning messages in the log viewer.
func LogViewerWarn() color.Color {
	return lipgloss.Color("11")
}

// LogViewerInfo returns the color for info messages in the log viewer.
func LogViewerInfo() color.Color {
	return lipgloss.Color("10")
}

// LogViewerBg returns the background color for the log viewer.
func LogViewerBg() color.Color {
	return lipgloss.Color("#1a1a2a")
}

// NotificationFg returns the foreground color for notifications.
func NotificationFg() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.Fg }, "#e5e5e5")
}

// NotificationColor returns the accent for a notification kind
// ("error", "warning", "success" or anything else for info).
func NotificationColor(kind string) color.Color {
	switch kind {
	case "error":
		return pick(func(t *tint.Tint) color.Color { return t.Red }, "#cd0000")
	case "warning":
		return pick(func(t *tint.Tint) color.Color { return t.Yellow }, "#cdcd00")
	case "success":
		return pick(func(t *tint.Tint) color.Color { return t.Green }, "#00cd00")
	default:
		return pick(func(t *tint.Tint) color.Color { return t.Blue }, "#0000ee")
	}
}

// ColorToString converts a color.Color to a hex string.
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
