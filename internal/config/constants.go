// Package config provides configuration constants, keybinding management, and user settings.
package config

import (
	"time"
)

// =============================================================================
// Window Defaults
// =============================================================================

const (
	// SimpleWindowWidth is the desktop width preset for text windows
	SimpleWindowWidth = 46

	// SimpleWindowHeight is the desktop height preset for text windows
	SimpleWindowHeight = 14

	// MediaWindowWidth is the desktop width preset for windows hosting a player
	MediaWindowWidth = 64

	// MediaWindowHeight is the desktop height preset for windows hosting a player
	MediaWindowHeight = 20

	// MobileSimpleWidthPercent is the viewport share a text window takes on mobile
	MobileSimpleWidthPercent = 92

	// MobileSimpleHeightPercent is the viewport share a text window takes on mobile
	MobileSimpleHeightPercent = 60

	// MobileMediaWidthPercent is the viewport share a media window takes on mobile
	MobileMediaWidthPercent = 96

	// MobileMediaHeightPercent is the viewport share a media window takes on mobile
	MobileMediaHeightPercent = 80

	// MinWindowWidth is the smallest width the header controls fit in
	MinWindowWidth = 16

	// MinWindowHeight is the smallest height (header, one content row, bottom border)
	MinWindowHeight = 3
)

// =============================================================================
// Placement
// =============================================================================

const (
	// DefaultEdgePadding is the gap kept between a spawned window and the desktop edges
	DefaultEdgePadding = 1

	// DefaultPlacementJitter is the maximum random offset per axis for spawned windows
	DefaultPlacementJitter = 3

	// DefaultMobileBreakpoint is the viewport width below which the mobile presets apply
	DefaultMobileBreakpoint = 80

	// DefaultZBaseline is the stacking value the z-order counter starts from
	DefaultZBaseline = 100

	// MinVisibleWidth is how many columns of a window stay on screen when the desktop shrinks
	MinVisibleWidth = 8
)

// =============================================================================
// Animation Durations
// =============================================================================

const (
	// DefaultAnimationDuration is the spawn-in and close-out animation duration
	DefaultAnimationDuration = 250 * time.Millisecond

	// NotificationDuration is the default duration notifications remain visible
	NotificationDuration = 1500 * time.Millisecond

	// DoubleClickInterval is the longest gap between two clicks of a double-click
	DoubleClickInterval = 400 * time.Millisecond
)

// =============================================================================
// FPS and Refresh Rates
// =============================================================================

const (
	// NormalFPS is the refresh rate of the desktop
	NormalFPS = 60

	// SysInfoInterval is the interval between CPU/RAM samples for the tray
	SysInfoInterval = 2 * time.Second
)

// =============================================================================
// UI Layout Dimensions
// =============================================================================

const (
	// TaskbarHeight is the number of rows reserved for the taskbar
	TaskbarHeight = 1

	// TaskbarItemWidth is the maximum width of a taskbar button
	TaskbarItemWidth = 18

	// StartButtonWidth is the width of the start button at the left of the taskbar
	StartButtonWidth = 9

	// IconCellWidth is the width of one desktop icon cell
	IconCellWidth = 14

	// IconCellHeight is the height of one desktop icon cell
	IconCellHeight = 4

	// StartMenuWidth is the width of the start menu
	StartMenuWidth = 30

	// LogViewerWidth is the width of the log viewer overlay
	LogViewerWidth = 80

	// MaxLogMessages is the number of log lines kept in memory
	MaxLogMessages = 500
)

// =============================================================================
// Z-Index Layers
// =============================================================================

const (
	// ZIndexDesktop is the z-index of the wallpaper and desktop icons
	ZIndexDesktop = 0

	// ZIndexWindowBase is added to the rank of every window layer
	ZIndexWindowBase = 10

	// ZIndexTaskbar is the z-index for the taskbar
	ZIndexTaskbar = 100000

	// ZIndexStartMenu is the z-index for the start menu
	ZIndexStartMenu = 100001

	// ZIndexLogs is the z-index for the log viewer overlay
	ZIndexLogs = 100002

	// ZIndexNotifications is the z-index for notifications
	ZIndexNotifications = 100003
)

// =============================================================================
// Runtime Settings
// =============================================================================

var (
	// AnimationsEnabled controls spawn/close animations
	AnimationsEnabled = true

	// UseASCIIOnly replaces unicode glyphs with ASCII
	UseASCIIOnly = false

	// BorderStyle is the window border style
	BorderStyle = "rounded"

	// TaskbarPosition is "bottom" or "top"
	TaskbarPosition = "bottom"

	// HideClock hides the clock in the taskbar tray
	HideClock = false

	// HideSysInfo hides the CPU/RAM readout in the taskbar tray
	HideSysInfo = false
)

// GetAnimationDuration returns the animation duration, or zero when animations are disabled.
func GetAnimationDuration() time.Duration {
	if !AnimationsEnabled {
		return 0
	}
	return DefaultAnimationDuration
}
