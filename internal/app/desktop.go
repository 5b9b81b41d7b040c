// Package app implements the albumdesk desktop: the Bubble Tea model that
// owns the window manager, desktop icons, taskbar, start menu and overlays.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/dodorz/albumdesk/internal/config"
	"github.com/dodorz/albumdesk/internal/content"
	"github.com/dodorz/albumdesk/internal/sysinfo"
	"github.com/dodorz/albumdesk/internal/wm"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Icon is a desktop shortcut that opens the window with the same title.
type Icon struct {
	Title string
	Kind  wm.Kind
}

// Notification represents a temporary notification message.
type Notification struct {
	ID        string
	Message   string
	Type      string // "info", "success", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
}

// LogMessage represents a log entry with timestamp and level.
type LogMessage struct {
	Time    time.Time
	Level   string // INFO, WARN, ERROR
	Message string
}

// Options configures a Desktop.
type Options struct {
	// Catalog supplies the desktop icons and window contents. Nil uses the
	// built-in catalog.
	Catalog *content.Catalog
	// Manager is the base window manager configuration. Providers, Measurer
	// and Logger are filled in by New when left empty.
	Manager wm.Options
	// Keybinds resolves keys to actions. Nil uses the defaults.
	Keybinds *config.KeybindRegistry
	// SysInfo feeds the tray readout. Nil reads the host.
	SysInfo sysinfo.Source
	Logger  zerolog.Logger
}

// Desktop is the root Bubble Tea model.
type Desktop struct {
	WM       *wm.Manager
	Catalog  *content.Catalog
	Keybinds *config.KeybindRegistry

	Width  int
	Height int

	Icons        []Icon
	SelectedIcon int

	ShowStartMenu  bool
	StartMenuIndex int

	ShowLogs        bool
	LogMessages     []LogMessage
	LogScrollOffset int

	Notifications []Notification

	Clock time.Time
	Stats sysinfo.Stats

	sampler       *sysinfo.Sampler
	sysinfoFailed bool
	clock         *VirtualClock
	log           zerolog.Logger
	now           func() time.Time

	lastClickTitle string
	lastClickTime  time.Time
}

// New builds a Desktop, registering one provider per catalog entry.
func New(opts Options) (*Desktop, error) {
	if opts.Catalog == nil {
		opts.Catalog = content.DefaultCatalog()
	}
	if opts.Keybinds == nil {
		opts.Keybinds = config.NewKeybindRegistry(nil)
	}

	mgrOpts := opts.Manager
	if mgrOpts.Providers == nil {
		mgrOpts.Providers = wm.NewProviders()
	}
	if err := content.Register(mgrOpts.Providers, opts.Catalog); err != nil {
		return nil, err
	}
	if mgrOpts.Now == nil {
		mgrOpts.Now = time.Now
	}
	mgrOpts.Logger = opts.Logger

	m := &Desktop{
		Catalog:        opts.Catalog,
		Keybinds:       opts.Keybinds,
		SelectedIcon:   -1,
		StartMenuIndex: -1,
		sampler:        sysinfo.NewSampler(opts.SysInfo, config.SysInfoInterval),
		log:            opts.Logger,
		now:            mgrOpts.Now,
	}
	if mgrOpts.Measurer == nil {
		mgrOpts.Measurer = m.measure
	}
	m.WM = wm.NewManager(mgrOpts)
	m.WM.OnEvent(m.onEvent)

	for _, a := range opts.Catalog.Albums {
		m.Icons = append(m.Icons, Icon{Title: a.Title, Kind: wm.KindMedia})
	}
	for _, p := range opts.Catalog.Pages {
		m.Icons = append(m.Icons, Icon{Title: p.Title, Kind: wm.KindSimple})
	}
	return m, nil
}

func createID() string {
	return uuid.New().String()
}

// measure reports the size a window frame is drawn at: never larger than
// the desktop and never smaller than the header controls need.
func (m *Desktop) measure(w *wm.Window) wm.Size {
	vp := m.WM.Viewport()
	if vp.Width <= 0 || vp.Height <= 0 {
		return w.Size()
	}
	return wm.Size{
		Width:  max(config.MinWindowWidth, min(w.Width, vp.Width)),
		Height: max(config.MinWindowHeight, min(w.Height, vp.Height)),
	}
}

func (m *Desktop) onEvent(ev wm.Event) {
	switch ev.Type {
	case wm.EventSpawned:
		m.LogInfo("Opened %q", ev.Title)
		if _, known := m.WM.Providers().Lookup(ev.Title); !known {
			m.ShowNotification(fmt.Sprintf("No content for %q", ev.Title), "warning", config.NotificationDuration)
		}
	case wm.EventHidden:
		m.LogInfo("Minimized %q", ev.Title)
	case wm.EventShown:
		m.LogInfo("Restored %q", ev.Title)
	case wm.EventClosed:
		m.LogInfo("Closed %q", ev.Title)
	}
}

// Resize applies a new terminal size and re-clamps windows to the desktop.
func (m *Desktop) Resize(width, height int) {
	m.Width = width
	m.Height = height
	m.WM.SetViewport(width, m.GetUsableHeight())
}

// Tick advances animations, playback, notifications and the tray.
func (m *Desktop) Tick(now time.Time) {
	m.WM.Tick(now)
	m.Clock = now
	m.CleanupNotifications()

	if config.HideSysInfo {
		return
	}
	stats, err := m.sampler.Sample(context.Background(), now)
	if err != nil {
		if !m.sysinfoFailed {
			m.ShowNotification(fmt.Sprintf("System info unavailable: %v", err), "error", config.NotificationDuration)
			m.sysinfoFailed = true
		}
		return
	}
	m.Stats = stats
}

// Open opens the window titled title and closes the start menu.
func (m *Desktop) Open(title string) {
	m.ShowStartMenu = false
	m.StartMenuIndex = -1
	m.WM.Open(title)
}

// ClickIcon selects icon i. A second click within the double-click
// interval opens it.
func (m *Desktop) ClickIcon(i int, at time.Time) {
	if i < 0 || i >= len(m.Icons) {
		return
	}
	m.ShowStartMenu = false
	title := m.Icons[i].Title
	if m.SelectedIcon == i && m.lastClickTitle == title && at.Sub(m.lastClickTime) <= config.DoubleClickInterval {
		m.lastClickTitle = ""
		m.Open(title)
		return
	}
	m.SelectedIcon = i
	m.lastClickTitle = title
	m.lastClickTime = at
}

// ClearSelection deselects the desktop icon and closes the start menu.
func (m *Desktop) ClearSelection() {
	m.SelectedIcon = -1
	m.lastClickTitle = ""
	m.ShowStartMenu = false
	m.StartMenuIndex = -1
}

// ToggleStartMenu opens or closes the start menu.
func (m *Desktop) ToggleStartMenu() {
	m.ShowStartMenu = !m.ShowStartMenu
	m.StartMenuIndex = -1
}

// StartMenuItems returns the start menu entries: every registered title
// followed by the quit entry.
func (m *Desktop) StartMenuItems() []string {
	items := m.WM.Providers().Titles()
	return append(items, QuitItem)
}

// QuitItem is the last start menu entry.
const QuitItem = "Quit"

// MoveStartMenuSelection moves the keyboard highlight in the start menu.
func (m *Desktop) MoveStartMenuSelection(delta int) {
	n := len(m.StartMenuItems())
	if n == 0 {
		return
	}
	if m.StartMenuIndex < 0 {
		if delta < 0 {
			m.StartMenuIndex = n - 1
		} else {
			m.StartMenuIndex = 0
		}
		return
	}
	m.StartMenuIndex = ((m.StartMenuIndex+delta)%n + n) % n
}

// Log adds a new log message to the log buffer and mirrors it to the file log.
func (m *Desktop) Log(level, format string, args ...any) {
	message := fmt.Sprintf(format, args...)

	switch level {
	case "ERROR":
		m.log.Error().Msg(message)
	case "WARN":
		m.log.Warn().Msg(message)
	default:
		m.log.Info().Msg(message)
	}

	wasAtBottom := m.LogScrollOffset >= m.maxLogScroll()-2

	m.LogMessages = append(m.LogMessages, LogMessage{
		Time:    m.now(),
		Level:   level,
		Message: message,
	})
	if len(m.LogMessages) > config.MaxLogMessages {
		m.LogMessages = m.LogMessages[len(m.LogMessages)-config.MaxLogMessages:]
	}

	// Sticky scroll
	if wasAtBottom {
		m.LogScrollOffset = m.maxLogScroll()
	}
}

// LogInfo logs an informational message.
func (m *Desktop) LogInfo(format string, args ...any) {
	m.Log("INFO", format, args...)
}

// LogWarn logs a warning message.
func (m *Desktop) LogWarn(format string, args ...any) {
	m.Log("WARN", format, args...)
}

// LogError logs an error message.
func (m *Desktop) LogError(format string, args ...any) {
	m.Log("ERROR", format, args...)
}

// logsPerPage is how many log lines fit in the log viewer.
func (m *Desktop) logsPerPage() int {
	return max(max(m.Height-8, 8)-4, 1)
}

func (m *Desktop) maxLogScroll() int {
	return max(len(m.LogMessages)-m.logsPerPage(), 0)
}

// ScrollLogs moves the log viewer by delta lines.
func (m *Desktop) ScrollLogs(delta int) {
	m.LogScrollOffset = max(0, min(m.LogScrollOffset+delta, m.maxLogScroll()))
}

// ToggleLogs shows or hides the log viewer, scrolled to the newest entry.
func (m *Desktop) ToggleLogs() {
	m.ShowLogs = !m.ShowLogs
	if m.ShowLogs {
		m.LogScrollOffset = m.maxLogScroll()
	}
}

// ShowNotification displays a temporary notification.
func (m *Desktop) ShowNotification(message, notifType string, duration time.Duration) {
	m.Notifications = append(m.Notifications, Notification{
		ID:        createID(),
		Message:   message,
		Type:      notifType,
		StartTime: m.now(),
		Duration:  duration,
	})

	switch notifType {
	case "error":
		m.LogError("%s", message)
	case "warning":
		m.LogWarn("%s", message)
	default:
		m.LogInfo("%s", message)
	}
}

// CleanupNotifications removes expired notifications.
func (m *Desktop) CleanupNotifications() {
	now := m.now()
	active := m.Notifications[:0]
	for _, notif := range m.Notifications {
		if now.Sub(notif.StartTime) < notif.Duration {
			active = append(active, notif)
		}
	}
	m.Notifications = active
}

// GetTopMargin returns the rows reserved above the desktop for a top taskbar.
func (m *Desktop) GetTopMargin() int {
	if config.TaskbarPosition == "top" {
		return config.TaskbarHeight
	}
	return 0
}

// GetTaskbarY returns the row of the taskbar.
func (m *Desktop) GetTaskbarY() int {
	if config.TaskbarPosition == "top" {
		return 0
	}
	return m.Height - config.TaskbarHeight
}

// GetUsableHeight returns the desktop height excluding the taskbar.
func (m *Desktop) GetUsableHeight() int {
	return max(m.Height-config.TaskbarHeight, 0)
}

// ToDesktop converts screen coordinates to desktop coordinates.
func (m *Desktop) ToDesktop(x, y int) wm.Point {
	return wm.Point{X: x, Y: y - m.GetTopMargin()}
}
