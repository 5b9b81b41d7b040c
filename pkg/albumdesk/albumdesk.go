// Package albumdesk provides the albumdesk desktop as a reusable Bubble Tea
// model that can be embedded in other applications or served remotely.
//
// albumdesk is a desktop-metaphor storefront for a record catalog:
// album and page icons open draggable windows that can be focused,
// minimized to the taskbar and closed.
//
// # Basic Usage
//
//	model, err := albumdesk.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	p := tea.NewProgram(model, albumdesk.ProgramOptions()...)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Configuration
//
//	model, err := albumdesk.New(
//		albumdesk.WithTheme("dracula"),
//		albumdesk.WithAnimations(false),
//		albumdesk.WithCatalogPath("label.yaml"),
//	)
//
// # Headless Playback
//
// PlayTape runs a .tape script against an off-screen desktop driven by a
// virtual clock and returns the final window table.
package albumdesk

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/dodorz/albumdesk/internal/app"
	"github.com/dodorz/albumdesk/internal/config"
	"github.com/dodorz/albumdesk/internal/content"
	"github.com/dodorz/albumdesk/internal/input"
	"github.com/dodorz/albumdesk/internal/tape"
	"github.com/dodorz/albumdesk/internal/theme"
	"github.com/dodorz/albumdesk/internal/wm"
	"github.com/rs/zerolog"
)

// Model is the albumdesk model that implements tea.Model.
type Model = app.Desktop

// WindowRow is one row of the window table returned by PlayTape.
type WindowRow = app.WindowRow

// Options configures an albumdesk instance.
type Options struct {
	// Theme is the color theme name (e.g., "dracula", "nord").
	// Leave empty to use the built-in colors.
	Theme string

	// Animations enables spawn and close animations.
	Animations bool

	// ASCIIOnly uses ASCII glyphs instead of box drawing and icons.
	ASCIIOnly bool

	// BorderStyle sets the window border style.
	// Valid values: "rounded", "normal", "thick", "double", "hidden", "block", "ascii"
	BorderStyle string

	// TaskbarPosition is "bottom" or "top".
	TaskbarPosition string

	// Device forces the size preset: "auto", "desktop" or "mobile".
	Device string

	// CatalogPath loads a YAML catalog instead of the built-in one.
	CatalogPath string

	// Width is the initial width (set automatically if 0).
	Width int

	// Height is the initial height (set automatically if 0).
	Height int

	// UserConfig is a custom user configuration. If nil, the config file
	// is loaded, falling back to defaults.
	UserConfig *config.UserConfig

	// Logger receives window manager and desktop logs.
	Logger zerolog.Logger
}

// Option is a functional option for configuring albumdesk.
type Option func(*Options)

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithAnimations enables or disables window animations.
func WithAnimations(enabled bool) Option {
	return func(o *Options) {
		o.Animations = enabled
	}
}

// WithASCIIOnly enables ASCII-only mode.
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) {
		o.ASCIIOnly = enabled
	}
}

// WithBorderStyle sets the window border style.
func WithBorderStyle(style string) Option {
	return func(o *Options) {
		o.BorderStyle = style
	}
}

// WithTaskbarPosition sets the taskbar position.
func WithTaskbarPosition(position string) Option {
	return func(o *Options) {
		o.TaskbarPosition = position
	}
}

// WithDevice forces the window size preset.
func WithDevice(device string) Option {
	return func(o *Options) {
		o.Device = device
	}
}

// WithCatalogPath loads the catalog from a YAML file.
func WithCatalogPath(path string) Option {
	return func(o *Options) {
		o.CatalogPath = path
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithUserConfig sets a custom user configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		o.UserConfig = cfg
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Animations: true,
		Logger:     zerolog.Nop(),
	}
}

func buildOptions(opts []Option) Options {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// New creates a new albumdesk model with the given options.
// This is the main entry point for using albumdesk as a library.
func New(opts ...Option) (*Model, error) {
	return newModel(buildOptions(opts))
}

// PTY is the size source of a remote session.
type PTY interface {
	Width() int
	Height() int
}

// NewForPTY creates a new albumdesk model sized for a PTY session.
func NewForPTY(pty PTY, opts ...Option) (*Model, error) {
	options := buildOptions(opts)
	options.Width = pty.Width()
	options.Height = pty.Height()
	return newModel(options)
}

// userConfig resolves and applies the configuration. Flags in options win
// over the file.
func userConfig(options Options) *config.UserConfig {
	cfg := options.UserConfig
	if cfg == nil {
		var err error
		cfg, err = config.LoadUserConfig()
		if err != nil {
			cfg = config.DefaultConfig()
		}
	}

	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:       options.ASCIIOnly,
		BorderStyle:     options.BorderStyle,
		TaskbarPosition: options.TaskbarPosition,
		NoAnimations:    !options.Animations,
		ThemeName:       options.Theme,
		Device:          options.Device,
		CatalogPath:     options.CatalogPath,
	}, cfg)

	if cfg.Appearance.Theme != "" {
		_ = theme.Initialize(cfg.Appearance.Theme)
	}
	return cfg
}

// newModel creates the internal model with applied options.
func newModel(options Options) (*Model, error) {
	app.SetInputHandler(input.HandleInput)

	cfg := userConfig(options)
	d, err := app.NewFromConfig(cfg, options.Logger)
	if err != nil {
		return nil, err
	}
	if options.Width > 0 && options.Height > 0 {
		d.Resize(options.Width, options.Height)
	}
	return d, nil
}

// ProgramOptions returns recommended tea.ProgramOption values for running albumdesk.
// Use these when creating a tea.Program:
//
//	p := tea.NewProgram(model, albumdesk.ProgramOptions()...)
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(FilterMouseMotion),
	}
}

// FilterMouseMotion is a tea.WithFilter function that drops mouse motion
// unless a window is being dragged. Nothing else reacts to hover.
//
// Usage:
//
//	p := tea.NewProgram(model, tea.WithFilter(albumdesk.FilterMouseMotion))
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}

	d, ok := model.(*Model)
	if !ok {
		return msg
	}
	if d.WM.DragState() == wm.DragDragging {
		return msg
	}
	return nil
}

// PlayTape parses and runs a tape script on an off-screen desktop and
// returns the windows left open, bottom to top. Time only moves through
// Sleep and Frames. The default size is 120x40.
func PlayTape(script string, opts ...Option) ([]WindowRow, error) {
	cmds, err := tape.Parse(script)
	if err != nil {
		return nil, err
	}

	options := buildOptions(opts)
	if options.Width <= 0 || options.Height <= 0 {
		options.Width, options.Height = 120, 40
	}
	cfg := userConfig(options)

	mgr, err := app.ManagerOptions(cfg)
	if err != nil {
		return nil, fmt.Errorf("windows config: %w", err)
	}
	clock := app.NewVirtualClock(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	mgr.Now = clock.Now
	mgr.Logger = options.Logger

	catalog, err := content.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	d, err := app.New(app.Options{
		Catalog:  catalog,
		Manager:  mgr,
		Keybinds: config.NewKeybindRegistry(cfg),
		Logger:   options.Logger,
	})
	if err != nil {
		return nil, err
	}
	d.SetClock(clock)
	d.Resize(options.Width, options.Height)

	if err := tape.NewCommandExecutor(d).Run(cmds); err != nil {
		return d.WindowTable(), err
	}
	return d.WindowTable(), nil
}

// Config re-exports the config package for customization.
// This allows users to access configuration types without importing internal packages.
var Config = struct {
	// LoadUserConfig loads the user's configuration file.
	LoadUserConfig func() (*config.UserConfig, error)
	// DefaultConfig returns the default configuration.
	DefaultConfig func() *config.UserConfig
	// GetConfigPath returns the path to the configuration file.
	GetConfigPath func() (string, error)
}{
	LoadUserConfig: config.LoadUserConfig,
	DefaultConfig:  config.DefaultConfig,
	GetConfigPath:  config.GetConfigPath,
}
