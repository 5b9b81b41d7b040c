package app

import (
	"fmt"

	"github.com/dodorz/albumdesk/internal/config"
	"github.com/dodorz/albumdesk/internal/content"
	"github.com/dodorz/albumdesk/internal/wm"
	"github.com/rs/zerolog"
)

// ManagerOptions builds window manager options from the user config. Call
// it after config.ApplyOverrides so the animation setting is final.
func ManagerOptions(cfg *config.UserConfig) (wm.Options, error) {
	opts := wm.DefaultOptions()
	if cfg == nil {
		return opts, nil
	}
	w := cfg.Windows

	device, err := wm.ParseDevice(w.Device)
	if err != nil {
		return opts, err
	}
	opts.Placer.Device = device

	if w.EdgePadding != nil {
		opts.Placer.Padding = *w.EdgePadding
	}
	if w.Jitter != nil {
		opts.Placer.Jitter = *w.Jitter
	}
	if w.MobileBreakpoint > 0 {
		opts.Placer.MobileBreakpoint = w.MobileBreakpoint
	}
	if w.ZBaseline > 0 {
		opts.ZBaseline = w.ZBaseline
	}
	if len(w.SimpleSize) == 2 {
		opts.Placer.Sizes.Desktop[wm.KindSimple] = wm.Size{Width: w.SimpleSize[0], Height: w.SimpleSize[1]}
	}
	if len(w.MediaSize) == 2 {
		opts.Placer.Sizes.Desktop[wm.KindMedia] = wm.Size{Width: w.MediaSize[0], Height: w.MediaSize[1]}
	}
	return opts, nil
}

// NewFromConfig builds a Desktop from the user config: placement options,
// keybindings and the configured catalog.
func NewFromConfig(cfg *config.UserConfig, logger zerolog.Logger) (*Desktop, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	mgr, err := ManagerOptions(cfg)
	if err != nil {
		return nil, fmt.Errorf("windows config: %w", err)
	}
	mgr.Logger = logger

	catalog, err := content.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	return New(Options{
		Catalog:  catalog,
		Manager:  mgr,
		Keybinds: config.NewKeybindRegistry(cfg),
		Logger:   logger,
	})
}
