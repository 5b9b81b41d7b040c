package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

const configRelPath = "albumdesk/config.toml"

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance  AppearanceConfig  `toml:"appearance"`
	Windows     WindowsConfig     `toml:"windows"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
	Catalog     CatalogConfig     `toml:"catalog"`
	Logging     LoggingConfig     `toml:"logging"`
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	BorderStyle       string `toml:"border_style"`       // Border style: rounded, normal, thick, double, ascii
	TaskbarPosition   string `toml:"taskbar_position"`   // Taskbar position: bottom, top
	AnimationsEnabled *bool  `toml:"animations_enabled"` // Spawn/close animations (default: true)
	HideClock         bool   `toml:"hide_clock"`         // Hide the taskbar clock (default: false)
	HideSysInfo       bool   `toml:"hide_sysinfo"`       // Hide the CPU/RAM tray readout (default: false)
	ASCIIOnly         bool   `toml:"ascii_only"`         // Use ASCII glyphs only (default: false)
	Theme             string `toml:"theme"`              // Color theme name (e.g., dracula, nord, my-custom-theme)
}

// WindowsConfig holds window placement settings
type WindowsConfig struct {
	Device           string `toml:"device"`            // Size preset: auto, desktop, mobile (default: auto)
	EdgePadding      *int   `toml:"edge_padding"`      // Gap kept from desktop edges on spawn (default: 1)
	Jitter           *int   `toml:"jitter"`            // Max random spawn offset per axis (default: 3)
	MobileBreakpoint int    `toml:"mobile_breakpoint"` // Width below which auto means mobile (default: 80)
	ZBaseline        int    `toml:"z_baseline"`        // First stacking value is baseline+1 (default: 100)
	SimpleSize       []int  `toml:"simple_size"`       // [width, height] desktop preset for text windows
	MediaSize        []int  `toml:"media_size"`        // [width, height] desktop preset for media windows
}

// KeybindingsConfig holds all keybinding configurations
type KeybindingsConfig struct {
	Global  map[string][]string `toml:"global"`  // Always active
	Desktop map[string][]string `toml:"desktop"` // Active only while no window has focus
}

// CatalogConfig points at the album catalog
type CatalogConfig struct {
	Path string `toml:"path"` // YAML catalog file; empty uses the built-in catalog
}

// LoggingConfig holds log file settings
type LoggingConfig struct {
	Level string `toml:"level"` // debug, info, warn, error, off (default: info)
	File  string `toml:"file"`  // Log file path (default: $XDG_STATE_HOME/albumdesk/albumdesk.log)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	animations := true
	padding := DefaultEdgePadding
	jitter := DefaultPlacementJitter
	return &UserConfig{
		Appearance: AppearanceConfig{
			BorderStyle:       "rounded",
			TaskbarPosition:   "bottom",
			AnimationsEnabled: &animations,
		},
		Windows: WindowsConfig{
			Device:           "auto",
			EdgePadding:      &padding,
			Jitter:           &jitter,
			MobileBreakpoint: DefaultMobileBreakpoint,
			ZBaseline:        DefaultZBaseline,
			SimpleSize:       []int{SimpleWindowWidth, SimpleWindowHeight},
			MediaSize:        []int{MediaWindowWidth, MediaWindowHeight},
		},
		Keybindings: KeybindingsConfig{
			Global: map[string][]string{
				"quit":             {"ctrl+c"},
				"close_start_menu": {"esc"},
				"toggle_logs":      {"ctrl+l"},
				"next_window":      {"tab"},
				"prev_window":      {"shift+tab"},
				"close_window":     {"ctrl+w"},
				"minimize_window":  {"ctrl+n"},
			},
			Desktop: map[string][]string{
				"quit":              {"q"},
				"toggle_start_menu": {"s"},
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadUserConfig loads the user configuration from XDG config directory,
// writing a default file on first run.
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return createDefaultConfig()
	}
	return LoadUserConfigFrom(configPath)
}

// LoadUserConfigFrom loads and validates the configuration at path.
func LoadUserConfigFrom(path string) (*UserConfig, error) {
	// #nosec G304 - reading the user's own config file is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseUserConfig(data)
}

// ParseUserConfig parses TOML, fills missing settings with defaults and validates the result.
func ParseUserConfig(data []byte) (*UserConfig, error) {
	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaultCfg := DefaultConfig()
	fillMissingAppearance(&cfg, defaultCfg)
	fillMissingWindows(&cfg, defaultCfg)
	fillMissingKeybinds(&cfg, defaultCfg)
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultCfg.Logging.Level
	}

	validation := ValidateConfig(&cfg)
	if validation.HasErrors() {
		for _, e := range validation.Errors {
			fmt.Fprintf(os.Stderr, "Config error in [%s]: %s - %s\n", e.Field, e.Key, e.Message)
		}
		return nil, fmt.Errorf("configuration has %d error(s), please fix and restart", len(validation.Errors))
	}
	for _, w := range validation.Warnings {
		fmt.Fprintf(os.Stderr, "Config warning in [%s]: %s - %s\n", w.Field, w.Key, w.Message)
	}

	return &cfg, nil
}

// createDefaultConfig creates a default config file in the user's config directory
func createDefaultConfig() (*UserConfig, error) {
	cfg := DefaultConfig()

	configPath, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	if err := WriteConfig(configPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteConfig writes cfg to path with a commented header.
func WriteConfig(path string, cfg *UserConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# albumdesk configuration\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + path + "\n")
	sb.WriteString("# List keybindings with: albumdesk keybinds list\n\n")
	sb.WriteString("# [appearance]\n")
	sb.WriteString("#   border_style: rounded, normal, thick, double, ascii (default: rounded)\n")
	sb.WriteString("#   taskbar_position: bottom, top (default: bottom)\n")
	sb.WriteString("#   theme: color theme name; empty uses standard terminal colors\n")
	sb.WriteString("# [windows]\n")
	sb.WriteString("#   device: auto, desktop, mobile (default: auto)\n")
	sb.WriteString("#   simple_size / media_size: [width, height] in cells\n")
	sb.WriteString("# [catalog]\n")
	sb.WriteString("#   path: YAML album catalog; empty uses the built-in one\n\n")
	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// fillMissingAppearance fills in any missing appearance settings with defaults
func fillMissingAppearance(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.BorderStyle == "" {
		cfg.Appearance.BorderStyle = defaultCfg.Appearance.BorderStyle
	}
	if cfg.Appearance.TaskbarPosition == "" {
		cfg.Appearance.TaskbarPosition = defaultCfg.Appearance.TaskbarPosition
	}
	if cfg.Appearance.AnimationsEnabled == nil {
		cfg.Appearance.AnimationsEnabled = defaultCfg.Appearance.AnimationsEnabled
	}
}

// fillMissingWindows fills in any missing placement settings with defaults
func fillMissingWindows(cfg, defaultCfg *UserConfig) {
	w, d := &cfg.Windows, defaultCfg.Windows
	if w.Device == "" {
		w.Device = d.Device
	}
	if w.EdgePadding == nil {
		w.EdgePadding = d.EdgePadding
	}
	if w.Jitter == nil {
		w.Jitter = d.Jitter
	}
	if w.MobileBreakpoint == 0 {
		w.MobileBreakpoint = d.MobileBreakpoint
	}
	if w.ZBaseline == 0 {
		w.ZBaseline = d.ZBaseline
	}
	if len(w.SimpleSize) == 0 {
		w.SimpleSize = d.SimpleSize
	}
	if len(w.MediaSize) == 0 {
		w.MediaSize = d.MediaSize
	}
}

// fillMissingKeybinds fills in any missing keybindings with defaults
func fillMissingKeybinds(cfg, defaultCfg *UserConfig) {
	if cfg.Keybindings.Desktop == nil {
		cfg.Keybindings.Desktop = make(map[string][]string)
	}
	if cfg.Keybindings.Global == nil {
		cfg.Keybindings.Global = make(map[string][]string)
	}
	fillMapDefaults(cfg.Keybindings.Global, defaultCfg.Keybindings.Global)
	fillMapDefaults(cfg.Keybindings.Desktop, defaultCfg.Keybindings.Desktop)
}

func fillMapDefaults(target, defaults map[string][]string) {
	for k, v := range defaults {
		if _, exists := target[k]; !exists {
			target[k] = v
		}
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile(configRelPath)
	}
	return path, nil
}
