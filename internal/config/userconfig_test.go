package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestParseUserConfig_FillsDefaults tests that a partial file keeps its
// values and gets defaults for everything else.
func TestParseUserConfig_FillsDefaults(t *testing.T) {
	data := `
[appearance]
border_style = "double"

[windows]
jitter = 0
simple_size = [40, 10]

[keybindings.global]
close_window = ["ctrl+x"]
`
	cfg, err := ParseUserConfig([]byte(data))
	if err != nil {
		t.Fatalf("ParseUserConfig failed: %v", err)
	}

	if cfg.Appearance.BorderStyle != "double" {
		t.Errorf("expected border style 'double', got %q", cfg.Appearance.BorderStyle)
	}
	if cfg.Appearance.TaskbarPosition != "bottom" {
		t.Errorf("expected default taskbar position, got %q", cfg.Appearance.TaskbarPosition)
	}
	if cfg.Appearance.AnimationsEnabled == nil || !*cfg.Appearance.AnimationsEnabled {
		t.Error("expected animations to default to enabled")
	}
	if cfg.Windows.Jitter == nil || *cfg.Windows.Jitter != 0 {
		t.Errorf("expected explicit jitter 0 to be kept, got %v", cfg.Windows.Jitter)
	}
	if cfg.Windows.EdgePadding == nil || *cfg.Windows.EdgePadding != DefaultEdgePadding {
		t.Errorf("expected default edge padding, got %v", cfg.Windows.EdgePadding)
	}
	if got := cfg.Windows.SimpleSize; len(got) != 2 || got[0] != 40 || got[1] != 10 {
		t.Errorf("expected simple size [40 10], got %v", got)
	}
	if got := cfg.Windows.MediaSize; len(got) != 2 || got[0] != MediaWindowWidth {
		t.Errorf("expected default media size, got %v", got)
	}
	if cfg.Windows.ZBaseline != DefaultZBaseline {
		t.Errorf("expected z baseline %d, got %d", DefaultZBaseline, cfg.Windows.ZBaseline)
	}
	if keys := cfg.Keybindings.Global[ActionCloseWindow]; len(keys) != 1 || keys[0] != "ctrl+x" {
		t.Errorf("expected close_window to be overridden, got %v", keys)
	}
	if keys := cfg.Keybindings.Global[ActionNextWindow]; len(keys) == 0 {
		t.Error("expected next_window default to be filled in")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level, got %q", cfg.Logging.Level)
	}
}

// TestParseUserConfig_Invalid tests that validation errors fail the load.
func TestParseUserConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad border", "[appearance]\nborder_style = \"wavy\"\n"},
		{"bad taskbar", "[appearance]\ntaskbar_position = \"left\"\n"},
		{"bad device", "[windows]\ndevice = \"tablet\"\n"},
		{"negative padding", "[windows]\nedge_padding = -1\n"},
		{"short size", "[windows]\nsimple_size = [40]\n"},
		{"tiny size", "[windows]\nmedia_size = [4, 1]\n"},
		{"bad level", "[logging]\nlevel = \"loud\"\n"},
		{"conflicting keys", "[keybindings.global]\nclose_window = [\"tab\"]\n"},
		{"not toml", "this is = = not toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseUserConfig([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

// TestValidateConfig_UnknownActionWarns tests that unknown actions only warn.
func TestValidateConfig_UnknownActionWarns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings.Desktop["launch_rockets"] = []string{"r"}

	result := ValidateConfig(cfg)
	if result.HasErrors() {
		t.Fatalf("expected no errors, got %v", result.Errors)
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Key != "launch_rockets" {
		t.Errorf("expected one warning for launch_rockets, got %v", result.Warnings)
	}
}

// TestDefaultConfigIsValid guards the defaults against the validator.
func TestDefaultConfigIsValid(t *testing.T) {
	result := ValidateConfig(DefaultConfig())
	if result.HasErrors() || len(result.Warnings) > 0 {
		t.Errorf("expected clean defaults, got errors %v warnings %v", result.Errors, result.Warnings)
	}
}

// TestWriteConfig_RoundTrip tests that a written config loads back unchanged.
func TestWriteConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Appearance.Theme = "nord"
	cfg.Catalog.Path = "/tmp/albums.yaml"

	if err := WriteConfig(path, cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(raw), "# albumdesk configuration") {
		t.Error("expected the commented header")
	}

	loaded, err := LoadUserConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadUserConfigFrom failed: %v", err)
	}
	if loaded.Appearance.Theme != "nord" {
		t.Errorf("expected theme 'nord', got %q", loaded.Appearance.Theme)
	}
	if loaded.Catalog.Path != "/tmp/albums.yaml" {
		t.Errorf("expected catalog path to survive, got %q", loaded.Catalog.Path)
	}
}

// TestLoadUserConfigFrom_Missing tests that a missing file yields defaults.
func TestLoadUserConfigFrom_Missing(t *testing.T) {
	cfg, err := LoadUserConfigFrom(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Windows.Device != "auto" {
		t.Errorf("expected defaults, got device %q", cfg.Windows.Device)
	}
}

// TestApplyOverrides tests flag > file > default precedence.
func TestApplyOverrides(t *testing.T) {
	saved := []any{UseASCIIOnly, BorderStyle, TaskbarPosition, HideClock, HideSysInfo, AnimationsEnabled}
	t.Cleanup(func() {
		UseASCIIOnly = saved[0].(bool)
		BorderStyle = saved[1].(string)
		TaskbarPosition = saved[2].(string)
		HideClock = saved[3].(bool)
		HideSysInfo = saved[4].(bool)
		AnimationsEnabled = saved[5].(bool)
	})

	cfg := DefaultConfig()
	cfg.Appearance.BorderStyle = "thick"
	cfg.Appearance.TaskbarPosition = "top"
	cfg.Appearance.HideClock = true
	off := false
	cfg.Appearance.AnimationsEnabled = &off

	ApplyOverrides(Overrides{BorderStyle: "double", Device: "mobile", ThemeName: "dracula"}, cfg)

	if BorderStyle != "double" {
		t.Errorf("expected flag to win, got %q", BorderStyle)
	}
	if TaskbarPosition != "top" {
		t.Errorf("expected file value, got %q", TaskbarPosition)
	}
	if !HideClock {
		t.Error("expected HideClock from file")
	}
	if AnimationsEnabled {
		t.Error("expected animations disabled by file")
	}
	if GetAnimationDuration() != 0 {
		t.Error("expected zero duration with animations disabled")
	}
	if cfg.Windows.Device != "mobile" || cfg.Appearance.Theme != "dracula" {
		t.Errorf("expected flags written back, got device %q theme %q", cfg.Windows.Device, cfg.Appearance.Theme)
	}
}
