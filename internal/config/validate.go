package config

import (
	"fmt"
	"slices"
)

// ValidationIssue is one problem found in a config file.
type ValidationIssue struct {
	Field   string // config section, e.g. "windows"
	Key     string
	Message string
}

// ValidationResult collects errors, which stop startup, and warnings,
// which are printed and ignored.
type ValidationResult struct {
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

// HasErrors reports whether any error was found.
func (v *ValidationResult) HasErrors() bool {
	return len(v.Errors) > 0
}

func (v *ValidationResult) addError(field, key, format string, args ...any) {
	v.Errors = append(v.Errors, ValidationIssue{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

func (v *ValidationResult) addWarning(field, key, format string, args ...any) {
	v.Warnings = append(v.Warnings, ValidationIssue{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

var (
	validBorderStyles     = []string{"rounded", "normal", "thick", "double", "hidden", "block", "ascii"}
	validTaskbarPositions = []string{"bottom", "top"}
	validDevices          = []string{"auto", "desktop", "mobile"}
	validLogLevels        = []string{"debug", "info", "warn", "error", "off"}
)

// ValidateConfig checks a filled-in config.
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	v := &ValidationResult{}

	if !slices.Contains(validBorderStyles, cfg.Appearance.BorderStyle) {
		v.addError("appearance", "border_style", "unknown style %q, expected one of %v", cfg.Appearance.BorderStyle, validBorderStyles)
	}
	if !slices.Contains(validTaskbarPositions, cfg.Appearance.TaskbarPosition) {
		v.addError("appearance", "taskbar_position", "unknown position %q, expected one of %v", cfg.Appearance.TaskbarPosition, validTaskbarPositions)
	}

	w := cfg.Windows
	if !slices.Contains(validDevices, w.Device) {
		v.addError("windows", "device", "unknown device %q, expected one of %v", w.Device, validDevices)
	}
	if w.EdgePadding != nil && *w.EdgePadding < 0 {
		v.addError("windows", "edge_padding", "must not be negative, got %d", *w.EdgePadding)
	}
	if w.Jitter != nil && *w.Jitter < 0 {
		v.addError("windows", "jitter", "must not be negative, got %d", *w.Jitter)
	}
	if w.MobileBreakpoint < 0 {
		v.addError("windows", "mobile_breakpoint", "must not be negative, got %d", w.MobileBreakpoint)
	}
	if w.ZBaseline < 0 {
		v.addError("windows", "z_baseline", "must not be negative, got %d", w.ZBaseline)
	}
	validateSize(v, "simple_size", w.SimpleSize)
	validateSize(v, "media_size", w.MediaSize)

	validateBindings(v, "keybindings.global", cfg.Keybindings.Global)
	validateBindings(v, "keybindings.desktop", cfg.Keybindings.Desktop)

	if !slices.Contains(validLogLevels, cfg.Logging.Level) {
		v.addError("logging", "level", "unknown level %q, expected one of %v", cfg.Logging.Level, validLogLevels)
	}

	return v
}

func validateSize(v *ValidationResult, key string, size []int) {
	if len(size) != 2 {
		v.addError("windows", key, "expected [width, height], got %d value(s)", len(size))
		return
	}
	if size[0] < MinWindowWidth || size[1] < MinWindowHeight {
		v.addError("windows", key, "must be at least [%d, %d], got %v", MinWindowWidth, MinWindowHeight, size)
	}
}

func validateBindings(v *ValidationResult, field string, bindings map[string][]string) {
	seen := make(map[string]string)
	for action, keys := range bindings {
		if !IsKnownAction(action) {
			v.addWarning(field, action, "unknown action, ignored")
			continue
		}
		for _, key := range keys {
			key = normalizeKey(key)
			if key == "" {
				v.addWarning(field, action, "empty key")
				continue
			}
			if other, dup := seen[key]; dup && other != action {
				v.addError(field, action, "key %q is also bound to %q", key, other)
				continue
			}
			seen[key] = action
		}
	}
}
