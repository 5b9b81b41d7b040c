package config

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ASCIIOnly uses ASCII glyphs instead of box drawing and icons
	ASCIIOnly bool

	// BorderStyle overrides the window border style
	BorderStyle string

	// TaskbarPosition overrides the taskbar position
	TaskbarPosition string

	// HideClock overrides hiding the clock
	HideClock bool

	// HideSysInfo overrides hiding the CPU/RAM readout
	HideSysInfo bool

	// NoAnimations disables spawn/close animations
	NoAnimations bool

	// ThemeName is the theme to load
	ThemeName string

	// Device forces the size preset (auto, desktop, mobile)
	Device string

	// CatalogPath loads another album catalog
	CatalogPath string
}

// ApplyOverrides applies CLI flag overrides to global config, falling back to user config defaults.
// If userConfig is nil, only CLI flag values (when set) are applied. The
// effective theme, device and catalog path are written back into userConfig
// for the callers that read them from there.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	// ASCII Only - OR of CLI flag and user config
	UseASCIIOnly = overrides.ASCIIOnly || (userConfig != nil && userConfig.Appearance.ASCIIOnly)

	// Border Style - CLI flag takes precedence, otherwise use user config
	if overrides.BorderStyle != "" {
		BorderStyle = overrides.BorderStyle
	} else if userConfig != nil && userConfig.Appearance.BorderStyle != "" {
		BorderStyle = userConfig.Appearance.BorderStyle
	}

	// Taskbar Position - CLI flag takes precedence, otherwise use user config
	if overrides.TaskbarPosition != "" {
		TaskbarPosition = overrides.TaskbarPosition
	} else if userConfig != nil && userConfig.Appearance.TaskbarPosition != "" {
		TaskbarPosition = userConfig.Appearance.TaskbarPosition
	}

	// Hide Clock / SysInfo - OR of CLI flag and user config
	HideClock = overrides.HideClock || (userConfig != nil && userConfig.Appearance.HideClock)
	HideSysInfo = overrides.HideSysInfo || (userConfig != nil && userConfig.Appearance.HideSysInfo)

	// Animations - disabled by flag, otherwise by user config
	switch {
	case overrides.NoAnimations:
		AnimationsEnabled = false
	case userConfig != nil && userConfig.Appearance.AnimationsEnabled != nil:
		AnimationsEnabled = *userConfig.Appearance.AnimationsEnabled
	}

	if userConfig == nil {
		return
	}
	if overrides.ThemeName != "" {
		userConfig.Appearance.Theme = overrides.ThemeName
	}
	if overrides.Device != "" {
		userConfig.Windows.Device = overrides.Device
	}
	if overrides.CatalogPath != "" {
		userConfig.Catalog.Path = overrides.CatalogPath
	}
}
