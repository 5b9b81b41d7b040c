package config

import (
	"sort"
	"strings"
)

// Action names understood by the input layer.
const (
	ActionQuit            = "quit"
	ActionToggleStartMenu = "toggle_start_menu"
	ActionCloseStartMenu  = "close_start_menu"
	ActionToggleLogs      = "toggle_logs"
	ActionNextWindow      = "next_window"
	ActionPrevWindow      = "prev_window"
	ActionCloseWindow     = "close_window"
	ActionMinimizeWindow  = "minimize_window"
)

// actionDescriptions lists every known action with its help text.
var actionDescriptions = map[string]string{
	ActionQuit:            "Quit",
	ActionToggleStartMenu: "Toggle start menu",
	ActionCloseStartMenu:  "Close start menu",
	ActionToggleLogs:      "Toggle log viewer",
	ActionNextWindow:      "Next window",
	ActionPrevWindow:      "Previous window",
	ActionCloseWindow:     "Close focused window",
	ActionMinimizeWindow:  "Minimize focused window",
}

// IsKnownAction reports whether action is bindable.
func IsKnownAction(action string) bool {
	_, ok := actionDescriptions[action]
	return ok
}

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// KeybindRegistry resolves key presses to actions. Global bindings always
// apply; desktop bindings apply only while no window has focus, so plain
// letters stay available to window content.
type KeybindRegistry struct {
	global  map[string]string // key -> action
	desktop map[string]string
	keys    map[string][]string // action -> keys, global first
}

// NewKeybindRegistry builds a registry from the user config. A nil config
// uses the defaults.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	r := &KeybindRegistry{
		global:  make(map[string]string),
		desktop: make(map[string]string),
		keys:    make(map[string][]string),
	}
	r.load(r.global, cfg.Keybindings.Global)
	r.load(r.desktop, cfg.Keybindings.Desktop)
	return r
}

func (r *KeybindRegistry) load(into map[string]string, bindings map[string][]string) {
	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	for _, action := range actions {
		for _, key := range bindings[action] {
			key = normalizeKey(key)
			if key == "" {
				continue
			}
			into[key] = action
			r.keys[action] = append(r.keys[action], key)
		}
	}
}

// Action returns the action bound to key. desktopFocused is true when no
// window has focus.
func (r *KeybindRegistry) Action(key string, desktopFocused bool) (string, bool) {
	key = normalizeKey(key)
	if action, ok := r.global[key]; ok {
		return action, true
	}
	if desktopFocused {
		if action, ok := r.desktop[key]; ok {
			return action, true
		}
	}
	return "", false
}

// KeysFor returns the keys bound to action.
func (r *KeybindRegistry) KeysFor(action string) []string {
	return r.keys[action]
}

// GetKeysForDisplay returns a comma separated list of keys for action.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	return strings.Join(r.keys[action], ", ")
}

// GetKeybindings returns all keybinding sections for the help listing.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(nil)
	}

	windows := KeybindingSection{Title: "WINDOWS"}
	addBinding(&windows, registry, ActionNextWindow)
	addBinding(&windows, registry, ActionPrevWindow)
	addBinding(&windows, registry, ActionCloseWindow)
	addBinding(&windows, registry, ActionMinimizeWindow)

	desktop := KeybindingSection{Title: "DESKTOP"}
	addBinding(&desktop, registry, ActionToggleStartMenu)
	addBinding(&desktop, registry, ActionCloseStartMenu)
	addBinding(&desktop, registry, ActionToggleLogs)
	addBinding(&desktop, registry, ActionQuit)

	sections := []KeybindingSection{}
	for _, s := range []KeybindingSection{windows, desktop} {
		if len(s.Bindings) > 0 {
			sections = append(sections, s)
		}
	}
	return append(sections, getStaticHelpSections()...)
}

// addBinding adds a keybinding to a section if the action has keys configured
func addBinding(section *KeybindingSection, registry *KeybindRegistry, action string) {
	keys := registry.GetKeysForDisplay(action)
	if keys != "" {
		section.Bindings = append(section.Bindings, Keybinding{
			Key:         keys,
			Description: actionDescriptions[action],
		})
	}
}

// getStaticHelpSections returns help sections that don't need dynamic binding info
func getStaticHelpSections() []KeybindingSection {
	return []KeybindingSection{
		{
			Title: "MOUSE",
			Bindings: []Keybinding{
				{"Double-click icon", "Open window"},
				{"Drag title bar", "Move window"},
				{"Click [_]", "Minimize to taskbar"},
				{"Click [x]", "Close window"},
				{"Click taskbar button", "Show and focus window"},
			},
		},
		{
			Title: "PLAYER (album windows)",
			Bindings: []Keybinding{
				{"space", "Play/pause"},
				{"n, p", "Next/previous track"},
				{"+, -", "Volume up/down"},
				{"left, right", "Seek 5s"},
			},
		},
	}
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
