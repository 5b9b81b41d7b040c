package config

import "testing"

func TestKeybindRegistry_Action(t *testing.T) {
	r := NewKeybindRegistry(nil)

	tests := []struct {
		name           string
		key            string
		desktopFocused bool
		wantAction     string
		wantOK         bool
	}{
		{"global key with window focused", "ctrl+w", false, ActionCloseWindow, true},
		{"global key on desktop", "tab", true, ActionNextWindow, true},
		{"desktop key on desktop", "s", true, ActionToggleStartMenu, true},
		{"desktop key with window focused goes to content", "s", false, "", false},
		{"q quits from the desktop", "q", true, ActionQuit, true},
		{"case and spaces are ignored", " Ctrl+C ", false, ActionQuit, true},
		{"unbound key", "x", true, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := r.Action(tt.key, tt.desktopFocused)
			if action != tt.wantAction || ok != tt.wantOK {
				t.Errorf("Action(%q, %v) = %q, %v; want %q, %v", tt.key, tt.desktopFocused, action, ok, tt.wantAction, tt.wantOK)
			}
		})
	}
}

func TestKeybindRegistry_Display(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings.Global[ActionQuit] = []string{"ctrl+c", "ctrl+q"}
	r := NewKeybindRegistry(cfg)

	if got := r.GetKeysForDisplay(ActionQuit); got != "ctrl+c, ctrl+q, q" {
		t.Errorf("unexpected display %q", got)
	}

	sections := GetKeybindings(r)
	if len(sections) < 2 || sections[0].Title != "WINDOWS" {
		t.Fatalf("expected WINDOWS section first, got %+v", sections)
	}
	if len(sections[0].Bindings) != 4 {
		t.Errorf("expected 4 window bindings, got %d", len(sections[0].Bindings))
	}
}
