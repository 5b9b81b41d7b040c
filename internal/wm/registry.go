package wm

import (
	"fmt"
	"sort"
)

// Registry maps titles to live windows. It is the only authority on
// whether a window with a given title exists.
type Registry struct {
	byTitle map[string]*Window
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byTitle: make(map[string]*Window)}
}

// Get returns the live window with the given title.
func (r *Registry) Get(title string) (*Window, bool) {
	w, ok := r.byTitle[title]
	return w, ok
}

// ByID returns the live window with the given instance ID.
func (r *Registry) ByID(id string) (*Window, bool) {
	for _, w := range r.byTitle {
		if w.ID == id {
			return w, true
		}
	}
	return nil, false
}

// Put registers w under its title.
func (r *Registry) Put(w *Window) error {
	if w.Title == "" {
		return ErrEmptyTitle
	}
	if _, exists := r.byTitle[w.Title]; exists {
		return fmt.Errorf("%q: %w", w.Title, ErrDuplicateWindow)
	}
	r.byTitle[w.Title] = w
	return nil
}

// Delete removes the window registered under title.
func (r *Registry) Delete(title string) {
	delete(r.byTitle, title)
}

// Len returns the number of live windows.
func (r *Registry) Len() int {
	return len(r.byTitle)
}

// All returns every live window ordered bottom to top.
func (r *Registry) All() []*Window {
	windows := make([]*Window, 0, len(r.byTitle))
	for _, w := range r.byTitle {
		windows = append(windows, w)
	}
	sort.Slice(windows, func(i, j int) bool {
		return windows[i].Z < windows[j].Z
	})
	return windows
}

// Visible returns the visible windows ordered bottom to top.
func (r *Registry) Visible() []*Window {
	all := r.All()
	visible := all[:0]
	for _, w := range all {
		if w.IsVisible() {
			visible = append(visible, w)
		}
	}
	return visible
}

// TaskbarIcon is the taskbar proxy of an open window.
type TaskbarIcon struct {
	Title    string
	WindowID string
	Order    int
}

// Taskbar holds one icon per open window, keyed by title.
type Taskbar struct {
	icons map[string]*TaskbarIcon
	seq   int
}

// NewTaskbar returns an empty Taskbar.
func NewTaskbar() *Taskbar {
	return &Taskbar{icons: make(map[string]*TaskbarIcon)}
}

// Add registers an icon for title. An existing icon for title is kept.
func (t *Taskbar) Add(title, windowID string) {
	if _, exists := t.icons[title]; exists {
		return
	}
	t.seq++
	t.icons[title] = &TaskbarIcon{Title: title, WindowID: windowID, Order: t.seq}
}

// Remove drops the icon for title.
func (t *Taskbar) Remove(title string) {
	delete(t.icons, title)
}

// Has reports whether title has an icon.
func (t *Taskbar) Has(title string) bool {
	_, ok := t.icons[title]
	return ok
}

// Icons returns the icons in the order they were added.
func (t *Taskbar) Icons() []TaskbarIcon {
	icons := make([]TaskbarIcon, 0, len(t.icons))
	for _, icon := range t.icons {
		icons = append(icons, *icon)
	}
	sort.Slice(icons, func(i, j int) bool {
		return icons[i].Order < icons[j].Order
	})
	return icons
}
