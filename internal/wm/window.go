package wm

import "time"

// Kind selects the size preset a window spawns with.
type Kind int

const (
	// KindSimple is a text-style window.
	KindSimple Kind = iota
	// KindMedia is a window hosting a media-player widget; it gets a larger preset.
	KindMedia
)

func (k Kind) String() string {
	switch k {
	case KindMedia:
		return "media"
	default:
		return "simple"
	}
}

// Visibility is the display state of a live window.
// Closed windows are not represented: they are removed from the registry.
type Visibility int

const (
	// Visible windows are drawn on the desktop.
	Visible Visibility = iota
	// Hidden windows are minimized to the taskbar but still open.
	Hidden
)

func (v Visibility) String() string {
	if v == Hidden {
		return "hidden"
	}
	return "visible"
}

// Window is a user-movable panel. The Registry owns every Window; handles
// returned by the Manager are for reading only.
type Window struct {
	ID    string
	Title string
	Kind  Kind
	Rect
	Z          int
	Visibility Visibility
	Focused    bool
	Closing    bool // close animation in flight, removal pending
	Content    Content
	Animation  *Animation
	SpawnedAt  time.Time
}

// IsVisible reports whether the window is drawn on the desktop.
func (w *Window) IsVisible() bool {
	return w.Visibility == Visible
}

// Bounds returns the window rectangle.
func (w *Window) Bounds() Rect {
	return w.Rect
}
