package wm

// Target identifies the part of a window a pointer event landed on.
type Target int

const (
	// TargetBody is anywhere inside the window that is not the header.
	TargetBody Target = iota
	// TargetHeader is the title bar; the only place a drag can start.
	TargetHeader
	// TargetClose is the close control inside the header.
	TargetClose
	// TargetMinimize is the minimize control inside the header.
	TargetMinimize
)

// Button is a pointer button.
type Button int

const (
	// ButtonPrimary is the left mouse button (or a touch).
	ButtonPrimary Button = iota
	// ButtonSecondary is the right mouse button.
	ButtonSecondary
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
)

// DragState is the state of the drag state machine.
type DragState int

const (
	// DragIdle means no gesture is in progress.
	DragIdle DragState = iota
	// DragDragging means a header drag is moving a window.
	DragDragging
)

func (s DragState) String() string {
	if s == DragDragging {
		return "dragging"
	}
	return "idle"
}

// DragSession is the ephemeral state of one drag gesture. It refers to
// its window by ID so it never keeps a removed window alive.
type DragSession struct {
	WindowID string
	Offset   Point
	Active   bool
}

// DragController runs the Idle -> Dragging -> Idle state machine. There is
// a single pointer, so one controller serves every window.
type DragController struct {
	session DragSession
}

// State returns the current state.
func (d *DragController) State() DragState {
	if d.session.Active {
		return DragDragging
	}
	return DragIdle
}

// Session returns the active session, if any.
func (d *DragController) Session() (DragSession, bool) {
	return d.session, d.session.Active
}

// Begin starts a drag when the primary button went down on the header.
// Presses on the header controls never start a drag.
func (d *DragController) Begin(w *Window, p Point, button Button, target Target) bool {
	if w == nil || button != ButtonPrimary || target != TargetHeader {
		return false
	}
	d.session = DragSession{
		WindowID: w.ID,
		Offset:   p.Sub(w.TopLeft()),
		Active:   true,
	}
	return true
}

// Move repositions w to follow the pointer, clamped so the window stays
// inside the container on each axis. When the window is larger than the
// container the lower bound wins.
func (d *DragController) Move(w *Window, p Point, container Size) bool {
	if !d.session.Active || w == nil || w.ID != d.session.WindowID {
		return false
	}
	pos := p.Sub(d.session.Offset)
	pos.X = max(0, min(pos.X, container.Width-w.Width))
	pos.Y = max(0, min(pos.Y, container.Height-w.Height))
	w.X, w.Y = pos.X, pos.Y
	return true
}

// End returns to Idle. It is safe to call in any state.
func (d *DragController) End() {
	d.session = DragSession{}
}

// Owns reports whether the active session drags the window with the given ID.
func (d *DragController) Owns(windowID string) bool {
	return d.session.Active && d.session.WindowID == windowID
}
