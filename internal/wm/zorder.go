package wm

// Stack assigns stacking order. The counter starts at a baseline and only
// ever grows, so the window holding the highest value is the topmost one
// and two windows never share a value.
type Stack struct {
	counter int
	focused *Window
}

// NewStack returns a Stack whose first assignment is baseline+1.
func NewStack(baseline int) *Stack {
	return &Stack{counter: baseline}
}

// BringToFront gives w a fresh, strictly greater stacking value and makes
// it the only focused window.
func (s *Stack) BringToFront(w *Window) {
	if w == nil {
		return
	}
	s.counter++
	w.Z = s.counter

	if s.focused != nil && s.focused != w {
		s.focused.Focused = false
	}
	w.Focused = true
	s.focused = w
}

// Blur drops focus from w if it holds it. Nothing else gains focus.
func (s *Stack) Blur(w *Window) {
	if w == nil || s.focused != w {
		return
	}
	w.Focused = false
	s.focused = nil
}

// Top returns the most recently assigned value.
func (s *Stack) Top() int {
	return s.counter
}

// Focused returns the focused window, or nil.
func (s *Stack) Focused() *Window {
	return s.focused
}
