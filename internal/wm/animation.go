package wm

import (
	"fmt"
	"math"
	"time"
)

// AnimationKind tells spawn-in from close-out animations.
type AnimationKind int

const (
	// AnimSpawn grows a new window from its center.
	AnimSpawn AnimationKind = iota
	// AnimClose shrinks a closing window toward its center.
	AnimClose
)

func (k AnimationKind) String() string {
	if k == AnimClose {
		return "close"
	}
	return "spawn"
}

// minAnimationScale is the scale a spawn starts from and a close ends at.
const minAnimationScale = 0.3

// Animation is a time-based visual transition of one window.
type Animation struct {
	Kind      AnimationKind
	StartTime time.Time
	Duration  time.Duration
	Progress  float64
	Complete  bool
}

// Update advances the animation to now and reports whether it completed
// during this call.
func (a *Animation) Update(now time.Time) bool {
	if a.Complete {
		return false
	}
	if a.Duration <= 0 {
		a.Progress = 1
		a.Complete = true
		return true
	}
	elapsed := now.Sub(a.StartTime)
	if elapsed >= a.Duration {
		a.Progress = 1
		a.Complete = true
		return true
	}
	a.Progress = max(0, float64(elapsed)/float64(a.Duration))
	return false
}

// Scale returns the eased scale factor at the current progress.
func (a *Animation) Scale() float64 {
	eased := easeOutCubic(a.Progress)
	if a.Kind == AnimClose {
		return 1 - (1-minAnimationScale)*eased
	}
	return minAnimationScale + (1-minAnimationScale)*eased
}

// Apply scales r around its center by the current animation scale.
func (a *Animation) Apply(r Rect) Rect {
	scale := a.Scale()
	w := max(1, int(math.Round(float64(r.Width)*scale)))
	h := max(1, int(math.Round(float64(r.Height)*scale)))
	return Rect{
		X:      r.X + (r.Width-w)/2,
		Y:      r.Y + (r.Height-h)/2,
		Width:  w,
		Height: h,
	}
}

func easeOutCubic(t float64) float64 {
	t = math.Min(1, math.Max(0, t))
	return 1 - math.Pow(1-t, 3)
}

// transitionKey names the end-of-transition signal for a window animation.
func transitionKey(kind AnimationKind, windowID string) string {
	return fmt.Sprintf("%s:%s", kind, windowID)
}
