package wm

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSpawnsFocusedWindowWithTaskbarIcon(t *testing.T) {
	h := newHarness(t)

	h.Open("A")

	w, ok := h.Window("A")
	require.True(t, ok)
	assert.Equal(t, "w1", w.ID)
	assert.Equal(t, KindSimple, w.Kind)
	assert.True(t, w.Focused)
	assert.True(t, w.IsVisible())
	assert.Equal(t, 101, w.Z, "first stacking value is baseline+1")
	assert.Equal(t, Point{X: 100 - 23, Y: 30 - 7}, w.TopLeft(), "centered without jitter")
	require.NotNil(t, w.Animation)
	assert.Equal(t, AnimSpawn, w.Animation.Kind)

	icons := h.TaskbarIcons()
	require.Len(t, icons, 1)
	assert.Equal(t, "A", icons[0].Title)
	assert.Equal(t, w.ID, icons[0].WindowID)
	assert.Equal(t, []EventType{EventSpawned}, h.eventTypes())

	h.settle()
	assert.Nil(t, w.Animation, "spawn animation cleared on transition end")
}

func TestOpenTwiceNeverDuplicates(t *testing.T) {
	h := newHarness(t)

	for range 5 {
		h.Open("A")
	}

	assert.Len(t, h.Windows(), 1)
	assert.Len(t, h.TaskbarIcons(), 1)
	assert.Len(t, h.built["A"], 1, "content built once")
}

func TestOpenABAScenario(t *testing.T) {
	h := newHarness(t)

	h.Open("A")
	a, _ := h.Window("A")
	firstID := a.ID
	h.Open("B")
	b, _ := h.Window("B")
	require.Greater(t, b.Z, a.Z)
	assert.False(t, a.Focused)

	h.Open("A")

	assert.Len(t, h.Windows(), 2)
	a2, _ := h.Window("A")
	assert.Equal(t, firstID, a2.ID, "existing window reused")
	assert.Greater(t, a2.Z, b.Z)
	assert.True(t, a2.Focused)
	assert.False(t, b.Focused)
}

func TestBringToFrontOrdering(t *testing.T) {
	h := newHarness(t)
	h.Open("A")
	h.Open("B")
	h.Open("C")

	h.BringToFront("A")
	h.BringToFront("A")

	a, _ := h.Window("A")
	for _, w := range h.Windows() {
		if w == a {
			continue
		}
		assert.Less(t, w.Z, a.Z)
		assert.False(t, w.Focused)
	}
	assert.True(t, a.Focused)
	assert.Equal(t, a, h.Focused())
	assert.Equal(t, a.Z, h.TopZ())
	assert.Equal(t, 105, h.TopZ(), "repeated calls burn values")
}

func TestUnknownTitleUsesFallback(t *testing.T) {
	h := newHarness(t)

	h.Open("Mystery")

	w, ok := h.Window("Mystery")
	require.True(t, ok)
	assert.Equal(t, KindSimple, w.Kind)
	assert.Contains(t, w.Content.View(40, 10), "Mystery")
}

func TestOpenEmptyTitleIsNoop(t *testing.T) {
	h := newHarness(t)
	h.Open("")
	assert.Empty(t, h.Windows())
}

func TestProviderWithoutContentIsNoop(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.provided.Register("Broken", ProviderFunc(func(string) (Content, SizeHint) {
		return nil, SizeHint{}
	})))

	h.Open("Broken")

	assert.Empty(t, h.Windows())
	assert.Empty(t, h.TaskbarIcons())
	assert.Equal(t, 100, h.TopZ())
}

func TestMediaWindowGetsLargerPreset(t *testing.T) {
	h := newHarness(t)
	h.Open("A")
	h.Open("Player")

	a, _ := h.Window("A")
	p, _ := h.Window("Player")
	assert.Greater(t, p.Width, a.Width)
	assert.Greater(t, p.Height, a.Height)
	assert.Equal(t, KindMedia, p.Kind)
}

func TestCloseIsAsynchronous(t *testing.T) {
	h := newHarness(t)
	h.Open("A")
	h.settle()
	content := h.built["A"][0]

	h.Close("A")

	w, ok := h.Window("A")
	require.True(t, ok, "still present until the animation ends")
	assert.True(t, w.Closing)
	assert.Len(t, h.TaskbarIcons(), 1)
	require.NotNil(t, w.Animation)
	assert.Equal(t, AnimClose, w.Animation.Kind)

	h.Tick(h.clock.Advance(testAnimation / 2))
	_, ok = h.Window("A")
	assert.True(t, ok)

	h.Tick(h.clock.Advance(testAnimation / 2))
	_, ok = h.Window("A")
	assert.False(t, ok)
	assert.Empty(t, h.TaskbarIcons())
	assert.True(t, content.closed)
	assert.Nil(t, h.Focused())

	_, err := h.Lookup("A")
	assert.ErrorIs(t, err, ErrWindowNotFound)
}

func TestCloseThenOpenCreatesFreshWindow(t *testing.T) {
	h := newHarness(t)
	h.Open("A")
	first, _ := h.Window("A")
	firstID := first.ID
	h.Close("A")
	h.settle()

	h.Open("A")

	w, ok := h.Window("A")
	require.True(t, ok)
	assert.NotEqual(t, firstID, w.ID)
	assert.False(t, w.Closing)
	require.Len(t, h.built["A"], 2)
	assert.NotSame(t, h.built["A"][0], h.built["A"][1], "fresh content per spawn")
	assert.Len(t, h.TaskbarIcons(), 1)
}

func TestSecondCloseIsNoop(t *testing.T) {
	h := newHarness(t)
	h.Open("A")
	h.settle()

	h.Close("A")
	w, _ := h.Window("A")
	anim := w.Animation
	h.clock.Advance(testAnimation / 2)
	h.Close("A")

	assert.Same(t, anim, w.Animation, "animation not restarted")
	assert.Equal(t, 1, countEvents(h.events, EventClosing))

	h.Tick(h.clock.now.Add(testAnimation / 2))
	_, ok := h.Window("A")
	assert.False(t, ok)
	assert.Equal(t, 1, countEvents(h.events, EventClosed))
}

func TestCloseUnknownIsNoop(t *testing.T) {
	h := newHarness(t)
	h.Close("A")
	assert.Empty(t, h.events)
}

func TestCloseDuringSpawnCancelsSpawnListener(t *testing.T) {
	h := newHarness(t)
	h.Open("A")

	h.Close("A")
	h.settle()

	_, ok := h.Window("A")
	assert.False(t, ok)
	assert.Zero(t, h.loop.Pending(), "no listener left behind")
}

func TestOpenWhileClosingReopensAfterRemoval(t *testing.T) {
	h := newHarness(t)
	h.Open("A")
	h.settle()
	h.Close("A")

	h.Open("A")
	w, _ := h.Window("A")
	assert.True(t, w.Closing, "old instance still on its way out")
	assert.Len(t, h.Windows(), 1)

	h.settle()

	w, ok := h.Window("A")
	require.True(t, ok)
	assert.False(t, w.Closing)
	assert.Equal(t, "w2", w.ID)
	assert.Len(t, h.TaskbarIcons(), 1)
	assert.True(t, w.Focused)
}

func TestCloseAfterQueuedReopenWins(t *testing.T) {
	h := newHarness(t)
	h.Open("A")
	h.settle()

	h.Close("A")
	h.Open("A")
	h.Close("A")
	h.settle()
	h.settle()

	_, ok := h.Window("A")
	assert.False(t, ok, "the last request was a close")
	assert.Empty(t, h.TaskbarIcons())
	assert.Len(t, h.built["A"], 1, "no second instance was built")
}

func TestOpenBeforeViewportIsPlacedLater(t *testing.T) {
	h := newHarness(t, func(o *Options) { o.Placer.Device = DeviceAuto })
	h.SetViewport(0, 0)

	h.Open("A")
	h.settle()
	a, ok := h.Window("A")
	require.True(t, ok)
	assert.Equal(t, Size{Width: 46, Height: 14}, a.Size(), "desktop preset while the viewport is unknown")

	h.SetViewport(200, 60)
	assert.Equal(t, Rect{X: 77, Y: 23, Width: 46, Height: 14}, a.Rect)

	h.SetViewport(200, 60)
	assert.Equal(t, Point{X: 77, Y: 23}, a.TopLeft(), "placed only once")
}

func TestMinimizeAndTaskbarClick(t *testing.T) {
	h := newHarness(t)
	h.Open("A")
	h.Open("B")

	h.Minimize("B")

	b, _ := h.Window("B")
	assert.False(t, b.IsVisible())
	assert.False(t, b.Focused)
	assert.Nil(t, h.Focused())
	assert.Len(t, h.TaskbarIcons(), 2, "icon stays while minimized")

	h.Open("B")
	assert.True(t, b.IsVisible(), "open reveals a hidden window")
	assert.True(t, b.Focused)

	h.Minimize("B")
	h.TaskbarClick("B")
	assert.True(t, b.IsVisible())
	assert.Equal(t, h.TopZ(), b.Z)

	h.TaskbarClick("B")
	assert.True(t, b.IsVisible(), "taskbar never hides a visible window")

	h.TaskbarClick("A")
	a, _ := h.Window("A")
	assert.True(t, a.Focused)
	assert.Greater(t, a.Z, b.Z)
}

func TestCycleFocus(t *testing.T) {
	h := newHarness(t)
	h.Open("A")
	h.Open("B")
	h.Open("C")

	h.CycleFocus(true)
	assert.Equal(t, "A", h.Focused().Title)
	h.CycleFocus(true)
	assert.Equal(t, "B", h.Focused().Title)

	h.CycleFocus(false)
	assert.Equal(t, "A", h.Focused().Title)

	h.Minimize("A")
	h.Minimize("B")
	h.CycleFocus(true)
	assert.Equal(t, "C", h.Focused().Title)
}

func TestDragScenario(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.provided.Register("Big", ProviderFunc(func(title string) (Content, SizeHint) {
		return &fakeContent{title: title}, SizeHint{Kind: KindSimple, Width: 300, Height: 200}
	})))
	h.SetViewport(800, 600)
	h.Open("Big")
	w, _ := h.Window("Big")
	w.X, w.Y = 100, 100

	h.PointerDown("Big", Point{X: 110, Y: 100}, ButtonPrimary, TargetHeader)
	require.Equal(t, DragDragging, h.DragState())
	assert.Same(t, w, h.Dragging())

	h.PointerMove(Point{X: 135, Y: 115})
	h.PointerMove(Point{X: 160, Y: 130})
	h.PointerUp()

	assert.Equal(t, Point{X: 150, Y: 130}, w.TopLeft())
	assert.Equal(t, DragIdle, h.DragState())
	assert.Nil(t, h.Dragging())
	assert.Equal(t, []EventType{EventSpawned, EventDragStart, EventFocused, EventDragEnd}, h.eventTypes())
}

func TestDragClampsToViewport(t *testing.T) {
	h := newHarness(t)
	h.Open("A")
	w, _ := h.Window("A")
	start := w.TopLeft()

	h.PointerDown("A", start, ButtonPrimary, TargetHeader)
	h.PointerMove(Point{X: 1000, Y: 1000})
	assert.Equal(t, Point{X: 200 - w.Width, Y: 60 - w.Height}, w.TopLeft())

	h.PointerMove(Point{X: -50, Y: -50})
	assert.Equal(t, Point{X: 0, Y: 0}, w.TopLeft())
	h.PointerCancel()
	assert.Equal(t, DragIdle, h.DragState())
}

func TestPointerDownOnControls(t *testing.T) {
	h := newHarness(t)
	h.Open("A")
	h.Open("B")
	a, _ := h.Window("A")
	z := a.Z

	h.PointerDown("A", a.TopLeft(), ButtonPrimary, TargetMinimize)
	assert.False(t, a.IsVisible())
	assert.Equal(t, z, a.Z, "minimize control does not focus")
	assert.Equal(t, DragIdle, h.DragState())

	h.PointerDown("B", Point{}, ButtonPrimary, TargetClose)
	b, _ := h.Window("B")
	assert.True(t, b.Closing)
	assert.Equal(t, DragIdle, h.DragState(), "no drag from the close control")

	before := b.TopLeft()
	h.PointerMove(Point{X: 5, Y: 5})
	assert.Equal(t, before, b.TopLeft())
}

func TestSecondaryPressOnControlsDoesNothing(t *testing.T) {
	h := newHarness(t)
	h.Open("A")
	h.Open("B")
	a, _ := h.Window("A")
	z := a.Z

	for _, target := range []Target{TargetClose, TargetMinimize} {
		h.PointerDown("A", a.TopLeft(), ButtonSecondary, target)
		assert.Equal(t, z, a.Z, "no focus from a control")
		assert.False(t, a.Focused)
		assert.True(t, a.IsVisible())
		assert.False(t, a.Closing)
	}
}

func TestPointerDownBodyFocusesWithoutDrag(t *testing.T) {
	h := newHarness(t)
	h.Open("A")
	h.Open("B")
	a, _ := h.Window("A")

	h.PointerDown("A", a.TopLeft(), ButtonPrimary, TargetBody)
	assert.True(t, a.Focused)
	assert.Equal(t, DragIdle, h.DragState())

	h.PointerDown("A", a.TopLeft(), ButtonSecondary, TargetHeader)
	assert.Equal(t, DragIdle, h.DragState(), "secondary button never drags")
}

func TestCloseDuringDragEndsDrag(t *testing.T) {
	h := newHarness(t)
	h.Open("A")
	a, _ := h.Window("A")

	h.PointerDown("A", a.TopLeft(), ButtonPrimary, TargetHeader)
	h.Close("A")

	assert.Equal(t, DragIdle, h.DragState())
	assert.Contains(t, h.eventTypes(), EventDragEnd)
}

func TestMeasuredReclamp(t *testing.T) {
	h := newHarness(t, func(o *Options) {
		o.Measurer = func(*Window) Size { return Size{Width: 150, Height: 50} }
	})
	h.Open("A")
	w, _ := h.Window("A")
	assert.Equal(t, Point{X: 77, Y: 23}, w.TopLeft())

	h.Tick(h.clock.Advance(0))

	assert.Equal(t, Size{Width: 150, Height: 50}, w.Size())
	assert.Equal(t, Point{X: 200 - 150 - 1, Y: 60 - 50 - 1}, w.TopLeft())
}

func TestSetViewportKeepsHeaderReachable(t *testing.T) {
	h := newHarness(t)
	h.Open("A")
	w, _ := h.Window("A")
	w.X, w.Y = 150, 50

	h.SetViewport(100, 30)

	assert.Equal(t, 100-8, w.X)
	assert.Equal(t, 29, w.Y)
}

func TestHandleKeyAndTickReachFocusedContent(t *testing.T) {
	h := newHarness(t)
	h.Open("A")
	h.Tick(h.clock.now)
	h.Tick(h.clock.Advance(testAnimation))

	assert.True(t, h.HandleKey("space"))
	c := h.built["A"][0]
	assert.Equal(t, []string{"space"}, c.keys)
	assert.Equal(t, testAnimation, c.ticked)

	h.Minimize("A")
	assert.False(t, h.HandleKey("space"))
}

func TestNoAnimationsCompleteOnNextTick(t *testing.T) {
	h := newHarness(t, func(o *Options) { o.AnimationDuration = 0 })
	h.Open("A")
	h.Close("A")
	h.Tick(h.clock.now)

	_, ok := h.Window("A")
	assert.False(t, ok)
}

// TestRandomSequencesKeepInvariants drives random operations and checks the
// registry, taskbar and focus invariants after each step.
func TestRandomSequencesKeepInvariants(t *testing.T) {
	h := newHarness(t)
	rng := rand.New(rand.NewPCG(42, 7))
	titles := []string{"A", "B", "C", "Player", "Unknown"}

	for step := range 2000 {
		title := titles[rng.IntN(len(titles))]
		switch rng.IntN(8) {
		case 0, 1:
			h.Open(title)
		case 2:
			h.Close(title)
		case 3:
			h.Minimize(title)
		case 4:
			h.TaskbarClick(title)
		case 5:
			h.PointerDown(title, Point{X: rng.IntN(200), Y: rng.IntN(60)}, ButtonPrimary, Target(rng.IntN(4)))
		case 6:
			h.PointerMove(Point{X: rng.IntN(300) - 50, Y: rng.IntN(100) - 20})
		case 7:
			h.Tick(h.clock.Advance(testAnimation / 3))
		}

		windows := h.Windows()
		icons := h.TaskbarIcons()
		require.Len(t, icons, len(windows), "step %d", step)
		seen := make(map[string]bool)
		for _, icon := range icons {
			w, ok := h.Window(icon.Title)
			require.True(t, ok, "step %d: icon without window", step)
			require.Equal(t, w.ID, icon.WindowID)
			require.False(t, seen[icon.Title], "step %d: duplicate icon", step)
			seen[icon.Title] = true
		}

		focused := 0
		for i, w := range windows {
			if w.Focused {
				focused++
				require.Equal(t, h.TopZ(), w.Z, "step %d: focused window is topmost", step)
			}
			if i > 0 {
				require.Less(t, windows[i-1].Z, w.Z, "step %d: z values unique", step)
			}
		}
		require.LessOrEqual(t, focused, 1, "step %d", step)
	}
}

func countEvents(events []Event, t EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == t {
			n++
		}
	}
	return n
}
