package wm

import (
	"time"

	"github.com/dodorz/albumdesk/internal/config"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EventType identifies a lifecycle transition reported to observers.
type EventType int

const (
	// EventSpawned fires after a new window is attached and focused.
	EventSpawned EventType = iota
	// EventShown fires when a hidden window is revealed.
	EventShown
	// EventFocused fires when a window is brought to front.
	EventFocused
	// EventHidden fires when a window is minimized to the taskbar.
	EventHidden
	// EventClosing fires when a close animation starts.
	EventClosing
	// EventClosed fires after the window and its taskbar icon are removed.
	EventClosed
	// EventDragStart fires when a header drag begins.
	EventDragStart
	// EventDragEnd fires when a drag ends.
	EventDragEnd
)

var eventNames = map[EventType]string{
	EventSpawned:   "spawned",
	EventShown:     "shown",
	EventFocused:   "focused",
	EventHidden:    "hidden",
	EventClosing:   "closing",
	EventClosed:    "closed",
	EventDragStart: "drag-start",
	EventDragEnd:   "drag-end",
}

func (e EventType) String() string {
	return eventNames[e]
}

// Event describes one lifecycle transition.
type Event struct {
	Type     EventType
	Title    string
	WindowID string
}

// Options configures a Manager.
type Options struct {
	ZBaseline         int
	Placer            PlacerOptions
	AnimationDuration time.Duration
	Providers         *Providers
	// Measurer returns the real rendered size of an attached window. It is
	// consulted one frame after spawn to re-clamp the window. Nil keeps the
	// requested size.
	Measurer func(w *Window) Size
	Logger   zerolog.Logger
	Now      func() time.Time
	NewID    func() string
}

// DefaultOptions returns options built from the config defaults.
func DefaultOptions() Options {
	return Options{
		ZBaseline: config.DefaultZBaseline,
		Placer: PlacerOptions{
			Padding:          config.DefaultEdgePadding,
			Jitter:           config.DefaultPlacementJitter,
			Device:           DeviceAuto,
			MobileBreakpoint: config.DefaultMobileBreakpoint,
			Sizes:            DefaultSizeTable(),
		},
		AnimationDuration: config.GetAnimationDuration(),
		Logger:            zerolog.Nop(),
		Now:               time.Now,
		NewID:             func() string { return uuid.New().String() },
	}
}

// DefaultSizeTable returns the built-in size presets.
func DefaultSizeTable() SizeTable {
	return SizeTable{
		Desktop: map[Kind]Size{
			KindSimple: {Width: config.SimpleWindowWidth, Height: config.SimpleWindowHeight},
			KindMedia:  {Width: config.MediaWindowWidth, Height: config.MediaWindowHeight},
		},
		Mobile: map[Kind]Percent{
			KindSimple: {Width: config.MobileSimpleWidthPercent, Height: config.MobileSimpleHeightPercent},
			KindMedia:  {Width: config.MobileMediaWidthPercent, Height: config.MobileMediaHeightPercent},
		},
	}
}

// Manager is the window lifecycle controller. It owns the registry, the
// taskbar, the z-order stack and the drag state machine, and is meant to be
// driven from a single goroutine.
type Manager struct {
	opts      Options
	stack     *Stack
	placer    *Placer
	drag      DragController
	registry  *Registry
	taskbar   *Taskbar
	loop      *Loop
	providers *Providers
	viewport  Size
	log       zerolog.Logger

	transitions map[string]*Token   // windowID -> pending transition-end listener
	reopen      map[string]bool     // titles to open again once their close completes
	unplaced    map[string]SizeHint // windowID -> hint, for windows spawned before the first viewport
	lastTick    time.Time
	observers   []func(Event)
}

// NewManager returns a Manager with an empty desktop.
func NewManager(opts Options) *Manager {
	if opts.Providers == nil {
		opts.Providers = NewProviders()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = func() string { return uuid.New().String() }
	}
	return &Manager{
		opts:        opts,
		stack:       NewStack(opts.ZBaseline),
		placer:      NewPlacer(opts.Placer),
		registry:    NewRegistry(),
		taskbar:     NewTaskbar(),
		loop:        NewLoop(),
		providers:   opts.Providers,
		log:         opts.Logger,
		transitions: make(map[string]*Token),
		reopen:      make(map[string]bool),
		unplaced:    make(map[string]SizeHint),
	}
}

// OnEvent registers an observer for lifecycle events.
func (m *Manager) OnEvent(fn func(Event)) {
	m.observers = append(m.observers, fn)
}

func (m *Manager) emit(t EventType, w *Window) {
	ev := Event{Type: t, Title: w.Title, WindowID: w.ID}
	for _, fn := range m.observers {
		fn(ev)
	}
}

// SetViewport sets the desktop container size. Windows pushed out of view
// by a shrink are pulled back so their header stays reachable.
func (m *Manager) SetViewport(width, height int) {
	m.viewport = Size{Width: width, Height: height}
	if m.viewport.Empty() {
		return
	}

	for id, hint := range m.unplaced {
		delete(m.unplaced, id)
		w, ok := m.registry.ByID(id)
		if !ok {
			continue
		}
		size := m.placer.SizeFor(hint, m.viewport)
		pos := m.placer.Place(size, m.viewport)
		w.Rect = Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}
		m.log.Debug().Str("title", w.Title).Msg("placed on first viewport")
	}

	for _, w := range m.registry.All() {
		minX := config.MinVisibleWidth - w.Width
		maxX := width - config.MinVisibleWidth
		x := max(minX, min(w.X, maxX))
		y := max(0, min(w.Y, height-1))
		if x != w.X || y != w.Y {
			m.log.Debug().Str("title", w.Title).Int("x", x).Int("y", y).Msg("clamped to viewport")
			w.X, w.Y = x, y
		}
	}
}

// Viewport returns the desktop container size.
func (m *Manager) Viewport() Size {
	return m.viewport
}

// Providers returns the provider table.
func (m *Manager) Providers() *Providers {
	return m.providers
}

// Open reveals, focuses or spawns the window for title.
func (m *Manager) Open(title string) {
	if title == "" {
		return
	}

	if w, ok := m.registry.Get(title); ok {
		switch {
		case w.Closing:
			// The old instance is on its way out; spawn a fresh one after removal.
			m.reopen[title] = true
		case !w.IsVisible():
			m.show(w)
		default:
			m.bringToFront(w)
		}
		return
	}

	m.spawn(title)
}

func (m *Manager) spawn(title string) {
	provider, known := m.providers.Lookup(title)
	if !known {
		m.log.Debug().Str("title", title).Msg("no provider, using fallback")
	}

	content, hint := provider.Build(title)
	if content == nil {
		m.log.Warn().Str("title", title).Msg("provider built no content")
		return
	}

	size := m.placer.SizeFor(hint, m.viewport)
	pos := m.placer.Place(size, m.viewport)

	w := &Window{
		ID:         m.opts.NewID(),
		Title:      title,
		Kind:       hint.Kind,
		Rect:       Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height},
		Visibility: Visible,
		Content:    content,
		SpawnedAt:  m.opts.Now(),
	}
	if err := m.registry.Put(w); err != nil {
		m.log.Error().Err(err).Msg("attach window")
		return
	}

	m.animate(w, AnimSpawn, func() {
		if cur, ok := m.registry.ByID(w.ID); ok {
			cur.Animation = nil
		}
	})
	m.stack.BringToFront(w)
	m.taskbar.Add(title, w.ID)

	id := w.ID
	if m.viewport.Empty() {
		m.unplaced[id] = hint
	}
	m.loop.RequestFrame(func() { m.reclamp(id) })

	m.log.Info().Str("title", title).Str("id", id).Int("z", w.Z).Msg("window spawned")
	m.emit(EventSpawned, w)
}

// animate starts an animation on w and arranges for done to run when its
// transition ends. A previous pending transition on w is cancelled.
func (m *Manager) animate(w *Window, kind AnimationKind, done func()) {
	m.transitions[w.ID].Cancel()

	w.Animation = &Animation{
		Kind:      kind,
		StartTime: m.opts.Now(),
		Duration:  m.opts.AnimationDuration,
	}
	id := w.ID
	m.transitions[id] = m.loop.OnTransitionEnd(transitionKey(kind, id), func() {
		delete(m.transitions, id)
		done()
	})
}

func (m *Manager) reclamp(id string) {
	w, ok := m.registry.ByID(id)
	if !ok || w.Closing || m.viewport.Empty() {
		return
	}
	if m.opts.Measurer != nil {
		measured := m.opts.Measurer(w)
		if measured.Width > 0 && measured.Height > 0 {
			w.Width, w.Height = measured.Width, measured.Height
		}
	}
	pos := m.placer.Reclamp(w.Rect, m.viewport)
	w.X, w.Y = pos.X, pos.Y
}

func (m *Manager) show(w *Window) {
	w.Visibility = Visible
	m.emit(EventShown, w)
	m.bringToFront(w)
}

func (m *Manager) bringToFront(w *Window) {
	m.stack.BringToFront(w)
	m.emit(EventFocused, w)
}

// BringToFront raises the window for title and focuses it.
func (m *Manager) BringToFront(title string) {
	if w, ok := m.registry.Get(title); ok && !w.Closing {
		m.bringToFront(w)
	}
}

// Close plays the close animation for title and removes the window and its
// taskbar icon once the animation ends. A second Close while the first is
// in flight only drops a reopen queued by Open in the meantime.
func (m *Manager) Close(title string) {
	w, ok := m.registry.Get(title)
	if !ok {
		return
	}
	if w.Closing {
		// The latest request wins over an Open queued behind the first close.
		delete(m.reopen, title)
		return
	}
	w.Closing = true
	if m.drag.Owns(w.ID) {
		m.endDrag()
	}

	id := w.ID
	m.animate(w, AnimClose, func() { m.finishClose(id) })
	m.log.Info().Str("title", title).Str("id", id).Msg("window closing")
	m.emit(EventClosing, w)
}

func (m *Manager) finishClose(id string) {
	w, ok := m.registry.ByID(id)
	if !ok {
		return
	}
	m.registry.Delete(w.Title)
	m.taskbar.Remove(w.Title)
	delete(m.unplaced, id)
	m.stack.Blur(w)
	if c, ok := w.Content.(Closer); ok {
		c.Close()
	}
	w.Animation = nil

	m.log.Info().Str("title", w.Title).Str("id", id).Msg("window closed")
	m.emit(EventClosed, w)

	if m.reopen[w.Title] {
		delete(m.reopen, w.Title)
		title := w.Title
		m.loop.Post(func() { m.Open(title) })
	}
}

// Minimize hides a visible window. It stays open and keeps its taskbar icon.
func (m *Manager) Minimize(title string) {
	w, ok := m.registry.Get(title)
	if !ok || w.Closing || !w.IsVisible() {
		return
	}
	if m.drag.Owns(w.ID) {
		m.endDrag()
	}
	w.Visibility = Hidden
	m.stack.Blur(w)
	m.emit(EventHidden, w)
}

// TaskbarClick shows a hidden window and brings it to front; a visible
// window is only brought to front. It never hides anything.
func (m *Manager) TaskbarClick(title string) {
	w, ok := m.registry.Get(title)
	if !ok || w.Closing {
		return
	}
	if !w.IsVisible() {
		m.show(w)
		return
	}
	m.bringToFront(w)
}

// CycleFocus moves focus among visible windows. Forward raises the
// bottom-most window; backward raises the one right below the top.
func (m *Manager) CycleFocus(forward bool) {
	visible := m.registry.Visible()
	candidates := visible[:0]
	for _, w := range visible {
		if !w.Closing {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) < 2 {
		if len(candidates) == 1 && !candidates[0].Focused {
			m.bringToFront(candidates[0])
		}
		return
	}
	if forward {
		m.bringToFront(candidates[0])
		return
	}
	m.bringToFront(candidates[len(candidates)-2])
}

// PointerDown handles a press on a window. Close and minimize controls act
// without focusing; the header starts a drag; anywhere else focuses.
func (m *Manager) PointerDown(title string, p Point, button Button, target Target) {
	w, ok := m.registry.Get(title)
	if !ok || w.Closing || !w.IsVisible() {
		return
	}

	switch target {
	case TargetClose:
		if button == ButtonPrimary {
			m.Close(title)
		}
		return
	case TargetMinimize:
		if button == ButtonPrimary {
			m.Minimize(title)
		}
		return
	}

	if m.drag.Begin(w, p, button, target) {
		m.emit(EventDragStart, w)
	}
	m.bringToFront(w)
}

// PointerMove moves the dragged window, if any. Moves are accepted from
// anywhere on the desktop, not only over the window.
func (m *Manager) PointerMove(p Point) {
	session, active := m.drag.Session()
	if !active {
		return
	}
	w, ok := m.registry.ByID(session.WindowID)
	if !ok || w.Closing {
		m.endDrag()
		return
	}
	m.drag.Move(w, p, m.viewport)
}

// PointerUp ends any drag, wherever the pointer is.
func (m *Manager) PointerUp() {
	m.endDrag()
}

// PointerCancel ends any drag.
func (m *Manager) PointerCancel() {
	m.endDrag()
}

func (m *Manager) endDrag() {
	session, active := m.drag.Session()
	m.drag.End()
	if !active {
		return
	}
	if w, ok := m.registry.ByID(session.WindowID); ok {
		m.emit(EventDragEnd, w)
	}
}

// Dragging returns the window being dragged, or nil.
func (m *Manager) Dragging() *Window {
	session, active := m.drag.Session()
	if !active {
		return nil
	}
	w, _ := m.registry.ByID(session.WindowID)
	return w
}

// DragState returns the drag state machine's state.
func (m *Manager) DragState() DragState {
	return m.drag.State()
}

// Tick advances animations and content to now, fires transition-end
// signals for finished animations and runs one animation frame.
func (m *Manager) Tick(now time.Time) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	for _, w := range m.registry.All() {
		if t, ok := w.Content.(Ticker); ok && dt > 0 {
			t.Tick(dt)
		}
		if w.Animation != nil && w.Animation.Update(now) {
			m.loop.Signal(transitionKey(w.Animation.Kind, w.ID))
		}
	}
	m.loop.Frame()
}

// Window returns the live window for title.
func (m *Manager) Window(title string) (*Window, bool) {
	return m.registry.Get(title)
}

// Lookup is Window with an error for callers that want one.
func (m *Manager) Lookup(title string) (*Window, error) {
	w, ok := m.registry.Get(title)
	if !ok {
		return nil, ErrWindowNotFound
	}
	return w, nil
}

// Windows returns every live window ordered bottom to top.
func (m *Manager) Windows() []*Window {
	return m.registry.All()
}

// TaskbarIcons returns the taskbar icons in insertion order.
func (m *Manager) TaskbarIcons() []TaskbarIcon {
	return m.taskbar.Icons()
}

// Focused returns the focused window, or nil.
func (m *Manager) Focused() *Window {
	return m.stack.Focused()
}

// TopZ returns the last stacking value handed out.
func (m *Manager) TopZ() int {
	return m.stack.Top()
}

// HandleKey forwards a key to the focused window's content.
func (m *Manager) HandleKey(key string) bool {
	w := m.stack.Focused()
	if w == nil || w.Closing || !w.IsVisible() {
		return false
	}
	if h, ok := w.Content.(KeyHandler); ok {
		return h.HandleKey(key)
	}
	return false
}
