package wm

// Token cancels a scheduled callback. A cancelled callback never runs.
type Token struct {
	cancelled bool
}

// Cancel prevents the callback from running. Calling it on a nil Token or
// after the callback ran is harmless.
func (t *Token) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Cancelled reports whether Cancel was called.
func (t *Token) Cancelled() bool {
	return t != nil && t.cancelled
}

type task struct {
	token *Token
	fn    func()
}

func (t task) run() {
	if !t.token.cancelled {
		t.fn()
	}
}

// Loop is a single-threaded task queue. Nothing runs concurrently: the
// owner drives it by calling Drain, Frame and Signal from one goroutine.
type Loop struct {
	queue       []task
	frames      []task
	transitions map[string][]task
}

// NewLoop returns an empty Loop.
func NewLoop() *Loop {
	return &Loop{transitions: make(map[string][]task)}
}

// Post schedules fn for the next turn of the loop.
func (l *Loop) Post(fn func()) *Token {
	t := task{token: &Token{}, fn: fn}
	l.queue = append(l.queue, t)
	return t.token
}

// RequestFrame schedules fn for the next animation frame. Callbacks
// requested while a frame is running wait for the following frame.
func (l *Loop) RequestFrame(fn func()) *Token {
	t := task{token: &Token{}, fn: fn}
	l.frames = append(l.frames, t)
	return t.token
}

// OnTransitionEnd schedules fn for when key is signalled. If the signal
// never comes, fn never runs.
func (l *Loop) OnTransitionEnd(key string, fn func()) *Token {
	t := task{token: &Token{}, fn: fn}
	l.transitions[key] = append(l.transitions[key], t)
	return t.token
}

// Signal fires and forgets every listener registered for key, in
// registration order.
func (l *Loop) Signal(key string) {
	listeners := l.transitions[key]
	delete(l.transitions, key)
	for _, t := range listeners {
		t.run()
	}
}

// Drain runs posted tasks in FIFO order until the queue is empty,
// including tasks posted by the tasks themselves.
func (l *Loop) Drain() {
	for len(l.queue) > 0 {
		t := l.queue[0]
		l.queue = l.queue[1:]
		t.run()
	}
}

// Frame runs the frame callbacks requested before the call, then drains
// the task queue.
func (l *Loop) Frame() {
	frames := l.frames
	l.frames = nil
	for _, t := range frames {
		t.run()
	}
	l.Drain()
	l.pruneTransitions()
}

// pruneTransitions drops cancelled listeners whose signal may never come.
func (l *Loop) pruneTransitions() {
	for key, listeners := range l.transitions {
		live := listeners[:0]
		for _, t := range listeners {
			if !t.token.cancelled {
				live = append(live, t)
			}
		}
		if len(live) == 0 {
			delete(l.transitions, key)
			continue
		}
		l.transitions[key] = live
	}
}

// Pending returns the number of callbacks waiting on a turn, a frame or a
// transition signal, cancelled ones included.
func (l *Loop) Pending() int {
	n := len(l.queue) + len(l.frames)
	for _, listeners := range l.transitions {
		n += len(listeners)
	}
	return n
}
