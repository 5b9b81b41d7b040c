package wm

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

type fakeContent struct {
	title  string
	closed bool
	keys   []string
	ticked time.Duration
}

func (f *fakeContent) View(_, _ int) string { return f.title }

func (f *fakeContent) HandleKey(key string) bool {
	f.keys = append(f.keys, key)
	return true
}

func (f *fakeContent) Tick(dt time.Duration) { f.ticked += dt }

func (f *fakeContent) Close() { f.closed = true }

const testAnimation = 100 * time.Millisecond

type harness struct {
	*Manager
	clock    *fakeClock
	built    map[string][]*fakeContent
	events   []Event
	provided *Providers
}

// newHarness returns a manager on a 200x60 desktop with no jitter, a fake
// clock and sequential window IDs. Titles "A", "B" and "C" are simple
// windows; "Player" is a media window.
func newHarness(t *testing.T, mutate ...func(*Options)) *harness {
	t.Helper()

	h := &harness{clock: newFakeClock(), built: make(map[string][]*fakeContent)}
	h.provided = NewProviders()
	for _, title := range []string{"A", "B", "C", "Player"} {
		kind := KindSimple
		if title == "Player" {
			kind = KindMedia
		}
		err := h.provided.Register(title, ProviderFunc(func(title string) (Content, SizeHint) {
			c := &fakeContent{title: title}
			h.built[title] = append(h.built[title], c)
			return c, SizeHint{Kind: kind}
		}))
		if err != nil {
			t.Fatal(err)
		}
	}

	seq := 0
	opts := DefaultOptions()
	opts.Providers = h.provided
	opts.AnimationDuration = testAnimation
	opts.Placer.Jitter = 0
	opts.Placer.Device = DeviceDesktop
	opts.Placer.Rand = rand.New(rand.NewPCG(1, 2))
	opts.Now = h.clock.Now
	opts.NewID = func() string {
		seq++
		return fmt.Sprintf("w%d", seq)
	}
	for _, fn := range mutate {
		fn(&opts)
	}

	h.Manager = NewManager(opts)
	h.SetViewport(200, 60)
	h.OnEvent(func(ev Event) { h.events = append(h.events, ev) })
	return h
}

// settle advances past every running animation and runs one frame.
func (h *harness) settle() {
	h.Tick(h.clock.Advance(testAnimation))
}

func (h *harness) eventTypes() []EventType {
	types := make([]EventType, len(h.events))
	for i, ev := range h.events {
		types[i] = ev.Type
	}
	return types
}
