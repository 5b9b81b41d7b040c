package content

import (
	"testing"
	"time"
)

func testTracks() []Track {
	return []Track{
		{Title: "one", Length: Length(10 * time.Second)},
		{Title: "two", Length: Length(20 * time.Second)},
		{Title: "three", Length: Length(5 * time.Second)},
	}
}

func TestPlayerTransport(t *testing.T) {
	p := NewPlayer(testTracks())
	if p.State() != Stopped || p.Volume() != DefaultVolume {
		t.Fatalf("unexpected fresh player: %v vol %d", p.State(), p.Volume())
	}

	p.Tick(time.Second)
	if p.Position() != 0 {
		t.Error("stopped player must not advance")
	}

	p.Toggle()
	p.Tick(4 * time.Second)
	if p.State() != Playing || p.Position() != 4*time.Second {
		t.Errorf("expected playing at 4s, got %v at %v", p.State(), p.Position())
	}

	p.Toggle()
	p.Tick(time.Second)
	if p.State() != Paused || p.Position() != 4*time.Second {
		t.Errorf("expected paused at 4s, got %v at %v", p.State(), p.Position())
	}
}

func TestPlayerRollsOverAndStops(t *testing.T) {
	p := NewPlayer(testTracks())
	p.Play()

	p.Tick(12 * time.Second)
	if p.Index() != 1 || p.Position() != 2*time.Second {
		t.Errorf("expected track 2 at 2s, got %d at %v", p.Index(), p.Position())
	}

	p.Tick(time.Minute)
	if p.State() != Stopped || p.Index() != 0 || p.Position() != 0 {
		t.Errorf("expected stop after the last track, got %v %d %v", p.State(), p.Index(), p.Position())
	}
}

func TestPlayerPrevNextSeek(t *testing.T) {
	p := NewPlayer(testTracks())
	p.Play()
	p.Next()
	p.Tick(5 * time.Second)

	p.Prev()
	if p.Index() != 1 || p.Position() != 0 {
		t.Errorf("Prev after 3s should restart, got %d at %v", p.Index(), p.Position())
	}
	p.Prev()
	if p.Index() != 0 {
		t.Errorf("Prev at the start should go back, got %d", p.Index())
	}
	p.Prev()
	if p.Index() != 0 {
		t.Error("Prev on the first track stays put")
	}

	p.Seek(time.Hour)
	if p.Position() != 10*time.Second {
		t.Errorf("seek clamps to track end, got %v", p.Position())
	}
	p.Seek(-time.Hour)
	if p.Position() != 0 {
		t.Errorf("seek clamps to zero, got %v", p.Position())
	}

	p.Next()
	p.Next()
	p.Next()
	if p.State() != Stopped || p.Index() != 0 {
		t.Error("Next past the last track stops")
	}
}

func TestPlayerVolumeClamps(t *testing.T) {
	p := NewPlayer(testTracks())
	for range 10 {
		p.VolumeUp()
	}
	if p.Volume() != 100 {
		t.Errorf("expected 100, got %d", p.Volume())
	}
	for range 20 {
		p.VolumeDown()
	}
	if p.Volume() != 0 {
		t.Errorf("expected 0, got %d", p.Volume())
	}
}

func TestPlayerWithoutTracks(t *testing.T) {
	p := NewPlayer(nil)
	p.Play()
	p.Tick(time.Second)
	p.Seek(time.Second)
	if p.State() != Stopped || p.Progress() != 0 {
		t.Error("empty player stays stopped")
	}
}
