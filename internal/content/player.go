package content

import "time"

// PlayerState is the transport state of a Player.
type PlayerState int

const (
	// Stopped is the state before the first Play and after the last track ends.
	Stopped PlayerState = iota
	// Playing advances the position on every Tick.
	Playing
	// Paused holds the position.
	Paused
)

func (s PlayerState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

const (
	// DefaultVolume is the volume a fresh player starts at.
	DefaultVolume = 70
	// VolumeStep is the change per VolumeUp/VolumeDown.
	VolumeStep = 10
	// restartThreshold is how far into a track Prev restarts it instead of going back.
	restartThreshold = 3 * time.Second
)

// Player simulates playback through an album's track list. Nothing is
// decoded; position advances with Tick.
type Player struct {
	tracks   []Track
	index    int
	position time.Duration
	state    PlayerState
	volume   int
}

// NewPlayer returns a stopped player at the first track.
func NewPlayer(tracks []Track) *Player {
	return &Player{tracks: tracks, volume: DefaultVolume}
}

// State returns the transport state.
func (p *Player) State() PlayerState { return p.state }

// Index returns the current track index.
func (p *Player) Index() int { return p.index }

// Position returns the position within the current track.
func (p *Player) Position() time.Duration { return p.position }

// Volume returns the volume in [0, 100].
func (p *Player) Volume() int { return p.volume }

// Current returns the current track.
func (p *Player) Current() (Track, bool) {
	if p.index < 0 || p.index >= len(p.tracks) {
		return Track{}, false
	}
	return p.tracks[p.index], true
}

// Play starts or resumes playback.
func (p *Player) Play() {
	if len(p.tracks) > 0 {
		p.state = Playing
	}
}

// Pause holds playback.
func (p *Player) Pause() {
	if p.state == Playing {
		p.state = Paused
	}
}

// Toggle switches between playing and paused (or stopped).
func (p *Player) Toggle() {
	if p.state == Playing {
		p.Pause()
		return
	}
	p.Play()
}

// Stop halts playback and rewinds to the first track.
func (p *Player) Stop() {
	p.state = Stopped
	p.index = 0
	p.position = 0
}

// Next skips to the following track. Skipping past the last track stops.
func (p *Player) Next() {
	if p.index+1 >= len(p.tracks) {
		p.Stop()
		return
	}
	p.index++
	p.position = 0
}

// Prev restarts the current track when it has been playing for a while,
// otherwise goes back one track.
func (p *Player) Prev() {
	if p.position > restartThreshold || p.index == 0 {
		p.position = 0
		return
	}
	p.index--
	p.position = 0
}

// Seek moves the position by delta, clamped to the current track.
func (p *Player) Seek(delta time.Duration) {
	t, ok := p.Current()
	if !ok {
		return
	}
	p.position = max(0, min(p.position+delta, t.Length.Duration()))
}

// VolumeUp raises the volume by one step.
func (p *Player) VolumeUp() {
	p.volume = min(100, p.volume+VolumeStep)
}

// VolumeDown lowers the volume by one step.
func (p *Player) VolumeDown() {
	p.volume = max(0, p.volume-VolumeStep)
}

// Tick advances playback by dt, rolling over into following tracks.
func (p *Player) Tick(dt time.Duration) {
	if p.state != Playing || dt <= 0 {
		return
	}
	p.position += dt
	for {
		t, ok := p.Current()
		if !ok {
			p.Stop()
			return
		}
		length := t.Length.Duration()
		if p.position < length {
			return
		}
		p.position -= length
		if p.index+1 >= len(p.tracks) {
			p.Stop()
			return
		}
		p.index++
	}
}

// Progress returns the position as a fraction of the current track.
func (p *Player) Progress() float64 {
	t, ok := p.Current()
	if !ok || t.Length <= 0 {
		return 0
	}
	return float64(p.position) / float64(t.Length.Duration())
}
