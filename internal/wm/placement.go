package wm

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Device selects between the desktop and mobile size presets.
type Device int

const (
	// DeviceAuto picks mobile when the viewport is narrower than the breakpoint.
	DeviceAuto Device = iota
	// DeviceDesktop always uses fixed cell sizes.
	DeviceDesktop
	// DeviceMobile always uses viewport-relative sizes.
	DeviceMobile
)

func (d Device) String() string {
	switch d {
	case DeviceDesktop:
		return "desktop"
	case DeviceMobile:
		return "mobile"
	default:
		return "auto"
	}
}

// ParseDevice parses "auto", "desktop" or "mobile".
func ParseDevice(s string) (Device, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DeviceAuto, nil
	case "desktop":
		return DeviceDesktop, nil
	case "mobile":
		return DeviceMobile, nil
	}
	return DeviceAuto, fmt.Errorf("unknown device %q (want auto, desktop or mobile)", s)
}

// Percent is a viewport-relative size, each axis in percent.
type Percent struct {
	Width  int
	Height int
}

// SizeTable holds the per-kind size presets for both devices.
type SizeTable struct {
	Desktop map[Kind]Size
	Mobile  map[Kind]Percent
}

// PlacerOptions configures a Placer.
type PlacerOptions struct {
	Padding          int // edge padding kept on every side
	Jitter           int // maximum random offset per axis
	Device           Device
	MobileBreakpoint int // viewport width below which DeviceAuto means mobile
	Sizes            SizeTable
	Rand             *rand.Rand
}

// Placer computes initial window sizes and positions.
type Placer struct {
	opts PlacerOptions
	rng  *rand.Rand
}

// NewPlacer returns a Placer. A nil Rand gets a randomly seeded source.
func NewPlacer(opts PlacerOptions) *Placer {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Jitter < 0 {
		opts.Jitter = 0
	}
	return &Placer{opts: opts, rng: rng}
}

// DeviceFor resolves DeviceAuto against the viewport.
func (p *Placer) DeviceFor(viewport Size) Device {
	if p.opts.Device != DeviceAuto {
		return p.opts.Device
	}
	if viewport.Width < p.opts.MobileBreakpoint {
		return DeviceMobile
	}
	return DeviceDesktop
}

// SizeFor returns the spawn size for a window of the given kind. Non-zero
// hint dimensions win over the table. An unknown (empty) viewport gets the
// desktop presets.
func (p *Placer) SizeFor(hint SizeHint, viewport Size) Size {
	var size Size
	if !viewport.Empty() && p.DeviceFor(viewport) == DeviceMobile {
		pct, ok := p.opts.Sizes.Mobile[hint.Kind]
		if !ok {
			pct = p.opts.Sizes.Mobile[KindSimple]
		}
		size = Size{
			Width:  viewport.Width * pct.Width / 100,
			Height: viewport.Height * pct.Height / 100,
		}
	} else {
		s, ok := p.opts.Sizes.Desktop[hint.Kind]
		if !ok {
			s = p.opts.Sizes.Desktop[KindSimple]
		}
		size = s
	}

	if hint.Width > 0 {
		size.Width = hint.Width
	}
	if hint.Height > 0 {
		size.Height = hint.Height
	}
	return size
}

// Place centers a window of the given size in the viewport, offsets it by
// a small random jitter and clamps it inside the padded viewport.
func (p *Placer) Place(size, viewport Size) Point {
	x := viewport.Width/2 - size.Width/2 + p.jitter()
	y := viewport.Height/2 - size.Height/2 + p.jitter()
	return p.clamp(Rect{X: x, Y: y, Width: size.Width, Height: size.Height}, viewport)
}

// Reclamp clamps an already attached window using its measured bounds.
func (p *Placer) Reclamp(r Rect, viewport Size) Point {
	return p.clamp(r, viewport)
}

// clamp applies the lower bound first, so a window larger than the
// viewport can end up at a negative position.
func (p *Placer) clamp(r Rect, viewport Size) Point {
	pad := p.opts.Padding
	x := max(r.X, pad)
	x = min(x, viewport.Width-r.Width-pad)
	y := max(r.Y, pad)
	y = min(y, viewport.Height-r.Height-pad)
	return Point{X: x, Y: y}
}

func (p *Placer) jitter() int {
	if p.opts.Jitter == 0 {
		return 0
	}
	return p.rng.IntN(2*p.opts.Jitter+1) - p.opts.Jitter
}
