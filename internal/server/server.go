// Package server serves albumdesk to remote clients: over SSH with wish and
// in the browser with sip. Every connection gets its own desktop.
package server

import (
	tea "charm.land/bubbletea/v2"
	"github.com/dodorz/albumdesk/internal/config"
)

// ModelFactory builds a fresh model for one client session.
type ModelFactory func() (tea.Model, error)

// programOptions are the Bubble Tea options every remote session runs with.
func programOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
	}
}
