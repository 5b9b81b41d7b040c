package content

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/dodorz/albumdesk/internal/wm"
)

// Placeholder is shown for titles nobody registered a provider for.
type Placeholder struct {
	Title string
}

// NewPlaceholder is the fallback provider function.
func NewPlaceholder(title string) (wm.Content, wm.SizeHint) {
	return Placeholder{Title: title}, wm.SizeHint{Kind: wm.KindSimple}
}

// View centers a short notice.
func (p Placeholder) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	body := lipgloss.NewStyle().Bold(true).Render(p.Title) + "\n\nNothing here yet."
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
	return strings.Join(clip(strings.Split(placed, "\n"), width), "\n")
}
