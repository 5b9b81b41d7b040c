package content

import (
	"strings"

	"github.com/dodorz/albumdesk/internal/wm"
)

// TextWindow shows a scrollable page of text.
type TextWindow struct {
	page   Page
	offset int
	rows   int // height of the last render, for paging
	total  int // wrapped line count of the last render
}

// NewTextWindow returns a text window scrolled to the top.
func NewTextWindow(p Page) *TextWindow {
	return &TextWindow{page: p}
}

// PageProvider builds a TextWindow for p. A page size overrides the preset.
func PageProvider(p Page) wm.Provider {
	return wm.ProviderFunc(func(string) (wm.Content, wm.SizeHint) {
		return NewTextWindow(p), wm.SizeHint{Kind: wm.KindSimple, Width: p.Width, Height: p.Height}
	})
}

// Offset returns the first visible line.
func (t *TextWindow) Offset() int { return t.offset }

// View renders the visible slice of the wrapped body.
func (t *TextWindow) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	var lines []string
	for _, para := range strings.Split(strings.TrimRight(t.page.Body, "\n"), "\n") {
		if strings.TrimSpace(para) == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrap(para, width)...)
	}

	t.rows, t.total = height, len(lines)
	t.offset = t.clampOffset(t.offset)
	end := min(len(lines), t.offset+height)
	return strings.Join(clip(lines[t.offset:end], width), "\n")
}

// HandleKey scrolls the page.
func (t *TextWindow) HandleKey(key string) bool {
	page := max(1, t.rows-1)
	switch key {
	case "down", "j":
		t.offset++
	case "up", "k":
		t.offset--
	case "pgdown", "space":
		t.offset += page
	case "pgup":
		t.offset -= page
	case "home", "g":
		t.offset = 0
	case "end", "G":
		t.offset = t.total
	default:
		return false
	}
	t.offset = t.clampOffset(t.offset)
	return true
}

func (t *TextWindow) clampOffset(o int) int {
	return max(0, min(o, t.total-t.rows))
}
