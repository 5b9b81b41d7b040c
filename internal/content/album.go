package content

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/dodorz/albumdesk/internal/config"
	"github.com/dodorz/albumdesk/internal/theme"
	"github.com/dodorz/albumdesk/internal/wm"
)

const seekStep = 5 * time.Second

// AlbumWindow shows an album's notes and tracklist with a player.
type AlbumWindow struct {
	album  Album
	player *Player
	closed bool
}

// NewAlbumWindow returns an album window with a fresh, stopped player.
func NewAlbumWindow(a Album) *AlbumWindow {
	return &AlbumWindow{album: a, player: NewPlayer(a.Tracks)}
}

// AlbumProvider builds a new AlbumWindow for every spawn, so reopening an
// album always starts from the first track.
func AlbumProvider(a Album) wm.Provider {
	return wm.ProviderFunc(func(string) (wm.Content, wm.SizeHint) {
		return NewAlbumWindow(a), wm.SizeHint{Kind: wm.KindMedia}
	})
}

// Player exposes the window's player.
func (w *AlbumWindow) Player() *Player { return w.player }

// Closed reports whether the window was removed from the desktop.
func (w *AlbumWindow) Closed() bool { return w.closed }

// Close stops playback when the window goes away.
func (w *AlbumWindow) Close() {
	w.player.Stop()
	w.closed = true
}

// Tick advances playback.
func (w *AlbumWindow) Tick(dt time.Duration) {
	w.player.Tick(dt)
}

// HandleKey maps player keys.
func (w *AlbumWindow) HandleKey(key string) bool {
	switch key {
	case "space", "enter":
		w.player.Toggle()
	case "n", "]":
		w.player.Next()
	case "p", "[":
		w.player.Prev()
	case "s":
		w.player.Stop()
	case "+", "=":
		w.player.VolumeUp()
	case "-", "_":
		w.player.VolumeDown()
	case "right", "l":
		w.player.Seek(seekStep)
	case "left", "h":
		w.player.Seek(-seekStep)
	default:
		return false
	}
	return true
}

// View renders the album notes, tracklist and transport.
func (w *AlbumWindow) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	dim := lipgloss.NewStyle().Foreground(theme.TaskbarFg())
	accent := lipgloss.NewStyle().Foreground(theme.PlayerAccent()).Bold(true)

	header := []string{
		lipgloss.NewStyle().Bold(true).Render(w.album.Artist) +
			dim.Render(fmt.Sprintf(" %s %d %s %s", dot(), w.album.Year, dot(), formatClock(w.album.Runtime()))),
	}
	if blurb := strings.TrimSpace(w.album.Blurb); blurb != "" {
		header = append(header, wrap(blurb, width)...)
	}
	header = append(header, "")

	footer := []string{w.progressLine(width, accent, dim), w.controlsLine(dim)}

	avail := height - len(footer)
	if avail < 1 {
		return strings.Join(clip(footer, width), "\n")
	}
	// Keep at least a couple of tracks visible by shortening the notes.
	if tracksWanted := min(len(w.album.Tracks), 2); len(header) > avail-tracksWanted {
		header = header[:max(0, avail-tracksWanted)]
	}

	lines := append(header, w.trackLines(width, avail-len(header), accent)...)
	for len(lines) < avail {
		lines = append(lines, "")
	}
	lines = append(lines, footer...)
	return strings.Join(clip(lines, width), "\n")
}

// trackLines renders up to rows tracks, scrolled so the current one shows.
func (w *AlbumWindow) trackLines(width, rows int, accent lipgloss.Style) []string {
	if rows <= 0 {
		return nil
	}
	tracks := w.album.Tracks
	start := 0
	if cur := w.player.Index(); cur >= rows {
		start = cur - rows + 1
	}

	var lines []string
	for i := start; i < len(tracks) && len(lines) < rows; i++ {
		t := tracks[i]
		marker := "  "
		if i == w.player.Index() && w.player.State() != Stopped {
			marker = stateGlyph(w.player.State()) + " "
		}
		length := formatClock(t.Length.Duration())
		name := fmt.Sprintf("%s%d. %s", marker, i+1, t.Title)
		gap := max(1, width-ansi.StringWidth(name)-len(length))
		line := name + strings.Repeat(" ", gap) + length
		if i == w.player.Index() {
			line = accent.Render(line)
		}
		lines = append(lines, line)
	}
	return lines
}

func (w *AlbumWindow) progressLine(width int, accent, dim lipgloss.Style) string {
	t, _ := w.player.Current()
	left := stateGlyph(w.player.State()) + " " + formatClock(w.player.Position()) + " "
	right := " " + formatClock(t.Length.Duration())

	barWidth := max(0, width-ansi.StringWidth(left)-ansi.StringWidth(right))
	filled := min(barWidth, int(w.player.Progress()*float64(barWidth)))
	full, empty := barGlyphs()
	bar := accent.Render(strings.Repeat(full, filled)) + dim.Render(strings.Repeat(empty, barWidth-filled))
	return left + bar + right
}

func (w *AlbumWindow) controlsLine(dim lipgloss.Style) string {
	return dim.Render(fmt.Sprintf("space play  n/p skip  +/- vol %d%%", w.player.Volume()))
}

func stateGlyph(s PlayerState) string {
	switch {
	case config.UseASCIIOnly && s == Playing:
		return ">"
	case config.UseASCIIOnly && s == Paused:
		return "="
	case config.UseASCIIOnly:
		return "#"
	case s == Playing:
		return "▶"
	case s == Paused:
		return "⏸"
	default:
		return "■"
	}
}

func barGlyphs() (full, empty string) {
	if config.UseASCIIOnly {
		return "=", "-"
	}
	return "━", "─"
}

func dot() string {
	if config.UseASCIIOnly {
		return "-"
	}
	return "·"
}

// wrap word-wraps s to width.
func wrap(s string, width int) []string {
	wrapped := lipgloss.NewStyle().Width(width).Render(s)
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

// clip truncates every line to width cells.
func clip(lines []string, width int) []string {
	for i, l := range lines {
		if ansi.StringWidth(l) > width {
			lines[i] = ansi.Truncate(l, width, "…")
		}
	}
	return lines
}
