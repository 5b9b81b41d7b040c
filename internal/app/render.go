package app

import (
	"image/color"
	"sort"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dodorz/albumdesk/internal/config"
	"github.com/dodorz/albumdesk/internal/theme"
	"github.com/dodorz/albumdesk/internal/wm"
)

// GetCanvas composes the desktop, windows and (when render is set) the
// taskbar and overlays.
func (m *Desktop) GetCanvas(render bool) *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(m.Width, m.Height)

	layers := m.renderDesktop()

	// Windows come back from the registry ordered by Z; the layer index is
	// their rank so overlays always stay above them.
	rank := 0
	for _, w := range m.WM.Windows() {
		if !w.IsVisible() {
			continue
		}
		layer := m.renderWindow(w, config.ZIndexWindowBase+rank)
		rank++
		if layer != nil {
			layers = append(layers, layer)
		}
	}

	if render {
		layers = append(layers, m.renderTaskbar())
		layers = append(layers, m.renderOverlays()...)
	}

	sort.SliceStable(layers, func(i, j int) bool {
		return layers[i].GetZ() < layers[j].GetZ()
	})
	for _, layer := range layers {
		canvas.Compose(layer)
	}
	return canvas
}

// renderWindow draws a window frame with its content. A window that is
// animating is drawn at its scaled rectangle.
func (m *Desktop) renderWindow(w *wm.Window, z int) *lipgloss.Layer {
	rect := w.Rect
	if w.Animation != nil && !w.Animation.Complete {
		rect = w.Animation.Apply(rect)
	}
	if rect.Width < 2 || rect.Height < 2 {
		return nil
	}

	var borderColor color.Color
	if w.Focused && !w.Closing {
		borderColor = theme.BorderFocused()
	} else {
		borderColor = theme.BorderUnfocused()
	}
	border := getBorder()

	title := w.Title
	if rect.Width < config.MinWindowWidth {
		title = ""
	}
	header := renderHeader(title, rect.Width, borderColor, border)

	body := ""
	if innerW, innerH := rect.Width-2, rect.Height-2; innerW > 0 && innerH > 0 {
		body = fitLines(w.Content.View(innerW, innerH), innerW, innerH)
	}
	box := lipgloss.NewStyle().
		Align(lipgloss.Left).
		AlignVertical(lipgloss.Top).
		Border(border).
		BorderTop(false).
		BorderForeground(borderColor).
		Foreground(theme.WindowFg()).
		Background(theme.WindowBg())
	frame := header + "\n" + box.Render(body)

	clipped, x, y := clipToCanvas(frame, rect.X, rect.Y+m.GetTopMargin())
	if clipped == "" {
		return nil
	}
	return lipgloss.NewLayer(clipped).X(x).Y(y).Z(z).ID(w.ID)
}

// View renders the model.
func (m *Desktop) View() tea.View {
	var view tea.View
	view.SetContent(lipgloss.Sprint(m.GetCanvas(true).Render()))
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	view.ReportFocus = true
	return view
}
