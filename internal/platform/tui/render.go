package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Palette turns screen cells into styled text for one output. SSH sessions
// get their own renderer so colours follow the remote terminal's profile.
// A Palette is not safe for concurrent use.
type Palette struct {
	renderer *lipgloss.Renderer
	styles   map[core.Color]lipgloss.Style
}

// NewPalette creates a palette for r, or for the default renderer if r is nil.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Palette{renderer: r, styles: make(map[core.Color]lipgloss.Style)}
}

// Style returns the foreground style for c, cached per colour.
func (p *Palette) Style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	s := p.renderer.NewStyle()
	if !c.IsDefault() {
		s = s.Foreground(lipgloss.Color(c.Hex()))
	}
	p.styles[c] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(p.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
