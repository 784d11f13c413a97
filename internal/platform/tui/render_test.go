package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestPaletteRenderKeepsLayout(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawText(0, 0, "HUD")
	s.SetCell(2, 1, '█', core.RGB(255, 0, 0))
	s.SetCell(3, 1, '█', core.RGB(255, 0, 0))
	s.SetCell(1, 2, '●', core.ColorWhite)

	out := NewPalette(nil).Render(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for _, want := range []string{"HUD", "██", "●"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPaletteCachesStyles(t *testing.T) {
	p := NewPalette(nil)
	red := core.RGB(255, 0, 0)
	p.Style(red)
	p.Style(red)
	p.Style(core.ColorDefault)
	if len(p.styles) != 2 {
		t.Errorf("cached %d styles, want 2", len(p.styles))
	}
	if _, unset := p.Style(red).GetForeground().(lipgloss.NoColor); unset {
		t.Error("coloured style should set a foreground")
	}
}
