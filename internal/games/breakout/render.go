package breakout

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	BrickChar    = '█'
	BrickEdge    = '▌'
	SolidChar    = '▓'
	PaddleChar   = '▀'
	BallChar     = '●'
	ParticleChar = '·'
	PowerUpFill  = '▒'
)

// Minimum screen size the play field can be drawn in.
const (
	minScreenW = 30
	minScreenH = 12
)

// chaosShift is how far, in cells, the chaos wave pushes a row sideways.
const chaosShift = 2

// minConfusedChannel is the brightest channel an inverted colour needs to
// stay visible.
const minConfusedChannel = 0x60

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	v := newView(g, dst)
	for i := range g.level.Bricks {
		b := &g.level.Bricks[i]
		if b.Destroyed {
			continue
		}
		if b.Solid {
			v.fill(b, SolidChar, SolidChar)
		} else {
			v.fill(b, BrickChar, BrickEdge)
		}
	}
	for _, p := range g.powerUps {
		if p.Destroyed {
			continue
		}
		v.fill(&p.Entity, PowerUpFill, PowerUpFill)
		c := p.Center()
		v.plot(v.cellX(c.X()), v.cellY(c.Y()), p.Type.Glyph(), p.Color)
	}
	v.fill(&g.player, PaddleChar, PaddleChar)
	for _, p := range g.particles.Live() {
		shade := p.Shade * p.Life / particleLife
		v.plot(v.cellX(p.Position.X()), v.cellY(p.Position.Y()), ParticleChar, mgl32.Vec3{shade, shade, shade})
	}
	c := g.ball.Center()
	v.plot(v.cellX(c.X()), v.cellY(c.Y()), BallChar, g.ball.Color)

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// view maps world units onto the screen below the HUD row and applies
// the active distortions.
type view struct {
	dst    *core.Screen
	g      *Game
	top    int
	cols   int
	rows   int
	scaleX float32
	scaleY float32
}

func newView(g *Game, dst *core.Screen) *view {
	v := &view{
		dst:  dst,
		g:    g,
		top:  1,
		cols: dst.Width(),
		rows: dst.Height() - 1,
	}
	v.scaleX = float32(v.cols) / g.cfg.World.Width
	v.scaleY = float32(v.rows) / g.cfg.World.Height
	return v
}

func (v *view) cellX(x float32) int {
	return int(math.Floor(float64(x * v.scaleX)))
}

func (v *view) cellY(y float32) int {
	return v.top + int(math.Floor(float64(y*v.scaleY)))
}

// fill draws an entity's box. Boxes at least two cells wide end with edge
// so neighbouring bricks stay distinguishable.
func (v *view) fill(e *Entity, body, edge rune) {
	x0, y0 := v.cellX(e.Position.X()), v.cellY(e.Position.Y())
	x1, y1 := v.cellX(e.Position.X()+e.Size.X()), v.cellY(e.Position.Y()+e.Size.Y())
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r := body
			if x == x1-1 && x1-x0 > 1 {
				r = edge
			}
			v.plot(x, y, r, e.Color)
		}
	}
}

// plot draws one cell of the play field through the active effects.
func (v *view) plot(x, y int, r rune, c mgl32.Vec3) {
	fx := v.g.effects
	color := core.RGBf(c[0], c[1], c[2])

	if fx.Chaos {
		t := float64(v.g.tick) * float64(v.g.runtime.DeltaTime())
		x += int(math.Round(math.Sin(float64(y)*0.8+t*6) * chaosShift))
		color = cycle(color, int(v.g.tick/15%3))
	}
	if fx.Confuse {
		x = v.cols - 1 - x
		y = v.top + (v.rows - 1 - (y - v.top))
		color = confused(color)
	}
	if fx.Shake && v.g.tick%2 == 1 {
		x++
	}

	if y < v.top || y >= v.top+v.rows {
		return
	}
	v.dst.SetCell(x, y, r, color)
}

// confused inverts a tint. Colours whose complement is too dark to read on a
// dark terminal (white, the pale solid bricks) keep their own value.
func confused(c core.Color) core.Color {
	inv := c.Invert()
	if r, g, b := inv.Channels(); max(r, g, b) < minConfusedChannel {
		return c
	}
	return inv
}

// cycle rotates the colour channels by n places.
func cycle(c core.Color, n int) core.Color {
	r, g, b := c.Channels()
	for range n {
		r, g, b = g, b, r
	}
	return core.RGB(r, g, b)
}

// renderHUD draws lives, score, level and running effects on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf("Lives: %d  Score: %d", g.lives, g.score)
	dst.DrawTextColor(1, 0, left, core.ColorWhite)

	if fx := g.effectsString(); fx != "" {
		dst.DrawTextColor(len(left)+3, 0, fx, core.ColorYellow)
	}

	right := fmt.Sprintf("Level %d/%d %s", g.levelIndex+1, g.LevelCount(), g.level.Name)
	dst.DrawTextColor(dst.Width()-len([]rune(right))-1, 0, right, core.ColorGray)
}

// effectsString lists running timed effects as "glyph:seconds".
func (g *Game) effectsString() string {
	active := g.ActiveEffects()
	if len(active) == 0 {
		return ""
	}
	types := make([]PowerUpType, 0, len(active))
	for t := range active {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, fmt.Sprintf("%c:%d", t.Glyph(), int(math.Ceil(float64(active[t])))))
	}
	return strings.Join(parts, " ")
}

// renderOverlay draws the menu, win and pause screens over the field.
func (g *Game) renderOverlay(dst *core.Screen) {
	mid := dst.Height() / 2
	switch g.mode {
	case ModeMenu:
		dst.DrawTextCentered(mid-2, "B R E A K O U T")
		dst.DrawTextCentered(mid, fmt.Sprintf("Level %d/%d: %s", g.levelIndex+1, g.LevelCount(), g.level.Name))
		dst.DrawTextCentered(mid+2, "Press ENTER to start")
		dst.DrawTextCentered(mid+3, "Press W or S to select level")
	case ModeWin:
		dst.DrawTextCentered(mid-1, "You WON!!!")
		dst.DrawTextCentered(mid+1, fmt.Sprintf("Score: %d", g.score))
		dst.DrawTextCentered(mid+2, "Press ENTER to retry or Q to quit")
	case ModeActive:
		if g.paused {
			drawCenteredBox(dst, "PAUSED", "Press P to resume")
		} else if g.ball.Stuck {
			dst.DrawTextCentered(dst.Height()*3/4, "Press SPACE to launch")
		}
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
