package breakout

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// PowerUpType identifies a power-up and its effect.
type PowerUpType int

const (
	PowerUpSpeed       PowerUpType = iota // Ball velocity scaled up
	PowerUpSticky                         // Ball sticks to the paddle on contact
	PowerUpPassThrough                    // Ball ploughs through destructible bricks
	PowerUpPadSize                        // Paddle widened until the next reset
	PowerUpConfuse                        // Screen mirrored and inverted
	PowerUpChaos                          // Screen sheared and colour-cycled
	PowerUpCount                          // Sentinel for counting types
)

// String returns the name of the power-up type.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpSpeed:
		return "speed"
	case PowerUpSticky:
		return "sticky"
	case PowerUpPassThrough:
		return "pass-through"
	case PowerUpPadSize:
		return "pad-size-increase"
	case PowerUpConfuse:
		return "confuse"
	case PowerUpChaos:
		return "chaos"
	default:
		return "unknown"
	}
}

// Glyph returns the display character for a power-up type.
func (t PowerUpType) Glyph() rune {
	switch t {
	case PowerUpSpeed:
		return 'S'
	case PowerUpSticky:
		return 'T'
	case PowerUpPassThrough:
		return 'P'
	case PowerUpPadSize:
		return 'W'
	case PowerUpConfuse:
		return 'C'
	case PowerUpChaos:
		return 'X'
	default:
		return '?'
	}
}

// Color returns the tint of a falling power-up block.
func (t PowerUpType) Color() mgl32.Vec3 {
	switch t {
	case PowerUpSpeed:
		return mgl32.Vec3{0.5, 0.5, 1.0}
	case PowerUpSticky:
		return mgl32.Vec3{1.0, 0.5, 1.0}
	case PowerUpPassThrough:
		return mgl32.Vec3{0.5, 1.0, 0.5}
	case PowerUpPadSize:
		return mgl32.Vec3{1.0, 0.6, 0.4}
	case PowerUpConfuse:
		return mgl32.Vec3{1.0, 0.3, 0.3}
	case PowerUpChaos:
		return mgl32.Vec3{0.9, 0.25, 0.25}
	default:
		return White
	}
}

// Tints applied while a power-up is in effect.
var (
	StickyTint      = mgl32.Vec3{1.0, 0.5, 1.0}
	PassThroughTint = mgl32.Vec3{1.0, 0.5, 0.5}
)

// PowerUp is a falling block that grants an effect when caught by the
// paddle. Once caught it stays in the list, Activated, until its Duration
// runs out.
type PowerUp struct {
	Entity
	Type      PowerUpType
	Duration  float32 // seconds left once activated, 0 = instantaneous
	Activated bool
}

// powerUpRule is the spawn odds and duration for one type.
type powerUpRule struct {
	odds     int
	duration float32
}

// powerUpRules maps the config onto a table indexed by type.
func powerUpRules(cfg config.PowerUpsConfig) [PowerUpCount]powerUpRule {
	rule := func(c config.PowerUpConfig) powerUpRule {
		return powerUpRule{odds: c.Odds, duration: c.Duration}
	}
	return [PowerUpCount]powerUpRule{
		PowerUpSpeed:       rule(cfg.Speed),
		PowerUpSticky:      rule(cfg.Sticky),
		PowerUpPassThrough: rule(cfg.PassThrough),
		PowerUpPadSize:     rule(cfg.PadSize),
		PowerUpConfuse:     rule(cfg.Confuse),
		PowerUpChaos:       rule(cfg.Chaos),
	}
}

// spawnPowerUps rolls once per type for a destroyed brick and drops every
// power-up that comes up at the brick's position.
func (g *Game) spawnPowerUps(brick *Entity) {
	for t, rule := range g.rules {
		if !g.rng.Chance(rule.odds) {
			continue
		}
		typ := PowerUpType(t)
		g.powerUps = append(g.powerUps, &PowerUp{
			Entity: Entity{
				Position: brick.Position,
				Size:     mgl32.Vec2{g.cfg.PowerUps.Width, g.cfg.PowerUps.Height},
				Velocity: mgl32.Vec2{0, g.cfg.PowerUps.FallSpeed},
				Color:    typ.Color(),
			},
			Type:     typ,
			Duration: rule.duration,
		})
	}
}

// activatePowerUp applies the effect of a caught power-up.
func (g *Game) activatePowerUp(p *PowerUp) {
	switch p.Type {
	case PowerUpSpeed:
		g.ball.Velocity = g.ball.Velocity.Mul(g.cfg.Ball.SpeedFactor)
	case PowerUpSticky:
		g.ball.Sticky = true
		g.player.Color = StickyTint
	case PowerUpPassThrough:
		g.ball.PassThrough = true
		g.ball.Color = PassThroughTint
	case PowerUpPadSize:
		g.player.Size[0] += g.cfg.Paddle.SizeIncrease
	case PowerUpConfuse:
		if !g.effects.Chaos {
			g.effects.Confuse = true
		}
	case PowerUpChaos:
		if !g.effects.Confuse {
			g.effects.Chaos = true
		}
	}
}

// deactivatePowerUp reverts the effect of an expired power-up.
// Instantaneous types have nothing to revert.
func (g *Game) deactivatePowerUp(t PowerUpType) {
	switch t {
	case PowerUpSticky:
		g.ball.Sticky = false
		g.player.Color = White
	case PowerUpPassThrough:
		g.ball.PassThrough = false
		g.ball.Color = White
	case PowerUpConfuse:
		g.effects.Confuse = false
	case PowerUpChaos:
		g.effects.Chaos = false
	}
}

// isOtherActive reports whether any power-up of type t is still in effect.
func (g *Game) isOtherActive(t PowerUpType) bool {
	for _, p := range g.powerUps {
		if p.Activated && p.Type == t {
			return true
		}
	}
	return false
}

// collectPowerUps destroys power-ups that fell off the field and activates
// those caught by the paddle.
func (g *Game) collectPowerUps() {
	for _, p := range g.powerUps {
		if p.Destroyed {
			continue
		}
		if p.Position.Y() >= g.cfg.World.Height {
			p.Destroyed = true
		}
		if CheckAABB(&g.player, &p.Entity) {
			g.activatePowerUp(p)
			p.Destroyed = true
			p.Activated = true
			g.emit(core.EventPowerUp, int(p.Type))
		}
	}
}

// updatePowerUps moves every power-up, ages the active ones, reverts
// effects whose last power-up of a type has expired and prunes spent
// entries.
func (g *Game) updatePowerUps(dt float32) {
	for _, p := range g.powerUps {
		p.Position = p.Position.Add(p.Velocity.Mul(dt))
		if !p.Activated {
			continue
		}
		p.Duration -= dt
		if p.Duration <= 0 {
			p.Activated = false
			if !g.isOtherActive(p.Type) {
				g.deactivatePowerUp(p.Type)
			}
		}
	}

	kept := g.powerUps[:0]
	for _, p := range g.powerUps {
		if p.Destroyed && !p.Activated {
			continue
		}
		kept = append(kept, p)
	}
	clear(g.powerUps[len(kept):])
	g.powerUps = kept
}

// ActiveEffects returns the seconds left on each timed effect currently in
// force, keyed by type. Overlapping power-ups report the longest.
func (g *Game) ActiveEffects() map[PowerUpType]float32 {
	active := make(map[PowerUpType]float32)
	for _, p := range g.powerUps {
		if p.Activated && p.Duration > 0 && p.Duration > active[p.Type] {
			active[p.Type] = p.Duration
		}
	}
	return active
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG (Knuth's MMIX constants).
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// High bits: the low bits of an LCG have short periods.
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float32 returns a random float32 in [0, 1).
func (r *SimpleRNG) Float32() float32 {
	return float32(r.Next()>>40) / float32(1<<24)
}

// Chance reports a 1-in-odds success. Odds of zero or less never succeed
// and consume no randomness.
func (r *SimpleRNG) Chance(odds int) bool {
	if odds <= 0 {
		return false
	}
	return r.Intn(odds) == 0
}
