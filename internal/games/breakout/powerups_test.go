package breakout

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// caught activates a power-up as if the paddle had just collected it.
func caught(g *Game, typ PowerUpType, duration float32) *PowerUp {
	p := &PowerUp{Type: typ, Duration: duration}
	g.activatePowerUp(p)
	p.Destroyed = true
	p.Activated = true
	g.powerUps = append(g.powerUps, p)
	return p
}

func TestDestroyedBrickSpawnsPowerUp(t *testing.T) {
	cfg := testConfig()
	cfg.PowerUps.PassThrough.Odds = 1 // always
	g := startedGame(t, cfg)
	brick := withBrick(g, false)
	placeBall(g, 390, 110, mgl32.Vec2{100, 50})

	g.doCollisions()

	if !brick.Destroyed {
		t.Fatal("brick should be destroyed")
	}
	if len(g.powerUps) != 1 {
		t.Fatalf("got %d power-ups, expected exactly 1", len(g.powerUps))
	}
	p := g.powerUps[0]
	if p.Type != PowerUpPassThrough {
		t.Errorf("type = %s, expected pass-through", p.Type)
	}
	if p.Duration != 10 {
		t.Errorf("duration = %v, expected 10", p.Duration)
	}
	if p.Position != brick.Position {
		t.Errorf("position = %v, expected brick position %v", p.Position, brick.Position)
	}
	if p.Size != (mgl32.Vec2{60, 20}) || p.Velocity != (mgl32.Vec2{0, 150}) {
		t.Errorf("size/velocity = %v / %v", p.Size, p.Velocity)
	}
	if p.Activated || p.Destroyed {
		t.Error("a fresh power-up is neither activated nor destroyed")
	}
}

func TestSolidBrickSpawnsNothing(t *testing.T) {
	cfg := testConfig()
	cfg.PowerUps.Speed.Odds = 1
	g := startedGame(t, cfg)
	withBrick(g, true)
	placeBall(g, 390, 110, mgl32.Vec2{100, 50})

	g.doCollisions()

	if len(g.powerUps) != 0 {
		t.Errorf("got %d power-ups from a solid brick", len(g.powerUps))
	}
}

func TestEveryTypeSpawnsWithCertainOdds(t *testing.T) {
	cfg := testConfig()
	cfg.PowerUps.Speed.Odds = 1
	cfg.PowerUps.Sticky.Odds = 1
	cfg.PowerUps.PassThrough.Odds = 1
	cfg.PowerUps.PadSize.Odds = 1
	cfg.PowerUps.Confuse.Odds = 1
	cfg.PowerUps.Chaos.Odds = 1
	g := startedGame(t, cfg)

	g.spawnPowerUps(&Entity{Position: mgl32.Vec2{10, 10}})

	if len(g.powerUps) != int(PowerUpCount) {
		t.Fatalf("got %d power-ups, expected %d", len(g.powerUps), PowerUpCount)
	}
	for i, p := range g.powerUps {
		if p.Type != PowerUpType(i) {
			t.Errorf("power-up %d is %s, expected spawn order by type", i, p.Type)
		}
		if p.Color != p.Type.Color() {
			t.Errorf("%s color = %v", p.Type, p.Color)
		}
	}
}

func TestPowerUpCaughtByPaddle(t *testing.T) {
	g := startedGame(t, testConfig())
	p := &PowerUp{
		Entity: Entity{
			Position: g.player.Position.Sub(mgl32.Vec2{0, 10}),
			Size:     mgl32.Vec2{60, 20},
			Velocity: mgl32.Vec2{0, 150},
		},
		Type:     PowerUpSticky,
		Duration: 20,
	}
	g.powerUps = append(g.powerUps, p)

	g.collectPowerUps()

	if !p.Destroyed || !p.Activated {
		t.Errorf("caught power-up: destroyed=%v activated=%v", p.Destroyed, p.Activated)
	}
	if !g.ball.Sticky || g.player.Color != StickyTint {
		t.Errorf("sticky not applied: sticky=%v color=%v", g.ball.Sticky, g.player.Color)
	}
	if !hasEvent(g.events, core.EventPowerUp) {
		t.Error("expected power-up event")
	}

	g.updatePowerUps(testDT)
	if len(g.powerUps) != 1 {
		t.Error("an activated power-up must stay in the list until it expires")
	}
}

func TestPowerUpFallsOffField(t *testing.T) {
	g := startedGame(t, testConfig())
	p := &PowerUp{
		Entity: Entity{Position: mgl32.Vec2{0, 600}, Size: mgl32.Vec2{60, 20}},
		Type:   PowerUpSpeed,
	}
	g.powerUps = append(g.powerUps, p)
	vel := g.ball.Velocity

	g.collectPowerUps()
	if !p.Destroyed || p.Activated {
		t.Errorf("missed power-up: destroyed=%v activated=%v", p.Destroyed, p.Activated)
	}
	if g.ball.Velocity != vel {
		t.Error("missed power-up must not apply its effect")
	}

	g.updatePowerUps(testDT)
	if len(g.powerUps) != 0 {
		t.Errorf("got %d power-ups, expected the missed one pruned", len(g.powerUps))
	}
}

func TestPowerUpsFall(t *testing.T) {
	g := startedGame(t, testConfig())
	p := &PowerUp{Entity: Entity{Position: mgl32.Vec2{10, 100}, Velocity: mgl32.Vec2{0, 150}}}
	g.powerUps = append(g.powerUps, p)

	g.updatePowerUps(0.5)

	if p.Position != (mgl32.Vec2{10, 175}) {
		t.Errorf("position = %v, expected (10, 175)", p.Position)
	}
}

func TestOverlappingStickyExpiry(t *testing.T) {
	g := startedGame(t, testConfig())
	caught(g, PowerUpSticky, 1)
	caught(g, PowerUpSticky, 3)

	g.updatePowerUps(1.5)
	if !g.ball.Sticky {
		t.Error("ball should stay sticky while a second sticky power-up is active")
	}
	if g.player.Color != StickyTint {
		t.Error("paddle tint should stay while sticky is active")
	}
	if len(g.powerUps) != 1 {
		t.Errorf("got %d power-ups, expected the expired one pruned", len(g.powerUps))
	}

	g.updatePowerUps(2)
	if g.ball.Sticky {
		t.Error("ball should stop being sticky once both power-ups expired")
	}
	if g.player.Color != White {
		t.Errorf("paddle color = %v, expected white", g.player.Color)
	}
	if len(g.powerUps) != 0 {
		t.Errorf("got %d power-ups, expected none", len(g.powerUps))
	}
}

func TestPassThroughExpiry(t *testing.T) {
	g := startedGame(t, testConfig())
	caught(g, PowerUpPassThrough, 10)

	if !g.ball.PassThrough || g.ball.Color != PassThroughTint {
		t.Fatalf("pass-through not applied: %v %v", g.ball.PassThrough, g.ball.Color)
	}

	g.updatePowerUps(10)
	if g.ball.PassThrough || g.ball.Color != White {
		t.Errorf("pass-through not reverted: %v %v", g.ball.PassThrough, g.ball.Color)
	}
}

func TestInstantPowerUps(t *testing.T) {
	g := startedGame(t, testConfig())
	vel := g.ball.Velocity

	caught(g, PowerUpSpeed, 0)
	if !g.ball.Velocity.ApproxEqualThreshold(vel.Mul(1.2), 1e-3) {
		t.Errorf("velocity = %v, expected %v", g.ball.Velocity, vel.Mul(1.2))
	}

	caught(g, PowerUpPadSize, 0)
	if g.player.Size.X() != 150 {
		t.Errorf("paddle width = %v, expected 150", g.player.Size.X())
	}

	// Instant effects survive expiry; only a player reset undoes them
	g.updatePowerUps(testDT)
	if g.player.Size.X() != 150 {
		t.Error("pad size increase should last until reset")
	}
	if len(g.powerUps) != 0 {
		t.Errorf("got %d power-ups, expected instant ones pruned", len(g.powerUps))
	}

	g.resetPlayer()
	if g.player.Size.X() != 100 {
		t.Errorf("paddle width after reset = %v, expected 100", g.player.Size.X())
	}
}

func TestConfuseAndChaosExclusive(t *testing.T) {
	g := startedGame(t, testConfig())

	caught(g, PowerUpChaos, 15)
	caught(g, PowerUpConfuse, 15)
	if !g.effects.Chaos || g.effects.Confuse {
		t.Errorf("effects = %+v, confuse should be suppressed by chaos", g.effects)
	}

	g.updatePowerUps(16)
	if g.effects.Chaos || g.effects.Confuse {
		t.Errorf("effects = %+v, expected both off after expiry", g.effects)
	}

	caught(g, PowerUpConfuse, 15)
	caught(g, PowerUpChaos, 15)
	if !g.effects.Confuse || g.effects.Chaos {
		t.Errorf("effects = %+v, chaos should be suppressed by confuse", g.effects)
	}
}

func TestActiveEffects(t *testing.T) {
	g := startedGame(t, testConfig())
	caught(g, PowerUpSticky, 5)
	caught(g, PowerUpSticky, 12)
	caught(g, PowerUpSpeed, 0)

	active := g.ActiveEffects()
	if len(active) != 1 || active[PowerUpSticky] != 12 {
		t.Errorf("ActiveEffects = %v, expected sticky with 12s", active)
	}
}

func TestSimpleRNG(t *testing.T) {
	a, b := NewSimpleRNG(99), NewSimpleRNG(99)
	for range 100 {
		if a.Intn(75) != b.Intn(75) {
			t.Fatal("same seed must give the same sequence")
		}
	}

	r := NewSimpleRNG(1)
	state := r.state
	if r.Chance(0) || r.Chance(-3) {
		t.Error("non-positive odds never succeed")
	}
	if r.state != state {
		t.Error("disabled odds must not consume randomness")
	}
	for range 20 {
		if !r.Chance(1) {
			t.Fatal("odds of 1 always succeed")
		}
	}
	for range 1000 {
		if f := r.Float32(); f < 0 || f >= 1 {
			t.Fatalf("Float32 = %v out of range", f)
		}
	}
}
