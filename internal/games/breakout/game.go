package breakout

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Mode is the session state.
type Mode int

const (
	ModeActive Mode = iota // Ball in play
	ModeMenu               // Level select, waiting for Enter
	ModeWin                // Level cleared, waiting for Enter
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeActive:
		return "active"
	case ModeMenu:
		return "menu"
	case ModeWin:
		return "win"
	default:
		return "unknown"
	}
}

// CLI overrides, applied on the next Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelsDir        string
	startLevel       int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLevelsDir replaces the built-in levels with the *.lvl files in dir.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetStartLevel selects the level shown in the menu on start (0-based).
func SetStartLevel(index int) {
	startLevel = index
}

// Game is one Breakout session. It owns every entity; nothing is shared
// between sessions.
type Game struct {
	cfg        config.BreakoutConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	rules      [PowerUpCount]powerUpRule
	configured bool // cfg and levels were supplied, skip loading on Reset

	levels     []TileMap
	levelIndex int
	level      *Level

	player    Entity
	ball      *Ball
	powerUps  []*PowerUp
	effects   Effects
	particles *ParticlePool
	rng       *SimpleRNG

	mode   Mode
	paused bool
	lives  int
	score  int
	tick   uint64

	// launch is the velocity the ball leaves the paddle with; paddle
	// deflection scales its x component.
	launch mgl32.Vec2

	events []core.Event
}

// New creates a Breakout game that loads its config and levels on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with explicit configuration and levels.
// An empty levels slice selects the built-in levels.
func NewWithConfig(cfg config.BreakoutConfig, levels []TileMap) *Game {
	if len(levels) == 0 {
		levels = BuiltinLevels()
	}
	return &Game{cfg: cfg, levels: levels, configured: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset loads configuration (unless supplied up front) and starts a fresh
// session in the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.configured {
		cfg, err := config.LoadBreakout(configPath)
		if err != nil {
			cfg = config.DefaultBreakoutConfig()
		}
		if difficultyPreset != "" {
			config.ApplyBreakoutPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg

		g.levels = BuiltinLevels()
		if levelsDir != "" {
			if levels, err := LoadLevelsDir(levelsDir); err == nil {
				g.levels = levels
			}
		}
		g.levelIndex = core.Clamp(startLevel, 0, len(g.levels)-1)
	}

	g.Init()
}

// Init builds the level, paddle and ball and puts the session in the menu.
func (g *Game) Init() {
	g.rules = powerUpRules(g.cfg.PowerUps)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = NewSimpleRNG(g.runtime.Seed)
	g.particles = NewParticlePool(g.cfg.Gameplay.Particles, g.runtime.Seed)

	g.levelIndex = core.Clamp(g.levelIndex, 0, len(g.levels)-1)
	g.resetLevel()

	g.player = Entity{
		Size:  mgl32.Vec2{g.cfg.Paddle.Width, g.cfg.Paddle.Height},
		Color: White,
	}
	g.ball = NewBall(mgl32.Vec2{}, g.cfg.Ball.Radius, mgl32.Vec2{})

	g.mode = ModeMenu
	g.paused = false
	g.score = 0
	g.tick = 0
	g.events = g.events[:0]
	g.resetPlayer()
}

// Step advances the game by one tick of 1/TickRate seconds.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	dt := g.runtime.DeltaTime()
	g.ProcessInput(in, dt)
	g.Update(dt)

	var events []core.Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// ProcessInput applies one frame of input, dt seconds long.
func (g *Game) ProcessInput(in core.InputFrame, dt float32) {
	switch g.mode {
	case ModeMenu:
		if in.Has(core.ActionConfirm) {
			g.mode = ModeActive
			g.score = 0
			return
		}
		if in.Has(core.ActionUp) {
			g.selectLevel(g.levelIndex + 1)
		}
		if in.Has(core.ActionDown) {
			g.selectLevel(g.levelIndex - 1)
		}

	case ModeWin:
		if in.Has(core.ActionConfirm) {
			g.effects.Chaos = false
			g.mode = ModeMenu
		}

	case ModeActive:
		if in.Has(core.ActionRestart) {
			g.resetLevel()
			g.resetPlayer()
			g.paused = false
			g.mode = ModeMenu
			return
		}
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			return
		}

		step := g.cfg.Paddle.Velocity * dt
		if in.Has(core.ActionLeft) {
			g.movePaddle(-step)
		}
		if in.Has(core.ActionRight) {
			g.movePaddle(step)
		}
		if in.Has(core.ActionJump) {
			g.ball.Stuck = false
		}
	}
}

// movePaddle shifts the paddle by dx, kept inside the field, carrying a
// stuck ball along.
func (g *Game) movePaddle(dx float32) {
	maxX := g.cfg.World.Width - g.player.Size.X()
	x := mgl32.Clamp(g.player.Position.X()+dx, 0, max(maxX, 0))
	moved := x - g.player.Position.X()
	g.player.Position[0] = x
	if g.ball.Stuck {
		g.ball.Position[0] += moved
	}
}

// selectLevel switches the menu selection, wrapping around.
func (g *Game) selectLevel(index int) {
	n := len(g.levels)
	g.levelIndex = ((index % n) + n) % n
	g.resetLevel()
}

// Update advances the simulation by dt seconds. Only an unpaused ACTIVE
// session moves.
func (g *Game) Update(dt float32) {
	g.events = g.events[:0]
	if g.mode != ModeActive || g.paused {
		return
	}
	g.tick++

	g.ball.Move(dt, g.cfg.World.Width)
	g.doCollisions()
	g.particles.Update(dt, g.ball)
	g.updatePowerUps(dt)
	g.effects.tick(dt)

	if g.ball.Position.Y() >= g.cfg.World.Height {
		g.lives--
		g.emit(core.EventLifeLost, g.lives)
		if g.lives <= 0 {
			g.emit(core.EventRunOver, g.score)
			g.resetLevel()
			g.mode = ModeMenu
		}
		g.resetPlayer()
	}

	if g.mode == ModeActive && g.level.IsCompleted() {
		g.emit(core.EventRunOver, g.score)
		g.resetLevel()
		g.resetPlayer()
		g.effects.Chaos = true
		g.mode = ModeWin
	}
}

// doCollisions resolves the ball against bricks and the paddle, then
// collects power-ups.
func (g *Game) doCollisions() {
	for i := range g.level.Bricks {
		box := &g.level.Bricks[i]
		if box.Destroyed {
			continue
		}
		c := CheckBall(g.ball, box)
		if !c.Collided {
			continue
		}

		if box.Solid {
			g.effects.StartShake(g.cfg.Gameplay.ShakeTime)
			g.emit(core.EventSolidHit, 0)
		} else {
			box.Destroyed = true
			g.score += g.cfg.Gameplay.BrickPoints
			g.spawnPowerUps(box)
			g.emit(core.EventBrickHit, g.score)
			if g.ball.PassThrough {
				continue
			}
		}
		resolveBounce(g.ball, c)
	}

	if !g.ball.Stuck && CheckBall(g.ball, &g.player).Collided {
		deflect(g.ball, &g.player, g.launch.X(), g.cfg.Ball.DeflectStrength)
		g.ball.Stuck = g.ball.Sticky
		g.emit(core.EventPaddleHit, 0)
	}

	g.collectPowerUps()
}

// resetLevel rebuilds the current level and restores lives.
func (g *Game) resetLevel() {
	g.level = g.levels[g.levelIndex].Build(g.cfg.World.Width, g.cfg.World.Height/2)
	g.lives = g.cfg.Gameplay.Lives
}

// resetPlayer puts paddle and ball back at the start and clears every
// power-up and distortion.
func (g *Game) resetPlayer() {
	g.player.Size = mgl32.Vec2{g.cfg.Paddle.Width, g.cfg.Paddle.Height}
	g.player.Position = mgl32.Vec2{
		(g.cfg.World.Width - g.cfg.Paddle.Width) / 2,
		g.cfg.World.Height - g.cfg.Paddle.Height,
	}
	g.player.Color = White

	speed := g.difficulty.Speed(g.score, int(g.tick)) //#nosec G115 -- tick fits in int
	g.launch = mgl32.Vec2{g.cfg.Ball.VelocityX, g.cfg.Ball.VelocityY}.Mul(speed)
	g.ball.Reset(g.ballRestPosition(), g.launch)

	g.effects.Confuse = false
	g.effects.Chaos = false
	clear(g.powerUps)
	g.powerUps = g.powerUps[:0]
	g.particles.Reset()
}

// ballRestPosition is where the ball sits on top of the paddle centre.
func (g *Game) ballRestPosition() mgl32.Vec2 {
	r := g.ball.Radius
	return g.player.Position.Add(mgl32.Vec2{g.player.Size.X()/2 - r, -2 * r})
}

func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Lives:  g.lives,
		InPlay: g.mode == ModeActive,
		Paused: g.paused,
	}
}

// Mode returns the session state.
func (g *Game) Mode() Mode {
	return g.mode
}

// Level returns the level in play.
func (g *Game) Level() *Level {
	return g.level
}

// LevelName returns the display name of the active level.
func (g *Game) LevelName() string {
	if g.level == nil {
		return ""
	}
	return g.level.Name
}

// LevelIndex returns the index of the selected level.
func (g *Game) LevelIndex() int {
	return g.levelIndex
}

// LevelCount returns the number of playable levels.
func (g *Game) LevelCount() int {
	return len(g.levels)
}

// Effects returns the current screen distortions.
func (g *Game) Effects() Effects {
	return g.effects
}

var (
	_ registry.Game      = (*Game)(nil)
	_ registry.Resumable = (*Game)(nil)
	_ registry.Leveled   = (*Game)(nil)
)

func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
