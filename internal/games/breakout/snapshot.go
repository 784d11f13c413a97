package breakout

import (
	"fmt"
	"hash/fnv"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot contains the complete simulation state for save/resume and
// determinism checks. Particles are cosmetic and not captured.
type Snapshot struct {
	Tick       uint64 `msgpack:"tick"`
	Mode       int    `msgpack:"mode"`
	Paused     bool   `msgpack:"paused"`
	Lives      int    `msgpack:"lives"`
	Score      int    `msgpack:"score"`
	LevelIndex int    `msgpack:"level"`
	LevelName  string `msgpack:"level_name"`

	// Destroyed flags, one per brick in level order
	Bricks []bool `msgpack:"bricks"`

	Player   EntityState    `msgpack:"player"`
	Ball     BallState      `msgpack:"ball"`
	Launch   mgl32.Vec2     `msgpack:"launch"`
	PowerUps []PowerUpState `msgpack:"powerups"`
	Effects  Effects        `msgpack:"effects"`

	RNGState uint64 `msgpack:"rng"`
}

// EntityState is the serialized form of a paddle or power-up box.
type EntityState struct {
	Position mgl32.Vec2 `msgpack:"pos"`
	Size     mgl32.Vec2 `msgpack:"size"`
	Velocity mgl32.Vec2 `msgpack:"vel"`
	Color    mgl32.Vec3 `msgpack:"color"`
}

// BallState is the serialized form of the ball.
type BallState struct {
	EntityState `msgpack:",inline"`
	Stuck       bool `msgpack:"stuck"`
	Sticky      bool `msgpack:"sticky"`
	PassThrough bool `msgpack:"pass"`
}

// PowerUpState is the serialized form of a power-up.
type PowerUpState struct {
	EntityState `msgpack:",inline"`
	Type        int     `msgpack:"type"`
	Duration    float32 `msgpack:"duration"`
	Activated   bool    `msgpack:"activated"`
	Destroyed   bool    `msgpack:"destroyed"`
}

func entityState(e *Entity) EntityState {
	return EntityState{Position: e.Position, Size: e.Size, Velocity: e.Velocity, Color: e.Color}
}

func (s EntityState) apply(e *Entity) {
	e.Position = s.Position
	e.Size = s.Size
	e.Velocity = s.Velocity
	e.Color = s.Color
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]bool, len(g.level.Bricks))
	for i := range g.level.Bricks {
		bricks[i] = g.level.Bricks[i].Destroyed
	}

	powerUps := make([]PowerUpState, len(g.powerUps))
	for i, p := range g.powerUps {
		powerUps[i] = PowerUpState{
			EntityState: entityState(&p.Entity),
			Type:        int(p.Type),
			Duration:    p.Duration,
			Activated:   p.Activated,
			Destroyed:   p.Destroyed,
		}
	}

	return Snapshot{
		Tick:       g.tick,
		Mode:       int(g.mode),
		Paused:     g.paused,
		Lives:      g.lives,
		Score:      g.score,
		LevelIndex: g.levelIndex,
		LevelName:  g.level.Name,
		Bricks:     bricks,
		Player:     entityState(&g.player),
		Ball: BallState{
			EntityState: entityState(&g.ball.Entity),
			Stuck:       g.ball.Stuck,
			Sticky:      g.ball.Sticky,
			PassThrough: g.ball.PassThrough,
		},
		Launch:   g.launch,
		PowerUps: powerUps,
		Effects:  g.effects,
		RNGState: g.rng.state,
	}
}

// ApplySnapshot restores game state from a snapshot. The snapshot must
// come from the same level set.
func (g *Game) ApplySnapshot(snap Snapshot) error {
	if snap.LevelIndex < 0 || snap.LevelIndex >= len(g.levels) {
		return fmt.Errorf("breakout: snapshot level %d out of range", snap.LevelIndex)
	}
	level := g.levels[snap.LevelIndex].Build(g.cfg.World.Width, g.cfg.World.Height/2)
	if len(level.Bricks) != len(snap.Bricks) || level.Name != snap.LevelName {
		return fmt.Errorf("breakout: snapshot level %q does not match %q", snap.LevelName, level.Name)
	}
	for i, destroyed := range snap.Bricks {
		level.Bricks[i].Destroyed = destroyed
	}

	g.levelIndex = snap.LevelIndex
	g.level = level
	g.tick = snap.Tick
	g.mode = Mode(snap.Mode)
	g.paused = snap.Paused
	g.lives = snap.Lives
	g.score = snap.Score

	snap.Player.apply(&g.player)
	snap.Ball.apply(&g.ball.Entity)
	g.ball.Stuck = snap.Ball.Stuck
	g.ball.Sticky = snap.Ball.Sticky
	g.ball.PassThrough = snap.Ball.PassThrough
	g.launch = snap.Launch

	g.powerUps = make([]*PowerUp, len(snap.PowerUps))
	for i, ps := range snap.PowerUps {
		p := &PowerUp{
			Type:      PowerUpType(ps.Type),
			Duration:  ps.Duration,
			Activated: ps.Activated,
		}
		ps.apply(&p.Entity)
		p.Destroyed = ps.Destroyed
		g.powerUps[i] = p
	}

	g.effects = snap.Effects
	g.rng.state = snap.RNGState
	g.particles.Reset()
	return nil
}

// EncodeSnapshot serializes a snapshot with msgpack.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return nil, fmt.Errorf("breakout: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot produced by EncodeSnapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("breakout: decode snapshot: %w", err)
	}
	return snap, nil
}

// Hash returns an FNV-1a hash of the encoded snapshot for determinism
// testing.
func (snap *Snapshot) Hash() uint64 {
	data, err := EncodeSnapshot(*snap)
	if err != nil {
		return 0
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return h.Sum64()
}

// SaveSession encodes the current state for persistence.
func (g *Game) SaveSession() ([]byte, error) {
	return EncodeSnapshot(g.Snapshot())
}

// RestoreSession replaces the current state with an encoded session.
// Reset must have been called so the level set is loaded.
func (g *Game) RestoreSession(data []byte) error {
	snap, err := DecodeSnapshot(data)
	if err != nil {
		return err
	}
	return g.ApplySnapshot(snap)
}
