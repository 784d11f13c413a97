package breakout

import "github.com/go-gl/mathgl/mgl32"

// Effects are the screen-space distortions toggled by the simulation and
// read by the renderer.
type Effects struct {
	Shake   bool
	Confuse bool
	Chaos   bool

	ShakeTime float32 // seconds of shake left
}

// StartShake turns the shake on for d seconds.
func (e *Effects) StartShake(d float32) {
	e.Shake = true
	e.ShakeTime = d
}

// tick counts the shake down.
func (e *Effects) tick(dt float32) {
	if e.ShakeTime <= 0 {
		return
	}
	e.ShakeTime -= dt
	if e.ShakeTime <= 0 {
		e.Shake = false
		e.ShakeTime = 0
	}
}

// Particle is one fading speck of the ball's trail.
type Particle struct {
	Position mgl32.Vec2
	Velocity mgl32.Vec2
	Shade    float32 // grey level
	Life     float32 // seconds left, <= 0 means free
}

// Particle trail tuning.
const (
	particlesPerFrame = 2
	particleLife      = 0.5
	particleDrag      = 0.1 // fraction of the ball's velocity the trail keeps
)

// ParticlePool is a fixed set of particles recycled round-robin. It owns
// its own RNG so the trail never perturbs power-up spawns.
type ParticlePool struct {
	particles []Particle
	lastUsed  int
	rng       *SimpleRNG
}

// NewParticlePool creates a pool of n particles. n == 0 disables the trail.
func NewParticlePool(n int, seed int64) *ParticlePool {
	return &ParticlePool{
		particles: make([]Particle, n),
		rng:       NewSimpleRNG(seed ^ 0x5eed),
	}
}

// Update ages live particles and emits new ones behind the ball.
func (pp *ParticlePool) Update(dt float32, ball *Ball) {
	if len(pp.particles) == 0 {
		return
	}

	if !ball.Stuck {
		offset := mgl32.Vec2{ball.Radius / 2, ball.Radius / 2}
		for range particlesPerFrame {
			pp.respawn(&pp.particles[pp.unused()], ball, offset)
		}
	}

	for i := range pp.particles {
		p := &pp.particles[i]
		if p.Life <= 0 {
			continue
		}
		p.Life -= dt
		p.Position = p.Position.Sub(p.Velocity.Mul(dt))
	}
}

// Live returns the particles currently visible.
func (pp *ParticlePool) Live() []Particle {
	live := make([]Particle, 0, len(pp.particles))
	for _, p := range pp.particles {
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	return live
}

// Reset frees every particle.
func (pp *ParticlePool) Reset() {
	clear(pp.particles)
	pp.lastUsed = 0
}

// unused finds a free particle, searching from the last one handed out.
// With none free the oldest slot is overwritten.
func (pp *ParticlePool) unused() int {
	n := len(pp.particles)
	for i := range n {
		idx := (pp.lastUsed + i) % n
		if pp.particles[idx].Life <= 0 {
			pp.lastUsed = idx
			return idx
		}
	}
	pp.lastUsed = (pp.lastUsed + 1) % n
	return pp.lastUsed
}

func (pp *ParticlePool) respawn(p *Particle, ball *Ball, offset mgl32.Vec2) {
	jitter := (pp.rng.Float32() - 0.5) * 10
	p.Position = ball.Position.Add(offset).Add(mgl32.Vec2{jitter, jitter})
	p.Velocity = ball.Velocity.Mul(particleDrag)
	p.Shade = 0.5 + pp.rng.Float32()*0.5
	p.Life = particleLife
}
