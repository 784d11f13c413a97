package breakout

import "github.com/go-gl/mathgl/mgl32"

// White is the neutral entity tint.
var White = mgl32.Vec3{1, 1, 1}

// Entity is an axis-aligned object in world units. Position is the top-left
// corner and y grows downwards.
type Entity struct {
	Position  mgl32.Vec2
	Size      mgl32.Vec2
	Velocity  mgl32.Vec2
	Color     mgl32.Vec3
	Solid     bool // bricks only: indestructible
	Destroyed bool
}

// Center returns the midpoint of the entity's box.
func (e *Entity) Center() mgl32.Vec2 {
	return e.Position.Add(e.Size.Mul(0.5))
}

// Ball is the circular entity bounced around the play field. Its Size is
// always the bounding square of the circle.
type Ball struct {
	Entity
	Radius      float32
	Stuck       bool // rides on the paddle until released
	Sticky      bool // re-sticks on paddle contact
	PassThrough bool // ignores collision response from destructible bricks
}

// NewBall creates a white ball stuck to the paddle.
func NewBall(pos mgl32.Vec2, radius float32, velocity mgl32.Vec2) *Ball {
	return &Ball{
		Entity: Entity{
			Position: pos,
			Size:     mgl32.Vec2{radius * 2, radius * 2},
			Velocity: velocity,
			Color:    White,
		},
		Radius: radius,
		Stuck:  true,
	}
}

// Move integrates the ball over dt seconds and bounces it off the side
// walls and the ceiling of a field width units wide. A stuck ball does not
// move. The floor is open. Returns the new position.
func (b *Ball) Move(dt, width float32) mgl32.Vec2 {
	if b.Stuck {
		return b.Position
	}

	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	if b.Position.X() <= 0 {
		b.Velocity[0] = -b.Velocity[0]
		b.Position[0] = 0
	} else if b.Position.X()+b.Size.X() >= width {
		b.Velocity[0] = -b.Velocity[0]
		b.Position[0] = width - b.Size.X()
	}
	if b.Position.Y() <= 0 {
		b.Velocity[1] = -b.Velocity[1]
		b.Position[1] = 0
	}
	return b.Position
}

// Reset puts the ball back on the paddle with the given launch velocity and
// clears its power-up flags.
func (b *Ball) Reset(pos, velocity mgl32.Vec2) {
	b.Position = pos
	b.Velocity = velocity
	b.Color = White
	b.Stuck = true
	b.Sticky = false
	b.PassThrough = false
}
