package breakout

import "github.com/go-gl/mathgl/mgl32"

// Direction is the compass side of a box the ball struck.
// UP means the ball came from above (smaller y).
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "?"
	}
}

// compass holds the unit vector for each Direction, in match order.
var compass = [...]mgl32.Vec2{
	DirUp:    {0, 1},
	DirRight: {1, 0},
	DirDown:  {0, -1},
	DirLeft:  {-1, 0},
}

// Collision is the result of a ball-vs-box query.
type Collision struct {
	Collided bool
	Dir      Direction
	// Penetration is the vector from the ball centre to the closest point
	// on the box.
	Penetration mgl32.Vec2
}

// VectorDirection classifies v as the compass direction with the largest
// dot product against its normalised form. Ties go to the earlier
// direction in UP, RIGHT, DOWN, LEFT order. The zero vector has no
// direction and reports false.
func VectorDirection(v mgl32.Vec2) (Direction, bool) {
	if v.X() == 0 && v.Y() == 0 {
		return 0, false
	}
	n := v.Normalize()

	best, found := DirUp, false
	var bestDot float32
	for dir, unit := range compass {
		if dot := n.Dot(unit); dot > bestDot {
			bestDot = dot
			best = Direction(dir)
			found = true
		}
	}
	return best, found
}

// CheckAABB reports whether two boxes overlap. Touching edges count.
func CheckAABB(a, b *Entity) bool {
	collisionX := a.Position.X()+a.Size.X() >= b.Position.X() &&
		b.Position.X()+b.Size.X() >= a.Position.X()
	collisionY := a.Position.Y()+a.Size.Y() >= b.Position.Y() &&
		b.Position.Y()+b.Size.Y() >= a.Position.Y()
	return collisionX && collisionY
}

// CheckBall tests the ball's circle against box. The ball collides when the
// point on the box closest to its centre lies strictly inside the radius.
//
// When the centre is inside the box the penetration vector is zero; the
// hit is then attributed to the vertical face the ball is travelling
// towards.
func CheckBall(ball *Ball, box *Entity) Collision {
	center := ball.Position.Add(mgl32.Vec2{ball.Radius, ball.Radius})

	half := box.Size.Mul(0.5)
	boxCenter := box.Position.Add(half)

	diff := center.Sub(boxCenter)
	clamped := mgl32.Vec2{
		mgl32.Clamp(diff.X(), -half.X(), half.X()),
		mgl32.Clamp(diff.Y(), -half.Y(), half.Y()),
	}
	closest := boxCenter.Add(clamped)

	diff = closest.Sub(center)
	if diff.Len() >= ball.Radius {
		return Collision{}
	}

	dir, ok := VectorDirection(diff)
	if !ok {
		if ball.Velocity.Y() > 0 {
			dir = DirUp
		} else {
			dir = DirDown
		}
	}
	return Collision{Collided: true, Dir: dir, Penetration: diff}
}

// resolveBounce reflects the ball off the struck face and pushes it back
// out of the box along the same axis.
func resolveBounce(ball *Ball, c Collision) {
	switch c.Dir {
	case DirLeft, DirRight:
		ball.Velocity[0] = -ball.Velocity[0]
		penetration := ball.Radius - mgl32.Abs(c.Penetration.X())
		if c.Dir == DirLeft {
			ball.Position[0] += penetration
		} else {
			ball.Position[0] -= penetration
		}
	default:
		ball.Velocity[1] = -ball.Velocity[1]
		penetration := ball.Radius - mgl32.Abs(c.Penetration.Y())
		if c.Dir == DirUp {
			ball.Position[1] -= penetration
		} else {
			ball.Position[1] += penetration
		}
	}
}

// deflect bounces the ball off the paddle. The horizontal velocity follows
// the contact offset from the paddle centre, the ball always leaves upwards
// and its speed is unchanged.
func deflect(ball *Ball, paddle *Entity, baseVX, strength float32) {
	center := paddle.Position.X() + paddle.Size.X()/2
	distance := ball.Position.X() + ball.Radius - center
	percentage := distance / (paddle.Size.X() / 2)

	speed := ball.Velocity.Len()
	ball.Velocity[0] = baseVX * percentage * strength
	ball.Velocity[1] = -mgl32.Abs(ball.Velocity.Y())
	if l := ball.Velocity.Len(); l > 0 {
		ball.Velocity = ball.Velocity.Mul(speed / l)
	}
}
