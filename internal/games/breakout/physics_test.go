package breakout

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func box(x, y, w, h float32) *Entity {
	return &Entity{Position: mgl32.Vec2{x, y}, Size: mgl32.Vec2{w, h}}
}

// ballAt creates a free ball centred on (cx, cy).
func ballAt(cx, cy, r float32, vel mgl32.Vec2) *Ball {
	b := NewBall(mgl32.Vec2{cx - r, cy - r}, r, vel)
	b.Stuck = false
	return b
}

func TestCheckAABBSymmetric(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Entity
		expected bool
	}{
		{"overlap", box(0, 0, 10, 10), box(5, 5, 10, 10), true},
		{"touching edge", box(0, 0, 10, 10), box(10, 0, 10, 10), true},
		{"touching corner", box(0, 0, 10, 10), box(10, 10, 5, 5), true},
		{"contained", box(0, 0, 100, 100), box(40, 40, 5, 5), true},
		{"apart horizontally", box(0, 0, 10, 10), box(11, 0, 10, 10), false},
		{"apart vertically", box(0, 0, 10, 10), box(0, 20, 10, 10), false},
		{"overlap x only", box(0, 0, 10, 10), box(5, 50, 10, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ab := CheckAABB(tc.a, tc.b)
			ba := CheckAABB(tc.b, tc.a)
			if ab != ba {
				t.Fatalf("CheckAABB not symmetric: a,b=%v b,a=%v", ab, ba)
			}
			if ab != tc.expected {
				t.Errorf("CheckAABB = %v, expected %v", ab, tc.expected)
			}
		})
	}
}

func TestCheckBallOutsideExpandedBounds(t *testing.T) {
	target := box(100, 100, 80, 20)
	const r = 10

	centres := []struct {
		name   string
		cx, cy float32
	}{
		{"left", 100 - r - 1, 110},
		{"right", 180 + r + 1, 110},
		{"above", 140, 100 - r - 1},
		{"below", 140, 120 + r + 1},
		{"far diagonal", 60, 60},
	}
	for _, c := range centres {
		t.Run(c.name, func(t *testing.T) {
			if got := CheckBall(ballAt(c.cx, c.cy, r, mgl32.Vec2{}), target); got.Collided {
				t.Errorf("ball at (%v, %v) should not collide, got %+v", c.cx, c.cy, got)
			}
		})
	}

	// Inside the expanded rectangle but beyond the rounded corner
	if got := CheckBall(ballAt(92, 92, r, mgl32.Vec2{}), target); got.Collided {
		t.Error("ball near the corner but further than the radius should not collide")
	}
}

func TestCheckBallStrictRadius(t *testing.T) {
	target := box(100, 100, 80, 20)

	// Closest point exactly one radius away
	if got := CheckBall(ballAt(140, 90, 10, mgl32.Vec2{}), target); got.Collided {
		t.Error("distance equal to the radius must not collide")
	}
	if got := CheckBall(ballAt(140, 90.5, 10, mgl32.Vec2{}), target); !got.Collided {
		t.Error("distance below the radius must collide")
	}
}

func TestVectorDirection(t *testing.T) {
	tests := []struct {
		v        mgl32.Vec2
		expected Direction
	}{
		{mgl32.Vec2{0, 1}, DirUp},
		{mgl32.Vec2{1, 0}, DirRight},
		{mgl32.Vec2{0, -1}, DirDown},
		{mgl32.Vec2{-1, 0}, DirLeft},
		{mgl32.Vec2{0, 7}, DirUp},
		{mgl32.Vec2{3, 1}, DirRight},
		// Exact diagonals go to the first direction in match order
		{mgl32.Vec2{1, 1}, DirUp},
		{mgl32.Vec2{1, -1}, DirRight},
		{mgl32.Vec2{-1, -1}, DirDown},
		{mgl32.Vec2{-1, 1}, DirUp},
	}

	for _, tc := range tests {
		dir, ok := VectorDirection(tc.v)
		if !ok {
			t.Errorf("VectorDirection(%v) reported no match", tc.v)
			continue
		}
		if dir != tc.expected {
			t.Errorf("VectorDirection(%v) = %s, expected %s", tc.v, dir, tc.expected)
		}
	}

	if _, ok := VectorDirection(mgl32.Vec2{}); ok {
		t.Error("zero vector should have no direction")
	}
}

func TestCheckBallDirection(t *testing.T) {
	target := box(400, 100, 80, 20)

	tests := []struct {
		name   string
		cx, cy float32
		dir    Direction
		pen    mgl32.Vec2
	}{
		{"from above", 440, 90, DirUp, mgl32.Vec2{0, 10}},
		{"from below", 440, 130, DirDown, mgl32.Vec2{0, -10}},
		{"from left", 390, 110, DirRight, mgl32.Vec2{10, 0}},
		{"from right", 490, 110, DirLeft, mgl32.Vec2{-10, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CheckBall(ballAt(tc.cx, tc.cy, 12.5, mgl32.Vec2{}), target)
			if !got.Collided {
				t.Fatal("expected collision")
			}
			if got.Dir != tc.dir {
				t.Errorf("Dir = %s, expected %s", got.Dir, tc.dir)
			}
			if got.Penetration != tc.pen {
				t.Errorf("Penetration = %v, expected %v", got.Penetration, tc.pen)
			}
		})
	}
}

func TestCheckBallCentreInsideBox(t *testing.T) {
	target := box(400, 100, 80, 20)

	down := CheckBall(ballAt(440, 110, 12.5, mgl32.Vec2{0, 200}), target)
	if !down.Collided || down.Dir != DirUp {
		t.Errorf("falling ball inside box: got %+v, expected collision from above", down)
	}

	up := CheckBall(ballAt(440, 110, 12.5, mgl32.Vec2{0, -200}), target)
	if !up.Collided || up.Dir != DirDown {
		t.Errorf("rising ball inside box: got %+v, expected collision from below", up)
	}
}

func TestBallMove(t *testing.T) {
	const width = 800

	tests := []struct {
		name    string
		pos     mgl32.Vec2
		vel     mgl32.Vec2
		wantPos mgl32.Vec2
		wantVel mgl32.Vec2
	}{
		{"free flight", mgl32.Vec2{100, 100}, mgl32.Vec2{100, 200}, mgl32.Vec2{110, 120}, mgl32.Vec2{100, 200}},
		{"left wall", mgl32.Vec2{1, 100}, mgl32.Vec2{-100, 0}, mgl32.Vec2{0, 100}, mgl32.Vec2{100, 0}},
		{"right wall", mgl32.Vec2{770, 100}, mgl32.Vec2{100, 0}, mgl32.Vec2{775, 100}, mgl32.Vec2{-100, 0}},
		{"ceiling", mgl32.Vec2{100, 5}, mgl32.Vec2{0, -100}, mgl32.Vec2{100, 0}, mgl32.Vec2{0, 100}},
		{"open floor", mgl32.Vec2{100, 590}, mgl32.Vec2{0, 100}, mgl32.Vec2{100, 600}, mgl32.Vec2{0, 100}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBall(tc.pos, 12.5, tc.vel)
			b.Stuck = false
			got := b.Move(0.1, width)

			if !got.ApproxEqualThreshold(tc.wantPos, 1e-3) {
				t.Errorf("position = %v, expected %v", got, tc.wantPos)
			}
			if b.Velocity != tc.wantVel {
				t.Errorf("velocity = %v, expected %v", b.Velocity, tc.wantVel)
			}
		})
	}

	stuck := NewBall(mgl32.Vec2{50, 50}, 12.5, mgl32.Vec2{100, -350})
	stuck.Move(1, width)
	if stuck.Position != (mgl32.Vec2{50, 50}) {
		t.Errorf("stuck ball moved to %v", stuck.Position)
	}
}

func TestBallReset(t *testing.T) {
	b := NewBall(mgl32.Vec2{}, 12.5, mgl32.Vec2{})
	b.Stuck = false
	b.Sticky = true
	b.PassThrough = true
	b.Color = PassThroughTint

	b.Reset(mgl32.Vec2{10, 20}, mgl32.Vec2{100, -350})

	if !b.Stuck || b.Sticky || b.PassThrough {
		t.Errorf("Reset flags: stuck=%v sticky=%v pass=%v", b.Stuck, b.Sticky, b.PassThrough)
	}
	if b.Color != White {
		t.Errorf("Reset color = %v, expected white", b.Color)
	}
	if b.Position != (mgl32.Vec2{10, 20}) || b.Velocity != (mgl32.Vec2{100, -350}) {
		t.Errorf("Reset position/velocity = %v / %v", b.Position, b.Velocity)
	}
}
