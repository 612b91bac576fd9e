package fragment

import (
	"github.com/gogpu/fragmath"
	"golang.org/x/image/math/f32"
)

// Quad is a 2x2 block of fragments. X and Y are the pixel coordinates of
// lane 0.
type Quad struct {
	X, Y int
}

// Lane returns the pixel coordinates of lane i (0..3).
func (q Quad) Lane(i int) (x, y int) {
	return q.X + i&1, q.Y + i>>1
}

// Center returns the pixel-centre position of lane i.
func (q Quad) Center(i int) f32.Vec2 {
	x, y := q.Lane(i)
	return f32.Vec2{float32(x) + 0.5, float32(y) + 0.5}
}

// Dfdx returns the coarse horizontal derivative of a value sampled at the
// four lanes of a quad.
func Dfdx(v [4]f32.Vec2) f32.Vec2 {
	return f32.Vec2{v[1][0] - v[0][0], v[1][1] - v[0][1]}
}

// Dfdy returns the coarse vertical derivative.
func Dfdy(v [4]f32.Vec2) f32.Vec2 {
	return f32.Vec2{v[2][0] - v[0][0], v[2][1] - v[0][1]}
}

// Fwidth returns |Dfdx| + |Dfdy|. Coarse derivatives give every lane of the
// quad the same value.
func Fwidth(v [4]f32.Vec2) f32.Vec2 {
	return fragmath.Fwidth(v[0], v[1], v[2])
}
