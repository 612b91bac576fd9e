package fragmath

import (
	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// IdentityMatrix is the 4x4 identity in row-major order.
var IdentityMatrix = f32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// NormalizeCoordinate maps a pixel-space position into clip space for a
// framebuffer of the given size. It is NormalizeCoordinateTransform with
// IdentityMatrix.
//
// The top-left corner maps to (-1, 1, 0, 1), the centre to (0, 0, 0, 1) and
// the bottom-right corner to (1, -1, 0, 1). Both size components must be
// positive.
func NormalizeCoordinate(pos, size f32.Vec2) f32.Vec4 {
	return NormalizeCoordinateTransform(pos, size, IdentityMatrix)
}

// NormalizeCoordinateTransform maps pos into clip space and multiplies the
// resulting homogeneous vector, as a row vector, by m:
//
//	out[c] = sum over r of v[r] * m[4*r+c]
func NormalizeCoordinateTransform(pos, size f32.Vec2, m f32.Mat4) f32.Vec4 {
	// [0; 1]
	x := pos[0] / size[0]
	y := pos[1] / size[1]

	// [-1; 1], Y flipped: pixel rows grow downward, clip Y grows upward.
	v := f32.Vec4{x*2 - 1, y*-2 + 1, 0, 1}
	return mulRow(v, &m)
}

func mulRow(v f32.Vec4, m *f32.Mat4) f32.Vec4 {
	var out f32.Vec4
	for c := range 4 {
		out[c] = v[0]*m[c] + v[1]*m[4+c] + v[2]*m[8+c] + v[3]*m[12+c]
	}
	return out
}

// FramebufferSize returns the width and height of a texture extent as the
// float pair expected by NormalizeCoordinate.
func FramebufferSize(e gputypes.Extent3D) f32.Vec2 {
	return f32.Vec2{float32(e.Width), float32(e.Height)}
}
