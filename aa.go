package fragmath

import (
	"math"

	"golang.org/x/image/math/f32"
)

// AAMode selects the anti-aliasing policy a shading stage applies to edge
// fragments. The numeric codes are shared with the WGSL helpers and the
// uniform block, so they must not be renumbered.
//
// Dispatching on the mode is left to the caller.
type AAMode uint32

const (
	// AAModeLinear is the default: the interpolated position is used as is.
	AAModeLinear AAMode = 0

	// AAModeCrisp snaps every sample to its pixel centre (see AACrisp).
	// Edges are hard and aliased.
	AAModeCrisp AAMode = 1

	// AAModeSmooth offsets samples by sub-pixel coverage (see AASmooth).
	AAModeSmooth AAMode = 2
)

// String returns the mode name.
func (m AAMode) String() string {
	switch m {
	case AAModeLinear:
		return "Linear"
	case AAModeCrisp:
		return "Crisp"
	case AAModeSmooth:
		return "Smooth"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the defined codes.
func (m AAMode) Valid() bool {
	return m <= AAModeSmooth
}

// AACrisp snaps p to the centre of the pixel containing it:
// floor(p) + 0.5 per axis. Applying it twice gives the same result.
func AACrisp(p f32.Vec2) f32.Vec2 {
	return f32.Vec2{
		floor32(p[0]) + 0.5,
		floor32(p[1]) + 0.5,
	}
}

// AASmooth returns a position inside the pixel of p that moves linearly
// with sub-pixel coverage:
//
//	floor(p) + min(frac(p) / fwidth, 1) - 0.5
//
// fwidth is the screen-space rate of change of p per pixel step, normally
// |dFdx| + |dFdy| taken from neighbouring fragments (see Fwidth). With a
// unit derivative the result is p - 0.5. A zero derivative with a zero
// fraction clamps to a full pixel of offset.
func AASmooth(p, fwidth f32.Vec2) f32.Vec2 {
	return f32.Vec2{
		smoothAxis(p[0], fwidth[0]),
		smoothAxis(p[1], fwidth[1]),
	}
}

func smoothAxis(p, fw float32) float32 {
	fl := floor32(p)
	return fl + minNum((p-fl)/fw, 1) - 0.5
}

// Fwidth returns |dFdx| + |dFdy| for the value p sampled at a fragment,
// its right-hand neighbour and the neighbour below it.
func Fwidth(p, right, below f32.Vec2) f32.Vec2 {
	return f32.Vec2{
		abs32(right[0]-p[0]) + abs32(below[0]-p[0]),
		abs32(right[1]-p[1]) + abs32(below[1]-p[1]),
	}
}

func floor32(x float32) float32 {
	return float32(math.Floor(float64(x)))
}

func abs32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

// minNum is IEEE-754 minNum: a NaN operand yields the other operand.
func minNum(a, b float32) float32 {
	if math.IsNaN(float64(a)) {
		return b
	}
	return min(a, b)
}
