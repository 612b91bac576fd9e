package fragmath

import (
	"github.com/x448/float16"
	"golang.org/x/image/math/f32"
)

// Packed half-precision vectors. Each 32-bit word carries two binary16
// values: the even component in the low 16 bits and the odd component in
// the high 16 bits.
type (
	F16x2 uint32
	F16x4 [2]uint32
	F16x6 [3]uint32
	F16x8 [4]uint32
)

// UnpackHalf2 decodes the two binary16 values packed in word.
// The low 16 bits become lo and the high 16 bits become hi.
//
// Every bit pattern is accepted. Zeros, subnormals and infinities convert
// exactly; NaNs stay NaN with their sign and payload bits.
func UnpackHalf2(word uint32) (lo, hi float32) {
	lo = float16.Frombits(uint16(word)).Float32()
	hi = float16.Frombits(uint16(word >> 16)).Float32()
	return lo, hi
}

// Unpack returns the two components as a vector.
func (p F16x2) Unpack() f32.Vec2 {
	x, y := UnpackHalf2(uint32(p))
	return f32.Vec2{x, y}
}

// UnpackHalf4 decodes four packed binary16 values.
func UnpackHalf4(p F16x4) f32.Vec4 {
	var v f32.Vec4
	v[0], v[1] = UnpackHalf2(p[0])
	v[2], v[3] = UnpackHalf2(p[1])
	return v
}

// UnpackHalf6 decodes six packed binary16 values.
func UnpackHalf6(p F16x6) [6]float32 {
	var v [6]float32
	unpackWords(v[:], p[:])
	return v
}

// UnpackHalf8 decodes eight packed binary16 values.
func UnpackHalf8(p F16x8) [8]float32 {
	var v [8]float32
	unpackWords(v[:], p[:])
	return v
}

// unpackWords expects len(dst) == 2*len(words).
func unpackWords(dst []float32, words []uint32) {
	for i, w := range words {
		dst[2*i], dst[2*i+1] = UnpackHalf2(w)
	}
}
