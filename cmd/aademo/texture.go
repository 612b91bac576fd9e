package main

import (
	"math"

	"github.com/gogpu/fragmath"
	"golang.org/x/image/math/f32"
)

// discTexture is a square 1-bit texture, one uint32 per row, bit x set when
// texel x is inside the disc.
type discTexture struct {
	size int
	rows []uint32
}

func newDiscTexture(size int) discTexture {
	t := discTexture{size: size, rows: make([]uint32, size)}
	c := float64(size) / 2
	r := c - 1
	for y := range size {
		for x := range size {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			if dx*dx+dy*dy <= r*r {
				t.rows[y] |= 1 << uint(x)
			}
		}
	}
	return t
}

// texel returns 0 or 1, clamping coordinates to the edge.
func (t discTexture) texel(x, y int) float32 {
	x = min(max(x, 0), t.size-1)
	y = min(max(y, 0), t.size-1)
	return float32(fragmath.ExtractBits(t.rows[y], uint(x), 1))
}

// bilinear filters the texture at p in texel units, texel centres at +0.5.
func (t discTexture) bilinear(p f32.Vec2) float32 {
	u := float64(p[0]) - 0.5
	v := float64(p[1]) - 0.5
	x0 := math.Floor(u)
	y0 := math.Floor(v)
	fx := float32(u - x0)
	fy := float32(v - y0)
	ix, iy := int(x0), int(y0)

	top := t.texel(ix, iy)*(1-fx) + t.texel(ix+1, iy)*fx
	bottom := t.texel(ix, iy+1)*(1-fx) + t.texel(ix+1, iy+1)*fx
	return top*(1-fy) + bottom*fy
}
