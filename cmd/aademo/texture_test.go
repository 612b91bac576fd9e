package main

import (
	"testing"

	"github.com/gogpu/fragmath"
	"golang.org/x/image/math/f32"
)

func TestDiscTexture(t *testing.T) {
	tex := newDiscTexture(16)
	if tex.texel(8, 8) != 1 {
		t.Error("centre texel should be inside the disc")
	}
	if tex.texel(0, 0) != 0 {
		t.Error("corner texel should be outside the disc")
	}
	// Clamped lookups.
	if tex.texel(-5, 8) != tex.texel(0, 8) || tex.texel(99, 8) != tex.texel(15, 8) {
		t.Error("out-of-range lookups should clamp to the edge")
	}
}

func TestBilinearAtCentres(t *testing.T) {
	tex := newDiscTexture(8)
	for y := range 8 {
		for x := range 8 {
			p := fragmath.AACrisp(f32.Vec2{float32(x) + 0.2, float32(y) + 0.9})
			if got, want := tex.bilinear(p), tex.texel(x, y); got != want {
				t.Fatalf("bilinear(crisp texel %d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPackColor(t *testing.T) {
	got := fragmath.UnpackHalf4(packColor(0.5, 0.25, 1, 0))
	if got != (f32.Vec4{0.5, 0.25, 1, 0}) {
		t.Errorf("UnpackHalf4(packColor()) = %v", got)
	}
	if unorm8(2) != 255 || unorm8(-1) != 0 || unorm8(0.5) != 128 {
		t.Error("unorm8 should clamp and round")
	}
}
