// Command aademo renders a magnified 1-bit disc three times, once per
// anti-aliasing policy, and writes the result as a PNG:
//
//	linear | crisp | smooth
//
// The linear panel samples the texture bilinearly at the raw position and
// blurs. The crisp panel snaps to texel centres and shows hard steps. The
// smooth panel keeps the texel blocks but blends across their edges over
// one screen pixel.
package main

import (
	"context"
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/fragmath"
	"github.com/gogpu/fragmath/fragment"
	"github.com/x448/float16"
	"golang.org/x/image/math/f32"
)

func main() {
	var (
		texels  = flag.Int("texels", 16, "texture size in texels (1-32)")
		zoom    = flag.Float64("zoom", 12.5, "screen pixels per texel")
		output  = flag.String("output", "aademo.png", "output file")
		workers = flag.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *texels < 1 || *texels > 32 {
		log.Fatalf("texels must be in [1, 32], got %d", *texels)
	}
	if *zoom <= 0 {
		log.Fatalf("zoom must be positive, got %v", *zoom)
	}
	if *verbose {
		fragmath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	tex := newDiscTexture(*texels)
	ink := packColor(0.95, 0.35, 0.15, 1)

	panel := int(float64(*texels) * *zoom)
	img := image.NewNRGBA(image.Rect(0, 0, panel*3, panel))

	d := fragment.NewDispatcher(fragment.WithWorkers(*workers))
	defer d.Close()

	policies := []fragmath.AAMode{fragmath.AAModeLinear, fragmath.AAModeCrisp, fragmath.AAModeSmooth}
	for i, mode := range policies {
		x0 := i * panel
		dst := img.SubImage(image.Rect(x0, 0, x0+panel, panel)).(*image.NRGBA)
		varying := func(p f32.Vec2) f32.Vec2 {
			return f32.Vec2{(p[0] - float32(x0)) / float32(*zoom), p[1] / float32(*zoom)}
		}
		if err := d.Run(context.Background(), dst, varying, texelShader(tex, ink, mode)); err != nil {
			log.Fatalf("Failed to render %v panel: %v", mode, err)
		}
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		log.Fatalf("Failed to encode PNG: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, img.Rect.Dx(), img.Rect.Dy())
}

// texelShader picks the sample position for mode and filters the texture
// bilinearly at it.
func texelShader(tex discTexture, ink fragmath.F16x4, mode fragmath.AAMode) fragment.Shader {
	rgba := fragmath.UnpackHalf4(ink)
	return func(in fragment.Input) color.NRGBA {
		p := in.Value
		switch mode {
		case fragmath.AAModeCrisp:
			p = fragmath.AACrisp(p)
		case fragmath.AAModeSmooth:
			p = fragmath.AASmooth(p, in.Fwidth)
		}
		a := tex.bilinear(p) * rgba[3]
		return color.NRGBA{
			R: unorm8(rgba[0]),
			G: unorm8(rgba[1]),
			B: unorm8(rgba[2]),
			A: unorm8(a),
		}
	}
}

func packColor(r, g, b, a float32) fragmath.F16x4 {
	half := func(v float32) uint32 { return uint32(float16.Fromfloat32(v).Bits()) }
	return fragmath.F16x4{half(r) | half(g)<<16, half(b) | half(a)<<16}
}

func unorm8(v float32) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}
