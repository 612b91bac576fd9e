package fragment

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/fragmath"
	"github.com/gogpu/fragmath/internal/parallel"
	"golang.org/x/image/math/f32"
)

// Input is what a Shader sees for one fragment.
type Input struct {
	Quad Quad
	Lane int

	// Pos is the pixel-centre position of the fragment.
	Pos f32.Vec2

	// Value is the varying evaluated at Pos.
	Value f32.Vec2

	// Fwidth is |dFdx| + |dFdy| of Value across the quad.
	Fwidth f32.Vec2
}

// Shader computes the colour of one fragment.
type Shader func(in Input) color.NRGBA

// Varying maps a pixel-centre position to the value whose derivative the
// shader needs, for example a position in a scaled or rotated space.
// A nil Varying passes the pixel position through unchanged.
type Varying func(pos f32.Vec2) f32.Vec2

// Dispatcher runs shaders over images using a pool of workers.
// A Dispatcher is safe for concurrent use; call Close when done.
type Dispatcher struct {
	pool       *parallel.Pool
	bandHeight int
}

// NewDispatcher creates a Dispatcher and starts its workers.
func NewDispatcher(opts ...Option) *Dispatcher {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Dispatcher{
		pool:       parallel.NewPool(o.workers),
		bandHeight: o.bandHeight,
	}
}

// Workers returns the number of worker goroutines.
func (d *Dispatcher) Workers() int {
	return d.pool.Workers()
}

// Close stops the workers. Run fails after Close.
func (d *Dispatcher) Close() {
	d.pool.Close()
}

// Run evaluates shader for every pixel of dst and stores the result.
//
// Work is split into horizontal bands of quads. If ctx is cancelled, bands
// not yet started are skipped and the error wraps ctx.Err(); pixels of
// those bands keep their previous contents.
func (d *Dispatcher) Run(ctx context.Context, dst *image.NRGBA, varying Varying, shader Shader) error {
	if shader == nil {
		return ErrNilShader
	}
	if dst == nil || dst.Rect.Empty() {
		return ErrEmptyTarget
	}
	if varying == nil {
		varying = identity
	}

	b := dst.Rect
	quadRows := (b.Dy() + 1) / 2
	bandRows := d.bandHeight * 2
	bands := (quadRows + d.bandHeight - 1) / d.bandHeight

	log := fragmath.Logger()
	log.Debug("fragment: dispatch",
		"width", b.Dx(), "height", b.Dy(),
		"bands", bands, "workers", d.pool.Workers())

	ran, err := d.pool.Execute(ctx, bands, func(i int) {
		y0 := b.Min.Y + i*bandRows
		y1 := min(y0+bandRows, b.Max.Y)
		shadeBand(dst, y0, y1, varying, shader)
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.Warn("fragment: dispatch cancelled", "bands_done", ran, "bands", bands)
		}
		return fmt.Errorf("fragment: dispatch: %w", err)
	}
	return nil
}

// shadeBand shades pixel rows [y0, y1) of dst. y0 is quad aligned.
func shadeBand(dst *image.NRGBA, y0, y1 int, varying Varying, shader Shader) {
	b := dst.Rect
	for qy := y0; qy < y1; qy += 2 {
		for qx := b.Min.X; qx < b.Max.X; qx += 2 {
			q := Quad{X: qx, Y: qy}

			var values [4]f32.Vec2
			for lane := range values {
				values[lane] = varying(q.Center(lane))
			}
			fw := Fwidth(values)

			for lane := range values {
				x, y := q.Lane(lane)
				if x >= b.Max.X || y >= y1 {
					// Helper lane.
					continue
				}
				c := shader(Input{
					Quad:   q,
					Lane:   lane,
					Pos:    q.Center(lane),
					Value:  values[lane],
					Fwidth: fw,
				})
				dst.SetNRGBA(x, y, c)
			}
		}
	}
}

func identity(pos f32.Vec2) f32.Vec2 { return pos }
