package shader

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// UniformSize is the byte size of the uniform block.
// Layout: framebuffer_size (vec2<f32>) + padding (vec2<f32>) = 16 bytes.
const UniformSize = 16

// Uniforms mirrors the WGSL uniform block at group(0) binding(0).
type Uniforms struct {
	FramebufferSize f32.Vec2
}

// Bytes encodes u in the std140-compatible little-endian layout.
func (u Uniforms) Bytes() []byte {
	buf := make([]byte, UniformSize)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(u.FramebufferSize[0]))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(u.FramebufferSize[1]))
	return buf
}

// UniformLayoutEntry describes the uniform buffer binding, visible to the
// vertex and fragment stages.
func UniformLayoutEntry(binding uint32) gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
		Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
	}
}
