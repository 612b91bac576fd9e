// Package shader carries the fragmath helpers as WGSL and prepares them for
// the gogpu GPU stack.
//
// The embedded module defines unpack_half2, extract_bits, normalize_pos,
// aa_crisp and aa_smooth with the same semantics as the Go functions, one
// vertex entry point and one fragment entry point per anti-aliasing policy.
// Choosing the entry point for a given [fragmath.AAMode] is up to the
// pipeline that uses the module.
package shader

import (
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gogpu/fragmath"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/fragmath.wgsl
var fragmathShaderSource string

// Entry points of the embedded module.
const (
	VertexEntry         = "vs_main"
	FragmentEntryLinear = "fs_linear"
	FragmentEntryCrisp  = "fs_crisp"
	FragmentEntrySmooth = "fs_smooth"
)

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

var (
	// ErrInvalidSPIRV is returned when the compiler output is not a SPIR-V
	// word stream.
	ErrInvalidSPIRV = errors.New("shader: invalid SPIR-V output")

	// ErrNoHALDevice is returned when a device provider does not expose a
	// hal.Device.
	ErrNoHALDevice = errors.New("shader: provider does not expose a HAL device")
)

// Source returns the WGSL source of the helper module.
func Source() string {
	return fragmathShaderSource
}

// CompileSPIRV compiles the module to SPIR-V words.
func CompileSPIRV() ([]uint32, error) {
	spirvBytes, err := naga.Compile(fragmathShaderSource)
	if err != nil {
		return nil, fmt.Errorf("shader: compile fragmath module: %w", err)
	}

	words, err := spirvWords(spirvBytes)
	if err != nil {
		return nil, err
	}

	fragmath.Logger().Debug("shader: compiled fragmath module", "spirv_words", len(words))
	return words, nil
}

// spirvWords converts little-endian SPIR-V bytes to words and checks the
// magic number.
func spirvWords(b []byte) ([]uint32, error) {
	if len(b) < 4 || len(b)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSPIRV, len(b))
	}

	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	if words[0] != spirvMagic {
		return nil, fmt.Errorf("%w: magic 0x%08X", ErrInvalidSPIRV, words[0])
	}
	return words, nil
}

// CreateModule creates a shader module for the helpers on device.
func CreateModule(device hal.Device, label string) (hal.ShaderModule, error) {
	if device == nil {
		return nil, ErrNoHALDevice
	}
	if label == "" {
		label = "fragmath_shader"
	}

	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{WGSL: fragmathShaderSource},
	})
	if err != nil {
		return nil, fmt.Errorf("shader: create module %q: %w", label, err)
	}
	return module, nil
}

// DeviceFromProvider returns the hal.Device behind a gpucontext provider.
// The provider must implement HalDevice() any, as the gogpu windowing
// providers do.
func DeviceFromProvider(provider gpucontext.DeviceProvider) (hal.Device, error) {
	type halProvider interface {
		HalDevice() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALDevice
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is %T", ErrNoHALDevice, hp.HalDevice())
	}
	return device, nil
}
