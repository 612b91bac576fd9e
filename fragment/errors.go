package fragment

import "errors"

// Sentinel errors for the fragment package.
var (
	// ErrEmptyTarget is returned when the destination image has no pixels.
	ErrEmptyTarget = errors.New("fragment: empty target")

	// ErrNilShader is returned when Run is called without a shader.
	ErrNilShader = errors.New("fragment: nil shader")
)
