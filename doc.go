// Package fragmath provides per-fragment math helpers shared by the gogpu
// shading stages.
//
// # Overview
//
// The helpers are small pure functions evaluated once per fragment or per
// packed value:
//
//   - [UnpackHalf2] decodes two binary16 floats packed into a 32-bit word.
//   - [ExtractBits] reads an arbitrary bit-field out of a 32-bit word.
//   - [NormalizeCoordinate] maps a pixel position into clip space.
//   - [AACrisp] and [AASmooth] snap a pixel position for the crisp and
//     smooth anti-aliasing policies selected by [AAMode].
//
// # Coordinate System
//
// Pixel space follows the gg conventions:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Clip space has Y pointing up, so [NormalizeCoordinate] flips the vertical
// axis.
//
// # Preconditions
//
// None of the functions validate their input. Requesting a bit-field that
// crosses bit 31, normalizing against a zero or negative framebuffer size,
// or feeding [AASmooth] a derivative that was not taken from neighbouring
// fragments gives meaningless results. The fragment sub-package supplies
// derivatives on the CPU; the shader sub-package carries the same helpers
// in WGSL.
package fragmath
