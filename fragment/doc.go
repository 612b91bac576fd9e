// Package fragment evaluates per-fragment callbacks on the CPU the way a GPU
// rasterizer does: fragments are grouped into 2x2 quads so that every
// invocation can see the screen-space derivative of its inputs.
//
// This is the evaluation context [fragmath.AASmooth] needs. On a GPU the
// derivative comes from neighbouring lanes of the same quad; here the
// [Dispatcher] evaluates the varying at all four lanes first and hands each
// fragment the resulting fwidth.
//
// Lane numbering inside a quad:
//
//	0 1
//	2 3
//
// Quads are aligned to the destination bounds. When the target has an odd
// width or height the lanes that fall outside run as helper lanes: their
// varying is evaluated for the derivative but the shader is not called.
package fragment
