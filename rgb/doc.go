// Package rgb defines the color representations stored in pixbuf buffers.
//
// A representation pairs a [Standard] (RGB primaries plus a transfer
// function) with a [Component] numeric type:
//
//	rgb.RGB[rgb.SRGB, uint8]         // 8-bit gamma-encoded sRGB (alias SRGB8)
//	rgb.RGBA[rgb.LinearSRGB, float32] // linear-light float sRGB with alpha (alias LinearAF32)
//
// Conversions go through [Linear], a float32 linear-light RGB value tagged
// with its primaries. Every representation can decode itself to Linear
// ([Color]) and be rebuilt from a Linear in any space ([Target]); values are
// gamut-mapped through CIE XYZ (D65) when the spaces differ. Integer
// components round and saturate, float components are stored unclamped.
//
// # Memory layout
//
// Pixel types are plain structs of N fields of one component type, so a
// pixel occupies exactly N contiguous components with no padding. [Layout]
// describes this contract; pixbuf relies on it for zero-copy component views.
//
// Alpha is always linear (never gamma-encoded) and never premultiplied.
package rgb
