// Package pixbuf provides a generic, dense, row-major pixel buffer.
//
// # Overview
//
// [Buffer] stores Width()*Height() pixels of any type P in one contiguous
// slice. Pixels are addressed as (y, x), row first:
//
//	b := pixbuf.New[uint8](3, 2) // 3 columns, 2 rows
//	b.Set(1, 2, 5)               // last pixel
//	_ = b.Pix()                  // [0 0 0 0 0 5]
//
// Out-of-range coordinates panic; they are programming errors, never
// clamped or wrapped into the next row.
//
// # Color
//
// When P is a color representation from package rgb, buffers can be
// converted between representations and viewed as raw components:
//
//	src := pixbuf.New[rgb.SRGB8](640, 480)
//	lin := pixbuf.ConvertFrom[rgb.LinearF32](src) // decode + linearize
//	back := pixbuf.ConvertFrom[rgb.SRGB8](lin)    // within one unit of src
//	raw := pixbuf.Components[uint8](back)        // 640*480*3 values, no copy
//
// # Collaborators
//
// [Image] adapts a buffer to image.Image and draw.Image for codecs,
// [FromImage] imports any image.Image, and [Upload] / [Update] hand 8-bit
// RGBA buffers to a GPU backend through gpucontext.
//
// # Logging
//
// pixbuf is silent by default. [SetLogger] installs a log/slog logger.
package pixbuf
