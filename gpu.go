package pixbuf

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixbuf/rgb"
)

// Texture errors.
var (
	// ErrTextureSize is returned when a texture and a buffer differ in size.
	ErrTextureSize = errors.New("pixbuf: texture size mismatch")

	// ErrTextureFormat is returned for pixel types with no texture format.
	ErrTextureFormat = errors.New("pixbuf: no texture format for pixel type")
)

// TextureFormat returns the WebGPU texture format whose memory layout
// matches P, or gputypes.TextureFormatUndefined if there is none.
func TextureFormat[P rgb.Pixel[P]]() gputypes.TextureFormat {
	var zero P
	return zero.Layout().TextureFormat()
}

// Upload creates a GPU texture from an 8-bit RGBA buffer. The pixel data is
// handed to the creator without copying; the creator is expected to copy it
// before returning.
func Upload[S rgb.Standard](creator gpucontext.TextureCreator, b *Buffer[rgb.RGBA[S, uint8]]) (gpucontext.Texture, error) {
	if b.IsEmpty() {
		return nil, fmt.Errorf("%w: %dx%d texture", ErrInvalidDimensions, b.width, b.height)
	}
	tex, err := creator.NewTextureFromRGBA(b.width, b.height, Components[uint8](b))
	if err != nil {
		Logger().Warn("pixbuf: texture upload failed", "width", b.width, "height", b.height, "error", err)
		return nil, fmt.Errorf("pixbuf: upload %dx%d texture: %w", b.width, b.height, err)
	}
	Logger().Debug("pixbuf: texture uploaded", "width", b.width, "height", b.height)
	return tex, nil
}

// Update replaces the contents of an existing texture with b. Pixel types
// without a texture format (three channels, float64) are rejected with
// ErrTextureFormat. If tex also reports its size (gpucontext.Texture), a size
// mismatch is rejected with ErrTextureSize. Nothing is uploaded on error.
func Update[P rgb.Pixel[P]](tex gpucontext.TextureUpdater, b *Buffer[P]) error {
	if TextureFormat[P]() == gputypes.TextureFormatUndefined {
		var zero P
		return fmt.Errorf("%w: %T", ErrTextureFormat, zero)
	}
	if t, ok := tex.(gpucontext.Texture); ok && (t.Width() != b.width || t.Height() != b.height) {
		return fmt.Errorf("%w: texture %dx%d, buffer %dx%d",
			ErrTextureSize, t.Width(), t.Height(), b.width, b.height)
	}
	if err := tex.UpdateData(Bytes(b)); err != nil {
		Logger().Warn("pixbuf: texture update failed", "error", err)
		return fmt.Errorf("pixbuf: update texture: %w", err)
	}
	Logger().Debug("pixbuf: texture updated", "width", b.width, "height", b.height)
	return nil
}
