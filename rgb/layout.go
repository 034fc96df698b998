package rgb

import "github.com/gogpu/gputypes"

// Layout is the memory contract of a pixel type: Channels contiguous values
// of one component type, no padding and no other fields.
type Layout struct {
	Channels  int
	Component ComponentType
	// Alpha reports whether the last channel is alpha.
	Alpha bool
	// Transfer is the curve the color channels are stored with.
	Transfer Transfer
}

// PixelSize returns the size of one pixel in bytes.
func (l Layout) PixelSize() uintptr {
	return uintptr(l.Channels) * l.Component.Size()
}

// TextureFormat returns the WebGPU texture format with the same memory
// layout, or gputypes.TextureFormatUndefined when there is none (WebGPU has
// no three-channel formats). sRGB-encoded 8-bit RGBA maps to the Srgb
// variant so the GPU decodes on sampling; every other transfer is sampled
// as stored.
func (l Layout) TextureFormat() gputypes.TextureFormat {
	switch l.Channels {
	case 1:
		switch l.Component {
		case ComponentUint8:
			return gputypes.TextureFormatR8Unorm
		case ComponentUint16:
			return gputypes.TextureFormatR16Unorm
		case ComponentFloat16:
			return gputypes.TextureFormatR16Float
		case ComponentFloat32:
			return gputypes.TextureFormatR32Float
		}
	case 4:
		switch l.Component {
		case ComponentUint8:
			if l.Transfer == TransferSRGB {
				return gputypes.TextureFormatRGBA8UnormSrgb
			}
			return gputypes.TextureFormatRGBA8Unorm
		case ComponentUint16:
			return gputypes.TextureFormatRGBA16Unorm
		case ComponentFloat16:
			return gputypes.TextureFormatRGBA16Float
		case ComponentFloat32:
			return gputypes.TextureFormatRGBA32Float
		}
	}
	return gputypes.TextureFormatUndefined
}
