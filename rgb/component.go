package rgb

import (
	"github.com/x448/float16"

	icolor "github.com/gogpu/pixbuf/internal/color"
)

// Component is the numeric type of one channel. Unsigned integers are
// normalized to [0,1] by their maximum value; floats are used as is.
type Component interface {
	uint8 | uint16 | float16.Float16 | float32 | float64
}

// ComponentType identifies a Component at run time.
type ComponentType uint8

const (
	// ComponentInvalid is the zero ComponentType.
	ComponentInvalid ComponentType = iota
	ComponentUint8
	ComponentUint16
	ComponentFloat16
	ComponentFloat32
	ComponentFloat64
)

// ComponentTypeOf reports the ComponentType of T.
func ComponentTypeOf[T Component]() ComponentType {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return ComponentUint8
	case uint16:
		return ComponentUint16
	case float16.Float16:
		return ComponentFloat16
	case float32:
		return ComponentFloat32
	case float64:
		return ComponentFloat64
	default:
		return ComponentInvalid
	}
}

// Size returns the size of one component in bytes.
func (c ComponentType) Size() uintptr {
	switch c {
	case ComponentUint8:
		return 1
	case ComponentUint16, ComponentFloat16:
		return 2
	case ComponentFloat32:
		return 4
	case ComponentFloat64:
		return 8
	default:
		return 0
	}
}

// String returns the Go name of the component type.
func (c ComponentType) String() string {
	switch c {
	case ComponentUint8:
		return "uint8"
	case ComponentUint16:
		return "uint16"
	case ComponentFloat16:
		return "float16"
	case ComponentFloat32:
		return "float32"
	case ComponentFloat64:
		return "float64"
	default:
		return "invalid"
	}
}

// toFloat maps a stored component to float32.
func toFloat[T Component](v T) float32 {
	switch c := any(v).(type) {
	case uint8:
		return float32(c) / 255
	case uint16:
		return float32(c) / 65535
	case float16.Float16:
		return c.Float32()
	case float32:
		return c
	case float64:
		return float32(c)
	}
	return 0
}

// fromFloat maps float32 to a stored component, rounding and saturating integers.
func fromFloat[T Component](f float32) T {
	var out T
	switch p := any(&out).(type) {
	case *uint8:
		*p = icolor.Unorm8(f)
	case *uint16:
		*p = icolor.Unorm16(f)
	case *float16.Float16:
		*p = float16.Fromfloat32(f)
	case *float32:
		*p = f
	case *float64:
		*p = float64(f)
	}
	return out
}

// decode converts an encoded component to linear light.
func decode[T Component](v T, tf Transfer) float32 {
	if tf == TransferSRGB {
		if u, ok := any(v).(uint8); ok {
			return icolor.SRGB8ToLinear(u)
		}
	}
	return tf.Decode(toFloat(v))
}

// encode converts linear light to an encoded component.
func encode[T Component](l float32, tf Transfer) T {
	var out T
	if tf == TransferSRGB {
		if p, ok := any(&out).(*uint8); ok {
			*p = icolor.LinearToSRGB8(l)
			return out
		}
	}
	return fromFloat[T](tf.Encode(l))
}
