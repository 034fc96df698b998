package pixbuf

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixbuf/rgb"
)

type mockTexture struct {
	width, height int
	data          []byte
	err           error
	updates       int
}

func (t *mockTexture) Width() int  { return t.width }
func (t *mockTexture) Height() int { return t.height }

func (t *mockTexture) UpdateData(data []byte) error {
	if t.err != nil {
		return t.err
	}
	t.data = append(t.data[:0], data...)
	t.updates++
	return nil
}

// mockUpdater has no size, so Update cannot check it.
type mockUpdater struct{ n int }

func (u *mockUpdater) UpdateData(data []byte) error {
	u.n = len(data)
	return nil
}

type mockCreator struct {
	err   error
	calls int
}

func (c *mockCreator) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return &mockTexture{width: width, height: height, data: append([]byte(nil), data...)}, nil
}

var (
	_ gpucontext.TextureCreator = (*mockCreator)(nil)
	_ gpucontext.Texture        = (*mockTexture)(nil)
	_ gpucontext.TextureUpdater = (*mockTexture)(nil)
)

func TestTextureFormat(t *testing.T) {
	tests := []struct {
		name string
		got  gputypes.TextureFormat
		want gputypes.TextureFormat
	}{
		{"SRGBA8", TextureFormat[rgb.SRGBA8](), gputypes.TextureFormatRGBA8UnormSrgb},
		{"linear RGBA8", TextureFormat[rgb.RGBA[rgb.LinearSRGB, uint8]](), gputypes.TextureFormatRGBA8Unorm},
		{"SRGBA16", TextureFormat[rgb.SRGBA16](), gputypes.TextureFormatRGBA16Unorm},
		{"LinearAF16", TextureFormat[rgb.LinearAF16](), gputypes.TextureFormatRGBA16Float},
		{"LinearAF32", TextureFormat[rgb.LinearAF32](), gputypes.TextureFormatRGBA32Float},
		{"Gray8", TextureFormat[rgb.Gray8](), gputypes.TextureFormatR8Unorm},
		{"SRGB8 has no 3-channel format", TextureFormat[rgb.SRGB8](), gputypes.TextureFormatUndefined},
		{"float64", TextureFormat[rgb.LinearF64](), gputypes.TextureFormatUndefined},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("TextureFormat = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestUpload(t *testing.T) {
	b := New[rgb.SRGBA8](3, 2)
	b.Set(1, 2, rgb.SRGBA8{R: 1, G: 2, B: 3, A: 4})

	creator := &mockCreator{}
	tex, err := Upload(creator, b)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if tex.Width() != 3 || tex.Height() != 2 {
		t.Errorf("texture size = %dx%d, want 3x2", tex.Width(), tex.Height())
	}
	data := tex.(*mockTexture).data
	if len(data) != 3*2*4 {
		t.Fatalf("uploaded %d bytes, want 24", len(data))
	}
	// Pixel (1, 2) is the sixth pixel.
	if got := data[20:24]; got[0] != 1 || got[1] != 2 || got[2] != 3 || got[3] != 4 {
		t.Errorf("uploaded pixel = %v, want [1 2 3 4]", got)
	}
}

func TestUploadEmpty(t *testing.T) {
	creator := &mockCreator{}
	_, err := Upload(creator, New[rgb.SRGBA8](0, 4))
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("err = %v, want ErrInvalidDimensions", err)
	}
	if creator.calls != 0 {
		t.Error("creator called for empty buffer")
	}
}

func TestUploadError(t *testing.T) {
	cause := errors.New("out of memory")
	_, err := Upload(&mockCreator{err: cause}, New[rgb.RGBA[rgb.DisplayP3, uint8]](1, 1))
	if !errors.Is(err, cause) {
		t.Errorf("err = %v, want wrapped %v", err, cause)
	}
}

func TestUpdate(t *testing.T) {
	b := New[rgb.LinearAF32](2, 2)
	b.Fill(rgb.LinearAF32{R: 1, A: 1})

	tex := &mockTexture{width: 2, height: 2}
	if err := Update(tex, b); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if tex.updates != 1 || len(tex.data) != 2*2*16 {
		t.Errorf("updates = %d, bytes = %d", tex.updates, len(tex.data))
	}

	u := &mockUpdater{}
	if err := Update(u, New[rgb.Gray8](5, 3)); err != nil {
		t.Fatalf("Update without size: %v", err)
	}
	if u.n != 15 {
		t.Errorf("uploaded %d bytes, want 15", u.n)
	}
}

func TestUpdateSizeMismatch(t *testing.T) {
	tex := &mockTexture{width: 4, height: 4}
	err := Update(tex, New[rgb.SRGBA8](4, 3))
	if !errors.Is(err, ErrTextureSize) {
		t.Errorf("err = %v, want ErrTextureSize", err)
	}
	if tex.updates != 0 {
		t.Error("texture updated despite size mismatch")
	}
}

func TestUpdateError(t *testing.T) {
	cause := errors.New("texture destroyed")
	tex := &mockTexture{width: 1, height: 1, err: cause}
	if err := Update(tex, New[rgb.SRGBA8](1, 1)); !errors.Is(err, cause) {
		t.Errorf("err = %v, want wrapped %v", err, cause)
	}
}

func TestUpdateNoTextureFormat(t *testing.T) {
	tests := []struct {
		name   string
		update func(gpucontext.TextureUpdater) error
	}{
		{"SRGB8", func(u gpucontext.TextureUpdater) error { return Update(u, New[rgb.SRGB8](2, 2)) }},
		{"LinearF64", func(u gpucontext.TextureUpdater) error { return Update(u, New[rgb.LinearF64](2, 2)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tex := &mockTexture{width: 2, height: 2}
			if err := tt.update(tex); !errors.Is(err, ErrTextureFormat) {
				t.Errorf("err = %v, want ErrTextureFormat", err)
			}
			if tex.updates != 0 || len(tex.data) != 0 {
				t.Errorf("texture received %d bytes", len(tex.data))
			}
		})
	}
}
