package vidcap

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestImageSourceKeepsRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src := NewImageSource(img)

	if src.Frame() != img {
		t.Error("Frame() returned a copy, want the original *image.RGBA")
	}
	if w, h := src.FrameSize(); w != 3 || h != 2 {
		t.Errorf("FrameSize() = %dx%d, want 3x2", w, h)
	}
}

func TestImageSourceConvertsOtherFormats(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(1, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	src := NewImageSource(img)

	frame := src.Frame()
	if frame.Rect.Min != (image.Point{}) {
		t.Errorf("frame bounds start at %v, want (0,0)", frame.Rect.Min)
	}
	got := frame.RGBAAt(1, 1)
	want := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	if got != want {
		t.Errorf("pixel (1,1) = %v, want %v", got, want)
	}
}

func TestImageSourceNormalizesOffsetBounds(t *testing.T) {
	img := image.NewGray(image.Rect(5, 7, 9, 10))
	src := NewImageSource(img)

	if w, h := src.FrameSize(); w != 4 || h != 3 {
		t.Errorf("FrameSize() = %dx%d, want 4x3", w, h)
	}
	if min := src.Frame().Rect.Min; min != (image.Point{}) {
		t.Errorf("frame bounds start at %v, want (0,0)", min)
	}
}

func TestPatternSourceDeterministic(t *testing.T) {
	src := NewPatternSource(70, 35)

	first := append([]byte(nil), src.Frame().Pix...)
	second := src.Frame().Pix
	if !bytes.Equal(first, second) {
		t.Error("consecutive frames differ without Advance")
	}

	src.Advance()
	third := src.Frame().Pix
	if bytes.Equal(first, third) {
		t.Error("frame unchanged after Advance")
	}
}

func TestPatternSourceFrame(t *testing.T) {
	src := NewPatternSource(70, 35)
	frame := src.Frame()

	// Bar 0 is gray at 75% intensity; the gradient is zero at the
	// origin, so the first pixel is exactly half of (192,192,192).
	got := frame.RGBAAt(0, 0)
	want := color.RGBA{R: 96, G: 96, B: 96, A: 255}
	if got != want {
		t.Errorf("pixel (0,0) = %v, want %v", got, want)
	}

	// Crossing a bar boundary changes the color.
	if frame.RGBAAt(9, 0) == frame.RGBAAt(10, 0) {
		t.Error("pixels on both sides of a bar boundary are equal")
	}

	for _, p := range []image.Point{{0, 0}, {69, 0}, {0, 34}, {69, 34}} {
		if a := frame.RGBAAt(p.X, p.Y).A; a != 255 {
			t.Errorf("alpha at %v = %d, want 255", p, a)
		}
	}
}

func TestPatternSourceDegenerate(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero", 0, 0},
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -3, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewPatternSource(tt.w, tt.h)
			w, h := src.FrameSize()
			if w < 0 || h < 0 {
				t.Errorf("FrameSize() = %dx%d, want non-negative", w, h)
			}
			if frame := src.Frame(); frame == nil {
				t.Error("Frame() = nil, want empty image")
			}
		})
	}
}

func TestPatternSourceCaptures(t *testing.T) {
	c, err := New(16, 16, WithEngine(EngineRaster))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	src := NewPatternSource(64, 64)
	data, err := c.Read(src, Fill)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(data) != 16*16*4 {
		t.Fatalf("len(data) = %d, want %d", len(data), 16*16*4)
	}
	allZero := true
	for _, b := range data {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Error("captured pattern is all zero")
	}
}
