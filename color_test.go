package vidcap

import "testing"

func TestCaptureColorString(t *testing.T) {
	tests := []struct {
		color CaptureColor
		want  string
	}{
		{ColorRGBA, "RGBA"},
		{ColorRGBL, "RGBL"},
		{ColorLLLA, "LLLA"},
		{CaptureColor(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.color.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// Every capture color carries four channels, so buffer sizes never
// depend on the color mode.
func TestCaptureColorChannels(t *testing.T) {
	for _, c := range []CaptureColor{ColorRGBA, ColorRGBL, ColorLLLA} {
		if got := c.Channels(); got != 4 {
			t.Errorf("%v.Channels() = %d, want 4", c, got)
		}
	}
}

func TestLuma601(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 255},
		{"red", 255, 0, 0, 76},
		{"green", 0, 255, 0, 150},
		{"blue", 0, 0, 255, 29},
		{"mid gray", 128, 128, 128, 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := luma601(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("luma601(%d, %d, %d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestConvertColor(t *testing.T) {
	// Two pixels: opaque red, half-transparent green.
	src := []byte{255, 0, 0, 255, 0, 255, 0, 128}
	dst := make([]byte, len(src))

	convertColor(dst, src, ColorRGBA)
	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("RGBA passthrough changed byte %d: got %d, want %d", i, dst[i], src[i])
		}
	}

	convertColor(dst, src, ColorRGBL)
	want := []byte{255, 0, 0, 76, 0, 255, 0, 150}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("RGBL byte %d = %d, want %d", i, dst[i], want[i])
		}
	}

	convertColor(dst, src, ColorLLLA)
	want = []byte{76, 76, 76, 255, 150, 150, 150, 128}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("LLLA byte %d = %d, want %d", i, dst[i], want[i])
		}
	}
}
