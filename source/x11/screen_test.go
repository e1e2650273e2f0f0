package x11

import (
	"bytes"
	"testing"
)

func TestBGRAToRGBA(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		dst  []byte
		want []byte
	}{
		{
			name: "single pixel swaps red and blue",
			src:  []byte{1, 2, 3, 4},
			dst:  make([]byte, 4),
			want: []byte{3, 2, 1, 255},
		},
		{
			name: "alpha forced opaque",
			src:  []byte{10, 20, 30, 0},
			dst:  make([]byte, 4),
			want: []byte{30, 20, 10, 255},
		},
		{
			name: "two pixels",
			src:  []byte{255, 0, 0, 255, 0, 0, 255, 255},
			dst:  make([]byte, 8),
			want: []byte{0, 0, 255, 255, 255, 0, 0, 255},
		},
		{
			name: "short source leaves tail untouched",
			src:  []byte{1, 2, 3, 4},
			dst:  []byte{9, 9, 9, 9, 9, 9, 9, 9},
			want: []byte{3, 2, 1, 255, 9, 9, 9, 9},
		},
		{
			name: "short destination stops at its length",
			src:  []byte{1, 2, 3, 4, 5, 6, 7, 8},
			dst:  make([]byte, 4),
			want: []byte{3, 2, 1, 255},
		},
		{
			name: "partial pixel ignored",
			src:  []byte{1, 2, 3, 4, 5, 6},
			dst:  []byte{0, 0, 0, 0, 9, 9},
			want: []byte{3, 2, 1, 255, 9, 9},
		},
		{
			name: "empty",
			src:  nil,
			dst:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bgraToRGBA(tt.dst, tt.src)
			if !bytes.Equal(tt.dst, tt.want) {
				t.Errorf("bgraToRGBA() dst = %v, want %v", tt.dst, tt.want)
			}
		})
	}
}

func TestScreenSourceClosedReportsZeroSize(t *testing.T) {
	s := &ScreenSource{closed: true}
	if w, h := s.FrameSize(); w != 0 || h != 0 {
		t.Errorf("FrameSize() = %dx%d, want 0x0", w, h)
	}
	if frame := s.Frame(); frame != nil {
		t.Errorf("Frame() = %v, want nil", frame)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}
