//go:build !nogpu

package gpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/naga"

	"github.com/gogpu/vidcap"
)

// spirvMagic is the first word of every valid SPIR-V module.
const spirvMagic = 0x07230203

func TestBlitShaderSourcesEmbedded(t *testing.T) {
	sources := map[string]string{
		"rgba": blitRGBAShaderSource,
		"rgbl": blitRGBLShaderSource,
		"llla": blitLLLAShaderSource,
	}
	for name, src := range sources {
		if src == "" {
			t.Errorf("%s shader source is empty", name)
		}
	}
}

func TestBlitShaderSourceSelection(t *testing.T) {
	tests := []struct {
		color vidcap.CaptureColor
		want  string
	}{
		{vidcap.ColorRGBA, blitRGBAShaderSource},
		{vidcap.ColorRGBL, blitRGBLShaderSource},
		{vidcap.ColorLLLA, blitLLLAShaderSource},
		{vidcap.CaptureColor(99), blitRGBAShaderSource},
	}
	for _, tt := range tests {
		if got := blitShaderSource(tt.color); got != tt.want {
			t.Errorf("blitShaderSource(%v) selected the wrong shader", tt.color)
		}
	}
}

// TestBlitShaderCompilation checks that every embedded WGSL variant
// compiles to SPIR-V.
func TestBlitShaderCompilation(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"rgba", blitRGBAShaderSource},
		{"rgbl", blitRGBLShaderSource},
		{"llla", blitLLLAShaderSource},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := compileShader(tt.src)
			if err != nil {
				// Check for known naga limitations and skip gracefully.
				errStr := err.Error()
				if strings.Contains(errStr, "not yet implemented") || strings.Contains(errStr, "not supported") {
					t.Skipf("Skipping: naga feature not yet implemented: %v", err)
				}
				t.Fatalf("failed to compile %s blit shader: %v", tt.name, err)
			}
			if len(words) == 0 {
				t.Fatal("compiled shader is empty")
			}
			if words[0] != spirvMagic {
				t.Errorf("SPIR-V magic = %#x, want %#x", words[0], uint32(spirvMagic))
			}
		})
	}
}

func TestCompileShaderBadSource(t *testing.T) {
	_, err := compileShader("this is not wgsl @@@")
	if err == nil {
		t.Fatal("compileShader accepted invalid source")
	}
	if !errors.Is(err, vidcap.ErrValidation) {
		t.Errorf("error = %v, want wrapped ErrValidation", err)
	}
}

// TestCompileShaderWordOrder verifies the byte-to-word conversion against
// naga's raw output.
func TestCompileShaderWordOrder(t *testing.T) {
	raw, err := naga.Compile(blitRGBAShaderSource)
	if err != nil {
		t.Skipf("Skipping: naga compile unavailable: %v", err)
	}
	words, err := compileShader(blitRGBAShaderSource)
	if err != nil {
		t.Fatalf("compileShader: %v", err)
	}
	if len(words) != len(raw)/4 {
		t.Fatalf("word count = %d, want %d", len(words), len(raw)/4)
	}
	for i, w := range words {
		want := uint32(raw[i*4]) | uint32(raw[i*4+1])<<8 | uint32(raw[i*4+2])<<16 | uint32(raw[i*4+3])<<24
		if w != want {
			t.Fatalf("word %d = %#x, want %#x", i, w, want)
		}
	}
}
