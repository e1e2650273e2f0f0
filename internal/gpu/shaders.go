//go:build !nogpu

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"

	"github.com/gogpu/vidcap"
)

// Embedded WGSL shader sources, one blit variant per capture color mode.
// All three share the same vertex stage; they differ only in how the
// fragment stage maps the sampled color.

//go:embed shaders/blit_rgba.wgsl
var blitRGBAShaderSource string

//go:embed shaders/blit_rgbl.wgsl
var blitRGBLShaderSource string

//go:embed shaders/blit_llla.wgsl
var blitLLLAShaderSource string

// blitShaderSource returns the WGSL source for the given color mode.
// Unknown values fall back to the RGBA passthrough shader.
func blitShaderSource(color vidcap.CaptureColor) string {
	switch color {
	case vidcap.ColorRGBL:
		return blitRGBLShaderSource
	case vidcap.ColorLLLA:
		return blitLLLAShaderSource
	default:
		return blitRGBAShaderSource
	}
}

// compileShader translates WGSL into SPIR-V words for the HAL.
// SPIR-V is little-endian 32-bit words. Compile failures wrap
// vidcap.ErrValidation so callers can classify them with errors.Is.
func compileShader(src string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vidcap.ErrValidation, err)
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
