package vidcap

import (
	"errors"
	"fmt"
)

// Engine identifies the capture back end of a Capture instance.
type Engine uint8

const (
	// EngineAuto selects the GPU engine when a blitter is registered
	// and constructs successfully, and falls back to raster otherwise.
	EngineAuto Engine = iota

	// EngineGPU requires the GPU engine; New fails when it is
	// unavailable.
	EngineGPU

	// EngineRaster forces the in-memory raster engine.
	EngineRaster
)

// String returns a string representation of the engine.
func (e Engine) String() string {
	switch e {
	case EngineAuto:
		return "Auto"
	case EngineGPU:
		return "GPU"
	case EngineRaster:
		return "Raster"
	default:
		return "Unknown"
	}
}

// engine is the closed set of capture back ends behind the Capture
// facade. The two implementations are rasterEngine and gpuEngine;
// dispatch is a single interface call per operation.
type engine interface {
	width() int
	height() int
	resize(width, height int) error
	capture(src Source, mode CaptureMode) (outW, outH int, err error)
	retrieve(dst []byte) error
	clear() error
	close() error
}

// gpuEngine adapts a FrameBlitter to the engine interface. It tracks
// the surface size itself; the blitter only ever sees explicit resize
// calls, so engine and target dimensions cannot drift apart.
type gpuEngine struct {
	blitter FrameBlitter
	w, h    int
}

func (e *gpuEngine) width() int  { return e.w }
func (e *gpuEngine) height() int { return e.h }

func (e *gpuEngine) resize(width, height int) error {
	if width == e.w && height == e.h {
		return nil
	}
	if err := e.blitter.Resize(width, height); err != nil {
		return fmt.Errorf("resize render target: %w", err)
	}
	e.w, e.h = width, height
	return nil
}

func (e *gpuEngine) capture(src Source, mode CaptureMode) (int, int, error) {
	srcW, srcH := src.FrameSize()
	pl := resolvePlacement(srcW, srcH, e.w, e.h, mode)
	if !pl.draw {
		return pl.outW, pl.outH, nil
	}
	if pl.resize {
		if err := e.resize(pl.resizeW, pl.resizeH); err != nil {
			return 0, 0, err
		}
	}

	frame := src.Frame()
	if frame == nil {
		return 0, 0, errors.New("vidcap: source returned no frame")
	}
	vp := Viewport{X: pl.vpX, Y: pl.vpY, W: pl.vpW, H: pl.vpH}
	if err := e.blitter.Blit(frame, vp, pl.clear); err != nil {
		return 0, 0, err
	}
	return pl.outW, pl.outH, nil
}

func (e *gpuEngine) retrieve(dst []byte) error {
	if len(dst) != e.w*e.h*4 {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSize, len(dst), e.w*e.h*4)
	}
	return e.blitter.ReadPixels(dst)
}

func (e *gpuEngine) clear() error {
	return e.blitter.Clear()
}

func (e *gpuEngine) close() error {
	e.blitter.Destroy()
	return nil
}
