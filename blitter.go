package vidcap

import (
	"image"
	"sync"
)

// Viewport is a destination rectangle on the capture surface, in
// pixels. The origin may be negative and the extent may exceed the
// surface; the parts outside the surface are cropped.
type Viewport struct {
	X, Y int
	W, H int
}

// FrameBlitter is a persistent GPU pipeline that places source frames
// onto a render target and reads the result back. Implementations are
// provided by GPU backend packages; each Capture owns its blitter
// exclusively and calls it from a single goroutine.
//
// Users opt in to GPU capture via blank import:
//
//	import _ "github.com/gogpu/vidcap/gpu" // enables the GPU engine
type FrameBlitter interface {
	// Resize recreates the render target with the given dimensions.
	// The previous content is dropped.
	Resize(width, height int) error

	// Blit uploads the frame and draws it into the viewport. When clear
	// is set, the target is wiped to transparent black first. The draw
	// is complete when Blit returns.
	Blit(frame *image.RGBA, vp Viewport, clear bool) error

	// ReadPixels copies the target into dst as tightly packed RGBA
	// rows, top-left origin. len(dst) must equal width*height*4.
	ReadPixels(dst []byte) error

	// Clear wipes the target to transparent black.
	Clear() error

	// Destroy releases all GPU resources. Safe to call on a partially
	// constructed blitter and more than once.
	Destroy()
}

// BlitterFactory constructs a FrameBlitter with the given target
// dimensions and capture color. A factory is called once per Capture;
// the returned blitter is owned by that instance alone.
type BlitterFactory func(width, height int, color CaptureColor) (FrameBlitter, error)

var (
	blitterMu      sync.RWMutex
	blitterFactory BlitterFactory
)

// RegisterBlitter registers the GPU blitter factory used by New for
// EngineGPU and EngineAuto. Only one factory can be registered;
// subsequent calls replace the previous one.
//
// Typical usage via blank import in GPU backend packages:
//
//	func init() {
//	    vidcap.RegisterBlitter(newBlitter)
//	}
func RegisterBlitter(f BlitterFactory) {
	blitterMu.Lock()
	blitterFactory = f
	blitterMu.Unlock()
}

// registeredBlitter returns the current factory, or nil if none.
func registeredBlitter() BlitterFactory {
	blitterMu.RLock()
	f := blitterFactory
	blitterMu.RUnlock()
	return f
}
