package vidcap

import (
	"fmt"
	"image"
)

// Capture places video frames onto a persistent destination surface and
// hands the pixels back as tightly packed 4-byte-per-pixel data. It is
// the facade over the two capture engines: the GPU engine (a wgpu blit
// pipeline, when the gpu package is imported) and the raster engine
// (an in-memory pixmap). The engine is chosen at construction and
// fixed for the lifetime of the instance.
//
// A Capture is single-threaded by design: methods perform no internal
// locking and must not be called concurrently. Callers that share an
// instance across goroutines serialize access themselves.
//
// Example:
//
//	c, err := vidcap.New(640, 360)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	pixels, err := c.Read(source, vidcap.Pinhole)
type Capture struct {
	eng    engine
	kind   Engine
	color  CaptureColor
	closed bool
}

// New creates a Capture with a width×height destination surface.
// Zero dimensions are valid; captures against an empty surface resolve
// to empty output.
//
// With the default EngineAuto, New uses the registered GPU blitter if
// it constructs successfully and silently falls back to the raster
// engine otherwise (the fallback is logged at Warn level). Pass
// WithEngine(EngineGPU) to fail instead of falling back.
func New(width, height int, opts ...Option) (*Capture, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("vidcap: invalid dimensions %dx%d", width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Capture{color: o.color}
	switch o.engine {
	case EngineGPU:
		f := registeredBlitter()
		if f == nil {
			return nil, ErrNoGPU
		}
		b, err := f(width, height, o.color)
		if err != nil {
			return nil, err
		}
		c.eng = &gpuEngine{blitter: b, w: width, h: height}
		c.kind = EngineGPU

	case EngineRaster:
		c.eng = newRasterEngine(width, height, o.color, o.pixmap)
		c.kind = EngineRaster

	default: // EngineAuto
		if f := registeredBlitter(); f != nil {
			b, err := f(width, height, o.color)
			if err == nil {
				c.eng = &gpuEngine{blitter: b, w: width, h: height}
				c.kind = EngineGPU
			} else {
				Logger().Warn("GPU engine unavailable, falling back to raster",
					"error", err)
			}
		}
		if c.eng == nil {
			c.eng = newRasterEngine(width, height, o.color, o.pixmap)
			c.kind = EngineRaster
		}
	}
	return c, nil
}

// Width returns the width of the destination surface.
func (c *Capture) Width() int {
	return c.eng.width()
}

// Height returns the height of the destination surface.
func (c *Capture) Height() int {
	return c.eng.height()
}

// Size returns the dimensions of the destination surface.
func (c *Capture) Size() (width, height int) {
	return c.eng.width(), c.eng.height()
}

// SetWidth resizes the destination surface to the given width. The
// surface content is dropped.
func (c *Capture) SetWidth(width int) error {
	return c.SetSize(width, c.eng.height())
}

// SetHeight resizes the destination surface to the given height. The
// surface content is dropped.
func (c *Capture) SetHeight(height int) error {
	return c.SetSize(c.eng.width(), height)
}

// SetSize resizes the destination surface. The surface content is
// dropped. Resizing to the current size is a no-op.
func (c *Capture) SetSize(width, height int) error {
	if c.closed {
		return ErrClosed
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("vidcap: invalid dimensions %dx%d", width, height)
	}
	return c.eng.resize(width, height)
}

// Area returns the number of pixels of the destination surface.
func (c *Capture) Area() int {
	return c.eng.width() * c.eng.height()
}

// Color returns the capture color of this instance.
func (c *Capture) Color() CaptureColor {
	return c.color
}

// Engine returns the engine backing this instance. With EngineAuto the
// result reports which engine was actually selected.
func (c *Capture) Engine() Engine {
	return c.kind
}

// Channels returns the number of channels per retrieved pixel, which
// is 4 for every capture color.
func (c *Capture) Channels() int {
	return c.color.Channels()
}

// BufferSize returns the byte length Retrieve expects: Area times
// Channels.
func (c *Capture) BufferSize() int {
	return c.Area() * c.Channels()
}

// Capture grabs the current frame of src and draws it onto the
// destination surface according to mode. It returns the capture output
// size, which under Put is the raw frame size and may differ from the
// surface size.
//
// A frame with a zero dimension is a no-op that reports the current
// surface size. Under Adjust the surface is resized to the frame size
// before drawing.
func (c *Capture) Capture(src Source, mode CaptureMode) (width, height int, err error) {
	if c.closed {
		return 0, 0, ErrClosed
	}
	return c.eng.capture(src, mode)
}

// Retrieve copies the destination surface into buf as tightly packed
// rows in top-left order, applying the capture color's channel
// mapping. len(buf) must equal BufferSize; otherwise Retrieve returns
// an error wrapping ErrBufferSize and leaves buf untouched.
func (c *Capture) Retrieve(buf []byte) error {
	if c.closed {
		return ErrClosed
	}
	if len(buf) != c.BufferSize() {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSize, len(buf), c.BufferSize())
	}
	return c.eng.retrieve(buf)
}

// Data retrieves the destination surface into a freshly allocated
// buffer of BufferSize bytes.
func (c *Capture) Data() ([]byte, error) {
	if c.closed {
		return nil, ErrClosed
	}
	buf := make([]byte, c.BufferSize())
	if err := c.eng.retrieve(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Read captures a frame and retrieves the result in one call. The
// returned buffer is sized to the surface dimensions after the
// capture, so Read with Adjust yields a frame-sized buffer.
func (c *Capture) Read(src Source, mode CaptureMode) ([]byte, error) {
	if _, _, err := c.Capture(src, mode); err != nil {
		return nil, err
	}
	return c.Data()
}

// Image retrieves the destination surface as an image.RGBA.
func (c *Capture) Image() (*image.RGBA, error) {
	data, err := c.Data()
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, c.eng.width(), c.eng.height()))
	copy(img.Pix, data)
	return img, nil
}

// Clear wipes the destination surface to transparent black. Clearing
// an already clear surface is a no-op.
func (c *Capture) Clear() error {
	if c.closed {
		return ErrClosed
	}
	return c.eng.clear()
}

// Close releases the engine and its GPU resources, if any. Close is
// idempotent; all other operations on a closed Capture return
// ErrClosed. Dimension accessors keep reporting the last surface size.
func (c *Capture) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.eng.close()
}
