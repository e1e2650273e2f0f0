// Package x11 provides a screen-grabbing frame source backed by the
// X11 protocol. It speaks the wire protocol directly through XGB, so
// it needs neither cgo nor Xlib.
//
// A ScreenSource satisfies vidcap.Source and can be passed straight to
// Capture.Capture or Capture.Read:
//
//	src, err := x11.NewScreenSource(image.Rectangle{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	pixels, err := c.Read(src, vidcap.Pinhole)
package x11

import (
	"fmt"
	"image"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/gogpu/vidcap"
	"github.com/gogpu/vidcap/internal/parallel"
)

// ScreenSource grabs a rectangular region of the default X screen on
// every Frame call. The backing frame buffer is reused between grabs.
//
// Like Capture itself, a ScreenSource is single-threaded: the returned
// frame aliases internal state and is only valid until the next Frame
// or Close call.
type ScreenSource struct {
	conn   *xgb.Conn
	root   xproto.Drawable
	region image.Rectangle
	frame  *image.RGBA
	closed bool
}

var _ vidcap.Source = (*ScreenSource)(nil)

// NewScreenSource connects to the X server named by $DISPLAY and
// prepares to grab region. An empty region selects the whole screen.
// A region reaching outside the screen is clipped to it; grabbing an
// unclipped region would fail with a BadMatch error on every frame.
func NewScreenSource(region image.Rectangle) (*ScreenSource, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}

	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)

	depth := int(screen.RootDepth)
	if depth != 24 && depth != 32 {
		conn.Close()
		return nil, fmt.Errorf("unsupported root depth %d, want 24 or 32", depth)
	}

	bounds := image.Rect(0, 0, int(screen.WidthInPixels), int(screen.HeightInPixels))
	if region.Empty() {
		region = bounds
	} else {
		region = region.Intersect(bounds)
	}

	vidcap.Logger().Debug("screen source connected",
		"region", region.String(),
		"depth", depth)

	return &ScreenSource{
		conn:   conn,
		root:   xproto.Drawable(screen.Root),
		region: region,
	}, nil
}

// Region returns the screen rectangle this source grabs.
func (s *ScreenSource) Region() image.Rectangle {
	return s.region
}

// FrameSize returns the grab region dimensions, or zeros once the
// source is closed.
func (s *ScreenSource) FrameSize() (int, int) {
	if s.closed {
		return 0, 0
	}
	return s.region.Dx(), s.region.Dy()
}

// Frame grabs the region and returns it as an RGBA image. The image
// aliases an internal buffer that the next Frame call overwrites. A
// failed grab returns nil after logging the server error.
func (s *ScreenSource) Frame() *image.RGBA {
	if s.closed {
		return nil
	}
	w, h := s.region.Dx(), s.region.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}

	reply, err := xproto.GetImage(
		s.conn,
		xproto.ImageFormatZPixmap,
		s.root,
		int16(s.region.Min.X), int16(s.region.Min.Y),
		uint16(w), uint16(h),
		0xffffffff,
	).Reply()
	if err != nil {
		vidcap.Logger().Warn("screen grab failed", "error", err)
		return nil
	}

	if s.frame == nil || s.frame.Rect.Dx() != w || s.frame.Rect.Dy() != h {
		s.frame = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	bgraToRGBA(s.frame.Pix, reply.Data)
	return s.frame
}

// Close drops the X connection. Close is idempotent; after it,
// FrameSize reports zeros and Frame returns nil.
func (s *ScreenSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.conn.Close()
	return nil
}

// bgraToRGBA converts packed 32-bit BGRA samples from src into dst,
// forcing alpha opaque. X servers deliver ZPixmap data in BGRA order
// at depths 24 and 32; at depth 24 the fourth byte is undefined.
// Conversion stops at the shorter of the two slices.
func bgraToRGBA(dst, src []byte) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	parallel.For(n/4, func(lo, hi int) {
		for i := lo * 4; i < hi*4; i += 4 {
			dst[i] = src[i+2]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i]
			dst[i+3] = 255
		}
	})
}
