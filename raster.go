package vidcap

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/vidcap/internal/parallel"
)

// rasterEngine captures frames onto an in-memory Pixmap. It is the
// fallback engine and the reference for mode semantics: placements are
// realized with golang.org/x/image/draw, which crops viewport overflow
// against the surface bounds the same way a GPU viewport does.
type rasterEngine struct {
	pm    *Pixmap
	color CaptureColor
}

func newRasterEngine(width, height int, color CaptureColor, pm *Pixmap) *rasterEngine {
	if pm == nil {
		pm = NewPixmap(width, height)
	} else {
		pm.Resize(width, height)
	}
	return &rasterEngine{pm: pm, color: color}
}

func (e *rasterEngine) width() int  { return e.pm.Width() }
func (e *rasterEngine) height() int { return e.pm.Height() }

func (e *rasterEngine) resize(width, height int) error {
	e.pm.Resize(width, height)
	return nil
}

func (e *rasterEngine) capture(src Source, mode CaptureMode) (int, int, error) {
	srcW, srcH := src.FrameSize()
	pl := resolvePlacement(srcW, srcH, e.pm.Width(), e.pm.Height(), mode)
	if !pl.draw {
		return pl.outW, pl.outH, nil
	}
	if pl.resize {
		e.pm.Resize(pl.resizeW, pl.resizeH)
	}
	if pl.clear {
		e.pm.Clear()
	}

	frame := src.Frame()
	if frame == nil {
		return 0, 0, errors.New("vidcap: source returned no frame")
	}

	dst := e.pm.asRGBA()
	vp := image.Rect(pl.vpX, pl.vpY, pl.vpX+pl.vpW, pl.vpY+pl.vpH)
	if pl.vpW == frame.Rect.Dx() && pl.vpH == frame.Rect.Dy() {
		draw.Draw(dst, vp, frame, frame.Rect.Min, draw.Src)
	} else {
		xdraw.ApproxBiLinear.Scale(dst, vp, frame, frame.Bounds(), xdraw.Src, nil)
	}
	return pl.outW, pl.outH, nil
}

func (e *rasterEngine) retrieve(dst []byte) error {
	data := e.pm.Data()
	if len(dst) != len(data) {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSize, len(dst), len(data))
	}
	convertColor(dst, data, e.color)
	return nil
}

func (e *rasterEngine) clear() error {
	e.pm.Clear()
	return nil
}

func (e *rasterEngine) close() error {
	return nil
}

// convertColor copies src into dst, applying the channel mapping of
// the capture color. Both slices must have the same length. The mapped
// colors fan out across worker goroutines on large surfaces.
func convertColor(dst, src []byte, c CaptureColor) {
	switch c {
	case ColorRGBL:
		parallel.For(len(src)/4, func(lo, hi int) {
			for i := lo * 4; i < hi*4; i += 4 {
				r, g, b := src[i], src[i+1], src[i+2]
				dst[i+0] = r
				dst[i+1] = g
				dst[i+2] = b
				dst[i+3] = luma601(r, g, b)
			}
		})
	case ColorLLLA:
		parallel.For(len(src)/4, func(lo, hi int) {
			for i := lo * 4; i < hi*4; i += 4 {
				l := luma601(src[i], src[i+1], src[i+2])
				dst[i+0] = l
				dst[i+1] = l
				dst[i+2] = l
				dst[i+3] = src[i+3]
			}
		})
	default:
		copy(dst, src)
	}
}
