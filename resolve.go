package vidcap

// placement is the resolved geometry for drawing one frame. Both
// engines consume the same placement, so mode semantics live here and
// nowhere else.
//
// The viewport rectangle may have a negative origin or exceed the
// surface; the overflow is cropped by the engine. outW/outH is the
// size reported to the caller, which for Put is the raw frame size
// even though the surface keeps its own dimensions.
type placement struct {
	draw  bool // false: degenerate frame, leave the surface untouched
	clear bool // wipe the surface before drawing

	resize           bool // reallocate the surface to resizeW×resizeH first
	resizeW, resizeH int

	vpX, vpY int // viewport origin on the surface
	vpW, vpH int // viewport extent

	outW, outH int
}

// resolvePlacement maps a frame of srcW×srcH onto a surface of
// dstW×dstH under the given mode.
//
//   - Put(x,y): frame at its own size at (x,y). Cleared first if any
//     offset pushes into the surface or the frame does not cover it.
//     Reports the raw frame size.
//   - Fill: frame stretched over the full surface. Never cleared.
//   - Adjust: surface resized to the frame size, then drawn 1:1.
//   - Pinhole: frame scaled to cover the surface at its own aspect
//     ratio, centered, overflow cropped equally. Cleared first if the
//     frame is smaller than the surface in either dimension.
//
// A frame with a zero dimension resolves to a no-op that reports the
// current surface size.
func resolvePlacement(srcW, srcH, dstW, dstH int, mode CaptureMode) placement {
	if srcW == 0 || srcH == 0 {
		return placement{outW: dstW, outH: dstH}
	}

	switch mode.kind {
	case modePut:
		x, y := mode.offsetX, mode.offsetY
		return placement{
			draw:  true,
			clear: x > 0 || y > 0 || srcW-x < dstW || srcH-y < dstH,
			vpX:   x, vpY: y,
			vpW: srcW, vpH: srcH,
			outW: srcW, outH: srcH,
		}

	case modeFill:
		return placement{
			draw: true,
			vpW:  dstW, vpH: dstH,
			outW: dstW, outH: dstH,
		}

	case modePinhole:
		var x, y, w, h int
		if srcW > srcH {
			h = dstH
			w = h * srcW / srcH
			x = (dstW - w) / 2
		} else {
			w = dstW
			h = w * srcH / srcW
			y = (dstH - h) / 2
		}
		return placement{
			draw:  true,
			clear: srcW < dstW || srcH < dstH,
			vpX:   x, vpY: y,
			vpW: w, vpH: h,
			outW: dstW, outH: dstH,
		}

	default: // Adjust
		p := placement{
			draw: true,
			vpW:  srcW, vpH: srcH,
			outW: srcW, outH: srcH,
		}
		if srcW != dstW || srcH != dstH {
			p.resize = true
			p.resizeW, p.resizeH = srcW, srcH
		}
		return p
	}
}
