package vidcap

import "fmt"

// captureModeKind discriminates the closed set of capture modes.
type captureModeKind uint8

const (
	modeAdjust captureModeKind = iota
	modePut
	modeFill
	modePinhole
)

// CaptureMode selects how a source frame is placed onto the capture
// surface. Modes are values; compare them with ==. The zero value is
// Adjust.
//
// The modes differ in three decisions: where the frame lands
// (viewport), whether the surface is resized to match the frame, and
// whether stale content is cleared first. See Capture for the exact
// contract of each mode.
type CaptureMode struct {
	kind             captureModeKind
	offsetX, offsetY int
}

// Fill stretches the frame over the whole surface, ignoring aspect
// ratio. The surface keeps its size and is never cleared.
var Fill = CaptureMode{kind: modeFill}

// Adjust resizes the surface to the frame size and draws 1:1. This is
// the default mode.
var Adjust = CaptureMode{kind: modeAdjust}

// Pinhole scales the frame to cover the surface while preserving its
// aspect ratio, centering it and cropping the overflow equally on both
// sides.
var Pinhole = CaptureMode{kind: modePinhole}

// Put places the frame at its own size with the top-left corner at
// (x, y) on the surface. Parts of the frame outside the surface are
// cropped. The surface is cleared first whenever previously drawn
// content could remain visible around the frame.
func Put(x, y int) CaptureMode {
	return CaptureMode{kind: modePut, offsetX: x, offsetY: y}
}

// PutTopLeft is shorthand for Put(0, 0).
func PutTopLeft() CaptureMode {
	return Put(0, 0)
}

// String returns a string representation of the capture mode.
func (m CaptureMode) String() string {
	switch m.kind {
	case modeAdjust:
		return "Adjust"
	case modePut:
		return fmt.Sprintf("Put(%d,%d)", m.offsetX, m.offsetY)
	case modeFill:
		return "Fill"
	case modePinhole:
		return "Pinhole"
	default:
		return "Unknown"
	}
}
