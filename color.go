package vidcap

// CaptureColor selects the channel layout of retrieved pixel data.
// Every mode produces four bytes per pixel; the modes differ only in
// what the channels carry.
type CaptureColor uint8

const (
	// ColorRGBA passes the source pixels through unchanged.
	ColorRGBA CaptureColor = iota

	// ColorRGBL keeps the RGB channels and stores the Rec. 601 luminance
	// of the pixel in the alpha channel.
	ColorRGBL

	// ColorLLLA replicates the Rec. 601 luminance across R, G and B and
	// keeps the source alpha.
	ColorLLLA
)

// String returns a string representation of the capture color.
func (c CaptureColor) String() string {
	switch c {
	case ColorRGBA:
		return "RGBA"
	case ColorRGBL:
		return "RGBL"
	case ColorLLLA:
		return "LLLA"
	default:
		return "Unknown"
	}
}

// Channels returns the number of channels per pixel. Every capture
// color occupies four channels, so buffer sizes do not depend on the
// color mode.
func (c CaptureColor) Channels() int {
	return 4
}

// luma601 computes the Rec. 601 luminance of an 8-bit RGB triple,
// rounded to nearest. The GPU fragment shaders use the same weights so
// both engines agree on derived channels.
func luma601(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b) + 500) / 1000)
}
