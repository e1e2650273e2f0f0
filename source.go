package vidcap

import (
	"image"
	"image/draw"
)

// Source supplies video frames to a Capture. Implementations wrap
// whatever produces pixels: a decoded video stream, a screen grabber
// (see source/x11), a camera, or a static image.
//
// Capture asks for FrameSize first and only calls Frame when the size
// is non-degenerate, so a source that currently has no frame can
// report a zero dimension and skip producing pixels entirely.
type Source interface {
	// FrameSize returns the dimensions of the current frame. Either
	// dimension may be zero when no frame is available.
	FrameSize() (width, height int)

	// Frame returns the current frame. The pixels are only read during
	// the Capture call, so implementations may reuse the backing buffer
	// between frames.
	Frame() *image.RGBA
}

// ImageSource adapts a static image to the Source interface. The image
// is converted to RGBA once at construction.
type ImageSource struct {
	img *image.RGBA
}

// NewImageSource creates a source that yields img on every frame.
func NewImageSource(img image.Image) *ImageSource {
	if rgba, ok := img.(*image.RGBA); ok {
		return &ImageSource{img: rgba}
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return &ImageSource{img: rgba}
}

// FrameSize returns the image dimensions.
func (s *ImageSource) FrameSize() (int, int) {
	return s.img.Rect.Dx(), s.img.Rect.Dy()
}

// Frame returns the wrapped image.
func (s *ImageSource) Frame() *image.RGBA {
	return s.img
}

// smpteBars is the standard seven-bar color sequence at 75% intensity.
var smpteBars = [7][3]uint8{
	{192, 192, 192}, // gray
	{192, 192, 0},   // yellow
	{0, 192, 192},   // cyan
	{0, 192, 0},     // green
	{192, 0, 192},   // magenta
	{192, 0, 0},     // red
	{0, 0, 192},     // blue
}

// PatternSource generates SMPTE-style color bars blended over a
// diagonal gradient. Advance scrolls the pattern, so consecutive
// frames differ; without it the source is a still. It stands in for a
// live video source in demos and tests.
type PatternSource struct {
	w, h int
	tick int
	img  *image.RGBA
}

// NewPatternSource creates a pattern source with the given frame size.
func NewPatternSource(width, height int) *PatternSource {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &PatternSource{
		w:   width,
		h:   height,
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Advance scrolls the bars one step to the left.
func (s *PatternSource) Advance() { s.tick++ }

// FrameSize returns the pattern dimensions.
func (s *PatternSource) FrameSize() (int, int) {
	return s.w, s.h
}

// Frame renders the current pattern frame. The returned image aliases
// an internal buffer that the next Frame call overwrites.
func (s *PatternSource) Frame() *image.RGBA {
	barW := s.w / len(smpteBars)
	if barW == 0 {
		barW = 1
	}
	shift := s.tick * 8
	for y := 0; y < s.h; y++ {
		row := s.img.Pix[y*s.img.Stride:]
		for x := 0; x < s.w; x++ {
			bar := smpteBars[((x+shift)/barW)%len(smpteBars)]
			g := uint8((x + y + shift) * 255 / (s.w + s.h))
			i := x * 4
			row[i] = bar[0]/2 + g/2
			row[i+1] = bar[1]/2 + g/2
			row[i+2] = bar[2]/2 + g/2
			row[i+3] = 255
		}
	}
	return s.img
}
