package vidcap

// Option configures a Capture during creation.
// Use functional options to customize Capture behavior.
//
// Example:
//
//	// Default: auto-selected engine, RGBA output
//	c, err := vidcap.New(640, 360)
//
//	// Raster engine with luminance output
//	c, err := vidcap.New(640, 360,
//	    vidcap.WithEngine(vidcap.EngineRaster),
//	    vidcap.WithColor(vidcap.ColorLLLA))
type Option func(*captureOptions)

// captureOptions holds optional configuration for Capture creation.
type captureOptions struct {
	color  CaptureColor
	engine Engine
	pixmap *Pixmap
}

// defaultOptions returns the default capture options.
func defaultOptions() captureOptions {
	return captureOptions{
		color:  ColorRGBA,
		engine: EngineAuto,
	}
}

// WithColor sets the capture color, fixing the channel mapping of
// retrieved data for the lifetime of the instance.
func WithColor(c CaptureColor) Option {
	return func(o *captureOptions) {
		o.color = c
	}
}

// WithEngine selects the capture engine. The default is EngineAuto.
func WithEngine(e Engine) Option {
	return func(o *captureOptions) {
		o.engine = e
	}
}

// WithPixmap sets a caller-owned surface for the raster engine. The
// pixmap dimensions should match the capture dimensions; a mismatched
// pixmap is resized (dropping its content). The GPU engine ignores
// this option.
//
// Example:
//
//	pm := vidcap.NewPixmap(640, 360)
//	c, err := vidcap.New(640, 360,
//	    vidcap.WithEngine(vidcap.EngineRaster),
//	    vidcap.WithPixmap(pm))
func WithPixmap(pm *Pixmap) Option {
	return func(o *captureOptions) {
		o.pixmap = pm
	}
}
