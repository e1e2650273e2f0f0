// Command vidcapdemo exercises the vidcap capture pipeline. It feeds a
// sequence of frames from a synthetic test pattern or a live X11 screen
// grab through a Capture and writes every retrieved surface as a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/gogpu/vidcap"
	"github.com/gogpu/vidcap/source/x11"

	// Register the GPU capture engine.
	_ "github.com/gogpu/vidcap/gpu"
)

func main() {
	var (
		width  = flag.Int("width", 640, "surface width")
		height = flag.Int("height", 360, "surface height")
		mode   = flag.String("mode", "pinhole", "capture mode: put, fill, adjust, pinhole")
		dx     = flag.Int("dx", 0, "put mode x offset")
		dy     = flag.Int("dy", 0, "put mode y offset")
		color  = flag.String("color", "rgba", "capture color: rgba, rgbl, llla")
		engine = flag.String("engine", "auto", "capture engine: auto, gpu, raster")
		source = flag.String("source", "pattern", "frame source: pattern, screen")
		frames = flag.Int("frames", 1, "number of frames to capture")
		output = flag.String("output", "capture", "output file prefix")
	)
	flag.Parse()

	m, err := parseMode(*mode, *dx, *dy)
	if err != nil {
		log.Fatalf("Bad -mode: %v", err)
	}
	cc, err := parseColor(*color)
	if err != nil {
		log.Fatalf("Bad -color: %v", err)
	}
	eng, err := parseEngine(*engine)
	if err != nil {
		log.Fatalf("Bad -engine: %v", err)
	}

	src, cleanup, err := openSource(*source)
	if err != nil {
		log.Fatalf("Failed to open source: %v", err)
	}
	defer cleanup()

	c, err := vidcap.New(*width, *height,
		vidcap.WithColor(cc),
		vidcap.WithEngine(eng))
	if err != nil {
		log.Fatalf("Failed to create capture: %v", err)
	}
	defer c.Close()

	log.Printf("Capturing with %s engine, mode %s, color %s", c.Engine(), m, cc)

	for i := 0; i < *frames; i++ {
		if p, ok := src.(*vidcap.PatternSource); ok {
			p.Advance()
		}

		outW, outH, err := c.Capture(src, m)
		if err != nil {
			log.Fatalf("Capture failed: %v", err)
		}

		img, err := c.Image()
		if err != nil {
			log.Fatalf("Retrieve failed: %v", err)
		}

		name := fmt.Sprintf("%s_%03d.png", *output, i)
		if err := writePNG(name, img); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Frame %d: output %dx%d, surface %dx%d, saved %s",
			i, outW, outH, c.Width(), c.Height(), name)
	}
}

// parseMode maps a mode name to its CaptureMode. The put offsets only
// apply to put mode.
func parseMode(name string, dx, dy int) (vidcap.CaptureMode, error) {
	switch strings.ToLower(name) {
	case "put":
		return vidcap.Put(dx, dy), nil
	case "fill":
		return vidcap.Fill, nil
	case "adjust":
		return vidcap.Adjust, nil
	case "pinhole":
		return vidcap.Pinhole, nil
	default:
		return vidcap.CaptureMode{}, fmt.Errorf("unknown mode %q", name)
	}
}

func parseColor(name string) (vidcap.CaptureColor, error) {
	switch strings.ToLower(name) {
	case "rgba":
		return vidcap.ColorRGBA, nil
	case "rgbl":
		return vidcap.ColorRGBL, nil
	case "llla":
		return vidcap.ColorLLLA, nil
	default:
		return 0, fmt.Errorf("unknown color %q", name)
	}
}

func parseEngine(name string) (vidcap.Engine, error) {
	switch strings.ToLower(name) {
	case "auto":
		return vidcap.EngineAuto, nil
	case "gpu":
		return vidcap.EngineGPU, nil
	case "raster":
		return vidcap.EngineRaster, nil
	default:
		return 0, fmt.Errorf("unknown engine %q", name)
	}
}

// openSource builds the requested frame source. The cleanup func
// releases whatever the source holds open.
func openSource(name string) (vidcap.Source, func(), error) {
	switch strings.ToLower(name) {
	case "pattern":
		return vidcap.NewPatternSource(1280, 720), func() {}, nil
	case "screen":
		src, err := x11.NewScreenSource(image.Rectangle{})
		if err != nil {
			return nil, nil, err
		}
		return src, func() { _ = src.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown source %q", name)
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
