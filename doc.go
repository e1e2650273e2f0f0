// Package vidcap captures video frames onto a persistent surface and
// returns the pixels as tightly packed byte buffers.
//
// # Overview
//
// vidcap takes frames from a Source (a screen grabber, a decoded
// stream, a static image) and places them onto a destination surface
// under one of four capture modes: Put, Fill, Adjust and Pinhole. The
// surface is then read back as 4-byte-per-pixel data in one of three
// channel layouts (RGBA, RGBL, LLLA). Frames are drawn either by a
// GPU blit pipeline built on gogpu/wgpu, or by an in-memory raster
// engine; both produce the same results.
//
// # Quick Start
//
//	import "github.com/gogpu/vidcap"
//
//	// Create a capture with a 640×360 destination surface
//	c, err := vidcap.New(640, 360)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	// Grab a frame, aspect-preserving center crop
//	pixels, err := c.Read(source, vidcap.Pinhole)
//
// # Capture Modes
//
//   - Put(x, y): frame at its own size at an offset; overflow cropped
//   - Fill: frame stretched over the whole surface
//   - Adjust: surface resized to the frame size, drawn 1:1 (default)
//   - Pinhole: aspect-preserving cover, centered, overflow cropped
//
// # Engines
//
// The raster engine works everywhere. The GPU engine is enabled by a
// blank import and selected automatically when a device is available:
//
//	import _ "github.com/gogpu/vidcap/gpu"
//
// # Coordinate System
//
// Retrieved data is row-major with the origin at the top-left, X
// increasing right and Y increasing down, regardless of engine.
//
// # Concurrency
//
// A Capture instance is single-threaded: calls are cheap and
// synchronous, and the caller serializes access. The package-level
// registration points (SetLogger, RegisterBlitter) are safe for
// concurrent use.
package vidcap

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
