//go:build !nogpu

// Package gpu registers the GPU capture engine for hardware-accelerated
// frame blitting.
//
// Import this package to let vidcap.New construct GPU-backed captures.
// Each capture owns a persistent blit pipeline that draws frames as
// textured quads and reads the render target back for retrieval.
//
// If GPU initialization fails (no Vulkan available, shader rejected),
// captures created with EngineAuto fall back to the raster engine;
// captures created with EngineGPU report the error.
//
// Usage:
//
//	import _ "github.com/gogpu/vidcap/gpu" // enable GPU capture
package gpu

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/vidcap"
	gpuimpl "github.com/gogpu/vidcap/internal/gpu"
)

// DeviceHandle provides GPU device access from the host application.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, giving the
// capture API a local name for the interface while staying compatible
// with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

func init() {
	vidcap.RegisterBlitter(func(width, height int, color vidcap.CaptureColor) (vidcap.FrameBlitter, error) {
		return gpuimpl.NewQuadBlitter(width, height, color)
	})
}

// SetDeviceProvider configures capture blitters to use a shared GPU
// device from an external provider (e.g., gogpu). This avoids creating
// a separate GPU instance per capture and enables device sharing with
// the host's renderer.
//
// The provider must also expose HAL access via HalDevice() and
// HalQueue(); captures created before the call keep the device they
// opened themselves.
func SetDeviceProvider(provider DeviceHandle) error {
	return gpuimpl.SetDeviceProvider(provider)
}
