//go:build !nogpu

package gpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/vidcap"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

var (
	sharedMu     sync.Mutex
	sharedDevice hal.Device
	sharedQueue  hal.Queue
)

// SetDeviceProvider points new blitters at a shared GPU device from an
// external provider (e.g., gogpu). The provider must implement
// HalDevice() any and HalQueue() any returning hal.Device and hal.Queue.
//
// Blitters created before the call keep the device they opened themselves.
func SetDeviceProvider(provider any) error {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return fmt.Errorf("capture-gpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return fmt.Errorf("capture-gpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return fmt.Errorf("capture-gpu: provider HalQueue is not hal.Queue")
	}

	sharedMu.Lock()
	sharedDevice = device
	sharedQueue = queue
	sharedMu.Unlock()

	vidcap.Logger().Debug("capture blitters switched to shared GPU device")
	return nil
}

// deviceHandles bundles the HAL objects a blitter operates on. When
// external is set the device belongs to the host application and must
// not be destroyed on teardown.
type deviceHandles struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	external bool
}

// acquireDevice returns the shared device when a provider is registered,
// otherwise opens a Vulkan instance and picks the first discrete or
// integrated adapter.
func acquireDevice() (deviceHandles, error) {
	sharedMu.Lock()
	device, queue := sharedDevice, sharedQueue
	sharedMu.Unlock()
	if device != nil {
		return deviceHandles{device: device, queue: queue, external: true}, nil
	}

	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return deviceHandles{}, fmt.Errorf("vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return deviceHandles{}, fmt.Errorf("create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return deviceHandles{}, fmt.Errorf("no GPU adapters found")
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return deviceHandles{}, fmt.Errorf("open device: %w", err)
	}

	vidcap.Logger().Info("GPU device opened", "adapter", selected.Info.Name)
	return deviceHandles{instance: instance, device: openDev.Device, queue: openDev.Queue}, nil
}
