//go:build !nogpu

// Package gpu implements the GPU capture engine on gogpu/wgpu's hardware
// abstraction layer. A persistent render pipeline draws each captured
// frame as a textured quad into an offscreen render target; retrieval
// copies the target through a staging buffer back to the CPU.
package gpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/vidcap"
)

const (
	quadVertexStride  = 16 // vec2<f32> position + vec2<f32> uv
	quadVertexCount   = 4
	quadVertexBufSize = quadVertexCount * quadVertexStride
	quadIndexCount    = 6

	gpuTimeout = 5 * time.Second
)

// pipelineState tracks the blit pipeline through its lifecycle. Frame
// operations require stateValidated; a failed render target rebuild
// moves the pipeline to stateInvalid until Destroy.
type pipelineState uint8

const (
	stateUninitialized pipelineState = iota
	stateConstructed
	stateValidated
	stateInvalid
)

// QuadBlitter renders captured frames into an offscreen render target by
// drawing a single textured quad, then reads the target back over a
// staging buffer. It implements vidcap.FrameBlitter.
//
// All methods must be called from a single goroutine; the capture facade
// serializes access.
type QuadBlitter struct {
	instance       hal.Instance
	device         hal.Device
	queue          hal.Queue
	externalDevice bool // true when using a shared device (don't destroy on teardown)

	state pipelineState
	color vidcap.CaptureColor

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	sampler    hal.Sampler
	pipeline   hal.RenderPipeline

	vertexBuf hal.Buffer
	indexBuf  hal.Buffer

	// Source texture set, recreated when the frame size changes.
	srcTex     hal.Texture
	srcView    hal.TextureView
	srcBind    hal.BindGroup
	srcW, srcH uint32

	// Render target, recreated on Resize.
	dstTex     hal.Texture
	dstView    hal.TextureView
	dstW, dstH uint32
}

var _ vidcap.FrameBlitter = (*QuadBlitter)(nil)

// NewQuadBlitter opens a GPU device (or adopts the shared one), builds
// the blit pipeline for the given color mode, and allocates a width x
// height render target. On any failure the partially built resources are
// released and a descriptive error is returned.
func NewQuadBlitter(width, height int, color vidcap.CaptureColor) (*QuadBlitter, error) {
	handles, err := acquireDevice()
	if err != nil {
		return nil, fmt.Errorf("acquire GPU device: %w", err)
	}

	b := &QuadBlitter{
		instance:       handles.instance,
		device:         handles.device,
		queue:          handles.queue,
		externalDevice: handles.external,
		color:          color,
	}
	if err := b.createPipeline(); err != nil {
		b.Destroy()
		return nil, err
	}
	b.state = stateConstructed

	w, h := uint32(width), uint32(height) //nolint:gosec // dimensions always fit uint32
	if err := b.ensureTarget(w, h); err != nil {
		b.Destroy()
		return nil, err
	}
	b.state = stateValidated

	vidcap.Logger().Debug("GPU blitter ready",
		"width", width, "height", height, "color", color.String())
	return b, nil
}

// createPipeline compiles the blit shader and creates the persistent GPU
// objects: bind group layout, pipeline layout, sampler, render pipeline,
// and the static quad buffers.
func (b *QuadBlitter) createPipeline() error {
	words, err := compileShader(blitShaderSource(b.color))
	if err != nil {
		return fmt.Errorf("compile blit shader: %w", err)
	}

	shader, err := b.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "blit_shader",
		Source: hal.ShaderSource{SPIRV: words},
	})
	if err != nil {
		return fmt.Errorf("create blit shader module: %w", err)
	}
	b.shader = shader

	// Bind group layout:
	//   Binding 0: source frame texture (texture_2d, fragment)
	//   Binding 1: sampler (fragment)
	bindLayout, err := b.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "blit_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create blit bind group layout: %w", err)
	}
	b.bindLayout = bindLayout

	pipeLayout, err := b.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "blit_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{b.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create blit pipeline layout: %w", err)
	}
	b.pipeLayout = pipeLayout

	sampler, err := b.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "blit_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeNearest,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeNearest,
	})
	if err != nil {
		return fmt.Errorf("create blit sampler: %w", err)
	}
	b.sampler = sampler

	pipeline, err := b.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "blit_pipeline",
		Layout: b.pipeLayout,
		Vertex: hal.VertexState{
			Module:     b.shader,
			EntryPoint: "vs_main",
			Buffers:    blitVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     b.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{{
				Format:    gputypes.TextureFormatRGBA8Unorm,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create blit pipeline: %w", err)
	}
	b.pipeline = pipeline

	vertexBuf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "blit_quad_verts",
		Size:  quadVertexBufSize,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create quad vertex buffer: %w", err)
	}
	b.vertexBuf = vertexBuf

	indexData := quadIndexBytes()
	indexBuf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "blit_quad_indices",
		Size:  uint64(len(indexData)),
		Usage: gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create quad index buffer: %w", err)
	}
	b.indexBuf = indexBuf
	b.queue.WriteBuffer(b.indexBuf, 0, indexData)

	return nil
}

// Resize rebuilds the render target at the new dimensions. The fresh
// target starts out transparent black; previous content is dropped.
func (b *QuadBlitter) Resize(width, height int) error {
	if err := b.ready(); err != nil {
		return err
	}
	w, h := uint32(width), uint32(height) //nolint:gosec // dimensions always fit uint32
	if err := b.ensureTarget(w, h); err != nil {
		b.state = stateInvalid
		return err
	}
	return nil
}

// Blit uploads the frame to the source texture and draws it as a quad
// covering vp on the render target. When clear is set the target is
// cleared to transparent black in the same pass, so stale margins never
// survive a partial draw.
func (b *QuadBlitter) Blit(frame *image.RGBA, vp vidcap.Viewport, clear bool) error {
	if err := b.ready(); err != nil {
		return err
	}
	if b.dstTex == nil || vp.W <= 0 || vp.H <= 0 {
		return nil
	}

	fw, fh := frame.Rect.Dx(), frame.Rect.Dy()
	w, h := uint32(fw), uint32(fh) //nolint:gosec // frame dimensions always fit uint32
	if err := b.ensureSource(w, h); err != nil {
		return err
	}

	b.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  b.srcTex,
			MipLevel: 0,
		},
		tightFrameBytes(frame),
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  w * 4,
			RowsPerImage: h,
		},
		&hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	)
	b.queue.WriteBuffer(b.vertexBuf, 0, quadVertexBytes(vp, b.dstW, b.dstH))

	loadOp := gputypes.LoadOpLoad
	if clear {
		loadOp = gputypes.LoadOpClear
	}

	encoder, err := b.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "blit_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("blit_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "blit_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       b.dstView,
			LoadOp:     loadOp,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: 0, G: 0, B: 0, A: 0},
		}},
	})
	rp.SetPipeline(b.pipeline)
	rp.SetBindGroup(0, b.srcBind, nil)
	rp.SetVertexBuffer(0, b.vertexBuf, 0)
	rp.SetIndexBuffer(b.indexBuf, gputypes.IndexFormatUint16, 0)
	rp.DrawIndexed(quadIndexCount, 1, 0, 0, 0)
	rp.End()

	return b.submit(encoder)
}

// ReadPixels copies the render target into dst as tightly packed RGBA
// rows, top row first. dst must hold exactly width*height*4 bytes.
func (b *QuadBlitter) ReadPixels(dst []byte) error {
	if err := b.ready(); err != nil {
		return err
	}
	want := int(b.dstW) * int(b.dstH) * 4
	if len(dst) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", vidcap.ErrBufferSize, len(dst), want)
	}
	if want == 0 {
		return nil
	}

	// WebGPU (and DX12) requires BytesPerRow aligned to 256 bytes.
	bytesPerRow := b.dstW * 4
	const copyPitchAlignment = 256
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	stagingSize := uint64(alignedBytesPerRow) * uint64(b.dstH)

	encoder, err := b.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "readback_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("readback"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	// The target sits in RenderAttachment usage between frames;
	// CopyTextureToBuffer requires CopySrc. Transition, copy, then
	// transition back so the next render pass sees the expected usage.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: b.dstTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	staging, err := b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "readback_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return fmt.Errorf("create staging buffer: %w", err)
	}
	defer b.device.DestroyBuffer(staging)

	encoder.CopyTextureToBuffer(b.dstTex, staging, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: b.dstH},
		TextureBase:  hal.ImageCopyTexture{Texture: b.dstTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: b.dstW, Height: b.dstH, DepthOrArrayLayers: 1},
	}})

	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: b.dstTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	if err := b.submit(encoder); err != nil {
		return err
	}

	readback := make([]byte, stagingSize)
	if err := b.queue.ReadBuffer(staging, 0, readback); err != nil {
		return fmt.Errorf("readback: %w", err)
	}

	if alignedBytesPerRow == bytesPerRow {
		copy(dst, readback[:want])
		return nil
	}
	// Strip per-row padding from the aligned readback data.
	for row := uint32(0); row < b.dstH; row++ {
		srcOff := int(row) * int(alignedBytesPerRow)
		dstOff := int(row) * int(bytesPerRow)
		copy(dst[dstOff:dstOff+int(bytesPerRow)], readback[srcOff:srcOff+int(bytesPerRow)])
	}
	return nil
}

// Clear resets the render target to transparent black.
func (b *QuadBlitter) Clear() error {
	if err := b.ready(); err != nil {
		return err
	}
	if b.dstTex == nil {
		return nil
	}
	return b.clearTarget()
}

// Destroy releases all GPU resources in reverse creation order. Safe to
// call multiple times. A device opened by the blitter is destroyed with
// it; a shared device is left alone.
func (b *QuadBlitter) Destroy() {
	if b.device != nil {
		b.destroySource()
		b.destroyTarget()
		if b.indexBuf != nil {
			b.device.DestroyBuffer(b.indexBuf)
			b.indexBuf = nil
		}
		if b.vertexBuf != nil {
			b.device.DestroyBuffer(b.vertexBuf)
			b.vertexBuf = nil
		}
		if b.pipeline != nil {
			b.device.DestroyRenderPipeline(b.pipeline)
			b.pipeline = nil
		}
		if b.sampler != nil {
			b.device.DestroySampler(b.sampler)
			b.sampler = nil
		}
		if b.pipeLayout != nil {
			b.device.DestroyPipelineLayout(b.pipeLayout)
			b.pipeLayout = nil
		}
		if b.bindLayout != nil {
			b.device.DestroyBindGroupLayout(b.bindLayout)
			b.bindLayout = nil
		}
		if b.shader != nil {
			b.device.DestroyShaderModule(b.shader)
			b.shader = nil
		}
		if !b.externalDevice {
			b.device.Destroy()
		}
	}
	b.device = nil
	b.queue = nil
	if b.instance != nil && !b.externalDevice {
		b.instance.Destroy()
	}
	b.instance = nil
	b.externalDevice = false
	b.state = stateUninitialized
}

func (b *QuadBlitter) ready() error {
	switch b.state {
	case stateValidated:
		return nil
	case stateInvalid:
		return errors.New("blit pipeline is invalid")
	default:
		return errors.New("blit pipeline is not initialized")
	}
}

// ensureTarget recreates the render target when the requested dimensions
// differ from the current ones. A zero-size target allocates nothing;
// frame operations then no-op until the next resize. Fresh textures have
// undefined contents, so the new target is cleared before use.
func (b *QuadBlitter) ensureTarget(w, h uint32) error {
	if b.dstW == w && b.dstH == h && (b.dstTex != nil || w == 0 || h == 0) {
		return nil
	}
	b.destroyTarget()
	b.dstW, b.dstH = 0, 0
	if w == 0 || h == 0 {
		b.dstW, b.dstH = w, h
		return nil
	}

	tex, err := b.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "blit_target",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create target texture: %w", err)
	}
	b.dstTex = tex

	view, err := b.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "blit_target_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		b.destroyTarget()
		return fmt.Errorf("create target view: %w", err)
	}
	b.dstView = view

	b.dstW, b.dstH = w, h
	return b.clearTarget()
}

// ensureSource recreates the source texture set when the incoming frame
// size changes. The bind group is rebuilt alongside the view.
func (b *QuadBlitter) ensureSource(w, h uint32) error {
	if b.srcTex != nil && b.srcW == w && b.srcH == h {
		return nil
	}
	b.destroySource()

	tex, err := b.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "blit_source",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create source texture: %w", err)
	}
	b.srcTex = tex

	view, err := b.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "blit_source_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		b.destroySource()
		return fmt.Errorf("create source view: %w", err)
	}
	b.srcView = view

	bind, err := b.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "blit_bind",
		Layout: b.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.TextureViewBinding{
				TextureView: gputypes.TextureViewHandle(view.NativeHandle()),
			}},
			{Binding: 1, Resource: gputypes.SamplerBinding{
				Sampler: gputypes.SamplerHandle(b.sampler.NativeHandle()),
			}},
		},
	})
	if err != nil {
		b.destroySource()
		return fmt.Errorf("create blit bind group: %w", err)
	}
	b.srcBind = bind

	b.srcW, b.srcH = w, h
	return nil
}

func (b *QuadBlitter) destroySource() {
	if b.srcBind != nil {
		b.device.DestroyBindGroup(b.srcBind)
		b.srcBind = nil
	}
	if b.srcView != nil {
		b.device.DestroyTextureView(b.srcView)
		b.srcView = nil
	}
	if b.srcTex != nil {
		b.device.DestroyTexture(b.srcTex)
		b.srcTex = nil
	}
	b.srcW, b.srcH = 0, 0
}

func (b *QuadBlitter) destroyTarget() {
	if b.dstView != nil {
		b.device.DestroyTextureView(b.dstView)
		b.dstView = nil
	}
	if b.dstTex != nil {
		b.device.DestroyTexture(b.dstTex)
		b.dstTex = nil
	}
}

// clearTarget runs an empty render pass with a clear load op.
func (b *QuadBlitter) clearTarget() error {
	encoder, err := b.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "clear_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("clear_target"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "clear_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       b.dstView,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: 0, G: 0, B: 0, A: 0},
		}},
	})
	rp.End()
	return b.submit(encoder)
}

// submit finishes encoding, submits the command buffer, and blocks until
// the fence signals.
func (b *QuadBlitter) submit(encoder hal.CommandEncoder) error {
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer b.device.FreeCommandBuffer(cmdBuf)

	fence, err := b.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer b.device.DestroyFence(fence)

	if err := b.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := b.device.Wait(fence, 1, gpuTimeout)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}
	return nil
}

// blitVertexLayout returns the vertex buffer layout for the blit quad:
// clip-space position and texture coordinate, both vec2<f32>.
func blitVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{{
		ArrayStride: quadVertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
		},
	}}
}

// quadVertexBytes builds the four quad vertices for a placement rect in
// pixel coordinates on a dstW x dstH target. Pixel row 0 maps to clip
// y=+1 and texture v=0 carries the frame's top row, so the blit keeps
// top-left origin end to end. Rects extending past the target are
// clipped by rasterization, which realizes viewport-style cropping.
func quadVertexBytes(vp vidcap.Viewport, dstW, dstH uint32) []byte {
	w := float32(dstW)
	h := float32(dstH)
	x0 := 2*float32(vp.X)/w - 1
	x1 := 2*float32(vp.X+vp.W)/w - 1
	y0 := 1 - 2*float32(vp.Y)/h
	y1 := 1 - 2*float32(vp.Y+vp.H)/h

	// x, y, u, v per corner: top-left, top-right, bottom-right, bottom-left.
	verts := [quadVertexCount * 4]float32{
		x0, y0, 0, 0,
		x1, y0, 1, 0,
		x1, y1, 1, 1,
		x0, y1, 0, 1,
	}
	buf := make([]byte, quadVertexBufSize)
	for i, f := range verts {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// quadIndexBytes returns the little-endian uint16 indices for the two
// triangles of the blit quad.
func quadIndexBytes() []byte {
	indices := [quadIndexCount]uint16{0, 1, 2, 0, 2, 3}
	buf := make([]byte, len(indices)*2)
	for i, idx := range indices {
		binary.LittleEndian.PutUint16(buf[i*2:], idx)
	}
	return buf
}

// tightFrameBytes returns the frame's pixels packed to a width*4 stride,
// reusing the backing slice when the layout already matches.
func tightFrameBytes(frame *image.RGBA) []byte {
	w, h := frame.Rect.Dx(), frame.Rect.Dy()
	if frame.Stride == w*4 && frame.Rect.Min == (image.Point{}) {
		return frame.Pix[: w*h*4 : w*h*4]
	}
	buf := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		off := frame.PixOffset(frame.Rect.Min.X, frame.Rect.Min.Y+y)
		copy(buf[y*w*4:(y+1)*w*4], frame.Pix[off:off+w*4])
	}
	return buf
}
