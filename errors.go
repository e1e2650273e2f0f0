package vidcap

import "errors"

// ErrClosed is returned by operations on a Capture after Close.
var ErrClosed = errors.New("vidcap: capture is closed")

// ErrBufferSize is returned by Retrieve when the destination buffer
// length does not equal BufferSize. The buffer is never truncated or
// partially filled.
var ErrBufferSize = errors.New("vidcap: buffer size mismatch")

// ErrNoGPU is returned by New with EngineGPU when no blitter factory
// is registered. Enable the GPU engine via blank import:
//
//	import _ "github.com/gogpu/vidcap/gpu"
var ErrNoGPU = errors.New("vidcap: no GPU blitter registered")

// ErrValidation indicates GPU pipeline construction or validation
// failed. Errors wrapping ErrValidation carry the underlying detail
// (shader compile output, device errors). An instance that failed
// validation must be discarded.
var ErrValidation = errors.New("vidcap: pipeline validation failed")
