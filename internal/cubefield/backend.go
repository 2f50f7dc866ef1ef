package cubefield

import (
	"math/rand/v2"
	"time"

	"cubefield/internal/scene"
)

// Surface is the platform drawable the cube field renders onto (a window, a canvas).
type Surface interface {
	// Size returns the current drawable size in device pixels.
	Size() (width, height int)
	// Ready reports whether the surface can still accept frames. A destroyed or closed
	// surface returns false.
	Ready() bool
}

// Backend allocates the GPU-backed objects of a scene. Camera, lights and the cube
// group carry no GPU state and are built as plain values; only the renderer, the
// shared geometry buffer and the shared material go through the backend, so a fake
// Backend is enough to exercise the whole core.
type Backend interface {
	// CreateRenderer binds a renderer to the surface, sized to vp, clearing to a
	// transparent background.
	CreateRenderer(s Surface, vp scene.Viewport) (Renderer, error)
	CreateGeometry(g scene.BoxGeometry) (scene.Resource, error)
	CreateMaterial(m scene.PhongMaterial) (scene.Resource, error)
}

// Renderer draws frames onto one surface.
type Renderer interface {
	// SetSize resizes the render target to width×height device pixels.
	SetSize(width, height int)
	// Render submits one frame. It returns an error wrapping ErrSurfaceLost once the
	// surface is gone.
	Render(s *scene.Scene, cam *scene.Camera) error
	// Release frees the render target. The renderer is unusable afterwards.
	Release()
}

// FrameID identifies one pending frame request.
type FrameID uint64

// Scheduler is the host's display-refresh primitive: RequestFrame runs fn once, on the
// host's loop, at the next refresh. CancelFrame withdraws a request that has not run.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// Rand is the random source cube placement draws from. Float32 returns a value in the
// half-open interval [0,1). *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float32() float32
}

// NewRand returns a deterministic PCG source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// clockRand returns a source seeded from the wall clock, so each run has a new layout.
func clockRand() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
}
