// Package cubefield renders a slowly drifting field of small spinning cubes as an
// ambient backdrop. A Field is driven entirely by its host: the host attaches a
// drawable surface, forwards resize notifications, and runs the frame callbacks the
// Field requests through a Scheduler.
package cubefield

import (
	"cubefield/internal/scene"
)

// Option configures a Field.
type Option func(*Field)

// WithRand places cubes using r instead of a clock-seeded source.
func WithRand(r Rand) Option {
	return func(f *Field) {
		f.rand = r
	}
}

// WithSeed places cubes using a deterministic source for seed.
func WithSeed(seed uint64) Option {
	return WithRand(NewRand(seed))
}

// WithErrorHandler sets the callback that receives the error stopping a running loop
// (for example ErrSurfaceLost).
func WithErrorHandler(h ErrorHandler) Option {
	return func(f *Field) {
		f.onError = h
	}
}

// Field is the ambient cube field component. It owns at most one built scene and one
// animation loop at a time. Not safe for concurrent use: call it from the goroutine
// that runs the scheduler's callbacks.
type Field struct {
	backend Backend
	sched   Scheduler
	rand    Rand
	onError ErrorHandler
	builder *Builder

	viewport scene.Viewport
	surface  Surface
	built    *Built
	loop     *Loop
}

// New returns a detached Field.
func New(backend Backend, sched Scheduler, opts ...Option) *Field {
	f := &Field{backend: backend, sched: sched}
	for _, opt := range opts {
		opt(f)
	}
	f.builder = NewBuilder(backend, f.rand)
	return f
}

// AttachSurface builds the scene for s and starts the loop. The initial viewport is
// the last one passed to OnResize, or the surface size if none was. A Field that is
// already attached is detached first. Build errors wrap ErrResourceCreation and leave
// the Field detached.
func (f *Field) AttachSurface(s Surface) error {
	if f.built != nil {
		f.DetachSurface()
	}
	vp := f.viewport
	if !vp.Valid() && s != nil {
		vp = scene.NewViewport(s.Size())
	}
	built, err := f.builder.Build(s, vp)
	if err != nil {
		return err
	}
	f.viewport = vp
	f.surface = s
	f.built = built
	f.loop = NewLoop(f.sched, built.Scene, built.Camera, built.Renderer, f.onError)
	return f.loop.Start()
}

// DetachSurface stops the loop and releases every GPU resource. Safe to call when
// detached.
func (f *Field) DetachSurface() {
	if f.loop != nil {
		f.loop.Stop()
		f.loop = nil
	}
	if f.built != nil {
		f.built.Release()
		f.built = nil
	}
	f.surface = nil
}

// Start resumes a stopped loop over the already built scene.
func (f *Field) Start() error {
	if f.loop == nil {
		return ErrDetached
	}
	return f.loop.Start()
}

// Stop pauses the loop at the next frame boundary. The scene is kept.
func (f *Field) Stop() {
	if f.loop != nil {
		f.loop.Stop()
	}
}

// Attached reports whether a scene is built.
func (f *Field) Attached() bool {
	return f.built != nil
}

// State returns the loop state, Idle when detached.
func (f *Field) State() State {
	if f.loop == nil {
		return Idle
	}
	return f.loop.State()
}

// Loop returns the current loop, nil when detached.
func (f *Field) Loop() *Loop {
	return f.loop
}

// Scene returns the built scene, nil when detached.
func (f *Field) Scene() *scene.Scene {
	if f.built == nil {
		return nil
	}
	return f.built.Scene
}

// Camera returns the camera, nil when detached.
func (f *Field) Camera() *scene.Camera {
	if f.built == nil {
		return nil
	}
	return f.built.Camera
}

// Viewport returns the last known viewport.
func (f *Field) Viewport() scene.Viewport {
	return f.viewport
}
