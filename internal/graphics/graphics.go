package graphics

import (
	"errors"

	"cubefield/internal/cubefield"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options controls how the window is opened. Zero Width/Height open at the primary
// monitor size.
type Options struct {
	Width       int
	Height      int
	Title       string
	TargetFPS   int
	Fullscreen  bool
	Transparent bool // clear to a see-through framebuffer so whatever is behind the window shows between cubes
	MSAA        bool
}

type frameRequest struct {
	id cubefield.FrameID
	fn func()
}

// Window is the raylib window acting as the cube field's host: it is the drawable
// Surface, the display-refresh Scheduler, and the source of resize events.
// All methods must be called from the goroutine that opened it.
type Window struct {
	next    cubefield.FrameID
	pending []frameRequest
	closed  bool
}

// Open creates the window and the OpenGL context. The window is resizable so the
// host can forward resize events to the cube field.
func Open(opts Options) (*Window, error) {
	flags := uint32(rl.FlagWindowResizable)
	if opts.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	if opts.Transparent {
		flags |= rl.FlagWindowTransparent
	}
	if opts.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = 0, 0 // raylib uses the monitor size
	}
	rl.InitWindow(int32(width), int32(height), opts.Title)
	if !rl.IsWindowReady() {
		return nil, errors.New("graphics: window could not be created")
	}
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}
	return &Window{}, nil
}

// Size returns the framebuffer size in device pixels.
func (w *Window) Size() (width, height int) {
	return rl.GetRenderWidth(), rl.GetRenderHeight()
}

// Ready reports whether the window is still open.
func (w *Window) Ready() bool {
	return !w.closed && rl.IsWindowReady()
}

// RequestFrame queues fn to run during the next loop iteration, between BeginDrawing
// and EndDrawing.
func (w *Window) RequestFrame(fn func()) cubefield.FrameID {
	w.next++
	w.pending = append(w.pending, frameRequest{id: w.next, fn: fn})
	return w.next
}

// CancelFrame drops a queued request. Unknown or already run ids are ignored.
func (w *Window) CancelFrame(id cubefield.FrameID) {
	for i, r := range w.pending {
		if r.id == id {
			w.pending = append(w.pending[:i], w.pending[i+1:]...)
			return
		}
	}
}

// Run drives the window until it is asked to close. Each iteration it first reports
// a resize (so the very next frame draws with the new size), then clears the
// framebuffer, runs the frame requests queued before this iteration, and draws the
// overlay on top. Requests made while running are served next iteration.
func (w *Window) Run(onResize func(width, height int), overlay func()) {
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() && onResize != nil {
			onResize(w.Size())
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Blank)
		due := w.pending
		w.pending = nil
		for _, r := range due {
			r.fn()
		}
		if overlay != nil {
			overlay()
		}
		rl.EndDrawing()
	}
}

// Close drops every queued frame and destroys the window. Renderers bound to it
// report cubefield.ErrSurfaceLost afterwards.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.pending = nil
	rl.CloseWindow()
}
