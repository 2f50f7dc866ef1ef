package cubefield

import (
	"fmt"

	"cubefield/internal/scene"
)

// State is the animation loop's lifecycle state.
type State int

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// GroupSpin is the constant per-frame drift of the whole cube group. Motion is tied
// to the display refresh rate, not to elapsed time: a 120 Hz display spins the field
// twice as fast as a 60 Hz one.
var GroupSpin = scene.Rotation{X: 0.0002, Y: 0.0005}

// ErrorHandler receives the error that stopped a running loop.
type ErrorHandler func(err error)

// Loop drives one scene: every frame it spins the cubes and the group, submits the
// frame, and asks the scheduler for the next one. All calls must come from the
// goroutine the scheduler runs callbacks on.
type Loop struct {
	sched    Scheduler
	scene    *scene.Scene
	camera   *scene.Camera
	renderer Renderer
	onError  ErrorHandler

	state State
	err   error

	// token identifies the one frame request this loop may honor. Stop bumps it so a
	// callback already handed to the host is ignored if the host runs it anyway.
	token   uint64
	pending FrameID
	armed   bool

	frames uint64
}

// NewLoop returns an idle loop over scn.
func NewLoop(sched Scheduler, scn *scene.Scene, cam *scene.Camera, r Renderer, onError ErrorHandler) *Loop {
	return &Loop{
		sched:    sched,
		scene:    scn,
		camera:   cam,
		renderer: r,
		onError:  onError,
	}
}

// State returns the current lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Err returns the error that stopped the loop, or nil.
func (l *Loop) Err() error {
	return l.err
}

// Frames returns how many frames have been submitted.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Start begins requesting frames. It is a no-op while running. A loop stopped with
// Stop restarts over the same scene; a loop stopped by a failure stays stopped and
// Start returns an error wrapping ErrStopped and the failure.
func (l *Loop) Start() error {
	switch l.state {
	case Running:
		return nil
	case Stopped:
		if l.err != nil {
			return fmt.Errorf("%w: %w", ErrStopped, l.err)
		}
	}
	l.state = Running
	l.schedule()
	return nil
}

// Stop cancels the pending frame. It takes effect at the next frame boundary; a frame
// already executing finishes. No-op unless running.
func (l *Loop) Stop() {
	if l.state != Running {
		return
	}
	l.state = Stopped
	l.disarm()
}

// Step applies one frame of motion without drawing: every cube spins by its own
// speed, then the group drifts by GroupSpin.
func (l *Loop) Step() {
	g := l.scene.Group
	for _, c := range g.Cubes {
		c.Step()
	}
	g.Rotate(GroupSpin)
}

func (l *Loop) schedule() {
	l.token++
	token := l.token
	l.pending = l.sched.RequestFrame(func() { l.frame(token) })
	l.armed = true
}

func (l *Loop) disarm() {
	l.token++
	if l.armed {
		l.sched.CancelFrame(l.pending)
		l.armed = false
	}
}

func (l *Loop) frame(token uint64) {
	if l.state != Running || token != l.token {
		return
	}
	l.armed = false

	l.Step()
	if err := l.renderer.Render(l.scene, l.camera); err != nil {
		l.fail(err)
		return
	}
	l.frames++

	if l.state == Running {
		l.schedule()
	}
}

func (l *Loop) fail(err error) {
	l.state = Stopped
	l.err = err
	l.disarm()
	if l.onError != nil {
		l.onError(err)
	}
}
