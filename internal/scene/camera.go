package scene

import "github.com/go-gl/mathgl/mgl32"

const (
	// DefaultFieldOfView is the vertical field of view in degrees.
	DefaultFieldOfView = 75
	DefaultNear        = 0.1
	DefaultFar         = 1000
	// DefaultCameraZ places the camera in front of the cube field, looking down -Z.
	DefaultCameraZ = 5
)

// Camera is a perspective projection looking down -Z from Position.
// Aspect is the only field that changes after creation (on resize).
type Camera struct {
	FieldOfView float32 // degrees, vertical
	Aspect      float32
	Near        float32
	Far         float32
	Position    mgl32.Vec3
}

// NewPerspectiveCamera returns a camera at the origin with the given projection parameters.
func NewPerspectiveCamera(fov, aspect, near, far float32) *Camera {
	return &Camera{
		FieldOfView: fov,
		Aspect:      aspect,
		Near:        near,
		Far:         far,
	}
}

// SetAspect recomputes Aspect from the viewport.
func (c *Camera) SetAspect(vp Viewport) {
	c.Aspect = vp.Aspect()
}

// Projection returns the perspective projection matrix for the current aspect ratio.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FieldOfView), c.Aspect, c.Near, c.Far)
}

// Target returns the point one unit in front of the camera.
func (c *Camera) Target() mgl32.Vec3 {
	return c.Position.Sub(mgl32.Vec3{0, 0, 1})
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target(), mgl32.Vec3{0, 1, 0})
}
