package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestViewportAspect(t *testing.T) {
	vp := NewViewport(800, 600)
	assert.Equal(t, float32(800)/float32(600), vp.Aspect())
	assert.True(t, vp.Valid())
	assert.False(t, NewViewport(0, 0).Valid())
	assert.False(t, NewViewport(100, 0).Valid())

	w, h := Viewport{Width: 1600.7, Height: 600.2}.Pixels()
	assert.Equal(t, 1600, w)
	assert.Equal(t, 600, h)
}

func TestCameraSetAspect(t *testing.T) {
	c := NewPerspectiveCamera(DefaultFieldOfView, 1, DefaultNear, DefaultFar)
	c.SetAspect(NewViewport(1600, 600))
	assert.Equal(t, float32(1600)/float32(600), c.Aspect)

	want := mgl32.Perspective(mgl32.DegToRad(75), c.Aspect, 0.1, 1000)
	assert.Equal(t, want, c.Projection())
}

func TestCameraViewLooksDownNegativeZ(t *testing.T) {
	c := NewPerspectiveCamera(DefaultFieldOfView, 1, DefaultNear, DefaultFar)
	c.Position = mgl32.Vec3{0, 0, DefaultCameraZ}

	// A point straight ahead lands on the camera's -Z axis in view space.
	p := c.View().Mul4x1(mgl32.Vec4{0, 0, -10, 1})
	assert.InDelta(t, 0, p.X(), 1e-5)
	assert.InDelta(t, 0, p.Y(), 1e-5)
	assert.InDelta(t, -15, p.Z(), 1e-5)
}

func TestCubeStep(t *testing.T) {
	c := &Cube{Rotation: Rotation{X: 1, Y: 2}, Speed: Rotation{X: 0.25, Y: -0.5}}
	for i := 0; i < 4; i++ {
		c.Step()
	}
	assert.Equal(t, Rotation{X: 2, Y: 0}, c.Rotation)
	assert.Equal(t, Rotation{X: 0.25, Y: -0.5}, c.Speed)
}

func TestGroupWorld(t *testing.T) {
	g := NewGroup(1)
	c := &Cube{Position: mgl32.Vec3{1, 0, 0}}
	g.Add(c)
	assert.Equal(t, 1, g.Len())

	// Quarter turn about Y moves +X to -Z.
	g.Rotate(Rotation{Y: mgl32.DegToRad(90)})
	p := g.World(c).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, p.X(), 1e-5)
	assert.InDelta(t, -1, p.Z(), 1e-5)
}

func TestColorRGB(t *testing.T) {
	r, g, b := Color(0xff8000).RGB()
	assert.Equal(t, float32(1), r)
	assert.InDelta(t, 128.0/255, g, 1e-6)
	assert.Equal(t, float32(0), b)

	assert.InDelta(t, 0.25*5, Color(0x404040).Scaled(5)[0], 1e-2)
}

func TestNewSceneFixedParameters(t *testing.T) {
	s := New(150)
	assert.Equal(t, DefaultAmbient, s.Ambient)
	assert.Equal(t, DefaultDirectional, s.Directional)
	assert.Equal(t, BoxGeometry{Width: 0.1, Height: 0.1, Depth: 0.1}, s.Geometry)
	assert.True(t, s.Material.FlatShading)
	assert.Equal(t, 0, s.Group.Len())
	assert.Equal(t, 150, cap(s.Group.Cubes))
	assert.InDelta(t, 1, s.Directional.Direction().Len(), 1e-6)
}
