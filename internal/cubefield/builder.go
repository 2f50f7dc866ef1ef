package cubefield

import (
	"errors"
	"fmt"

	"cubefield/internal/scene"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// CubeCount is fixed for the lifetime of a scene.
	CubeCount = 150

	// Placement box: x in [-7.5,7.5), y in [-5,5), z in [-20,0).
	spreadX = 15
	spreadY = 10
	spreadZ = 20
	offsetZ = -10

	// spinRange is the width of the per-axis speed interval [-0.0025,0.0025).
	spinRange = 0.005
)

// Built is everything one successful Build produced. Release frees the GPU side.
type Built struct {
	Scene    *scene.Scene
	Camera   *scene.Camera
	Renderer Renderer
}

// Release frees the renderer, geometry and material. Safe to call more than once.
func (b *Built) Release() {
	if b.Renderer != nil {
		b.Renderer.Release()
		b.Renderer = nil
	}
	if b.Scene == nil {
		return
	}
	if b.Scene.GeometryHandle != nil {
		b.Scene.GeometryHandle.Release()
		b.Scene.GeometryHandle = nil
	}
	if b.Scene.MaterialHandle != nil {
		b.Scene.MaterialHandle.Release()
		b.Scene.MaterialHandle = nil
	}
}

// Builder constructs a scene once per surface.
type Builder struct {
	backend Backend
	rand    Rand
}

// NewBuilder returns a builder allocating through backend and placing cubes with r.
// A nil r uses a clock-seeded source.
func NewBuilder(backend Backend, r Rand) *Builder {
	if r == nil {
		r = clockRand()
	}
	return &Builder{backend: backend, rand: r}
}

// Build creates the renderer, the shared geometry and material, the camera, the
// lights and the cubes. Either everything is created or nothing is: on failure the
// resources created so far are released and the error wraps ErrResourceCreation.
func (b *Builder) Build(s Surface, vp scene.Viewport) (*Built, error) {
	if s == nil {
		return nil, resourceError("surface", errors.New("no surface"))
	}
	if !s.Ready() {
		return nil, resourceError("surface", errors.New("surface not ready"))
	}
	if !vp.Valid() {
		return nil, resourceError("surface", fmt.Errorf("invalid viewport %vx%v", vp.Width, vp.Height))
	}

	built := &Built{}
	r, err := b.backend.CreateRenderer(s, vp)
	if err != nil {
		return nil, resourceError("renderer", err)
	}
	built.Renderer = r

	scn := b.NewScene()
	built.Scene = scn
	scn.GeometryHandle, err = b.backend.CreateGeometry(scn.Geometry)
	if err != nil {
		built.Release()
		return nil, resourceError("geometry", err)
	}
	scn.MaterialHandle, err = b.backend.CreateMaterial(scn.Material)
	if err != nil {
		built.Release()
		return nil, resourceError("material", err)
	}

	built.Camera = NewCamera(vp)
	return built, nil
}

// NewCamera returns the backdrop camera for vp.
func NewCamera(vp scene.Viewport) *scene.Camera {
	cam := scene.NewPerspectiveCamera(scene.DefaultFieldOfView, vp.Aspect(), scene.DefaultNear, scene.DefaultFar)
	cam.Position = mgl32.Vec3{0, 0, scene.DefaultCameraZ}
	return cam
}

// NewScene returns a scene with the fixed lights and CubeCount randomly placed cubes.
// It allocates no GPU resources.
func (b *Builder) NewScene() *scene.Scene {
	scn := scene.New(CubeCount)
	for i := 0; i < CubeCount; i++ {
		scn.Group.Add(b.newCube())
	}
	return scn
}

// newCube draws position, rotation and speed in a fixed order so a seeded source
// always yields the same layout.
func (b *Builder) newCube() *scene.Cube {
	c := &scene.Cube{}
	c.Position = mgl32.Vec3{
		b.centered() * spreadX,
		b.centered() * spreadY,
		b.centered()*spreadZ + offsetZ,
	}
	c.Rotation = scene.Rotation{
		X: b.rand.Float32() * math32.Pi,
		Y: b.rand.Float32() * math32.Pi,
	}
	c.Speed = scene.Rotation{
		X: b.centered() * spinRange,
		Y: b.centered() * spinRange,
	}
	return c
}

// centered returns a value in [-0.5,0.5).
func (b *Builder) centered() float32 {
	return b.rand.Float32() - 0.5
}
