package graphics

import (
	"errors"
	"fmt"

	"cubefield/internal/cubefield"
	"cubefield/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

var errNoContext = errors.New("graphics: no OpenGL context (window not open)")

// Backend allocates raylib GPU resources for the cube field. It requires an open
// Window: meshes and shaders can only be created once the OpenGL context exists.
type Backend struct{}

// NewBackend returns the raylib backend.
func NewBackend() *Backend {
	return &Backend{}
}

// CreateRenderer binds a renderer to s, which must be a *Window.
func (b *Backend) CreateRenderer(s cubefield.Surface, vp scene.Viewport) (cubefield.Renderer, error) {
	win, ok := s.(*Window)
	if !ok {
		return nil, fmt.Errorf("graphics: unsupported surface %T", s)
	}
	if !win.Ready() {
		return nil, errNoContext
	}
	r := &Renderer{win: win}
	r.SetSize(vp.Pixels())
	return r, nil
}

// CreateGeometry uploads a box mesh.
func (b *Backend) CreateGeometry(g scene.BoxGeometry) (scene.Resource, error) {
	if !rl.IsWindowReady() {
		return nil, errNoContext
	}
	mesh := rl.GenMeshCube(g.Width, g.Height, g.Depth)
	if mesh.VertexCount == 0 {
		return nil, errors.New("graphics: cube mesh upload failed")
	}
	return &Mesh{mesh: mesh}, nil
}

// CreateMaterial compiles the Phong shader and binds it to a default material tinted
// with m.Color.
func (b *Backend) CreateMaterial(m scene.PhongMaterial) (scene.Resource, error) {
	if !rl.IsWindowReady() {
		return nil, errNoContext
	}
	return newMaterial(m)
}

// Mesh is an uploaded raylib mesh.
type Mesh struct {
	mesh     rl.Mesh
	released bool
}

// Release unloads the mesh from the GPU.
func (m *Mesh) Release() {
	if m.released {
		return
	}
	m.released = true
	rl.UnloadMesh(&m.mesh)
}

// Renderer draws a cube field scene into its window. Frames are drawn inside the
// window's BeginDrawing/EndDrawing pair (see Window.Run).
type Renderer struct {
	win      *Window
	width    int
	height   int
	released bool
}

// SetSize resizes the window to width×height unless it already has that size, which
// is the case when the resize came from the user dragging the window.
func (r *Renderer) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	if !r.win.Ready() || rl.IsWindowFullscreen() {
		return
	}
	if cw, ch := r.win.Size(); cw == width && ch == height {
		return
	}
	rl.SetWindowSize(width, height)
}

// Render draws every cube of s as seen by cam.
func (r *Renderer) Render(s *scene.Scene, cam *scene.Camera) error {
	if r.released || !r.win.Ready() {
		return fmt.Errorf("%w: window closed", cubefield.ErrSurfaceLost)
	}
	mesh, ok := s.GeometryHandle.(*Mesh)
	if !ok || mesh.released {
		return fmt.Errorf("graphics: scene geometry %T was not created by this backend", s.GeometryHandle)
	}
	mtl, ok := s.MaterialHandle.(*Material)
	if !ok || mtl.released {
		return fmt.Errorf("graphics: scene material %T was not created by this backend", s.MaterialHandle)
	}

	mtl.setUniforms(s, cam)
	rl.ClearBackground(background(s))
	rl.BeginMode3D(camera3D(cam))
	// BeginMode3D derives the projection from the framebuffer; use the camera's own so
	// its aspect, near and far planes apply.
	rl.SetMatrixProjection(toMatrix(cam.Projection()))
	for _, c := range s.Group.Cubes {
		rl.DrawMesh(mesh.mesh, mtl.mtl, toMatrix(s.Group.World(c)))
	}
	rl.EndMode3D()
	return nil
}

// Release detaches the renderer from its window. The window itself belongs to the host.
func (r *Renderer) Release() {
	r.released = true
}

func background(s *scene.Scene) rl.Color {
	cr, cg, cb := s.Background.RGB()
	return rl.NewColor(uint8(cr*255), uint8(cg*255), uint8(cb*255), uint8(s.BackgroundAlpha*255))
}

func camera3D(cam *scene.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   toVector3(cam.Position),
		Target:     toVector3(cam.Target()),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       cam.FieldOfView,
		Projection: rl.CameraPerspective,
	}
}

func toVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

// toMatrix converts a column-major mgl32 matrix to raylib's layout (also column-major:
// M0..M3 is the first column).
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
