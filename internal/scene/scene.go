package scene

import "github.com/go-gl/mathgl/mgl32"

// Color is a packed 0xRRGGBB value.
type Color uint32

// RGB returns the color as normalized components in [0,1].
func (c Color) RGB() (r, g, b float32) {
	r = float32((c>>16)&0xff) / 255
	g = float32((c>>8)&0xff) / 255
	b = float32(c&0xff) / 255
	return r, g, b
}

// Scaled returns the color components multiplied by intensity. Components may exceed 1;
// the shader clamps the final color.
func (c Color) Scaled(intensity float32) [3]float32 {
	r, g, b := c.RGB()
	return [3]float32{r * intensity, g * intensity, b * intensity}
}

// AmbientLight lights every face uniformly.
type AmbientLight struct {
	Color     Color
	Intensity float32
}

// DirectionalLight shines from Position toward the origin with no attenuation.
type DirectionalLight struct {
	Color     Color
	Position  mgl32.Vec3
	Intensity float32
}

// Direction returns the normalized direction from the origin toward the light.
func (l DirectionalLight) Direction() mgl32.Vec3 {
	if l.Position.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return l.Position.Normalize()
}

// BoxGeometry is an axis-aligned box centered at the origin.
type BoxGeometry struct {
	Width  float32
	Height float32
	Depth  float32
}

// PhongMaterial is a single-color lit material.
type PhongMaterial struct {
	Color       Color
	Shininess   float32
	FlatShading bool
}

// Fixed backdrop parameters. None of them are reconfigurable.
var (
	// CubeColor is the indigo tint shared by the cube material and the directional light.
	CubeColor Color = 0x4f46e5

	DefaultAmbient = AmbientLight{Color: 0x404040, Intensity: 5}

	DefaultDirectional = DirectionalLight{
		Color:     CubeColor,
		Position:  mgl32.Vec3{5, 5, 5},
		Intensity: 3,
	}

	// CubeGeometry is the shared box every cube is drawn with (edge 0.1).
	CubeGeometry = BoxGeometry{Width: 0.1, Height: 0.1, Depth: 0.1}

	CubeMaterial = PhongMaterial{Color: CubeColor, Shininess: 30, FlatShading: true}
)

// Scene is the whole backdrop: static lighting, one shared geometry and material,
// and the cube group. Background is cleared fully transparent so the host's UI shows
// through wherever no cube is drawn.
type Scene struct {
	Ambient         AmbientLight
	Directional     DirectionalLight
	Geometry        BoxGeometry
	Material        PhongMaterial
	GeometryHandle  Resource // shared by every cube
	MaterialHandle  Resource // shared by every cube
	Group           *Group
	Background      Color
	BackgroundAlpha float32
}

// New returns a scene with the fixed lighting, geometry and material and an empty
// group sized for cubes cubes.
func New(cubes int) *Scene {
	return &Scene{
		Ambient:     DefaultAmbient,
		Directional: DefaultDirectional,
		Geometry:    CubeGeometry,
		Material:    CubeMaterial,
		Group:       NewGroup(cubes),
	}
}

// Resource is a GPU-backed object allocated by a rendering backend. The scene only
// holds it; the backend that created it knows how to draw and free it.
type Resource interface {
	Release()
}
