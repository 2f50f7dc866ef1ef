package scene

import "github.com/go-gl/mathgl/mgl32"

// Rotation holds Euler angles in radians, applied X then Y. Angles accumulate without
// wrapping; the rotation matrix wraps visually on its own.
type Rotation struct {
	X float32
	Y float32
}

// Add returns r + d component-wise.
func (r Rotation) Add(d Rotation) Rotation {
	return Rotation{X: r.X + d.X, Y: r.Y + d.Y}
}

// Matrix returns Rx * Ry.
func (r Rotation) Matrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(r.X).Mul4(mgl32.HomogRotate3DY(r.Y))
}

// Cube is one decorative mesh instance. Geometry and material are shared through the
// Scene; a cube only carries its own transform and spin.
type Cube struct {
	Position mgl32.Vec3
	Rotation Rotation
	Speed    Rotation // radians per frame, fixed at creation
}

// Step advances the cube by one frame of spin.
func (c *Cube) Step() {
	c.Rotation = c.Rotation.Add(c.Speed)
}

// Model returns the cube's transform relative to its group.
func (c *Cube) Model() mgl32.Mat4 {
	t := mgl32.Translate3D(c.Position.X(), c.Position.Y(), c.Position.Z())
	return t.Mul4(c.Rotation.Matrix())
}

// Group is an ordered set of cubes sharing a group-level rotation.
type Group struct {
	Rotation Rotation
	Cubes    []*Cube
}

// NewGroup returns an empty group with capacity for n cubes.
func NewGroup(n int) *Group {
	return &Group{Cubes: make([]*Cube, 0, n)}
}

// Add appends a cube.
func (g *Group) Add(c *Cube) {
	g.Cubes = append(g.Cubes, c)
}

// Len returns the number of cubes.
func (g *Group) Len() int {
	return len(g.Cubes)
}

// Rotate adds d to the group rotation.
func (g *Group) Rotate(d Rotation) {
	g.Rotation = g.Rotation.Add(d)
}

// Model returns the group transform. The group sits at the origin.
func (g *Group) Model() mgl32.Mat4 {
	return g.Rotation.Matrix()
}

// World returns the world transform of c as a member of g.
func (g *Group) World(c *Cube) mgl32.Mat4 {
	return g.Model().Mul4(c.Model())
}
