package scene

// Viewport is the pixel size of the drawable surface. The host guarantees Height > 0
// for every viewport it delivers; a minimized window reporting 0×0 is filtered out
// before it reaches the camera (see Valid).
type Viewport struct {
	Width  float32
	Height float32
}

// NewViewport returns a viewport from integer device-pixel dimensions.
func NewViewport(width, height int) Viewport {
	return Viewport{Width: float32(width), Height: float32(height)}
}

// Aspect returns Width/Height.
func (v Viewport) Aspect() float32 {
	return v.Width / v.Height
}

// Valid reports whether both dimensions are positive.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Pixels returns the dimensions rounded down to whole device pixels.
func (v Viewport) Pixels() (width, height int) {
	return int(v.Width), int(v.Height)
}
