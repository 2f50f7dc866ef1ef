package cubefield

import "cubefield/internal/scene"

// NotifyResize is the host entry point for resize events, in device pixels.
func (f *Field) NotifyResize(width, height int) {
	f.OnResize(scene.NewViewport(width, height))
}

// OnResize stores vp and, once the scene is built, refits the camera and the render
// target to it. The next frame draws with the new projection. Before a build only the
// viewport is stored, and the next AttachSurface uses it. Viewports with a
// non-positive side (a minimized window) are ignored.
func (f *Field) OnResize(vp scene.Viewport) {
	if !vp.Valid() {
		return
	}
	f.viewport = vp
	if f.built == nil || f.built.Camera == nil || f.built.Renderer == nil {
		return
	}
	f.built.Camera.SetAspect(vp)
	f.built.Renderer.SetSize(vp.Pixels())
}
