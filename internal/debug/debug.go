package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Stats is what the overlay reports about the cube field.
type Stats struct {
	Frames uint64
	Cubes  int
	State  string
}

// Debug is the optional text overlay drawn on top of the cube field: FPS, heap,
// submitted frames and loop state. Off by default.
type Debug struct {
	Show         bool
	frameCount   uint32
	lines        []string
	lastMemStats runtime.MemStats
}

// New returns a hidden overlay.
func New() *Debug {
	return &Debug{}
}

// SetShow sets whether the overlay is drawn.
func (d *Debug) SetShow(show bool) {
	d.Show = show
}

// Lines returns the text rows the overlay currently shows.
func (d *Debug) Lines() []string {
	return d.lines
}

// Update refreshes the overlay text every updateInterval calls, or immediately when
// nothing has been formatted yet. fps is passed in so the text can be built without
// a window.
func (d *Debug) Update(fps int32, s Stats) {
	d.frameCount++
	if d.lines != nil && d.frameCount%updateInterval != 0 {
		return
	}
	runtime.ReadMemStats(&d.lastMemStats)
	mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
	d.lines = []string{
		fmt.Sprintf("FPS: %d", fps),
		fmt.Sprintf("Mem: %.2f MiB", mb),
		fmt.Sprintf("Frames: %d", s.Frames),
		fmt.Sprintf("Cubes: %d (%s)", s.Cubes, s.State),
	}
}

// Draw renders the overlay at the top-right in green. Call after the cube field frame,
// inside BeginDrawing/EndDrawing.
func (d *Debug) Draw(s Stats) {
	if !d.Show {
		return
	}
	d.Update(rl.GetFPS(), s)
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.lines {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
