package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateFormatsImmediatelyThenThrottles(t *testing.T) {
	d := New()
	d.Update(60, Stats{Frames: 1, Cubes: 150, State: "running"})
	lines := d.Lines()
	assert.Len(t, lines, 4)
	assert.Equal(t, "FPS: 60", lines[0])
	assert.Equal(t, "Frames: 1", lines[2])
	assert.Equal(t, "Cubes: 150 (running)", lines[3])

	for i := 2; i < updateInterval; i++ {
		d.Update(30, Stats{Frames: uint64(i)})
	}
	assert.Equal(t, "FPS: 60", d.Lines()[0])

	d.Update(30, Stats{Frames: 99, Cubes: 150, State: "stopped"})
	assert.Equal(t, "FPS: 30", d.Lines()[0])
	assert.Equal(t, "Frames: 99", d.Lines()[2])
	assert.Equal(t, "Cubes: 150 (stopped)", d.Lines()[3])
}

func TestDrawHiddenIsNoop(t *testing.T) {
	d := New()
	d.Draw(Stats{})
	assert.Nil(t, d.Lines())
}
