package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestToMatrixTranslation(t *testing.T) {
	m := toMatrix(mgl32.Translate3D(1, 2, 3))
	assert.Equal(t, float32(1), m.M12)
	assert.Equal(t, float32(2), m.M13)
	assert.Equal(t, float32(3), m.M14)
	assert.Equal(t, float32(1), m.M15)
	assert.Equal(t, float32(0), m.M3)
}

func TestWindowFrameQueue(t *testing.T) {
	w := &Window{}
	var ran []int
	a := w.RequestFrame(func() { ran = append(ran, 1) })
	b := w.RequestFrame(func() { ran = append(ran, 2) })
	w.RequestFrame(func() { ran = append(ran, 3) })
	assert.NotEqual(t, a, b)

	w.CancelFrame(b)
	w.CancelFrame(b)
	w.CancelFrame(999)
	assert.Len(t, w.pending, 2)

	for _, r := range w.pending {
		r.fn()
	}
	assert.Equal(t, []int{1, 3}, ran)
}
