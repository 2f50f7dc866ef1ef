package cubefield

import (
	"errors"
	"sort"

	"cubefield/internal/scene"
)

type fakeSurface struct {
	width, height int
	lost          bool
}

func (s *fakeSurface) Size() (int, int) { return s.width, s.height }
func (s *fakeSurface) Ready() bool      { return !s.lost }

type fakeResource struct {
	kind     string
	released int
}

func (r *fakeResource) Release() { r.released++ }

// drawn records what one Render call saw.
type drawn struct {
	aspect float32
	groupY float32
	cubes  int
}

type fakeRenderer struct {
	surface  *fakeSurface
	width    int
	height   int
	draws    []drawn
	released int
}

func (r *fakeRenderer) SetSize(width, height int) {
	r.width, r.height = width, height
}

func (r *fakeRenderer) Render(s *scene.Scene, cam *scene.Camera) error {
	if r.surface != nil && r.surface.lost {
		return ErrSurfaceLost
	}
	r.draws = append(r.draws, drawn{aspect: cam.Aspect, groupY: s.Group.Rotation.Y, cubes: s.Group.Len()})
	return nil
}

func (r *fakeRenderer) Release() { r.released++ }

var errBoom = errors.New("boom")

// fakeBackend counts every allocation and can be told to fail one of them.
type fakeBackend struct {
	failRenderer bool
	failGeometry bool
	failMaterial bool

	renderers []*fakeRenderer
	resources []*fakeResource
}

func (b *fakeBackend) CreateRenderer(s Surface, vp scene.Viewport) (Renderer, error) {
	if b.failRenderer {
		return nil, errBoom
	}
	fs, _ := s.(*fakeSurface)
	w, h := vp.Pixels()
	r := &fakeRenderer{surface: fs, width: w, height: h}
	b.renderers = append(b.renderers, r)
	return r, nil
}

func (b *fakeBackend) CreateGeometry(scene.BoxGeometry) (scene.Resource, error) {
	if b.failGeometry {
		return nil, errBoom
	}
	return b.resource("geometry"), nil
}

func (b *fakeBackend) CreateMaterial(scene.PhongMaterial) (scene.Resource, error) {
	if b.failMaterial {
		return nil, errBoom
	}
	return b.resource("material"), nil
}

func (b *fakeBackend) resource(kind string) *fakeResource {
	r := &fakeResource{kind: kind}
	b.resources = append(b.resources, r)
	return r
}

func (b *fakeBackend) count(kind string) int {
	n := 0
	for _, r := range b.resources {
		if r.kind == kind {
			n++
		}
	}
	return n
}

// fakeScheduler runs requested callbacks only when Tick is called. With leaky set,
// CancelFrame is ignored, as a host that delivers a frame it was told to drop.
type fakeScheduler struct {
	next    FrameID
	pending map[FrameID]func()
	leaky   bool
	cancels int
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{pending: make(map[FrameID]func())}
}

func (s *fakeScheduler) RequestFrame(fn func()) FrameID {
	s.next++
	s.pending[s.next] = fn
	return s.next
}

func (s *fakeScheduler) CancelFrame(id FrameID) {
	s.cancels++
	if !s.leaky {
		delete(s.pending, id)
	}
}

// Tick runs every callback pending at the start of the tick, oldest first.
func (s *fakeScheduler) Tick() {
	ids := make([]FrameID, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		fn := s.pending[id]
		delete(s.pending, id)
		fn()
	}
}

func (s *fakeScheduler) TickN(n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}
