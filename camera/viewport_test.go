package camera

import "testing"

type recordingSurface struct {
	width, height int
	calls         int
}

func (s *recordingSurface) SetSize(w, h int) {
	s.width, s.height = w, h
	s.calls++
}

func TestViewportInitialSize(t *testing.T) {
	cam := newTestCamera()
	surf := &recordingSurface{}

	v := NewViewport(cam, surf, 800, 600)

	if cam.Aspect != float32(800)/float32(600) {
		t.Errorf("expected aspect 4/3, got %f", cam.Aspect)
	}
	if surf.width != 800 || surf.height != 600 {
		t.Errorf("expected surface 800x600, got %dx%d", surf.width, surf.height)
	}
	if v.Aspect() != cam.Aspect {
		t.Errorf("viewport and camera aspect disagree: %f vs %f", v.Aspect(), cam.Aspect)
	}
}

func TestViewportResize(t *testing.T) {
	cam := newTestCamera()
	surf := &recordingSurface{}
	v := NewViewport(cam, surf, 800, 600)
	projBefore := cam.Projection()

	v.Resize(1920, 1080)

	if cam.Aspect != float32(1920)/float32(1080) {
		t.Errorf("expected aspect 16/9, got %f", cam.Aspect)
	}
	if cam.Aspect < 1.777 || cam.Aspect > 1.778 {
		t.Errorf("expected aspect ~1.778, got %f", cam.Aspect)
	}
	if surf.width != 1920 || surf.height != 1080 {
		t.Errorf("expected surface 1920x1080, got %dx%d", surf.width, surf.height)
	}
	if cam.Projection() == projBefore {
		t.Error("expected projection to be recomputed")
	}
}

func TestViewportResizeIdempotent(t *testing.T) {
	cam := newTestCamera()
	surf := &recordingSurface{}
	v := NewViewport(cam, surf, 800, 600)

	v.Resize(1024, 768)
	proj := cam.Projection()
	v.Resize(1024, 768)

	if cam.Projection() != proj {
		t.Error("repeating a resize should not change the projection")
	}
	if surf.width != 1024 || surf.height != 768 {
		t.Errorf("unexpected surface size %dx%d", surf.width, surf.height)
	}
}

func TestViewportIgnoresZeroSize(t *testing.T) {
	cam := newTestCamera()
	surf := &recordingSurface{}
	v := NewViewport(cam, surf, 800, 600)
	calls := surf.calls

	v.Resize(0, 0)
	v.Resize(800, 0)

	if surf.calls != calls {
		t.Error("zero-size resize should not reach the surface")
	}
	if v.Width != 800 || v.Height != 600 {
		t.Errorf("expected size to stay 800x600, got %dx%d", v.Width, v.Height)
	}
	if cam.Aspect != float32(800)/float32(600) {
		t.Errorf("aspect changed on zero-size resize: %f", cam.Aspect)
	}
}
