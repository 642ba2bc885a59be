package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestOrbit() *Orbit {
	cam := newTestCamera()
	o := NewOrbit(cam, mgl32.Vec3{0, 3, 0})
	o.EnablePan = false
	o.EnableZoom = false
	o.AutoRotate = true
	o.AutoRotateSpeed = 0.4
	return o
}

func near(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func TestOrbitAutoRotateFullTurn(t *testing.T) {
	o := newTestOrbit()
	cam := o.Camera()
	start := cam.Position
	dist := cam.Distance()

	// One full turn takes 60/speed seconds
	for i := 0; i < 300; i++ {
		o.Update(0.5)
		if !near(cam.Distance(), dist, 1e-3) {
			t.Fatalf("frame %d: distance drifted to %f (want %f)", i, cam.Distance(), dist)
		}
		if !near(cam.Position.Y(), start.Y(), 1e-3) {
			t.Fatalf("frame %d: height drifted to %f", i, cam.Position.Y())
		}
	}

	if !near(cam.Position.X(), start.X(), 1e-2) || !near(cam.Position.Z(), start.Z(), 1e-2) {
		t.Errorf("expected to return to %v after a full turn, got %v", start, cam.Position)
	}
}

func TestOrbitAutoRotateDirection(t *testing.T) {
	o := newTestOrbit()
	before := o.Azimuth()

	o.Update(1)

	want := before - 2*math.Pi/60*o.AutoRotateSpeed
	if !near(o.Azimuth(), want, 1e-4) {
		t.Errorf("expected azimuth %f after 1s, got %f", want, o.Azimuth())
	}
}

func TestOrbitNoAutoRotate(t *testing.T) {
	o := newTestOrbit()
	o.AutoRotate = false
	start := o.Camera().Position

	for i := 0; i < 100; i++ {
		o.Update(1.0 / 60.0)
	}

	if o.Camera().Position.Sub(start).Len() > 1e-4 {
		t.Errorf("camera moved without input: %v -> %v", start, o.Camera().Position)
	}
}

func TestOrbitLooksAtTarget(t *testing.T) {
	o := newTestOrbit()
	o.Update(0.5)

	if o.Camera().Target != o.Target {
		t.Errorf("expected camera target %v, got %v", o.Target, o.Camera().Target)
	}
}

func TestOrbitDragPausesAutoRotate(t *testing.T) {
	o := newTestOrbit()
	o.EnableRotate = false
	before := o.Azimuth()

	o.HandleInput(Input{Dragging: true}, 600)
	o.Update(1)

	if !near(o.Azimuth(), before, 1e-5) {
		t.Errorf("auto-rotation should pause while dragging, azimuth %f -> %f", before, o.Azimuth())
	}
}

func TestOrbitRotateInput(t *testing.T) {
	o := newTestOrbit()
	o.AutoRotate = false
	before := o.Azimuth()

	// Dragging a full viewport height rotates by 2π, a quarter height by π/2
	o.HandleInput(Input{RotateDelta: mgl32.Vec2{150, 0}}, 600)
	o.Update(1.0 / 60.0)

	got := o.Azimuth() - before
	for got > math.Pi {
		got -= 2 * math.Pi
	}
	for got < -math.Pi {
		got += 2 * math.Pi
	}
	if !near(got, -math.Pi/2, 1e-3) {
		t.Errorf("expected azimuth change -π/2, got %f", got)
	}
}

func TestOrbitPolarClamp(t *testing.T) {
	o := newTestOrbit()
	o.AutoRotate = false

	// Drag far downward: the camera must stop short of the pole
	o.HandleInput(Input{RotateDelta: mgl32.Vec2{0, 5000}}, 600)
	o.Update(1.0 / 60.0)

	off := o.Camera().Position.Sub(o.Target)
	horizontal := math.Hypot(float64(off.X()), float64(off.Z()))
	if horizontal <= 0 {
		t.Error("expected camera to stay off the pole")
	}
	if off.Y() <= 0 {
		t.Errorf("expected camera above target, got offset %v", off)
	}
}

func TestOrbitZoomDisabled(t *testing.T) {
	o := newTestOrbit()
	o.AutoRotate = false
	dist := o.Camera().Distance()

	o.HandleInput(Input{Wheel: 3}, 600)
	o.Update(1.0 / 60.0)

	if !near(o.Camera().Distance(), dist, 1e-4) {
		t.Errorf("zoom disabled but distance changed %f -> %f", dist, o.Camera().Distance())
	}
}

func TestOrbitZoomEnabled(t *testing.T) {
	o := newTestOrbit()
	o.AutoRotate = false
	o.EnableZoom = true
	o.MinDistance = 2
	dist := o.Camera().Distance()

	o.HandleInput(Input{Wheel: 1}, 600)
	o.Update(1.0 / 60.0)
	if !near(o.Camera().Distance(), dist*0.95, 1e-3) {
		t.Errorf("expected distance %f after one notch, got %f", dist*0.95, o.Camera().Distance())
	}

	o.HandleInput(Input{Wheel: 200}, 600)
	o.Update(1.0 / 60.0)
	if !near(o.Camera().Distance(), 2, 1e-4) {
		t.Errorf("expected distance clamped to 2, got %f", o.Camera().Distance())
	}
}

func TestOrbitPan(t *testing.T) {
	o := newTestOrbit()
	o.AutoRotate = false
	start := o.Target

	o.HandleInput(Input{PanDelta: mgl32.Vec2{100, 0}}, 600)
	o.Update(1.0 / 60.0)
	if o.Target != start {
		t.Errorf("pan disabled but target moved to %v", o.Target)
	}

	o.EnablePan = true
	dist := o.Camera().Distance()
	o.HandleInput(Input{PanDelta: mgl32.Vec2{100, 0}}, 600)
	o.Update(1.0 / 60.0)

	if o.Target == start {
		t.Fatal("expected target to move with pan enabled")
	}
	if o.Target.Y() != start.Y() {
		t.Errorf("horizontal drag should not change target height, got %v", o.Target)
	}
	if !near(o.Camera().Distance(), dist, 1e-3) {
		t.Errorf("pan should keep distance, %f -> %f", dist, o.Camera().Distance())
	}
}

func TestOrbitDamping(t *testing.T) {
	o := newTestOrbit()
	o.AutoRotate = false
	o.EnableDamping = true
	o.DampingFactor = 0.1
	before := o.Azimuth()

	o.HandleInput(Input{RotateDelta: mgl32.Vec2{60, 0}}, 600)
	o.Update(1.0 / 60.0)
	first := o.Azimuth() - before
	mid := o.Azimuth()
	o.Update(1.0 / 60.0)
	second := o.Azimuth() - mid

	if first == 0 || second == 0 {
		t.Fatal("expected motion on both frames with damping")
	}
	if math.Abs(float64(second)) >= math.Abs(float64(first)) {
		t.Errorf("expected damped motion to decay: %f then %f", first, second)
	}
}
