package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestCamera() *Camera {
	return New(mgl32.DegToRad(60), 800.0/600.0, 0.1, 100, mgl32.Vec3{6, 4, 6})
}

func TestNew(t *testing.T) {
	cam := newTestCamera()

	if cam.Up != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("expected +Y up, got %v", cam.Up)
	}
	proj := cam.Projection()
	f := float32(1 / math.Tan(float64(cam.Fovy/2)))
	if math.Abs(float64(proj.At(1, 1)-f)) > 1e-5 {
		t.Errorf("expected vertical scale %f, got %f", f, proj.At(1, 1))
	}
}

func TestSetAspectUpdatesProjection(t *testing.T) {
	cam := newTestCamera()
	before := cam.Projection()

	cam.SetAspect(1920.0 / 1080.0)
	after := cam.Projection()

	if before == after {
		t.Fatal("expected projection to change with aspect")
	}
	ratio := after.At(1, 1) / after.At(0, 0)
	if math.Abs(float64(ratio-cam.Aspect)) > 1e-5 {
		t.Errorf("expected x/y scale ratio %f, got %f", cam.Aspect, ratio)
	}
}

func TestProjectTargetToCenter(t *testing.T) {
	cam := newTestCamera()
	cam.LookAt(mgl32.Vec3{0, 3, 0})

	ndc := cam.Project(cam.Target)
	if math.Abs(float64(ndc.X())) > 1e-5 || math.Abs(float64(ndc.Y())) > 1e-5 {
		t.Errorf("expected target at screen center, got %v", ndc)
	}
	if ndc.Z() < -1 || ndc.Z() > 1 {
		t.Errorf("expected target inside the depth range, got z=%f", ndc.Z())
	}
}

func TestDistance(t *testing.T) {
	cam := newTestCamera()
	cam.LookAt(mgl32.Vec3{0, 4, 0})

	want := float32(math.Sqrt(72))
	if math.Abs(float64(cam.Distance()-want)) > 1e-5 {
		t.Errorf("expected distance %f, got %f", want, cam.Distance())
	}
}
