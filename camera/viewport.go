package camera

// Surface is a render output whose pixel size follows the window.
type Surface interface {
	SetSize(width, height int)
}

// Viewport keeps the camera projection and the output surface in step with the
// window size.
type Viewport struct {
	Width, Height int

	camera  *Camera
	surface Surface
}

// NewViewport creates a viewport and applies the initial size.
func NewViewport(cam *Camera, surface Surface, width, height int) *Viewport {
	v := &Viewport{camera: cam, surface: surface}
	v.Resize(width, height)
	return v
}

// Resize recomputes the aspect ratio, pushes it into the camera projection and
// resizes the output surface. Non-positive sizes (a minimised window) are ignored.
func (v *Viewport) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.Width = width
	v.Height = height

	if v.camera != nil {
		v.camera.SetAspect(float32(width) / float32(height))
	}
	if v.surface != nil {
		v.surface.SetSize(width, height)
	}
}

// Aspect returns width / height.
func (v *Viewport) Aspect() float32 {
	if v.Height == 0 {
		return 0
	}
	return float32(v.Width) / float32(v.Height)
}
