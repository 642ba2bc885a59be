package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface is where the scene is drawn. A window surface draws straight to the
// backbuffer (keeping the window's MSAA); an offscreen surface renders into a
// texture that follows the viewport size and can be exported.
type Surface struct {
	offscreen     bool
	target        rl.RenderTexture2D
	loaded        bool
	width, height int
}

// NewWindowSurface returns a surface that draws to the window.
func NewWindowSurface() *Surface {
	return &Surface{}
}

// NewTextureSurface returns an offscreen surface. The texture is allocated on the
// first SetSize.
func NewTextureSurface() *Surface {
	return &Surface{offscreen: true}
}

// SetSize resizes the surface. An offscreen texture is reallocated only when the
// size actually changes.
func (s *Surface) SetSize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height

	if !s.offscreen {
		return
	}
	if s.loaded {
		rl.UnloadRenderTexture(s.target)
	}
	s.target = rl.LoadRenderTexture(int32(width), int32(height))
	s.loaded = true
}

// Size returns the current pixel size.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Begin starts drawing into the surface.
func (s *Surface) Begin() {
	if s.offscreen && s.loaded {
		rl.BeginTextureMode(s.target)
	}
}

// End finishes drawing into the surface.
func (s *Surface) End() {
	if s.offscreen && s.loaded {
		rl.EndTextureMode()
	}
}

// Present copies an offscreen surface to the current framebuffer at the given size.
func (s *Surface) Present(width, height int) {
	if !s.offscreen || !s.loaded {
		return
	}
	// Render textures are stored bottom-up
	src := rl.Rectangle{Width: float32(s.width), Height: -float32(s.height)}
	dst := rl.Rectangle{Width: float32(width), Height: float32(height)}
	rl.DrawTexturePro(s.target.Texture, src, dst, rl.Vector2{}, 0, rl.White)
}

// Export writes an offscreen surface to a PNG file.
func (s *Surface) Export(path string) error {
	if !s.offscreen || !s.loaded {
		return fmt.Errorf("export %s: surface has no texture", path)
	}
	img := rl.LoadImageFromTexture(s.target.Texture)
	defer rl.UnloadImage(img)
	rl.ImageFlipVertical(img)

	if !rl.ExportImage(*img, path) {
		return fmt.Errorf("export %s: writing image failed", path)
	}
	return nil
}

// Unload frees the offscreen texture.
func (s *Surface) Unload() {
	if s.loaded {
		rl.UnloadRenderTexture(s.target)
		s.loaded = false
	}
}
