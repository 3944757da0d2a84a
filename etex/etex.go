// etex provides the Ebitengine raster backend for lazylabel: texture
// windows backed by *ebiten.Image, ready to be drawn by a game's draw
// step.
package etex

import "image"
import "image/draw"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/recyclable/lazylabel"

// Factory implements [lazylabel.TextureFactory] on Ebitengine images.
type Factory struct{}

func (Factory) New(width, height int, mipmap bool) lazylabel.Texture {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	// Ebitengine manages mipmaps internally based on the draw filter,
	// so the flag has nothing to configure here.
	return &Texture{img: ebiten.NewImage(width, height)}
}

// Texture is one bounded texture window on the GPU.
type Texture struct {
	img      *ebiten.Image
	observer func()
}

func (self *Texture) Size() (width, height int) {
	bounds := self.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func (self *Texture) Blit(src image.Image) {
	self.img.Clear()
	width, height := self.Size()

	rgba, isRGBA := src.(*image.RGBA)
	bounds := src.Bounds()
	if !isRGBA || bounds.Min != (image.Point{}) {
		tmp := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(tmp, tmp.Bounds(), src, bounds.Min, draw.Src)
		rgba = tmp
	}
	if rgba.Bounds().Dx() == width && rgba.Bounds().Dy() == height {
		self.img.WritePixels(rgba.Pix)
		return
	}
	self.img.DrawImage(ebiten.NewImageFromImage(rgba), nil)
}

// SetReloadObserver implements [lazylabel.Texture]. Ebitengine restores
// its images transparently after a context loss, so the observer is
// retained but never invoked by this backend.
func (self *Texture) SetReloadObserver(fn func()) { self.observer = fn }

func (self *Texture) Dispose() { self.img.Dispose() }

// Image exposes the underlying Ebitengine image so the host's Draw can
// blit the window with [ebiten.Image.DrawImage].
func (self *Texture) Image() *ebiten.Image { return self.img }

var _ lazylabel.TextureFactory = Factory{}
