package typeset

import "image"
import "image/draw"

import "github.com/recyclable/lazylabel"

// ImageFactory allocates software texture windows backed by RGBA
// images. It's the backend of choice for tests and headless hosts; GPU
// hosts should use the etex subpackage instead.
type ImageFactory struct{}

func (ImageFactory) New(width, height int, mipmap bool) lazylabel.Texture {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &ImageTexture{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// ImageTexture is a software texture window. Its zero value is not
// usable; textures come from [ImageFactory].
type ImageTexture struct {
	img      *image.RGBA
	observer func()
}

func (self *ImageTexture) Size() (width, height int) {
	bounds := self.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func (self *ImageTexture) Blit(src image.Image) {
	for i := range self.img.Pix {
		self.img.Pix[i] = 0
	}
	srcBounds := src.Bounds()
	dstRect := image.Rect(0, 0, srcBounds.Dx(), srcBounds.Dy())
	draw.Draw(self.img, dstRect, src, srcBounds.Min, draw.Src)
}

func (self *ImageTexture) SetReloadObserver(fn func()) { self.observer = fn }

func (self *ImageTexture) Dispose() {}

// Image exposes the backing pixels for the host's draw/present step.
func (self *ImageTexture) Image() *image.RGBA { return self.img }

// Invalidate simulates a raster context loss: the pixels are replaced
// with a blank buffer and the reload observer is notified, which makes
// the owning label force a redraw on its next layout pass.
func (self *ImageTexture) Invalidate() {
	self.img = image.NewRGBA(self.img.Bounds())
	if self.observer != nil {
		self.observer()
	}
}

var _ lazylabel.TextureFactory = ImageFactory{}
