package bgsp

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Presenter mirrors compositor output into GPU images and draws it onto an
// ebiten screen. It is owned by the caller and is not used by the plane or
// the pool themselves.
type Presenter struct {
	plane   *ebiten.Image
	sprites *ebiten.Image
}

// NewPresenter returns an empty Presenter. Images are allocated on the first
// upload.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// ensureImage returns img if it already has the size of r, otherwise a new
// image of that size (disposing the old one).
func ensureImage(img *ebiten.Image, r image.Rectangle) *ebiten.Image {
	if img != nil && img.Bounds().Size() == r.Size() {
		return img
	}
	if img != nil {
		img.Deallocate()
	}
	return ebiten.NewImage(r.Dx(), r.Dy())
}

// writeRGBA copies src into dst. src is repacked when its stride is not tight.
func writeRGBA(dst *ebiten.Image, src *image.RGBA) {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if src.Stride == 4*w && len(src.Pix) == 4*w*h {
		dst.WritePixels(src.Pix)
		return
	}
	pix := make([]byte, 0, 4*w*h)
	for y := 0; y < h; y++ {
		off := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		pix = append(pix, src.Pix[off:off+4*w]...)
	}
	dst.WritePixels(pix)
}

// UploadPlane copies the plane's rendered image to the GPU. Call it after a
// Rendering call that redrew at least one cell.
func (pr *Presenter) UploadPlane(plane *BgPlane) {
	img := plane.RenderedImage()
	pr.plane = ensureImage(pr.plane, img.Bounds())
	writeRGBA(pr.plane, img)
}

// UploadSprites copies a sprite frame to the GPU.
func (pr *Presenter) UploadSprites(frame *image.RGBA) {
	pr.sprites = ensureImage(pr.sprites, frame.Bounds())
	writeRGBA(pr.sprites, frame)
}

// PlaneImage returns the uploaded plane image, or nil before the first upload.
func (pr *Presenter) PlaneImage() *ebiten.Image {
	return pr.plane
}

// SpriteImage returns the uploaded sprite frame, or nil before the first upload.
func (pr *Presenter) SpriteImage() *ebiten.Image {
	return pr.sprites
}

// Draw paints the plane scrolled by (scrollX, scrollY) screen pixels, wrapped
// toroidally, and the sprite frame on top of it. Composite produces the same
// picture on the CPU.
func (pr *Presenter) Draw(screen *ebiten.Image, scrollX, scrollY int) {
	if pr.plane != nil {
		for _, at := range wrapOffsets(pr.plane.Bounds().Size(), scrollX, scrollY) {
			var op ebiten.DrawImageOptions
			op.GeoM.Translate(float64(at.X), float64(at.Y))
			screen.DrawImage(pr.plane, &op)
		}
	}
	if pr.sprites != nil {
		screen.DrawImage(pr.sprites, nil)
	}
}

// Dispose releases the GPU images.
func (pr *Presenter) Dispose() {
	if pr.plane != nil {
		pr.plane.Deallocate()
		pr.plane = nil
	}
	if pr.sprites != nil {
		pr.sprites.Deallocate()
		pr.sprites = nil
	}
}
