package bgsp

import (
	"image"

	"golang.org/x/image/draw"
)

// wrapOffsets returns the four positions at which an image of the given size
// is drawn so that, scrolled by (scrollX, scrollY) and wrapped toroidally, it
// covers a viewport no larger than itself.
func wrapOffsets(size image.Point, scrollX, scrollY int) [4]image.Point {
	ox := floorMod(scrollX, size.X)
	oy := floorMod(scrollY, size.Y)
	return [4]image.Point{
		{-ox, -oy},
		{size.X - ox, -oy},
		{-ox, size.Y - oy},
		{size.X - ox, size.Y - oy},
	}
}

// Composite renders on the CPU what Presenter.Draw puts on screen: the
// plane's image scrolled by (scrollX, scrollY) scaled pixels and wrapped,
// with frame alpha-composited on top. The result has the size of frame.
func Composite(plane *BgPlane, frame *image.RGBA, scrollX, scrollY int) *image.RGBA {
	bounds := image.Rect(0, 0, frame.Bounds().Dx(), frame.Bounds().Dy())
	dst := image.NewRGBA(bounds)

	src := plane.RenderedImage()
	for _, at := range wrapOffsets(src.Bounds().Size(), scrollX, scrollY) {
		draw.Draw(dst, src.Bounds().Add(at), src, image.Point{}, draw.Src)
	}
	draw.Draw(dst, bounds, frame, frame.Bounds().Min, draw.Over)
	return dst
}
