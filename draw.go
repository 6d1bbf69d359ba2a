package bgsp

import (
	"image"

	"golang.org/x/image/draw"
)

// Draw decodes a packed pattern of w×h cells, colors it through pal, orients
// it with sym and writes it scaled by scale into dst with its top-left corner
// at off. The written rectangle is the oriented footprint times scale; pixels
// outside it are untouched. Palette colors are written as-is (replace, not
// blend), so transparent entries punch transparent pixels.
func Draw(w, h int, data []uint64, pal *Palette, sym Symmetry, dst *image.RGBA, off image.Point, scale int) {
	if w <= 0 || h <= 0 || pal == nil || dst == nil {
		return
	}
	if scale < 1 {
		scale = 1
	}

	pw, ph := w*PatternSize, h*PatternSize
	ow, oh := pw, ph
	if sym.HasRotate90() {
		ow, oh = ph, pw
	}

	src := image.NewRGBA(image.Rect(0, 0, ow, oh))
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			tx, ty := sym.Transform(x, y, pw, ph)
			src.SetRGBA(tx, ty, pal[nibbleAt(data, y*pw+x)])
		}
	}

	r := image.Rectangle{Min: off, Max: off.Add(image.Pt(ow*scale, oh*scale))}
	if scale == 1 {
		draw.Draw(dst, r, src, image.Point{}, draw.Src)
		return
	}
	draw.NearestNeighbor.Scale(dst, r, src, src.Bounds(), draw.Src, nil)
}
