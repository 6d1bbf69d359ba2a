package bgsp

import (
	"image"
	"time"

	"golang.org/x/image/draw"
)

// BgPlane is a toroidal grid of attributed characters rendered into one
// persistent image. The current buffer is the logical state owned by the
// caller; a shadow buffer remembers what was last rendered so that
// Rendering only redraws cells whose value changed.
//
// Every index is wrapped with a floor modulo of LinearSize, so any integer,
// negative or far out of range, addresses some cell. (x, y) forms map to
// x + y*Width() before wrapping.
type BgPlane struct {
	width, height int
	linearSize    int

	cur    []AChar // logical state
	shadow []AChar // last rendered state

	bank         TextureSource
	pixelScale   int
	baseSymmetry Symmetry

	rendered *image.RGBA
}

// NewBgPlane creates a plane of w×h cells drawing from bank. Sizes are
// clamped to PlaneWidthMax×PlaneHeightMax and coerced to at least 1.
func NewBgPlane(w, h int, bank TextureSource) *BgPlane {
	return NewBgPlaneWithBaseSymmetry(w, h, bank, SymIdentity)
}

// NewBgPlaneWithBaseSymmetry is NewBgPlane with a whole-plane orientation
// applied to every cell at render time.
func NewBgPlaneWithBaseSymmetry(w, h int, bank TextureSource, base Symmetry) *BgPlane {
	width := clampInt(w, 1, PlaneWidthMax)
	height := clampInt(h, 1, PlaneHeightMax)
	debugClamped("plane width", w, width)
	debugClamped("plane height", h, height)

	n := width * height
	shadow := make([]AChar, n)
	dirty := forceDirty()
	for i := range shadow {
		shadow[i] = dirty
	}

	scale := bank.PixelScale()
	unit := PatternSize * scale
	return &BgPlane{
		width:        width,
		height:       height,
		linearSize:   n,
		cur:          make([]AChar, n),
		shadow:       shadow,
		bank:         bank,
		pixelScale:   scale,
		baseSymmetry: base,
		rendered:     image.NewRGBA(image.Rect(0, 0, width*unit, height*unit)),
	}
}

// Width returns the plane width in cells.
func (p *BgPlane) Width() int { return p.width }

// Height returns the plane height in cells.
func (p *BgPlane) Height() int { return p.height }

// RectSize returns the plane size in cells.
func (p *BgPlane) RectSize() (int, int) { return p.width, p.height }

// LinearSize returns Width()*Height(), the modulus of every index.
func (p *BgPlane) LinearSize() int { return p.linearSize }

// PixelScale returns the scale inherited from the texture source.
func (p *BgPlane) PixelScale() int { return p.pixelScale }

// BaseSymmetry returns the whole-plane orientation.
func (p *BgPlane) BaseSymmetry() Symmetry { return p.baseSymmetry }

// SetBaseSymmetry changes the whole-plane orientation. Nothing is marked
// dirty: cells that already match their shadow keep their old rendering
// until they change or Invalidate is called.
func (p *BgPlane) SetBaseSymmetry(base Symmetry) {
	p.baseSymmetry = base
}

func (p *BgPlane) wrap(idx int) int {
	return floorMod(idx, p.linearSize)
}

func (p *BgPlane) at(x, y int) int {
	return x + y*p.width
}

// --- Whole cells ---

// AChar returns the cell at idx.
func (p *BgPlane) AChar(idx int) AChar {
	return p.cur[p.wrap(idx)]
}

// ACharAt returns the cell at (x, y).
func (p *BgPlane) ACharAt(x, y int) AChar {
	return p.AChar(p.at(x, y))
}

// SetAChar stores c at idx.
func (p *BgPlane) SetAChar(idx int, c AChar) {
	p.cur[p.wrap(idx)] = c
}

// SetACharN stores c in n consecutive cells starting at idx. Consecutive
// means consecutive in the flattened buffer: a run that passes the end of a
// row continues on the next row, and one that passes the last cell continues
// at cell 0. The same holds for every other *N setter.
func (p *BgPlane) SetACharN(idx int, c AChar, n int) {
	for i := range n {
		p.SetAChar(idx+i, c)
	}
}

// SetACharAt stores c at (x, y).
func (p *BgPlane) SetACharAt(x, y int, c AChar) {
	p.SetAChar(p.at(x, y), c)
}

// SetACharNAt stores c in n consecutive cells starting at (x, y).
func (p *BgPlane) SetACharNAt(x, y int, c AChar, n int) {
	p.SetACharN(p.at(x, y), c, n)
}

// FillAChar stores c in every cell.
func (p *BgPlane) FillAChar(c AChar) {
	for i := range p.cur {
		p.cur[i] = c
	}
}

// Clear resets every cell to the zero AChar.
func (p *BgPlane) Clear() {
	p.FillAChar(AChar{})
}

// --- Attributes ---

// Attributes returns the palette and symmetry at idx.
func (p *BgPlane) Attributes(idx int) CharAttributes {
	return p.cur[p.wrap(idx)].Attributes()
}

// AttributesAt returns the palette and symmetry at (x, y).
func (p *BgPlane) AttributesAt(x, y int) CharAttributes {
	return p.Attributes(p.at(x, y))
}

// SetAttributes stores palette and symmetry at idx, keeping the code.
func (p *BgPlane) SetAttributes(idx int, a CharAttributes) {
	c := &p.cur[p.wrap(idx)]
	c.Palette = a.Palette
	c.Symmetry = a.Symmetry
}

// SetAttributesN stores a in n consecutive cells starting at idx.
func (p *BgPlane) SetAttributesN(idx int, a CharAttributes, n int) {
	for i := range n {
		p.SetAttributes(idx+i, a)
	}
}

// SetAttributesAt stores a at (x, y).
func (p *BgPlane) SetAttributesAt(x, y int, a CharAttributes) {
	p.SetAttributes(p.at(x, y), a)
}

// SetAttributesNAt stores a in n consecutive cells starting at (x, y).
func (p *BgPlane) SetAttributesNAt(x, y int, a CharAttributes, n int) {
	p.SetAttributesN(p.at(x, y), a, n)
}

// FillAttributes stores a in every cell.
func (p *BgPlane) FillAttributes(a CharAttributes) {
	for i := range p.cur {
		p.cur[i].Palette = a.Palette
		p.cur[i].Symmetry = a.Symmetry
	}
}

// --- Codes ---

// Code returns the pattern code at idx.
func (p *BgPlane) Code(idx int) Code {
	return p.cur[p.wrap(idx)].Code
}

// CodeAt returns the pattern code at (x, y).
func (p *BgPlane) CodeAt(x, y int) Code {
	return p.Code(p.at(x, y))
}

// SetCode stores code at idx.
func (p *BgPlane) SetCode(idx int, code Code) {
	p.cur[p.wrap(idx)].Code = code
}

// SetCodeN stores code in n consecutive cells starting at idx.
func (p *BgPlane) SetCodeN(idx int, code Code, n int) {
	for i := range n {
		p.SetCode(idx+i, code)
	}
}

// SetCodeAt stores code at (x, y).
func (p *BgPlane) SetCodeAt(x, y int, code Code) {
	p.SetCode(p.at(x, y), code)
}

// SetCodeNAt stores code in n consecutive cells starting at (x, y).
func (p *BgPlane) SetCodeNAt(x, y int, code Code, n int) {
	p.SetCodeN(p.at(x, y), code, n)
}

// FillCode stores code in every cell.
func (p *BgPlane) FillCode(code Code) {
	for i := range p.cur {
		p.cur[i].Code = code
	}
}

// PutString stores one code per rune of s starting at (x, y), using the rune
// value as the code and a as the attributes. Like the *N setters it runs on
// into the next row.
func (p *BgPlane) PutString(x, y int, s string, a CharAttributes) {
	idx := p.at(x, y)
	for _, r := range s {
		p.SetAChar(idx, AChar{Code: Code(r), Palette: a.Palette, Symmetry: a.Symmetry})
		idx++
	}
}

// --- Palettes ---

// Palette returns the palette number at idx.
func (p *BgPlane) Palette(idx int) PaletteNo {
	return p.cur[p.wrap(idx)].Palette
}

// PaletteAt returns the palette number at (x, y).
func (p *BgPlane) PaletteAt(x, y int) PaletteNo {
	return p.Palette(p.at(x, y))
}

// SetPalette stores palette at idx.
func (p *BgPlane) SetPalette(idx int, palette PaletteNo) {
	p.cur[p.wrap(idx)].Palette = palette
}

// SetPaletteN stores palette in n consecutive cells starting at idx.
func (p *BgPlane) SetPaletteN(idx int, palette PaletteNo, n int) {
	for i := range n {
		p.SetPalette(idx+i, palette)
	}
}

// SetPaletteAt stores palette at (x, y).
func (p *BgPlane) SetPaletteAt(x, y int, palette PaletteNo) {
	p.SetPalette(p.at(x, y), palette)
}

// SetPaletteNAt stores palette in n consecutive cells starting at (x, y).
func (p *BgPlane) SetPaletteNAt(x, y int, palette PaletteNo, n int) {
	p.SetPaletteN(p.at(x, y), palette, n)
}

// FillPalette stores palette in every cell.
func (p *BgPlane) FillPalette(palette PaletteNo) {
	for i := range p.cur {
		p.cur[i].Palette = palette
	}
}

// --- Symmetries ---

// Symmetry returns the cell orientation at idx.
func (p *BgPlane) Symmetry(idx int) Symmetry {
	return p.cur[p.wrap(idx)].Symmetry
}

// SymmetryAt returns the cell orientation at (x, y).
func (p *BgPlane) SymmetryAt(x, y int) Symmetry {
	return p.Symmetry(p.at(x, y))
}

// SetSymmetry stores sym at idx.
func (p *BgPlane) SetSymmetry(idx int, sym Symmetry) {
	p.cur[p.wrap(idx)].Symmetry = sym
}

// SetSymmetryN stores sym in n consecutive cells starting at idx.
func (p *BgPlane) SetSymmetryN(idx int, sym Symmetry, n int) {
	for i := range n {
		p.SetSymmetry(idx+i, sym)
	}
}

// SetSymmetryAt stores sym at (x, y).
func (p *BgPlane) SetSymmetryAt(x, y int, sym Symmetry) {
	p.SetSymmetry(p.at(x, y), sym)
}

// SetSymmetryNAt stores sym in n consecutive cells starting at (x, y).
func (p *BgPlane) SetSymmetryNAt(x, y int, sym Symmetry, n int) {
	p.SetSymmetryN(p.at(x, y), sym, n)
}

// FillSymmetry stores sym in every cell.
func (p *BgPlane) FillSymmetry(sym Symmetry) {
	for i := range p.cur {
		p.cur[i].Symmetry = sym
	}
}

// --- Rendering ---

// Invalidate forgets what was last rendered, so the next Rendering call
// redraws every cell. Use it after SetBaseSymmetry or a texture table reload.
func (p *BgPlane) Invalidate() {
	dirty := forceDirty()
	for i := range p.shadow {
		p.shadow[i] = dirty
	}
}

// Rendering redraws every cell whose value differs from what was last
// rendered, in row-major order, and returns how many cells that was. A
// changed cell whose texture is absent is counted but leaves its region of
// the image untouched.
func (p *BgPlane) Rendering() int {
	start := time.Now()
	unit := PatternSize * p.pixelScale

	done := 0
	idx := 0
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := p.cur[idx]
			if c != p.shadow[idx] {
				p.shadow[idx] = c
				if t := p.bank.Texture(c.Code, c.Palette, c.Symmetry.Compose(p.baseSymmetry)); t != nil {
					at := image.Pt(x*unit, y*unit)
					draw.Draw(p.rendered, image.Rectangle{Min: at, Max: at.Add(t.Bounds().Size())}, t, image.Point{}, draw.Src)
				}
				done++
			}
			idx++
		}
	}

	debugPlaneStats(done, p.linearSize, time.Since(start))
	return done
}

// RenderedImage returns the persistent output image. It is updated in place
// by the next Rendering call.
func (p *BgPlane) RenderedImage() *image.RGBA {
	return p.rendered
}
