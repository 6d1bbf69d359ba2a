package bgsp

import (
	"image"
	"time"

	"golang.org/x/image/draw"
)

// Culling margins in unscaled pixels. A sprite is kept while any part of a
// footprint up to 72 pixels across can still reach the viewport.
const (
	cullMarginLow  = 72
	cullMarginHigh = 8
)

// Sprite is one slot of a SpritePool. The zero value is an invisible sprite
// at the origin.
type Sprite struct {
	X, Y     int // top-left corner in unscaled pixels
	Code     Code
	Palette  PaletteNo
	Symmetry Symmetry
	Priority int // higher priorities are painted further back
	Visible  bool
}

// SetPos moves the sprite.
func (s *Sprite) SetPos(x, y int) {
	s.X, s.Y = x, y
}

// SetPattern sets the pattern, palette and orientation drawn for the sprite.
func (s *Sprite) SetPattern(code Code, palette PaletteNo, sym Symmetry) {
	s.Code = code
	s.Palette = palette
	s.Symmetry = sym
}

// spriteKey orders survivors of culling. Comparing (priority, index) pairs
// gives the same order as the packed key (priority << 12) + index for pools
// up to 4096 slots, and stays a total order for larger pools where packed
// keys would collide.
type spriteKey struct {
	priority int
	index    int
}

// keyLessOrEqual returns true if a should sort before or at the same position as b.
func keyLessOrEqual(a, b spriteKey) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.index <= b.index
}

// SpritePool is a fixed arena of sprites composited into a fresh image on
// every Rendering call. Slots are addressed by index and never added or
// removed.
type SpritePool struct {
	sp []Sprite

	bank         TextureSource
	pixelScale   int
	baseSymmetry Symmetry

	order   []spriteKey // survivors of the current frame
	sortBuf []spriteKey // merge sort scratch space
}

// NewSpritePool allocates maxSprites invisible slots drawing from bank.
func NewSpritePool(maxSprites int, bank TextureSource) *SpritePool {
	return NewSpritePoolWithBaseSymmetry(maxSprites, bank, SymIdentity)
}

// NewSpritePoolWithBaseSymmetry is NewSpritePool with an orientation applied
// to every sprite at render time.
func NewSpritePoolWithBaseSymmetry(maxSprites int, bank TextureSource, base Symmetry) *SpritePool {
	if maxSprites < 0 {
		debugClamped("sprite capacity", maxSprites, 0)
		maxSprites = 0
	}
	return &SpritePool{
		sp:           make([]Sprite, maxSprites),
		bank:         bank,
		pixelScale:   bank.PixelScale(),
		baseSymmetry: base,
	}
}

// Sp returns slot i for in-place mutation. It panics when i is outside
// [0, MaxSprites()).
func (p *SpritePool) Sp(i int) *Sprite {
	return &p.sp[i]
}

// MaxSprites returns the fixed number of slots.
func (p *SpritePool) MaxSprites() int {
	return len(p.sp)
}

// PixelScale returns the scale inherited from the texture source.
func (p *SpritePool) PixelScale() int {
	return p.pixelScale
}

// BaseSymmetry returns the orientation applied to every sprite.
func (p *SpritePool) BaseSymmetry() Symmetry {
	return p.baseSymmetry
}

// SetBaseSymmetry changes the orientation applied to every sprite from the
// next Rendering call on.
func (p *SpritePool) SetBaseSymmetry(base Symmetry) {
	p.baseSymmetry = base
}

// HideAll makes every slot invisible.
func (p *SpritePool) HideAll() {
	for i := range p.sp {
		p.sp[i].Visible = false
	}
}

// onScreen reports whether s survives culling for a view of viewW×viewH
// unscaled pixels.
func onScreen(s *Sprite, viewW, viewH int) bool {
	return s.Visible &&
		s.X >= -cullMarginLow && s.X < viewW+cullMarginHigh &&
		s.Y >= -cullMarginLow && s.Y < viewH+cullMarginHigh
}

// Rendering composites the visible sprites into a new transparent image of
// (viewW×scale)×(viewH×scale) pixels.
func (p *SpritePool) Rendering(viewW, viewH int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(viewW, 0)*p.pixelScale, max(viewH, 0)*p.pixelScale))
	p.RenderingInto(dst, viewW, viewH)
	return dst
}

// RenderingInto alpha-composites the visible sprites onto dst and returns how
// many were drawn. Sprites are painted from the highest sort key to the
// lowest: the highest priority ends furthest back and, among equal
// priorities, the lower slot index ends on top.
func (p *SpritePool) RenderingInto(dst *image.RGBA, viewW, viewH int) int {
	start := time.Now()

	p.order = p.order[:0]
	for i := range p.sp {
		if onScreen(&p.sp[i], viewW, viewH) {
			p.order = append(p.order, spriteKey{priority: p.sp[i].Priority, index: i})
		}
	}
	p.mergeSort()

	drawn := 0
	for k := len(p.order) - 1; k >= 0; k-- {
		s := &p.sp[p.order[k].index]
		t := p.bank.Texture(s.Code, s.Palette, s.Symmetry.Compose(p.baseSymmetry))
		if t == nil {
			continue
		}
		at := image.Pt(s.X*p.pixelScale, s.Y*p.pixelScale)
		draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(t.Bounds().Size())}, t, image.Point{}, draw.Over)
		drawn++
	}

	debugSpriteStats(len(p.order), drawn, len(p.sp), time.Since(start))
	return drawn
}

// --- Merge sort ---

// mergeSort sorts p.order in place using p.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches high-water mark.
func (p *SpritePool) mergeSort() {
	n := len(p.order)
	if n <= 1 {
		return
	}
	if cap(p.sortBuf) < n {
		p.sortBuf = make([]spriteKey, n)
	}
	p.sortBuf = p.sortBuf[:n]

	a := p.order
	b := p.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(p.order, p.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []spriteKey, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if keyLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
