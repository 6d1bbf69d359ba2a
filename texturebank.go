package bgsp

import (
	"image"
	"sync"
)

// TextureSource produces oriented, palette-applied, scaled pattern bitmaps.
// BgPlane and SpritePool share one TextureSource, so a texture rendered for
// the background is reused by a sprite with the same key and vice versa.
//
// Texture returns nil when there is nothing to draw (unknown pattern or
// palette, or an empty footprint). Returned images are shared between all
// callers and must not be modified.
type TextureSource interface {
	Texture(code Code, palette PaletteNo, sym Symmetry) *image.RGBA
	ClearCache()
	CachedNum() int
	PixelScale() int
}

type textureKey struct {
	code    Code
	palette PaletteNo
	sym     Symmetry
}

// TextureBank is the memoizing TextureSource. Every (code, palette, symmetry)
// key is drawn at most once until the cache is cleared. Entries are never
// evicted automatically.
//
// Lookup and insert happen under one lock, so a bank may be shared by
// renderers running on different goroutines.
type TextureBank struct {
	mu         sync.Mutex
	patterns   PatternTable
	palettes   PaletteTable
	pixelScale int
	cache      map[textureKey]*image.RGBA
}

var _ TextureSource = (*TextureBank)(nil)

// NewTextureBank creates a bank over the given tables. pixelScale is clamped
// to [1, PixelScaleMax] and cannot be changed afterwards.
func NewTextureBank(patterns PatternTable, palettes PaletteTable, pixelScale int) *TextureBank {
	scale := clampInt(pixelScale, 1, PixelScaleMax)
	debugClamped("pixel scale", pixelScale, scale)
	return &TextureBank{
		patterns:   patterns,
		palettes:   palettes,
		pixelScale: scale,
		cache:      make(map[textureKey]*image.RGBA),
	}
}

// PixelScale returns the integer upscaling factor applied to every texture.
func (b *TextureBank) PixelScale() int {
	return b.pixelScale
}

// ClearCache drops every cached texture. Images already handed out stay
// valid; only later lookups miss.
func (b *TextureBank) ClearCache() {
	b.mu.Lock()
	clear(b.cache)
	b.mu.Unlock()
}

// CachedNum returns the number of distinct keys currently cached.
func (b *TextureBank) CachedNum() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.cache)
}

// SetTables replaces the pattern and palette tables and clears the cache.
func (b *TextureBank) SetTables(patterns PatternTable, palettes PaletteTable) {
	b.mu.Lock()
	b.patterns = patterns
	b.palettes = palettes
	clear(b.cache)
	b.mu.Unlock()
}

// Texture returns the bitmap for the key, drawing and caching it on a miss.
// It returns nil for holes in the pattern table, codes beyond either table,
// and patterns with a zero-area footprint. Absent results are not cached.
func (b *TextureBank) Texture(code Code, palette PaletteNo, sym Symmetry) *image.RGBA {
	key := textureKey{code: code, palette: palette, sym: sym}

	b.mu.Lock()
	defer b.mu.Unlock()

	if img, ok := b.cache[key]; ok {
		return img
	}
	img := b.render(key)
	if img != nil {
		b.cache[key] = img
	}
	debugTextureMiss(key, img != nil, len(b.cache))
	return img
}

// render draws a texture for key. Called with b.mu held.
func (b *TextureBank) render(key textureKey) *image.RGBA {
	pat := b.patterns.Lookup(key.code)
	if pat == nil {
		return nil
	}
	pal := b.palettes.Lookup(key.palette)
	if pal == nil {
		return nil
	}

	w, h := pat.W, pat.H
	if key.sym.HasRotate90() {
		w, h = h, w
	}
	if w <= 0 || h <= 0 {
		return nil
	}

	unit := PatternSize * b.pixelScale
	img := image.NewRGBA(image.Rect(0, 0, w*unit, h*unit))
	Draw(pat.W, pat.H, pat.Data, pal, key.sym, img, image.Point{}, b.pixelScale)
	return img
}
