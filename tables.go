package bgsp

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
)

// pixelsPerWord is the number of 4-bit pixels packed in one pattern word.
const pixelsPerWord = 16

// ErrPaletteMiss is returned by PatternFromImage when a pixel color is not
// present in the palette.
var ErrPaletteMiss = errors.New("bgsp: color not in palette")

// Pattern is one entry of a PatternTable. W and H are measured in pattern
// cells (PatternSize pixels each). Data holds 4-bit palette indices, 16 per
// word with the least significant nibble first, row-major over the whole
// (W*PatternSize)×(H*PatternSize) pixel rectangle.
type Pattern struct {
	W, H int
	Data []uint64
}

// PixelSize returns the pattern's unscaled size in pixels.
func (p *Pattern) PixelSize() (int, int) {
	return p.W * PatternSize, p.H * PatternSize
}

// Index returns the palette index of pixel (x, y). Pixels beyond the packed
// data read as 0.
func (p *Pattern) Index(x, y int) uint8 {
	pw, _ := p.PixelSize()
	return nibbleAt(p.Data, y*pw+x)
}

func nibbleAt(data []uint64, i int) uint8 {
	word := i / pixelsPerWord
	if word >= len(data) {
		return 0
	}
	shift := uint(i%pixelsPerWord) * 4
	return uint8(data[word]>>shift) & 0xF
}

// PackPattern builds a Pattern of w×h cells from one palette index per
// pixel, row-major.
func PackPattern(w, h int, pix []uint8) (Pattern, error) {
	if w < 0 || h < 0 {
		return Pattern{}, fmt.Errorf("bgsp: pack pattern: negative size %dx%d", w, h)
	}
	n := w * PatternSize * h * PatternSize
	if len(pix) != n {
		return Pattern{}, fmt.Errorf("bgsp: pack pattern: got %d pixels, want %d", len(pix), n)
	}
	data := make([]uint64, (n+pixelsPerWord-1)/pixelsPerWord)
	for i, v := range pix {
		if v >= NumPaletteCol {
			return Pattern{}, fmt.Errorf("bgsp: pack pattern: pixel %d has index %d", i, v)
		}
		data[i/pixelsPerWord] |= uint64(v) << (uint(i%pixelsPerWord) * 4)
	}
	return Pattern{W: w, H: h, Data: data}, nil
}

// PatternTable maps a Code to its pattern. A nil entry is a hole: nothing is
// drawn for that code.
type PatternTable []*Pattern

// Lookup returns the pattern for code, or nil for holes and codes beyond the
// table.
func (t PatternTable) Lookup(code Code) *Pattern {
	if uint64(code) >= uint64(len(t)) {
		return nil
	}
	return t[code]
}

// Palette is a fixed-length color table indexed by pattern pixel values.
type Palette [NumPaletteCol]color.RGBA

// PaletteTable maps a PaletteNo to its palette.
type PaletteTable []Palette

// Lookup returns the palette for no, or nil when no is beyond the table.
func (t PaletteTable) Lookup(no PaletteNo) *Palette {
	if uint64(no) >= uint64(len(t)) {
		return nil
	}
	return &t[no]
}

// --- JSON structure types ---

type jsonPattern struct {
	Code Code     `json:"code"`
	W    int      `json:"w"`
	H    int      `json:"h"`
	Data []string `json:"data"`
}

type jsonTables struct {
	Palettes [][]string    `json:"palettes"`
	Patterns []jsonPattern `json:"patterns"`
}

// LoadTables parses a JSON description of the palette and pattern tables:
//
//	{
//	  "palettes": [["#00000000", "#ffffff", ...]],
//	  "patterns": [{"code": 1, "w": 1, "h": 1, "data": ["0x1111111111111111", ...]}]
//	}
//
// Palettes hold up to NumPaletteCol colors (missing entries are transparent).
// Pattern codes may leave holes; the table is sized to the largest code.
func LoadTables(jsonData []byte) (PatternTable, PaletteTable, error) {
	var doc jsonTables
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, nil, fmt.Errorf("bgsp: failed to parse tables JSON: %w", err)
	}

	palettes := make(PaletteTable, len(doc.Palettes))
	for i, cols := range doc.Palettes {
		if len(cols) > NumPaletteCol {
			return nil, nil, fmt.Errorf("bgsp: palette %d has %d colors, max %d", i, len(cols), NumPaletteCol)
		}
		for j, s := range cols {
			c, err := parseHexColor(s)
			if err != nil {
				return nil, nil, fmt.Errorf("bgsp: palette %d color %d: %w", i, j, err)
			}
			palettes[i][j] = c
		}
	}

	var patterns PatternTable
	for _, jp := range doc.Patterns {
		p, err := decodePattern(jp)
		if err != nil {
			return nil, nil, fmt.Errorf("bgsp: pattern %d: %w", jp.Code, err)
		}
		for uint64(len(patterns)) <= uint64(jp.Code) {
			patterns = append(patterns, nil)
		}
		patterns[jp.Code] = p
	}
	return patterns, palettes, nil
}

func decodePattern(jp jsonPattern) (*Pattern, error) {
	if jp.W < 0 || jp.H < 0 {
		return nil, fmt.Errorf("negative size %dx%d", jp.W, jp.H)
	}
	data := make([]uint64, len(jp.Data))
	for i, s := range jp.Data {
		v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 64)
		if err != nil {
			return nil, fmt.Errorf("data word %d: %w", i, err)
		}
		data[i] = v
	}
	return &Pattern{W: jp.W, H: jp.H, Data: data}, nil
}

// parseHexColor accepts "#RRGGBB" (opaque) and "#RRGGBBAA" with straight
// alpha, and returns the premultiplied color.
func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("malformed color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("malformed color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	c := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return color.RGBAModel.Convert(c).(color.RGBA), nil
}

// PatternFromImage converts an image whose sides are multiples of PatternSize
// into a packed Pattern by matching every pixel against pal. Pixels with
// alpha below half map to index 0.
func PatternFromImage(img image.Image, pal *Palette) (Pattern, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w%PatternSize != 0 || h%PatternSize != 0 {
		return Pattern{}, fmt.Errorf("bgsp: image %dx%d is not a multiple of %d", w, h, PatternSize)
	}

	pix := make([]uint8, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			_, _, _, a := c.RGBA()
			if a < 0x8000 {
				pix = append(pix, 0)
				continue
			}
			idx, ok := matchPalette(pal, color.RGBAModel.Convert(c).(color.RGBA))
			if !ok {
				return Pattern{}, fmt.Errorf("%w: pixel (%d,%d) %v", ErrPaletteMiss, x, y, c)
			}
			pix = append(pix, idx)
		}
	}
	return PackPattern(w/PatternSize, h/PatternSize, pix)
}

func matchPalette(pal *Palette, c color.RGBA) (uint8, bool) {
	for i, pc := range pal {
		if pc == c {
			return uint8(i), true
		}
	}
	return 0, false
}
