package bgsp

// PatternSize is the edge length in pixels of one pattern cell. Patterns and
// plane cells are measured in these units.
const PatternSize = 8

// NumPaletteCol is the number of colors in a palette. Pattern pixel data is
// packed 4 bits per pixel, so every index addresses one of these colors.
const NumPaletteCol = 16

// PixelScaleMax is the largest integer upscaling factor a TextureBank accepts.
const PixelScaleMax = 8

// Plane size limits in cells (256 * 32 patterns per axis).
const (
	PlaneWidthMax  = 8192
	PlaneHeightMax = 8192
)

// Code identifies a pattern in a PatternTable.
type Code uint32

// PaletteNo identifies a palette in a PaletteTable.
type PaletteNo uint32

// FrameStats summarises one composed frame: how many plane cells were
// redrawn and how many sprites were actually blitted.
type FrameStats struct {
	Redrawn int
	Sprites int
}

// floorMod returns x modulo p, always in [0, p).
func floorMod(x, p int) int {
	return (x%p + p) % p
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
