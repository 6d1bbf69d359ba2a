package bgsp

import "fmt"

// GID flag bits (same convention as Tiled TMX format).
const (
	tileFlipH    uint32 = 1 << 31 // horizontal flip
	tileFlipV    uint32 = 1 << 30 // vertical flip
	tileFlipD    uint32 = 1 << 29 // diagonal flip (transpose)
	tileFlagMask uint32 = tileFlipH | tileFlipV | tileFlipD
)

// Symmetry is one of the eight orientations of a square pattern (the
// dihedral group of order 8). Bits 0-1 hold the number of clockwise quarter
// turns, bit 2 a horizontal flip that is applied before rotating.
type Symmetry uint8

const (
	SymIdentity      Symmetry = 0 // as authored
	SymRotate90      Symmetry = 1 // quarter turn clockwise
	SymRotate180     Symmetry = 2 // half turn
	SymRotate270     Symmetry = 3 // quarter turn counter-clockwise
	SymFlipH         Symmetry = 4 // mirror left/right
	SymAntiTranspose Symmetry = 5 // mirror across the anti-diagonal
	SymFlipV         Symmetry = 6 // mirror top/bottom
	SymTranspose     Symmetry = 7 // mirror across the main diagonal
)

const (
	symRotMask  Symmetry = 0x3
	symFlipBit  Symmetry = 0x4
	symInvalid  Symmetry = 0xFF
	numSymmetry          = 8
)

var symmetryNames = [numSymmetry]string{
	"identity", "rot90", "rot180", "rot270",
	"flipH", "antiTranspose", "flipV", "transpose",
}

func newSymmetry(flip bool, quarterTurns int) Symmetry {
	s := Symmetry(floorMod(quarterTurns, 4))
	if flip {
		s |= symFlipBit
	}
	return s
}

// QuarterTurns returns the clockwise rotation in quarter turns (0-3).
func (s Symmetry) QuarterTurns() int { return int(s & symRotMask) }

// Flipped reports whether the orientation includes a mirror.
func (s Symmetry) Flipped() bool { return s&symFlipBit != 0 }

// HasRotate90 reports whether the orientation transposes the pattern's
// footprint (an odd number of quarter turns).
func (s Symmetry) HasRotate90() bool { return s&1 != 0 }

// Valid reports whether s is one of the eight group elements.
func (s Symmetry) Valid() bool { return s < numSymmetry }

// Compose returns the orientation equivalent to applying s first and then
// next. Callers in this package always compose an element's own symmetry
// with the base symmetry of its layer: elem.Compose(base).
func (s Symmetry) Compose(next Symmetry) Symmetry {
	rot := s.QuarterTurns()
	if next.Flipped() {
		rot = -rot
	}
	return newSymmetry(s.Flipped() != next.Flipped(), rot+next.QuarterTurns())
}

// Inverse returns the orientation that undoes s.
func (s Symmetry) Inverse() Symmetry {
	if s.Flipped() {
		return s
	}
	return newSymmetry(false, -s.QuarterTurns())
}

// String returns a short name for the orientation.
func (s Symmetry) String() string {
	if !s.Valid() {
		return "invalid"
	}
	return symmetryNames[s]
}

// Transform maps pixel (x, y) of a w×h source to its position in the
// oriented image. The oriented image is h×w when s.HasRotate90().
func (s Symmetry) Transform(x, y, w, h int) (int, int) {
	if s.Flipped() {
		x = w - 1 - x
	}
	for range s.QuarterTurns() {
		x, y = h-1-y, x
		w, h = h, w
	}
	return x, y
}

// SymmetryFromTileFlags converts Tiled flip flags to a Symmetry. Tiled applies
// the diagonal flip first, then the horizontal, then the vertical one.
func SymmetryFromTileFlags(flipH, flipV, flipD bool) Symmetry {
	s := SymIdentity
	if flipD {
		s = s.Compose(SymTranspose)
	}
	if flipH {
		s = s.Compose(SymFlipH)
	}
	if flipV {
		s = s.Compose(SymFlipV)
	}
	return s
}

// SymmetryFromGID splits a Tiled global tile ID into the bare tile ID and the
// orientation encoded in its top three bits.
func SymmetryFromGID(gid uint32) (uint32, Symmetry) {
	s := SymmetryFromTileFlags(gid&tileFlipH != 0, gid&tileFlipV != 0, gid&tileFlipD != 0)
	return gid &^ tileFlagMask, s
}

// ParseSymmetry returns the orientation named by s, as printed by String.
func ParseSymmetry(s string) (Symmetry, error) {
	for i, name := range symmetryNames {
		if name == s {
			return Symmetry(i), nil
		}
	}
	return SymIdentity, fmt.Errorf("bgsp: unknown symmetry %q", s)
}
