package bgsp

// dirtyMark is stored in the shadow buffer so that no real cell compares
// equal to it before the first rendering.
const dirtyMark = 0x1000_0000

// CharAttributes is the palette and orientation part of a plane cell.
type CharAttributes struct {
	Palette  PaletteNo
	Symmetry Symmetry
}

// AChar (attributed character) is the renderable unit of a BgPlane cell.
// Two cells are equal when all three fields are equal; dirty-diffing relies on
// nothing else.
type AChar struct {
	Code     Code
	Palette  PaletteNo
	Symmetry Symmetry
}

// NewAChar returns an AChar with the given fields.
func NewAChar(code Code, palette PaletteNo, sym Symmetry) AChar {
	return AChar{Code: code, Palette: palette, Symmetry: sym}
}

// Attributes returns the palette and symmetry of c.
func (c AChar) Attributes() CharAttributes {
	return CharAttributes{Palette: c.Palette, Symmetry: c.Symmetry}
}

// forceDirty returns the shadow-buffer sentinel. Its symmetry is outside the
// group, so it never equals a cell holding a valid orientation.
func forceDirty() AChar {
	return AChar{Code: dirtyMark, Palette: dirtyMark, Symmetry: symInvalid}
}
