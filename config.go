package bgsp

import "flag"

// Config holds the construction parameters of a bank, plane and sprite pool.
type Config struct {
	PlaneWidth   int      // plane width in cells
	PlaneHeight  int      // plane height in cells
	MaxSprites   int      // sprite pool capacity
	PixelScale   int      // shared integer upscaling factor
	BaseSymmetry Symmetry // orientation applied to the plane and the sprites
}

// NewConfig returns a Config populated with defaults matching a 256×224
// screen at double scale.
func NewConfig() *Config {
	return &Config{PlaneWidth: 32, PlaneHeight: 28, MaxSprites: 128, PixelScale: 2}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.PlaneWidth, "plane-w", c.PlaneWidth, "background plane width in cells")
	fs.IntVar(&c.PlaneHeight, "plane-h", c.PlaneHeight, "background plane height in cells")
	fs.IntVar(&c.MaxSprites, "sprites", c.MaxSprites, "sprite pool capacity")
	fs.IntVar(&c.PixelScale, "scale", c.PixelScale, "pixel scale multiplier")
	fs.Func("symmetry", "base symmetry (identity, rot90, rot180, rot270, flipH, flipV, transpose, antiTranspose)",
		func(s string) error {
			sym, err := ParseSymmetry(s)
			if err != nil {
				return err
			}
			c.BaseSymmetry = sym
			return nil
		})
}

// Build creates one TextureBank over the tables and hands it to both a new
// BgPlane and a new SpritePool.
func (c *Config) Build(patterns PatternTable, palettes PaletteTable) (*TextureBank, *BgPlane, *SpritePool) {
	bank := NewTextureBank(patterns, palettes, c.PixelScale)
	plane := NewBgPlaneWithBaseSymmetry(c.PlaneWidth, c.PlaneHeight, bank, c.BaseSymmetry)
	pool := NewSpritePoolWithBaseSymmetry(c.MaxSprites, bank, c.BaseSymmetry)
	return bank, plane, pool
}
