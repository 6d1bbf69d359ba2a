package bgsp

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// StatsOverlay is a small panel showing FPS, TPS and the compositor stats
// passed to its last Update.
type StatsOverlay struct {
	img  *ebiten.Image
	text string
}

// NewStatsOverlay creates an empty overlay.
func NewStatsOverlay() *StatsOverlay {
	// 120x48 is enough for three lines of debug text.
	return &StatsOverlay{img: ebiten.NewImage(120, 48)}
}

// Update redraws the panel with stats.
func (o *StatsOverlay) Update(stats FrameStats) {
	o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\ncells: %d sprites: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), stats.Redrawn, stats.Sprites)

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
}

// Text returns the panel's current text.
func (o *StatsOverlay) Text() string {
	return o.text
}

// Draw paints the panel at the top-left corner of screen.
func (o *StatsOverlay) Draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
