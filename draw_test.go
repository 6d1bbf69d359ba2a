package bgsp

import (
	"image"
	"testing"
)

func TestDrawOffset(t *testing.T) {
	patterns, palettes := testTables(t)
	p := patterns[codeMarker]
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))

	Draw(p.W, p.H, p.Data, &palettes[0], SymIdentity, dst, image.Pt(5, 3), 1)

	if got := rgbaAt(dst, 5, 3); got != green {
		t.Errorf("marker pixel = %v, want %v", got, green)
	}
	if got := rgbaAt(dst, 5+PatternSize-1, 3+PatternSize-1); got != red {
		t.Errorf("last pixel = %v, want %v", got, red)
	}
	if got := rgbaAt(dst, 4, 3); got != transparent {
		t.Errorf("pixel left of the footprint = %v, want untouched", got)
	}
	if got := rgbaAt(dst, 5+PatternSize, 3); got != transparent {
		t.Errorf("pixel right of the footprint = %v, want untouched", got)
	}
}

func TestDrawScaled(t *testing.T) {
	patterns, palettes := testTables(t)
	p := patterns[codeWide]
	dst := image.NewRGBA(image.Rect(0, 0, 64, 64))

	Draw(p.W, p.H, p.Data, &palettes[0], SymRotate90, dst, image.Point{}, 2)

	// 2×1 cells rotated become 8×16 pixels, scaled to 16×32.
	if got := rgbaAt(dst, 15, 31); got != blue {
		t.Errorf("corner pixel = %v, want %v", got, blue)
	}
	if got := rgbaAt(dst, 16, 0); got != transparent {
		t.Errorf("pixel past scaled width = %v, want untouched", got)
	}
	if got := rgbaAt(dst, 0, 32); got != transparent {
		t.Errorf("pixel past scaled height = %v, want untouched", got)
	}
}

func TestDrawReplacesWithTransparent(t *testing.T) {
	patterns, palettes := testTables(t)
	p := patterns[codeHalf]
	dst := image.NewRGBA(image.Rect(0, 0, PatternSize, PatternSize))
	for i := range dst.Pix {
		dst.Pix[i] = 0xFF
	}

	Draw(p.W, p.H, p.Data, &palettes[0], SymIdentity, dst, image.Point{}, 1)

	if got := rgbaAt(dst, 0, 0); got != green {
		t.Errorf("left half = %v, want %v", got, green)
	}
	if got := rgbaAt(dst, PatternSize-1, 0); got != transparent {
		t.Errorf("right half = %v, want transparent written over the background", got)
	}
}

func TestDrawIgnoresDegenerateInput(t *testing.T) {
	_, palettes := testTables(t)
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))

	Draw(0, 1, nil, &palettes[0], SymIdentity, dst, image.Point{}, 1)
	Draw(1, 1, []uint64{^uint64(0)}, nil, SymIdentity, dst, image.Point{}, 1)
	Draw(1, 1, []uint64{^uint64(0)}, &palettes[0], SymIdentity, nil, image.Point{}, 1)

	for i, v := range dst.Pix {
		if v != 0 {
			t.Fatalf("byte %d = %d, want untouched image", i, v)
		}
	}
}

// --- PackPattern ---

func TestPackPatternNibbleOrder(t *testing.T) {
	pix := make([]uint8, PatternSize*PatternSize)
	pix[0] = 1
	pix[1] = 2
	pix[16] = 0xF
	p, err := PackPattern(1, 1, pix)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Data) != 4 {
		t.Fatalf("len(Data) = %d, want 4", len(p.Data))
	}
	if p.Data[0] != 0x21 {
		t.Errorf("Data[0] = %#x, want 0x21", p.Data[0])
	}
	if p.Data[1] != 0xF {
		t.Errorf("Data[1] = %#x, want 0xf", p.Data[1])
	}
	if got := p.Index(0, 2); got != 0xF {
		t.Errorf("Index(0, 2) = %d, want 15", got)
	}
}

func TestPackPatternErrors(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		pix  []uint8
	}{
		{"negative size", -1, 1, nil},
		{"short data", 1, 1, make([]uint8, 10)},
		{"index out of range", 1, 1, append(make([]uint8, PatternSize*PatternSize-1), NumPaletteCol)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := PackPattern(tt.w, tt.h, tt.pix); err == nil {
				t.Error("expected error")
			}
		})
	}
}
