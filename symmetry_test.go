package bgsp

import "testing"

func allSymmetries() []Symmetry {
	syms := make([]Symmetry, numSymmetry)
	for i := range syms {
		syms[i] = Symmetry(i)
	}
	return syms
}

// --- Group laws ---

func TestSymmetryIdentity(t *testing.T) {
	for _, s := range allSymmetries() {
		if got := s.Compose(SymIdentity); got != s {
			t.Errorf("%v.Compose(identity) = %v", s, got)
		}
		if got := SymIdentity.Compose(s); got != s {
			t.Errorf("identity.Compose(%v) = %v", s, got)
		}
	}
}

func TestSymmetryAssociative(t *testing.T) {
	for _, a := range allSymmetries() {
		for _, b := range allSymmetries() {
			for _, c := range allSymmetries() {
				left := a.Compose(b).Compose(c)
				right := a.Compose(b.Compose(c))
				if left != right {
					t.Fatalf("(%v∘%v)∘%v = %v, %v∘(%v∘%v) = %v", a, b, c, left, a, b, c, right)
				}
			}
		}
	}
}

func TestSymmetryInverse(t *testing.T) {
	for _, s := range allSymmetries() {
		inv := s.Inverse()
		if got := s.Compose(inv); got != SymIdentity {
			t.Errorf("%v.Compose(%v) = %v, want identity", s, inv, got)
		}
		if got := inv.Compose(s); got != SymIdentity {
			t.Errorf("%v.Compose(%v) = %v, want identity", inv, s, got)
		}
	}
}

// Compose must agree with applying the two transforms one after the other.
func TestSymmetryComposeMatchesTransform(t *testing.T) {
	const w, h = 3, 2
	for _, a := range allSymmetries() {
		for _, b := range allSymmetries() {
			ab := a.Compose(b)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					x1, y1 := a.Transform(x, y, w, h)
					w1, h1 := w, h
					if a.HasRotate90() {
						w1, h1 = h, w
					}
					x2, y2 := b.Transform(x1, y1, w1, h1)
					gx, gy := ab.Transform(x, y, w, h)
					if gx != x2 || gy != y2 {
						t.Fatalf("%v then %v maps (%d,%d) to (%d,%d), %v maps it to (%d,%d)",
							a, b, x, y, x2, y2, ab, gx, gy)
					}
				}
			}
		}
	}
}

// --- Named orientations ---

func TestSymmetryTransform(t *testing.T) {
	const w, h = 3, 2
	tests := []struct {
		sym          Symmetry
		x, y         int
		wantX, wantY int
	}{
		{SymIdentity, 2, 1, 2, 1},
		{SymRotate90, 0, 0, 1, 0},
		{SymRotate90, 2, 0, 1, 2},
		{SymRotate180, 0, 0, 2, 1},
		{SymRotate270, 0, 0, 0, 2},
		{SymFlipH, 0, 1, 2, 1},
		{SymFlipV, 0, 0, 0, 1},
		{SymTranspose, 2, 1, 1, 2},
		{SymAntiTranspose, 0, 0, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.sym.String(), func(t *testing.T) {
			gx, gy := tt.sym.Transform(tt.x, tt.y, w, h)
			if gx != tt.wantX || gy != tt.wantY {
				t.Errorf("Transform(%d, %d) = (%d, %d), want (%d, %d)", tt.x, tt.y, gx, gy, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestSymmetryHasRotate90(t *testing.T) {
	want := map[Symmetry]bool{
		SymIdentity:      false,
		SymRotate90:      true,
		SymRotate180:     false,
		SymRotate270:     true,
		SymFlipH:         false,
		SymAntiTranspose: true,
		SymFlipV:         false,
		SymTranspose:     true,
	}
	for s, w := range want {
		if s.HasRotate90() != w {
			t.Errorf("%v.HasRotate90() = %v, want %v", s, s.HasRotate90(), w)
		}
	}
}

func TestSymmetryValid(t *testing.T) {
	for _, s := range allSymmetries() {
		if !s.Valid() {
			t.Errorf("%d should be valid", s)
		}
	}
	if symInvalid.Valid() {
		t.Error("sentinel symmetry should be invalid")
	}
	if symInvalid.String() != "invalid" {
		t.Errorf("sentinel String() = %q", symInvalid.String())
	}
}

// --- Tiled flags ---

func TestSymmetryFromTileFlags(t *testing.T) {
	tests := []struct {
		name    string
		h, v, d bool
		want    Symmetry
	}{
		{"no flags", false, false, false, SymIdentity},
		{"D only", false, false, true, SymTranspose},
		{"V flip", false, true, false, SymFlipV},
		{"V+D", false, true, true, SymRotate270},
		{"H flip", true, false, false, SymFlipH},
		{"H+D", true, false, true, SymRotate90},
		{"H+V", true, true, false, SymRotate180},
		{"H+V+D", true, true, true, SymAntiTranspose},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SymmetryFromTileFlags(tt.h, tt.v, tt.d); got != tt.want {
				t.Errorf("SymmetryFromTileFlags(%v, %v, %v) = %v, want %v", tt.h, tt.v, tt.d, got, tt.want)
			}
		})
	}
}

func TestSymmetryFromGID(t *testing.T) {
	id, sym := SymmetryFromGID(tileFlipH | tileFlipD | 17)
	if id != 17 {
		t.Errorf("tile ID = %d, want 17", id)
	}
	if sym != SymRotate90 {
		t.Errorf("symmetry = %v, want %v", sym, SymRotate90)
	}
}

func TestParseSymmetry(t *testing.T) {
	for _, s := range allSymmetries() {
		got, err := ParseSymmetry(s.String())
		if err != nil {
			t.Fatalf("ParseSymmetry(%q): %v", s.String(), err)
		}
		if got != s {
			t.Errorf("ParseSymmetry(%q) = %v, want %v", s.String(), got, s)
		}
	}
	if _, err := ParseSymmetry("sideways"); err == nil {
		t.Error("expected error for unknown name")
	}
}
