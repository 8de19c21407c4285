package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 1, G: 2, B: 3, A: 255},
		{R: 9, G: 8, B: 7, A: 255},
	}
	cells := []uint8{0, 1, 5}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)

	want := []byte{1, 2, 3, 255, 9, 8, 7, 255, 9, 8, 7, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}

	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("empty palette left byte %d = %d", i, b)
		}
	}
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		x, y     int
		row, col int
		ok       bool
	}{
		{0, 0, 0, 0, true},
		{63, 64, 1, 0, true},
		{130, 10, 0, 2, true},
		{192, 0, 0, 0, false},
		{0, 128, 0, 0, false},
		{-1, 5, 0, 0, false},
	}
	for _, tc := range cases {
		row, col, ok := CellAt(tc.x, tc.y, 64, 3, 2)
		if ok != tc.ok || (ok && (row != tc.row || col != tc.col)) {
			t.Errorf("CellAt(%d,%d) = %d,%d,%v want %d,%d,%v", tc.x, tc.y, row, col, ok, tc.row, tc.col, tc.ok)
		}
	}
}
