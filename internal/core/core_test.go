package core

import (
	"slices"
	"testing"
)

func TestLayerBounds(t *testing.T) {
	l := NewLayer(3, 2)
	l.Set(1, 2, 9)
	if got := l.At(1, 2); got != 9 {
		t.Fatalf("At(1,2) = %d, want 9", got)
	}
	if got := l.Cells()[1*3+2]; got != 9 {
		t.Fatalf("backing slice not row-major, got %d", got)
	}
	l.Set(2, 0, 7)
	l.Set(0, 3, 7)
	l.Set(-1, 0, 7)
	for _, v := range l.Cells() {
		if v == 7 {
			t.Fatal("out-of-range Set wrote into the layer")
		}
	}
	if l.At(5, 5) != 0 {
		t.Fatal("out-of-range At should return 0")
	}
}

func TestLayerResize(t *testing.T) {
	l := NewLayer(2, 2)
	l.Set(0, 0, 1)
	l.Resize(2, 2)
	if l.At(0, 0) != 0 {
		t.Fatal("Resize to same size should clear")
	}
	l.Resize(4, 3)
	if l.W != 4 || l.H != 3 || len(l.Cells()) != 12 {
		t.Fatalf("Resize(4,3) gave %dx%d len %d", l.W, l.H, len(l.Cells()))
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("invalid registrations should be ignored")
	}
	if !slices.IsSorted(SimNames()) {
		t.Fatal("SimNames should be sorted")
	}
}

func TestControlClamp(t *testing.T) {
	ctrl := ParameterControl{Min: 0, Max: 9, HasMin: true, HasMax: true}
	if ctrl.Clamp(-3) != 0 || ctrl.Clamp(12) != 9 || ctrl.Clamp(4) != 4 {
		t.Fatal("Clamp did not respect bounds")
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "b", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if p, ok := snap.Lookup("y"); !ok || p.Value != "2" {
		t.Fatalf("Lookup(y) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("z"); ok {
		t.Fatal("Lookup(z) should miss")
	}
}
