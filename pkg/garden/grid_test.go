package garden

import (
	"slices"
	"testing"

	"pineapples/pkg/core"
)

func setRadiators(g *Grid, coords ...Coord) {
	for _, c := range coords {
		g.CellAt(c).Radiators = 1
	}
}

func TestGetAndCellAtAgree(t *testing.T) {
	g := RandomSized(6, 4, core.NewRNG(3))
	for c := range g.All() {
		got, ok := g.Get(c)
		if !ok {
			t.Fatalf("Get(%v) reported absent inside the grid", c)
		}
		ptr := g.CellAt(c)
		if ptr == nil || *ptr != got {
			t.Fatalf("CellAt(%v) = %v, Get returned %v", c, ptr, got)
		}
		ptr.Radiators = 1
		if after, _ := g.Get(c); after.Radiators != 1 {
			t.Fatalf("write through CellAt(%v) not visible to Get", c)
		}
	}
}

func TestOutOfRangeIsAbsent(t *testing.T) {
	g := New(5, 3)
	for _, c := range []Coord{
		{Row: -1, Col: 0},
		{Row: 0, Col: -1},
		{Row: 0, Col: 5},
		{Row: 3, Col: 0},
		{Row: 40, Col: 1},
		{Row: -7, Col: -7},
	} {
		if _, ok := g.Get(c); ok {
			t.Errorf("Get(%v) should be absent", c)
		}
		if g.CellAt(c) != nil {
			t.Errorf("CellAt(%v) should be nil", c)
		}
		if _, ok := g.Status(c); ok {
			t.Errorf("Status(%v) should be absent", c)
		}
	}
}

func TestNewClampsDimensions(t *testing.T) {
	w, h := New(0, -2).Dimensions()
	if w != 1 || h != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", w, h)
	}
}

func TestDefaultCells(t *testing.T) {
	for c, cell := range New(4, 4).All() {
		if cell.Capacity != DefaultCapacity || cell.Radiators != 0 {
			t.Fatalf("cell %v = %+v, want default", c, cell)
		}
	}
}

func TestIsolatedRadiatorHeatsItself(t *testing.T) {
	g := New(5, 5)
	center := Coord{Row: 2, Col: 2}
	setRadiators(g, center)

	if got := g.Heat(center); got != WeightSelf {
		t.Fatalf("center heat = %d, want %d", got, WeightSelf)
	}
	if got := g.Heat(Coord{Row: 2, Col: 3}); got != WeightOrthogonal {
		t.Fatalf("orthogonal neighbour heat = %d, want %d", got, WeightOrthogonal)
	}
	if got := g.Heat(Coord{Row: 1, Col: 1}); got != WeightDiagonal {
		t.Fatalf("diagonal neighbour heat = %d, want %d", got, WeightDiagonal)
	}
	if got := g.Heat(Coord{Row: 0, Col: 2}); got != 0 {
		t.Fatalf("cell two rows away heat = %d, want 0", got)
	}
}

func TestCornerRadiatorIgnoresMissingNeighbours(t *testing.T) {
	g := New(4, 4)
	setRadiators(g, Coord{Row: 0, Col: 0}, Coord{Row: 0, Col: 1})
	if got := g.Heat(Coord{Row: 0, Col: 0}); got != WeightSelf+WeightOrthogonal {
		t.Fatalf("corner heat = %d, want %d", got, WeightSelf+WeightOrthogonal)
	}
}

func TestStatusBoundaries(t *testing.T) {
	center := Coord{Row: 2, Col: 2}
	cases := []struct {
		name      string
		radiators []Coord
		heat      uint32
		want      GrowthStatus
	}{
		{"two diagonals", []Coord{{1, 1}, {3, 3}}, 2, TooCold},
		{"one orthogonal", []Coord{{1, 2}}, 3, Fruiting},
		{"two orthogonals", []Coord{{1, 2}, {3, 2}}, 6, Fruiting},
		{"two orthogonals and a diagonal", []Coord{{1, 2}, {3, 2}, {1, 1}}, 7, TooHot},
		{"self and orthogonal", []Coord{{2, 2}, {2, 3}}, 8, Overheated},
	}
	for _, tc := range cases {
		g := New(5, 5)
		setRadiators(g, tc.radiators...)
		if got := g.Heat(center); got != tc.heat {
			t.Fatalf("%s: heat = %d, want %d", tc.name, got, tc.heat)
		}
		status, ok := g.Status(center)
		if !ok {
			t.Fatalf("%s: status absent", tc.name)
		}
		if status.Kind != tc.want {
			t.Fatalf("%s: status = %v, want %v", tc.name, status.Kind, tc.want)
		}
		if tc.want == Fruiting && status.Capacity != DefaultCapacity {
			t.Fatalf("%s: fruiting capacity = %d, want %d", tc.name, status.Capacity, DefaultCapacity)
		}
		if tc.want != Fruiting && status.Yield() != 0 {
			t.Fatalf("%s: non-fruiting status yields %d", tc.name, status.Yield())
		}
	}
}

func TestClassifyThresholds(t *testing.T) {
	want := map[uint32]GrowthStatus{
		0: TooCold, 2: TooCold,
		3: Fruiting, 4: Fruiting, 6: Fruiting,
		7: TooHot,
		8: Overheated, 20: Overheated,
	}
	for heat, kind := range want {
		if got := Classify(heat, 9).Kind; got != kind {
			t.Errorf("Classify(%d) = %v, want %v", heat, got, kind)
		}
	}
}

func TestHeatSourcesSumToHeat(t *testing.T) {
	g := New(6, 6)
	setRadiators(g, Coord{2, 2}, Coord{2, 3}, Coord{3, 4}, Coord{5, 5})
	for c := range g.All() {
		var sum uint32
		for _, src := range g.HeatSources(c) {
			if src.Radiators == 0 {
				t.Fatalf("HeatSources(%v) listed an inactive cell %v", c, src.From)
			}
			sum += src.Amount()
		}
		if sum != g.Heat(c) {
			t.Fatalf("HeatSources(%v) sum %d != Heat %d", c, sum, g.Heat(c))
		}
	}
}

func TestTotalGrowthMatchesStatuses(t *testing.T) {
	rng := core.NewRNG(11)
	g := RandomSized(8, 7, rng)
	for c := range g.All() {
		if rng.IntRange(0, 4) == 0 {
			g.CellAt(c).Radiators = 1
		}
	}

	var want uint32
	for c, cell := range g.All() {
		status, _ := g.Status(c)
		if status.Kind == Fruiting {
			want += cell.Capacity
		}
	}
	if got := g.TotalGrowth(); got != want {
		t.Fatalf("TotalGrowth = %d, want %d", got, want)
	}
}

func TestTotalGrowthOfColdGridIsZero(t *testing.T) {
	if got := New(5, 5).TotalGrowth(); got != 0 {
		t.Fatalf("grid without radiators grew %d", got)
	}
}

func TestAllCoversGridOnceInRowMajorOrder(t *testing.T) {
	g := New(7, 4)
	var first []Coord
	for c := range g.All() {
		first = append(first, c)
	}
	if len(first) != 7*4 {
		t.Fatalf("All yielded %d entries, want %d", len(first), 7*4)
	}
	seen := map[Coord]bool{}
	for i, c := range first {
		if seen[c] {
			t.Fatalf("coordinate %v yielded twice", c)
		}
		seen[c] = true
		if want := (Coord{Row: i / 7, Col: i % 7}); c != want {
			t.Fatalf("entry %d = %v, want %v", i, c, want)
		}
	}

	var second []Coord
	for c := range g.All() {
		second = append(second, c)
	}
	if !slices.Equal(first, second) {
		t.Fatal("All should be restartable")
	}

	count := 0
	for range g.All() {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Fatalf("early break yielded %d entries", count)
	}
}

func TestRandomIsReproducible(t *testing.T) {
	a := Random(core.NewRNG(99))
	b := Random(core.NewRNG(99))

	aw, ah := a.Dimensions()
	bw, bh := b.Dimensions()
	if aw != bw || ah != bh {
		t.Fatalf("dimensions differ: %dx%d vs %dx%d", aw, ah, bw, bh)
	}
	if aw < RandomSizeMin || aw >= RandomSizeMax || ah < RandomSizeMin || ah >= RandomSizeMax {
		t.Fatalf("dimensions %dx%d outside [%d,%d)", aw, ah, RandomSizeMin, RandomSizeMax)
	}
	for c, cell := range a.All() {
		other, _ := b.Get(c)
		if cell != other {
			t.Fatalf("cell %v differs: %+v vs %+v", c, cell, other)
		}
		if cell.Capacity < RandomCapacityMin || cell.Capacity >= RandomCapacityMax {
			t.Fatalf("capacity %d outside range", cell.Capacity)
		}
		if cell.Radiators != 0 {
			t.Fatalf("random grid started with radiators at %v", c)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := New(3, 3)
	c := g.Clone()
	c.CellAt(Coord{1, 1}).Radiators = 1
	if cell, _ := g.Get(Coord{1, 1}); cell.Radiators != 0 {
		t.Fatal("mutating a clone changed the original")
	}
}
