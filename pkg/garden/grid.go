package garden

import (
	"iter"

	"pineapples/pkg/core"
)

// Bounds used by Random.
const (
	RandomSizeMin = 4
	RandomSizeMax = 10

	RandomCapacityMin uint32 = 1
	RandomCapacityMax uint32 = 10
)

// Grid stores a fixed rectangle of cells in row-major order.
type Grid struct {
	width, height int
	cells         []Cell
}

// New allocates a grid of default cells. Non-positive dimensions clamp to 1.
func New(width, height int) *Grid {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = DefaultCell()
	}
	return &Grid{width: width, height: height, cells: cells}
}

// Random builds a grid whose dimensions are drawn from [RandomSizeMin,
// RandomSizeMax) and whose capacities are drawn from [RandomCapacityMin,
// RandomCapacityMax). Radiators start off.
func Random(rng *core.RNG) *Grid {
	width := rng.IntRange(RandomSizeMin, RandomSizeMax)
	height := rng.IntRange(RandomSizeMin, RandomSizeMax)
	return RandomSized(width, height, rng)
}

// RandomSized is Random with caller-chosen dimensions.
func RandomSized(width, height int, rng *core.RNG) *Grid {
	g := New(width, height)
	for i := range g.cells {
		g.cells[i].Capacity = rng.Uint32Range(RandomCapacityMin, RandomCapacityMax)
	}
	return g
}

// Dimensions reports the grid width and height.
func (g *Grid) Dimensions() (width, height int) { return g.width, g.height }

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Coord) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < g.height && c.Col < g.width
}

// Get returns a copy of the cell at c.
func (g *Grid) Get(c Coord) (Cell, bool) {
	if !g.Contains(c) {
		return Cell{}, false
	}
	return g.cells[c.Row*g.width+c.Col], true
}

// CellAt returns the cell at c for in-place mutation, or nil when c is out of range.
func (g *Grid) CellAt(c Coord) *Cell {
	if !g.Contains(c) {
		return nil
	}
	return &g.cells[c.Row*g.width+c.Col]
}

// HeatSource is one radiator's contribution to a cell's heat.
type HeatSource struct {
	From      Coord
	Radiators uint32
	Weight    uint32
}

// Amount is the heat this source adds.
func (h HeatSource) Amount() uint32 { return h.Radiators * h.Weight }

// Heat sums the weighted radiators of the 3x3 neighbourhood around c.
func (g *Grid) Heat(c Coord) uint32 {
	var heat uint32
	g.eachNeighbour(c, func(n Coord, cell *Cell, w uint32) {
		heat += cell.Radiators * w
	})
	return heat
}

// HeatSources lists the neighbours that currently warm c.
func (g *Grid) HeatSources(c Coord) []HeatSource {
	var out []HeatSource
	g.eachNeighbour(c, func(n Coord, cell *Cell, w uint32) {
		if cell.Radiators == 0 || w == 0 {
			return
		}
		out = append(out, HeatSource{From: n, Radiators: cell.Radiators, Weight: w})
	})
	return out
}

func (g *Grid) eachNeighbour(c Coord, fn func(Coord, *Cell, uint32)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			n := Coord{Row: c.Row + dr, Col: c.Col + dc}
			cell := g.CellAt(n)
			if cell == nil {
				continue
			}
			fn(n, cell, weight(dr, dc))
		}
	}
}

// Status classifies the cell at c by its current heat.
func (g *Grid) Status(c Coord) (Status, bool) {
	cell, ok := g.Get(c)
	if !ok {
		return Status{}, false
	}
	return Classify(g.Heat(c), cell.Capacity), true
}

// TotalGrowth sums the capacity of every fruiting cell.
func (g *Grid) TotalGrowth() uint32 {
	var total uint32
	for c := range g.All() {
		if s, ok := g.Status(c); ok {
			total += s.Yield()
		}
	}
	return total
}

// ActiveRadiators sums radiators over the whole grid.
func (g *Grid) ActiveRadiators() uint32 {
	var total uint32
	for _, cell := range g.cells {
		total += cell.Radiators
	}
	return total
}

// All yields every cell in row-major order. The sequence can be ranged over
// any number of times.
func (g *Grid) All() iter.Seq2[Coord, Cell] {
	return func(yield func(Coord, Cell) bool) {
		for i, cell := range g.cells {
			if !yield(Coord{Row: i / g.width, Col: i % g.width}, cell) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}
