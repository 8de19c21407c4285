// Package garden models a greenhouse grid where radiators heat their
// neighbourhood and each cell's heat decides whether it bears fruit.
package garden

import "fmt"

// Heat thresholds used to classify a cell.
const (
	MinHeat  uint32 = 3
	MaxHeat  uint32 = 6
	Overheat uint32 = 8
)

// Kernel weights by Manhattan distance from the queried cell.
const (
	WeightSelf       uint32 = 5
	WeightOrthogonal uint32 = 3
	WeightDiagonal   uint32 = 1
)

// DefaultCapacity is the yield of a cell built by New.
const DefaultCapacity uint32 = 5

// Coord addresses a cell by zero-based row and column.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string { return fmt.Sprintf("%d/%d", c.Row, c.Col) }

// Cell is one addressable greenhouse plot.
type Cell struct {
	// Capacity is the number of pineapples the cell yields while fruiting.
	Capacity uint32
	// Radiators counts active heating elements in the cell.
	Radiators uint32
	// Clicks is only touched by the counter variant.
	Clicks uint32
}

// DefaultCell returns an empty plot with the default capacity.
func DefaultCell() Cell {
	return Cell{Capacity: DefaultCapacity}
}

// GrowthStatus enumerates the heat bands, coldest first.
type GrowthStatus uint8

const (
	TooCold GrowthStatus = iota
	Fruiting
	TooHot
	Overheated
)

func (s GrowthStatus) String() string {
	switch s {
	case TooCold:
		return "too cold"
	case Fruiting:
		return "fruiting"
	case TooHot:
		return "too hot"
	case Overheated:
		return "overheated"
	default:
		return fmt.Sprintf("GrowthStatus(%d)", uint8(s))
	}
}

// Status is a derived classification. Capacity is set only for Fruiting.
type Status struct {
	Kind     GrowthStatus
	Capacity uint32
}

// Yield returns the pineapples this status contributes to the harvest.
func (s Status) Yield() uint32 {
	if s.Kind != Fruiting {
		return 0
	}
	return s.Capacity
}

// Classify maps a heat value onto a status for a cell of the given capacity.
func Classify(heat, capacity uint32) Status {
	switch {
	case heat < MinHeat:
		return Status{Kind: TooCold}
	case heat <= MaxHeat:
		return Status{Kind: Fruiting, Capacity: capacity}
	case heat < Overheat:
		return Status{Kind: TooHot}
	default:
		return Status{Kind: Overheated}
	}
}

// weight returns the kernel weight for a neighbour offset.
func weight(dr, dc int) uint32 {
	switch abs(dr) + abs(dc) {
	case 0:
		return WeightSelf
	case 1:
		return WeightOrthogonal
	case 2:
		return WeightDiagonal
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
