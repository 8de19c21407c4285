package garden

import (
	"fmt"
	"strings"

	"pineapples/pkg/core"
)

// DefaultPool is the number of radiators available to the budget variant.
const DefaultPool uint32 = 5

// Mode selects how an Increment command affects a cell.
type Mode uint8

const (
	// ModeBudget toggles radiators against a shared pool.
	ModeBudget Mode = iota
	// ModeToggle flips radiators between 0 and 1 without a pool.
	ModeToggle
	// ModeCounter counts clicks per cell and never heats anything.
	ModeCounter
)

func (m Mode) String() string {
	switch m {
	case ModeBudget:
		return "budget"
	case ModeToggle:
		return "toggle"
	case ModeCounter:
		return "counter"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode accepts the names returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "budget":
		return ModeBudget, nil
	case "toggle":
		return ModeToggle, nil
	case "counter":
		return ModeCounter, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

// Model is the full greenhouse state.
type Model struct {
	Grid *Grid
	Mode Mode

	// Available is the unused part of the radiator pool (budget mode only).
	Available uint32
	// PoolSize is the total radiator budget.
	PoolSize uint32
}

// NewModel wraps grid with a full pool of DefaultPool radiators.
func NewModel(grid *Grid, mode Mode) Model {
	m := Model{Grid: grid, Mode: mode, PoolSize: DefaultPool}
	m.Available = DefaultPool - min(DefaultPool, grid.ActiveRadiators())
	return m
}

// RandomModel builds a randomized grid from rng.
func RandomModel(rng *core.RNG, mode Mode) Model {
	return NewModel(Random(rng), mode)
}

// WithPool returns a copy of m with the pool resized. Radiators already
// active keep their units; the pool cannot shrink below them.
func (m Model) WithPool(size uint32) Model {
	active := m.Grid.ActiveRadiators()
	if size < active {
		size = active
	}
	m.PoolSize = size
	m.Available = size - active
	return m
}

// Msg is a command applied by Update.
type Msg interface {
	isMsg()
}

// Increment is a click on the cell at (Row, Col).
type Increment struct {
	Row, Col int
}

func (Increment) isMsg() {}

// Update applies msg to a copy of m and returns the copy. m is not modified.
func Update(m Model, msg Msg) Model {
	switch msg := msg.(type) {
	case Increment:
		next := m
		next.Grid = m.Grid.Clone()
		next.increment(Coord{Row: msg.Row, Col: msg.Col})
		return next
	default:
		return m
	}
}

func (m *Model) increment(c Coord) {
	cell := m.Grid.CellAt(c)
	if cell == nil {
		return
	}
	switch m.Mode {
	case ModeToggle:
		if cell.Radiators == 0 {
			cell.Radiators = 1
		} else {
			cell.Radiators = 0
		}
	case ModeBudget:
		if cell.Radiators == 1 {
			cell.Radiators = 0
			m.Available++
		} else if m.Available > 0 {
			cell.Radiators = 1
			m.Available--
		}
	case ModeCounter:
		cell.Clicks++
	}
}
