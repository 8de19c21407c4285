package greenhouse

import (
	"context"
	"log/slog"

	"pineapples/internal/core"
	pcore "pineapples/pkg/core"
	"pineapples/pkg/garden"
)

// Registered variant names.
const (
	NameBudget  = "greenhouse"
	NameToggle  = "radiators"
	NameCounter = "counters"
)

// World adapts a garden.Store to the core.Sim contract and keeps a display
// buffer in sync with every state change.
type World struct {
	cfg   Config
	name  string
	store *garden.Store

	display *core.Layer
	seed    int64
	log     *slog.Logger
}

// New returns a budgeted greenhouse of the given size using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.RandomSize = false
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World configured from the provided options and
// seeded with cfg.Seed.
func NewWithConfig(cfg Config) *World {
	w := &World{
		cfg:     cfg,
		name:    nameFor(cfg.Mode),
		display: core.NewLayer(cfg.Width, cfg.Height),
	}
	w.log = slog.Default().With("sim", w.name)
	w.store = garden.NewStore(garden.Model{Grid: garden.New(cfg.Width, cfg.Height), Mode: cfg.Mode})
	w.store.Subscribe(func(m garden.Model) { w.rebuildDisplay(m) })
	w.Reset(cfg.Seed)
	return w
}

// SetLogger replaces the logger used for click and reset traces.
func (w *World) SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	w.log = l.With("sim", w.name)
}

func nameFor(mode garden.Mode) string {
	switch mode {
	case garden.ModeToggle:
		return NameToggle
	case garden.ModeCounter:
		return NameCounter
	default:
		return NameBudget
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return w.name }

// Size reports the grid dimensions.
func (w *World) Size() core.Size {
	width, height := w.store.Model().Grid.Dimensions()
	return core.Size{W: width, H: height}
}

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Model returns the current greenhouse state.
func (w *World) Model() garden.Model { return w.store.Model() }

// Seed reports the seed used by the last Reset.
func (w *World) Seed() int64 { return w.seed }

// Reset rebuilds the grid from seed. A zero seed falls back to the config seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.seed = effective
	model := BuildModel(w.cfg, effective)
	width, height := model.Grid.Dimensions()
	w.display.Resize(width, height)
	w.store.Replace(model)
	w.log.Info("greenhouse reset", "seed", effective, "width", width, "height", height, "mode", w.cfg.Mode.String())
}

// BuildModel creates the initial greenhouse for cfg using seed.
func BuildModel(cfg Config, seed int64) garden.Model {
	rng := pcore.NewRNG(seed)

	var grid *garden.Grid
	switch {
	case cfg.Uniform && cfg.RandomSize:
		grid = garden.New(rng.IntRange(garden.RandomSizeMin, garden.RandomSizeMax), rng.IntRange(garden.RandomSizeMin, garden.RandomSizeMax))
	case cfg.Uniform:
		grid = garden.New(cfg.Width, cfg.Height)
	case cfg.RandomSize:
		grid = garden.Random(rng)
	default:
		grid = garden.RandomSized(cfg.Width, cfg.Height, rng)
	}
	return garden.NewModel(grid, cfg.Mode).WithPool(uint32(cfg.Pool))
}

// Click applies an Increment command to the cell at (row, col).
func (w *World) Click(row, col int) {
	w.store.Dispatch(garden.Increment{Row: row, Col: col})
	if !w.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	m := w.store.Model()
	w.log.Debug("click", "row", row, "col", col, "available", m.Available, "pineapples", m.Grid.TotalGrowth())
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			target := garden.Coord{Row: row + dr, Col: col + dc}
			for _, src := range m.Grid.HeatSources(target) {
				w.log.Debug("heat", "from", src.From.String(), "to", target.String(), "radiators", src.Radiators, "amount", src.Amount())
			}
		}
	}
}

// Heat returns the heat at (row, col).
func (w *World) Heat(row, col int) uint32 {
	return w.store.Model().Grid.Heat(garden.Coord{Row: row, Col: col})
}

// Status classifies the cell at (row, col).
func (w *World) Status(row, col int) (garden.Status, bool) {
	return w.store.Model().Grid.Status(garden.Coord{Row: row, Col: col})
}

// Pineapples is the current total growth.
func (w *World) Pineapples() uint32 { return w.store.Model().Grid.TotalGrowth() }

func init() {
	core.Register(NameBudget, factoryFor(garden.ModeBudget))
	core.Register(NameToggle, factoryFor(garden.ModeToggle))
	core.Register(NameCounter, factoryFor(garden.ModeCounter))
}

func factoryFor(mode garden.Mode) core.Factory {
	return func(cfg map[string]string) core.Sim {
		base := DefaultConfig()
		base.Mode = mode
		c := base.Apply(cfg)
		c.Mode = mode
		return NewWithConfig(c)
	}
}
