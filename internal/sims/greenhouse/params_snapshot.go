package greenhouse

import (
	"strconv"

	"pineapples/internal/core"
	"pineapples/pkg/garden"
)

// Parameter keys exposed to the HUD.
const (
	ParamPool       = "pool"
	ParamAvailable  = "radiators_available"
	ParamPineapples = "pineapples"
)

const maxPool = 16

func (w *World) Parameters() core.ParameterSnapshot {
	m := w.store.Model()
	size := w.Size()
	groups := []core.ParameterGroup{
		{
			Name: "Greenhouse",
			Params: []core.Parameter{
				textParam("mode", "Mode", m.Mode.String()),
				intParam("w", "Width", size.W),
				intParam("h", "Height", size.H),
				int64Param("seed", "Seed", w.seed),
			},
		},
		{
			Name: "Harvest",
			Params: []core.Parameter{
				uintParam(ParamPineapples, "Pineapples", m.Grid.TotalGrowth()),
				uintParam("radiators_active", "Radiators on", m.Grid.ActiveRadiators()),
			},
		},
		{
			Name:    "Heat",
			Summary: "cold < min <= fruiting <= max < hot < overheat",
			Params: []core.Parameter{
				uintParam("min_heat", "Min heat", garden.MinHeat),
				uintParam("max_heat", "Max heat", garden.MaxHeat),
				uintParam("overheat", "Overheat", garden.Overheat),
			},
		},
	}
	if m.Mode == garden.ModeBudget {
		groups[1].Params = append(groups[1].Params,
			uintParam(ParamAvailable, "Radiators available", m.Available),
			uintParam(ParamPool, "Radiator pool", m.PoolSize),
		)
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable values. Only the budget variant
// has a pool to adjust.
func (w *World) ParameterControls() []core.ParameterControl {
	if w.cfg.Mode != garden.ModeBudget {
		return nil
	}
	return []core.ParameterControl{{
		Key:    ParamPool,
		Label:  "Radiator pool",
		Step:   1,
		Min:    0,
		Max:    maxPool,
		HasMin: true,
		HasMax: true,
	}}
}

// SetIntParameter resizes the radiator pool. The pool never drops below the
// radiators already switched on.
func (w *World) SetIntParameter(key string, value int) bool {
	if key != ParamPool || w.cfg.Mode != garden.ModeBudget {
		return false
	}
	if value < 0 {
		value = 0
	}
	if value > maxPool {
		value = maxPool
	}
	next := w.store.Model().WithPool(uint32(value))
	w.cfg.Pool = int(next.PoolSize)
	w.store.Replace(next)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func uintParam(key, label string, value uint32) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(uint64(value), 10),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeText,
		Value: value,
	}
}
