package life

import (
	"strconv"

	"torus-life/internal/core"
)

// Parameters reports the fixed configuration and live run state.
func (l *Life) Parameters() core.ParameterSnapshot {
	l.mu.Lock()
	state, ticks, pop := l.state, l.ticks, l.grid.Population()
	l.mu.Unlock()

	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", l.cfg.Width),
				intParam("h", "Height", l.cfg.Height),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("max_ticks", "Max ticks", l.cfg.MaxTicks),
				{Key: "tick_delay", Label: "Tick delay", Type: core.ParamTypeDuration, Value: l.cfg.TickDelay.String()},
			},
		},
		{
			Name: "Status",
			Params: []core.Parameter{
				{Key: "state", Label: "State", Type: core.ParamTypeString, Value: state.String()},
				intParam("tick", "Tick", ticks),
				intParam("population", "Population", pop),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
