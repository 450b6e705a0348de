package illness

import (
	"math"
	"strconv"

	"illness-ca/internal/core"
)

// Parameters reports the world and rule settings plus the current population
// for display.
func (b *Board) Parameters() core.ParameterSnapshot {
	cfg := b.cfg
	census := b.Census()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", cfg.Width),
				intParam("h", "Height", cfg.Height),
				int64Param("seed", "Seed", cfg.Seed),
				intParam("generation", "Generation", b.generation),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				floatParam("k1", "Infection divisor", cfg.Params.K1),
				floatParam("k2", "Illness divisor", cfg.Params.K2),
				intParam("g", "Growth", int(cfg.Params.G)),
				{
					Key:         "zero_infected",
					Label:       "Isolated infected",
					Type:        core.ParamTypeString,
					Value:       cfg.Params.ZeroInfected.String(),
					Description: "what an infected cell without infected neighbours becomes",
				},
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				intParam("healthy", "Healthy", census.Healthy),
				intParam("infected", "Infected", census.Infected),
				intParam("illed", "Illed", census.Illed),
			},
		},
	}}
}

// ParameterControls lists the rule parameters adjustable at runtime.
func (b *Board) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "k1", Label: "k1", Type: core.ParamTypeFloat, Step: 0.25, Min: 0.25, Max: 16, HasMin: true, HasMax: true},
		{Key: "k2", Label: "k2", Type: core.ParamTypeFloat, Step: 0.25, Min: 0.25, Max: 16, HasMin: true, HasMax: true},
		{Key: "g", Label: "g", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 255, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates k1 or k2, clamped to the control range.
func (b *Board) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) {
		return false
	}
	value = math.Max(0.25, math.Min(16, value))
	switch key {
	case "k1":
		b.cfg.Params.K1 = float32(value)
	case "k2":
		b.cfg.Params.K2 = float32(value)
	default:
		return false
	}
	return true
}

// SetIntParameter updates g, clamped to a byte.
func (b *Board) SetIntParameter(key string, value int) bool {
	if key != "g" {
		return false
	}
	if value < 0 {
		value = 0
	}
	if value > 255 {
		value = 255
	}
	b.cfg.Params.G = uint8(value)
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

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float32) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(float64(value), 'f', -1, 32),
	}
}
