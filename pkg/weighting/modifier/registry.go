package modifier

import (
	"github.com/lintang-b-s/navigatorx-weighting/pkg"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/costfunction"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/util"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/weighting"
)

const (
	STEEPNESS_DIFFICULTY = "steepness_difficulty"
	AVOID_HILLS          = "avoid_hills"
	GREEN                = "green"
	QUIET                = "quiet"
	ACCELERATION         = "acceleration"
)

var constructors = map[string]weighting.ModifierConstructor{
	STEEPNESS_DIFFICULTY: NewSteepnessDifficultyWeighting,
	AVOID_HILLS:          NewAvoidHillsWeighting,
	GREEN:                NewGreenWeighting,
	QUIET:                NewQuietWeighting,
	ACCELERATION:         NewAccelerationWeighting,
}

// NewRegistry. registry of every soft weighting this package provides
func NewRegistry() *weighting.Registry {
	return weighting.NewRegistry(constructors)
}

// softWeighting. modifiers only add weight, time and turn costs come from the base weighting
type softWeighting struct {
	name string
}

func (sw softWeighting) GetTravelTime(e, prev costfunction.EdgeAttributes) float64 {
	return 0
}

func (sw softWeighting) GetTurnCost(turnType pkg.TurnType) float64 {
	return 0
}

func (sw softWeighting) Name() string {
	return sw.name
}

func requireStorage(name string, storage weighting.GraphStorage) error {
	if storage == nil {
		return util.WrapErrorf(nil, util.ErrInternalServerError, "%s weighting requires extended graph storage", name)
	}
	return nil
}

// readFactor. attribute "factor" in [0, 1]
func readFactor(name string, config weighting.PMap) (float64, error) {
	factor, err := config.GetFloat64("factor", 1.0)
	if err != nil {
		return 0, err
	}
	if factor < 0 || factor > 1 {
		return 0, util.WrapErrorf(nil, util.ErrBadParamInput, "%s factor must be within [0, 1], got %v", name, factor)
	}
	return factor, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
