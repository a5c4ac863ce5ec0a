package modifier

import (
	"github.com/lintang-b-s/navigatorx-weighting/pkg"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/costfunction"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/util"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/weighting"
)

const (
	defaultMaximumGradient = 15.0 // percent
	hillPenaltyPerMeter    = 10.0 // extra weight per meter climbed
)

// AvoidHillsWeighting. penalizes climbing, edges steeper than maximum_gradient uphill are not used
type AvoidHillsWeighting struct {
	softWeighting
	maximumGradient float64
	factor          float64
	storage         weighting.GraphStorage
}

func NewAvoidHillsWeighting(encoder weighting.FlagEncoder, config weighting.PMap,
	storage weighting.GraphStorage) (costfunction.Weighting, error) {
	if err := requireStorage(AVOID_HILLS, storage); err != nil {
		return nil, err
	}
	maxGradient, err := config.GetFloat64("maximum_gradient", defaultMaximumGradient)
	if err != nil {
		return nil, err
	}
	if maxGradient <= 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "maximum_gradient must be positive, got %v", maxGradient)
	}
	factor, err := readFactor(AVOID_HILLS, config)
	if err != nil {
		return nil, err
	}
	return &AvoidHillsWeighting{
		softWeighting:   softWeighting{name: AVOID_HILLS},
		maximumGradient: maxGradient,
		factor:          factor,
		storage:         storage,
	}, nil
}

func (aw *AvoidHillsWeighting) GetWeight(e, prev costfunction.EdgeAttributes) float64 {
	id := e.GetEdgeId()
	if aw.storage.GetSlope(id) > aw.maximumGradient {
		return pkg.INF_WEIGHT
	}
	return aw.factor * aw.storage.GetElevationGain(id) * hillPenaltyPerMeter
}
