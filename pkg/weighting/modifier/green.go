package modifier

import (
	"github.com/lintang-b-s/navigatorx-weighting/pkg/costfunction"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/weighting"
)

// GreenWeighting. prefers edges through vegetation, weight grows with the missing green share
type GreenWeighting struct {
	softWeighting
	factor  float64
	storage weighting.GraphStorage
}

func NewGreenWeighting(encoder weighting.FlagEncoder, config weighting.PMap,
	storage weighting.GraphStorage) (costfunction.Weighting, error) {
	if err := requireStorage(GREEN, storage); err != nil {
		return nil, err
	}
	factor, err := readFactor(GREEN, config)
	if err != nil {
		return nil, err
	}
	return &GreenWeighting{
		softWeighting: softWeighting{name: GREEN},
		factor:        factor,
		storage:       storage,
	}, nil
}

func (gw *GreenWeighting) GetWeight(e, prev costfunction.EdgeAttributes) float64 {
	green := clamp01(gw.storage.GetGreenIndex(e.GetEdgeId()))
	return gw.factor * e.GetLength() * (1 - green)
}
