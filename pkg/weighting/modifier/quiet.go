package modifier

import (
	"github.com/lintang-b-s/navigatorx-weighting/pkg/costfunction"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/weighting"
)

type QuietWeighting struct {
	softWeighting
	factor  float64
	storage weighting.GraphStorage
}

func NewQuietWeighting(encoder weighting.FlagEncoder, config weighting.PMap,
	storage weighting.GraphStorage) (costfunction.Weighting, error) {
	if err := requireStorage(QUIET, storage); err != nil {
		return nil, err
	}
	factor, err := readFactor(QUIET, config)
	if err != nil {
		return nil, err
	}
	return &QuietWeighting{
		softWeighting: softWeighting{name: QUIET},
		factor:        factor,
		storage:       storage,
	}, nil
}

func (qw *QuietWeighting) GetWeight(e, prev costfunction.EdgeAttributes) float64 {
	return qw.factor * e.GetLength() * clamp01(qw.storage.GetNoiseLevel(e.GetEdgeId()))
}
