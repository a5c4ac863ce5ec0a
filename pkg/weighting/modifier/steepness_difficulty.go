package modifier

import (
	"math"

	"github.com/lintang-b-s/navigatorx-weighting/pkg/costfunction"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/util"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/weighting"
)

// comfortable gradient in percent per difficulty level, 0 = novice .. 3 = expert
var steepnessThresholds = [4]float64{3, 6, 9, 12}

// SteepnessDifficultyWeighting. penalizes gradients above what the requested difficulty level handles
type SteepnessDifficultyWeighting struct {
	softWeighting
	threshold float64
	storage   weighting.GraphStorage
}

func NewSteepnessDifficultyWeighting(encoder weighting.FlagEncoder, config weighting.PMap,
	storage weighting.GraphStorage) (costfunction.Weighting, error) {
	if err := requireStorage(STEEPNESS_DIFFICULTY, storage); err != nil {
		return nil, err
	}
	level, err := config.GetInt("level", 1)
	if err != nil {
		return nil, err
	}
	if level < 0 || level >= len(steepnessThresholds) {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "steepness difficulty level must be within [0, %d], got %d",
			len(steepnessThresholds)-1, level)
	}
	return &SteepnessDifficultyWeighting{
		softWeighting: softWeighting{name: STEEPNESS_DIFFICULTY},
		threshold:     steepnessThresholds[level],
		storage:       storage,
	}, nil
}

func (sw *SteepnessDifficultyWeighting) GetWeight(e, prev costfunction.EdgeAttributes) float64 {
	slope := math.Abs(sw.storage.GetSlope(e.GetEdgeId()))
	if slope <= sw.threshold {
		return 0
	}
	return e.GetLength() * (slope - sw.threshold) / sw.threshold
}
