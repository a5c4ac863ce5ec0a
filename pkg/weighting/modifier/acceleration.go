package modifier

import (
	"math"

	"github.com/lintang-b-s/navigatorx-weighting/pkg/costfunction"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/geo"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/util"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/weighting"
)

const (
	acceleration          = 1.5 // m/s^2
	trafficLightStopRatio = 0.5
	minTurnAngle          = 30.0 // degree
)

/*
AccelerationWeighting. seconds lost braking and accelerating again.

speeding up from 0 to v takes v/a seconds and covers v^2/(2a) meter, cruising the same distance
takes v/(2a), so a full stop costs v/(2a) seconds. a turn of delta degree costs delta/180 of a
full stop, a traffic light at the edge's tail half of one.

turns are only known in edge-based search, where prev is set.
*/
type AccelerationWeighting struct {
	softWeighting
	factor  float64
	encoder weighting.FlagEncoder
	storage weighting.GraphStorage
}

func NewAccelerationWeighting(encoder weighting.FlagEncoder, config weighting.PMap,
	storage weighting.GraphStorage) (costfunction.Weighting, error) {
	if err := requireStorage(ACCELERATION, storage); err != nil {
		return nil, err
	}
	factor, err := config.GetFloat64("factor", 1.0)
	if err != nil {
		return nil, err
	}
	if factor < 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "acceleration factor must not be negative, got %v", factor)
	}
	return &AccelerationWeighting{
		softWeighting: softWeighting{name: ACCELERATION},
		factor:        factor,
		encoder:       encoder,
		storage:       storage,
	}, nil
}

func (aw *AccelerationWeighting) GetWeight(e, prev costfunction.EdgeAttributes) float64 {
	speed := util.KmhToMeterPerSecond(aw.encoder.GetSpeed(e.GetHighwayType(), e.GetEdgeSpeed()))
	if speed <= 0 {
		return 0
	}
	fullStop := speed / (2 * acceleration)

	penalty := 0.0
	if prev != nil {
		delta := math.Abs(geo.DeltaBearing(aw.storage.GetFinalBearing(prev.GetEdgeId()),
			aw.storage.GetInitialBearing(e.GetEdgeId())))
		if delta >= minTurnAngle {
			penalty += fullStop * delta / 180
		}
	}
	if aw.storage.GetTrafficLight(e.GetTail()) {
		penalty += fullStop * trafficLightStopRatio
	}
	return aw.factor * penalty
}
