package costfunction

import (
	"github.com/lintang-b-s/navigatorx-weighting/pkg"
)

// DistanceFunction. shortest weighting, weight = length in meter
type DistanceFunction struct {
	encoder SpeedEncoder
}

func NewDistanceCostFunction(encoder SpeedEncoder) *DistanceFunction {
	return &DistanceFunction{encoder: encoder}
}

func (df *DistanceFunction) GetWeight(e, prev EdgeAttributes) float64 {
	if df.encoder.GetSpeed(e.GetHighwayType(), e.GetEdgeSpeed()) <= 0 {
		return pkg.INF_WEIGHT
	}
	return e.GetLength()
}

func (df *DistanceFunction) GetTravelTime(e, prev EdgeAttributes) float64 {
	return travelTime(df.encoder, e)
}

// U-turns stay forbidden, other turns are free: the weight unit is meter.
func (df *DistanceFunction) GetTurnCost(turnType pkg.TurnType) float64 {
	return turnCost(turnType, false)
}

func (df *DistanceFunction) Name() string {
	return SHORTEST
}
