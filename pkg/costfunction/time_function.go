package costfunction

import (
	"github.com/lintang-b-s/navigatorx-weighting/pkg"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/util"
)

// TimeFunction. fastest weighting, weight = travel time in seconds
type TimeFunction struct {
	encoder   SpeedEncoder
	turnCosts bool
}

func NewTimeCostFunction(encoder SpeedEncoder, turnCosts bool) *TimeFunction {
	return &TimeFunction{encoder: encoder, turnCosts: turnCosts}
}

func (tf *TimeFunction) GetWeight(e, prev EdgeAttributes) float64 {
	return tf.GetTravelTime(e, prev)
}

func (tf *TimeFunction) GetTravelTime(e, prev EdgeAttributes) float64 {
	return travelTime(tf.encoder, e)
}

func (tf *TimeFunction) GetTurnCost(turnType pkg.TurnType) float64 {
	return turnCost(turnType, tf.turnCosts)
}

func (tf *TimeFunction) Name() string {
	return FASTEST
}

func travelTime(encoder SpeedEncoder, e EdgeAttributes) float64 {
	speed := encoder.GetSpeed(e.GetHighwayType(), e.GetEdgeSpeed())
	if speed <= 0 {
		return pkg.INF_WEIGHT
	}
	return e.GetLength() / util.KmhToMeterPerSecond(speed)
}

func turnCost(turnType pkg.TurnType, withTurnCosts bool) float64 {
	switch turnType {
	case pkg.U_TURN:
		return pkg.INF_WEIGHT
	case pkg.NO_ENTRY:
		return pkg.INF_WEIGHT
	case pkg.LEFT_TURN:
		if withTurnCosts {
			return pkg.LEFT_TURN_COST_SECOND
		}
		return 0
	case pkg.RIGHT_TURN:
		if withTurnCosts {
			return pkg.RIGHT_TURN_COST_SECOND
		}
		return 0
	default:
		return 0
	}
}
