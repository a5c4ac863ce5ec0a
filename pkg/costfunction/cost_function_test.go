package costfunction

import (
	"testing"

	"github.com/lintang-b-s/navigatorx-weighting/pkg"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSpeedEncoder struct {
	speed float64
}

func (f fixedSpeedEncoder) GetSpeed(h pkg.OsmHighwayType, edgeSpeed float64) float64 {
	if h == pkg.FOOTWAY {
		return 0
	}
	return f.speed
}

func TestBaseWeightings(t *testing.T) {
	enc := fixedSpeedEncoder{speed: 36} // 10 m/s
	road := datastructure.NewOutEdge(0, 0, 1, 100, 50, pkg.PRIMARY, 1)
	footway := datastructure.NewOutEdge(1, 1, 2, 100, 5, pkg.FOOTWAY, 2)

	testCases := []struct {
		name         string
		weighting    string
		edge         *datastructure.OutEdge
		expectedW    float64
		expectedTime float64
	}{
		{name: "fastest", weighting: FASTEST, edge: road, expectedW: 10, expectedTime: 10},
		{name: "default is fastest", weighting: "", edge: road, expectedW: 10, expectedTime: 10},
		{name: "shortest", weighting: SHORTEST, edge: road, expectedW: 100, expectedTime: 10},
		{name: "fastest inaccessible", weighting: FASTEST, edge: footway, expectedW: pkg.INF_WEIGHT,
			expectedTime: pkg.INF_WEIGHT},
		{name: "shortest inaccessible", weighting: SHORTEST, edge: footway, expectedW: pkg.INF_WEIGHT,
			expectedTime: pkg.INF_WEIGHT},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewBaseWeighting(tt.weighting, enc, true)
			require.NoError(t, err)
			assert.InDelta(t, tt.expectedW, w.GetWeight(tt.edge, nil), 1e-9)
			assert.InDelta(t, tt.expectedTime, w.GetTravelTime(tt.edge, nil), 1e-9)
		})
	}

	_, err := NewBaseWeighting("scenic", enc, false)
	require.Error(t, err)
	assert.Equal(t, util.ErrBadParamInput, util.ErrorCode(err))
}

func TestTurnCosts(t *testing.T) {
	enc := fixedSpeedEncoder{speed: 36}
	withTurnCosts := NewTimeCostFunction(enc, true)
	without := NewTimeCostFunction(enc, false)
	shortest := NewDistanceCostFunction(enc)

	assert.Equal(t, pkg.INF_WEIGHT, withTurnCosts.GetTurnCost(pkg.U_TURN))
	assert.Equal(t, pkg.INF_WEIGHT, without.GetTurnCost(pkg.NO_ENTRY))
	assert.Equal(t, pkg.LEFT_TURN_COST_SECOND, withTurnCosts.GetTurnCost(pkg.LEFT_TURN))
	assert.Equal(t, pkg.RIGHT_TURN_COST_SECOND, withTurnCosts.GetTurnCost(pkg.RIGHT_TURN))
	assert.Equal(t, 0.0, without.GetTurnCost(pkg.LEFT_TURN))
	assert.Equal(t, 0.0, withTurnCosts.GetTurnCost(pkg.STRAIGHT_ON))
	assert.Equal(t, 0.0, shortest.GetTurnCost(pkg.LEFT_TURN))
	assert.Equal(t, pkg.INF_WEIGHT, shortest.GetTurnCost(pkg.U_TURN))
}
