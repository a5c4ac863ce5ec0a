package routing

import (
	"math"

	"github.com/lintang-b-s/navigatorx-weighting/pkg"
	da "github.com/lintang-b-s/navigatorx-weighting/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/geo"
)

const (
	straightMaxDelta = 30.0  // degree
	uTurnMinDelta    = 170.0 // degree
)

// getTurnType. turn from inEdge onto outEdge at their shared vertex, right-hand traffic.
func getTurnType(gs *da.GraphStorage, inEdge, outEdge *da.OutEdge) pkg.TurnType {
	if outEdge.GetHead() == inEdge.GetTail() && outEdge.GetOsmWayId() == inEdge.GetOsmWayId() {
		return pkg.U_TURN
	}

	delta := geo.DeltaBearing(gs.GetFinalBearing(inEdge.GetEdgeId()), gs.GetInitialBearing(outEdge.GetEdgeId()))
	absDelta := math.Abs(delta)
	switch {
	case absDelta < straightMaxDelta:
		return pkg.STRAIGHT_ON
	case absDelta >= uTurnMinDelta:
		return pkg.U_TURN
	case delta > 0:
		return pkg.RIGHT_TURN
	default:
		return pkg.LEFT_TURN
	}
}
