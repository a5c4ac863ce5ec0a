package costfunction

import (
	"github.com/lintang-b-s/navigatorx-weighting/pkg"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/datastructure"
)

type EdgeAttributes interface {
	GetEdgeId() datastructure.Index
	GetTail() datastructure.Index
	GetHead() datastructure.Index
	GetLength() float64
	GetEdgeSpeed() float64
	GetHighwayType() pkg.OsmHighwayType
}

// Weighting. cost of traversing edge e. prev is the edge used to reach e's tail in
// edge-based search and nil in node-based search. implementations must be pure,
// the search calls them concurrently.
type Weighting interface {
	GetWeight(e, prev EdgeAttributes) float64
	// GetTravelTime. in seconds
	GetTravelTime(e, prev EdgeAttributes) float64
	GetTurnCost(turnType pkg.TurnType) float64
	Name() string
}

type SpeedEncoder interface {
	GetSpeed(h pkg.OsmHighwayType, edgeSpeed float64) float64
}

const (
	FASTEST  = "fastest"
	SHORTEST = "shortest"
)
