package usecases

import (
	"github.com/lintang-b-s/navigatorx-weighting/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/engine/routing"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/geo"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/guidance"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/util"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/weighting"
)

func (rs *RoutingService) snap(lat, lon float64, what string) (datastructure.Index, error) {
	v, ok := rs.spatialIndex.Snap(lat, lon, rs.searchRadius)
	if !ok {
		return datastructure.INVALID_VERTEX_ID, util.WrapErrorf(ErrNoNearbyRoads, util.ErrBadParamInput,
			"%s %f,%f is more than %.3f km away from any road", what, lat, lon, rs.searchRadius)
	}
	return v, nil
}

func (rs *RoutingService) snapOrigDest(origLat, origLon, dstLat, dstLon float64) (datastructure.Index,
	datastructure.Index, error) {
	s, err := rs.snap(origLat, origLon, "origin")
	if err != nil {
		return 0, 0, err
	}
	t, err := rs.snap(dstLat, dstLon, "destination")
	if err != nil {
		return 0, 0, err
	}
	return s, t, nil
}

func (rs *RoutingService) pathCoordinates(path *routing.Path) []geo.Coordinate {
	coords := make([]geo.Coordinate, 0, len(path.GetVertices()))
	for _, v := range path.GetVertices() {
		lat, lon := rs.engine.GetGraph().GetVertexCoordinates(v)
		coords = append(coords, geo.NewCoordinate(lat, lon))
	}
	return coords
}

func (rs *RoutingService) instructions(path *routing.Path, comp *weighting.Composition) []Instruction {
	db := guidance.NewDirectionBuilder(rs.engine.GetGraph(), comp.GetWeighting(), comp.GetTraversalMode().IsEdgeBased())
	steps := db.GetDrivingDirections(path.GetEdges())
	instructions := make([]Instruction, 0, len(steps))
	for _, step := range steps {
		instructions = append(instructions, Instruction{
			Sign:       step.GetSign().String(),
			Lat:        step.GetPoint().GetLat(),
			Lon:        step.GetPoint().GetLon(),
			Bearing:    step.GetBearing(),
			OsmWayId:   step.GetOsmWayId(),
			Distance:   step.GetDistance(),
			TravelTime: step.GetTravelTime(),
		})
	}
	return instructions
}
