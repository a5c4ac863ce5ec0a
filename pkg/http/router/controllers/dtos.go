package controllers

import (
	"github.com/lintang-b-s/navigatorx-weighting/pkg/geo"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/http/usecases"
)

type coordinate struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

type shortestPathRequest struct {
	OriginLat      float64           `json:"origin_lat" validate:"min=-90,max=90"`
	OriginLon      float64           `json:"origin_lon" validate:"min=-180,max=180"`
	DestinationLat float64           `json:"destination_lat" validate:"min=-90,max=90"`
	DestinationLon float64           `json:"destination_lon" validate:"min=-180,max=180"`
	Hints          map[string]string `json:"-"`
}

type shortestPathBody struct {
	Origin      coordinate        `json:"origin"`
	Destination coordinate        `json:"destination"`
	Profile     string            `json:"profile" validate:"omitempty,alpha"`
	Weighting   string            `json:"weighting" validate:"omitempty,oneof=fastest shortest"`
	Hints       map[string]string `json:"hints"`
}

type matrixRequest struct {
	Origin       coordinate        `json:"origin"`
	Destinations []coordinate      `json:"destinations" validate:"required,min=1,max=100,dive"`
	Profile      string            `json:"profile" validate:"omitempty,alpha"`
	Weighting    string            `json:"weighting" validate:"omitempty,oneof=fastest shortest"`
	Hints        map[string]string `json:"hints"`
}

type shortestPathResponse struct {
	Eta              float64               `json:"eta"`
	Path             string                `json:"path"`
	Dist             float64               `json:"distance"`
	Weight           float64               `json:"weight"`
	Weighting        string                `json:"weighting"`
	TraversalMode    string                `json:"traversal_mode"`
	AppliedModifiers []string              `json:"applied_weightings"`
	SkippedModifiers []string              `json:"skipped_weightings"`
	Instructions     []instructionResponse `json:"instructions"`
}

type instructionResponse struct {
	Sign     string     `json:"sign"`
	Location coordinate `json:"location"`
	Bearing  float64    `json:"bearing"`
	OsmWayId int64      `json:"osm_way_id"`
	Dist     float64    `json:"distance"`
	Eta      float64    `json:"eta"`
}

func NewShortestPathResponse(route *usecases.Route) shortestPathResponse {
	instructions := make([]instructionResponse, 0, len(route.Instructions))
	for _, ins := range route.Instructions {
		instructions = append(instructions, instructionResponse{
			Sign:     ins.Sign,
			Location: coordinate{Lat: ins.Lat, Lon: ins.Lon},
			Bearing:  ins.Bearing,
			OsmWayId: ins.OsmWayId,
			Dist:     ins.Distance,
			Eta:      ins.TravelTime,
		})
	}
	return shortestPathResponse{
		Eta:              route.TravelTime,
		Path:             route.Polyline,
		Dist:             route.Distance,
		Weight:           route.Weight,
		Weighting:        route.Weighting,
		TraversalMode:    route.TraversalMode,
		AppliedModifiers: route.AppliedModifiers,
		SkippedModifiers: route.SkippedModifiers,
		Instructions:     instructions,
	}
}

type matrixEntryResponse struct {
	Destination int     `json:"destination"`
	Found       bool    `json:"found"`
	Eta         float64 `json:"eta"`
	Dist        float64 `json:"distance"`
	Weight      float64 `json:"weight"`
}

func NewMatrixResponse(entries []usecases.MatrixEntry) []matrixEntryResponse {
	resp := make([]matrixEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, matrixEntryResponse{
			Destination: e.Index,
			Found:       e.Found,
			Eta:         e.TravelTime,
			Dist:        e.Distance,
			Weight:      e.Weight,
		})
	}
	return resp
}

type weightingsResponse struct {
	Weightings []string `json:"weightings"`
	Profiles   []string `json:"profiles"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// mergeHints. explicit profile and weighting fields take precedence over the same keys in hints
func mergeHints(hints map[string]string, profile, weighting string) map[string]string {
	merged := make(map[string]string, len(hints)+2)
	for k, v := range hints {
		merged[k] = v
	}
	if profile != "" {
		merged["profile"] = profile
	}
	if weighting != "" {
		merged["weighting"] = weighting
	}
	return merged
}

func toCoordinates(cs []coordinate) []geo.Coordinate {
	out := make([]geo.Coordinate, 0, len(cs))
	for _, c := range cs {
		out = append(out, geo.NewCoordinate(c.Lat, c.Lon))
	}
	return out
}
