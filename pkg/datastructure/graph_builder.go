package datastructure

import (
	"sort"

	"github.com/lintang-b-s/navigatorx-weighting/pkg"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/geo"
)

// RawEdge. road segment as read from the map source, before CSR layout
type RawEdge struct {
	From, To      Index
	Dist          float64 // meter
	Speed         float64 // km/h, 0 = not tagged
	HighwayType   pkg.OsmHighwayType
	OsmWayId      int64
	GreenIndex    float64
	NoiseLevel    float64
	Bidirectional bool
}

type GraphBuilder struct {
	vertices      []*Vertex
	edges         []RawEdge
	trafficLights []Index
}

func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{
		vertices: make([]*Vertex, 0),
		edges:    make([]RawEdge, 0),
	}
}

func (gb *GraphBuilder) AddVertex(lat, lon, elevation float64) Index {
	id := Index(len(gb.vertices))
	gb.vertices = append(gb.vertices, NewVertex(lat, lon, elevation, id))
	return id
}

func (gb *GraphBuilder) AddEdge(e RawEdge) {
	gb.edges = append(gb.edges, e)
}

func (gb *GraphBuilder) AddTrafficLight(u Index) {
	gb.trafficLights = append(gb.trafficLights, u)
}

// Build. lays out out edges grouped by tail and computes the per-edge storage
// (elevation, slope, bearings) from vertex data.
func (gb *GraphBuilder) Build() *Graph {
	directed := make([]RawEdge, 0, len(gb.edges)*2)
	for _, e := range gb.edges {
		directed = append(directed, e)
		if e.Bidirectional {
			rev := e
			rev.From, rev.To = e.To, e.From
			rev.Bidirectional = false
			directed = append(directed, rev)
		}
	}

	sort.SliceStable(directed, func(i, j int) bool {
		return directed[i].From < directed[j].From
	})

	n := len(gb.vertices)
	vertices := make([]*Vertex, n+1)
	copy(vertices, gb.vertices)
	vertices[n] = NewVertex(0, 0, 0, INVALID_VERTEX_ID)

	outEdges := make([]*OutEdge, len(directed))
	gs := NewGraphStorageWithSize(len(directed), n)

	cur := 0
	for u := 0; u <= n; u++ {
		vertices[u].firstOut = Index(cur)
		for cur < len(directed) && int(directed[cur].From) == u {
			e := directed[cur]
			eId := Index(cur)
			outEdges[cur] = NewOutEdge(eId, e.From, e.To, e.Dist, e.Speed, e.HighwayType, e.OsmWayId)
			gs.SetEdgeExtraInfo(eId, gb.edgeExtraInfo(e))
			cur++
		}
	}

	for _, u := range gb.trafficLights {
		gs.SetTrafficLight(u)
	}

	g := NewGraph(vertices, outEdges)
	g.SetGraphStorage(gs)
	return g
}

func (gb *GraphBuilder) edgeExtraInfo(e RawEdge) EdgeExtraInfo {
	from := gb.vertices[e.From]
	to := gb.vertices[e.To]

	diff := to.elevation - from.elevation
	gain, loss := 0.0, 0.0
	if diff > 0 {
		gain = diff
	} else {
		loss = -diff
	}
	slope := 0.0
	if e.Dist > 0 {
		slope = diff / e.Dist * 100
	}

	initialBearing := geo.BearingTo(from.lat, from.lon, to.lat, to.lon)
	finalBearing := geo.FinalBearing(from.lat, from.lon, to.lat, to.lon)

	return NewEdgeExtraInfo(gain, loss, slope, e.GreenIndex, e.NoiseLevel, initialBearing, finalBearing)
}
