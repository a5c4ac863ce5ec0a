package datastructure

import (
	"math"

	"github.com/lintang-b-s/navigatorx-weighting/pkg"
)

type Index uint32

const (
	INVALID_VERTEX_ID Index = math.MaxUint32
	INVALID_EDGE_ID   Index = math.MaxUint32
)

type Vertex struct {
	lat       float64
	lon       float64
	elevation float64 // meter
	firstOut  Index   // index of the first outEdge of this vertex in the flattened graph.outEdges array
	id        Index
}

func NewVertex(lat, lon, elevation float64, id Index) *Vertex {
	return &Vertex{
		lat:       lat,
		lon:       lon,
		elevation: elevation,
		id:        id,
	}
}

func (v *Vertex) GetID() Index {
	return v.id
}

func (v *Vertex) GetLat() float64 {
	return v.lat
}

func (v *Vertex) GetLon() float64 {
	return v.lon
}

func (v *Vertex) GetElevation() float64 {
	return v.elevation
}

func (v *Vertex) GetFirstOut() Index {
	return v.firstOut
}

// OutEdge. directed road segment tail -> head
type OutEdge struct {
	dist        float64 // meter
	speed       float64 // km/h
	edgeId      Index
	tail, head  Index
	highwayType pkg.OsmHighwayType
	osmWayId    int64
}

func NewOutEdge(edgeId, tail, head Index, dist, speed float64, highwayType pkg.OsmHighwayType,
	osmWayId int64) *OutEdge {
	return &OutEdge{
		edgeId:      edgeId,
		tail:        tail,
		head:        head,
		dist:        dist,
		speed:       speed,
		highwayType: highwayType,
		osmWayId:    osmWayId,
	}
}

func (e *OutEdge) GetEdgeId() Index {
	return e.edgeId
}

func (e *OutEdge) GetLength() float64 {
	return e.dist
}

func (e *OutEdge) GetEdgeSpeed() float64 {
	return e.speed
}

func (e *OutEdge) GetHighwayType() pkg.OsmHighwayType {
	return e.highwayType
}

func (e *OutEdge) GetHead() Index {
	return e.head
}

func (e *OutEdge) GetTail() Index {
	return e.tail
}

func (e *OutEdge) GetOsmWayId() int64 {
	return e.osmWayId
}

// Graph. compressed sparse row adjacency, outEdges of u are outEdges[firstOut(u):firstOut(u+1)]
type Graph struct {
	vertices []*Vertex // len = n+1, last one is a sentinel
	outEdges []*OutEdge
	storage  *GraphStorage
}

func NewGraph(vertices []*Vertex, outEdges []*OutEdge) *Graph {
	return &Graph{vertices: vertices, outEdges: outEdges}
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices) - 1
}

func (g *Graph) NumberOfEdges() int {
	return len(g.outEdges)
}

func (g *Graph) GetVertex(u Index) *Vertex {
	return g.vertices[u]
}

func (g *Graph) GetVertexCoordinates(u Index) (float64, float64) {
	return g.vertices[u].lat, g.vertices[u].lon
}

func (g *Graph) GetOutDegree(u Index) Index {
	return g.vertices[u+1].firstOut - g.vertices[u].firstOut
}

func (g *Graph) GetOutEdge(e Index) *OutEdge {
	return g.outEdges[e]
}

func (g *Graph) ForOutEdgesOf(u Index, handle func(e *OutEdge)) {
	for e := g.vertices[u].firstOut; e < g.vertices[u+1].firstOut; e++ {
		handle(g.outEdges[e])
	}
}

func (g *Graph) ForOutEdges(handle func(e *OutEdge)) {
	for _, e := range g.outEdges {
		handle(e)
	}
}

func (g *Graph) SetGraphStorage(gs *GraphStorage) {
	g.storage = gs
}

func (g *Graph) GetGraphStorage() *GraphStorage {
	return g.storage
}
