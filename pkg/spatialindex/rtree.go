package spatialindex

import (
	"math"

	"github.com/lintang-b-s/navigatorx-weighting/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr    *rtree.RTreeG[datastructure.Index]
	graph *datastructure.Graph
}

// Candidate. edge near a query point, with the perpendicular distance (meter) and the closer endpoint
type Candidate struct {
	edgeId   datastructure.Index
	vertex   datastructure.Index
	distance float64
}

func (c Candidate) GetEdgeId() datastructure.Index {
	return c.edgeId
}

func (c Candidate) GetVertex() datastructure.Index {
	return c.vertex
}

func (c Candidate) GetDistance() float64 {
	return c.distance
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[datastructure.Index]
	return &Rtree{
		tr: &tr,
	}
}

// Build. build r-tree, with each leaf having bounding box with radius boundingBoxRadius (in km)
func (rt *Rtree) Build(graph *datastructure.Graph, boundingBoxRadius float64, log *zap.Logger) {
	log.Info("Building R-tree spatial index...", zap.Int("edges", graph.NumberOfEdges()))
	rt.graph = graph

	graph.ForOutEdges(func(e *datastructure.OutEdge) {
		fromLat, fromLon := graph.GetVertexCoordinates(e.GetTail())
		toLat, toLon := graph.GetVertexCoordinates(e.GetHead())
		lowerFromLat, lowerFromLon := geo.GetDestinationPoint(fromLat, fromLon, 225, boundingBoxRadius)
		upperFromLat, upperFromLon := geo.GetDestinationPoint(fromLat, fromLon, 45, boundingBoxRadius)

		lowerToLat, lowerToLon := geo.GetDestinationPoint(toLat, toLon, 225, boundingBoxRadius)
		upperToLat, upperToLon := geo.GetDestinationPoint(toLat, toLon, 45, boundingBoxRadius)

		minLat := math.Min(lowerFromLat, lowerToLat)
		minLon := math.Min(lowerFromLon, lowerToLon)
		maxLat := math.Max(upperFromLat, upperToLat)
		maxLon := math.Max(upperFromLon, upperToLon)

		rt.tr.Insert([2]float64{minLon, minLat}, [2]float64{maxLon, maxLat}, e.GetEdgeId())
	})

	log.Info("R-tree spatial index built.")
}

// SearchWithinRadius search for all edges within radius (in km) from the query point (qLat, qLon)
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []Candidate {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius)

	query := geo.NewCoordinate(qLat, qLon)
	results := make([]Candidate, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, edgeId datastructure.Index) bool {
			results = append(results, rt.candidate(edgeId, query))
			return len(results) < 20
		})
	return results
}

// Snap. nearest vertex to (qLat, qLon) reachable through an edge within radius km.
func (rt *Rtree) Snap(qLat, qLon, radius float64) (datastructure.Index, bool) {
	cands := rt.SearchWithinRadius(qLat, qLon, radius)
	if len(cands) == 0 {
		return datastructure.INVALID_VERTEX_ID, false
	}

	best := cands[0]
	for _, c := range cands[1:] {
		if c.distance < best.distance ||
			(c.distance == best.distance && c.edgeId < best.edgeId) {
			best = c
		}
	}
	return best.vertex, true
}

func (rt *Rtree) candidate(edgeId datastructure.Index, query geo.Coordinate) Candidate {
	e := rt.graph.GetOutEdge(edgeId)
	tailLat, tailLon := rt.graph.GetVertexCoordinates(e.GetTail())
	headLat, headLon := rt.graph.GetVertexCoordinates(e.GetHead())
	tail := geo.NewCoordinate(tailLat, tailLon)
	head := geo.NewCoordinate(headLat, headLon)

	vertex := e.GetTail()
	if geo.CalculateHaversineDistance(qLatLon(query, head)) < geo.CalculateHaversineDistance(qLatLon(query, tail)) {
		vertex = e.GetHead()
	}

	return Candidate{
		edgeId:   edgeId,
		vertex:   vertex,
		distance: geo.PointLinePerpendicularDistance(tail, head, query),
	}
}

func qLatLon(a, b geo.Coordinate) (float64, float64, float64, float64) {
	return a.GetLat(), a.GetLon(), b.GetLat(), b.GetLon()
}
