package routing

import (
	da "github.com/lintang-b-s/navigatorx-weighting/pkg/datastructure"
)

type Path struct {
	weight     float64
	travelTime float64 // second
	dist       float64 // meter
	vertices   []da.Index
	edges      []da.Index
}

func newPath(weight, travelTime, dist float64, vertices, edges []da.Index) *Path {
	return &Path{
		weight:     weight,
		travelTime: travelTime,
		dist:       dist,
		vertices:   vertices,
		edges:      edges,
	}
}

func (p *Path) GetWeight() float64 {
	return p.weight
}

func (p *Path) GetTravelTime() float64 {
	return p.travelTime
}

func (p *Path) GetDistance() float64 {
	return p.dist
}

func (p *Path) GetVertices() []da.Index {
	return p.vertices
}

func (p *Path) GetEdges() []da.Index {
	return p.edges
}
