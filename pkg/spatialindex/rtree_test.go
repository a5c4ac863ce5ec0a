package spatialindex

import (
	"testing"

	"github.com/lintang-b-s/navigatorx-weighting/pkg"
	da "github.com/lintang-b-s/navigatorx-weighting/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func buildGraph() *da.Graph {
	gb := da.NewGraphBuilder()
	a := gb.AddVertex(-7.7600, 110.3700, 0)
	b := gb.AddVertex(-7.7600, 110.3710, 0)
	c := gb.AddVertex(-7.7610, 110.3710, 0)
	gb.AddEdge(da.RawEdge{From: a, To: b, Dist: 110, HighwayType: pkg.RESIDENTIAL, OsmWayId: 1, Bidirectional: true})
	gb.AddEdge(da.RawEdge{From: b, To: c, Dist: 110, HighwayType: pkg.RESIDENTIAL, OsmWayId: 2, Bidirectional: true})
	return gb.Build()
}

func TestSnap(t *testing.T) {
	g := buildGraph()
	rt := NewRtree()
	rt.Build(g, 0.05, zap.NewNop())

	cases := []struct {
		name     string
		lat, lon float64
		radius   float64
		want     da.Index
		found    bool
	}{
		{name: "near a", lat: -7.76001, lon: 110.37005, radius: 0.1, want: 0, found: true},
		{name: "near b", lat: -7.76002, lon: 110.37098, radius: 0.1, want: 1, found: true},
		{name: "near c", lat: -7.76095, lon: 110.37101, radius: 0.1, want: 2, found: true},
		{name: "too far", lat: -7.80, lon: 110.40, radius: 0.1, want: da.INVALID_VERTEX_ID, found: false},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := rt.Snap(tt.lat, tt.lon, tt.radius)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestSearchWithinRadius(t *testing.T) {
	g := buildGraph()
	rt := NewRtree()
	rt.Build(g, 0.05, zap.NewNop())

	cands := rt.SearchWithinRadius(-7.7600, 110.3705, 0.05)
	assert.NotEmpty(t, cands)
	for _, c := range cands {
		e := g.GetOutEdge(c.GetEdgeId())
		assert.Contains(t, []da.Index{e.GetTail(), e.GetHead()}, c.GetVertex())
		assert.GreaterOrEqual(t, c.GetDistance(), 0.0)
	}
}
