package routing

import (
	"context"
	"testing"

	"github.com/lintang-b-s/navigatorx-weighting/pkg"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/costfunction"
	da "github.com/lintang-b-s/navigatorx-weighting/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/encoder"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/weighting"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/weighting/modifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// test graph, A-B-D is a noisy main road and C a quiet detour. E only reaches D.
//
//	    C
//	   / \
//	A---B---D
//	        |
//	        E
func buildTestGraph() (*da.Graph, map[string]da.Index) {
	gb := da.NewGraphBuilder()
	ids := map[string]da.Index{}
	ids["A"] = gb.AddVertex(0, 0, 0)
	ids["B"] = gb.AddVertex(0, 0.001, 0)
	ids["D"] = gb.AddVertex(0, 0.002, 0)
	ids["C"] = gb.AddVertex(0.001, 0.001, 0)
	ids["E"] = gb.AddVertex(-0.001, 0.002, 0)

	gb.AddEdge(da.RawEdge{From: ids["A"], To: ids["B"], Dist: 111, Speed: 30, HighwayType: pkg.RESIDENTIAL, OsmWayId: 1,
		NoiseLevel: 1, Bidirectional: true})
	gb.AddEdge(da.RawEdge{From: ids["B"], To: ids["D"], Dist: 111, Speed: 30, HighwayType: pkg.RESIDENTIAL, OsmWayId: 1,
		NoiseLevel: 1, Bidirectional: true})
	gb.AddEdge(da.RawEdge{From: ids["A"], To: ids["C"], Dist: 157, Speed: 30, HighwayType: pkg.RESIDENTIAL, OsmWayId: 2,
		Bidirectional: true})
	gb.AddEdge(da.RawEdge{From: ids["C"], To: ids["D"], Dist: 157, Speed: 30, HighwayType: pkg.RESIDENTIAL, OsmWayId: 3,
		Bidirectional: true})
	gb.AddEdge(da.RawEdge{From: ids["E"], To: ids["D"], Dist: 111, Speed: 30, HighwayType: pkg.RESIDENTIAL, OsmWayId: 4})
	return gb.Build(), ids
}

func carEncoder(t *testing.T) *encoder.FlagEncoder {
	t.Helper()
	em, err := encoder.ParseEncoders("car|turn_costs=true")
	require.NoError(t, err)
	return em.Default()
}

func compose(t *testing.T, g *da.Graph, hints map[string]string) *weighting.Composition {
	t.Helper()
	enc := carEncoder(t)
	base := costfunction.NewTimeCostFunction(enc, enc.SupportsTurnCosts())
	comp, err := weighting.NewComposer(modifier.NewRegistry()).Compose(base, weighting.NewHintsMap(hints), enc,
		g.GetGraphStorage())
	require.NoError(t, err)
	return comp
}

func TestShortestPathSearch(t *testing.T) {
	g, ids := buildTestGraph()

	testCases := []struct {
		name         string
		hints        map[string]string
		expectedMode weighting.TraversalMode
		expectedPath []string
	}{
		{name: "fastest edge-based", hints: map[string]string{},
			expectedMode: weighting.EDGE_BASED, expectedPath: []string{"A", "B", "D"}},
		{name: "fastest node-based", hints: map[string]string{"edge_based": "false"},
			expectedMode: weighting.NODE_BASED, expectedPath: []string{"A", "B", "D"}},
		{name: "quiet edge-based", hints: map[string]string{"custom_weightings": "true",
			"weighting_#quiet#factor": "1"},
			expectedMode: weighting.EDGE_BASED, expectedPath: []string{"A", "C", "D"}},
		{name: "quiet node-based", hints: map[string]string{"custom_weightings": "true", "edge_based": "false",
			"weighting_#quiet#factor": "1"},
			expectedMode: weighting.NODE_BASED, expectedPath: []string{"A", "C", "D"}},
		{name: "quiet requested but custom weightings off", hints: map[string]string{
			"weighting_#quiet#factor": "1"},
			expectedMode: weighting.EDGE_BASED, expectedPath: []string{"A", "B", "D"}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			comp := compose(t, g, tt.hints)
			assert.Equal(t, tt.expectedMode, comp.GetTraversalMode())

			d := NewDijkstra(g, comp.GetWeighting(), comp.GetTraversalMode())
			path, found, err := d.ShortestPathSearch(context.Background(), ids["A"], ids["D"])
			require.NoError(t, err)
			require.True(t, found)

			expected := make([]da.Index, 0, len(tt.expectedPath))
			for _, name := range tt.expectedPath {
				expected = append(expected, ids[name])
			}
			assert.Equal(t, expected, path.GetVertices())
			assert.Len(t, path.GetEdges(), len(expected)-1)
			assert.Greater(t, d.GetNumSettledNodes(), 0)

			// travel time stays the base travel time of the chosen edges
			speed := 30 * 1000 / 3600.0
			assert.InDelta(t, path.GetDistance()/speed, path.GetTravelTime(), 1e-6)
		})
	}
}

func TestShortestPathSearchTurnCosts(t *testing.T) {
	g, ids := buildTestGraph()

	edgeBased := compose(t, g, map[string]string{})
	nodeBased := compose(t, g, map[string]string{"edge_based": "false", "custom_weightings": "true",
		"weighting_#quiet#factor": "1"})

	// both C -> A -> B and C -> D -> B are 268 m long. C -> A heads south-west and A -> B east (left
	// turn), C -> D heads south-east and D -> B west (right turn), so the cheaper turn decides.
	pe, found, err := NewDijkstra(g, edgeBased.GetWeighting(), edgeBased.GetTraversalMode()).
		ShortestPathSearch(context.Background(), ids["C"], ids["B"])
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []da.Index{ids["C"], ids["D"], ids["B"]}, pe.GetVertices())

	speed := 30 * 1000 / 3600.0
	assert.InDelta(t, (157+111)/speed+pkg.RIGHT_TURN_COST_SECOND, pe.GetWeight(), 1e-6)

	pn, found, err := NewDijkstra(g, nodeBased.GetWeighting(), nodeBased.GetTraversalMode()).
		ShortestPathSearch(context.Background(), ids["C"], ids["B"])
	require.NoError(t, err)
	require.True(t, found)
	// quiet adds 111 (noise 1 on A -> B and D -> B) and no turn cost in node-based mode
	assert.InDelta(t, (157+111)/speed+111, pn.GetWeight(), 1e-6)
}

func TestShortestPathSearchEdgeCases(t *testing.T) {
	g, ids := buildTestGraph()
	comp := compose(t, g, map[string]string{})

	for _, mode := range []weighting.TraversalMode{weighting.NODE_BASED, weighting.EDGE_BASED} {
		t.Run(mode.String(), func(t *testing.T) {
			d := NewDijkstra(g, comp.GetWeighting(), mode)

			path, found, err := d.ShortestPathSearch(context.Background(), ids["A"], ids["E"])
			require.NoError(t, err)
			assert.False(t, found)
			assert.Nil(t, path)

			path, found, err = d.ShortestPathSearch(context.Background(), ids["B"], ids["B"])
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, []da.Index{ids["B"]}, path.GetVertices())
			assert.Equal(t, 0.0, path.GetWeight())

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, found, err = d.ShortestPathSearch(ctx, ids["A"], ids["D"])
			assert.ErrorIs(t, err, context.Canceled)
			assert.False(t, found)
		})
	}
}

func TestGetTurnType(t *testing.T) {
	g, ids := buildTestGraph()
	gs := g.GetGraphStorage()

	edgeBetween := func(u, v da.Index) *da.OutEdge {
		var found *da.OutEdge
		g.ForOutEdgesOf(u, func(e *da.OutEdge) {
			if e.GetHead() == v {
				found = e
			}
		})
		require.NotNil(t, found)
		return found
	}

	ab := edgeBetween(ids["A"], ids["B"])
	assert.Equal(t, pkg.STRAIGHT_ON, getTurnType(gs, ab, edgeBetween(ids["B"], ids["D"])))
	assert.Equal(t, pkg.U_TURN, getTurnType(gs, ab, edgeBetween(ids["B"], ids["A"])))
	assert.Equal(t, pkg.RIGHT_TURN, getTurnType(gs, edgeBetween(ids["A"], ids["C"]), edgeBetween(ids["C"], ids["D"])))
	assert.Equal(t, pkg.LEFT_TURN, getTurnType(gs, edgeBetween(ids["C"], ids["A"]), ab))
}
