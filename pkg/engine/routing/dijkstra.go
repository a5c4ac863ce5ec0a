package routing

import (
	"context"

	"github.com/lintang-b-s/navigatorx-weighting/pkg"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/costfunction"
	da "github.com/lintang-b-s/navigatorx-weighting/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/util"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/weighting"
)

const ctxCheckInterval = 1024

type label struct {
	weight     float64
	parent     da.Index // vertex (node-based) or edge (edge-based) label we came from
	parentEdge da.Index
	heapNode   *da.PriorityQueueNode[da.SearchKey]
	settled    bool
}

/*
Dijkstra. one-to-one search with a composed weighting.

node-based: one label per vertex, weightings are called with prev = nil.
edge-based: one label per edge (the edge used to enter its head), so turns are
known: weightings get the previous edge and turn costs are added.
*/
type Dijkstra struct {
	graph     *da.Graph
	weighting costfunction.Weighting
	mode      weighting.TraversalMode

	labels []label
	pq     *da.MinHeap[da.SearchKey]

	numSettledNodes int
}

func NewDijkstra(graph *da.Graph, w costfunction.Weighting, mode weighting.TraversalMode) *Dijkstra {
	return &Dijkstra{
		graph:     graph,
		weighting: w,
		mode:      mode,
		pq:        da.NewFourAryHeap[da.SearchKey](),
	}
}

func (d *Dijkstra) preallocate() {
	n := d.graph.NumberOfVertices()
	if d.mode.IsEdgeBased() {
		n = d.graph.NumberOfEdges()
	}
	d.labels = make([]label, n)
	for i := range d.labels {
		d.labels[i] = label{weight: pkg.INF_WEIGHT, parent: da.INVALID_VERTEX_ID, parentEdge: da.INVALID_EDGE_ID}
	}
	d.pq.Clear()
	d.numSettledNodes = 0
}

func (d *Dijkstra) GetNumSettledNodes() int {
	return d.numSettledNodes
}

// ShortestPathSearch. returns the best path from s to t, found = false if t is unreachable.
func (d *Dijkstra) ShortestPathSearch(ctx context.Context, s, t da.Index) (*Path, bool, error) {
	if s == t {
		return newPath(0, 0, 0, []da.Index{s}, []da.Index{}), true, nil
	}

	d.preallocate()
	if d.mode.IsEdgeBased() {
		return d.edgeBasedSearch(ctx, s, t)
	}
	return d.nodeBasedSearch(ctx, s, t)
}

func (d *Dijkstra) nodeBasedSearch(ctx context.Context, s, t da.Index) (*Path, bool, error) {
	d.labels[s].weight = 0
	d.insert(s, 0, da.NewNodeKey(s))

	for !d.pq.IsEmpty() {
		if d.numSettledNodes%ctxCheckInterval == 0 && util.StopConcurrentOperation(ctx) {
			return nil, false, ctx.Err()
		}

		item, _ := d.pq.ExtractMin()
		u := item.GetItem().GetNode()
		d.labels[u].settled = true
		d.numSettledNodes++

		if u == t {
			return d.unpackNodeBased(s, t), true, nil
		}

		d.graph.ForOutEdgesOf(u, func(e *da.OutEdge) {
			v := e.GetHead()
			if d.labels[v].settled {
				return
			}
			w := d.weighting.GetWeight(e, nil)
			if w >= pkg.INF_WEIGHT {
				return
			}
			newWeight := d.labels[u].weight + w
			if da.Ge(newWeight, d.labels[v].weight) {
				return
			}
			d.labels[v].parent = u
			d.labels[v].parentEdge = e.GetEdgeId()
			d.relax(v, newWeight, da.NewNodeKey(v))
		})
	}
	return nil, false, nil
}

func (d *Dijkstra) edgeBasedSearch(ctx context.Context, s, t da.Index) (*Path, bool, error) {
	gs := d.graph.GetGraphStorage()

	d.graph.ForOutEdgesOf(s, func(e *da.OutEdge) {
		w := d.weighting.GetWeight(e, nil)
		if w >= pkg.INF_WEIGHT {
			return
		}
		eId := e.GetEdgeId()
		d.labels[eId].weight = w
		d.insert(eId, w, da.NewEdgeKey(e.GetHead(), eId))
	})

	for !d.pq.IsEmpty() {
		if d.numSettledNodes%ctxCheckInterval == 0 && util.StopConcurrentOperation(ctx) {
			return nil, false, ctx.Err()
		}

		item, _ := d.pq.ExtractMin()
		key := item.GetItem()
		inId := key.GetEdge()
		u := key.GetNode()
		d.labels[inId].settled = true
		d.numSettledNodes++

		if u == t {
			return d.unpackEdgeBased(s, inId), true, nil
		}

		inEdge := d.graph.GetOutEdge(inId)
		d.graph.ForOutEdgesOf(u, func(e *da.OutEdge) {
			eId := e.GetEdgeId()
			if d.labels[eId].settled {
				return
			}
			turnCost := d.weighting.GetTurnCost(getTurnType(gs, inEdge, e))
			if turnCost >= pkg.INF_WEIGHT {
				return
			}
			w := d.weighting.GetWeight(e, inEdge)
			if w >= pkg.INF_WEIGHT {
				return
			}
			newWeight := d.labels[inId].weight + turnCost + w
			if da.Ge(newWeight, d.labels[eId].weight) {
				return
			}
			d.labels[eId].parent = inId
			d.labels[eId].parentEdge = inId
			d.relax(eId, newWeight, da.NewEdgeKey(e.GetHead(), eId))
		})
	}
	return nil, false, nil
}

func (d *Dijkstra) insert(id da.Index, weight float64, key da.SearchKey) {
	node := da.NewPriorityQueueNode(weight, key)
	d.labels[id].heapNode = node
	d.pq.Insert(node)
}

func (d *Dijkstra) relax(id da.Index, newWeight float64, key da.SearchKey) {
	alreadyLabelled := d.labels[id].heapNode != nil
	d.labels[id].weight = newWeight
	if alreadyLabelled {
		_ = d.pq.DecreaseKey(d.labels[id].heapNode, newWeight)
		return
	}
	d.insert(id, newWeight, key)
}

func (d *Dijkstra) unpackNodeBased(s, t da.Index) *Path {
	edgePath := make([]da.Index, 0)
	for v := t; v != s; v = d.labels[v].parent {
		edgePath = append(edgePath, d.labels[v].parentEdge)
	}
	return d.buildPath(s, util.ReverseG(edgePath), d.labels[t].weight)
}

func (d *Dijkstra) unpackEdgeBased(s, lastEdge da.Index) *Path {
	edgePath := make([]da.Index, 0)
	for e := lastEdge; e != da.INVALID_EDGE_ID; e = d.labels[e].parent {
		edgePath = append(edgePath, e)
	}
	return d.buildPath(s, util.ReverseG(edgePath), d.labels[lastEdge].weight)
}

// buildPath. travel time and distance are summed along the path, weight is the search label.
func (d *Dijkstra) buildPath(s da.Index, edgePath []da.Index, weight float64) *Path {
	vertices := make([]da.Index, 0, len(edgePath)+1)
	vertices = append(vertices, s)

	travelTime, dist := 0.0, 0.0
	var prev costfunction.EdgeAttributes
	for _, eId := range edgePath {
		e := d.graph.GetOutEdge(eId)
		if d.mode.IsEdgeBased() {
			travelTime += d.weighting.GetTravelTime(e, prev)
			prev = e
		} else {
			travelTime += d.weighting.GetTravelTime(e, nil)
		}
		dist += e.GetLength()
		vertices = append(vertices, e.GetHead())
	}
	return newPath(weight, travelTime, dist, vertices, edgePath)
}
