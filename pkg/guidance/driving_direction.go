package guidance

import (
	"github.com/lintang-b-s/navigatorx-weighting/pkg/costfunction"
	da "github.com/lintang-b-s/navigatorx-weighting/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/geo"
)

// Instruction. one maneuver at point, followed by distance meters (travelTime seconds) until the next one.
type Instruction struct {
	sign       Sign
	point      geo.Coordinate
	bearing    float64
	osmWayId   int64
	distance   float64
	travelTime float64
	edgeIds    []da.Index
}

func (ins *Instruction) GetSign() Sign {
	return ins.sign
}

func (ins *Instruction) GetPoint() geo.Coordinate {
	return ins.point
}

// GetBearing. heading after the maneuver, in degree
func (ins *Instruction) GetBearing() float64 {
	return ins.bearing
}

func (ins *Instruction) GetOsmWayId() int64 {
	return ins.osmWayId
}

func (ins *Instruction) GetDistance() float64 {
	return ins.distance
}

func (ins *Instruction) GetTravelTime() float64 {
	return ins.travelTime
}

func (ins *Instruction) GetEdgeIds() []da.Index {
	return ins.edgeIds
}

type DirectionBuilder struct {
	graph        *da.Graph
	weighting    costfunction.Weighting
	edgeBased    bool
	instructions []*Instruction
	prevEdge     *da.OutEdge
}

// NewDirectionBuilder. travel times of the steps use w the same way the search did, edgeBased passes the
// previous edge to w.
func NewDirectionBuilder(graph *da.Graph, w costfunction.Weighting, edgeBased bool) *DirectionBuilder {
	return &DirectionBuilder{
		graph:        graph,
		weighting:    w,
		edgeBased:    edgeBased,
		instructions: make([]*Instruction, 0),
	}
}

// GetDrivingDirections. consecutive edges without a maneuver between them are merged into one instruction.
// an empty path has no directions.
func (db *DirectionBuilder) GetDrivingDirections(path []da.Index) []*Instruction {
	if len(path) == 0 {
		return []*Instruction{}
	}
	for _, eId := range path {
		db.buildInstruction(db.graph.GetOutEdge(eId))
	}
	db.buildFinalInstruction()
	return db.instructions
}

func (db *DirectionBuilder) buildInstruction(edge *da.OutEdge) {
	gs := db.graph.GetGraphStorage()
	bearing := gs.GetInitialBearing(edge.GetEdgeId())

	var curr *Instruction
	if db.prevEdge == nil {
		curr = db.newInstruction(START, edge, bearing)
	} else {
		sign := getTurnSign(gs.GetFinalBearing(db.prevEdge.GetEdgeId()), bearing)
		if edge.GetHead() == db.prevEdge.GetTail() && edge.GetOsmWayId() == db.prevEdge.GetOsmWayId() {
			sign = U_TURN
		}
		if sign == CONTINUE_ON_STREET && edge.GetOsmWayId() == db.prevEdge.GetOsmWayId() {
			curr = db.instructions[len(db.instructions)-1]
		} else {
			curr = db.newInstruction(sign, edge, bearing)
		}
	}

	var prev costfunction.EdgeAttributes
	if db.edgeBased && db.prevEdge != nil {
		prev = db.prevEdge
	}
	curr.distance += edge.GetLength()
	curr.travelTime += db.weighting.GetTravelTime(edge, prev)
	curr.edgeIds = append(curr.edgeIds, edge.GetEdgeId())
	db.prevEdge = edge
}

func (db *DirectionBuilder) newInstruction(sign Sign, edge *da.OutEdge, bearing float64) *Instruction {
	lat, lon := db.graph.GetVertexCoordinates(edge.GetTail())
	ins := &Instruction{
		sign:     sign,
		point:    geo.NewCoordinate(lat, lon),
		bearing:  bearing,
		osmWayId: edge.GetOsmWayId(),
		edgeIds:  make([]da.Index, 0, 1),
	}
	db.instructions = append(db.instructions, ins)
	return ins
}

func (db *DirectionBuilder) buildFinalInstruction() {
	lat, lon := db.graph.GetVertexCoordinates(db.prevEdge.GetHead())
	db.instructions = append(db.instructions, &Instruction{
		sign:     FINISH,
		point:    geo.NewCoordinate(lat, lon),
		bearing:  db.graph.GetGraphStorage().GetFinalBearing(db.prevEdge.GetEdgeId()),
		osmWayId: db.prevEdge.GetOsmWayId(),
		edgeIds:  []da.Index{},
	})
}
