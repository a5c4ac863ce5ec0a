package datastructure

import (
	"math"
)

type GraphStorage struct {
	/*
		32 bit -> 32 boolean flag for trafficlight

		idx in flag array = floor(nodeID/32)
		idx in flag = nodeID % 32
	*/
	nodeTrafficLight []Index

	mapEdgeInfo []EdgeExtraInfo
}

func NewGraphStorage() *GraphStorage {
	return &GraphStorage{
		mapEdgeInfo:      make([]EdgeExtraInfo, 0),
		nodeTrafficLight: make([]Index, 0),
	}
}

func NewGraphStorageWithSize(numberOfEdges int, numberOfVertices int) *GraphStorage {
	return &GraphStorage{
		mapEdgeInfo:      make([]EdgeExtraInfo, numberOfEdges),
		nodeTrafficLight: make([]Index, numberOfVertices/32+1),
	}
}

func (gs *GraphStorage) SetTrafficLight(nodeID Index) {
	index := int(math.Floor(float64(nodeID) / 32))

	if len(gs.nodeTrafficLight) <= index {
		gs.nodeTrafficLight = append(gs.nodeTrafficLight, make([]Index, index-len(gs.nodeTrafficLight)+1)...)
	}

	gs.nodeTrafficLight[index] |= 1 << (nodeID % 32)
}

func (gs *GraphStorage) GetTrafficLight(nodeID Index) bool {
	index := int(math.Floor(float64(nodeID) / 32))
	if index >= len(gs.nodeTrafficLight) {
		return false
	}

	return (gs.nodeTrafficLight[index] & (1 << (nodeID % 32))) != 0
}

func (gs *GraphStorage) SetEdgeExtraInfo(edgeID Index, info EdgeExtraInfo) {
	if len(gs.mapEdgeInfo) <= int(edgeID) {
		gs.mapEdgeInfo = append(gs.mapEdgeInfo, make([]EdgeExtraInfo, int(edgeID)-len(gs.mapEdgeInfo)+1)...)
	}
	gs.mapEdgeInfo[edgeID] = info
}

func (gs *GraphStorage) GetElevationGain(edgeID Index) float64 {
	return gs.mapEdgeInfo[edgeID].elevationGain
}

func (gs *GraphStorage) GetElevationLoss(edgeID Index) float64 {
	return gs.mapEdgeInfo[edgeID].elevationLoss
}

func (gs *GraphStorage) GetSlope(edgeID Index) float64 {
	return gs.mapEdgeInfo[edgeID].slope
}

func (gs *GraphStorage) GetGreenIndex(edgeID Index) float64 {
	return gs.mapEdgeInfo[edgeID].greenIndex
}

func (gs *GraphStorage) GetNoiseLevel(edgeID Index) float64 {
	return gs.mapEdgeInfo[edgeID].noiseLevel
}

func (gs *GraphStorage) GetInitialBearing(edgeID Index) float64 {
	return gs.mapEdgeInfo[edgeID].initialBearing
}

func (gs *GraphStorage) GetFinalBearing(edgeID Index) float64 {
	return gs.mapEdgeInfo[edgeID].finalBearing
}
