package datastructure

/*
----
edge extra info related section
----
*/

// EdgeExtraInfo. per-edge attributes consumed by soft weightings
type EdgeExtraInfo struct {
	elevationGain  float64 // meter
	elevationLoss  float64 // meter
	slope          float64 // percent, signed in travel direction
	greenIndex     float64 // 0 (no vegetation) .. 1 (park)
	noiseLevel     float64 // 0 (quiet) .. 1 (very noisy)
	initialBearing float64 // degree
	finalBearing   float64 // degree
}

func NewEdgeExtraInfo(elevationGain, elevationLoss, slope, greenIndex, noiseLevel, initialBearing,
	finalBearing float64) EdgeExtraInfo {
	return EdgeExtraInfo{
		elevationGain:  elevationGain,
		elevationLoss:  elevationLoss,
		slope:          slope,
		greenIndex:     greenIndex,
		noiseLevel:     noiseLevel,
		initialBearing: initialBearing,
		finalBearing:   finalBearing,
	}
}
