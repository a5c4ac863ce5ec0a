package weighting

import (
	"strings"

	"github.com/lintang-b-s/navigatorx-weighting/pkg"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/costfunction"
)

// AdditionWeighting. base weight plus the weight of every soft weighting for the same edge.
// travel time and turn costs are the base ones.
type AdditionWeighting struct {
	base       costfunction.Weighting
	weightings []costfunction.Weighting
}

func NewAdditionWeighting(weightings []costfunction.Weighting, base costfunction.Weighting) *AdditionWeighting {
	ws := make([]costfunction.Weighting, len(weightings))
	copy(ws, weightings)
	return &AdditionWeighting{base: base, weightings: ws}
}

func (aw *AdditionWeighting) GetWeight(e, prev costfunction.EdgeAttributes) float64 {
	sum := aw.base.GetWeight(e, prev)
	for _, w := range aw.weightings {
		sum += w.GetWeight(e, prev)
	}
	return sum
}

func (aw *AdditionWeighting) GetTravelTime(e, prev costfunction.EdgeAttributes) float64 {
	return aw.base.GetTravelTime(e, prev)
}

func (aw *AdditionWeighting) GetTurnCost(turnType pkg.TurnType) float64 {
	return aw.base.GetTurnCost(turnType)
}

func (aw *AdditionWeighting) Name() string {
	names := make([]string, 0, len(aw.weightings)+1)
	names = append(names, aw.base.Name())
	for _, w := range aw.weightings {
		names = append(names, w.Name())
	}
	return strings.Join(names, "+")
}

func (aw *AdditionWeighting) GetBase() costfunction.Weighting {
	return aw.base
}

func (aw *AdditionWeighting) GetWeightings() []costfunction.Weighting {
	return aw.weightings
}
