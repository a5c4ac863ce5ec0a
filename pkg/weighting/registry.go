package weighting

import (
	"maps"
	"slices"

	"github.com/lintang-b-s/navigatorx-weighting/pkg"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/costfunction"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/datastructure"
)

type FlagEncoder interface {
	TurnCostCapability
	Name() string
	GetMaxSpeed() float64
	GetSpeed(h pkg.OsmHighwayType, edgeSpeed float64) float64
}

// GraphStorage. per-edge/per-vertex extension data modifiers read, passed through unexamined
type GraphStorage interface {
	GetElevationGain(edgeID datastructure.Index) float64
	GetElevationLoss(edgeID datastructure.Index) float64
	GetSlope(edgeID datastructure.Index) float64
	GetGreenIndex(edgeID datastructure.Index) float64
	GetNoiseLevel(edgeID datastructure.Index) float64
	GetInitialBearing(edgeID datastructure.Index) float64
	GetFinalBearing(edgeID datastructure.Index) float64
	GetTrafficLight(nodeID datastructure.Index) bool
}

// ModifierConstructor. builds a soft weighting from its scoped configuration.
// errors are returned to the caller of Compose unchanged.
type ModifierConstructor func(encoder FlagEncoder, config PMap, storage GraphStorage) (costfunction.Weighting, error)

// Registry. closed name -> constructor table, read-only after NewRegistry
type Registry struct {
	constructors map[string]ModifierConstructor
}

func NewRegistry(constructors map[string]ModifierConstructor) *Registry {
	return &Registry{constructors: maps.Clone(constructors)}
}

func (r *Registry) Lookup(name string) (ModifierConstructor, bool) {
	c, ok := r.constructors[name]
	return c, ok
}

func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.constructors))
}
