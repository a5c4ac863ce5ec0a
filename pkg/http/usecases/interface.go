package usecases

import (
	"github.com/lintang-b-s/navigatorx-weighting/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/encoder"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/weighting"
)

type RoutingEngine interface {
	GetGraph() *datastructure.Graph
	GetEncodingManager() *encoder.EncodingManager
	GetComposer() *weighting.Composer
}

type SpatialIndex interface {
	Snap(qLat, qLon, radius float64) (datastructure.Index, bool)
}

type Metrics interface {
	ObserveComposition(traversalMode string, applied, skipped []string)
	IncConfigurationError()
	ObserveSettledNodes(n int)
}
