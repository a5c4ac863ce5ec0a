package weighting

import (
	"errors"

	"github.com/lintang-b-s/navigatorx-weighting/pkg/util"
)

type TraversalMode uint8

const (
	NODE_BASED TraversalMode = iota
	EDGE_BASED
)

func (t TraversalMode) IsEdgeBased() bool {
	return t == EDGE_BASED
}

func (t TraversalMode) String() string {
	if t == EDGE_BASED {
		return "edge_based"
	}
	return "node_based"
}

// TurnCostCapability. the part of a flag encoder the traversal mode depends on
type TurnCostCapability interface {
	SupportsTurnCosts() bool
}

var ErrConfiguration = errors.New("invalid routing configuration")

// ResolveTraversalMode. edge-based if the encoder supports turn costs, unless the edge_based
// hint says otherwise. an edge-based result on an encoder without turn costs is an error,
// an explicit edge_based=true is never downgraded.
func ResolveTraversalMode(hints HintsMap, encoder TurnCostCapability) (TraversalMode, error) {
	mode := NODE_BASED
	if encoder.SupportsTurnCosts() {
		mode = EDGE_BASED
	}

	if hints.Has(KEY_EDGE_BASED) {
		if hints.GetBool(KEY_EDGE_BASED, false) {
			mode = EDGE_BASED
		} else {
			mode = NODE_BASED
		}
	}

	if mode.IsEdgeBased() && !encoder.SupportsTurnCosts() {
		return NODE_BASED, util.WrapErrorf(ErrConfiguration, util.ErrBadParamInput,
			"edge-based routing requires a turn-cost-capable profile, e.g. use car|turn_costs=true")
	}
	return mode, nil
}
