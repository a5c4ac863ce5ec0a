package costfunction

import (
	"strings"

	"github.com/lintang-b-s/navigatorx-weighting/pkg/util"
)

// NewBaseWeighting. base cost function by name, empty name = fastest.
func NewBaseWeighting(name string, encoder SpeedEncoder, turnCosts bool) (Weighting, error) {
	switch strings.ToLower(name) {
	case "", FASTEST:
		return NewTimeCostFunction(encoder, turnCosts), nil
	case SHORTEST:
		return NewDistanceCostFunction(encoder), nil
	default:
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "unknown weighting %q, use %s or %s",
			name, FASTEST, SHORTEST)
	}
}
