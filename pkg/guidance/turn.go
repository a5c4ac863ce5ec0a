package guidance

import (
	"math"

	"github.com/lintang-b-s/navigatorx-weighting/pkg/geo"
)

type Sign int

const (
	START Sign = iota
	CONTINUE_ON_STREET
	TURN_SLIGHT_LEFT
	TURN_SLIGHT_RIGHT
	TURN_LEFT
	TURN_RIGHT
	TURN_SHARP_LEFT
	TURN_SHARP_RIGHT
	U_TURN
	FINISH
)

func (s Sign) String() string {
	switch s {
	case START:
		return "start"
	case CONTINUE_ON_STREET:
		return "continue"
	case TURN_SLIGHT_LEFT:
		return "slight_left"
	case TURN_SLIGHT_RIGHT:
		return "slight_right"
	case TURN_LEFT:
		return "left"
	case TURN_RIGHT:
		return "right"
	case TURN_SHARP_LEFT:
		return "sharp_left"
	case TURN_SHARP_RIGHT:
		return "sharp_right"
	case U_TURN:
		return "u_turn"
	case FINISH:
		return "finish"
	default:
		return "unknown"
	}
}

// getTurnSign. prevBearing is the final bearing of the incoming edge, bearing the initial bearing of
// the outgoing one, both in degree.
func getTurnSign(prevBearing, bearing float64) Sign {
	delta := geo.DeltaBearing(prevBearing, bearing)
	deltaDegree := math.Abs(delta)
	switch {
	case deltaDegree < 12:
		return CONTINUE_ON_STREET
	case deltaDegree < 40:
		if delta < 0 {
			return TURN_SLIGHT_LEFT
		}
		return TURN_SLIGHT_RIGHT
	case deltaDegree < 105:
		if delta < 0 {
			return TURN_LEFT
		}
		return TURN_RIGHT
	case deltaDegree >= 170:
		return U_TURN
	case delta < 0:
		return TURN_SHARP_LEFT
	default:
		return TURN_SHARP_RIGHT
	}
}
