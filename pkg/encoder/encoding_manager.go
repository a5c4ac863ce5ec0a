package encoder

import (
	"fmt"
	"strings"

	"github.com/lintang-b-s/navigatorx-weighting/pkg/util"
	"github.com/spf13/cast"
)

// EncodingManager. the set of travel profiles a graph was prepared for
type EncodingManager struct {
	encoders []*FlagEncoder
	byName   map[string]*FlagEncoder
}

func NewEncodingManager(encoders ...*FlagEncoder) *EncodingManager {
	em := &EncodingManager{
		encoders: make([]*FlagEncoder, 0, len(encoders)),
		byName:   make(map[string]*FlagEncoder, len(encoders)),
	}
	for _, enc := range encoders {
		em.encoders = append(em.encoders, enc)
		em.byName[enc.Name()] = enc
	}
	return em
}

/*
ParseEncoders. builds encoders from a comma separated list, options follow the name
separated by '|':

	car|turn_costs=true|max_speed=120,bike,foot
*/
func ParseEncoders(s string) (*EncodingManager, error) {
	encoders := make([]*FlagEncoder, 0)
	seen := make(map[string]struct{})
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		enc, err := parseEncoder(part)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[enc.Name()]; ok {
			return nil, util.WrapErrorf(nil, util.ErrConflict, "encoder %s declared twice", enc.Name())
		}
		seen[enc.Name()] = struct{}{}
		encoders = append(encoders, enc)
	}
	if len(encoders) == 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "no encoder in %q", s)
	}
	return NewEncodingManager(encoders...), nil
}

func parseEncoder(s string) (*FlagEncoder, error) {
	fields := strings.Split(s, "|")
	name := strings.ToLower(strings.TrimSpace(fields[0]))

	turnCosts := false
	maxSpeed := -1.0
	for _, opt := range fields[1:] {
		kv := strings.SplitN(opt, "=", 2)
		if len(kv) != 2 {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "malformed encoder option %q for %s", opt, name)
		}
		key, value := strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])
		switch key {
		case "turn_costs":
			b, err := cast.ToBoolE(value)
			if err != nil {
				return nil, util.WrapErrorf(err, util.ErrBadParamInput, "turn_costs of %s", name)
			}
			turnCosts = b
		case "max_speed":
			f, err := cast.ToFloat64E(value)
			if err != nil || f <= 0 {
				return nil, util.WrapErrorf(err, util.ErrBadParamInput, "max_speed of %s must be a positive number", name)
			}
			maxSpeed = f
		default:
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "unknown encoder option %q for %s", key, name)
		}
	}

	switch name {
	case CAR:
		if maxSpeed < 0 {
			maxSpeed = 140
		}
		return newCarEncoder(maxSpeed, turnCosts), nil
	case BIKE:
		if maxSpeed < 0 {
			maxSpeed = 30
		}
		return newBikeEncoder(maxSpeed, turnCosts), nil
	case FOOT:
		if maxSpeed < 0 {
			maxSpeed = 15
		}
		return newFootEncoder(maxSpeed, turnCosts), nil
	default:
		return nil, util.WrapErrorf(nil, util.ErrNotFound, "unknown encoder %q", name)
	}
}

func (em *EncodingManager) GetEncoder(name string) (*FlagEncoder, error) {
	enc, ok := em.byName[strings.ToLower(name)]
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrNotFound, "profile %s is not configured, available: %s",
			name, strings.Join(em.Names(), ", "))
	}
	return enc, nil
}

// Default. first configured encoder
func (em *EncodingManager) Default() *FlagEncoder {
	return em.encoders[0]
}

func (em *EncodingManager) Names() []string {
	names := make([]string, 0, len(em.encoders))
	for _, enc := range em.encoders {
		names = append(names, enc.Name())
	}
	return names
}

func (em *EncodingManager) String() string {
	parts := make([]string, 0, len(em.encoders))
	for _, enc := range em.encoders {
		parts = append(parts, fmt.Sprintf("%s|turn_costs=%t", enc.Name(), enc.SupportsTurnCosts()))
	}
	return strings.Join(parts, ",")
}
