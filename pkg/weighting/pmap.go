package weighting

import (
	"github.com/lintang-b-s/navigatorx-weighting/pkg/util"
	"github.com/spf13/cast"
)

// PMap. scoped configuration of one modifier, keys are attribute names without the
// weighting_#<name># namespace.
type PMap map[string]string

func (p PMap) Has(key string) bool {
	_, ok := p[key]
	return ok
}

func (p PMap) GetString(key, def string) string {
	v, ok := p[key]
	if !ok {
		return def
	}
	return v
}

func (p PMap) GetFloat64(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, util.WrapErrorf(err, util.ErrBadParamInput, "attribute %s=%q is not a number", key, v)
	}
	return f, nil
}

func (p PMap) GetInt(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, util.WrapErrorf(err, util.ErrBadParamInput, "attribute %s=%q is not an integer", key, v)
	}
	return i, nil
}

func (p PMap) GetBool(key string, def bool) (bool, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, util.WrapErrorf(err, util.ErrBadParamInput, "attribute %s=%q is not a boolean", key, v)
	}
	return b, nil
}
