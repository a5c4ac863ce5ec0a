package weighting

import (
	"maps"
	"slices"

	"github.com/spf13/cast"
)

const (
	KEY_CUSTOM_WEIGHTINGS = "custom_weightings"
	KEY_EDGE_BASED        = "edge_based"
	KEY_WEIGHTING         = "weighting"
	KEY_PROFILE           = "profile"
)

// HintsMap. flat request parameters, read-only once composition starts
type HintsMap struct {
	m map[string]string
}

func NewHintsMap(m map[string]string) HintsMap {
	return HintsMap{m: maps.Clone(m)}
}

func (h HintsMap) Has(key string) bool {
	_, ok := h.m[key]
	return ok
}

func (h HintsMap) GetString(key, def string) string {
	v, ok := h.m[key]
	if !ok {
		return def
	}
	return v
}

// GetBool. boolean-like value of key; def if the key is absent or the value is not boolean-like
func (h HintsMap) GetBool(key string, def bool) bool {
	v, ok := h.m[key]
	if !ok {
		return def
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return def
	}
	return b
}

// SortedKeys. keys in lexicographic order
func (h HintsMap) SortedKeys() []string {
	return slices.Sorted(maps.Keys(h.m))
}

func (h HintsMap) ToMap() map[string]string {
	return maps.Clone(h.m)
}

func (h HintsMap) Len() int {
	return len(h.m)
}
