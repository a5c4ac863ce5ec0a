package weighting

import (
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

const (
	WEIGHTING_PREFIX    = "weighting_#"
	ATTRIBUTE_SEPARATOR = "#"
)

// EncodeName. weighting_#<name>
func EncodeName(name string) string {
	return WEIGHTING_PREFIX + name
}

// EncodeAttribute. weighting_#<name>#<attribute>
func EncodeAttribute(name, attribute string) string {
	return EncodeName(name) + ATTRIBUTE_SEPARATOR + attribute
}

// DecodeName. modifier name of a weighting_#<name>[#<attribute>] key, false for any other key
func DecodeName(key string) (string, bool) {
	rest, ok := strings.CutPrefix(key, WEIGHTING_PREFIX)
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(rest, ATTRIBUTE_SEPARATOR)
	if name == "" {
		return "", false
	}
	return name, true
}

// DiscoverModifierNames. distinct modifier names in order of first appearance, keys are
// visited in lexicographic order so the result does not depend on map iteration.
func DiscoverModifierNames(hints HintsMap) []string {
	names := linkedhashset.New()
	for _, key := range hints.SortedKeys() {
		if name, ok := DecodeName(key); ok {
			names.Add(name)
		}
	}

	res := make([]string, 0, names.Size())
	for _, v := range names.Values() {
		res = append(res, v.(string))
	}
	return res
}
