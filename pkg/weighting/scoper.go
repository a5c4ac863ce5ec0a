package weighting

import "strings"

/*
ScopeModifierParams. configuration of modifier name taken from the full hints map.

For every key, the first occurrence of the marker weighting_#<name> is searched anywhere in the
key; the attribute name is what follows the marker and one separator character. This is a plain
substring match: "weighting_#green" also matches inside "weighting_#greenery#x" (attribute "ry#x")
and inside "foo_weighting_#green#a". Keys that end right at the marker carry no attribute and are
skipped.
*/
func ScopeModifierParams(name string, hints HintsMap) PMap {
	res := make(PMap)

	marker := EncodeName(name)
	n := len(marker)

	for _, key := range hints.SortedKeys() {
		p := strings.Index(key, marker)
		if p < 0 {
			continue
		}
		attrStart := p + n + 1
		if attrStart > len(key) {
			continue
		}
		res[key[attrStart:]] = hints.GetString(key, "")
	}

	return res
}
