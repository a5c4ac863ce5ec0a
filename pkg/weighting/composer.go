package weighting

import (
	"github.com/lintang-b-s/navigatorx-weighting/pkg/costfunction"
)

// Composition. result of composing a request's weighting
type Composition struct {
	weighting costfunction.Weighting
	mode      TraversalMode
	applied   []string
	skipped   []string
}

func (c *Composition) GetWeighting() costfunction.Weighting {
	return c.weighting
}

func (c *Composition) GetTraversalMode() TraversalMode {
	return c.mode
}

// GetAppliedModifiers. names of the soft weightings added to the base, in discovery order
func (c *Composition) GetAppliedModifiers() []string {
	return c.applied
}

// GetSkippedModifiers. requested names with no registered constructor
func (c *Composition) GetSkippedModifiers() []string {
	return c.skipped
}

type Composer struct {
	registry *Registry
}

func NewComposer(registry *Registry) *Composer {
	return &Composer{registry: registry}
}

func (c *Composer) GetRegistry() *Registry {
	return c.registry
}

/*
Compose. resolves the traversal mode and, when custom_weightings is set, adds every
registered soft weighting named in hints to base.

base is returned as is when no soft weighting was constructed. unknown names are skipped.
constructor errors are returned unchanged.
*/
func (c *Composer) Compose(base costfunction.Weighting, hints HintsMap, encoder FlagEncoder,
	storage GraphStorage) (*Composition, error) {
	mode, err := ResolveTraversalMode(hints, encoder)
	if err != nil {
		return nil, err
	}

	comp := &Composition{
		weighting: base,
		mode:      mode,
		applied:   make([]string, 0),
		skipped:   make([]string, 0),
	}

	if !hints.GetBool(KEY_CUSTOM_WEIGHTINGS, false) {
		return comp, nil
	}

	softWeightings := make([]costfunction.Weighting, 0)
	for _, name := range DiscoverModifierNames(hints) {
		constructor, ok := c.registry.Lookup(name)
		if !ok {
			comp.skipped = append(comp.skipped, name)
			continue
		}

		w, err := constructor(encoder, ScopeModifierParams(name, hints), storage)
		if err != nil {
			return nil, err
		}
		softWeightings = append(softWeightings, w)
		comp.applied = append(comp.applied, name)
	}

	if len(softWeightings) > 0 {
		comp.weighting = NewAdditionWeighting(softWeightings, base)
	}
	return comp, nil
}
