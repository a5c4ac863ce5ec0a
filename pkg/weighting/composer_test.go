package weighting

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/lintang-b-s/navigatorx-weighting/pkg/costfunction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testComposer(seen *[]PMap) *Composer {
	return NewComposer(NewRegistry(map[string]ModifierConstructor{
		"green": constConstructor("green", 3, seen),
		"quiet": constConstructor("quiet", 5, seen),
	}))
}

func assertSameAsBase(t *testing.T, base, got costfunction.Weighting) {
	t.Helper()
	for _, e := range testEdges() {
		assert.Equal(t, base.GetWeight(e, nil), got.GetWeight(e, nil))
		assert.Equal(t, base.GetTravelTime(e, nil), got.GetTravelTime(e, nil))
	}
}

func TestComposeWithoutCustomWeightings(t *testing.T) {
	base := &lengthWeighting{}
	composer := testComposer(nil)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		hints := make(map[string]string)
		n := r.Intn(6)
		for j := 0; j < n; j++ {
			hints[EncodeAttribute([]string{"green", "quiet", "unknown"}[r.Intn(3)], fmt.Sprintf("a%d", j))] = "1"
		}
		if r.Intn(2) == 0 {
			hints[KEY_CUSTOM_WEIGHTINGS] = "false"
		}

		comp, err := composer.Compose(base, NewHintsMap(hints), testEncoder{turnCosts: true}, nil)
		require.NoError(t, err)
		assert.Same(t, base, comp.GetWeighting())
		assert.Empty(t, comp.GetAppliedModifiers())
		assertSameAsBase(t, base, comp.GetWeighting())
	}
}

func TestComposeUnknownModifier(t *testing.T) {
	base := &lengthWeighting{}
	hints := NewHintsMap(map[string]string{
		KEY_CUSTOM_WEIGHTINGS:             "true",
		EncodeAttribute("unknown", "x"):   "1",
		EncodeAttribute("scenic", "view"): "mountains",
	})

	comp, err := testComposer(nil).Compose(base, hints, testEncoder{}, nil)
	require.NoError(t, err)
	assert.Same(t, base, comp.GetWeighting())
	assert.Empty(t, comp.GetAppliedModifiers())
	assert.Equal(t, []string{"scenic", "unknown"}, comp.GetSkippedModifiers())
	assertSameAsBase(t, base, comp.GetWeighting())
}

func TestComposeAddsModifiers(t *testing.T) {
	base := lengthWeighting{}
	var seen []PMap
	hints := NewHintsMap(map[string]string{
		KEY_CUSTOM_WEIGHTINGS:             "true",
		EncodeAttribute("green", "a"):     "1",
		EncodeAttribute("green", "b"):     "2",
		EncodeAttribute("quiet", "c"):     "3",
		EncodeAttribute("unknown", "foo"): "bar",
	})

	comp, err := testComposer(&seen).Compose(base, hints, testEncoder{turnCosts: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, EDGE_BASED, comp.GetTraversalMode())
	assert.Equal(t, []string{"green", "quiet"}, comp.GetAppliedModifiers())
	assert.Equal(t, []string{"unknown"}, comp.GetSkippedModifiers())
	assert.ElementsMatch(t, []PMap{{"a": "1", "b": "2"}, {"c": "3"}}, seen)

	w := comp.GetWeighting()
	_, isAddition := w.(*AdditionWeighting)
	require.True(t, isAddition)

	for _, e := range testEdges() {
		assert.InDelta(t, e.GetLength()+3+5, w.GetWeight(e, nil), 1e-9)
		assert.InDelta(t, base.GetTravelTime(e, nil), w.GetTravelTime(e, nil), 1e-9)
		assert.InDelta(t, e.GetLength()+3+5, w.GetWeight(e, testEdges()[0]), 1e-9)
	}
	assert.Equal(t, "length+green+quiet", w.Name())
}

func TestComposeEdgeBasedWithoutTurnCosts(t *testing.T) {
	hints := NewHintsMap(map[string]string{
		KEY_EDGE_BASED:                "true",
		KEY_CUSTOM_WEIGHTINGS:         "true",
		EncodeAttribute("green", "a"): "1",
	})
	comp, err := testComposer(nil).Compose(lengthWeighting{}, hints, testEncoder{turnCosts: false}, nil)
	require.Error(t, err)
	assert.Nil(t, comp)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestComposeConstructorErrorPropagates(t *testing.T) {
	ctorErr := errors.New("factor out of range")
	composer := NewComposer(NewRegistry(map[string]ModifierConstructor{
		"green": func(encoder FlagEncoder, config PMap, storage GraphStorage) (costfunction.Weighting, error) {
			return nil, ctorErr
		},
	}))
	hints := NewHintsMap(map[string]string{
		KEY_CUSTOM_WEIGHTINGS:              "true",
		EncodeAttribute("green", "factor"): "7",
	})

	_, err := composer.Compose(lengthWeighting{}, hints, testEncoder{}, nil)
	assert.Same(t, ctorErr, err)
}

func TestRegistryIsClosed(t *testing.T) {
	table := map[string]ModifierConstructor{"green": constConstructor("green", 1, nil)}
	r := NewRegistry(table)
	table["quiet"] = constConstructor("quiet", 1, nil)

	_, ok := r.Lookup("quiet")
	assert.False(t, ok)
	assert.Equal(t, []string{"green"}, r.Names())
}

func TestAdditionWeightingConcurrentUse(t *testing.T) {
	w := NewAdditionWeighting([]costfunction.Weighting{
		constWeighting{name: "a", value: 1},
		constWeighting{name: "b", value: 2},
	}, lengthWeighting{})

	edges := testEdges()
	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				e := edges[i%len(edges)]
				if got := w.GetWeight(e, nil); got != e.GetLength()+3 {
					errs <- fmt.Sprintf("edge %d: got %v", e.GetEdgeId(), got)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}
