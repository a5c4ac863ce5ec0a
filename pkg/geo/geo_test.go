package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateHaversineDistance(t *testing.T) {
	// yogyakarta tugu -> malioboro, ~1.2 km
	d := CalculateHaversineDistance(-7.782889, 110.367083, -7.792639, 110.365861)
	assert.InDelta(t, 1.09, d, 0.05)
	assert.Equal(t, 0.0, CalculateHaversineDistance(1, 1, 1, 1))
}

func TestDeltaBearing(t *testing.T) {
	testCases := []struct {
		name     string
		prev     float64
		next     float64
		expected float64
	}{
		{name: "straight", prev: 90, next: 90, expected: 0},
		{name: "right turn", prev: 0, next: 90, expected: 90},
		{name: "left turn across north", prev: 20, next: 350, expected: -30},
		{name: "right turn across north", prev: 340, next: 10, expected: 30},
		{name: "u turn", prev: 0, next: 180, expected: 180},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DeltaBearing(tt.prev, tt.next), 1e-9)
		})
	}
}

func TestPolylineFromCoords(t *testing.T) {
	// example from the google polyline algorithm documentation
	coords := []Coordinate{
		NewCoordinate(38.5, -120.2),
		NewCoordinate(40.7, -120.95),
		NewCoordinate(43.252, -126.453),
	}
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", PolylineFromCoords(coords))
}

func TestPointLinePerpendicularDistance(t *testing.T) {
	a := NewCoordinate(0, 0)
	b := NewCoordinate(0, 1)
	p := NewCoordinate(0.001, 0.5)
	// 0.001 degree latitude ~ 111 m
	assert.InDelta(t, 111.2, PointLinePerpendicularDistance(a, b, p), 1.0)
}
