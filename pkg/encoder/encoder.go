package encoder

import (
	"github.com/lintang-b-s/navigatorx-weighting/pkg"
)

const (
	CAR  = "car"
	BIKE = "bike"
	FOOT = "foot"
)

// FlagEncoder. capabilities and speed model of one travel mode
type FlagEncoder struct {
	name        string
	maxSpeed    float64 // km/h
	turnCosts   bool
	speedByType map[pkg.OsmHighwayType]float64
}

func NewFlagEncoder(name string, maxSpeed float64, turnCosts bool,
	speedByType map[pkg.OsmHighwayType]float64) *FlagEncoder {
	return &FlagEncoder{
		name:        name,
		maxSpeed:    maxSpeed,
		turnCosts:   turnCosts,
		speedByType: speedByType,
	}
}

func (fe *FlagEncoder) Name() string {
	return fe.name
}

func (fe *FlagEncoder) GetMaxSpeed() float64 {
	return fe.maxSpeed
}

// SupportsTurnCosts. true if the profile was built with a turn cost extension
func (fe *FlagEncoder) SupportsTurnCosts() bool {
	return fe.turnCosts
}

// Accepts. whether the travel mode may use roads of the given highway type
func (fe *FlagEncoder) Accepts(h pkg.OsmHighwayType) bool {
	_, ok := fe.speedByType[h]
	return ok
}

// GetSpeed. effective speed on an edge in km/h, 0 if the edge is not accessible.
func (fe *FlagEncoder) GetSpeed(h pkg.OsmHighwayType, edgeSpeed float64) float64 {
	defaultSpeed, ok := fe.speedByType[h]
	if !ok {
		return 0
	}
	speed := defaultSpeed
	if edgeSpeed > 0 && edgeSpeed < speed {
		speed = edgeSpeed
	}
	if speed > fe.maxSpeed {
		speed = fe.maxSpeed
	}
	return speed
}

func newCarEncoder(maxSpeed float64, turnCosts bool) *FlagEncoder {
	return NewFlagEncoder(CAR, maxSpeed, turnCosts, map[pkg.OsmHighwayType]float64{
		pkg.MOTORWAY:       100,
		pkg.MOTORWAY_LINK:  70,
		pkg.MOTORROAD:      90,
		pkg.TRUNK:          70,
		pkg.TRUNK_LINK:     65,
		pkg.PRIMARY:        65,
		pkg.PRIMARY_LINK:   60,
		pkg.SECONDARY:      60,
		pkg.SECONDARY_LINK: 50,
		pkg.TERTIARY:       50,
		pkg.TERTIARY_LINK:  40,
		pkg.UNCLASSIFIED:   30,
		pkg.RESIDENTIAL:    30,
		pkg.LIVING_STREET:  5,
		pkg.SERVICE:        20,
		pkg.ROAD:           20,
		pkg.TRACK:          15,
		pkg.UNKNOWN:        20,
	})
}

func newBikeEncoder(maxSpeed float64, turnCosts bool) *FlagEncoder {
	return NewFlagEncoder(BIKE, maxSpeed, turnCosts, map[pkg.OsmHighwayType]float64{
		pkg.PRIMARY:        18,
		pkg.PRIMARY_LINK:   18,
		pkg.SECONDARY:      18,
		pkg.SECONDARY_LINK: 18,
		pkg.TERTIARY:       18,
		pkg.TERTIARY_LINK:  18,
		pkg.UNCLASSIFIED:   16,
		pkg.RESIDENTIAL:    18,
		pkg.LIVING_STREET:  6,
		pkg.SERVICE:        14,
		pkg.ROAD:           12,
		pkg.TRACK:          12,
		pkg.CYCLEWAY:       18,
		pkg.PATH:           12,
		pkg.FOOTWAY:        6,
		pkg.PEDESTRIAN:     6,
		pkg.UNKNOWN:        12,
	})
}

func newFootEncoder(maxSpeed float64, turnCosts bool) *FlagEncoder {
	speeds := make(map[pkg.OsmHighwayType]float64)
	for _, h := range []pkg.OsmHighwayType{pkg.PRIMARY, pkg.PRIMARY_LINK, pkg.SECONDARY, pkg.SECONDARY_LINK,
		pkg.TERTIARY, pkg.TERTIARY_LINK, pkg.UNCLASSIFIED, pkg.RESIDENTIAL, pkg.LIVING_STREET, pkg.SERVICE,
		pkg.ROAD, pkg.TRACK, pkg.CYCLEWAY, pkg.PATH, pkg.FOOTWAY, pkg.PEDESTRIAN, pkg.UNKNOWN} {
		speeds[h] = 5
	}
	return NewFlagEncoder(FOOT, maxSpeed, turnCosts, speeds)
}
