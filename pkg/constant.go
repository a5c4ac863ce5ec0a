package pkg

// enum of turn_type
type TurnType uint8

const (
	LEFT_TURN TurnType = iota
	RIGHT_TURN
	STRAIGHT_ON
	U_TURN
	NO_ENTRY
	NONE
)

func (t TurnType) String() string {
	switch t {
	case LEFT_TURN:
		return "left"
	case RIGHT_TURN:
		return "right"
	case STRAIGHT_ON:
		return "straight"
	case U_TURN:
		return "u_turn"
	case NO_ENTRY:
		return "no_entry"
	default:
		return "none"
	}
}

const (
	INF_WEIGHT float64 = 1e15

	// turn costs in seconds for edge-based search
	LEFT_TURN_COST_SECOND  = 8.0
	RIGHT_TURN_COST_SECOND = 2.0
)

type OsmHighwayType uint8

// enum buat osm highway buat routing: https://wiki.openstreetmap.org/wiki/OSM_tags_for_routing/Telenav
const (
	MOTORWAY       OsmHighwayType = 0
	TRUNK          OsmHighwayType = 1
	PRIMARY        OsmHighwayType = 2
	SECONDARY      OsmHighwayType = 3
	TERTIARY       OsmHighwayType = 4
	RESIDENTIAL    OsmHighwayType = 5
	SERVICE        OsmHighwayType = 6
	UNCLASSIFIED   OsmHighwayType = 7
	MOTORWAY_LINK  OsmHighwayType = 8
	TRUNK_LINK     OsmHighwayType = 9
	PRIMARY_LINK   OsmHighwayType = 10
	SECONDARY_LINK OsmHighwayType = 11
	TERTIARY_LINK  OsmHighwayType = 12
	LIVING_STREET  OsmHighwayType = 13
	ROAD           OsmHighwayType = 14
	TRACK          OsmHighwayType = 15
	MOTORROAD      OsmHighwayType = 16
	CYCLEWAY       OsmHighwayType = 17
	FOOTWAY        OsmHighwayType = 18
	PATH           OsmHighwayType = 19
	PEDESTRIAN     OsmHighwayType = 20
	UNKNOWN        OsmHighwayType = 21
)

func GetHighwayType(roadType string) OsmHighwayType {
	switch roadType {
	case "motorway":
		return MOTORWAY
	case "trunk":
		return TRUNK
	case "primary":
		return PRIMARY
	case "secondary":
		return SECONDARY
	case "tertiary":
		return TERTIARY
	case "unclassified":
		return UNCLASSIFIED
	case "residential":
		return RESIDENTIAL
	case "service":
		return SERVICE
	case "motorway_link":
		return MOTORWAY_LINK
	case "trunk_link":
		return TRUNK_LINK
	case "primary_link":
		return PRIMARY_LINK
	case "secondary_link":
		return SECONDARY_LINK
	case "tertiary_link":
		return TERTIARY_LINK
	case "living_street":
		return LIVING_STREET
	case "road":
		return ROAD
	case "track":
		return TRACK
	case "motorroad":
		return MOTORROAD
	case "cycleway":
		return CYCLEWAY
	case "footway":
		return FOOTWAY
	case "path":
		return PATH
	case "pedestrian":
		return PEDESTRIAN
	default:
		return UNKNOWN
	}
}
