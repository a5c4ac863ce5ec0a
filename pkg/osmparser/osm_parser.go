package osmparser

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lintang-b-s/navigatorx-weighting/pkg"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

type NodeCoord struct {
	lat       float64
	lon       float64
	elevation float64
}

func NewNodeCoord(lat, lon, elevation float64) NodeCoord {
	return NodeCoord{lat: lat, lon: lon, elevation: elevation}
}

type osmWay struct {
	id          int64
	nodes       []int64
	highwayType pkg.OsmHighwayType
	maxSpeed    float64
	oneWay      bool
	forward     bool
	greenIndex  float64
	noiseLevel  float64
}

// OsmParser. two passes over the pbf file: ways first (to know which nodes are needed), then nodes.
type OsmParser struct {
	wayNodeMap      map[int64]struct{}
	acceptedNodeMap map[int64]NodeCoord
	trafficLights   map[int64]struct{}
	ways            []osmWay
	logger          *zap.Logger
}

func NewOSMParser(logger *zap.Logger) *OsmParser {
	return &OsmParser{
		wayNodeMap:      make(map[int64]struct{}),
		acceptedNodeMap: make(map[int64]NodeCoord),
		trafficLights:   make(map[int64]struct{}),
		ways:            make([]osmWay, 0),
		logger:          logger,
	}
}

func (p *OsmParser) Parse(ctx context.Context, mapFile string) (*datastructure.Graph, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return p.ParseFrom(ctx, f)
}

func (p *OsmParser) ParseFrom(ctx context.Context, r io.ReadSeeker) (*datastructure.Graph, error) {
	scanner := osmpbf.New(ctx, r, 0)
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	countWays := 0
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		if p.AddWay(way) {
			countWays++
			if countWays%50000 == 0 {
				p.logger.Sugar().Infof("scanning openstreetmap ways: %d...", countWays)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, err
	}
	scanner.Close()

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	scanner = osmpbf.New(ctx, r, 0)
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true

	countNodes := 0
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if p.AddNode(node) {
			countNodes++
			if countNodes%500000 == 0 {
				p.logger.Sugar().Infof("processing openstreetmap nodes: %d...", countNodes)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	graph := p.BuildGraph()
	p.logger.Info("openstreetmap parsed",
		zap.Int("ways", countWays),
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()),
		zap.Int("traffic_lights", len(p.trafficLights)),
	)
	return graph, nil
}

// AddWay. keeps routable highway ways, returns false for everything else
func (p *OsmParser) AddWay(way *osm.Way) bool {
	if len(way.Nodes) < 2 || !acceptOsmWay(way) {
		return false
	}

	highway := way.Tags.Find("highway")
	w := osmWay{
		id:          int64(way.ID),
		nodes:       make([]int64, 0, len(way.Nodes)),
		highwayType: pkg.GetHighwayType(highway),
		maxSpeed:    parseMaxSpeed(way.Tags.Find("maxspeed")),
		forward:     true,
		greenIndex:  greenIndex(highway, way.Tags),
		noiseLevel:  noiseLevel(highway),
	}

	okvf, okmvf, okvb, okmvb := getReversedOneWay(way)
	if val := way.Tags.Find("oneway"); val == "yes" || val == "1" || val == "-1" || okvf || okmvf || okvb || okmvb {
		w.oneWay = true
	}
	if way.Tags.Find("junction") == "roundabout" {
		w.oneWay = true
	}
	if way.Tags.Find("oneway") == "-1" || okvf || okmvf {
		// restricted/not allowed forward
		w.forward = false
	}

	for _, n := range way.Nodes {
		w.nodes = append(w.nodes, int64(n.ID))
		p.wayNodeMap[int64(n.ID)] = struct{}{}
	}
	p.ways = append(p.ways, w)
	return true
}

// AddNode. stores coordinates of nodes used by an accepted way
func (p *OsmParser) AddNode(node *osm.Node) bool {
	id := int64(node.ID)
	if _, ok := p.wayNodeMap[id]; !ok {
		return false
	}

	elevation := 0.0
	if ele := node.Tags.Find("ele"); ele != "" {
		if v, err := cast.ToFloat64E(strings.TrimSuffix(strings.TrimSpace(ele), " m")); err == nil {
			elevation = v
		}
	}
	p.acceptedNodeMap[id] = NewNodeCoord(node.Lat, node.Lon, elevation)

	if node.Tags.Find("highway") == "traffic_signals" || node.Tags.Find("crossing") == "traffic_signals" {
		p.trafficLights[id] = struct{}{}
	}
	return true
}

// BuildGraph. one edge per consecutive node pair of every accepted way
func (p *OsmParser) BuildGraph() *datastructure.Graph {
	gb := datastructure.NewGraphBuilder()
	nodeIDMap := make(map[int64]datastructure.Index, len(p.acceptedNodeMap))

	vertexOf := func(osmID int64) (datastructure.Index, bool) {
		if v, ok := nodeIDMap[osmID]; ok {
			return v, true
		}
		coord, ok := p.acceptedNodeMap[osmID]
		if !ok {
			return datastructure.INVALID_VERTEX_ID, false
		}
		v := gb.AddVertex(coord.lat, coord.lon, coord.elevation)
		nodeIDMap[osmID] = v
		if _, ok := p.trafficLights[osmID]; ok {
			gb.AddTrafficLight(v)
		}
		return v, true
	}

	skipped := 0
	for _, w := range p.ways {
		for i := 0; i+1 < len(w.nodes); i++ {
			fromID, toID := w.nodes[i], w.nodes[i+1]
			if fromID == toID {
				continue
			}
			from, okFrom := vertexOf(fromID)
			to, okTo := vertexOf(toID)
			if !okFrom || !okTo {
				// node outside the extract
				skipped++
				continue
			}
			if w.oneWay && !w.forward {
				from, to = to, from
			}

			fromCoord := p.acceptedNodeMap[fromID]
			toCoord := p.acceptedNodeMap[toID]
			dist := geo.CalculateHaversineDistance(fromCoord.lat, fromCoord.lon, toCoord.lat, toCoord.lon) * 1000

			gb.AddEdge(datastructure.RawEdge{
				From:          from,
				To:            to,
				Dist:          dist,
				Speed:         w.maxSpeed,
				HighwayType:   w.highwayType,
				OsmWayId:      w.id,
				GreenIndex:    w.greenIndex,
				NoiseLevel:    w.noiseLevel,
				Bidirectional: !w.oneWay,
			})
		}
	}
	if skipped > 0 {
		p.logger.Warn("way segments with missing nodes skipped", zap.Int("count", skipped))
	}

	return gb.Build()
}

var acceptedHighway = map[string]struct{}{
	"motorway":       {},
	"motorway_link":  {},
	"trunk":          {},
	"trunk_link":     {},
	"primary":        {},
	"primary_link":   {},
	"secondary":      {},
	"secondary_link": {},
	"tertiary":       {},
	"tertiary_link":  {},
	"unclassified":   {},
	"residential":    {},
	"living_street":  {},
	"service":        {},
	"road":           {},
	"track":          {},
	"motorroad":      {},
	"cycleway":       {},
	"footway":        {},
	"path":           {},
	"pedestrian":     {},
}

func acceptOsmWay(way *osm.Way) bool {
	if way.Tags.Find("area") == "yes" {
		return false
	}
	if access := way.Tags.Find("access"); access == "no" || access == "private" {
		return false
	}
	highway := way.Tags.Find("highway")
	if highway == "" {
		return false
	}
	_, ok := acceptedHighway[highway]
	return ok
}

func isRestricted(value string) bool {
	return value == "no" || value == "restricted"
}

func getReversedOneWay(way *osm.Way) (bool, bool, bool, bool) {
	vehicleForward := way.Tags.Find("vehicle:forward")
	motorVehicleForward := way.Tags.Find("motor_vehicle:forward")
	vehicleBackward := way.Tags.Find("vehicle:backward")
	motorVehicleBackward := way.Tags.Find("motor_vehicle:backward")
	return isRestricted(vehicleForward), isRestricted(motorVehicleForward), isRestricted(vehicleBackward), isRestricted(motorVehicleBackward)
}

// parseMaxSpeed. maxspeed tag in km/h, 0 if missing or not numeric (e.g. "signals", "none")
func parseMaxSpeed(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	factor := 1.0
	switch {
	case strings.HasSuffix(value, "mph"):
		factor = 1.60934
		value = strings.TrimSuffix(value, "mph")
	case strings.HasSuffix(value, "knots"):
		factor = 1.852
		value = strings.TrimSuffix(value, "knots")
	case strings.HasSuffix(value, "km/h"):
		value = strings.TrimSuffix(value, "km/h")
	}

	speed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || speed <= 0 {
		return 0
	}
	return speed * factor
}

// greenIndex. share of vegetation along the way in [0, 1], estimated from the road class and tree tags
func greenIndex(highway string, tags osm.Tags) float64 {
	green := 0.1
	switch highway {
	case "footway", "path", "track", "cycleway", "pedestrian":
		green = 0.7
	case "living_street", "residential", "service":
		green = 0.4
	case "tertiary", "tertiary_link", "unclassified", "road":
		green = 0.25
	}

	if tags.Find("trees") == "yes" || (tags.Find("tree_lined") != "" && tags.Find("tree_lined") != "no") {
		green += 0.2
	}
	if green > 1 {
		green = 1
	}
	return green
}

// noiseLevel. traffic noise in [0, 1] by road class
func noiseLevel(highway string) float64 {
	switch highway {
	case "motorway", "motorway_link", "trunk", "trunk_link", "motorroad":
		return 1.0
	case "primary", "primary_link":
		return 0.8
	case "secondary", "secondary_link":
		return 0.6
	case "tertiary", "tertiary_link":
		return 0.4
	case "unclassified", "road", "residential":
		return 0.2
	case "living_street", "service", "track":
		return 0.1
	default:
		return 0
	}
}
