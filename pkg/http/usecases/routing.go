package usecases

import (
	"context"
	"errors"

	"github.com/lintang-b-s/navigatorx-weighting/pkg/costfunction"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/engine/routing"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/geo"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/util"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/weighting"
	"go.uber.org/zap"
)

var (
	ErrPathNotFound  = errors.New("path not found")
	ErrNoNearbyRoads = errors.New("no road near the given coordinate")
)

type RouteRequest struct {
	OriginLat, OriginLon           float64
	DestinationLat, DestinationLon float64
	Hints                          map[string]string
}

type Route struct {
	TravelTime       float64 // second
	Distance         float64 // meter
	Weight           float64
	Polyline         string
	Weighting        string
	TraversalMode    string
	AppliedModifiers []string
	SkippedModifiers []string
	Instructions     []Instruction
}

// Instruction. one turn-by-turn step of a route
type Instruction struct {
	Sign       string
	Lat, Lon   float64
	Bearing    float64 // degree
	OsmWayId   int64
	Distance   float64 // meter, until the next step
	TravelTime float64 // second, until the next step
}

type MatrixRequest struct {
	OriginLat, OriginLon float64
	Destinations         []geo.Coordinate
	Hints                map[string]string
}

type MatrixEntry struct {
	Index      int
	Found      bool
	TravelTime float64
	Distance   float64
	Weight     float64
}

type RoutingService struct {
	log           *zap.Logger
	engine        RoutingEngine
	spatialIndex  SpatialIndex
	metrics       Metrics
	searchRadius  float64
	matrixWorkers int
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, spatialIndex SpatialIndex, metrics Metrics,
	searchRadius float64, matrixWorkers int) *RoutingService {
	return &RoutingService{
		log:           log,
		engine:        engine,
		spatialIndex:  spatialIndex,
		metrics:       metrics,
		searchRadius:  searchRadius,
		matrixWorkers: matrixWorkers,
	}
}

func (rs *RoutingService) ShortestPath(ctx context.Context, req RouteRequest) (*Route, error) {
	comp, err := rs.compose(req.Hints)
	if err != nil {
		return nil, err
	}

	s, t, err := rs.snapOrigDest(req.OriginLat, req.OriginLon, req.DestinationLat, req.DestinationLon)
	if err != nil {
		return nil, err
	}

	search := routing.NewDijkstra(rs.engine.GetGraph(), comp.GetWeighting(), comp.GetTraversalMode())
	path, found, err := search.ShortestPathSearch(ctx, s, t)
	rs.metrics.ObserveSettledNodes(search.GetNumSettledNodes())
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, util.WrapErrorf(ErrPathNotFound, util.ErrNotFound, "no path found from %f,%f to %f,%f",
			req.OriginLat, req.OriginLon, req.DestinationLat, req.DestinationLon)
	}

	return &Route{
		TravelTime:       path.GetTravelTime(),
		Distance:         path.GetDistance(),
		Weight:           path.GetWeight(),
		Polyline:         geo.PolylineFromCoords(rs.pathCoordinates(path)),
		Weighting:        comp.GetWeighting().Name(),
		TraversalMode:    comp.GetTraversalMode().String(),
		AppliedModifiers: comp.GetAppliedModifiers(),
		SkippedModifiers: comp.GetSkippedModifiers(),
		Instructions:     rs.instructions(path, comp),
	}, nil
}

// Weightings. names of the registered soft weightings
func (rs *RoutingService) Weightings() []string {
	return rs.engine.GetComposer().GetRegistry().Names()
}

func (rs *RoutingService) Profiles() []string {
	return rs.engine.GetEncodingManager().Names()
}

// compose. picks the encoder (profile) and base weighting named in hints and composes the soft weightings on top.
func (rs *RoutingService) compose(rawHints map[string]string) (*weighting.Composition, error) {
	hints := weighting.NewHintsMap(rawHints)

	em := rs.engine.GetEncodingManager()
	enc := em.Default()
	if profile := hints.GetString(weighting.KEY_PROFILE, ""); profile != "" {
		var err error
		enc, err = em.GetEncoder(profile)
		if err != nil {
			return nil, err
		}
	}

	base, err := costfunction.NewBaseWeighting(hints.GetString(weighting.KEY_WEIGHTING, ""), enc,
		enc.SupportsTurnCosts())
	if err != nil {
		return nil, err
	}

	comp, err := rs.engine.GetComposer().Compose(base, hints, enc, rs.engine.GetGraph().GetGraphStorage())
	if err != nil {
		if errors.Is(err, weighting.ErrConfiguration) {
			rs.metrics.IncConfigurationError()
		}
		rs.log.Warn("weighting composition failed", zap.String("profile", enc.Name()), zap.Error(err))
		return nil, err
	}

	rs.metrics.ObserveComposition(comp.GetTraversalMode().String(), comp.GetAppliedModifiers(),
		comp.GetSkippedModifiers())
	if len(comp.GetSkippedModifiers()) > 0 {
		rs.log.Info("unknown weightings ignored", zap.Strings("skipped", comp.GetSkippedModifiers()))
	}
	rs.log.Debug("composed weighting",
		zap.String("profile", enc.Name()),
		zap.String("weighting", comp.GetWeighting().Name()),
		zap.String("traversal_mode", comp.GetTraversalMode().String()),
		zap.Strings("applied", comp.GetAppliedModifiers()),
	)
	return comp, nil
}
