package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/navigatorx-weighting/pkg/encoder"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/engine"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/http"
	http_server "github.com/lintang-b-s/navigatorx-weighting/pkg/http/server"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/http/usecases"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/logger"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/metrics"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/osmparser"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/util"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/weighting/modifier"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	leafBoundingBoxRadius = flag.Float64("leaf_bounding_box_radius", 0.05, "leaf node (r-tree) bounding box radius in km")
	mapFile               = flag.String("f", "", "openstreetmap .osm.pbf file, overrides OSM_FILE")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}

	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck // ignore

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	osmFile := viper.GetString("OSM_FILE")
	if *mapFile != "" {
		osmFile = *mapFile
	}

	encodingManager, err := encoder.ParseEncoders(viper.GetString("ENCODERS"))
	if err != nil {
		logger.Fatal("invalid ENCODERS", zap.Error(err))
	}

	logger.Info("Reading openstreetmap file", zap.String("file", osmFile))
	graph, err := osmparser.NewOSMParser(logger).Parse(ctx, osmFile)
	if err != nil {
		logger.Fatal("parse openstreetmap file", zap.Error(err))
	}

	routingEngine := engine.NewEngine(graph, encodingManager, modifier.NewRegistry(), *leafBoundingBoxRadius, logger)
	metric := metrics.NewMetric()

	routingService := usecases.NewRoutingService(logger, routingEngine, routingEngine.GetSpatialIndex(), metric,
		viper.GetFloat64("SNAP_RADIUS_KM"), viper.GetInt("MATRIX_WORKERS"))

	api := http.NewServer(logger).Use(ctx, http_server.NewConfig(), routingService, metric)

	signal := http.GracefulShutdown()
	logger.Info("Navigatorx Routing Engine Server Stopping", zap.String("signal", signal.String()))
	cleanup()

	if err := api.Wait(); err != nil {
		logger.Error("API stopped with error", zap.Error(err))
	}
	logger.Info("Navigatorx Routing Engine Server Stopped")
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
