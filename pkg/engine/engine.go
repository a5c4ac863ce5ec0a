package engine

import (
	"github.com/lintang-b-s/navigatorx-weighting/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/encoder"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/spatialindex"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/weighting"
	"go.uber.org/zap"
)

// Engine. read-only state shared by all requests: road graph, encoders, weighting composer and r-tree.
type Engine struct {
	graph           *datastructure.Graph
	encodingManager *encoder.EncodingManager
	composer        *weighting.Composer
	spatialIndex    *spatialindex.Rtree
}

func NewEngine(graph *datastructure.Graph, encodingManager *encoder.EncodingManager, registry *weighting.Registry,
	leafBoundingBoxRadius float64, logger *zap.Logger) *Engine {
	logger.Info("Starting routing engine...",
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()),
		zap.String("encoders", encodingManager.String()),
		zap.Strings("weightings", registry.Names()),
	)

	rtree := spatialindex.NewRtree()
	rtree.Build(graph, leafBoundingBoxRadius, logger)

	return &Engine{
		graph:           graph,
		encodingManager: encodingManager,
		composer:        weighting.NewComposer(registry),
		spatialIndex:    rtree,
	}
}

func (e *Engine) GetGraph() *datastructure.Graph {
	return e.graph
}

func (e *Engine) GetEncodingManager() *encoder.EncodingManager {
	return e.encodingManager
}

func (e *Engine) GetComposer() *weighting.Composer {
	return e.composer
}

func (e *Engine) GetSpatialIndex() *spatialindex.Rtree {
	return e.spatialIndex
}
