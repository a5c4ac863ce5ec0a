package controllers

import (
	"context"

	"github.com/lintang-b-s/navigatorx-weighting/pkg/http/usecases"
)

type RoutingService interface {
	ShortestPath(ctx context.Context, req usecases.RouteRequest) (*usecases.Route, error)
	ShortestPathMatrix(ctx context.Context, req usecases.MatrixRequest) ([]usecases.MatrixEntry, error)
	Weightings() []string
	Profiles() []string
}
