package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/lintang-b-s/navigatorx-weighting/pkg/http/router"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/navigatorx-weighting/pkg/http/server"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log, g: &errgroup.Group{}}
}

// Use. starts the api in the background, Wait returns its error once ctx is canceled
func (s *Server) Use(
	ctx context.Context,
	config http_server.Config,
	routingService controllers.RoutingService,
	metrics http_router.MetricsHandler,
) *Server {
	api := http_router.NewAPI(s.Log, metrics)

	s.g.Go(func() error {
		return api.Run(ctx, config, routingService)
	})

	return s
}

func (s *Server) Wait() error {
	return s.g.Wait()
}

// GracefulShutdown. blocks until SIGINT or SIGTERM
func GracefulShutdown() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)
	return <-quit
}
