package usecases

import (
	"context"
	"errors"
	"sort"

	"github.com/lintang-b-s/navigatorx-weighting/pkg/concurrent"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/engine/routing"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/util"
)

type matrixResult struct {
	entry MatrixEntry
	err   error
}

// ShortestPathMatrix. one origin to many destinations. the composed weighting is built once and shared
// by all workers, every worker runs its own search.
func (rs *RoutingService) ShortestPathMatrix(ctx context.Context, req MatrixRequest) ([]MatrixEntry, error) {
	comp, err := rs.compose(req.Hints)
	if err != nil {
		return nil, err
	}

	s, err := rs.snap(req.OriginLat, req.OriginLon, "origin")
	if err != nil {
		return nil, err
	}

	targets := make([]datastructure.Index, len(req.Destinations))
	for i, d := range req.Destinations {
		targets[i], err = rs.snap(d.GetLat(), d.GetLon(), "destination")
		if err != nil {
			return nil, err
		}
	}

	wp := concurrent.NewWorkerPool[int, matrixResult](rs.matrixWorkers, len(targets))
	wp.Start(func(i int) matrixResult {
		entry := MatrixEntry{Index: i}
		if util.StopConcurrentOperation(ctx) {
			return matrixResult{entry: entry, err: ctx.Err()}
		}

		search := routing.NewDijkstra(rs.engine.GetGraph(), comp.GetWeighting(), comp.GetTraversalMode())
		path, found, err := search.ShortestPathSearch(ctx, s, targets[i])
		rs.metrics.ObserveSettledNodes(search.GetNumSettledNodes())
		if err != nil {
			return matrixResult{entry: entry, err: err}
		}
		if found {
			entry.Found = true
			entry.TravelTime = path.GetTravelTime()
			entry.Distance = path.GetDistance()
			entry.Weight = path.GetWeight()
		}
		return matrixResult{entry: entry}
	})

	for i := range targets {
		wp.AddJob(i)
	}
	wp.Close()
	wp.Wait()

	entries := make([]MatrixEntry, 0, len(targets))
	var errs []error
	for res := range wp.CollectResults() {
		if res.err != nil {
			errs = append(errs, res.err)
			continue
		}
		entries = append(entries, res.entry)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Index < entries[j].Index
	})
	return entries, nil
}
