package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/ukrway/dorohy/core"
	"github.com/ukrway/dorohy/dijkstra"
)

// PathService runs shortest-path searches over the session graph.
type PathService struct {
	graph *core.Graph
	log   *zap.Logger
}

// NewPathService wraps the session graph used for searching.
func NewPathService(graph *core.Graph, log *zap.Logger) *PathService {
	return &PathService{graph: graph, log: log}
}

// FindShortestPath runs the step-recording search from source. An empty
// target yields a distances-only run; earlyStop stops the run the moment
// the target is finalized. The engine snapshots the graph internally, so
// concurrent edits cannot corrupt the trace.
func (s *PathService) FindShortestPath(source, target string, earlyStop bool) (*dijkstra.Trace, *dijkstra.Result, error) {
	opts := []dijkstra.Option{dijkstra.Source(source)}
	if target != "" {
		opts = append(opts, dijkstra.Target(target))
	}
	if earlyStop {
		opts = append(opts, dijkstra.WithEarlyStop())
	}

	started := time.Now()
	trace, res, err := dijkstra.Search(s.graph, opts...)
	if err != nil {
		return nil, nil, err
	}

	s.log.Info("search completed",
		zap.String("source", source),
		zap.String("target", target),
		zap.Bool("early_stop", earlyStop),
		zap.Bool("reached", res.Reached),
		zap.Int("steps", trace.Len()),
		zap.Duration("took", time.Since(started)))

	return trace, res, nil
}
