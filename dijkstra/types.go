package dijkstra

import "errors"

// Sentinel errors returned by Search.
var (
	// ErrEmptySource indicates that no Source option was provided.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target vertex does not
	// exist in the graph. Wrapped with the offending ID.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")
)

// Options configures a single Search run.
//
// Source    – starting vertex ID; required.
// Target    – destination vertex ID; empty means a distances-only run.
// EarlyStop – stop the outer loop the moment the target is finalized,
// skipping its relaxations and all remaining vertices.
type Options struct {
	Source    string
	Target    string
	EarlyStop bool
}

// Option is a functional option for configuring Search.
type Option func(*Options)

// Source sets the starting vertex ID. Required.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// Target sets the destination vertex ID. When given, Search reconstructs
// the shortest path to it; when omitted, Search produces distances to every
// reachable vertex and no single path.
func Target(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithEarlyStop terminates the run immediately after the step that expands
// the target: the target's neighbors are not relaxed and no further vertex
// is expanded. Has no effect without a Target.
func WithEarlyStop() Option {
	return func(o *Options) { o.EarlyStop = true }
}
