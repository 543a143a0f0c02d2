package dijkstra

import (
	"fmt"
	"math"

	"github.com/ukrway/dorohy/core"
)

// Search runs the step-recording Dijkstra variant over g.
//
// The graph is snapshotted (deep copy) before any state is touched, so
// concurrent edits to g never corrupt an in-progress run. Validation happens
// before the snapshot and before the first step is recorded:
//
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must exist in g (ErrVertexNotFound, wrapped with the ID).
//  4. Target, when given, must exist in g (ErrVertexNotFound likewise).
//
// On success Search returns the materialized Trace and the terminal Result.
// See the package documentation for the algorithm and determinism contract.
func Search(g *core.Graph, opts ...Option) (*Trace, *Result, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != "" && !g.HasVertex(cfg.Target) {
		return nil, nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, cfg.Target)
	}

	r := &runner{
		g:       g.Clone(),
		options: cfg,
	}
	r.init()
	r.process()

	return &Trace{steps: r.steps}, r.result(), nil
}

// runner holds the mutable state of a single Search execution.
type runner struct {
	g       *core.Graph
	options Options

	vertices []string // lexicographically sorted; the tie-break total order
	dist     map[string]float64
	prev     map[string]string
	visited  map[string]bool
	order    []string // visited vertices in visit order
	steps    []Step
}

// init sets dist[source]=0, dist[v]=+Inf for every other vertex, and clears
// predecessors and the visited set.
func (r *runner) init() {
	r.vertices = r.g.Vertices()

	r.dist = make(map[string]float64, len(r.vertices))
	r.prev = make(map[string]string, len(r.vertices))
	r.visited = make(map[string]bool, len(r.vertices))
	for _, v := range r.vertices {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0
}

// process is the outer selection loop.
//
// Each iteration finalizes one vertex: the unvisited vertex with minimum
// tentative distance (ties broken by lowest ID). The loop ends when every
// vertex is visited, when no unvisited vertex has a finite distance (the
// rest are unreachable and can never improve), or when EarlyStop fires on
// the target.
func (r *runner) process() {
	for len(r.order) < len(r.vertices) {
		u, ok := r.selectMin()
		if !ok {
			return
		}

		r.visited[u] = true
		r.order = append(r.order, u)
		r.record(Step{Kind: StepExpand, Current: u})

		if r.options.EarlyStop && u == r.options.Target {
			// Target finalized: terminate after this step, without
			// relaxing its neighbors.
			return
		}

		r.relax(u)
	}
}

// selectMin scans the sorted vertex list for the unvisited vertex with the
// strictly smallest tentative distance. Scanning in sorted order with a
// strict comparison makes the lowest ID win every tie, which is what keeps
// traces reproducible.
func (r *runner) selectMin() (string, bool) {
	best := ""
	bestDist := math.Inf(1)
	for _, v := range r.vertices {
		if r.visited[v] {
			continue
		}
		if r.dist[v] < bestDist {
			best = v
			bestDist = r.dist[v]
		}
	}
	if best == "" {
		return "", false // every remaining vertex is unreachable
	}

	return best, true
}

// relax attempts every outgoing arc of u in neighbor-ID order and records
// one step per comparison — improving or not. Visited neighbors and
// self-loops are compared too: a finalized distance can never improve, so
// they contribute non-improving steps the visualization renders as rejected
// relaxations.
func (r *runner) relax(u string) {
	// u came from the snapshot's own vertex list, so the lookup cannot fail.
	neighbors, _ := r.g.Neighbors(u)

	for _, n := range neighbors {
		candidate := r.dist[u] + n.Weight
		if candidate < r.dist[n.To] {
			r.dist[n.To] = candidate
			r.prev[n.To] = u
			r.record(Step{
				Kind:        StepRelax,
				Current:     u,
				Neighbor:    n.To,
				Improved:    true,
				NewDistance: candidate,
			})
			continue
		}

		r.record(Step{
			Kind:     StepRelax,
			Current:  u,
			Neighbor: n.To,
		})
	}
}

// record appends a step, attaching fresh snapshot copies of the distance map
// and the visit order.
func (r *runner) record(s Step) {
	s.Distances = make(map[string]float64, len(r.dist))
	for v, d := range r.dist {
		s.Distances[v] = d
	}
	s.Visited = append([]string(nil), r.order...)

	r.steps = append(r.steps, s)
}

// result builds the terminal Result from the final algorithm state.
func (r *runner) result() *Result {
	res := &Result{
		Source:    r.options.Source,
		Target:    r.options.Target,
		Distances: r.dist,
		Previous:  r.prev,
	}

	if r.options.Target == "" {
		return res // distances-only run; no single path to reconstruct
	}

	if math.IsInf(r.dist[r.options.Target], 1) {
		return res // target exists but is unreachable: Reached stays false
	}

	res.Reached = true
	res.Path = reconstructPath(r.prev, r.options.Source, r.options.Target)
	res.Segments = pathSegments(res.Path, r.dist)
	res.Total = r.dist[r.options.Target]

	return res
}
