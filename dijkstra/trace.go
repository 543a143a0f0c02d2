package dijkstra

// StepKind distinguishes the two step variants in a trace.
type StepKind int

const (
	// StepExpand records the selection of the next vertex: the unvisited
	// vertex with minimum tentative distance has just been marked visited.
	// Neighbor is empty for this kind.
	StepExpand StepKind = iota

	// StepRelax records one relaxation attempt from Current to Neighbor,
	// successful (Improved) or not.
	StepRelax
)

// String returns the step kind name, for logs and test failure output.
func (k StepKind) String() string {
	switch k {
	case StepExpand:
		return "expand"
	case StepRelax:
		return "relax"
	default:
		return "unknown"
	}
}

// Step is one immutable unit of algorithm progress.
//
// Distances and Visited are snapshots taken at the instant the step was
// recorded: Distances maps every vertex to its best-known distance
// (math.Inf(1) for unreached vertices), Visited lists the finalized vertices
// in visit order. Both are private copies — mutating them cannot disturb the
// algorithm or other steps.
type Step struct {
	// Kind is StepExpand or StepRelax.
	Kind StepKind

	// Current is the vertex being expanded.
	Current string

	// Neighbor is the vertex being relaxed; empty for StepExpand.
	Neighbor string

	// Improved reports whether the relaxation lowered Neighbor's tentative
	// distance. Always false for StepExpand.
	Improved bool

	// NewDistance is Neighbor's improved tentative distance; meaningful only
	// when Improved is true.
	NewDistance float64

	// Distances is the full distance snapshot at this instant.
	Distances map[string]float64

	// Visited is the finalized-vertex set at this instant, in visit order.
	Visited []string
}

// Trace is the complete ordered record of every expansion and relaxation
// attempt made during one Search run.
//
// A Trace is fully materialized: it holds no reference to the graph or to
// any live computation, so replaying it — forward, repeatedly, at any pace —
// costs nothing but iteration. Discarding a half-consumed trace is safe and
// immediate.
type Trace struct {
	steps []Step
}

// Len returns the number of recorded steps.
func (t *Trace) Len() int { return len(t.steps) }

// At returns the i-th step. Panics if i is out of range, matching slice
// semantics.
func (t *Trace) At(i int) Step { return t.steps[i] }

// Steps returns the recorded steps as a slice. The slice header is a copy,
// so appending on the caller side cannot grow the trace; the Step values
// themselves are shared and must be treated as read-only.
func (t *Trace) Steps() []Step {
	out := make([]Step, len(t.steps))
	copy(out, t.steps)

	return out
}

// Final returns the last recorded step and true, or a zero Step and false
// for an empty trace.
func (t *Trace) Final() (Step, bool) {
	if len(t.steps) == 0 {
		return Step{}, false
	}

	return t.steps[len(t.steps)-1], true
}
