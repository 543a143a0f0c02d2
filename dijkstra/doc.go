// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// core.Graph, instrumented to record every expansion and relaxation attempt
// into a replayable Trace for step-by-step visualization.
//
// Overview:
//
//   - Search computes single-source shortest distances, optionally stopping
//     early once a designated target is finalized, and returns the full
//     ordered Trace of algorithm steps plus a terminal Result.
//   - The Trace is materialized before Search returns: it is a plain slice
//     of immutable snapshots, tied to no live computation, replayable any
//     number of times at any pace. Pacing, pausing and resetting are caller
//     concerns (see package replay).
//
// Why the O(V²) selection variant:
//
//   - The next vertex is found by scanning all unvisited vertices in a fixed
//     lexicographic order rather than popping a heap. On a network of tens
//     of cities the asymptotics are irrelevant, and the scan buys two
//     properties a heap cannot give cheaply: ties break deterministically on
//     the lowest vertex ID, and the trace records exactly one comparison per
//     neighbor per expansion — no lazy-decrease-key duplicates, no stale
//     pops that mean nothing on screen. Two runs over an unmodified graph
//     produce byte-identical traces.
//
// Complexity:
//
//   - Time:  O(V² + E) for the algorithm itself; each recorded step copies
//     the distance snapshot, so trace construction adds O(S·V) where S is
//     the step count.
//   - Space: O(S·V) for the trace, O(V) for the working maps.
//
// Error handling (sentinel):
//
//   - ErrEmptySource    – no Source option was provided.
//   - ErrNilGraph       – the graph argument is nil.
//   - ErrVertexNotFound – the source, or the target when given, is not in
//     the graph (wrapped with the offending ID).
//
// All failures are precondition violations detected before the first step is
// recorded; a rejected call never returns a partial trace. "No path exists"
// is not an error: it is a Result with Reached == false.
//
// Example:
//
//	trace, res, err := dijkstra.Search(g,
//	    dijkstra.Source("Київ"),
//	    dijkstra.Target("Одеса"),
//	    dijkstra.WithEarlyStop(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.Total, trace.Len())
package dijkstra
