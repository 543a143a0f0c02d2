package dijkstra

// Segment is one edge of a reconstructed path with its length in km,
// computed as the difference between consecutive cumulative distances.
type Segment struct {
	From     string
	To       string
	Distance float64
}

// Result is the terminal outcome of one Search run. The engine keeps no
// reference to it after returning.
//
// Distances and Previous always cover every vertex of the snapshot
// (unreachable vertices map to math.Inf(1) and an empty predecessor).
// Path, Segments and Total are populated only when a target was given and
// reached; "no path exists" is a normal outcome with Reached == false, not
// an error.
type Result struct {
	// Source is the starting vertex of the run.
	Source string

	// Target is the destination vertex, or "" for a distances-only run.
	Target string

	// Distances maps every vertex to its final shortest distance from
	// Source, math.Inf(1) when unreachable. With EarlyStop the values are
	// final for all visited vertices and best-known for the rest.
	Distances map[string]float64

	// Previous maps every vertex to its predecessor on a shortest path from
	// Source ("" for the source itself and for unreached vertices).
	Previous map[string]string

	// Reached reports whether Target was given and is reachable from Source.
	Reached bool

	// Path is the shortest route Source→…→Target; [Source] alone when
	// Source == Target. Empty unless Reached.
	Path []string

	// Segments breaks Path into per-edge distances. Empty for the trivial
	// single-vertex path.
	Segments []Segment

	// Total is the length of Path in km; equals Distances[Target] when
	// Reached, 0 otherwise.
	Total float64
}

// reconstructPath walks predecessor links backward from target to source and
// reverses the chain. Returns nil when target is not connected to source.
func reconstructPath(previous map[string]string, source, target string) []string {
	path := []string{target}
	for cur := target; cur != source; {
		p, ok := previous[cur]
		if !ok || p == "" {
			return nil
		}
		path = append(path, p)
		cur = p
	}

	// Reverse in place to get source→target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// pathSegments derives per-edge distances from the cumulative distances
// along the path.
func pathSegments(path []string, distances map[string]float64) []Segment {
	if len(path) < 2 {
		return nil
	}

	segs := make([]Segment, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		segs = append(segs, Segment{
			From:     path[i-1],
			To:       path[i],
			Distance: distances[path[i]] - distances[path[i-1]],
		})
	}

	return segs
}
