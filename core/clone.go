package core

// Clone returns a deep copy of the graph: fresh vertex records, fresh edge
// records, and a rebuilt adjacency structure that preserves the shared
// identity of undirected mirrors.
//
// Clone is the snapshot primitive for the search engine: a search works on
// its own copy, so concurrent edits to the session graph can never corrupt a
// trace in flight.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph()

	for id, v := range g.vertices {
		c.vertices[id] = &Vertex{ID: v.ID, X: v.X, Y: v.Y}
		c.adjacency[id] = make(map[string]*Edge, len(g.adjacency[id]))
	}

	for from, row := range g.adjacency {
		for to, e := range row {
			if !e.Directed && from != e.From {
				continue // the canonical row re-creates the mirror below
			}
			ce := &Edge{From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
			c.adjacency[from][to] = ce
			if !ce.Directed && from != to {
				c.adjacency[to][from] = ce
			}
		}
	}

	return c
}
