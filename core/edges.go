package core

import "sort"

// AddEdge inserts a road between two existing cities.
//
// By default the road is undirected: one Edge record is created and mirrored
// into both adjacency rows, so the two arcs share weight and identity.
// WithDirected() inserts a single one-way arc from→to instead. Self-loops
// are legal (and harmless: a positive-weight loop can never improve a
// shortest distance).
//
// Errors:
//   - ErrEmptyVertexID  if either endpoint ID is "".
//   - ErrVertexNotFound if either endpoint is missing; endpoints must be
//     added explicitly before roads between them.
//   - ErrBadWeight      if weight ≤ 0, NaN or infinite.
//   - ErrDuplicateEdge  if an arc from→to already exists (including the
//     mirror of an undirected road).
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if !validWeight(weight) {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[from]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.adjacency[from][to]; ok {
		return ErrDuplicateEdge
	}

	e := &Edge{From: from, To: to, Weight: weight}
	for _, opt := range opts {
		opt(e)
	}

	g.adjacency[from][to] = e
	if !e.Directed && from != to {
		// Mirror arc: the same record, reachable from both rows.
		g.adjacency[to][from] = e
	}

	return nil
}

// RemoveEdge deletes the road between from and to, mirror included.
// Either orientation of an undirected road addresses the same logical edge.
//
// Errors:
//   - ErrEdgeNotFound if no arc from→to exists.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.adjacency[from][to]
	if !ok {
		return ErrEdgeNotFound
	}

	delete(g.adjacency[from], to)
	if !e.Directed && from != to {
		delete(g.adjacency[to], from)
	}

	return nil
}

// SetWeight updates the length of the road from→to. The mirror arc of an
// undirected road shares the record, so both directions change together.
//
// Errors:
//   - ErrEdgeNotFound if no arc from→to exists.
//   - ErrBadWeight    if weight ≤ 0, NaN or infinite.
//
// Complexity: O(1).
func (g *Graph) SetWeight(from, to string, weight float64) error {
	if !validWeight(weight) {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.adjacency[from][to]
	if !ok {
		return ErrEdgeNotFound
	}

	e.Weight = weight

	return nil
}

// MakeDirected converts the road between from and to into a one-way arc
// from→to, deleting the reverse arc. A no-op if the edge is already
// directed.
//
// Errors:
//   - ErrEdgeNotFound if no arc from→to exists.
//
// Complexity: O(1).
func (g *Graph) MakeDirected(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.adjacency[from][to]
	if !ok {
		return ErrEdgeNotFound
	}
	if e.Directed {
		return nil
	}

	if from != to {
		delete(g.adjacency[to], from)
	}
	// Orient the shared record in the surviving direction. Needed when the
	// caller addressed the mirror: an undirected edge stored as A→B but
	// converted via MakeDirected(B, A) must keep only the B→A arc.
	e.From = from
	e.To = to
	e.Directed = true

	return nil
}

// HasEdge reports whether an arc from→to exists. Undirected roads are
// mirrored, so HasEdge answers true for both orientations.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[from][to]

	return ok
}

// Neighbors returns the cities reachable by one outgoing arc from id,
// sorted by destination ID ascending.
//
// Errors:
//   - ErrVertexNotFound if the city does not exist.
//
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	g.mu.RLock()

	row, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}

	ns := make([]Neighbor, 0, len(row))
	for to, e := range row {
		ns = append(ns, Neighbor{To: to, Weight: e.Weight})
	}
	g.mu.RUnlock()

	sort.Slice(ns, func(i, j int) bool { return ns[i].To < ns[j].To })

	return ns, nil
}

// Edges returns one entry per logical edge (an undirected road appears once,
// in its stored From→To orientation), as value copies in deterministic
// order: sorted by From, then To.
// Complexity: O(V log V + E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()

	out := make([]Edge, 0, len(g.adjacency))
	for from, row := range g.adjacency {
		for _, e := range row {
			if !e.Directed && from != e.From {
				continue // mirror entry; the canonical row reports it
			}
			out = append(out, *e)
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of logical edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for from, row := range g.adjacency {
		for _, e := range row {
			if !e.Directed && from != e.From {
				continue
			}
			n++
		}
	}

	return n
}
