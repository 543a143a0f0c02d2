package core

import "sort"

// AddVertex inserts a new city at position (0, 0).
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrDuplicateVertex if the city is already present.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	return g.AddVertexAt(id, 0, 0)
}

// AddVertexAt inserts a new city at the given canvas position.
// Same contract as AddVertex.
func (g *Graph) AddVertexAt(id string, x, y float64) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; exists {
		return ErrDuplicateVertex
	}

	g.vertices[id] = &Vertex{ID: id, X: x, Y: y}
	g.adjacency[id] = make(map[string]*Edge)

	return nil
}

// HasVertex reports whether the city exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a city and every incident arc, in both directions.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if the city does not exist.
//
// Complexity: O(V) — every adjacency row is checked for an arc into id.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	// Drop the outgoing row, then sweep remaining rows for arcs into id.
	delete(g.adjacency, id)
	for _, row := range g.adjacency {
		delete(row, id)
	}
	delete(g.vertices, id)

	return nil
}

// Vertices returns all city IDs sorted lexicographically ascending.
// The sorted order is the total order used for search tie-breaking, so it is
// part of the package contract, not a cosmetic choice.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of cities.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Position returns the canvas coordinates of a city.
//
// Errors:
//   - ErrVertexNotFound if the city does not exist.
func (g *Graph) Position(id string) (x, y float64, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return 0, 0, ErrVertexNotFound
	}

	return v.X, v.Y, nil
}

// SetPosition moves a city on the canvas. Geometry only; the topology and
// all weights are unaffected.
//
// Errors:
//   - ErrVertexNotFound if the city does not exist.
func (g *Graph) SetPosition(id string, x, y float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}

	v.X = x
	v.Y = y

	return nil
}
