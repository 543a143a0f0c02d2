package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID was the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates AddVertex was called with an ID that is
	// already present in the graph.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdge indicates AddEdge was called for an arc that already
	// exists (including the mirror of an undirected edge).
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrBadWeight indicates a non-positive, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be a positive, finite number of km")
)

// Vertex represents a city node.
//
// ID uniquely identifies the vertex within its Graph. X and Y are canvas
// coordinates for the visualizer; the search engine never reads them.
type Vertex struct {
	// ID is the unique city name.
	ID string

	// X, Y position the city on the schematic map. (0, 0) when unknown.
	X, Y float64
}

// Edge represents a highway segment between two cities.
//
// Weight is the road length in kilometres and is always > 0. An undirected
// edge is stored once and mirrored into both adjacency rows, so both
// directions share this record; Directed marks a one-way arc From→To.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the segment length in km; strictly positive.
	Weight float64

	// Directed reports whether this edge is a one-way arc.
	Directed bool
}

// Neighbor is one outgoing arc as seen from a vertex: the far endpoint and
// the shared edge weight.
type Neighbor struct {
	To     string
	Weight float64
}

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*Edge)

// WithDirected marks the new edge as a one-way arc From→To.
// Without it AddEdge inserts an undirected road.
func WithDirected() EdgeOption {
	return func(e *Edge) { e.Directed = true }
}

// Graph is the in-memory road network.
//
// vertices maps city name → Vertex; adjacency maps from → to → *Edge, where
// an undirected edge appears in both rows through one shared pointer.
type Graph struct {
	mu sync.RWMutex

	vertices  map[string]*Vertex
	adjacency map[string]map[string]*Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]*Edge),
	}
}

// validWeight reports whether w is usable as a road length.
// Zero and negative distances are not physically meaningful, and NaN/Inf
// would poison distance arithmetic in the search engine.
func validWeight(w float64) bool {
	return w > 0 && !math.IsNaN(w) && !math.IsInf(w, 0)
}
