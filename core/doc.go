// Package core defines the road-network Graph, Vertex, and Edge types and the
// mutation API the rest of dorohy is built on.
//
// The model is deliberately small: a vertex is a city identified by a unique
// name, an edge is a highway segment with a strictly positive length in
// kilometres. An edge may be undirected (the default — one shared record
// mirrored into both adjacency rows) or directed (a single one-way arc).
// Because the mirror shares the record, SetWeight updates both directions of
// an undirected road at once, and MakeDirected only has to drop the reverse
// arc.
//
// Mutations are atomic at the call level: each operation either fully
// succeeds or returns a sentinel error and leaves the graph untouched. There
// is no transactional batching.
//
// Determinism:
//
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - Neighbors() and Edges() are sorted the same way, so traversals and
//     recorded search traces are reproducible run to run.
//
// Concurrency:
//
//   - All state is guarded by one sync.RWMutex. A single interactive session
//     drives the graph, so contention is not a concern; the lock exists so an
//     HTTP edit and an in-flight Clone never observe torn state.
//   - Algorithms that must not see concurrent edits take a Clone() snapshot
//     up front and work on that.
//
// Errors (sentinel):
//
//   - ErrEmptyVertexID   – a vertex ID is the empty string.
//   - ErrDuplicateVertex – AddVertex for an ID that already exists.
//   - ErrVertexNotFound  – an operation referenced a missing vertex.
//   - ErrEdgeNotFound    – an operation referenced a missing edge.
//   - ErrDuplicateEdge   – AddEdge over an arc that already exists.
//   - ErrBadWeight       – a weight that is zero, negative, NaN or infinite.
package core
