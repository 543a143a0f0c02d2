// Package core_test verifies the Graph mutation contracts: typed failures,
// all-or-nothing semantics, mirror behavior of undirected roads, and the
// deterministic enumeration order the search engine depends on.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukrway/dorohy/core"
)

// ------------------------------------------------------------------------
// 1. Vertex lifecycle.
// ------------------------------------------------------------------------

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddVertex("Kyiv"))
	assert.True(t, g.HasVertex("Kyiv"))

	// Duplicate insertion is a typed failure, not a silent no-op.
	assert.ErrorIs(t, g.AddVertex("Kyiv"), core.ErrDuplicateVertex)
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.Equal(t, 1, g.VertexCount())
}

func TestGraph_AddVertexAt_Position(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddVertexAt("Lviv", 120, 260))

	x, y, err := g.Position("Lviv")
	require.NoError(t, err)
	assert.Equal(t, 120.0, x)
	assert.Equal(t, 260.0, y)

	require.NoError(t, g.SetPosition("Lviv", 130, 270))
	x, _, err = g.Position("Lviv")
	require.NoError(t, err)
	assert.Equal(t, 130.0, x)

	assert.ErrorIs(t, g.SetPosition("Odesa", 0, 0), core.ErrVertexNotFound)
	_, _, err = g.Position("Odesa")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_RemoveVertex_CascadesEdges(t *testing.T) {
	g := buildTriangle(t)

	require.NoError(t, g.RemoveVertex("Lviv"))

	assert.False(t, g.HasVertex("Lviv"))
	assert.False(t, g.HasEdge("Kyiv", "Lviv"))
	assert.False(t, g.HasEdge("Odesa", "Lviv"))
	// The untouched road survives.
	assert.True(t, g.HasEdge("Kyiv", "Odesa"))
	assert.Equal(t, 1, g.EdgeCount())

	assert.ErrorIs(t, g.RemoveVertex("Lviv"), core.ErrVertexNotFound)
}

func TestGraph_Vertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"Odesa", "Kyiv", "Lviv", "Dnipro"} {
		require.NoError(t, g.AddVertex(id))
	}

	assert.Equal(t, []string{"Dnipro", "Kyiv", "Lviv", "Odesa"}, g.Vertices())
}

// ------------------------------------------------------------------------
// 2. Edge lifecycle.
// ------------------------------------------------------------------------

func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, id := range []string{"Kyiv", "Lviv", "Odesa"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("Kyiv", "Lviv", 540))
	require.NoError(t, g.AddEdge("Lviv", "Odesa", 700))
	require.NoError(t, g.AddEdge("Kyiv", "Odesa", 480))

	return g
}

func TestGraph_AddEdge_Preconditions(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("Kyiv"))

	// Both endpoints must pre-exist; no auto-creation.
	assert.ErrorIs(t, g.AddEdge("Kyiv", "Lviv", 540), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge("Lviv", "Kyiv", 540), core.ErrVertexNotFound)

	require.NoError(t, g.AddVertex("Lviv"))
	assert.ErrorIs(t, g.AddEdge("Kyiv", "Lviv", 0), core.ErrBadWeight)
	assert.ErrorIs(t, g.AddEdge("Kyiv", "Lviv", -5), core.ErrBadWeight)

	// A failed insertion leaves the graph unchanged.
	assert.Equal(t, 0, g.EdgeCount())

	require.NoError(t, g.AddEdge("Kyiv", "Lviv", 540))
	assert.ErrorIs(t, g.AddEdge("Kyiv", "Lviv", 540), core.ErrDuplicateEdge)
	// The undirected mirror counts as the same logical edge.
	assert.ErrorIs(t, g.AddEdge("Lviv", "Kyiv", 540), core.ErrDuplicateEdge)
}

func TestGraph_UndirectedMirror(t *testing.T) {
	g := buildTriangle(t)

	// Both orientations are visible.
	assert.True(t, g.HasEdge("Kyiv", "Lviv"))
	assert.True(t, g.HasEdge("Lviv", "Kyiv"))

	ns, err := g.Neighbors("Lviv")
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{To: "Kyiv", Weight: 540}, {To: "Odesa", Weight: 700}}, ns)
}

func TestGraph_RemoveEdge_BothArcs(t *testing.T) {
	g := buildTriangle(t)

	// Removing via the mirror orientation removes the logical edge.
	require.NoError(t, g.RemoveEdge("Odesa", "Kyiv"))
	assert.False(t, g.HasEdge("Kyiv", "Odesa"))
	assert.False(t, g.HasEdge("Odesa", "Kyiv"))

	assert.ErrorIs(t, g.RemoveEdge("Kyiv", "Odesa"), core.ErrEdgeNotFound)
}

func TestGraph_SetWeight_PropagatesToMirror(t *testing.T) {
	g := buildTriangle(t)

	require.NoError(t, g.SetWeight("Lviv", "Kyiv", 550))

	ns, err := g.Neighbors("Kyiv")
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{To: "Lviv", Weight: 550}, {To: "Odesa", Weight: 480}}, ns)

	assert.ErrorIs(t, g.SetWeight("Kyiv", "Lviv", -1), core.ErrBadWeight)
	assert.ErrorIs(t, g.SetWeight("Kyiv", "Dnipro", 100), core.ErrEdgeNotFound)
}

func TestGraph_MakeDirected(t *testing.T) {
	g := buildTriangle(t)

	require.NoError(t, g.MakeDirected("Kyiv", "Lviv"))

	// neighbors(Lviv) no longer contains Kyiv, but neighbors(Kyiv) still
	// contains Lviv with the original weight.
	ns, err := g.Neighbors("Lviv")
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{To: "Odesa", Weight: 700}}, ns)

	ns, err = g.Neighbors("Kyiv")
	require.NoError(t, err)
	assert.Contains(t, ns, core.Neighbor{To: "Lviv", Weight: 540})

	// Idempotent on an already-directed arc.
	require.NoError(t, g.MakeDirected("Kyiv", "Lviv"))
	assert.True(t, g.HasEdge("Kyiv", "Lviv"))
	assert.False(t, g.HasEdge("Lviv", "Kyiv"))

	assert.ErrorIs(t, g.MakeDirected("Kyiv", "Dnipro"), core.ErrEdgeNotFound)
}

func TestGraph_MakeDirected_MirrorOrientation(t *testing.T) {
	// Converting through the mirror keeps the requested direction.
	g := buildTriangle(t)

	require.NoError(t, g.MakeDirected("Lviv", "Kyiv"))

	assert.True(t, g.HasEdge("Lviv", "Kyiv"))
	assert.False(t, g.HasEdge("Kyiv", "Lviv"))
}

func TestGraph_SelfLoop(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("Kyiv"))
	require.NoError(t, g.AddEdge("Kyiv", "Kyiv", 10))

	ns, err := g.Neighbors("Kyiv")
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{To: "Kyiv", Weight: 10}}, ns)
	assert.Equal(t, 1, g.EdgeCount())

	require.NoError(t, g.RemoveEdge("Kyiv", "Kyiv"))
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraph_Edges_Deterministic(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.MakeDirected("Lviv", "Odesa"))

	want := []core.Edge{
		{From: "Kyiv", To: "Lviv", Weight: 540},
		{From: "Kyiv", To: "Odesa", Weight: 480},
		{From: "Lviv", To: "Odesa", Weight: 700, Directed: true},
	}
	assert.Equal(t, want, g.Edges())
	assert.Equal(t, 3, g.EdgeCount())
}

// ------------------------------------------------------------------------
// 3. Snapshots.
// ------------------------------------------------------------------------

func TestGraph_Clone_Independent(t *testing.T) {
	g := buildTriangle(t)
	c := g.Clone()

	// Edits to the original must not leak into the clone, and vice versa.
	require.NoError(t, g.SetWeight("Kyiv", "Odesa", 1))
	require.NoError(t, c.RemoveEdge("Kyiv", "Lviv"))

	ns, err := c.Neighbors("Kyiv")
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{To: "Odesa", Weight: 480}}, ns)

	assert.True(t, g.HasEdge("Kyiv", "Lviv"))
}

func TestGraph_Clone_PreservesMirrorIdentity(t *testing.T) {
	g := buildTriangle(t)
	c := g.Clone()

	// The cloned undirected edge still shares one record: updating one
	// orientation updates the other.
	require.NoError(t, c.SetWeight("Lviv", "Kyiv", 999))

	ns, err := c.Neighbors("Kyiv")
	require.NoError(t, err)
	assert.Contains(t, ns, core.Neighbor{To: "Lviv", Weight: 999})
}
