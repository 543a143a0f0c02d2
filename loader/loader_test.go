package loader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukrway/dorohy/core"
	"github.com/ukrway/dorohy/loader"
)

const distancesCSV = `source,target,distance_km,one_way
Kyiv,Lviv,540,
Lviv,Odesa,700,
Kyiv,Odesa,480,
Kyiv,Kharkiv,480,true
`

const positionsJSON = `{
  "Kyiv":  {"x": 300, "y": 120},
  "Lviv":  {"x": 80,  "y": 140},
  "Poltava": {"x": 400, "y": 160}
}`

func writeDataDir(t *testing.T, csvBody, jsonBody string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, loader.DistancesFile), []byte(csvBody), 0o644))
	if jsonBody != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, loader.PositionsFile), []byte(jsonBody), 0o644))
	}

	return dir
}

func TestLoad_FullDataDir(t *testing.T) {
	dir := writeDataDir(t, distancesCSV, positionsJSON)

	g, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"Kharkiv", "Kyiv", "Lviv", "Odesa"}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())

	// Known city gets its coordinates; cities without an entry sit at (0,0).
	x, y, err := g.Position("Kyiv")
	require.NoError(t, err)
	assert.Equal(t, 300.0, x)
	assert.Equal(t, 120.0, y)

	x, y, err = g.Position("Odesa")
	require.NoError(t, err)
	assert.Zero(t, x)
	assert.Zero(t, y)

	// The one_way column inserts a directed arc.
	assert.True(t, g.HasEdge("Kyiv", "Kharkiv"))
	assert.False(t, g.HasEdge("Kharkiv", "Kyiv"))
	// Undirected rows are mirrored.
	assert.True(t, g.HasEdge("Odesa", "Kyiv"))
}

func TestLoad_MissingPositionsFile(t *testing.T) {
	dir := writeDataDir(t, distancesCSV, "")

	g, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())

	x, y, err := g.Position("Kyiv")
	require.NoError(t, err)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestLoadEdges_BadHeader(t *testing.T) {
	_, err := loader.LoadEdges(strings.NewReader("from,to,km\nKyiv,Lviv,540\n"), nil)
	assert.ErrorIs(t, err, loader.ErrBadHeader)
}

func TestLoadEdges_BadWeight(t *testing.T) {
	body := "source,target,distance_km\nKyiv,Lviv,abc\n"
	_, err := loader.LoadEdges(strings.NewReader(body), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	assert.Contains(t, err.Error(), "row 2")
}

func TestLoadEdges_NonPositiveWeightRejected(t *testing.T) {
	body := "source,target,distance_km\nKyiv,Lviv,-10\n"
	_, err := loader.LoadEdges(strings.NewReader(body), nil)
	assert.ErrorIs(t, err, core.ErrBadWeight)
}

func TestLoadEdges_DuplicateRoadRejected(t *testing.T) {
	body := "source,target,distance_km\nKyiv,Lviv,540\nLviv,Kyiv,540\n"
	_, err := loader.LoadEdges(strings.NewReader(body), nil)
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)
}

func TestLoadPositions_Decode(t *testing.T) {
	positions, err := loader.LoadPositions(strings.NewReader(positionsJSON))
	require.NoError(t, err)
	assert.Equal(t, loader.Position{X: 80, Y: 140}, positions["Lviv"])
	assert.Len(t, positions, 3)
}
