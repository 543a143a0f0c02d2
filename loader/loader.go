// Package loader builds a core.Graph from the on-disk road-network data:
//
//   - distances.csv – one road per row, header
//     "source,target,distance_km" with an optional trailing "one_way"
//     column ("true" inserts a directed arc source→target);
//   - cities_positions_verbose.json – {"City": {"x": ..., "y": ...}} canvas
//     coordinates for the visualizer.
//
// The positions file is advisory: cities without an entry land at (0, 0),
// entries for unknown cities are ignored, and a missing file is not an
// error. The distances file is authoritative: a malformed row or an invalid
// weight aborts the load with a wrapped error naming the row.
package loader

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ukrway/dorohy/core"
)

// Data file names inside the data directory.
const (
	DistancesFile = "distances.csv"
	PositionsFile = "cities_positions_verbose.json"
)

// ErrBadHeader indicates distances.csv does not start with the expected
// "source,target,distance_km" columns.
var ErrBadHeader = errors.New("loader: distances.csv header must start with source,target,distance_km")

// Position is a city's canvas coordinate pair.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Load reads the road network from dataDir and returns the assembled graph.
func Load(dataDir string) (*core.Graph, error) {
	positions, err := loadPositionsFile(filepath.Join(dataDir, PositionsFile))
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(dataDir, DistancesFile))
	if err != nil {
		return nil, fmt.Errorf("loader: open distances: %w", err)
	}
	defer f.Close()

	return LoadEdges(f, positions)
}

// loadPositionsFile reads the positions file if present; a missing file
// yields an empty map.
func loadPositionsFile(path string) (map[string]Position, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]Position{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loader: open positions: %w", err)
	}
	defer f.Close()

	return LoadPositions(f)
}

// LoadPositions decodes the city-coordinates JSON object.
func LoadPositions(r io.Reader) (map[string]Position, error) {
	positions := make(map[string]Position)
	if err := json.NewDecoder(r).Decode(&positions); err != nil {
		return nil, fmt.Errorf("loader: decode positions: %w", err)
	}

	return positions, nil
}

// LoadEdges reads the distances CSV and builds the graph, placing each city
// at its known position or at (0, 0).
func LoadEdges(r io.Reader, positions map[string]Position) (*core.Graph, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("loader: read header: %w", err)
	}
	if len(header) < 3 ||
		strings.TrimSpace(header[0]) != "source" ||
		strings.TrimSpace(header[1]) != "target" ||
		strings.TrimSpace(header[2]) != "distance_km" {
		return nil, ErrBadHeader
	}
	hasOneWay := len(header) > 3 && strings.TrimSpace(header[3]) == "one_way"

	g := core.NewGraph()
	for row := 2; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loader: row %d: %w", row, err)
		}

		source := strings.TrimSpace(record[0])
		target := strings.TrimSpace(record[1])

		weight, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("loader: row %d: %w: %q", row, core.ErrBadWeight, record[2])
		}

		oneWay := false
		if hasOneWay && len(record) > 3 {
			v := strings.TrimSpace(record[3])
			if v != "" {
				oneWay, err = strconv.ParseBool(v)
				if err != nil {
					return nil, fmt.Errorf("loader: row %d: bad one_way value %q", row, record[3])
				}
			}
		}

		for _, city := range []string{source, target} {
			if g.HasVertex(city) {
				continue
			}
			pos := positions[city] // zero value places unknown cities at (0, 0)
			if err := g.AddVertexAt(city, pos.X, pos.Y); err != nil {
				return nil, fmt.Errorf("loader: row %d: %w", row, err)
			}
		}

		var opts []core.EdgeOption
		if oneWay {
			opts = append(opts, core.WithDirected())
		}
		if err := g.AddEdge(source, target, weight, opts...); err != nil {
			return nil, fmt.Errorf("loader: row %d: %w", row, err)
		}
	}

	return g, nil
}
