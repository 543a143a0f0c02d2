// Package service is the session layer between the HTTP surface and the
// core: it owns the single mutable Graph of an editing session, applies user
// edits, and runs searches over snapshots. All failures bubble up as the
// core/dijkstra sentinel errors so the transport can map them to status
// codes.
package service

import (
	"go.uber.org/zap"

	"github.com/ukrway/dorohy/core"
)

// GraphService applies user edits to the session graph.
type GraphService struct {
	graph *core.Graph
	log   *zap.Logger
}

// NewGraphService wraps an already-loaded session graph.
func NewGraphService(graph *core.Graph, log *zap.Logger) *GraphService {
	return &GraphService{graph: graph, log: log}
}

// Graph exposes the live session graph for read access and searching.
func (s *GraphService) Graph() *core.Graph { return s.graph }

// Snapshot returns an independent deep copy of the session graph.
func (s *GraphService) Snapshot() *core.Graph { return s.graph.Clone() }

// ListCities returns all city names, sorted.
func (s *GraphService) ListCities() []string { return s.graph.Vertices() }

// AddCity inserts a city at the given canvas position.
func (s *GraphService) AddCity(name string, x, y float64) error {
	if err := s.graph.AddVertexAt(name, x, y); err != nil {
		return err
	}
	s.log.Info("city added", zap.String("city", name))

	return nil
}

// RemoveCity deletes a city and all its roads.
func (s *GraphService) RemoveCity(name string) error {
	if err := s.graph.RemoveVertex(name); err != nil {
		return err
	}
	s.log.Info("city removed", zap.String("city", name))

	return nil
}

// SetCityPosition moves a city on the canvas.
func (s *GraphService) SetCityPosition(name string, x, y float64) error {
	return s.graph.SetPosition(name, x, y)
}

// AddRoad inserts a road between two existing cities; oneWay inserts a
// directed arc source→target.
func (s *GraphService) AddRoad(source, target string, km float64, oneWay bool) error {
	var opts []core.EdgeOption
	if oneWay {
		opts = append(opts, core.WithDirected())
	}
	if err := s.graph.AddEdge(source, target, km, opts...); err != nil {
		return err
	}
	s.log.Info("road added",
		zap.String("source", source),
		zap.String("target", target),
		zap.Float64("km", km),
		zap.Bool("one_way", oneWay))

	return nil
}

// RemoveRoad deletes the road between two cities, mirror included.
func (s *GraphService) RemoveRoad(source, target string) error {
	if err := s.graph.RemoveEdge(source, target); err != nil {
		return err
	}
	s.log.Info("road removed", zap.String("source", source), zap.String("target", target))

	return nil
}

// SetRoadDistance updates a road's length; undirected mirrors follow.
func (s *GraphService) SetRoadDistance(source, target string, km float64) error {
	if err := s.graph.SetWeight(source, target, km); err != nil {
		return err
	}
	s.log.Info("road distance updated",
		zap.String("source", source),
		zap.String("target", target),
		zap.Float64("km", km))

	return nil
}

// MakeRoadOneWay converts a road into a one-way arc source→target.
func (s *GraphService) MakeRoadOneWay(source, target string) error {
	if err := s.graph.MakeDirected(source, target); err != nil {
		return err
	}
	s.log.Info("road made one-way", zap.String("source", source), zap.String("target", target))

	return nil
}
