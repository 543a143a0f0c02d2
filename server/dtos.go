package server

import (
	"math"

	"github.com/ukrway/dorohy/core"
	"github.com/ukrway/dorohy/dijkstra"
)

// ---- requests ----

type addCityRequest struct {
	Name string  `json:"name" validate:"required"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type addRoadRequest struct {
	Source     string  `json:"source" validate:"required"`
	Target     string  `json:"target" validate:"required"`
	DistanceKm float64 `json:"distance_km" validate:"required,gt=0"`
	OneWay     bool    `json:"one_way"`
}

type setDistanceRequest struct {
	Source     string  `json:"source" validate:"required"`
	Target     string  `json:"target" validate:"required"`
	DistanceKm float64 `json:"distance_km" validate:"required,gt=0"`
}

type oneWayRequest struct {
	Source string `json:"source" validate:"required"`
	Target string `json:"target" validate:"required"`
}

// ---- responses ----

type cityResponse struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type roadResponse struct {
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	DistanceKm float64 `json:"distance_km"`
	OneWay     bool    `json:"one_way"`
}

type graphResponse struct {
	Cities []cityResponse `json:"cities"`
	Roads  []roadResponse `json:"roads"`
}

func newGraphResponse(g *core.Graph) graphResponse {
	resp := graphResponse{
		Cities: make([]cityResponse, 0, g.VertexCount()),
		Roads:  make([]roadResponse, 0, g.EdgeCount()),
	}
	for _, id := range g.Vertices() {
		x, y, _ := g.Position(id)
		resp.Cities = append(resp.Cities, cityResponse{Name: id, X: x, Y: y})
	}
	for _, e := range g.Edges() {
		resp.Roads = append(resp.Roads, roadResponse{
			Source:     e.From,
			Target:     e.To,
			DistanceKm: e.Weight,
			OneWay:     e.Directed,
		})
	}

	return resp
}

// stepResponse mirrors dijkstra.Step. Unreachable distances are +Inf, which
// JSON cannot encode, so they become null.
type stepResponse struct {
	Kind        string              `json:"kind"`
	Current     string              `json:"current"`
	Neighbor    string              `json:"neighbor,omitempty"`
	Improved    bool                `json:"improved"`
	NewDistance *float64            `json:"new_distance,omitempty"`
	Distances   map[string]*float64 `json:"distances"`
	Visited     []string            `json:"visited"`
}

type segmentResponse struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	DistanceKm float64 `json:"distance_km"`
}

type resultResponse struct {
	Source    string              `json:"source"`
	Target    string              `json:"target,omitempty"`
	Reached   bool                `json:"reached"`
	Path      []string            `json:"path,omitempty"`
	Segments  []segmentResponse   `json:"segments,omitempty"`
	TotalKm   float64             `json:"total_km"`
	Distances map[string]*float64 `json:"distances"`
}

type searchResponse struct {
	Steps  []stepResponse `json:"steps"`
	Result resultResponse `json:"result"`
}

func newSearchResponse(trace *dijkstra.Trace, res *dijkstra.Result) searchResponse {
	steps := make([]stepResponse, 0, trace.Len())
	for _, s := range trace.Steps() {
		sr := stepResponse{
			Kind:      s.Kind.String(),
			Current:   s.Current,
			Neighbor:  s.Neighbor,
			Improved:  s.Improved,
			Distances: jsonDistances(s.Distances),
			Visited:   s.Visited,
		}
		if s.Improved {
			d := s.NewDistance
			sr.NewDistance = &d
		}
		steps = append(steps, sr)
	}

	segments := make([]segmentResponse, 0, len(res.Segments))
	for _, seg := range res.Segments {
		segments = append(segments, segmentResponse{From: seg.From, To: seg.To, DistanceKm: seg.Distance})
	}

	return searchResponse{
		Steps: steps,
		Result: resultResponse{
			Source:    res.Source,
			Target:    res.Target,
			Reached:   res.Reached,
			Path:      res.Path,
			Segments:  segments,
			TotalKm:   res.Total,
			Distances: jsonDistances(res.Distances),
		},
	}
}

// jsonDistances converts a distance snapshot for JSON: +Inf → null.
func jsonDistances(in map[string]float64) map[string]*float64 {
	out := make(map[string]*float64, len(in))
	for v, d := range in {
		if math.IsInf(d, 1) {
			out[v] = nil
			continue
		}
		d := d
		out[v] = &d
	}

	return out
}
