// Package server exposes the visualizer backend over HTTP.
//
// The browser canvas is a thin client: it fetches the graph, posts edits,
// and asks for a search; the full step trace comes back in one JSON body
// and all replay pacing (animation delay, pause, reset) happens client-side
// over that materialized trace.
//
// Routes:
//
//	GET    /healthz                    – liveness probe (middleware-served)
//	GET    /api/graph                  – cities with positions + roads
//	POST   /api/cities                 – {name, x, y}
//	DELETE /api/cities/:name           – remove a city and its roads
//	POST   /api/roads                  – {source, target, distance_km, one_way}
//	DELETE /api/roads?source=&target=  – remove a road
//	PATCH  /api/roads/distance         – {source, target, distance_km}
//	POST   /api/roads/oneway           – {source, target}
//	GET    /api/search?source=&target=&early_stop= – {steps, result}
//
// Error contract: sentinel failures from core/dijkstra map onto status
// codes — unknown vertex or edge → 404, duplicates → 409, bad weights and
// malformed requests → 400. The body is always the typed error envelope.
package server
