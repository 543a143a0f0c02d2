// Package dorohy is a teaching toolkit for shortest-path search: it models
// a small road network, runs Dijkstra's algorithm while recording every
// decision, and replays the recording step by step so the algorithm can be
// watched, not just trusted.
//
// 🚀 What is dorohy?
//
//	A thread-safe road-network core plus a step-recording search engine:
//		• Core primitives: cities & roads with canvas positions, mutated safely under locks
//		• Step-recording Dijkstra: every expansion and relaxation captured as a Step
//		• Replayable traces: manual stepping or timed playback of a finished search
//		• Path reconstruction: full route with per-segment distances
//		• Data loading: distances CSV + city-positions JSON
//		• HTTP backend: graph editing and search over a small JSON API
//
// ✨ Why choose dorohy?
//
//   - Built for explanation – the trace shows why each road was taken or rejected
//   - Deterministic – sorted enumeration and lexicographic tie-breaks, every run identical
//   - Rock-solid guarantees – R/W locks on the graph, snapshot isolation during search
//   - Honest O(V²) – the textbook selection loop, because its scan IS the visualization
//
// Everything is organized under focused subpackages:
//
//	core/     — Graph, Vertex, Edge types & thread-safe mutation primitives
//	dijkstra/ — the step-recording search, Trace, and path reconstruction
//	replay/   — paced playback of a recorded trace
//	loader/   — road-network files → core.Graph
//	service/  — session layer: edits and searches over one shared graph
//	server/   — the HTTP API surface
//
// Quick ASCII example:
//
//	    Kyiv───540───Lviv
//	      \           /
//	      480       700
//	        \       /
//	         Odesa
//
//	a triangle where the direct road beats the detour by 760 km —
//	and the trace shows the search figuring that out in four steps.
//
//	go get github.com/ukrway/dorohy
package dorohy
