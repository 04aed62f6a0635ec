// Package routing computes minimum-effective-weight paths over the current
// congestion state. Two interchangeable calculators are registered:
// uniform-cost search ("dijkstra") and heuristic-guided search ("astar").
// Both run the same relaxation core and differ only in the frontier
// priority key.
package routing

import "routesim/topology"

// Algorithm names accepted by SetAlgorithm.
const (
	AlgorithmDijkstra = "dijkstra"
	AlgorithmAStar    = "astar"

	// DefaultAlgorithm is what unrecognized names fall back to.
	DefaultAlgorithm = AlgorithmDijkstra
)

// PathCalculator computes one path between two routers on net's current
// effective weights.
//
// Returns the router ids start..end inclusive, the total effective weight
// along them, and whether a path exists. Unknown endpoints count as
// unreachable, not as errors. start == end yields the single-element path
// with cost 0.
type PathCalculator interface {
	ComputePath(net *topology.Network, start, end int) (nodes []int, cost float64, ok bool)
}

// Route is the result of one engine query.
type Route struct {
	Nodes []int   `json:"nodes"`
	Cost  float64 `json:"cost"`

	// ElapsedMillis is the wall-clock duration of the computation. It is an
	// observability side channel for comparative reporting, not part of the
	// correctness contract.
	ElapsedMillis float64 `json:"elapsed_ms"`

	// Algorithm names the calculator that produced this route.
	Algorithm string `json:"algorithm"`
}
