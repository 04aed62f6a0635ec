package routing

import (
	"math"

	"routesim/topology"
)

// AStarCalculator is the heuristic-guided search. The frontier is ordered
// by tentative distance plus the Manhattan distance between router
// coordinates and the target.
//
// The Manhattan estimate is not a guaranteed lower bound on remaining
// effective cost: base weights bear no fixed relation to coordinate
// distance, and congestion rescales them per query. The search can
// therefore settle the target before a cheaper detour is explored and
// return a costlier path than DijkstraCalculator would. This is a deliberate
// approximation; use "dijkstra" when optimality matters.
type AStarCalculator struct{}

// ComputePath implements PathCalculator.
func (c *AStarCalculator) ComputePath(net *topology.Network, start, end int) ([]int, float64, bool) {
	target, ok := net.Router(end)
	if !ok {
		return nil, 0, false
	}

	manhattan := func(id int) float64 {
		r, ok := net.Router(id)
		if !ok {
			return 0
		}
		return math.Abs(r.X-target.X) + math.Abs(r.Y-target.Y)
	}
	return shortestPath(net, start, end, manhattan)
}
