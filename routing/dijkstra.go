package routing

import "routesim/topology"

// DijkstraCalculator is the uniform-cost (label-correcting) search. With
// nonnegative effective weights its result is optimal for the congestion
// state the query ran against.
type DijkstraCalculator struct{}

// ComputePath implements PathCalculator.
func (c *DijkstraCalculator) ComputePath(net *topology.Network, start, end int) ([]int, float64, bool) {
	return shortestPath(net, start, end, nil)
}
