// Package snapshot produces immutable, JSON-serializable views of the
// network for external reporting and visualization. A snapshot is a
// defensive copy: it holds no references into the live topology and never
// changes after Capture returns.
package snapshot

import (
	"sort"

	"routesim/topology"
)

// RouterState is one router's congestion and position at capture time.
type RouterState struct {
	Congestion float64 `json:"congestion"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

// EdgeState is one undirected link at capture time, Src < Dst canonical.
type EdgeState struct {
	Src             int     `json:"src"`
	Dst             int     `json:"dst"`
	BaseWeight      float64 `json:"base_weight"`
	EffectiveWeight float64 `json:"effective_weight"`
}

// Snapshot is a point-in-time copy of the network state plus the active
// algorithm name.
type Snapshot struct {
	Routers   map[int]RouterState `json:"routers"`
	Edges     []EdgeState         `json:"edges"`
	Algorithm string              `json:"algorithm"`
}

// Capture copies every router's congestion and position and every
// undirected edge exactly once (visited from the lower-id endpoint only).
// Edges are sorted by (Src, Dst) so output is deterministic. Capturing
// mutates nothing.
func Capture(net *topology.Network, algorithm string) *Snapshot {
	ids := net.RouterIDs()

	snap := &Snapshot{
		Routers:   make(map[int]RouterState, len(ids)),
		Edges:     make([]EdgeState, 0, net.LinkCount()),
		Algorithm: algorithm,
	}

	for _, id := range ids {
		info, ok := net.Router(id)
		if !ok {
			continue
		}
		snap.Routers[id] = RouterState{Congestion: info.Congestion, X: info.X, Y: info.Y}

		for nb, base := range net.Neighbors(id) {
			if nb <= id {
				continue
			}
			snap.Edges = append(snap.Edges, EdgeState{
				Src:             id,
				Dst:             nb,
				BaseWeight:      base,
				EffectiveWeight: net.EffectiveWeight(id, nb),
			})
		}
	}

	sort.Slice(snap.Edges, func(i, j int) bool {
		if snap.Edges[i].Src != snap.Edges[j].Src {
			return snap.Edges[i].Src < snap.Edges[j].Src
		}
		return snap.Edges[i].Dst < snap.Edges[j].Dst
	})

	return snap
}
