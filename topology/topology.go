// Package topology models the router network: which routers exist, how they
// are wired, and what a hop costs right now. The link set is fixed at
// construction; only congestion multipliers mutate afterwards, so every
// effective-weight query recomputes from the current multipliers instead of
// caching.
package topology

import (
	"fmt"
	"math"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"
)

const initialCongestion = 1.0

type router struct {
	coord      Coordinate
	congestion float64
	links      map[int]float64 // neighbor id -> base weight, kept symmetric
}

// RouterInfo is a read-only view of one router's mutable and fixed state.
type RouterInfo struct {
	ID         int
	X          float64
	Y          float64
	Congestion float64
}

// Network holds the routers and their links. All mutation after construction
// goes through AddLink and SetCongestion; both keep the symmetry invariant.
type Network struct {
	mu      sync.RWMutex
	routers map[int]*router
}

// NewNetworkFromConfig builds a Network from an explicit configuration.
// Every link endpoint must have a coordinate entry and self-loops are
// rejected; both are configuration errors, not recoverable conditions.
func NewNetworkFromConfig(cfg Config) (*Network, error) {
	n := &Network{routers: make(map[int]*router, len(cfg.Coordinates))}

	for id, coord := range cfg.Coordinates {
		if id < 0 {
			return nil, fmt.Errorf("%w: id %d", ErrMissingCoordinate, id)
		}
		n.routers[id] = &router{
			coord:      coord,
			congestion: initialCongestion,
			links:      make(map[int]float64),
		}
	}

	for _, l := range cfg.Links {
		if l.A == l.B {
			return nil, fmt.Errorf("%w: %d-%d", ErrSelfLoop, l.A, l.B)
		}
		if _, ok := n.routers[l.A]; !ok {
			return nil, fmt.Errorf("%w: %d in link %d-%d", ErrUnknownLinkEndpoint, l.A, l.A, l.B)
		}
		if _, ok := n.routers[l.B]; !ok {
			return nil, fmt.Errorf("%w: %d in link %d-%d", ErrUnknownLinkEndpoint, l.B, l.A, l.B)
		}
		n.routers[l.A].links[l.B] = l.Weight
		n.routers[l.B].links[l.A] = l.Weight
	}

	log.Infof("network constructed: %d routers, %d links", len(n.routers), n.LinkCount())
	return n, nil
}

// NewNetwork builds a Network with n routers wired per the built-in table.
func NewNetwork(n int) (*Network, error) {
	cfg, err := DefaultConfig(n)
	if err != nil {
		return nil, err
	}
	return NewNetworkFromConfig(cfg)
}

// AddLink sets base weight w on both directions a-b. If either id is
// unknown the call is a silent no-op; callers must not assume the link was
// added. Re-adding an existing pair overwrites the prior weight for both
// directions.
func (n *Network) AddLink(a, b int, w float64) {
	if a == b {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	ra, okA := n.routers[a]
	rb, okB := n.routers[b]
	if !okA || !okB {
		log.Debugf("AddLink ignored, unknown endpoint in %d-%d", a, b)
		return
	}
	ra.links[b] = w
	rb.links[a] = w
}

// EffectiveWeight returns base(src,dst) scaled by both endpoints' current
// congestion multipliers, or +Inf if either id is unknown or no direct link
// exists. The value reflects the congestion at call time; it must not be
// memoized across a resample.
func (n *Network) EffectiveWeight(src, dst int) float64 {
	n.mu.RLock()
	defer n.mu.RUnlock()

	rs, ok := n.routers[src]
	if !ok {
		return math.Inf(1)
	}
	rd, ok := n.routers[dst]
	if !ok {
		return math.Inf(1)
	}
	base, ok := rs.links[dst]
	if !ok {
		return math.Inf(1)
	}
	// Multiplying the congestion product first keeps the two query
	// directions bitwise identical.
	return base * (rs.congestion * rd.congestion)
}

// HasRouter reports whether id exists in the network.
func (n *Network) HasRouter(id int) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.routers[id]
	return ok
}

// Router returns a copy of one router's state.
func (n *Network) Router(id int) (RouterInfo, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	r, ok := n.routers[id]
	if !ok {
		return RouterInfo{}, false
	}
	return RouterInfo{ID: id, X: r.coord.X, Y: r.coord.Y, Congestion: r.congestion}, true
}

// RouterIDs returns all router ids in ascending order.
func (n *Network) RouterIDs() []int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	ids := make([]int, 0, len(n.routers))
	for id := range n.routers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Neighbors returns a copy of id's link map (neighbor id -> base weight).
// Unknown ids yield an empty map.
func (n *Network) Neighbors(id int) map[int]float64 {
	n.mu.RLock()
	defer n.mu.RUnlock()

	result := make(map[int]float64)
	if r, ok := n.routers[id]; ok {
		for nb, w := range r.links {
			result[nb] = w
		}
	}
	return result
}

// SetCongestion overwrites id's congestion multiplier. Unknown ids are
// ignored. All resampling funnels through here.
func (n *Network) SetCongestion(id int, c float64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if r, ok := n.routers[id]; ok {
		r.congestion = c
	}
}

// RouterCount returns the number of routers.
func (n *Network) RouterCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.routers)
}

// LinkCount returns the number of undirected links.
func (n *Network) LinkCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	count := 0
	for _, r := range n.routers {
		count += len(r.links)
	}
	return count / 2
}
