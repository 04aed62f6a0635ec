package routing

import (
	"container/heap"
	"math"

	"routesim/topology"
)

// heuristicFunc estimates remaining cost from a router to the target. A nil
// heuristic degenerates the search to uniform-cost order.
type heuristicFunc func(id int) float64

// shortestPath is the relaxation core shared by both calculators: tentative
// distances start at +Inf (0 at start), a min-heap frontier orders routers
// by tentative distance plus heuristic, and a settled set drops stale
// lazy-decrease-key entries. Popping the target terminates the search; with
// nonnegative weights and a zero heuristic its distance is final at that
// point. Ties in priority resolve however the heap happens to order them;
// callers must not depend on a specific tie-break.
//
// Effective weights are re-read from net at every relaxation, never cached,
// so the search always sees the congestion state it started with as long as
// the caller serializes resampling against queries.
func shortestPath(net *topology.Network, start, end int, h heuristicFunc) ([]int, float64, bool) {
	if !net.HasRouter(start) || !net.HasRouter(end) {
		return nil, 0, false
	}

	dist := make(map[int]float64)
	for _, id := range net.RouterIDs() {
		dist[id] = math.Inf(1)
	}
	dist[start] = 0

	prev := make(map[int]int)
	settled := make(map[int]bool)

	pq := make(frontier, 0, len(dist))
	heap.Init(&pq)
	heap.Push(&pq, &frontierItem{id: start, priority: priorityFor(0, start, h)})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*frontierItem)
		u := item.id

		if settled[u] {
			continue
		}
		if u == end {
			break
		}
		settled[u] = true

		for v := range net.Neighbors(u) {
			if settled[v] {
				continue
			}
			w := net.EffectiveWeight(u, v)
			if math.IsInf(w, 1) {
				continue
			}
			candidate := dist[u] + w
			if candidate >= dist[v] {
				continue
			}
			dist[v] = candidate
			prev[v] = u
			heap.Push(&pq, &frontierItem{id: v, priority: priorityFor(candidate, v, h)})
		}
	}

	if math.IsInf(dist[end], 1) {
		return nil, 0, false
	}
	return reconstruct(prev, start, end), dist[end], true
}

func priorityFor(dist float64, id int, h heuristicFunc) float64 {
	if h == nil {
		return dist
	}
	return dist + h(id)
}

// reconstruct walks predecessor links from end back to start and reverses.
// When start == end this yields the trivial single-element path.
func reconstruct(prev map[int]int, start, end int) []int {
	path := []int{end}
	for cur := end; cur != start; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// frontierItem is one heap entry. Stale entries (superseded by a better
// distance) stay in the heap and are skipped via the settled set.
type frontierItem struct {
	id       int
	priority float64
}

// frontier is a min-heap of *frontierItem keyed on priority.
type frontier []*frontierItem

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].priority < f[j].priority }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
