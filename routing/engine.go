package routing

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"routesim/topology"
)

// Engine binds a network to the currently selected path calculator. The
// selection is a single mutable mode flag: switching takes effect on the
// next FindPath call and invalidates nothing, since no search state is
// cached between queries.
type Engine struct {
	net *topology.Network

	mu            sync.RWMutex
	algorithmName string
	calculator    PathCalculator
}

// NewEngine returns an engine for net running the default algorithm.
func NewEngine(net *topology.Network) *Engine {
	calc, err := GetGlobal(DefaultAlgorithm)
	if err != nil {
		// The built-in calculators register at package load; a missing
		// default means the registry was tampered with.
		log.Fatalf("default algorithm %q not registered: %v", DefaultAlgorithm, err)
	}
	return &Engine{
		net:           net,
		algorithmName: DefaultAlgorithm,
		calculator:    calc,
	}
}

// SetAlgorithm selects the calculator for subsequent queries. Unrecognized
// names are not an error: they fall back to the default, matching the
// permissive contract callers rely on.
func (e *Engine) SetAlgorithm(name string) {
	calc, err := GetGlobal(name)
	if err != nil {
		log.Warnf("unknown algorithm %q, falling back to %q", name, DefaultAlgorithm)
		name = DefaultAlgorithm
		calc, err = GetGlobal(name)
		if err != nil {
			log.Fatalf("default algorithm %q not registered: %v", DefaultAlgorithm, err)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.algorithmName = name
	e.calculator = calc
}

// Algorithm returns the currently selected algorithm name.
func (e *Engine) Algorithm() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.algorithmName
}

// FindPath computes a minimum-effective-weight path on the current
// congestion state. The returned Route always carries the wall-clock
// duration of the query, even when no path exists.
func (e *Engine) FindPath(start, end int) (Route, bool) {
	e.mu.RLock()
	name := e.algorithmName
	calc := e.calculator
	e.mu.RUnlock()

	began := time.Now()
	nodes, cost, ok := calc.ComputePath(e.net, start, end)
	elapsed := float64(time.Since(began)) / float64(time.Millisecond)

	route := Route{
		Nodes:         nodes,
		Cost:          cost,
		ElapsedMillis: elapsed,
		Algorithm:     name,
	}
	if !ok {
		log.Debugf("no path %d->%d under %s (%.3fms)", start, end, name, elapsed)
		return Route{ElapsedMillis: elapsed, Algorithm: name}, false
	}
	return route, true
}
