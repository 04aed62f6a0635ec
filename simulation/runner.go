// Package simulation drives the resample -> route -> snapshot tick loop and
// is the serialization point for a network instance: every tick runs under
// one exclusive lock so path queries never observe congestion mid-update.
package simulation

import (
	"sync"

	"github.com/panjf2000/ants/v2"
	log "github.com/sirupsen/logrus"

	"routesim/congestion"
	"routesim/routing"
	"routesim/snapshot"
	"routesim/topology"
)

// DefaultPoolSize caps concurrent path calculations per runner.
const DefaultPoolSize = 16

// Flow is one start/destination demand pair.
type Flow struct {
	Source      int `toml:"source" json:"source"`
	Destination int `toml:"destination" json:"destination"`
}

// FlowResult is the outcome of one flow's path query within a tick.
type FlowResult struct {
	Flow  Flow          `json:"flow"`
	Route routing.Route `json:"route"`
	Found bool          `json:"found"`
}

// StepResult is everything one tick produced.
type StepResult struct {
	Flows []FlowResult       `json:"flows"`
	State *snapshot.Snapshot `json:"state"`
}

// Runner owns a network, its engine and its congestion sampler, and runs
// simulation ticks against them.
type Runner struct {
	mu      sync.Mutex
	net     *topology.Network
	engine  *routing.Engine
	sampler congestion.Sampler
	pool    *ants.Pool
}

// NewRunner wires a runner around net. poolSize bounds concurrent path
// calculations within a tick; values < 1 use DefaultPoolSize.
func NewRunner(net *topology.Network, engine *routing.Engine, sampler congestion.Sampler, poolSize int) (*Runner, error) {
	if poolSize < 1 {
		poolSize = DefaultPoolSize
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		log.Errorf("failed to create path calculation pool: %v", err)
		return nil, err
	}
	return &Runner{net: net, engine: engine, sampler: sampler, pool: pool}, nil
}

// Close releases the worker pool.
func (r *Runner) Close() {
	r.pool.Release()
}

// Step runs one tick for a single flow: resample congestion, compute the
// path, capture the state. Matches the one-flow simulation loop consumers
// drive repeatedly.
func (r *Runner) Step(flow Flow) StepResult {
	return r.StepMulti([]Flow{flow})
}

// StepMulti runs one tick for several flows. Congestion is resampled once;
// all flows then see the same congestion state. Path queries are read-only,
// so they fan out over the worker pool; the tick lock keeps any concurrent
// resample from interleaving.
func (r *Runner) StepMulti(flows []Flow) StepResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	congestion.Resample(r.net, r.sampler)

	results := make([]FlowResult, len(flows))
	var wg sync.WaitGroup
	for i, flow := range flows {
		i, flow := i, flow
		wg.Add(1)
		task := func() {
			defer wg.Done()
			route, found := r.engine.FindPath(flow.Source, flow.Destination)
			results[i] = FlowResult{Flow: flow, Route: route, Found: found}
		}
		if err := r.pool.Submit(task); err != nil {
			// Pool saturated or released: degrade to inline execution
			// rather than dropping the flow.
			log.Warnf("pool submit failed, running inline: %v", err)
			task()
		}
	}
	wg.Wait()

	return StepResult{
		Flows: results,
		State: snapshot.Capture(r.net, r.engine.Algorithm()),
	}
}

// SetAlgorithm forwards to the engine under the tick lock so in-flight
// ticks finish on the algorithm they started with.
func (r *Runner) SetAlgorithm(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engine.SetAlgorithm(name)
}
