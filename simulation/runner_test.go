package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"routesim/congestion"
	"routesim/routing"
	"routesim/topology"
)

func newTestRunner(t *testing.T, sampler congestion.Sampler) *Runner {
	t.Helper()
	net, err := topology.NewNetwork(6)
	require.NoError(t, err)

	runner, err := NewRunner(net, routing.NewEngine(net), sampler, 4)
	require.NoError(t, err)
	t.Cleanup(runner.Close)
	return runner
}

func TestStepProducesRouteAndSnapshot(t *testing.T) {
	runner := newTestRunner(t, congestion.NewUniformSampler(42))

	result := runner.Step(Flow{Source: 0, Destination: 5})
	require.Len(t, result.Flows, 1)

	fr := result.Flows[0]
	require.True(t, fr.Found)
	assert.Equal(t, 0, fr.Route.Nodes[0])
	assert.Equal(t, 5, fr.Route.Nodes[len(fr.Route.Nodes)-1])

	require.NotNil(t, result.State)
	assert.Len(t, result.State.Routers, 6)
	assert.Len(t, result.State.Edges, 9)
	assert.Equal(t, routing.AlgorithmDijkstra, result.State.Algorithm)
}

func TestStepMultiSharesCongestionState(t *testing.T) {
	runner := newTestRunner(t, congestion.FixedSampler(1.0))

	flows := []Flow{
		{Source: 0, Destination: 5},
		{Source: 5, Destination: 0},
		{Source: 1, Destination: 4},
		{Source: 2, Destination: 2},
		{Source: 0, Destination: 99},
	}
	result := runner.StepMulti(flows)
	require.Len(t, result.Flows, len(flows))

	byFlow := make(map[Flow]FlowResult, len(result.Flows))
	for _, fr := range result.Flows {
		byFlow[fr.Flow] = fr
	}

	// With fixed multipliers the forward and reverse queries see identical
	// weights, so their costs agree.
	forward := byFlow[Flow{Source: 0, Destination: 5}]
	reverse := byFlow[Flow{Source: 5, Destination: 0}]
	require.True(t, forward.Found)
	require.True(t, reverse.Found)
	assert.InDelta(t, forward.Route.Cost, reverse.Route.Cost, 1e-12)

	trivial := byFlow[Flow{Source: 2, Destination: 2}]
	require.True(t, trivial.Found)
	assert.Equal(t, []int{2}, trivial.Route.Nodes)

	missing := byFlow[Flow{Source: 0, Destination: 99}]
	assert.False(t, missing.Found)

	// Snapshot congestion matches the tick's fixed draw.
	for _, state := range result.State.Routers {
		assert.Equal(t, 1.0, state.Congestion)
	}
}

func TestStepResamplesEachTick(t *testing.T) {
	runner := newTestRunner(t, congestion.NewUniformSampler(7))
	flow := Flow{Source: 0, Destination: 5}

	first := runner.Step(flow)
	second := runner.Step(flow)

	changed := false
	for id, state := range first.State.Routers {
		if second.State.Routers[id].Congestion != state.Congestion {
			changed = true
		}
		assert.GreaterOrEqual(t, state.Congestion, congestion.MinMultiplier)
		assert.LessOrEqual(t, state.Congestion, congestion.MaxMultiplier)
	}
	assert.True(t, changed, "each tick must resample congestion")
}

func TestRunnerSetAlgorithm(t *testing.T) {
	runner := newTestRunner(t, congestion.FixedSampler(1.0))

	runner.SetAlgorithm(routing.AlgorithmAStar)
	result := runner.Step(Flow{Source: 0, Destination: 5})
	assert.Equal(t, routing.AlgorithmAStar, result.State.Algorithm)

	runner.SetAlgorithm("nonsense")
	result = runner.Step(Flow{Source: 0, Destination: 5})
	assert.Equal(t, routing.AlgorithmDijkstra, result.State.Algorithm)
}
