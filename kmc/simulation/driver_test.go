package simulation

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arminms/hashkat-v2/internal/config"
)

func testConfig() config.Config {
	return config.Small("testdata")
}

func TestDriverRunStopsAtSimulatedTimeBound(t *testing.T) {
	cfg := testConfig()
	cfg.Analysis.MaxTime = 5
	cfg.Analysis.MaxRealTime = 10
	d := New(cfg, 1, zerolog.Nop())

	ticks := d.Run()

	assert.Greater(t, ticks, int64(0))
	assert.GreaterOrEqual(t, d.Engine().Time(), cfg.Analysis.MaxTime)
}

func TestDriverSameSeedProducesSameNetworkSize(t *testing.T) {
	cfg := testConfig()
	cfg.Analysis.MaxTime = 20
	cfg.Analysis.MaxRealTime = 10

	d1 := New(cfg, 99, zerolog.Nop())
	d1.Run()

	d2 := New(cfg, 99, zerolog.Nop())
	d2.Run()

	assert.Equal(t, d1.Network().Size(), d2.Network().Size())
	assert.Equal(t, d1.Engine().Events(), d2.Engine().Events())
}

func TestDriverResetReturnsToInitialPopulation(t *testing.T) {
	cfg := testConfig()
	cfg.Analysis.MaxTime = 5
	cfg.Analysis.MaxRealTime = 10
	d := New(cfg, 2, zerolog.Nop())
	d.Run()
	require.Greater(t, d.Network().Size(), 0)

	d.Reset()

	assert.Equal(t, cfg.Analysis.InitialAgents, d.Network().Size())
	assert.Equal(t, 0.0, d.Engine().Time())
}

func TestDriverRunConcurrentProducesNoSelfLoops(t *testing.T) {
	cfg := testConfig()
	cfg.Analysis.MaxAgents = 20
	cfg.Analysis.InitialAgents = 20
	cfg.Analysis.MaxTime = 10
	cfg.Analysis.MaxRealTime = 10
	cfg.Analysis.Threads = 4
	d := New(cfg, 3, zerolog.Nop())

	ticks := d.RunConcurrent(4)

	assert.Greater(t, ticks, int64(0))
	net := d.Network()
	for id := 0; id < net.Size(); id++ {
		assert.False(t, net.HaveConnection(id, id))
	}
}
