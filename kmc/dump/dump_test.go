package dump

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arminms/hashkat-v2/internal/config"
	"github.com/arminms/hashkat-v2/internal/random"
	"github.com/arminms/hashkat-v2/kmc/action"
	"github.com/arminms/hashkat-v2/kmc/engine"
	"github.com/arminms/hashkat-v2/kmc/network"
)

func buildRun(t *testing.T) (*network.Network, *engine.Engine, *action.Follow) {
	t.Helper()
	net := network.New(8)
	types := []config.AgentType{config.DefaultAgentType("default")}
	rng := random.New(5)

	addAgent := action.NewAddAgent(net, config.DefaultAddRate(), types, rng)
	analysis := config.SmallAnalysis()
	follow := action.NewFollow(net, 8, analysis, config.DefaultAddRate(), config.DefaultFollowRanks(), types, rng)

	eng := engine.New([]action.Action{addAgent, follow}, rng, false)
	addAgent.PostInit(8, 0)

	for i := 0; i < 40; i++ {
		a, ok := eng.NextAction()
		require.True(t, ok)
		a.Invoke(eng.Time())
	}
	return net, eng, follow
}

func TestWriteAllProducesEveryEnabledArtifact(t *testing.T) {
	net, eng, follow := buildRun(t)
	dir := t.TempDir()
	output := config.DefaultOutput(dir)

	err := WriteAll(dir, net, eng, follow, output, zerolog.Nop())
	require.NoError(t, err)

	for _, name := range []string{
		"out.dat", "main_stats.dat", "Categories_Distro.dat",
		"dd_by_follow_model.dat", "default_info.dat",
		"network.dat", "network.gexf", "network.graphml",
	} {
		_, statErr := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, statErr, "expected %s to exist", name)
	}
}

func TestWriteAllSkipsDisabledArtifacts(t *testing.T) {
	net, eng, follow := buildRun(t)
	dir := t.TempDir()
	output := config.DefaultOutput(dir)
	output.CategoriesDistro = false

	err := WriteAll(dir, net, eng, follow, output, zerolog.Nop())
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "Categories_Distro.dat"))
	assert.True(t, os.IsNotExist(statErr))
}
