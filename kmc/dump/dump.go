// Package dump writes the simulation's output artifacts: a human-readable
// run summary, per-type and per-model statistics, bin populations, degree
// distributions, and directed-graph exports, matching the on-disk layout
// the original driver produced.
package dump

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arminms/hashkat-v2/internal/config"
	"github.com/arminms/hashkat-v2/kmc/action"
	"github.com/arminms/hashkat-v2/kmc/engine"
	"github.com/arminms/hashkat-v2/kmc/network"
)

// WriteAll writes every artifact enabled in output to folder, creating it if
// necessary. Each artifact's I/O error is logged and does not prevent the
// remaining artifacts from being attempted.
func WriteAll(folder string, net *network.Network, eng *engine.Engine, follow *action.Follow, output config.Output, log zerolog.Logger) error {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("%w: creating output folder %q: %v", ErrDumpIO, folder, err)
	}

	writers := []struct {
		enabled bool
		name    string
		write   func() error
	}{
		{true, "out.dat", func() error { return writeSummary(folder, net, eng) }},
		{output.MainStatistics, "main_stats.dat", func() error { return writeMainStats(folder, net, follow) }},
		{output.CategoriesDistro, "Categories_Distro.dat", func() error { return writeCategoriesDistro(folder, follow) }},
		{output.DegreeDistributionByFollowModel, "dd_by_follow_model.dat", func() error { return writeDegreeDistributionByFollowModel(folder, net, follow) }},
		{output.AgentStats, "<type>_info.dat", func() error { return writeAgentTypeInfo(folder, net, follow) }},
		{output.DegreeDistributions, "degree_distribution_month_NNN.dat", func() error { return writeMonthlyDegreeDistributions(folder, net, eng) }},
		{output.Visualize, "network.{dat,gexf,graphml}", func() error { return writeGraphExports(folder, net) }},
	}

	for _, w := range writers {
		if !w.enabled {
			continue
		}
		if err := w.write(); err != nil {
			log.Error().Err(err).Str("artifact", w.name).Msg("dump artifact failed")
		}
	}
	return nil
}

func openTrunc(folder, name string) (*os.File, error) {
	return os.OpenFile(filepath.Join(folder, name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
}

// writeSummary writes out.dat: a condensed human-readable run report.
func writeSummary(folder string, net *network.Network, eng *engine.Engine) error {
	f, err := openTrunc(folder, "out.dat")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDumpIO, err)
	}
	defer f.Close()

	fmt.Fprintf(f, "Simulated time: %.4f minutes\n", eng.Time())
	fmt.Fprintf(f, "Steps: %d\tEvents: %d\n", eng.Steps(), eng.Events())
	fmt.Fprintf(f, "Agents: %d / %d\n\n", net.Size(), net.MaxSize())
	for _, a := range eng.Actions() {
		fmt.Fprintf(f, "%s: rate=%d weight=%.6f\n", a.Name(), a.Rate(), a.Weight())
	}
	return nil
}
