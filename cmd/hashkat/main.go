// Command hashkat runs a kinetic Monte Carlo social-follow-graph simulation
// from a YAML configuration file and writes the resulting statistics and
// graph exports to an output folder.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/arminms/hashkat-v2/internal/config"
	"github.com/arminms/hashkat-v2/kmc/dump"
	"github.com/arminms/hashkat-v2/kmc/simulation"
)

const version = "hashkat-v2 0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("hashkat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: hashkat [options] <config_file> [<output_folder>]")
		fs.PrintDefaults()
	}

	var (
		seedFlag    string
		threads     int
		benchmark   bool
		silent      bool
		showVersion bool
	)
	fs.StringVar(&seedFlag, "seed", "random", "RNG seed (integer, or \"random\")")
	fs.StringVar(&seedFlag, "r", "random", "alias for -seed")
	fs.IntVar(&threads, "threads", 0, "number of worker threads (0 = hardware concurrency)")
	fs.IntVar(&threads, "n", 0, "alias for -threads")
	fs.BoolVar(&benchmark, "scaling-benchmark", false, "run a fixed matrix of thread counts and report elapsed time per configuration")
	fs.BoolVar(&benchmark, "b", false, "alias for -scaling-benchmark")
	fs.BoolVar(&silent, "silent", false, "suppress progress output")
	fs.BoolVar(&silent, "s", false, "alias for -silent")
	fs.BoolVar(&showVersion, "version", false, "output version information and exit")
	fs.BoolVar(&showVersion, "v", false, "alias for -version")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if showVersion {
		fmt.Fprintln(stdout, version)
		return 0
	}

	rest := fs.Args()
	if len(rest) < 1 {
		fs.Usage()
		return 2
	}
	configFile := rest[0]
	outputFolder := "."
	if len(rest) >= 2 {
		outputFolder = rest[1]
	}

	level := zerolog.InfoLevel
	if silent {
		level = zerolog.ErrorLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(level).With().Timestamp().Logger()

	cfg, err := config.Load(configFile, outputFolder)
	if err != nil {
		log.Error().Err(err).Str("config_file", configFile).Msg("failed to load configuration")
		return 1
	}

	seed, err := resolveSeed(seedFlag)
	if err != nil {
		log.Error().Err(err).Msg("invalid seed")
		return 2
	}

	maxThreads := runtime.NumCPU()
	if benchmark {
		runScalingBenchmark(cfg, seed, maxThreads, outputFolder, log, stdout, silent)
		return 0
	}

	if threads <= 0 {
		threads = maxThreads
	}
	cfg.Analysis.Threads = threads

	if !silent {
		fmt.Fprintf(stdout, "Using %d out of %d concurrent threads...\n", threads, maxThreads)
	}

	start := time.Now()
	driver := simulation.New(cfg, seed, log)
	driver.RunConcurrent(threads)
	elapsed := time.Since(start)

	if !silent {
		fmt.Fprintf(stdout, "Elapsed time: %s\n", elapsed)
		fmt.Fprintf(stdout, "Saving output -> %s\n", outputFolder)
	}

	if err := dump.WriteAll(outputFolder, driver.Network(), driver.Engine(), driver.Follow(), cfg.Output, log); err != nil {
		log.Error().Err(err).Msg("failed to write output artifacts")
		return 1
	}
	return 0
}

// resolveSeed parses -seed: an integer literal, or "random" for a
// time-derived seed.
func resolveSeed(raw string) (int64, error) {
	if raw == "" || raw == "random" {
		return rand.New(rand.NewSource(time.Now().UnixNano())).Int63(), nil //nolint:gosec // seed selection only, not crypto use
	}
	var seed int64
	if _, err := fmt.Sscanf(raw, "%d", &seed); err != nil {
		return 0, fmt.Errorf("seed %q is not an integer or \"random\"", raw)
	}
	return seed, nil
}

// runScalingBenchmark runs the same configuration once per thread count from
// 1 to maxThreads and reports elapsed wall-clock time for each, matching the
// historical driver's -b/--scaling-benchmark mode.
func runScalingBenchmark(cfg config.Config, seed int64, maxThreads int, outputFolder string, log zerolog.Logger, stdout *os.File, silent bool) {
	for n := 1; n <= maxThreads; n++ {
		if !silent {
			fmt.Fprintf(stdout, "Using %d out of %d concurrent threads...", n, maxThreads)
		}
		driver := simulation.New(cfg, seed, log)
		start := time.Now()
		driver.RunConcurrent(n)
		elapsed := time.Since(start)
		if !silent {
			fmt.Fprintf(stdout, " -> Elapsed time: %s\n", elapsed)
		}
	}
}

