package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/oubliss/BLISS-ardupilot/pkg/config"
	"github.com/oubliss/BLISS-ardupilot/pkg/log"
	"github.com/oubliss/BLISS-ardupilot/pkg/scenario"
)

func runReplay(args []string) int {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `navhealth replay - Replay scenario files and report PASS/FAIL

Usage:
  navhealth replay [flags] <scenario.yaml|dir>...

Flags:
`)
		fs.PrintDefaults()
	}

	configFile := fs.String("config", "", "Configuration file with base monitor settings")
	logFile := fs.String("log", "", "Write all replay events to this .nlog file")
	verbose := fs.Bool("v", false, "Print final state of every scenario")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: scenario file or directory required")
		fs.Usage()
		return 1
	}

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	scenarios, err := loadScenarios(fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var logger log.Logger
	if *logFile != "" {
		f, err := log.NewFileLogger(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
		logger = f
	}

	base := cfg.Monitor()
	failed, err := replayAll(os.Stdout, scenarios, scenario.Options{Base: &base, Logger: logger}, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func loadScenarios(paths []string) ([]*scenario.Scenario, error) {
	var out []*scenario.Scenario
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			scs, err := scenario.LoadDirectory(p)
			if err != nil {
				return nil, err
			}
			out = append(out, scs...)
			continue
		}
		sc, err := scenario.Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

// replayAll runs every scenario with its own boot id and prints one line
// per scenario. It returns the number of failed scenarios.
func replayAll(w io.Writer, scenarios []*scenario.Scenario, opts scenario.Options, verbose bool) (int, error) {
	failed := 0
	for _, sc := range scenarios {
		opts.BootID = log.NewBootID()
		res, err := scenario.Run(sc, opts)
		if err != nil {
			return failed, err
		}

		if res.Passed() {
			fmt.Fprintf(w, "PASS  %-40s %4d ticks  %s\n", res.Name, res.Ticks, res.Duration)
		} else {
			failed++
			fmt.Fprintf(w, "FAIL  %-40s %4d ticks  %s\n", res.Name, res.Ticks, res.Duration)
			for _, f := range res.Failures {
				fmt.Fprintf(w, "      %s\n", f)
			}
		}
		if verbose {
			fmt.Fprintf(w, "      final: %s mode=%s warnings=%d\n", res.Final, res.Vehicle.Mode, res.Vehicle.Warnings)
		}
	}

	fmt.Fprintf(w, "\n%d scenarios, %d passed, %d failed\n", len(scenarios), len(scenarios)-failed, failed)
	return failed, nil
}
