package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oubliss/BLISS-ardupilot/pkg/ekfcheck"
	"github.com/oubliss/BLISS-ardupilot/pkg/loop"
	"github.com/oubliss/BLISS-ardupilot/pkg/scenario"
	"github.com/oubliss/BLISS-ardupilot/pkg/sim"
)

func runMonitor(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `navhealth run - Run the monitor at its configured rate

Usage:
  navhealth run [flags]

Flags:
`)
		fs.PrintDefaults()
	}

	var common commonFlags
	common.register(fs)
	duration := fs.Duration("duration", 0, "Stop after this long (default: until interrupted)")
	scenarioFile := fs.String("scenario", "", "Scenario file scripting the simulated vehicle")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	cfg := common.load(fs)

	v := sim.NewVehicle()
	v.SetOrigin(true)
	v.SetArmed(true)

	var player *scenario.Player
	var sc *scenario.Scenario
	if *scenarioFile != "" {
		loaded, err := scenario.Load(*scenarioFile)
		if err != nil {
			log.Fatalf("Failed to load scenario: %v", err)
		}
		sc = loaded
		v = sc.NewVehicle()
		mc := sc.MonitorConfig(cfg.Monitor())
		cfg.EKFCheck.Threshold = mc.Threshold
		cfg.EKFCheck.IterationsMax = int(mc.IterationsMax)
		cfg.EKFCheck.WarningInterval = mc.WarningInterval
	}

	st, err := newStack(cfg, v, os.Stderr)
	if err != nil {
		log.Fatalf("Failed to create monitor: %v", err)
	}
	defer st.Close()
	if sc != nil {
		player = scenario.NewPlayer(sc, v, st.monitor)
	}

	log.Println("Navigation Health Monitor")
	log.Println("=========================")
	log.Printf("Boot ID: %s", st.bootID)
	log.Printf("Threshold: %g", cfg.EKFCheck.Threshold)
	log.Printf("Tick rate: %d Hz", cfg.EKFCheck.TickRateHz)
	if cfg.Log.File != "" {
		log.Printf("Event log: %s", cfg.Log.File)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	var last ekfcheck.Status
	runner := &loop.Runner{
		Interval: cfg.TickInterval(),
		Tick: func(now time.Time) {
			if player != nil {
				s, err := player.Tick(now)
				if err != nil {
					st.logger.Error("scenario", "error", err)
				}
				last = s
				return
			}
			last = st.monitor.Tick(now)
		},
		OnOverrun: func(took time.Duration) {
			st.logger.Warn("tick overrun", "took", took, "interval", cfg.TickInterval())
		},
	}

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		log.Fatalf("Scheduler stopped: %v", err)
	}

	log.Printf("Stopped after %d ticks (%d overruns)", runner.Ticks(), runner.Overruns())
	log.Printf("Final state: %s", last.State)
	if player != nil {
		for _, f := range player.Failures() {
			st.logger.Warn("expectation failed", slog.String("detail", f.String()))
		}
	}
}
