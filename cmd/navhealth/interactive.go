package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/oubliss/BLISS-ardupilot/cmd/navhealth/interactive"
	"github.com/oubliss/BLISS-ardupilot/pkg/sim"
)

func runInteractive(args []string) {
	fs := flag.NewFlagSet("interactive", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: navhealth interactive [flags]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Drive a simulated vehicle and its monitor from a command prompt.")
		fmt.Fprintln(os.Stderr)
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	cfg := common.load(fs)

	v := sim.NewVehicle()
	sh, err := interactive.New(v, cfg.TickInterval())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s, err := newStack(cfg, v, sh.Stdout())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()
	sh.Attach(s.monitor)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Fprintf(sh.Stdout(), "navhealth boot %s, threshold %g, %d ticks to declare\n",
		s.bootID, cfg.EKFCheck.Threshold, cfg.EKFCheck.IterationsMax)
	sh.Run(ctx, cancel)
}
