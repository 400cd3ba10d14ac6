// Package interactive provides the interactive command-line interface
// for navhealth.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chzyer/readline"

	"github.com/oubliss/BLISS-ardupilot/pkg/ekfcheck"
	"github.com/oubliss/BLISS-ardupilot/pkg/loop"
	"github.com/oubliss/BLISS-ardupilot/pkg/sim"
)

// Shell drives a simulated vehicle and its monitor from commands.
//
// The monitor is ticked either by a background scheduler (start/stop) or
// manually (step). Ticks are serialized by the shell.
type Shell struct {
	vehicle  *sim.Vehicle
	monitor  *ekfcheck.Monitor
	interval time.Duration
	out      io.Writer
	rl       *readline.Instance

	mu      sync.Mutex
	now     time.Time
	last    ekfcheck.Status
	clock   func() time.Time
	runStop context.CancelFunc
	runDone chan struct{}
	runner  *loop.Runner
}

// NewShell creates a shell writing to out. Manual steps advance a
// simulated clock by interval.
func NewShell(v *sim.Vehicle, interval time.Duration, out io.Writer) *Shell {
	return &Shell{
		vehicle:  v,
		interval: interval,
		out:      out,
		clock:    time.Now,
	}
}

// New creates a shell reading commands through readline. Its Stdout
// should be used for all other console output.
func New(v *sim.Vehicle, interval time.Duration) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "navhealth> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	s := NewShell(v, interval, rl.Stdout())
	s.rl = rl
	return s, nil
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stdout() io.Writer {
	return s.out
}

// Attach sets the monitor driven by the shell. It must be called before
// Run or Exec.
func (s *Shell) Attach(m *ekfcheck.Monitor) {
	s.monitor = m
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()
	defer s.stopScheduler()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if quit := s.Exec(line); quit {
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}
	}
}

// Exec runs one command line. It returns true when the shell should exit.
func (s *Shell) Exec(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "arm":
		s.vehicle.SetArmed(true)
		fmt.Fprintln(s.out, "Armed")

	case "disarm":
		s.vehicle.SetArmed(false)
		fmt.Fprintln(s.out, "Disarmed")

	case "origin":
		s.cmdOrigin(args)

	case "set":
		s.cmdSet(args)

	case "optflow", "flow":
		s.cmdOptflow(args)

	case "regime":
		s.cmdRegime(args)

	case "threshold":
		s.cmdThreshold(args)

	case "reject":
		s.cmdReject(args)

	case "step", "s":
		s.cmdStep(args)

	case "start":
		s.cmdStart()

	case "stop":
		s.cmdStop()

	case "status", "st":
		s.cmdStatus()

	case "messages", "msgs":
		s.cmdMessages()

	case "quit", "exit", "q":
		return true

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Navigation Health Commands:
  Vehicle:
    arm | disarm             - Arm or disarm the vehicle
    origin on|off            - Estimator origin set or not
    set <field> <value>      - Set a variance (velocity, position, height,
                               airspeed, mag, mag_x, mag_y, mag_z)
    optflow on|off|none      - Optical flow healthy, unhealthy or absent
    regime posvel|auto|exempt on|off
                             - Position-controlled, autonomous or exempt regime
    reject on|off            - Refuse failsafe mode changes

  Monitor:
    threshold <value>        - Change the variance threshold (<= 0 disables)
    step [n]                 - Run n ticks (default 1) on the simulated clock
    start | stop             - Start or stop the real-time scheduler
    status                   - Show monitor and vehicle state
    messages                 - Show recent operator messages

    help                     - Show this help
    quit                     - Exit`)
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", s)
	}
}

func (s *Shell) cmdOrigin(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: origin on|off")
		return
	}
	on, err := parseOnOff(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.vehicle.SetOrigin(on)
	fmt.Fprintf(s.out, "Origin: %t\n", on)
}

func (s *Shell) cmdSet(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.out, "Usage: set <field> <value>")
		return
	}
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Fprintf(s.out, "Error: invalid value %q\n", args[1])
		return
	}
	if err := s.vehicle.SetReading(args[0], value); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s = %g\n", args[0], value)
}

func (s *Shell) cmdOptflow(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: optflow on|off|none")
		return
	}
	if strings.ToLower(args[0]) == "none" {
		s.vehicle.SetOpticalFlow(false, false)
		fmt.Fprintln(s.out, "Optical flow: absent")
		return
	}
	on, err := parseOnOff(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.vehicle.SetOpticalFlow(true, on)
	fmt.Fprintf(s.out, "Optical flow healthy: %t\n", on)
}

func (s *Shell) cmdRegime(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.out, "Usage: regime posvel|auto|exempt on|off")
		return
	}
	on, err := parseOnOff(args[1])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	switch strings.ToLower(args[0]) {
	case "posvel", "vtol":
		s.vehicle.SetPositionControlled(on)
	case "auto", "autonomous":
		s.vehicle.SetAutonomous(on)
	case "exempt":
		s.vehicle.SetExempt(on)
	default:
		fmt.Fprintf(s.out, "Error: unknown regime %q\n", args[0])
		return
	}
	fmt.Fprintf(s.out, "Regime %s: %t (mode %s)\n", args[0], on, s.vehicle.Snapshot().Mode)
}

func (s *Shell) cmdThreshold(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: threshold <value>")
		return
	}
	t, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(s.out, "Error: invalid value %q\n", args[0])
		return
	}

	s.mu.Lock()
	s.monitor.SetThreshold(t)
	s.mu.Unlock()
	fmt.Fprintf(s.out, "Threshold = %g\n", t)
}

func (s *Shell) cmdReject(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: reject on|off")
		return
	}
	on, err := parseOnOff(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if on {
		s.vehicle.RejectModes(fmt.Errorf("rejected from console"))
	} else {
		s.vehicle.RejectModes(nil)
	}
	fmt.Fprintf(s.out, "Reject modes: %t\n", on)
}

func (s *Shell) cmdStep(args []string) {
	if s.schedulerRunning() {
		fmt.Fprintln(s.out, "Scheduler running, stop it first")
		return
	}

	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			fmt.Fprintf(s.out, "Error: invalid tick count %q\n", args[0])
			return
		}
		n = v
	}

	s.mu.Lock()
	if s.now.IsZero() {
		s.now = s.clock()
	}
	for i := 0; i < n; i++ {
		s.now = s.now.Add(s.interval)
		s.last = s.monitor.Tick(s.now)
	}
	st := s.last
	s.mu.Unlock()

	fmt.Fprintf(s.out, "Tick %d: %s\n", st.Tick, describe(st))
}

func (s *Shell) tick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	s.last = s.monitor.Tick(now)
}

func (s *Shell) schedulerRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runStop != nil
}

func (s *Shell) cmdStart() {
	s.mu.Lock()
	if s.runStop != nil {
		s.mu.Unlock()
		fmt.Fprintln(s.out, "Scheduler already running")
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.runStop = cancel
	s.runDone = make(chan struct{})
	s.runner = &loop.Runner{Interval: s.interval, Tick: s.tick}
	runner, done := s.runner, s.runDone
	s.mu.Unlock()

	go func() {
		defer close(done)
		_ = runner.Run(ctx)
	}()
	fmt.Fprintf(s.out, "Scheduler started (%s)\n", s.interval)
}

func (s *Shell) cmdStop() {
	if !s.stopScheduler() {
		fmt.Fprintln(s.out, "Scheduler not running")
		return
	}
	fmt.Fprintf(s.out, "Scheduler stopped after %d ticks (%d overruns)\n", s.runner.Ticks(), s.runner.Overruns())
}

func (s *Shell) stopScheduler() bool {
	s.mu.Lock()
	stop, done := s.runStop, s.runDone
	s.runStop = nil
	s.mu.Unlock()

	if stop == nil {
		return false
	}
	stop()
	<-done
	return true
}

func (s *Shell) cmdStatus() {
	s.mu.Lock()
	st := s.last
	state := s.monitor.State()
	cfg := s.monitor.Config()
	s.mu.Unlock()
	v := s.vehicle.Snapshot()

	fmt.Fprintln(s.out, "Monitor:")
	fmt.Fprintf(s.out, "  Tick:        %d (%s)\n", st.Tick, describe(st))
	fmt.Fprintf(s.out, "  State:       %s\n", state)
	fmt.Fprintf(s.out, "  Threshold:   %g (max %d)\n", cfg.Threshold, cfg.IterationsMax)
	if !state.LastWarnTime.IsZero() {
		fmt.Fprintf(s.out, "  Last warn:   %s\n", state.LastWarnTime.Format("15:04:05.000"))
	}
	fmt.Fprintln(s.out, "Vehicle:")
	r := v.Readings
	fmt.Fprintf(s.out, "  Variances:   vel=%g pos=%g hgt=%g mag=[%g %g %g] tas=%g\n",
		r.Velocity, r.Position, r.Height, r.Mag[0], r.Mag[1], r.Mag[2], r.Airspeed)
	fmt.Fprintf(s.out, "  Origin:      %t  Armed: %t  Exempt: %t\n", v.Origin, v.Armed, v.Exempt)
	fmt.Fprintf(s.out, "  Mode:        %s (posvel=%t auto=%t)\n", v.Mode, v.PositionControlled, v.Autonomous)
	flow := "absent"
	if v.FlowPresent {
		flow = fmt.Sprintf("healthy=%t", v.FlowHealthy)
	}
	fmt.Fprintf(s.out, "  Optical flow: %s\n", flow)
	fmt.Fprintf(s.out, "  Estimate bad: %t\n", v.EstimateBad)
	fmt.Fprintf(s.out, "  Requests:    yaw_reset=%d lane_switch=%d modes=%v\n", v.YawResets, v.AlternateInstances, v.ModeRequests)
	fmt.Fprintf(s.out, "  Warnings:    %d\n", v.Warnings)
}

func (s *Shell) cmdMessages() {
	msgs := s.vehicle.Messages()
	if len(msgs) == 0 {
		fmt.Fprintln(s.out, "No messages")
		return
	}
	for _, m := range msgs {
		fmt.Fprintf(s.out, "  %s %-8s %s\n", m.Time.Format("15:04:05.000"), m.Severity, m.Text)
	}
}

func describe(st ekfcheck.Status) string {
	switch {
	case st.Tick == 0:
		return "not started"
	case st.Dormant:
		return "dormant, no origin"
	case st.Inhibited:
		return "inhibited"
	default:
		return fmt.Sprintf("score=%d unhealthy=%t %s", st.Score.Total, st.Score.Unhealthy, st.State)
	}
}
