// Command navhealth-log is a tool for viewing and analyzing navigation
// health monitor event logs.
//
// Log files are written by navhealth run and navhealth replay with the
// -log flag.
//
// Usage:
//
//	navhealth-log <command> [flags] <file.nlog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSON or CSV format
//	filter   Filter log file and write to new file
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events
//	navhealth-log view flight.nlog
//
//	# View only failsafe subsystem records
//	navhealth-log view -subsystem failsafe flight.nlog
//
//	# Export to CSV
//	navhealth-log export -format csv -o flight.csv flight.nlog
//
//	# Keep one boot and drop snapshots
//	navhealth-log filter -boot-id 3f2a... -exclude-snapshots -o boot.nlog flight.nlog
//
//	# Show fault and failsafe episodes
//	navhealth-log stats flight.nlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/oubliss/BLISS-ardupilot/cmd/navhealth-log/commands"
)

const usage = `navhealth-log - Navigation Health Log Analyzer

Usage:
  navhealth-log <command> [flags] <file.nlog>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSON or CSV format
  filter   Filter log file and write to new file
  stats    Show statistics about the log file

Use "navhealth-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func requirePath(fs *flag.FlagSet) string {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `navhealth-log view - View log file in human-readable format

Usage:
  navhealth-log view [flags] <file.nlog>

Flags:
`)
		fs.PrintDefaults()
	}

	category := fs.String("category", "", "Filter by category (error, state, text, mode, snapshot)")
	subsystem := fs.String("subsystem", "", "Filter by subsystem (ekfcheck, failsafe)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	var filter commands.ViewFilter

	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fail(err)
		}
		filter.Category = &c
	}

	if *subsystem != "" {
		s, err := commands.ParseSubsystemFlag(*subsystem)
		if err != nil {
			fail(err)
		}
		filter.Subsystem = &s
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `navhealth-log export - Export log file to JSON or CSV format

Usage:
  navhealth-log export [flags] <file.nlog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `navhealth-log filter - Filter log file and write to new file

Usage:
  navhealth-log filter [flags] <file.nlog>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (required)")
	bootID := fs.String("boot-id", "", "Filter by boot ID")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")
	category := fs.String("category", "", "Filter by category (error, state, text, mode, snapshot)")
	subsystem := fs.String("subsystem", "", "Filter by subsystem (ekfcheck, failsafe)")
	noSnapshots := fs.Bool("exclude-snapshots", false, "Drop per-tick snapshot events")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.FilterOptions{
		Output:           *output,
		BootID:           *bootID,
		TimeStart:        *timeStart,
		TimeEnd:          *timeEnd,
		Category:         *category,
		Subsystem:        *subsystem,
		ExcludeSnapshots: *noSnapshots,
	}

	n, err := commands.RunFilter(path, opts)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Filtered %d events to %s\n", n, opts.Output)
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `navhealth-log stats - Show statistics about the log file

Usage:
  navhealth-log stats <file.nlog>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}
