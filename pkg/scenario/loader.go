package scenario

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oubliss/BLISS-ardupilot/pkg/ekfcheck"
)

// Scenario errors.
var (
	ErrNoTicks        = errors.New("scenario must have at least one step")
	ErrNegativeTime   = errors.New("step time must not be negative")
	ErrTimeBackwards  = errors.New("step time is before the previous tick")
	ErrNegativeRepeat = errors.New("repeat must not be negative")
	ErrIterations     = errors.New("iterations_max out of range")
)

// LoadError provides details about a scenario loading error.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = e.File + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Parse parses a scenario from YAML bytes.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	if err := sc.Validate(); err != nil {
		return nil, &LoadError{
			Message: "invalid scenario",
			Cause:   err,
		}
	}

	return &sc, nil
}

// Validate checks the step list.
func (sc *Scenario) Validate() error {
	if len(sc.Steps) == 0 {
		return ErrNoTicks
	}
	if it := sc.Config.IterationsMax; it != nil && (*it < ekfcheck.MinIterationsMax || *it > math.MaxUint8) {
		return fmt.Errorf("config: %w: %d", ErrIterations, *it)
	}
	for i, s := range sc.Steps {
		if s.Repeat < 0 {
			return fmt.Errorf("step %d: %w", i+1, ErrNegativeRepeat)
		}
		if s.At != nil && *s.At < 0 {
			return fmt.Errorf("step %d: %w", i+1, ErrNegativeTime)
		}
	}
	_, err := sc.schedule(DefaultTickInterval)
	return err
}

// Load loads a scenario from a file. A scenario without a name is named
// after the file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	sc, err := Parse(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
			return nil, le
		}
		return nil, err
	}

	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// LoadDirectory loads all scenarios from a directory.
// Only files with .yaml or .yml extensions are loaded.
func LoadDirectory(dir string) ([]*Scenario, error) {
	var scenarios []*Scenario

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{
			File:    dir,
			Message: "failed to read directory",
			Cause:   err,
		}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		sc, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}

		scenarios = append(scenarios, sc)
	}

	return scenarios, nil
}
