// Package scenario replays scripted flights against the navigation health
// monitor.
//
// A scenario is a YAML document describing the initial vehicle, optional
// monitor configuration overrides and a list of steps. Each step changes
// the simulated vehicle, runs one or more ticks and checks expectations on
// the monitor and vehicle state:
//
//	name: velocity-spike
//	config:
//	  threshold: 1.0
//	vehicle:
//	  origin: true
//	  armed: true
//	steps:
//	  - set: {velocity: 2.5}
//	    repeat: 10
//	    expect: {fail_count: 10, bad_variance: true, warnings: 1}
//
// Ticks are 100 ms apart unless a step gives an explicit time with at
// (milliseconds since the start of the scenario).
package scenario
