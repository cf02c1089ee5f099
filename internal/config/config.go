// Package config holds the runtime settings of the harness and their
// resolution chain: CLI flags > environment variables > defaults.
package config

import "time"

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "QUESTBENCH_"

// Default number of timed samples a bench run takes per cell.
const BenchIterations = 10

// AppConfig carries every runtime setting of the harness.
type AppConfig struct {
	// Iterations is the number of timed samples per solver invocation.
	// Interactive runs default to one; bench mode raises it to average
	// out scheduling noise.
	Iterations int
	// Timeout bounds each solver call so one hung solver never blocks
	// the batch. Zero disables the bound.
	Timeout time.Duration
	// Workers bounds the number of concurrently evaluated cells in
	// batch runs. Benchmarks should keep the default of one so each
	// measured region owns an uncontended execution slice.
	Workers int
	// DataDir is the root of the data tree (inputs, samples, answers).
	DataDir string
	// ReadmePath is the merge target for the rendered benchmark table.
	ReadmePath string
	// Quiet suppresses informational console output.
	Quiet bool
	// NoColor disables styled output.
	NoColor bool
	// Verbose enables debug-level logging.
	Verbose bool
}

// Default returns the configuration defaults before flag and env
// resolution.
func Default() AppConfig {
	return AppConfig{
		Iterations: 1,
		Timeout:    60 * time.Second,
		Workers:    1,
		DataDir:    "data",
		ReadmePath: "README.md",
	}
}
