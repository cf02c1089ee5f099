// This file contains environment variable utilities for configuration
// override.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// envOverride declares a single environment variable override. Each
// entry maps an env key (without the QUESTBENCH_ prefix) to the CLI
// flag name it corresponds to and a function that applies the value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable
// overrides.
var envOverrides = []envOverride{
	{"ITERATIONS", "iterations", func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Iterations = parsed
		}
	}},
	{"WORKERS", "workers", func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}},
	{"TIMEOUT", "timeout", func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},
	{"DATA_DIR", "data-dir", func(c *AppConfig, v string) {
		c.DataDir = v
	}},
	{"README", "readme", func(c *AppConfig, v string) {
		c.ReadmePath = v
	}},
	{"QUIET", "quiet", func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"NO_COLOR", "no-color", func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
	{"VERBOSE", "verbose", func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
}

// parseBoolEnv parses a boolean environment variable value. Accepts
// "true", "1", "yes" as true; "false", "0", "no" as false
// (case-insensitive). Returns defaultVal otherwise.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// ApplyEnvOverrides applies environment variable values to the
// configuration for any flags that were not explicitly set on the
// command line. flagChanged reports whether the named flag was set,
// implementing the priority CLI flags > environment > defaults.
//
// Supported variables (all prefixed with QUESTBENCH_): ITERATIONS,
// WORKERS, TIMEOUT, DATA_DIR, README, QUIET, NO_COLOR, VERBOSE.
func ApplyEnvOverrides(cfg *AppConfig, flagChanged func(name string) bool) {
	for _, o := range envOverrides {
		if flagChanged != nil && flagChanged(o.flag) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(cfg, val)
		}
	}
}
