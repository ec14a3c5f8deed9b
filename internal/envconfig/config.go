// Package envconfig reads autograd settings from the environment.
//
// Every setting is exposed as a getter that re-reads its variable on each
// call, so tests can use t.Setenv freely.
package envconfig

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Var returns an environment variable with surrounding whitespace and
// quotes removed.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// BoolWithDefault returns a getter for a boolean variable. A set but
// unparsable value counts as true.
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Bool returns a getter for a boolean variable defaulting to false.
func Bool(k string) func() bool {
	withDefault := BoolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

// Uint returns a getter for an unsigned variable. Invalid values are
// logged and replaced by the default.
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// Uint64 is Uint for 64-bit values.
func Uint64(key string, defaultValue uint64) func() uint64 {
	return func() uint64 {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return n
			}
		}
		return defaultValue
	}
}

// LogLevel returns the log level selected by AUTOGRAD_DEBUG.
// Values: unset/0/false = INFO, 1/true = DEBUG.
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if Debug() {
		level = slog.LevelDebug
	}
	return level
}

var (
	// Debug enables debug logging.
	Debug = Bool("AUTOGRAD_DEBUG")
	// Seed seeds parameter initialization. Zero selects a time-based seed.
	Seed = Uint64("AUTOGRAD_SEED", 0)
	// Epochs is the default number of training epochs.
	Epochs = Uint("AUTOGRAD_EPOCHS", 5000)
)

// EnvVar describes one setting with its current value.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every setting keyed by variable name.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"AUTOGRAD_DEBUG":  {"AUTOGRAD_DEBUG", LogLevel(), "Show additional debug information (e.g. AUTOGRAD_DEBUG=1)"},
		"AUTOGRAD_SEED":   {"AUTOGRAD_SEED", Seed(), "Seed for parameter initialization (0 = time based)"},
		"AUTOGRAD_EPOCHS": {"AUTOGRAD_EPOCHS", Epochs(), "Default number of training epochs"},
	}
}
