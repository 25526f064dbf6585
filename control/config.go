// control/config.go
// Author: momentics <momentics@gmail.com>
//
// One-shot environment configuration reader. Malformed input never
// fails construction: the frequency falls back to its default and an
// unknown source override falls back to the CPU timer.

package control

import (
	"os"

	"github.com/spf13/viper"

	"github.com/momentics/tickmux/api"
)

const (
	// EnvPrefix namespaces every tickmux environment variable.
	EnvPrefix = "TICKMUX"

	// envRealtime is the presence-only real-time flag. Checked with
	// os.LookupEnv because an empty-but-present value must count as
	// set, which viper's IsSet does not distinguish for env bindings.
	envRealtime = "TICKMUX_REALTIME"

	// MaxFrequency is the largest allowed tick frequency.
	MaxFrequency = 4000
	// DefaultFrequency is used when no valid override is present.
	DefaultFrequency = 100
)

// Config holds parameters immutable per process.
type Config struct {
	// Frequency is ticks per second, already clamped to
	// [1, MaxFrequency].
	Frequency int32
	// Source is the event-source strategy to construct.
	Source api.SourceKind
}

// DefaultConfig returns the configuration used when the environment
// carries no overrides.
func DefaultConfig() Config {
	return Config{
		Frequency: DefaultFrequency,
		Source:    api.SourceTimerCPU,
	}
}

// FromEnv reads the configuration from the environment exactly once.
func FromEnv() Config {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	cfg := DefaultConfig()
	cfg.Frequency = clampFrequency(v.GetInt("frequency"))
	cfg.Source = selectSource(v.GetString("event"))
	return cfg
}

// clampFrequency maps a raw override to the valid range. Zero covers
// both "absent" and "malformed": viper's integer coercion yields 0 for
// non-numeric input, and 0 is itself out of range.
func clampFrequency(raw int) int32 {
	switch {
	case raw <= 0:
		return DefaultFrequency
	case raw > MaxFrequency:
		return MaxFrequency
	default:
		return int32(raw)
	}
}

// selectSource resolves the strategy. A direct specification takes
// priority; otherwise the real-time flag, if present, selects the
// real-time timer; otherwise the CPU timer.
func selectSource(event string) api.SourceKind {
	switch api.SourceKind(event) {
	case api.SourceTimerCPU, api.SourceTimerRealtime, api.SourceThreadWallclock:
		return api.SourceKind(event)
	}
	if _, ok := os.LookupEnv(envRealtime); ok {
		return api.SourceTimerRealtime
	}
	return api.SourceTimerCPU
}
