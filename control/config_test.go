// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package control_test

import (
	"testing"

	"github.com/momentics/tickmux/api"
	"github.com/momentics/tickmux/control"
)

func TestFromEnv_FrequencyClamping(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  int32
	}{
		{"above max", "10000", 4000},
		{"zero", "0", 100},
		{"negative", "-5", 100},
		{"non-numeric", "fast", 100},
		{"in range", "50", 50},
		{"at max", "4000", 4000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TICKMUX_FREQUENCY", tc.value)
			cfg := control.FromEnv()
			if cfg.Frequency != tc.want {
				t.Errorf("frequency = %d, want %d", cfg.Frequency, tc.want)
			}
		})
	}
}

func TestFromEnv_FrequencyAbsent(t *testing.T) {
	cfg := control.FromEnv()
	if cfg.Frequency != control.DefaultFrequency {
		t.Errorf("frequency = %d, want default %d", cfg.Frequency, control.DefaultFrequency)
	}
}

func TestFromEnv_SourceSelection(t *testing.T) {
	t.Run("default is cpu timer", func(t *testing.T) {
		cfg := control.FromEnv()
		if cfg.Source != api.SourceTimerCPU {
			t.Errorf("source = %q, want %q", cfg.Source, api.SourceTimerCPU)
		}
	})

	t.Run("explicit event override", func(t *testing.T) {
		t.Setenv("TICKMUX_EVENT", "thread-wallclock")
		cfg := control.FromEnv()
		if cfg.Source != api.SourceThreadWallclock {
			t.Errorf("source = %q, want %q", cfg.Source, api.SourceThreadWallclock)
		}
	})

	t.Run("unknown event falls back", func(t *testing.T) {
		t.Setenv("TICKMUX_EVENT", "hardware-pmu")
		cfg := control.FromEnv()
		if cfg.Source != api.SourceTimerCPU {
			t.Errorf("source = %q, want %q", cfg.Source, api.SourceTimerCPU)
		}
	})

	t.Run("realtime flag presence", func(t *testing.T) {
		t.Setenv("TICKMUX_REALTIME", "")
		cfg := control.FromEnv()
		if cfg.Source != api.SourceTimerRealtime {
			t.Errorf("source = %q, want %q", cfg.Source, api.SourceTimerRealtime)
		}
	})

	t.Run("explicit event beats realtime flag", func(t *testing.T) {
		t.Setenv("TICKMUX_REALTIME", "1")
		t.Setenv("TICKMUX_EVENT", "timer-cpu")
		cfg := control.FromEnv()
		if cfg.Source != api.SourceTimerCPU {
			t.Errorf("source = %q, want %q", cfg.Source, api.SourceTimerCPU)
		}
	})
}
