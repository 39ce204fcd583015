package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"string", `"250ms"`, 250 * time.Millisecond, false},
		{"nanoseconds", `1000000000`, time.Second, false},
		{"bad string", `"soon"`, 0, true},
		{"bool", `true`, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tc.in), &d)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.Duration)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration{Duration: 1500 * time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, `"1.5s"`, string(b))
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	var cfg struct {
		Refresh  Duration `yaml:"refresh"`
		Debounce Duration `yaml:"debounce"`
	}
	err := yaml.Unmarshal([]byte("refresh: 2s\ndebounce: 250000000\n"), &cfg)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Refresh.Duration)
	assert.Equal(t, 250*time.Millisecond, cfg.Debounce.Duration)

	err = yaml.Unmarshal([]byte("refresh: later\n"), &cfg)
	require.Error(t, err)
}
