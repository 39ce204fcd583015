package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "countdown.db", c.DBPath)
	assert.Equal(t, time.Second, c.RefreshInterval)
	assert.Equal(t, 250*time.Millisecond, c.SearchDebounce)
	assert.Equal(t, "time-asc", c.DefaultSort)
	assert.Equal(t, "Local", c.Timezone)
	assert.Equal(t, "info", c.LogLevel)
	assert.True(t, c.Bell)
	assert.Empty(t, c.OpenEvent)
	assert.NoError(t, c.Validate())
}

func TestLoad_FileThenFlags(t *testing.T) {
	path := writeTempFile(t, "cfg.yaml", "db_path: from-file.db\nrefresh_interval: 2s\nlog_level: debug\n")

	env := map[string]string{"COUNTDOWN_DB_PATH": "from-env.db", "COUNTDOWN_SEARCH_DEBOUNCE": "1s"}
	cfg := load([]string{"-c", path, "-d", "from-flag.db", "-e", "#event=abc"}, func(k string) string { return env[k] })

	require.NotNil(t, cfg)
	assert.Equal(t, "from-flag.db", cfg.DBPath)
	assert.Equal(t, 2*time.Second, cfg.RefreshInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "#event=abc", cfg.OpenEvent)
	assert.Equal(t, time.Second, cfg.SearchDebounce)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty db path", func(c *Config) { c.DBPath = "" }},
		{"zero refresh", func(c *Config) { c.RefreshInterval = 0 }},
		{"negative debounce", func(c *Config) { c.SearchDebounce = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.modify(&c)
			assert.Error(t, c.Validate())
		})
	}
}
