package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_parseFile(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		path := writeTempFile(t, "cfg.json", `{
			"db_path": "events.db",
			"refresh_interval": "2s",
			"search_debounce": 100000000,
			"default_sort": "time-desc",
			"timezone": "UTC",
			"bell": false
		}`)

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg, []string{"-config", path})

		assert.Equal(t, "events.db", cfg.DBPath)
		assert.Equal(t, 2*time.Second, cfg.RefreshInterval)
		assert.Equal(t, 100*time.Millisecond, cfg.SearchDebounce)
		assert.Equal(t, "time-desc", cfg.DefaultSort)
		assert.Equal(t, "UTC", cfg.Timezone)
		assert.Equal(t, "info", cfg.LogLevel, "absent keys keep defaults")
		assert.False(t, cfg.Bell)
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeTempFile(t, "cfg.yml", "search_debounce: 50ms\nbell: false\ndefault_sort: alpha-desc\n")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg, []string{"-c", path})

		assert.Equal(t, 50*time.Millisecond, cfg.SearchDebounce)
		assert.Equal(t, "alpha-desc", cfg.DefaultSort)
		assert.False(t, cfg.Bell)
		assert.Equal(t, "countdown.db", cfg.DBPath)
	})

	t.Run("no file flag leaves config unchanged", func(t *testing.T) {
		cfg := &Config{DBPath: "keep.db"}
		parseFile(cfg, []string{"-d", "other.db"})
		assert.Equal(t, "keep.db", cfg.DBPath)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		path := writeTempFile(t, "bad.json", `{ this is not valid json`)
		require.Panics(t, func() { parseFile(&Config{}, []string{"-c", path}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		require.Panics(t, func() { parseFile(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "nope.json")}) })
	})
}
