package config

import (
	"fmt"
	"strconv"
	"time"
)

const envPrefix = "COUNTDOWN_"

// parseEnv overlays cfg with COUNTDOWN_* variables read through getenv.
// Empty values are ignored. Malformed durations or booleans panic, like
// malformed flags.
func parseEnv(cfg *Config, getenv func(string) string) {
	str := func(name string, dst *string) {
		if v := getenv(envPrefix + name); v != "" {
			*dst = v
		}
	}
	dur := func(name string, dst *time.Duration) {
		if v := getenv(envPrefix + name); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				panic(fmt.Errorf("%s%s: %w", envPrefix, name, err))
			}
			*dst = d
		}
	}

	str("DB_PATH", &cfg.DBPath)
	dur("REFRESH_INTERVAL", &cfg.RefreshInterval)
	dur("SEARCH_DEBOUNCE", &cfg.SearchDebounce)
	str("DEFAULT_SORT", &cfg.DefaultSort)
	str("TIMEZONE", &cfg.Timezone)
	str("LOG_LEVEL", &cfg.LogLevel)

	if v := getenv(envPrefix + "BELL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(fmt.Errorf("%sBELL: %w", envPrefix, err))
		}
		cfg.Bell = b
	}
}
