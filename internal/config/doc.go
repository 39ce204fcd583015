// Package config loads runtime configuration for the countdown CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. COUNTDOWN_* environment variables (see parseEnv). A .env file in the
//     working directory is loaded into the environment first, if present.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string     path of the SQLite database file
//	-r duration   countdown refresh interval (e.g. 1s)
//	-w duration   quiet period before a typed search is applied (e.g. 250ms)
//	-s string     initial sort: time-asc, time-desc, alpha-asc, alpha-desc
//	-t string     IANA timezone for display and input ("Local" by default)
//	-l string     log level: debug, info, warn, error
//	-b            ring the terminal bell when a countdown reaches zero (-b=false to mute)
//	-e string     event id or "#event=<id>" link to open at startup
//
// # File schema
//
// Durations use timex.Duration, so values can be strings like "1s" or
// integer nanoseconds:
//
//	{
//	  "db_path": "data/countdown.db",
//	  "refresh_interval": "1s",
//	  "search_debounce": "250ms",
//	  "default_sort": "time-asc",
//	  "timezone": "Europe/Riga",
//	  "log_level": "info",
//	  "bell": true
//	}
//
// The same keys are used in YAML. Environment variables use the upper-case
// key with a COUNTDOWN_ prefix, e.g. COUNTDOWN_DB_PATH or COUNTDOWN_BELL.
package config
