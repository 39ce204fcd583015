package config

import (
	"flag"

	"github.com/dmitrijs2005/countdown/internal/flagx"
)

var knownFlags = []string{"-d", "-r", "-w", "-s", "-t", "-l", "-b", "-e"}

// parseFlags populates Config fields from command-line flags.
//
// args are filtered with flagx.FilterArgs first, so -c/-config and unknown
// arguments do not interfere. Parse errors panic.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the SQLite database file")
	fs.DurationVar(&cfg.RefreshInterval, "r", cfg.RefreshInterval, "countdown refresh interval")
	fs.DurationVar(&cfg.SearchDebounce, "w", cfg.SearchDebounce, "search debounce period")
	fs.StringVar(&cfg.DefaultSort, "s", cfg.DefaultSort, "initial sort mode")
	fs.StringVar(&cfg.Timezone, "t", cfg.Timezone, "timezone for display and input")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.Bell, "b", cfg.Bell, "ring the terminal bell on zero")
	fs.StringVar(&cfg.OpenEvent, "e", cfg.OpenEvent, "event id or link to open at startup")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
