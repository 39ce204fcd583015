package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/countdown/internal/flagx"
	"github.com/dmitrijs2005/countdown/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the DTO for config files. Pointer fields distinguish an
// absent key from an explicit zero value.
type FileConfig struct {
	DBPath          *string         `json:"db_path" yaml:"db_path"`
	RefreshInterval *timex.Duration `json:"refresh_interval" yaml:"refresh_interval"`
	SearchDebounce  *timex.Duration `json:"search_debounce" yaml:"search_debounce"`
	DefaultSort     *string         `json:"default_sort" yaml:"default_sort"`
	Timezone        *string         `json:"timezone" yaml:"timezone"`
	LogLevel        *string         `json:"log_level" yaml:"log_level"`
	Bell            *bool           `json:"bell" yaml:"bell"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
// Read or decode errors panic.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.DBPath != nil {
		cfg.DBPath = *fc.DBPath
	}
	if fc.RefreshInterval != nil {
		cfg.RefreshInterval = fc.RefreshInterval.Duration
	}
	if fc.SearchDebounce != nil {
		cfg.SearchDebounce = fc.SearchDebounce.Duration
	}
	if fc.DefaultSort != nil {
		cfg.DefaultSort = *fc.DefaultSort
	}
	if fc.Timezone != nil {
		cfg.Timezone = *fc.Timezone
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.Bell != nil {
		cfg.Bell = *fc.Bell
	}
}
