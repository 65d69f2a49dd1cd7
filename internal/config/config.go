package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gbtux/teammanager/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of the teammanager CLI.
type Config struct {
	DBPath      string       `yaml:"db_path"`
	Timeline    TimelineConf `yaml:"timeline"`
	LogUseCases bool         `yaml:"log_use_cases"`
}

// TimelineConf sets the geometry used when laying out and routing a chart.
type TimelineConf struct {
	Range     domain.Range `yaml:"range"`
	Zoom      int          `yaml:"zoom"`
	RowHeight float64      `yaml:"row_height"`
	BarInset  float64      `yaml:"bar_inset"`
}

// Dir returns ~/.teammanager.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".teammanager"), nil
}

// Default returns a Config with the database under dir.
func Default(dir string) Config {
	return Config{
		DBPath: filepath.Join(dir, "teammanager.db"),
		Timeline: TimelineConf{
			Range:     domain.RangeMonthly,
			Zoom:      100,
			RowHeight: 36,
			BarInset:  4,
		},
	}
}

// Load reads path over the defaults and then applies TEAMMANAGER_*
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	dir := filepath.Dir(path)
	cfg := Default(dir)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	cfg.DBPath = expandHome(cfg.DBPath)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TEAMMANAGER_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TEAMMANAGER_RANGE"); v != "" {
		cfg.Timeline.Range = domain.Range(strings.ToLower(v))
	}
	if v := os.Getenv("TEAMMANAGER_ZOOM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timeline.Zoom = n
		}
	}
	if v := os.Getenv("TEAMMANAGER_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
}

// Validate rejects settings the timeline cannot render.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("config: db_path is required")
	}
	if _, err := domain.ParseRange(string(c.Timeline.Range)); err != nil {
		return fmt.Errorf("config: timeline.range: %w", err)
	}
	if c.Timeline.Zoom <= 0 {
		return fmt.Errorf("config: timeline.zoom must be positive, got %d", c.Timeline.Zoom)
	}
	if c.Timeline.RowHeight <= 2*c.Timeline.BarInset {
		return fmt.Errorf("config: timeline.row_height (%g) must exceed twice bar_inset (%g)", c.Timeline.RowHeight, c.Timeline.BarInset)
	}
	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
