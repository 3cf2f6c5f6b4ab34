package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Ticker is one entry of the configured stock universe.
type Ticker struct {
	Label  string `yaml:"label" validate:"required"`
	Symbol string `yaml:"symbol" validate:"required"`
}

// Duration wraps time.Duration to accept values like "10m" in yaml.
type Duration time.Duration

// UnmarshalYAML parses the duration from its string form.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	v, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("could not parse duration '%s': %w", node.Value, err)
	}
	*d = Duration(v)
	return nil
}

// Value returns the underlying duration.
func (d Duration) Value() time.Duration {
	return time.Duration(d)
}

// Server holds the serving layer settings.
type Server struct {
	Port     int      `yaml:"port" default:"6090" validate:"gt=0,lte=65535"`
	CacheTTL Duration `yaml:"cache_ttl"`
}

// Forecast holds the default forecast request parameters.
type Forecast struct {
	Model   string `yaml:"model" default:"random-forest"`
	Horizon int    `yaml:"horizon" default:"30" validate:"gt=0"`
}

// Config is the full application configuration.
type Config struct {
	Server   Server            `yaml:"server"`
	Forecast Forecast          `yaml:"forecast"`
	Universe []Ticker          `yaml:"universe" validate:"dive"`
	Periods  map[string]string `yaml:"periods"`
}

// Load reads, defaults and validates the config file.
// A missing path yields the pure defaults.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("could not load config from '%s': %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("could not unmarshal config from '%s': %w", path, err)
		}
	}

	if err := defaults.Set(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not apply config defaults: %w", err)
	}
	if cfg.Server.CacheTTL == 0 {
		cfg.Server.CacheTTL = Duration(10 * time.Minute)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	log.Info().Str("path", path).Int("universe", len(cfg.Universe)).Msg("loaded config")
	return cfg, nil
}

// MustLoad loads the config and panics on failure.
func MustLoad(path string) Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("could not load config: %s", err.Error()))
	}
	return cfg
}
