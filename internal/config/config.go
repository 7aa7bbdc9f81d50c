package config

import (
	"errors"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"memorygame-server/internal/util"
)

// Config provides configuration for the memory game server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Game struct {
		// RevealDelay is how long a mismatched pair stays face-up
		RevealDelay  time.Duration `yaml:"revealDelay" envconfig:"reveal_delay"`
		TickInterval time.Duration `yaml:"tickInterval" envconfig:"tick_interval"`
		Symbols      []string      `yaml:"symbols" envconfig:"symbols"`

		// IdleTimeout closes games without connected clients. Zero disables reaping.
		IdleTimeout time.Duration `yaml:"idleTimeout" envconfig:"idle_timeout"`
	} `yaml:"game"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
}

var config Config

// DefaultConfig returns the configuration used when no file or environment overrides it
func DefaultConfig() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Game.RevealDelay = time.Second
	cfg.Game.TickInterval = time.Second
	cfg.Game.IdleTimeout = 30 * time.Minute
	cfg.CORS.AllowedOrigins = []string{"*"}

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("MG_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("mg", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
