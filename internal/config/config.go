package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Running localy or not
	Debug bool `env:"DEBUG" envDefault:"false"`

	// Local app host and port
	Host string `env:"HOST" envDefault:"localhost"`
	Port int    `env:"PORT" envDefault:"5000"`

	// Google APIs settings.
	// The caption catalog fallback is skipped if no key is set.
	YouTubeAPIKey string `env:"YOUTUBE_API_KEY"`

	// Upper bound for a single provider lookup
	AttemptTimeout time.Duration `env:"ATTEMPT_TIMEOUT" envDefault:"10s"`

	// Upper bound for the whole fallback chain
	RetrieveTimeout time.Duration `env:"RETRIEVE_TIMEOUT" envDefault:"40s"`
}

// New creates new config object
func New() *Config {

	// Parse the config from the environment
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to parse the config; %v", err)
	}

	if cfg.AttemptTimeout <= 0 || cfg.RetrieveTimeout <= 0 {
		log.Fatalf(
			"timeouts must be positive; attempt: %s, retrieve: %s",
			cfg.AttemptTimeout, cfg.RetrieveTimeout,
		)
	}

	return &cfg
}
