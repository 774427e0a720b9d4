package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	Theme       string `yaml:"theme"`
	DefaultMode string `yaml:"default_mode"`
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file"`
	StoragePath string `yaml:"storage_path"`

	API APIConfig `yaml:"-"`
}

// APIConfig describes the joke API endpoints. It is read from the
// environment, not from the YAML file.
type APIConfig struct {
	BaseURL            string        `env:"GOJOKE_API_URL_BASE" envDefault:"https://api.chucknorris.io"`
	Timeout            time.Duration `env:"GOJOKE_API_TIMEOUT" envDefault:"10s"`
	Proxy              string        `env:"GOJOKE_PROXY"`
	EndpointRandom     string        `env:"GOJOKE_ENDPOINT_RANDOM" envDefault:"/jokes/random"`
	EndpointCategory   string        `env:"GOJOKE_ENDPOINT_CATEGORY" envDefault:"/jokes/random?category="`
	EndpointSearch     string        `env:"GOJOKE_ENDPOINT_SEARCH" envDefault:"/jokes/search?query="`
	EndpointCategories string        `env:"GOJOKE_ENDPOINT_CATEGORIES" envDefault:"/jokes/categories"`

	CAFile      string `env:"GOJOKE_CA_FILE"`
	CertFile    string `env:"GOJOKE_CLIENT_CERT"`
	KeyFile     string `env:"GOJOKE_CLIENT_KEY"`
	TLSInsecure bool   `env:"GOJOKE_TLS_INSECURE"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:       "catppuccin-mocha",
		DefaultMode: "random",
		LogLevel:    "info",
		LogFile:     "",
		StoragePath: "",
		API:         DefaultAPIConfig(),
	}
}

// DefaultAPIConfig returns the endpoint defaults for api.chucknorris.io.
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		BaseURL:            "https://api.chucknorris.io",
		Timeout:            10 * time.Second,
		EndpointRandom:     "/jokes/random",
		EndpointCategory:   "/jokes/random?category=",
		EndpointSearch:     "/jokes/search?query=",
		EndpointCategories: "/jokes/categories",
	}
}

// LoadAPIFromEnv reads the endpoint configuration from GOJOKE_* variables.
func LoadAPIFromEnv() (APIConfig, error) {
	var cfg APIConfig
	if err := env.Parse(&cfg); err != nil {
		return DefaultAPIConfig(), fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
