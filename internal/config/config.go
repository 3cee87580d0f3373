package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Inventory Dashboard"`
		Port int    `envconfig:"PORT" default:"3000"`
	}

	Gemini struct {
		APIKey string `envconfig:"GEMINI_API_KEY"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
