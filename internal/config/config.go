package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port        int `yaml:"port"`
		MetricsPort int `yaml:"metrics_port"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`

	// Timezone anchors time-of-day availability checks.
	Timezone string `yaml:"timezone"`

	Data struct {
		FoodCSV   string `yaml:"food_csv"`
		BarCSV    string `yaml:"bar_csv"`
		OutputDir string `yaml:"output_dir"`
	} `yaml:"data"`

	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"auth"`

	Events []EventConfig `yaml:"events"`
}

// EventConfig is one upcoming event entry.
type EventConfig struct {
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
}

// Load reads the YAML configuration file, applies defaults, and lets
// environment variables override the secret-bearing fields.
func Load(path string) (*Config, error) {
	config := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnv(config)
	return config, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	config := defaults()
	applyEnv(config)
	return config
}

func defaults() *Config {
	config := &Config{}
	config.Server.Port = 8080
	config.Server.MetricsPort = 9090
	config.Database.Driver = "sqlite3"
	config.Database.DSN = "menu.db"
	config.Timezone = "America/Chicago"
	config.Data.FoodCSV = "scripts/data/food.csv"
	config.Data.BarCSV = "scripts/data/bar.csv"
	config.Data.OutputDir = "public/data"
	return config
}

func applyEnv(config *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.Database.Driver = "postgres"
		config.Database.DSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.Auth.JWTSecret = v
	}
	if v := os.Getenv("MENU_TIMEZONE"); v != "" {
		config.Timezone = v
	}
}
