package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceID       string
	HTTPPort        int
	ShutdownTimeout time.Duration
	CatalogPath     string
}

type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
	} `yaml:"service"`
	Seed struct {
		CatalogPath string `yaml:"catalog_path"`
	} `yaml:"seed"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:       "activities-api",
		HTTPPort:        8000,
		ShutdownTimeout: 10 * time.Second,
	}
	if raw, err := os.ReadFile(path); err == nil {
		var f configFile
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Seed.CatalogPath != "" {
			cfg.CatalogPath = f.Seed.CatalogPath
		}
	}
	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.ShutdownTimeout = time.Duration(envInt("SHUTDOWN_TIMEOUT_SECONDS", int(cfg.ShutdownTimeout.Seconds()))) * time.Second
	if v := os.Getenv("ACTIVITIES_FILE"); v != "" {
		cfg.CatalogPath = v
	}
	return cfg, nil
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
