package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Addr         string        `toml:"addr"`
	ReadTimeout  string        `toml:"read_timeout"`
	WriteTimeout string        `toml:"write_timeout"`
	Logging      LoggingConfig `toml:"logging"`
	CORS         CORSConfig    `toml:"cors"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

func defaultConfig() *Config {
	return &Config{
		Addr:         ":8080",
		ReadTimeout:  "10s",
		WriteTimeout: "10s",
		Logging:      LoggingConfig{Level: "info", Format: "text"},
	}
}

// ReadTimeoutDuration parses and returns the read timeout.
func (c *Config) ReadTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ReadTimeout)
	return d
}

// WriteTimeoutDuration parses and returns the write timeout.
func (c *Config) WriteTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.WriteTimeout)
	return d
}

// loadConfig reads a TOML config file over the defaults. A missing file is
// not an error; the defaults apply.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func setupLogging(cfg LoggingConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
}
