// Package config provides configuration management for frauddesk.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds connection and logging settings for the console.
type Config struct {
	GatewayURL     string        // rule/review REST gateway
	GraphQLURL     string        // listing endpoint
	RequestTimeout time.Duration // per-request bound for both clients
	AnalystID      string        // acting analyst, stamped on saves
	LogLevel       string        // debug, info, warn, error
	LogFormat      string        // json, text
}

// Default returns configuration with default values.
func Default() *Config {
	return &Config{
		GatewayURL:     "http://localhost:50052",
		GraphQLURL:     "http://localhost:8079/query",
		RequestTimeout: 30 * time.Second,
		LogLevel:       "info",
		LogFormat:      "json",
	}
}

// Validate checks URLs, the timeout, and logging settings.
func Validate(cfg *Config) error {
	for name, raw := range map[string]string{
		"gateway_url": cfg.GatewayURL,
		"graphql_url": cfg.GraphQLURL,
	} {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("%s must be an http or https URL, got %q", name, raw)
		}
		if u.Host == "" {
			return fmt.Errorf("%s is missing a host: %q", name, raw)
		}
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %v", cfg.RequestTimeout)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug/info/warn/error, got %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("log_format must be json or text, got %q", cfg.LogFormat)
	}
	return nil
}
