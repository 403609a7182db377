package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration using viper.
// CLI flags > environment > config file > defaults precedence; flag
// overrides are applied by the caller after Load returns.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults matching Default()
	v.SetDefault("gateway_url", "http://localhost:50052")
	v.SetDefault("graphql_url", "http://localhost:8079/query")
	v.SetDefault("request_timeout", "30s")
	v.SetDefault("analyst_id", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	// Bind environment variables with FD_ prefix
	v.SetEnvPrefix("FD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		GatewayURL:     v.GetString("gateway_url"),
		GraphQLURL:     v.GetString("graphql_url"),
		RequestTimeout: v.GetDuration("request_timeout"),
		AnalystID:      v.GetString("analyst_id"),
		LogLevel:       v.GetString("log_level"),
		LogFormat:      v.GetString("log_format"),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
