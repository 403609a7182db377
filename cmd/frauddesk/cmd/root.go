package cmd

import (
	"log/slog"
	"os"

	"github.com/frauddesk/frauddesk/internal/core/config"
	"github.com/frauddesk/frauddesk/internal/core/metrics"
	"github.com/spf13/cobra"
)

const Version = "0.1.0"

var (
	configFile    string
	gatewayURL    string
	graphqlURL    string
	analystID     string
	logLevel      string
	logFormat     string
	metricsListen string
)

var rootCmd = &cobra.Command{
	Use:          "frauddesk",
	Short:        "Fraud review console",
	Long:         `frauddesk is an analyst console for reviewing transactions and managing fraud detection rules.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&gatewayURL, "gateway-url", "", "rule/review gateway base URL")
	rootCmd.PersistentFlags().StringVar(&graphqlURL, "graphql-url", "", "listing endpoint URL")
	rootCmd.PersistentFlags().StringVar(&analystID, "analyst-id", "", "acting analyst ID (UUID)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json, text)")
	rootCmd.PersistentFlags().StringVar(&metricsListen, "metrics-listen", "", "address to serve Prometheus metrics on (e.g. :9090)")
}

func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves configuration with flag overrides applied on top of
// environment, config file, and defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if gatewayURL != "" {
		cfg.GatewayURL = gatewayURL
	}
	if graphqlURL != "" {
		cfg.GraphQLURL = graphqlURL
	}
	if analystID != "" {
		cfg.AnalystID = analystID
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newCollector builds the command's metrics collector. With --metrics-listen
// set, the scrape endpoint serves at <addr>/metrics for the life of the
// command; the returned stop function shuts it down.
func newCollector(logger *slog.Logger) (*metrics.Collector, func()) {
	collector := metrics.NewCollector(logger)
	stop := func() {}
	if metricsListen != "" {
		srv, addr, err := collector.StartServer(metricsListen)
		if err != nil {
			logger.Error("metrics listener failed", slog.String("error", err.Error()))
		} else {
			logger.Info("metrics listening", slog.String("addr", addr))
			stop = func() { srv.Close() }
		}
	}
	return collector, stop
}

// setupLogger builds the process logger from config. Logs go to stderr so
// table output on stdout stays pipeable.
func setupLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
