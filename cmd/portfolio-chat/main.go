package main

import (
	"fmt"
	"os"

	"portfolio-chat/pkg/config"
	"portfolio-chat/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Portfolio Chat API
// @version 1.0
// @description Knowledge-grounded chat gateway for the portfolio assistant
// @BasePath /

var (
	portfolioFile string
	logLevel      string
)

var rootCmd = &cobra.Command{
	Use:           "portfolio-chat",
	Short:         "Knowledge-grounded chat gateway for the portfolio site",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&portfolioFile, "portfolio", "", "Portfolio YAML file (default: bundled data, or PORTFOLIO_FILE)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (default: LOG_LEVEL or info)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(kbCmd)
	rootCmd.AddCommand(unansweredCmd)
}

func main() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads configuration, applies flag overrides and starts the global logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if portfolioFile != "" {
		cfg.Portfolio.File = portfolioFile
	}
	if logLevel != "" {
		cfg.Logger.Level = logLevel
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logger.Get(), nil
}
