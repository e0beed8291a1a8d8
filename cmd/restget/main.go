package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/studiowebux/restget/internal/config"
	"github.com/studiowebux/restget/internal/executor"
	"github.com/studiowebux/restget/internal/keybinds"
	"github.com/studiowebux/restget/internal/logger"
	"github.com/studiowebux/restget/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "restget",
	Short: "restget - send a GET request and read the response",
	Long: `restget is a minimal interactive HTTP client.

Type a URL, press enter (or activate Send) and the response body or the
error appears below. Every send starts a new request; if several are in
flight, the one that finishes last is shown.

Settings are read from ~/.restget/config.yaml, a .env file, RESTGET_*
environment variables and the flags below, in increasing precedence.

Examples:
  restget                                # Start with an empty URL field
  restget --url https://httpbin.org/get  # Pre-fill the URL field
  restget --timeout 10                   # Give up on requests after 10s
  restget config                         # Show the effective configuration`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runTUI(cfg)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		data, err := cfg.YAML()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

// Flags shared by all commands
var (
	flagLogLevel  string
	flagLogFile   string
	flagTimeout   int64
	flagUserAgent string
	flagURL       string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug/info/warn/error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (default ~/.restget/restget.log)")
	rootCmd.PersistentFlags().Int64VarP(&flagTimeout, "timeout", "t", 0, "Request timeout in seconds (0 = none)")
	rootCmd.PersistentFlags().StringVar(&flagUserAgent, "user-agent", "", "User-Agent header sent with requests")
	rootCmd.PersistentFlags().StringVarP(&flagURL, "url", "u", "", "Initial URL")

	rootCmd.AddCommand(configCmd)
}

// loadConfig initializes the config directory and merges all sources
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	cfg, err := config.Load(version, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// runTUI wires logging, keybinds and the HTTP client, then starts the TUI
func runTUI(cfg *config.Config) error {
	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()

	registry, err := keybinds.LoadOrDefault(cfg.Keybinds)
	if err != nil {
		return err
	}

	client := executor.New(executor.Options{
		Timeout:   cfg.RequestTimeout,
		UserAgent: cfg.UserAgent,
	})

	log.Infow("restget starting", "version", version, "timeout", cfg.RequestTimeout, "log_level", cfg.LogLevel)

	if err := tui.Run(tui.Options{
		Client:     client,
		InitialURL: cfg.InitialURL,
		Keybinds:   registry,
	}); err != nil {
		log.Errorw("tui failed", "error", err)
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
