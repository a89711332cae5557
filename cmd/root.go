package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rajasatyajit/supplychain-go/config"
	"github.com/rajasatyajit/supplychain-go/supplychain"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *supplychain.Client

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	filterExpr string
	preset     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "supplychain",
	Short: "Query supply chain disruption alerts, usage and billing",
	Long: `supplychain is a CLI for the SupplyChain API. It lists and filters
disruption alerts, reports account usage and quota, and creates billing
checkout/portal sessions.

The API key resolves from api.key in the config file or the API_KEY
environment variable.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records build information injected by the linker.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(versionCmd)
}

// initializeApp loads configuration and constructs the API client. Commands
// that talk to the API set it as their PreRunE.
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client, err = supplychain.NewClient(
		cfg.API.URL,
		cfg.API.Key,
		cfg.API.ClientType,
		logger,
		supplychain.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second),
		supplychain.WithUserAgent("supplychain-cli/"+version),
	)
	if err != nil {
		return fmt.Errorf("failed to create SupplyChain client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only on real terminals
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// versionCmd prints build information injected by the linker.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("supplychain %s (built %s)\n", version, buildTime)
	},
}

// getFilterExpression determines the client-side filter expression to use.
// Priority: command line filter > preset > config default > none.
func getFilterExpression() (string, error) {
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if presetFilter, ok := cfg.Filter.Presets[preset]; ok {
			return presetFilter, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.Filter.DefaultExpression, nil
}
