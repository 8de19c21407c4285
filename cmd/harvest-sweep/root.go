package main

import (
	"log/slog"
	"os"

	"pineapples/internal/app"
	"pineapples/internal/sims/greenhouse"
	"pineapples/pkg/garden"

	"github.com/spf13/cobra"
)

var (
	configFile string
	envFile    string
	logLevel   string
	modeName   string
	width      int
	height     int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "harvest-sweep",
	Short: "Headless tools for the pineapple greenhouse",
	Long: `harvest-sweep runs greenhouses without a window: it can render a seeded
grid after a list of clicks, or search many seeds for radiator layouts
that maximise the harvest.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := app.NewLogger(os.Stderr, logLevel)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		return nil
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "optional YAML greenhouse config")
	flags.StringVar(&envFile, "env", "", "optional dotenv file with PINEAPPLES_* keys")
	flags.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&modeName, "mode", "", "command variant: budget, toggle or counter")
	flags.IntVar(&width, "width", 0, "fixed grid width (0 keeps the config or random size)")
	flags.IntVar(&height, "height", 0, "fixed grid height (0 keeps the config or random size)")
}

// loadConfig merges the config file, env file and flags, in that order.
func loadConfig() (greenhouse.Config, error) {
	var fromFile, fromEnv map[string]string
	var err error
	if configFile != "" {
		if fromFile, err = greenhouse.LoadYAML(configFile); err != nil {
			return greenhouse.Config{}, err
		}
	}
	if envFile != "" {
		if fromEnv, err = greenhouse.LoadEnvFile(envFile); err != nil {
			return greenhouse.Config{}, err
		}
	}
	cfg := greenhouse.FromMap(greenhouse.Merge(fromFile, fromEnv))
	if modeName != "" {
		mode, err := garden.ParseMode(modeName)
		if err != nil {
			return greenhouse.Config{}, err
		}
		cfg.Mode = mode
	}
	if width > 0 {
		cfg.Width = width
		cfg.RandomSize = false
	}
	if height > 0 {
		cfg.Height = height
		cfg.RandomSize = false
	}
	return cfg, nil
}
