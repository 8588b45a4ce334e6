// Package cmd provides the CLI commands for event-economics.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"event-economics/internal/config"
	"event-economics/internal/logging"
)

// Version is set at build time
var Version = "0.1.0"

var (
	cfgFile      string
	verbose      bool
	outputFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "event-economics",
	Short: "Staffing, consumption and pricing calculators for bartending events",
	Long: `event-economics answers the three numeric questions behind a bartending booking:
how many bartenders an event needs, how much alcohol to buy, and what the
client pays (with the platform fee and bartender payout).

Examples:
  event-economics staffing --guests 150 --staff 2
  event-economics shopping --guests 50 --hours 4 --level moderate
  event-economics quote --rate 150 --hours 4 --guests 50 --addon premium-mixers
  event-economics serve --addr :8080`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, .json or .hcl (default is $HOME/.event-economics.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")

	// Add subcommands
	rootCmd.AddCommand(staffingCmd)
	rootCmd.AddCommand(shoppingCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Warn("logging config rejected, keeping defaults", zap.Error(err))
	}
}

// format returns the effective output format
func format() string {
	if outputFormat != "" {
		return outputFormat
	}
	if f := config.Get().Output.DefaultFormat; f != "" {
		return f
	}
	return "cli"
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "event-economics version %s\n", Version)
	},
}
