// Package cmd defines the command-line interface for goatreport.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KobeFor3ver/goatgames-daily-report/internal/contract"
	"github.com/KobeFor3ver/goatgames-daily-report/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("as-of", "", "Report anchor date in YYYY-MM-DD (default: today)")
	rootCmd.PersistentFlags().String("feed-url", "", "Base URL of the ad data feed")
	rootCmd.PersistentFlags().StringSlice("app-ids", nil, "App identifiers to include in the feed query")
	rootCmd.PersistentFlags().IntSlice("game-ids", nil, "Game identifiers to include in the feed query")
	rootCmd.PersistentFlags().Int("time-zone", 8, "Feed reporting timezone offset")
	rootCmd.PersistentFlags().Int("revenue-sharing", 1, "Feed revenue sharing mode")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for percentage columns")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Int("http-timeout-seconds", 0, "Timeout for feed, chart and webhook requests")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of sendCmd to Viper
	sendCmd.Flags().Bool("dry-run", false, "Print the rendered messages instead of delivering them")
	if err := viper.BindPFlags(sendCmd.Flags()); err != nil {
		contract.LogFatal("Error binding send flags", err)
	}

	// Bind all flags of watchCmd to Viper
	watchCmd.Flags().String("cron", contract.DefaultCronSpec, "Cron schedule for recurring delivery")
	if err := viper.BindPFlags(watchCmd.Flags()); err != nil {
		contract.LogFatal("Error binding watch flags", err)
	}
}
