package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KobeFor3ver/goatgames-daily-report/internal/bidata"
	"github.com/KobeFor3ver/goatgames-daily-report/internal/chart"
	"github.com/KobeFor3ver/goatgames-daily-report/internal/contract"
	"github.com/KobeFor3ver/goatgames-daily-report/internal/imghost"
	"github.com/KobeFor3ver/goatgames-daily-report/internal/runner"
	"github.com/KobeFor3ver/goatgames-daily-report/schema"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "goatreport",
	Short:              "Build and deliver daily advertising performance reports.",
	Long:               `Goatreport pulls daily ad metrics, projects immature ROI cohorts, and delivers the report to chat groups.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".goatreport") // Name of config file (without extension)
		viper.SetConfigType("yaml")        // We'll use YAML format
		viper.AddConfigPath(".")           // Look in the current directory
		viper.AddConfigPath("$HOME")       // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("GOATREPORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("color", "yes")
	viper.SetDefault("time-zone", 8)
	viper.SetDefault("revenue-sharing", 1)
	viper.SetDefault("chart-url", contract.DefaultChartURL)
	viper.SetDefault("image-host-url", contract.DefaultImageHost)
	viper.SetDefault("cron", contract.DefaultCronSpec)
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and complex parsing.
	// This function now populates the global 'cfg' from 'input'.
	return contract.ProcessAndValidate(cfg, input)
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// newRunner wires the report pipeline against its production collaborators.
func newRunner(log *logrus.Entry) *runner.Runner {
	var chartOpts []chart.Option
	if cfg.Targets.ROI7.IsPositive() {
		chartOpts = append(chartOpts, chart.WithROIFloor(cfg.Targets.ROI7))
	}
	r := &runner.Runner{
		Source:  bidata.NewClient(cfg),
		Chart:   chart.NewRenderer(cfg.ChartURL, cfg.HTTPTimeout, chartOpts...),
		Factory: runner.NewDingTalkFactory(cfg.HTTPTimeout, log),
		Config:  cfg,
		Log:     log,
	}
	// No image host credentials means delivering the report without a chart.
	if cfg.ImageClientID != "" {
		r.Images = imghost.NewClient(cfg.ImageHostURL, cfg.ImageClientID, cfg.HTTPTimeout)
	}
	return r
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
