package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/KobeFor3ver/goatgames-daily-report/schema"
)

// Default values for configuration.
const (
	DefaultPrecision   = 2
	DefaultHTTPTimeout = 15 * time.Second
	DefaultCronSpec    = "0 9 * * *"
	DefaultChartURL    = "https://quickchart.io"
	DefaultImageHost   = "https://api.imgur.com"
)

// AsOfFormat is the accepted layout for the --as-of override.
const AsOfFormat = "2006-01-02"

// Destination is one chat channel the report fans out to.
type Destination struct {
	Name       string
	WebhookURL string
	Secret     string   // empty means the server enforces keyword/IP allowlisting instead
	Mobiles    []string // phone numbers to mention in the text message
	AtAll      bool
}

// Config holds the runtime configuration for a report run.
// This struct remains the "final, validated" config.
type Config struct {
	FeedURL        string
	AppIDs         []string
	GameIDs        []int
	TimeZone       int
	RevenueSharing int

	AsOf    time.Time
	Targets schema.Targets

	Destinations []Destination

	ChartURL      string
	ImageHostURL  string
	ImageClientID string

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	UseColors  bool
	Width      int // Terminal width override (0 = auto-detect)

	CronSpec    string
	HTTPTimeout time.Duration
	DryRun      bool
}

// DestinationRawInput is one destination entry from the YAML config file.
type DestinationRawInput struct {
	Name       string   `mapstructure:"name"`
	WebhookURL string   `mapstructure:"webhook-url"`
	Secret     string   `mapstructure:"secret"`
	Mobiles    []string `mapstructure:"mobiles"`
	AtAll      bool     `mapstructure:"at-all"`
}

// TargetsRawInput holds the monthly goals from the YAML config file.
type TargetsRawInput struct {
	Cost    float64 `mapstructure:"cost"`
	Install int64   `mapstructure:"install"`
	ROI7    float64 `mapstructure:"roi7"`
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	FeedURL        string   `mapstructure:"feed-url"`
	AppIDs         []string `mapstructure:"app-ids"`
	GameIDs        []int    `mapstructure:"game-ids"`
	TimeZone       int      `mapstructure:"time-zone"`
	RevenueSharing int      `mapstructure:"revenue-sharing"`

	AsOf string `mapstructure:"as-of"`

	Targets      TargetsRawInput       `mapstructure:"targets"`
	Destinations []DestinationRawInput `mapstructure:"destinations"`

	ChartURL      string `mapstructure:"chart-url"`
	ImageHostURL  string `mapstructure:"image-host-url"`
	ImageClientID string `mapstructure:"image-client-id"`

	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Color      string `mapstructure:"color"`
	Width      int    `mapstructure:"width"`

	CronSpec           string `mapstructure:"cron"`
	HTTPTimeoutSeconds int    `mapstructure:"http-timeout-seconds"`
	DryRun             bool   `mapstructure:"dry-run"`
}

// ProcessAndValidate turns raw input into the final validated Config.
// It applies defaults, parses the as-of override, and rejects inputs that
// would make a run meaningless (no feed URL, malformed destinations).
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if input.FeedURL == "" {
		return fmt.Errorf("feed-url is required")
	}
	cfg.FeedURL = input.FeedURL
	cfg.AppIDs = input.AppIDs
	cfg.GameIDs = input.GameIDs
	cfg.TimeZone = input.TimeZone
	cfg.RevenueSharing = input.RevenueSharing

	cfg.AsOf = time.Now()
	if input.AsOf != "" {
		t, err := time.Parse(AsOfFormat, input.AsOf)
		if err != nil {
			return fmt.Errorf("invalid as-of date %q: %w", input.AsOf, err)
		}
		cfg.AsOf = t
	}

	cfg.Targets = schema.Targets{
		Cost:    decimal.NewFromFloat(input.Targets.Cost),
		Install: input.Targets.Install,
		ROI7:    decimal.NewFromFloat(input.Targets.ROI7),
	}

	for i, d := range input.Destinations {
		if d.WebhookURL == "" {
			return fmt.Errorf("destination %d: webhook-url is required", i)
		}
		name := d.Name
		if name == "" {
			name = fmt.Sprintf("destination-%d", i)
		}
		cfg.Destinations = append(cfg.Destinations, Destination{
			Name:       name,
			WebhookURL: d.WebhookURL,
			Secret:     d.Secret,
			Mobiles:    d.Mobiles,
			AtAll:      d.AtAll,
		})
	}

	cfg.ChartURL = orDefault(input.ChartURL, DefaultChartURL)
	cfg.ImageHostURL = orDefault(input.ImageHostURL, DefaultImageHost)
	cfg.ImageClientID = input.ImageClientID

	out := schema.OutputMode(strings.ToLower(orDefault(input.Output, string(schema.TextOut))))
	if _, ok := schema.ValidOutputModes[out]; !ok {
		return fmt.Errorf("invalid output mode %q", input.Output)
	}
	cfg.Output = out
	cfg.OutputFile = input.OutputFile

	cfg.Precision = input.Precision
	if cfg.Precision < 1 {
		cfg.Precision = DefaultPrecision
	}
	if cfg.Precision > 4 {
		cfg.Precision = 4
	}

	useColors := true
	if input.Color != "" {
		v, err := ParseBoolString(input.Color)
		if err != nil {
			return err
		}
		useColors = v
	}
	cfg.UseColors = useColors
	cfg.Width = input.Width

	cfg.CronSpec = orDefault(input.CronSpec, DefaultCronSpec)
	cfg.HTTPTimeout = DefaultHTTPTimeout
	if input.HTTPTimeoutSeconds > 0 {
		cfg.HTTPTimeout = time.Duration(input.HTTPTimeoutSeconds) * time.Second
	}
	cfg.DryRun = input.DryRun

	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
