package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/masar-transit/masar/pkg/util"
	"gopkg.in/yaml.v3"
)

type FeedsConfig struct {
	// PrimaryArrivalsURL is the base URL of the primary live-arrivals feed.
	// The mode and station name are appended as path/query parameters.
	PrimaryArrivalsURL string `yaml:"primaryArrivalsURL" validate:"required,url"`

	// StationLookupURL resolves a station name to the scrape provider's
	// numeric station id.
	StationLookupURL string `yaml:"stationLookupURL" validate:"required,url"`

	// RawArrivalsURL is the scrape provider's form-encoded departures
	// endpoint, keyed by station id.
	RawArrivalsURL string `yaml:"rawArrivalsURL" validate:"required,url"`

	// TerminusRefinementURL maps an API destination string to the long-form
	// terminus for a bus line.
	TerminusRefinementURL string `yaml:"terminusRefinementURL" validate:"required,url"`

	TimeoutSeconds int `yaml:"timeoutSeconds" validate:"gte=0"`
}

type ReconcilerConfig struct {
	// MaxWaitMinutes is the wait budget - a matched arrival further away
	// than this declares the connection missed.
	MaxWaitMinutes int `yaml:"maxWaitMinutes" validate:"gte=0"`
}

type AppConfig struct {
	Feeds      FeedsConfig      `yaml:"feeds" validate:"required"`
	Reconciler ReconcilerConfig `yaml:"reconciler"`

	DefaultLanguage string `yaml:"defaultLanguage"`
}

var Config AppConfig

const (
	DefaultTimeoutSeconds = 15
	DefaultMaxWaitMinutes = 45
)

// Load reads the YAML config, validates it, and applies defaults plus any
// MASAR_* environment overrides.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}

	applyEnvironmentOverrides(&cfg)
	applyDefaults(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}

	Config = cfg

	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Feeds.TimeoutSeconds == 0 {
		cfg.Feeds.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if cfg.Reconciler.MaxWaitMinutes == 0 {
		cfg.Reconciler.MaxWaitMinutes = DefaultMaxWaitMinutes
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = "en"
	}
}

func applyEnvironmentOverrides(cfg *AppConfig) {
	env := util.GetEnvironmentVariables()

	if env["MASAR_FEEDS_PRIMARY_ARRIVALS_URL"] != "" {
		cfg.Feeds.PrimaryArrivalsURL = env["MASAR_FEEDS_PRIMARY_ARRIVALS_URL"]
	}
	if env["MASAR_FEEDS_STATION_LOOKUP_URL"] != "" {
		cfg.Feeds.StationLookupURL = env["MASAR_FEEDS_STATION_LOOKUP_URL"]
	}
	if env["MASAR_FEEDS_RAW_ARRIVALS_URL"] != "" {
		cfg.Feeds.RawArrivalsURL = env["MASAR_FEEDS_RAW_ARRIVALS_URL"]
	}
	if env["MASAR_FEEDS_TERMINUS_REFINEMENT_URL"] != "" {
		cfg.Feeds.TerminusRefinementURL = env["MASAR_FEEDS_TERMINUS_REFINEMENT_URL"]
	}
	if env["MASAR_DEFAULT_LANGUAGE"] != "" {
		cfg.DefaultLanguage = env["MASAR_DEFAULT_LANGUAGE"]
	}
}
