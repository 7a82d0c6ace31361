package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). Every input and
// output location the pipeline touches is an explicit field here; no
// stage resolves paths on its own.
type Config struct {
	Timezone string         `yaml:"timezone"`
	Paths    PathsConfig    `yaml:"paths"`
	Forecast ForecastConfig `yaml:"forecast"`
	Infeed   InfeedConfig   `yaml:"infeed"`
	Invoice  InvoiceConfig  `yaml:"invoice"`
	Report   ReportConfig   `yaml:"report"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

type PathsConfig struct {
	// Source data directories (VPP + exchange + DSO exports).
	MeasuredInfeedDir string `yaml:"measured_infeed_dir"`
	ForecastSourceDir string `yaml:"forecast_source_dir"`
	TechnicalDataDir  string `yaml:"technical_data_dir"`
	ContractDataDir   string `yaml:"contract_data_dir"`
	RedispatchDir     string `yaml:"redispatch_dir"`
	PrivateTradesFile string `yaml:"private_trades_file"`
	PublicTradesFile  string `yaml:"public_trades_file"`

	// OutputDir holds every artifact the stages write; ArchiveFile is the
	// SQLite run archive.
	OutputDir   string `yaml:"output_dir"`
	ArchiveFile string `yaml:"archive_file"`
}

type ForecastConfig struct {
	// DeliveryDay is the day the forecast run covers, formatted 2006-01-02.
	DeliveryDay string `yaml:"delivery_day"`
}

type InfeedConfig struct {
	// MinSamplesPerBucket drops 15-minute buckets with fewer raw
	// measurements; single-sample buckets would skew reconciliation.
	MinSamplesPerBucket int `yaml:"min_samples_per_bucket"`
	// AlignCalendar shifts measured dates onto the forecast's delivery day
	// before the join. Kept toggleable because the alignment anchors on
	// first records only and breaks on multi-day inputs.
	AlignCalendar bool `yaml:"align_calendar"`
}

type InvoiceConfig struct {
	VATRate       float64 `yaml:"vat_rate"`
	WindPriceEUR  float64 `yaml:"wind_price_eur_mwh"`
	SolarPriceEUR float64 `yaml:"solar_price_eur_mwh"`
	WindFeeEUR    float64 `yaml:"wind_fee_eur_mwh"`
	SolarFeeEUR   float64 `yaml:"solar_fee_eur_mwh"`
	RenderPDF     bool    `yaml:"render_pdf"`
}

type ReportConfig struct {
	DefaultMarketPrice  float64 `yaml:"default_market_price_eur_mwh"`
	ImbalancePenaltyEUR float64 `yaml:"imbalance_penalty_eur_mwh"`
	RenderXLSX          bool    `yaml:"render_xlsx"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given. Paths
// mirror the layout of the challenge data drop.
func Default() *Config {
	return &Config{
		Timezone: "Europe/Berlin",
		Paths: PathsConfig{
			MeasuredInfeedDir: "data/vpp/live_measured_infeed",
			ForecastSourceDir: "data/vpp/forecasts",
			TechnicalDataDir:  "data/vpp/technical_data",
			ContractDataDir:   "data/vpp/contract_data",
			RedispatchDir:     "data/distribution_system_operator/redispatch",
			PrivateTradesFile: "data/exchange/private_trades.csv",
			PublicTradesFile:  "data/exchange/public_trades.csv",
			OutputDir:         "output",
			ArchiveFile:       "output/runs.db",
		},
		Forecast: ForecastConfig{DeliveryDay: "2025-07-08"},
		Infeed: InfeedConfig{
			MinSamplesPerBucket: 3,
			AlignCalendar:       true,
		},
		Invoice: InvoiceConfig{
			VATRate:       0.19,
			WindPriceEUR:  45.0,
			SolarPriceEUR: 50.0,
			WindFeeEUR:    2.0,
			SolarFeeEUR:   2.5,
			RenderPDF:     true,
		},
		Report: ReportConfig{
			DefaultMarketPrice:  50.0,
			ImbalancePenaltyEUR: 50.0,
			RenderXLSX:          true,
		},
		Server: ServerConfig{Port: "8080"},
		Log:    LogConfig{Level: "info", Format: "console"},
	}
}

// Load reads, merges with defaults, and validates a config file.
// An empty path returns the validated defaults.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone invalid: %w", err)
	}
	if c.Forecast.DeliveryDay != "" {
		if _, err := time.Parse("2006-01-02", c.Forecast.DeliveryDay); err != nil {
			return fmt.Errorf("forecast.delivery_day invalid: %w", err)
		}
	}
	if c.Infeed.MinSamplesPerBucket < 1 {
		return errors.New("infeed.min_samples_per_bucket must be >= 1")
	}
	if c.Invoice.VATRate < 0 || c.Invoice.VATRate >= 1 {
		return errors.New("invoice.vat_rate must be in [0, 1)")
	}
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir is required")
	}
	return nil
}

// Location resolves the configured timezone. Validate guarantees this
// cannot fail after Load.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DeliveryDay parses the configured forecast day at midnight local time.
func (c *Config) DeliveryDay() (time.Time, error) {
	return time.ParseInLocation("2006-01-02", c.Forecast.DeliveryDay, c.Location())
}
