// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"event-economics/core/money"
	"event-economics/core/policy"
	"event-economics/core/pricing"
	"event-economics/core/types"
	"event-economics/internal/errors"
	"event-economics/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Economics holds every ratio and rate the calculators use
	Economics policy.Policy `json:"economics"`

	// Addons is the add-on catalog offered to clients
	Addons []AddonConfig `json:"addons"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// AddonConfig is one catalog row
type AddonConfig struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// UnitPrice is in major units ("4.50")
	UnitPrice decimal.Decimal `json:"unit_price"`

	// Billing is "flat" or "per_guest"
	Billing string `json:"billing"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// MetricsEnabled exposes GET /metrics
	MetricsEnabled bool `json:"metrics_enabled"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version:   "1.0",
		Economics: policy.Default(),
		Addons: []AddonConfig{
			{ID: "premium-mixers", Name: "Premium Mixer Package", UnitPrice: decimal.RequireFromString("4.50"), Billing: "per_guest"},
			{ID: "signature-menu", Name: "Signature Cocktail Menu Design", UnitPrice: decimal.RequireFromString("150.00"), Billing: "flat"},
			{ID: "glassware", Name: "Crystal Glassware Rental", UnitPrice: decimal.RequireFromString("2.25"), Billing: "per_guest"},
			{ID: "ice-service", Name: "Ice Delivery & Setup", UnitPrice: decimal.RequireFromString("75.00"), Billing: "flat"},
		},
		Server: ServerConfig{
			Addr:           ":8080",
			MetricsEnabled: true,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.event-economics.json
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".event-economics.json")
}

// Load loads configuration from a file. Files ending in .hcl are decoded
// as HCL, everything else as JSON. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("read config", err).WithContext("path", path)
	}

	var config *Config
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		config, err = parseHCL(data, path)
	} else {
		config, err = parseJSON(data)
	}
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Config("invalid config "+path, err)
	}
	return config, nil
}

func parseJSON(data []byte) (*Config, error) {
	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Config("decode json config", err)
	}
	return config, nil
}

// Validate checks the economics policy and the add-on catalog
func (c *Config) Validate() error {
	if err := c.Economics.Validate(); err != nil {
		return err
	}
	_, err := c.Catalog()
	return err
}

// Catalog builds the add-on catalog
func (c *Config) Catalog() (*pricing.Catalog, error) {
	lines := make([]types.AddonLine, 0, len(c.Addons))
	for _, a := range c.Addons {
		line, err := a.Line()
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return pricing.NewCatalog(lines)
}

// Line converts the row to a calculator add-on
func (a AddonConfig) Line() (types.AddonLine, error) {
	unit, ok := types.ParseBillingUnit(a.Billing)
	if !ok {
		return types.AddonLine{}, errors.InvalidInput("addons", "add-on %q has unknown billing %q", a.ID, a.Billing)
	}
	price, err := money.FromDecimal(a.UnitPrice)
	if err != nil {
		return types.AddonLine{}, errors.InvalidInput("addons", "add-on %q unit price: %v", a.ID, err)
	}
	return types.AddonLine{
		ID:          a.ID,
		Name:        a.Name,
		UnitPrice:   price,
		BillingUnit: unit,
	}, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
