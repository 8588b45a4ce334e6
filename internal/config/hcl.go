package config

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"event-economics/core/policy"
	"event-economics/internal/errors"
)

// hclFile mirrors Config for HCL decoding. Every attribute is optional and
// overrides the default only when present.
//
//	staffing {
//	  max_guests_per_bartender_minimum     = 75
//	  max_guests_per_bartender_recommended = 50
//	}
//	consumption {
//	  servings_per_bottle = 17
//	  drinks_per_hour     = { light = 1, moderate = 1.5, heavy = 2 }
//	  spirit "vodka" { share = 0.4 }
//	}
//	pricing { platform_fee_rate = 0.15 }
//	addon "premium-mixers" {
//	  name       = "Premium Mixer Package"
//	  unit_price = 4.50
//	  billing    = "per_guest"
//	}
type hclFile struct {
	Version     *string         `hcl:"version,optional"`
	Staffing    *hclStaffing    `hcl:"staffing,block"`
	Consumption *hclConsumption `hcl:"consumption,block"`
	Pricing     *hclPricing     `hcl:"pricing,block"`
	Addons      []hclAddon      `hcl:"addon,block"`
	Server      *hclServer      `hcl:"server,block"`
	Output      *hclOutput      `hcl:"output,block"`
	Logging     *hclLogging     `hcl:"logging,block"`
}

type hclStaffing struct {
	Minimum     *int `hcl:"max_guests_per_bartender_minimum,optional"`
	Recommended *int `hcl:"max_guests_per_bartender_recommended,optional"`
}

type hclConsumption struct {
	ServingsPerBottle *int               `hcl:"servings_per_bottle,optional"`
	DrinksPerHour     map[string]float64 `hcl:"drinks_per_hour,optional"`
	Spirits           []hclSpirit        `hcl:"spirit,block"`
}

type hclSpirit struct {
	Name  string  `hcl:"name,label"`
	Share float64 `hcl:"share"`
}

type hclPricing struct {
	PlatformFeeRate *float64 `hcl:"platform_fee_rate,optional"`
	Currency        *string  `hcl:"currency,optional"`
}

type hclAddon struct {
	ID        string  `hcl:"id,label"`
	Name      *string `hcl:"name,optional"`
	UnitPrice float64 `hcl:"unit_price"`
	Billing   *string `hcl:"billing,optional"`
}

type hclServer struct {
	Addr           *string `hcl:"addr,optional"`
	MetricsEnabled *bool   `hcl:"metrics_enabled,optional"`
}

type hclOutput struct {
	DefaultFormat *string `hcl:"default_format,optional"`
}

type hclLogging struct {
	Level       *string `hcl:"level,optional"`
	Format      *string `hcl:"format,optional"`
	Output      *string `hcl:"output,optional"`
	Development *bool   `hcl:"development,optional"`
}

func parseHCL(data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Config("parse hcl config", diags)
	}

	var f hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &f); diags.HasErrors() {
		return nil, errors.Config("decode hcl config", diags)
	}

	config := Default()
	setString(&config.Version, f.Version)
	if f.Staffing != nil {
		setInt(&config.Economics.Staffing.MaxGuestsPerBartenderMinimum, f.Staffing.Minimum)
		setInt(&config.Economics.Staffing.MaxGuestsPerBartenderRecommended, f.Staffing.Recommended)
	}
	if f.Consumption != nil {
		if err := applyConsumption(&config.Economics.Consumption, f.Consumption); err != nil {
			return nil, err
		}
	}
	if f.Pricing != nil {
		if f.Pricing.PlatformFeeRate != nil {
			config.Economics.Pricing.PlatformFeeRate = *f.Pricing.PlatformFeeRate
		}
		setString(&config.Economics.Pricing.Currency, f.Pricing.Currency)
	}
	if len(f.Addons) > 0 {
		config.Addons = make([]AddonConfig, 0, len(f.Addons))
		for _, a := range f.Addons {
			row := AddonConfig{
				ID:        a.ID,
				UnitPrice: decimal.NewFromFloat(a.UnitPrice),
				Billing:   "flat",
			}
			setString(&row.Name, a.Name)
			setString(&row.Billing, a.Billing)
			config.Addons = append(config.Addons, row)
		}
	}
	if f.Server != nil {
		setString(&config.Server.Addr, f.Server.Addr)
		setBool(&config.Server.MetricsEnabled, f.Server.MetricsEnabled)
	}
	if f.Output != nil {
		setString(&config.Output.DefaultFormat, f.Output.DefaultFormat)
	}
	if f.Logging != nil {
		setString(&config.Logging.Level, f.Logging.Level)
		setString(&config.Logging.Format, f.Logging.Format)
		setString(&config.Logging.Output, f.Logging.Output)
		setBool(&config.Logging.Development, f.Logging.Development)
	}
	return config, nil
}

func applyConsumption(c *policy.Consumption, h *hclConsumption) error {
	setInt(&c.ServingsPerBottle, h.ServingsPerBottle)
	for tier, rate := range h.DrinksPerHour {
		switch tier {
		case "light":
			c.DrinksPerHour.Light = rate
		case "moderate":
			c.DrinksPerHour.Moderate = rate
		case "heavy":
			c.DrinksPerHour.Heavy = rate
		default:
			return errors.InvalidInput("consumption.drinks_per_hour", "unknown drinking level %q", tier)
		}
	}
	if len(h.Spirits) > 0 {
		c.SpiritMix = make([]policy.SpiritShare, 0, len(h.Spirits))
		for _, s := range h.Spirits {
			c.SpiritMix = append(c.SpiritMix, policy.SpiritShare{Spirit: s.Name, Share: s.Share})
		}
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
