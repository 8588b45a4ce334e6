// Package policy holds the event economics policy: every ratio, rate and
// constant the calculators use, with named defaults.
//
// The policy is loaded once at process start and passed explicitly into
// each calculation. Calculators never read global state.
package policy

import (
	"math"

	"event-economics/internal/errors"
)

// Default staffing ratios. 75 guests per bartender is the compliance floor;
// 50 is the recommended service level.
const (
	DefaultMaxGuestsPerBartenderMinimum     = 75
	DefaultMaxGuestsPerBartenderRecommended = 50
)

// Default consumption constants
const (
	DefaultLightDrinksPerHour    = 1.0
	DefaultModerateDrinksPerHour = 1.5
	DefaultHeavyDrinksPerHour    = 2.0

	// DefaultServingsPerBottle is a 750ml bottle at ~1.5oz pours
	DefaultServingsPerBottle = 17
)

// DefaultPlatformFeeRate is the marketplace share of each booking
const DefaultPlatformFeeRate = 0.15

// Policy is the complete economics configuration
type Policy struct {
	Staffing    Staffing    `json:"staffing"`
	Consumption Consumption `json:"consumption"`
	Pricing     Pricing     `json:"pricing"`
}

// Staffing configures compliance ratios
type Staffing struct {
	// MaxGuestsPerBartenderMinimum is the most guests one bartender may
	// serve before the event is non-compliant
	MaxGuestsPerBartenderMinimum int `json:"max_guests_per_bartender_minimum"`

	// MaxGuestsPerBartenderRecommended is the target for good service
	MaxGuestsPerBartenderRecommended int `json:"max_guests_per_bartender_recommended"`
}

// DrinksPerHour is the per-guest hourly drink rate by intensity
type DrinksPerHour struct {
	Light    float64 `json:"light"`
	Moderate float64 `json:"moderate"`
	Heavy    float64 `json:"heavy"`
}

// SpiritShare is one spirit's fraction of the bottle mix
type SpiritShare struct {
	Spirit string  `json:"spirit"`
	Share  float64 `json:"share"`
}

// Consumption configures shopping-list estimation
type Consumption struct {
	DrinksPerHour     DrinksPerHour `json:"drinks_per_hour"`
	ServingsPerBottle int           `json:"servings_per_bottle"`

	// SpiritMix splits the bottle count across spirits; empty disables it
	SpiritMix []SpiritShare `json:"spirit_mix,omitempty"`
}

// Pricing configures price aggregation
type Pricing struct {
	PlatformFeeRate float64 `json:"platform_fee_rate"`
	Currency        string  `json:"currency"`
}

// Default returns the documented default policy
func Default() Policy {
	return Policy{
		Staffing:    DefaultStaffing(),
		Consumption: DefaultConsumption(),
		Pricing: Pricing{
			PlatformFeeRate: DefaultPlatformFeeRate,
			Currency:        "USD",
		},
	}
}

// DefaultStaffing returns the default staffing ratios
func DefaultStaffing() Staffing {
	return Staffing{
		MaxGuestsPerBartenderMinimum:     DefaultMaxGuestsPerBartenderMinimum,
		MaxGuestsPerBartenderRecommended: DefaultMaxGuestsPerBartenderRecommended,
	}
}

// DefaultConsumption returns the default consumption constants
func DefaultConsumption() Consumption {
	return Consumption{
		DrinksPerHour: DrinksPerHour{
			Light:    DefaultLightDrinksPerHour,
			Moderate: DefaultModerateDrinksPerHour,
			Heavy:    DefaultHeavyDrinksPerHour,
		},
		ServingsPerBottle: DefaultServingsPerBottle,
		SpiritMix: []SpiritShare{
			{Spirit: "vodka", Share: 0.40},
			{Spirit: "whiskey", Share: 0.20},
			{Spirit: "tequila", Share: 0.20},
			{Spirit: "gin", Share: 0.10},
			{Spirit: "rum", Share: 0.10},
		},
	}
}

// Validate checks the whole policy
func (p Policy) Validate() error {
	if err := p.Staffing.Validate(); err != nil {
		return err
	}
	if err := p.Consumption.Validate(); err != nil {
		return err
	}
	return p.Pricing.Validate()
}

// Validate checks the staffing ratios
func (s Staffing) Validate() error {
	if s.MaxGuestsPerBartenderMinimum <= 0 {
		return errors.InvalidInput("staffing.max_guests_per_bartender_minimum", "must be positive, got %d", s.MaxGuestsPerBartenderMinimum)
	}
	if s.MaxGuestsPerBartenderRecommended <= 0 {
		return errors.InvalidInput("staffing.max_guests_per_bartender_recommended", "must be positive, got %d", s.MaxGuestsPerBartenderRecommended)
	}
	// A looser recommendation than the legal floor would make recommended < minimum
	if s.MaxGuestsPerBartenderRecommended > s.MaxGuestsPerBartenderMinimum {
		return errors.InvalidInput("staffing.max_guests_per_bartender_recommended",
			"must not exceed the minimum ratio (%d > %d)", s.MaxGuestsPerBartenderRecommended, s.MaxGuestsPerBartenderMinimum)
	}
	return nil
}

// Validate checks the consumption constants
func (c Consumption) Validate() error {
	rates := []struct {
		name string
		rate float64
	}{
		{"light", c.DrinksPerHour.Light},
		{"moderate", c.DrinksPerHour.Moderate},
		{"heavy", c.DrinksPerHour.Heavy},
	}
	for _, r := range rates {
		if r.rate < 0 || math.IsNaN(r.rate) || math.IsInf(r.rate, 0) {
			return errors.InvalidInput("consumption.drinks_per_hour."+r.name, "must be a non-negative number, got %v", r.rate)
		}
	}
	if c.ServingsPerBottle <= 0 {
		return errors.InvalidInput("consumption.servings_per_bottle", "must be positive, got %d", c.ServingsPerBottle)
	}

	seen := make(map[string]bool, len(c.SpiritMix))
	for _, s := range c.SpiritMix {
		if s.Spirit == "" {
			return errors.InvalidInput("consumption.spirit_mix", "spirit name is required")
		}
		if seen[s.Spirit] {
			return errors.InvalidInput("consumption.spirit_mix", "duplicate spirit %q", s.Spirit)
		}
		seen[s.Spirit] = true
		if s.Share < 0 || s.Share > 1 || math.IsNaN(s.Share) {
			return errors.InvalidInput("consumption.spirit_mix", "share for %q must be in [0,1], got %v", s.Spirit, s.Share)
		}
	}
	return nil
}

// Validate checks the pricing settings
func (p Pricing) Validate() error {
	if p.PlatformFeeRate < 0 || p.PlatformFeeRate > 1 || math.IsNaN(p.PlatformFeeRate) {
		return errors.InvalidInput("pricing.platform_fee_rate", "must be in [0,1], got %v", p.PlatformFeeRate)
	}
	return nil
}
