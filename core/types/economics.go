// Package types defines the event economics data model.
// This package contains NO business logic - only type definitions.
package types

import "event-economics/core/money"

// Intensity is the expected drinking level of an event
type Intensity string

const (
	IntensityLight    Intensity = "light"
	IntensityModerate Intensity = "moderate"
	IntensityHeavy    Intensity = "heavy"
)

// Intensities lists the recognised tiers in ascending order
var Intensities = []Intensity{IntensityLight, IntensityModerate, IntensityHeavy}

// String returns the string representation
func (i Intensity) String() string {
	return string(i)
}

// IsValid checks if the intensity is a recognised tier
func (i Intensity) IsValid() bool {
	switch i {
	case IntensityLight, IntensityModerate, IntensityHeavy:
		return true
	default:
		return false
	}
}

// BillingUnit controls how an add-on price is multiplied
type BillingUnit string

const (
	BillingFlat     BillingUnit = "flat"
	BillingPerGuest BillingUnit = "per_guest"
)

// IsValid checks if the billing unit is known
func (b BillingUnit) IsValid() bool {
	return b == BillingFlat || b == BillingPerGuest
}

// StaffingRequest is the input to a staffing compliance check
type StaffingRequest struct {
	GuestCount   int `json:"guest_count"`
	PlannedStaff int `json:"planned_staff"`
}

// StaffingResult is the outcome of a staffing compliance check
type StaffingResult struct {
	MinimumRequired int  `json:"minimum_required"`
	Recommended     int  `json:"recommended"`
	IsCompliant     bool `json:"is_compliant"`

	// GuestsPerBartender is nil when no staff is planned
	GuestsPerBartender *float64 `json:"guests_per_bartender"`

	// CurrentRatio is a display string, e.g. "1 bartender per 50 guests"
	CurrentRatio string `json:"current_ratio"`

	// Message is the user-facing compliance verdict
	Message string `json:"message"`
}

// ConsumptionRequest is the input to a shopping-list estimate
type ConsumptionRequest struct {
	GuestCount    int       `json:"guest_count"`
	DurationHours float64   `json:"duration_hours"`
	Intensity     Intensity `json:"intensity"`
}

// SpiritAllocation is the bottle count for one spirit in the mix
type SpiritAllocation struct {
	Spirit  string  `json:"spirit"`
	Share   float64 `json:"share"`
	Bottles int     `json:"bottles"`
}

// ConsumptionResult is the outcome of a shopping-list estimate
type ConsumptionResult struct {
	TotalServings float64            `json:"total_servings"`
	BottlesNeeded int                `json:"bottles_needed"`
	Breakdown     string             `json:"breakdown"`
	SpiritMix     []SpiritAllocation `json:"spirit_mix,omitempty"`
}

// AddonLine is a catalog add-on selected for a booking
type AddonLine struct {
	ID          string      `json:"id"`
	Name        string      `json:"name,omitempty"`
	UnitPrice   money.Cents `json:"unit_price_cents"`
	BillingUnit BillingUnit `json:"billing_unit"`
}

// PriceRequest is the input to price aggregation
type PriceRequest struct {
	HourlyRate      money.Cents `json:"hourly_rate_cents"`
	DurationHours   float64     `json:"duration_hours"`
	GuestCount      int         `json:"guest_count"`
	SelectedAddons  []AddonLine `json:"selected_addons"`
	PlatformFeeRate float64     `json:"platform_fee_rate"`
}

// PriceLine is the contribution of one add-on to the addon subtotal
type PriceLine struct {
	ID     string      `json:"id"`
	Amount money.Cents `json:"amount_cents"`
}

// PriceResult is the authoritative charge breakdown for a booking.
// GrandTotal == ServiceSubtotal + AddonSubtotal and
// BartenderPayout == GrandTotal - PlatformFee always hold.
type PriceResult struct {
	ServiceSubtotal money.Cents `json:"service_subtotal_cents"`
	AddonSubtotal   money.Cents `json:"addon_subtotal_cents"`
	GrandTotal      money.Cents `json:"grand_total_cents"`
	PlatformFee     money.Cents `json:"platform_fee_cents"`
	BartenderPayout money.Cents `json:"bartender_payout_cents"`
	Lines           []PriceLine `json:"lines,omitempty"`
}

// ParseBillingUnit accepts the spellings used by forms and catalog rows
func ParseBillingUnit(s string) (BillingUnit, bool) {
	switch s {
	case "flat", "":
		return BillingFlat, true
	case "per_guest", "perGuest", "per-guest", "guest":
		return BillingPerGuest, true
	default:
		return BillingUnit(s), false
	}
}
