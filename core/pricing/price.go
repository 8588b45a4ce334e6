// Package pricing aggregates a booking's charge: bartender service time,
// selected add-ons and the platform fee.
//
// Calculate is the only place a booking total is computed. Checkout and the
// booking wizard must call it rather than recompute a fee inline.
package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	"event-economics/core/money"
	"event-economics/core/types"
	"event-economics/internal/errors"
)

// Calculate computes the price breakdown for req.
//
// Rounding happens half away from zero at three points only: the service
// subtotal, the add-on subtotal and the platform fee. Per-guest add-on
// products are summed unrounded. Amounts that do not fit in money.Cents are
// rejected, never wrapped.
func Calculate(req types.PriceRequest) (types.PriceResult, error) {
	if err := validate(req); err != nil {
		return types.PriceResult{}, err
	}

	hours := decimal.NewFromFloat(req.DurationHours)
	service, err := money.Round(req.HourlyRate.Decimal().Mul(hours))
	if err != nil {
		return types.PriceResult{}, errors.InvalidInput("hourly_rate", "service subtotal for %s over %v hours: %v", req.HourlyRate, req.DurationHours, err)
	}

	guests := decimal.NewFromInt(int64(req.GuestCount))
	addonSum := decimal.Zero
	lines := make([]types.PriceLine, 0, len(req.SelectedAddons))
	for _, a := range req.SelectedAddons {
		contribution := a.UnitPrice.Decimal()
		if a.BillingUnit == types.BillingPerGuest {
			contribution = contribution.Mul(guests)
		}
		amount, err := money.Round(contribution)
		if err != nil {
			return types.PriceResult{}, errors.InvalidInput("selected_addons", "add-on %q for %d guests: %v", a.ID, req.GuestCount, err)
		}
		addonSum = addonSum.Add(contribution)
		lines = append(lines, types.PriceLine{ID: a.ID, Amount: amount})
	}
	addons, err := money.Round(addonSum)
	if err != nil {
		return types.PriceResult{}, errors.InvalidInput("selected_addons", "add-on subtotal: %v", err)
	}

	total, err := money.Round(service.Decimal().Add(addons.Decimal()))
	if err != nil {
		return types.PriceResult{}, errors.InvalidInput("grand_total", "service plus add-ons: %v", err)
	}
	// rate is in [0,1] so the fee never exceeds the total
	fee, err := money.Round(total.Decimal().Mul(decimal.NewFromFloat(req.PlatformFeeRate)))
	if err != nil {
		return types.PriceResult{}, errors.Internal("platform fee", err)
	}

	return types.PriceResult{
		ServiceSubtotal: service,
		AddonSubtotal:   addons,
		GrandTotal:      total,
		PlatformFee:     fee,
		BartenderPayout: total - fee,
		Lines:           lines,
	}, nil
}

func validate(req types.PriceRequest) error {
	if req.HourlyRate < 0 {
		return errors.InvalidInput("hourly_rate", "must not be negative, got %s", req.HourlyRate)
	}
	if req.DurationHours <= 0 || math.IsNaN(req.DurationHours) || math.IsInf(req.DurationHours, 0) {
		return errors.InvalidInput("duration_hours", "must be a positive number of hours, got %v", req.DurationHours)
	}
	if req.GuestCount < 0 {
		return errors.InvalidInput("guest_count", "must not be negative, got %d", req.GuestCount)
	}
	if req.PlatformFeeRate < 0 || req.PlatformFeeRate > 1 || math.IsNaN(req.PlatformFeeRate) {
		return errors.InvalidInput("platform_fee_rate", "must be in [0,1], got %v", req.PlatformFeeRate)
	}

	seen := make(map[string]bool, len(req.SelectedAddons))
	for _, a := range req.SelectedAddons {
		if a.ID == "" {
			return errors.InvalidInput("selected_addons", "add-on id is required")
		}
		if seen[a.ID] {
			return errors.InvalidInput("selected_addons", "duplicate add-on %q", a.ID)
		}
		seen[a.ID] = true
		if a.UnitPrice < 0 {
			return errors.InvalidInput("selected_addons", "add-on %q has negative price %s", a.ID, a.UnitPrice)
		}
		if !a.BillingUnit.IsValid() {
			return errors.InvalidInput("selected_addons", "add-on %q has unknown billing unit %q", a.ID, a.BillingUnit)
		}
	}
	return nil
}
