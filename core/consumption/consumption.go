// Package consumption estimates drink servings and bottle counts for an event.
package consumption

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"event-economics/core/policy"
	"event-economics/core/types"
	"event-economics/internal/errors"
)

// Estimate computes total servings and the bottles needed to cover them.
// Bottle counts are always rounded up.
func Estimate(guestCount int, durationHours float64, intensity types.Intensity, p policy.Consumption) (types.ConsumptionResult, error) {
	if guestCount < 0 {
		return types.ConsumptionResult{}, errors.InvalidInput("guest_count", "must not be negative, got %d", guestCount)
	}
	if durationHours <= 0 || math.IsNaN(durationHours) || math.IsInf(durationHours, 0) {
		return types.ConsumptionResult{}, errors.InvalidInput("duration_hours", "must be a positive number of hours, got %v", durationHours)
	}
	rate, ok := DrinksPerHour(p.DrinksPerHour, intensity)
	if !ok {
		return types.ConsumptionResult{}, errors.InvalidInput("intensity", "must be one of light, moderate, heavy; got %q", intensity)
	}
	if err := p.Validate(); err != nil {
		return types.ConsumptionResult{}, err
	}

	servings := decimal.NewFromInt(int64(guestCount)).
		Mul(decimal.NewFromFloat(durationHours)).
		Mul(decimal.NewFromFloat(rate))
	bottles := int(servings.Div(decimal.NewFromInt(int64(p.ServingsPerBottle))).Ceil().IntPart())

	return types.ConsumptionResult{
		TotalServings: servings.InexactFloat64(),
		BottlesNeeded: bottles,
		Breakdown: fmt.Sprintf("For %d guests over %s hours (%s drinking), approximately %d bottles (750ml) needed.",
			guestCount, decimal.NewFromFloat(durationHours).String(), intensity, bottles),
		SpiritMix: AllocateSpirits(bottles, p.SpiritMix),
	}, nil
}

// EstimateRequest is Estimate for a request value
func EstimateRequest(req types.ConsumptionRequest, p policy.Consumption) (types.ConsumptionResult, error) {
	return Estimate(req.GuestCount, req.DurationHours, req.Intensity, p)
}

// DrinksPerHour returns the configured rate for a tier. ok is false for an
// unrecognised intensity.
func DrinksPerHour(rates policy.DrinksPerHour, intensity types.Intensity) (rate float64, ok bool) {
	switch intensity {
	case types.IntensityLight:
		return rates.Light, true
	case types.IntensityModerate:
		return rates.Moderate, true
	case types.IntensityHeavy:
		return rates.Heavy, true
	default:
		return 0, false
	}
}

// AllocateSpirits splits bottles across the mix. Each share is rounded up,
// so the allocations sum to at least bottles when the shares cover the mix.
func AllocateSpirits(bottles int, mix []policy.SpiritShare) []types.SpiritAllocation {
	if len(mix) == 0 || bottles == 0 {
		return nil
	}
	total := decimal.NewFromInt(int64(bottles))
	out := make([]types.SpiritAllocation, 0, len(mix))
	for _, s := range mix {
		n := total.Mul(decimal.NewFromFloat(s.Share)).Ceil().IntPart()
		out = append(out, types.SpiritAllocation{
			Spirit:  s.Spirit,
			Share:   s.Share,
			Bottles: int(n),
		})
	}
	return out
}
