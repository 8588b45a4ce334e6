// Package staffing checks bartender headcount against the staffing ratio policy.
package staffing

import (
	"fmt"

	"event-economics/core/policy"
	"event-economics/core/types"
	"event-economics/internal/errors"
)

// Check computes minimum and recommended bartender counts for guestCount and
// whether plannedStaff meets the minimum.
func Check(guestCount, plannedStaff int, p policy.Staffing) (types.StaffingResult, error) {
	if guestCount < 0 {
		return types.StaffingResult{}, errors.InvalidInput("guest_count", "must not be negative, got %d", guestCount)
	}
	if plannedStaff < 0 {
		return types.StaffingResult{}, errors.InvalidInput("planned_staff", "must not be negative, got %d", plannedStaff)
	}
	if err := p.Validate(); err != nil {
		return types.StaffingResult{}, err
	}

	res := types.StaffingResult{
		MinimumRequired: ceilDiv(guestCount, p.MaxGuestsPerBartenderMinimum),
		Recommended:     ceilDiv(guestCount, p.MaxGuestsPerBartenderRecommended),
	}
	res.IsCompliant = plannedStaff >= res.MinimumRequired

	if plannedStaff > 0 {
		ratio := float64(guestCount) / float64(plannedStaff)
		res.GuestsPerBartender = &ratio
		res.CurrentRatio = fmt.Sprintf("1 bartender per %d guests", ceilDiv(guestCount, plannedStaff))
	} else {
		res.CurrentRatio = "no bartenders planned"
	}
	res.Message = message(guestCount, plannedStaff, res)

	return res, nil
}

// CheckRequest is Check for a request value
func CheckRequest(req types.StaffingRequest, p policy.Staffing) (types.StaffingResult, error) {
	return Check(req.GuestCount, req.PlannedStaff, p)
}

func message(guests, planned int, res types.StaffingResult) string {
	switch {
	case !res.IsCompliant:
		return fmt.Sprintf("NOT COMPLIANT. You must have at least %d %s for %d guests.",
			res.MinimumRequired, plural(res.MinimumRequired), guests)
	case res.Recommended > planned:
		return fmt.Sprintf("Compliant. However, we recommend %d %s for optimal service.",
			res.Recommended, plural(res.Recommended))
	default:
		return "Compliant. Staffing meets the recommended level."
	}
}

func plural(n int) string {
	if n == 1 {
		return "bartender"
	}
	return "bartenders"
}

// ceilDiv is ceil(a/b) for a >= 0, b > 0
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}
