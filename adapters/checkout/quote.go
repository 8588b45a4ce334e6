// Package checkout turns a booking into the charge parameters handed to the
// payment processor. The amount and application fee come verbatim from
// pricing.Calculate; nothing here recomputes a fee.
package checkout

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"event-economics/core/money"
	"event-economics/core/policy"
	"event-economics/core/pricing"
	"event-economics/core/types"
	"event-economics/internal/errors"
)

// Order is a booking ready for checkout
type Order struct {
	BookingID   string `json:"booking_id"`
	ClientID    string `json:"client_id"`
	BartenderID string `json:"bartender_id"`

	// DestinationAccount is the bartender's connected payout account
	DestinationAccount string `json:"destination_account"`

	HourlyRate    money.Cents `json:"hourly_rate_cents"`
	DurationHours float64     `json:"duration_hours"`
	GuestCount    int         `json:"guest_count"`
	AddonIDs      []string    `json:"addon_ids,omitempty"`
}

// Charge is what the checkout handler passes to the processor
type Charge struct {
	Amount         money.Cents       `json:"amount_cents"`
	ApplicationFee money.Cents       `json:"application_fee_cents"`
	Payout         money.Cents       `json:"payout_cents"`
	Currency       string            `json:"currency"`
	Destination    string            `json:"destination"`
	Description    string            `json:"description"`
	IdempotencyKey string            `json:"idempotency_key"`
	Metadata       map[string]string `json:"metadata"`
	Breakdown      types.PriceResult `json:"breakdown"`
}

// idempotency keys are stable per booking and amount so a retried checkout
// cannot create a second charge
var keyNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("event-economics/checkout"))

// Builder builds charges with one pricing policy and catalog
type Builder struct {
	pricing policy.Pricing
	catalog *pricing.Catalog
}

// NewBuilder creates a builder
func NewBuilder(p policy.Pricing, catalog *pricing.Catalog) *Builder {
	return &Builder{pricing: p, catalog: catalog}
}

// Build prices the order and assembles the charge
func (b *Builder) Build(o Order) (*Charge, error) {
	if strings.TrimSpace(o.BookingID) == "" {
		return nil, errors.InvalidInput("booking_id", "is required")
	}
	if strings.TrimSpace(o.BartenderID) == "" {
		return nil, errors.InvalidInput("bartender_id", "is required")
	}
	if strings.TrimSpace(o.DestinationAccount) == "" {
		return nil, errors.InvalidInput("destination_account", "bartender payment account not configured")
	}

	lines, err := b.catalog.Resolve(o.AddonIDs)
	if err != nil {
		return nil, err
	}
	res, err := pricing.Calculate(types.PriceRequest{
		HourlyRate:      o.HourlyRate,
		DurationHours:   o.DurationHours,
		GuestCount:      o.GuestCount,
		SelectedAddons:  lines,
		PlatformFeeRate: b.pricing.PlatformFeeRate,
	})
	if err != nil {
		return nil, err
	}

	currency := strings.ToLower(b.pricing.Currency)
	if currency == "" {
		currency = "usd"
	}

	return &Charge{
		Amount:         res.GrandTotal,
		ApplicationFee: res.PlatformFee,
		Payout:         res.BartenderPayout,
		Currency:       currency,
		Destination:    o.DestinationAccount,
		Description:    description(o, lines),
		IdempotencyKey: IdempotencyKey(o.BookingID, res.GrandTotal),
		Metadata: map[string]string{
			"booking_id":   o.BookingID,
			"client_id":    o.ClientID,
			"bartender_id": o.BartenderID,
		},
		Breakdown: res,
	}, nil
}

// IdempotencyKey derives the processor idempotency key for a booking amount
func IdempotencyKey(bookingID string, amount money.Cents) string {
	return uuid.NewSHA1(keyNamespace, []byte(fmt.Sprintf("%s:%d", bookingID, amount))).String()
}

func description(o Order, lines []types.AddonLine) string {
	desc := fmt.Sprintf("Professional bartending service: %v hours, %d guests", o.DurationHours, o.GuestCount)
	if len(lines) == 0 {
		return desc
	}
	names := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.Name != "" {
			names = append(names, l.Name)
		} else {
			names = append(names, l.ID)
		}
	}
	return desc + " + " + strings.Join(names, ", ")
}
