package checkout

import (
	"testing"

	"event-economics/core/policy"
	"event-economics/core/pricing"
	"event-economics/core/types"
	"event-economics/internal/errors"
)

func newBuilder(t *testing.T) *Builder {
	t.Helper()
	catalog, err := pricing.NewCatalog([]types.AddonLine{
		{ID: "premium-mixers", Name: "Premium Mixer Package", UnitPrice: 450, BillingUnit: types.BillingPerGuest},
	})
	if err != nil {
		t.Fatal(err)
	}
	return NewBuilder(policy.Default().Pricing, catalog)
}

func validOrder() Order {
	return Order{
		BookingID:          "bk_123",
		ClientID:           "cl_9",
		BartenderID:        "bt_7",
		DestinationAccount: "acct_1Nv0",
		HourlyRate:         15000,
		DurationHours:      4,
		GuestCount:         50,
		AddonIDs:           []string{"premium-mixers"},
	}
}

func TestBuildUsesCalculatorTotals(t *testing.T) {
	charge, err := newBuilder(t).Build(validOrder())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if charge.Amount != 82500 {
		t.Errorf("Amount = %d, want 82500", charge.Amount)
	}
	if charge.ApplicationFee != 12375 {
		t.Errorf("ApplicationFee = %d, want 12375", charge.ApplicationFee)
	}
	if charge.Payout != 70125 {
		t.Errorf("Payout = %d, want 70125", charge.Payout)
	}
	if charge.Amount != charge.Breakdown.GrandTotal || charge.ApplicationFee != charge.Breakdown.PlatformFee {
		t.Error("charge amounts differ from the price breakdown")
	}
	if charge.Currency != "usd" || charge.Destination != "acct_1Nv0" {
		t.Errorf("charge = %+v", charge)
	}
	if charge.Metadata["booking_id"] != "bk_123" || charge.Metadata["bartender_id"] != "bt_7" {
		t.Errorf("Metadata = %v", charge.Metadata)
	}
	if charge.Description != "Professional bartending service: 4 hours, 50 guests + Premium Mixer Package" {
		t.Errorf("Description = %q", charge.Description)
	}
}

func TestIdempotencyKeyStable(t *testing.T) {
	b := newBuilder(t)
	first, _ := b.Build(validOrder())
	second, _ := b.Build(validOrder())
	if first.IdempotencyKey != second.IdempotencyKey {
		t.Error("same booking produced different idempotency keys")
	}

	changed := validOrder()
	changed.GuestCount = 60
	third, _ := b.Build(changed)
	if third.IdempotencyKey == first.IdempotencyKey {
		t.Error("different amount reused the idempotency key")
	}
}

func TestBuildRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *Order)
		field  string
	}{
		{"missing booking", func(o *Order) { o.BookingID = "" }, "booking_id"},
		{"missing bartender", func(o *Order) { o.BartenderID = " " }, "bartender_id"},
		{"no payout account", func(o *Order) { o.DestinationAccount = "" }, "destination_account"},
		{"unknown addon", func(o *Order) { o.AddonIDs = []string{"fog-machine"} }, "selected_addons"},
		{"zero hours", func(o *Order) { o.DurationHours = 0 }, "duration_hours"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOrder()
			tt.mutate(&o)
			_, err := newBuilder(t).Build(o)
			e, ok := errors.As(err)
			if !ok || e.Type != errors.TypeInput || e.Field != tt.field {
				t.Errorf("Build() error = %v, want invalid input on %s", err, tt.field)
			}
		})
	}
}
