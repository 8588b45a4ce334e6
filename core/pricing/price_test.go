package pricing

import (
	"testing"

	"event-economics/core/money"
	"event-economics/core/types"
	"event-economics/internal/errors"
)

func TestCalculateBookingExample(t *testing.T) {
	res, err := Calculate(types.PriceRequest{
		HourlyRate:    15000,
		DurationHours: 4,
		GuestCount:    50,
		SelectedAddons: []types.AddonLine{
			{ID: "premium-mixers", UnitPrice: 450, BillingUnit: types.BillingPerGuest},
		},
		PlatformFeeRate: 0.15,
	})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	checks := []struct {
		name string
		got  money.Cents
		want money.Cents
	}{
		{"ServiceSubtotal", res.ServiceSubtotal, 60000},
		{"AddonSubtotal", res.AddonSubtotal, 22500},
		{"GrandTotal", res.GrandTotal, 82500},
		{"PlatformFee", res.PlatformFee, 12375},
		{"BartenderPayout", res.BartenderPayout, 70125},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
	if len(res.Lines) != 1 || res.Lines[0].Amount != 22500 {
		t.Errorf("Lines = %+v", res.Lines)
	}
}

func TestCalculateWithoutAddons(t *testing.T) {
	res, err := Calculate(types.PriceRequest{
		HourlyRate:      9500,
		DurationHours:   3.5,
		GuestCount:      40,
		PlatformFeeRate: 0.15,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.AddonSubtotal != 0 {
		t.Errorf("AddonSubtotal = %s, want 0", res.AddonSubtotal)
	}
	if res.GrandTotal != res.ServiceSubtotal {
		t.Errorf("GrandTotal %s != ServiceSubtotal %s", res.GrandTotal, res.ServiceSubtotal)
	}
	if res.ServiceSubtotal != 33250 {
		t.Errorf("ServiceSubtotal = %s, want $332.50", res.ServiceSubtotal)
	}
}

func TestCalculateRoundsHalfAwayFromZero(t *testing.T) {
	// $33.33/h for 1.5h = 4999.5 cents -> 5000
	res, err := Calculate(types.PriceRequest{
		HourlyRate:      3333,
		DurationHours:   1.5,
		PlatformFeeRate: 0.15,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.ServiceSubtotal != 5000 {
		t.Errorf("ServiceSubtotal = %d, want 5000", res.ServiceSubtotal)
	}
	// 5000 * 0.15 = 750 exactly
	if res.PlatformFee != 750 {
		t.Errorf("PlatformFee = %d, want 750", res.PlatformFee)
	}

	// 1001 * 0.15 = 150.15 -> 150; 1010 * 0.15 = 151.5 -> 152
	res, _ = Calculate(types.PriceRequest{HourlyRate: 1010, DurationHours: 1, PlatformFeeRate: 0.15})
	if res.PlatformFee != 152 {
		t.Errorf("PlatformFee = %d, want 152", res.PlatformFee)
	}
}

func TestFeeAndPayoutSumToTotal(t *testing.T) {
	addons := []types.AddonLine{
		{ID: "mixers", UnitPrice: 333, BillingUnit: types.BillingPerGuest},
		{ID: "ice", UnitPrice: 7499, BillingUnit: types.BillingFlat},
	}
	for _, rate := range []money.Cents{0, 1, 4999, 12345, 20000} {
		for _, hours := range []float64{0.5, 1, 2.25, 3.33, 6} {
			for _, guests := range []int{0, 1, 37, 150} {
				for _, fee := range []float64{0, 0.1, 0.15, 0.175, 1} {
					res, err := Calculate(types.PriceRequest{
						HourlyRate: rate, DurationHours: hours, GuestCount: guests,
						SelectedAddons: addons, PlatformFeeRate: fee,
					})
					if err != nil {
						t.Fatal(err)
					}
					if res.PlatformFee+res.BartenderPayout != res.GrandTotal {
						t.Fatalf("fee %d + payout %d != total %d", res.PlatformFee, res.BartenderPayout, res.GrandTotal)
					}
					if res.ServiceSubtotal+res.AddonSubtotal != res.GrandTotal {
						t.Fatalf("subtotals do not add up: %+v", res)
					}
					if res.PlatformFee < 0 || res.BartenderPayout < 0 {
						t.Fatalf("negative amount: %+v", res)
					}
				}
			}
		}
	}
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	valid := func() types.PriceRequest {
		return types.PriceRequest{HourlyRate: 15000, DurationHours: 4, GuestCount: 50, PlatformFeeRate: 0.15}
	}
	tests := []struct {
		name   string
		mutate func(r *types.PriceRequest)
		field  string
	}{
		{"fee above one", func(r *types.PriceRequest) { r.PlatformFeeRate = 1.5 }, "platform_fee_rate"},
		{"negative fee", func(r *types.PriceRequest) { r.PlatformFeeRate = -0.01 }, "platform_fee_rate"},
		{"negative rate", func(r *types.PriceRequest) { r.HourlyRate = -1 }, "hourly_rate"},
		{"zero duration", func(r *types.PriceRequest) { r.DurationHours = 0 }, "duration_hours"},
		{"negative guests", func(r *types.PriceRequest) { r.GuestCount = -1 }, "guest_count"},
		{"duplicate addon", func(r *types.PriceRequest) {
			r.SelectedAddons = []types.AddonLine{
				{ID: "mixers", UnitPrice: 450, BillingUnit: types.BillingPerGuest},
				{ID: "mixers", UnitPrice: 500, BillingUnit: types.BillingFlat},
			}
		}, "selected_addons"},
		{"bad billing unit", func(r *types.PriceRequest) {
			r.SelectedAddons = []types.AddonLine{{ID: "x", UnitPrice: 1, BillingUnit: "hourly"}}
		}, "selected_addons"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			_, err := Calculate(req)
			e, ok := errors.As(err)
			if !ok || e.Type != errors.TypeInput {
				t.Fatalf("Calculate() error = %v, want invalid input", err)
			}
			if e.Field != tt.field {
				t.Errorf("Field = %q, want %q", e.Field, tt.field)
			}
		})
	}
}

func TestCalculateRejectsAmountsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		req   types.PriceRequest
		field string
	}{
		{
			name:  "service subtotal",
			req:   types.PriceRequest{HourlyRate: 1 << 62, DurationHours: 4, PlatformFeeRate: 0.15},
			field: "hourly_rate",
		},
		{
			name: "per guest add-on",
			req: types.PriceRequest{
				HourlyRate: 15000, DurationHours: 4, GuestCount: 1 << 40, PlatformFeeRate: 0.15,
				SelectedAddons: []types.AddonLine{{ID: "premium-mixers", UnitPrice: 1 << 30, BillingUnit: types.BillingPerGuest}},
			},
			field: "selected_addons",
		},
		{
			name: "add-on sum",
			req: types.PriceRequest{
				HourlyRate: 15000, DurationHours: 1, PlatformFeeRate: 0.15,
				SelectedAddons: []types.AddonLine{
					{ID: "a", UnitPrice: money.MaxCents, BillingUnit: types.BillingFlat},
					{ID: "b", UnitPrice: money.MaxCents, BillingUnit: types.BillingFlat},
				},
			},
			field: "selected_addons",
		},
		{
			name: "grand total",
			req: types.PriceRequest{
				HourlyRate: money.MaxCents, DurationHours: 1, PlatformFeeRate: 0.15,
				SelectedAddons: []types.AddonLine{{ID: "a", UnitPrice: 1, BillingUnit: types.BillingFlat}},
			},
			field: "grand_total",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Calculate(tt.req)
			e, ok := errors.As(err)
			if !ok || e.Type != errors.TypeInput || e.Field != tt.field {
				t.Fatalf("Calculate() = %+v, %v, want invalid input on %s", res, err, tt.field)
			}
		})
	}
}

func TestCalculateAtMaximumAmount(t *testing.T) {
	res, err := Calculate(types.PriceRequest{HourlyRate: money.MaxCents, DurationHours: 1, PlatformFeeRate: 0.15})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if res.GrandTotal != money.MaxCents || res.PlatformFee+res.BartenderPayout != res.GrandTotal {
		t.Errorf("result = %+v", res)
	}
}
