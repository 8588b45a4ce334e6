package staffing

import (
	"testing"

	"event-economics/core/policy"
	"event-economics/core/types"
	"event-economics/internal/errors"
)

func TestCheck(t *testing.T) {
	p := policy.DefaultStaffing()

	tests := []struct {
		name          string
		guests        int
		staff         int
		wantMinimum   int
		wantRecommend int
		wantCompliant bool
	}{
		{name: "boundary compliant", guests: 75, staff: 1, wantMinimum: 1, wantRecommend: 2, wantCompliant: true},
		{name: "boundary exceeded", guests: 76, staff: 1, wantMinimum: 2, wantRecommend: 2, wantCompliant: false},
		{name: "no guests", guests: 0, staff: 0, wantMinimum: 0, wantRecommend: 0, wantCompliant: true},
		{name: "large wedding", guests: 300, staff: 4, wantMinimum: 4, wantRecommend: 6, wantCompliant: true},
		{name: "understaffed", guests: 151, staff: 2, wantMinimum: 3, wantRecommend: 4, wantCompliant: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Check(tt.guests, tt.staff, p)
			if err != nil {
				t.Fatalf("Check() error = %v", err)
			}
			if res.MinimumRequired != tt.wantMinimum {
				t.Errorf("MinimumRequired = %d, want %d", res.MinimumRequired, tt.wantMinimum)
			}
			if res.Recommended != tt.wantRecommend {
				t.Errorf("Recommended = %d, want %d", res.Recommended, tt.wantRecommend)
			}
			if res.IsCompliant != tt.wantCompliant {
				t.Errorf("IsCompliant = %v, want %v", res.IsCompliant, tt.wantCompliant)
			}
			if res.Message == "" {
				t.Error("Message is empty")
			}
		})
	}
}

func TestGuestsPerBartenderSentinel(t *testing.T) {
	res, err := Check(120, 0, policy.DefaultStaffing())
	if err != nil {
		t.Fatal(err)
	}
	if res.GuestsPerBartender != nil {
		t.Errorf("GuestsPerBartender = %v, want nil for zero staff", *res.GuestsPerBartender)
	}
	if res.IsCompliant {
		t.Error("120 guests with no staff must not be compliant")
	}

	res, err = Check(120, 3, policy.DefaultStaffing())
	if err != nil {
		t.Fatal(err)
	}
	if res.GuestsPerBartender == nil || *res.GuestsPerBartender != 40 {
		t.Errorf("GuestsPerBartender = %v, want 40", res.GuestsPerBartender)
	}
	if res.CurrentRatio != "1 bartender per 40 guests" {
		t.Errorf("CurrentRatio = %q", res.CurrentRatio)
	}
}

func TestMinimumMonotonicAndBelowRecommended(t *testing.T) {
	p := policy.DefaultStaffing()
	prev := 0
	for g := 0; g <= 1000; g++ {
		res, err := Check(g, 0, p)
		if err != nil {
			t.Fatal(err)
		}
		if res.MinimumRequired < prev {
			t.Fatalf("minimum decreased at %d guests: %d < %d", g, res.MinimumRequired, prev)
		}
		if res.MinimumRequired > res.Recommended {
			t.Fatalf("minimum %d exceeds recommended %d at %d guests", res.MinimumRequired, res.Recommended, g)
		}
		if res.MinimumRequired*p.MaxGuestsPerBartenderMinimum < g {
			t.Fatalf("minimum %d under-counts %d guests", res.MinimumRequired, g)
		}
		prev = res.MinimumRequired
	}
}

func TestCustomPolicy(t *testing.T) {
	p := policy.Staffing{MaxGuestsPerBartenderMinimum: 60, MaxGuestsPerBartenderRecommended: 60}
	res, err := CheckRequest(types.StaffingRequest{GuestCount: 61, PlannedStaff: 2}, p)
	if err != nil {
		t.Fatal(err)
	}
	if res.MinimumRequired != 2 || res.Recommended != 2 || !res.IsCompliant {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestCheckRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		guests int
		staff  int
		p      policy.Staffing
		field  string
	}{
		{"negative guests", -1, 1, policy.DefaultStaffing(), "guest_count"},
		{"negative staff", 10, -2, policy.DefaultStaffing(), "planned_staff"},
		{"zero ratio", 10, 1, policy.Staffing{}, "staffing.max_guests_per_bartender_minimum"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Check(tt.guests, tt.staff, tt.p)
			e, ok := errors.As(err)
			if !ok || e.Type != errors.TypeInput {
				t.Fatalf("Check() error = %v, want invalid input", err)
			}
			if e.Field != tt.field {
				t.Errorf("Field = %q, want %q", e.Field, tt.field)
			}
		})
	}
}
