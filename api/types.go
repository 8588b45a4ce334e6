// Package api - Request and response types
package api

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"event-economics/adapters/tools"
	"event-economics/core/money"
	"event-economics/core/types"
)

// StaffingRequest is the body of POST /staffing
type StaffingRequest = types.StaffingRequest

// ConsumptionRequest is the body of POST /consumption
type ConsumptionRequest = types.ConsumptionRequest

// PriceRequest is the body of POST /price
type PriceRequest struct {
	// HourlyRate is the bartender's rate in major units (number or decimal string)
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	DurationHours float64         `json:"duration_hours"`
	GuestCount    int             `json:"guest_count"`

	// AddonIDs are resolved against the configured catalog
	AddonIDs []string `json:"addon_ids,omitempty"`
}

// CheckoutRequest is the body of POST /checkout/quote
type CheckoutRequest struct {
	BookingID          string          `json:"booking_id"`
	ClientID           string          `json:"client_id"`
	BartenderID        string          `json:"bartender_id"`
	DestinationAccount string          `json:"destination_account"`
	HourlyRate         decimal.Decimal `json:"hourly_rate"`
	DurationHours      float64         `json:"duration_hours"`
	GuestCount         int             `json:"guest_count"`
	AddonIDs           []string        `json:"addon_ids,omitempty"`
}

// StaffingResponse is the response of POST /staffing
type StaffingResponse struct {
	RequestID string               `json:"request_id"`
	Result    types.StaffingResult `json:"result"`
}

// ConsumptionResponse is the response of POST /consumption
type ConsumptionResponse struct {
	RequestID string                  `json:"request_id"`
	Result    types.ConsumptionResult `json:"result"`
}

// PriceLine is one add-on contribution
type PriceLine struct {
	ID     string      `json:"id"`
	Amount money.Value `json:"amount"`
}

// PriceResponse is the response of POST /price
type PriceResponse struct {
	RequestID       string      `json:"request_id"`
	ServiceSubtotal money.Value `json:"service_subtotal"`
	AddonSubtotal   money.Value `json:"addon_subtotal"`
	GrandTotal      money.Value `json:"grand_total"`
	PlatformFee     money.Value `json:"platform_fee"`
	BartenderPayout money.Value `json:"bartender_payout"`
	PlatformFeeRate float64     `json:"platform_fee_rate"`
	Lines           []PriceLine `json:"lines,omitempty"`
}

// CheckoutResponse wraps the charge parameters for the payment processor
type CheckoutResponse struct {
	RequestID      string            `json:"request_id"`
	AmountCents    int64             `json:"amount_cents"`
	FeeCents       int64             `json:"application_fee_cents"`
	PayoutCents    int64             `json:"payout_cents"`
	Currency       string            `json:"currency"`
	Destination    string            `json:"destination"`
	Description    string            `json:"description"`
	IdempotencyKey string            `json:"idempotency_key"`
	Metadata       map[string]string `json:"metadata"`
	Total          money.Value       `json:"total"`
}

// ToolResponse is the response of POST /tools/{name}
type ToolResponse struct {
	RequestID string          `json:"request_id"`
	Tool      string          `json:"tool"`
	Payload   json.RawMessage `json:"payload"`
}

// ToolListResponse is the response of GET /tools
type ToolListResponse struct {
	Tools []tools.Spec `json:"tools"`
}

// AddonResponse is one catalog entry
type AddonResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	UnitPrice money.Value `json:"unit_price"`
	Billing   string      `json:"billing"`
}

// ErrorBody describes a failed request
type ErrorBody struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse is returned for every non-2xx response
type ErrorResponse struct {
	RequestID string    `json:"request_id"`
	Error     ErrorBody `json:"error"`
}
