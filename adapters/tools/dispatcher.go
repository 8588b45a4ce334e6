// Package tools exposes the calculators as conversational-assistant tools.
// The dispatcher maps a tool name and its JSON arguments to one calculation
// and serializes the result as the tool response payload.
// It performs no calculation of its own.
package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"time"

	"go.uber.org/zap"

	"event-economics/core/consumption"
	"event-economics/core/money"
	"event-economics/core/policy"
	"event-economics/core/pricing"
	"event-economics/core/staffing"
	"event-economics/core/types"
	"event-economics/internal/errors"
)

// Tool names understood by the dispatcher
const (
	ToolCheckSafety          = "check_safety"
	ToolEstimateShoppingList = "estimate_shopping_list"
	ToolQuotePrice           = "quote_price"
	ToolGetUpsells           = "get_upsells"
)

// Spec describes a tool to the assistant
type Spec struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type handlerFunc func(ctx context.Context, args json.RawMessage) (interface{}, error)

type tool struct {
	spec    Spec
	handler handlerFunc
}

// Dispatcher routes tool calls to the calculators
type Dispatcher struct {
	policy  policy.Policy
	catalog *pricing.Catalog
	logger  *zap.Logger
	tools   map[string]tool
}

// NewDispatcher creates a dispatcher bound to one policy and catalog
func NewDispatcher(p policy.Policy, catalog *pricing.Catalog, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Dispatcher{
		policy:  p,
		catalog: catalog,
		logger:  logger,
	}
	d.tools = map[string]tool{
		ToolCheckSafety: {
			spec: Spec{ToolCheckSafety, "Check if enough bartenders are scheduled based on guest count (staffing ratio compliance)"},
			handler: d.checkSafety,
		},
		ToolEstimateShoppingList: {
			spec: Spec{ToolEstimateShoppingList, "Calculate how many bottles of alcohol to buy based on guest count, event duration and drinking level"},
			handler: d.estimateShoppingList,
		},
		ToolQuotePrice: {
			spec: Spec{ToolQuotePrice, "Quote the total price for a bartender booking including add-ons and the platform fee"},
			handler: d.quotePrice,
		},
		ToolGetUpsells: {
			spec: Spec{ToolGetUpsells, "Get available premium add-ons and service packages"},
			handler: d.getUpsells,
		},
	}
	return d
}

// Specs lists the available tools sorted by name
func (d *Dispatcher) Specs() []Spec {
	out := make([]Spec, 0, len(d.tools))
	for _, t := range d.tools {
		out = append(out, t.spec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Dispatch runs the named tool and returns its JSON payload
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args json.RawMessage) (json.RawMessage, error) {
	t, ok := d.tools[name]
	if !ok {
		return nil, errors.NotFound("tool", name)
	}

	start := time.Now()
	result, err := t.handler(ctx, args)
	if err != nil {
		d.logger.Info("tool call rejected",
			zap.String("tool", name),
			zap.Error(err),
		)
		return nil, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, errors.Internal("encode tool payload", err)
	}
	d.logger.Debug("tool call completed",
		zap.String("tool", name),
		zap.Duration("duration", time.Since(start)),
	)
	return payload, nil
}

func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(bytes.TrimSpace(args)) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return errors.InvalidInput("arguments", "malformed tool arguments: %v", err)
	}
	return nil
}

type safetyArgs struct {
	Guests     int `json:"guests"`
	Bartenders int `json:"bartenders"`
}

func (d *Dispatcher) checkSafety(_ context.Context, raw json.RawMessage) (interface{}, error) {
	var args safetyArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return staffing.Check(args.Guests, args.Bartenders, d.policy.Staffing)
}

type shoppingArgs struct {
	Guests        int     `json:"guests"`
	Hours         float64 `json:"hours"`
	DrinkingLevel string  `json:"drinking_level"`
}

// ShoppingPayload is the estimate_shopping_list response
type ShoppingPayload struct {
	types.ConsumptionResult
	Upsells []Upsell `json:"upsells"`
}

func (d *Dispatcher) estimateShoppingList(_ context.Context, raw json.RawMessage) (interface{}, error) {
	var args shoppingArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	res, err := consumption.Estimate(args.Guests, args.Hours, types.Intensity(args.DrinkingLevel), d.policy.Consumption)
	if err != nil {
		return nil, err
	}
	return ShoppingPayload{ConsumptionResult: res, Upsells: d.upsells()}, nil
}

type quoteArgs struct {
	HourlyRate float64  `json:"hourly_rate"`
	Hours      float64  `json:"hours"`
	Guests     int      `json:"guests"`
	Addons     []string `json:"addons"`
}

// QuotePayload is the quote_price response
type QuotePayload struct {
	ServiceSubtotal money.Value `json:"service_subtotal"`
	AddonSubtotal   money.Value `json:"addon_subtotal"`
	GrandTotal      money.Value `json:"grand_total"`
	PlatformFee     money.Value `json:"platform_fee"`
	BartenderPayout money.Value `json:"bartender_payout"`
	Addons          []string    `json:"addons,omitempty"`
}

func (d *Dispatcher) quotePrice(_ context.Context, raw json.RawMessage) (interface{}, error) {
	var args quoteArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	hourly, err := money.FromDollars(args.HourlyRate)
	if err != nil {
		return nil, errors.InvalidInput("hourly_rate", "%v", err)
	}
	lines, err := d.catalog.Resolve(args.Addons)
	if err != nil {
		return nil, err
	}
	res, err := pricing.Calculate(types.PriceRequest{
		HourlyRate:      hourly,
		DurationHours:   args.Hours,
		GuestCount:      args.Guests,
		SelectedAddons:  lines,
		PlatformFeeRate: d.policy.Pricing.PlatformFeeRate,
	})
	if err != nil {
		return nil, err
	}

	cur := money.Currency(d.policy.Pricing.Currency)
	return QuotePayload{
		ServiceSubtotal: res.ServiceSubtotal.Value(cur),
		AddonSubtotal:   res.AddonSubtotal.Value(cur),
		GrandTotal:      res.GrandTotal.Value(cur),
		PlatformFee:     res.PlatformFee.Value(cur),
		BartenderPayout: res.BartenderPayout.Value(cur),
		Addons:          args.Addons,
	}, nil
}

// Upsell is one catalog add-on as shown to the client
type Upsell struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Price   string `json:"price"`
	Billing string `json:"billing"`
}

// UpsellsPayload is the get_upsells response
type UpsellsPayload struct {
	Packages []Upsell `json:"packages"`
	Message  string   `json:"message"`
}

func (d *Dispatcher) getUpsells(_ context.Context, _ json.RawMessage) (interface{}, error) {
	return UpsellsPayload{
		Packages: d.upsells(),
		Message:  "Here are our premium service upgrades to elevate your event:",
	}, nil
}

func (d *Dispatcher) upsells() []Upsell {
	lines := d.catalog.List()
	out := make([]Upsell, 0, len(lines))
	for _, l := range lines {
		price := l.UnitPrice.String()
		if l.BillingUnit == types.BillingPerGuest {
			price += "/guest"
		}
		out = append(out, Upsell{ID: l.ID, Name: l.Name, Price: price, Billing: string(l.BillingUnit)})
	}
	return out
}
