// Package cmd - quote command
package cmd

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"event-economics/core/money"
	"event-economics/core/pricing"
	"event-economics/core/types"
	"event-economics/internal/config"
	"event-economics/internal/errors"
	"event-economics/internal/logging"
)

var (
	quoteRate   string
	quoteHours  float64
	quoteGuests int
	quoteAddons []string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a booking with add-ons, platform fee and bartender payout",
	Long: `Price a bartender booking: service time at the hourly rate plus the
selected add-ons from the configured catalog. The platform fee and the
bartender payout are split from the grand total.

Examples:
  event-economics quote --rate 150 --hours 4 --guests 50
  event-economics quote --rate 150 --hours 4 --guests 50 --addon premium-mixers --addon ice-service`,
	Args: cobra.NoArgs,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteRate, "rate", "r", "", "bartender hourly rate in dollars (e.g. 150 or 62.50)")
	quoteCmd.Flags().Float64VarP(&quoteHours, "hours", "H", 0, "event duration in hours")
	quoteCmd.Flags().IntVarP(&quoteGuests, "guests", "g", 0, "expected guest count")
	quoteCmd.Flags().StringSliceVarP(&quoteAddons, "addon", "a", nil, "add-on id from the catalog (repeatable)")
	_ = quoteCmd.MarkFlagRequired("rate")
	_ = quoteCmd.MarkFlagRequired("hours")
}

// quoteOutput is the JSON shape of the quote command
type quoteOutput struct {
	types.PriceResult
	PlatformFeeRate float64 `json:"platform_fee_rate"`
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	rate, err := money.Parse(quoteRate)
	if err != nil {
		return errors.InvalidInput("hourly_rate", "%v", err)
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}
	lines, err := catalog.Resolve(quoteAddons)
	if err != nil {
		return err
	}

	res, err := pricing.Calculate(types.PriceRequest{
		HourlyRate:      rate,
		DurationHours:   quoteHours,
		GuestCount:      quoteGuests,
		SelectedAddons:  lines,
		PlatformFeeRate: cfg.Economics.Pricing.PlatformFeeRate,
	})
	if err != nil {
		return err
	}
	logging.Debug("booking priced",
		logging.Cents("grand_total", int64(res.GrandTotal)),
		logging.Cents("platform_fee", int64(res.PlatformFee)),
		zap.Strings("addons", quoteAddons),
	)

	out := quoteOutput{PriceResult: res, PlatformFeeRate: cfg.Economics.Pricing.PlatformFeeRate}
	return render(cmd.OutOrStdout(), out, func(w io.Writer) {
		fmt.Fprintf(w, "Quote: %s/hr x %v hours, %d guests\n\n", rate, quoteHours, quoteGuests)
		fmt.Fprintf(w, "  %-32s %12s\n", "Bartender service", res.ServiceSubtotal)
		for i, l := range res.Lines {
			name := lines[i].Name
			if name == "" {
				name = l.ID
			}
			fmt.Fprintf(w, "  %-32s %12s\n", name, l.Amount)
		}
		fmt.Fprintf(w, "  %-32s %12s\n", "Add-ons subtotal", res.AddonSubtotal)
		fmt.Fprintf(w, "  %-32s %12s\n", "Grand total", res.GrandTotal)
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %-32s %12s\n", fmt.Sprintf("Platform fee (%s%%)", decimal.NewFromFloat(cfg.Economics.Pricing.PlatformFeeRate).Shift(2)), res.PlatformFee)
		fmt.Fprintf(w, "  %-32s %12s\n", "Bartender payout", res.BartenderPayout)
	})
}
