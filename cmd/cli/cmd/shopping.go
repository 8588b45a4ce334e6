// Package cmd - shopping command
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"event-economics/core/consumption"
	"event-economics/core/types"
	"event-economics/internal/config"
	"event-economics/internal/logging"
)

var (
	shoppingGuests int
	shoppingHours  float64
	shoppingLevel  string
)

// shoppingCmd represents the shopping command
var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Estimate servings and 750ml bottles for an event",
	Long: `Estimate how many servings the guests will drink and how many
750ml bottles to buy, split across the configured spirit mix.

Drinking levels: light, moderate, heavy.

Examples:
  event-economics shopping --guests 50 --hours 4
  event-economics shopping --guests 120 --hours 5 --level heavy`,
	Args: cobra.NoArgs,
	RunE: runShopping,
}

func init() {
	shoppingCmd.Flags().IntVarP(&shoppingGuests, "guests", "g", 0, "expected guest count")
	shoppingCmd.Flags().Float64VarP(&shoppingHours, "hours", "H", 0, "event duration in hours")
	shoppingCmd.Flags().StringVarP(&shoppingLevel, "level", "l", string(types.IntensityModerate), "drinking level (light, moderate, heavy)")
	_ = shoppingCmd.MarkFlagRequired("guests")
	_ = shoppingCmd.MarkFlagRequired("hours")
}

func runShopping(cmd *cobra.Command, args []string) error {
	res, err := consumption.Estimate(shoppingGuests, shoppingHours, types.Intensity(shoppingLevel), config.Get().Economics.Consumption)
	if err != nil {
		return err
	}
	logging.Debug("consumption estimated",
		zap.Int("guests", shoppingGuests),
		zap.Float64("hours", shoppingHours),
		zap.Int("bottles", res.BottlesNeeded),
	)

	return render(cmd.OutOrStdout(), res, func(w io.Writer) {
		fmt.Fprintln(w, res.Breakdown)
		fmt.Fprintf(w, "\n  Total servings: %v\n", res.TotalServings)
		fmt.Fprintf(w, "  Bottles needed: %d\n", res.BottlesNeeded)
		if len(res.SpiritMix) == 0 {
			return
		}
		fmt.Fprintln(w, "\nSuggested mix:")
		for _, s := range res.SpiritMix {
			fmt.Fprintf(w, "  %-10s %3.0f%%  %d bottles\n", s.Spirit, s.Share*100, s.Bottles)
		}
	})
}
