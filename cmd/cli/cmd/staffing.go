// Package cmd - staffing command
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"event-economics/core/staffing"
	"event-economics/internal/config"
	"event-economics/internal/logging"
)

var (
	staffingGuests int
	staffingStaff  int
)

// staffingCmd represents the staffing command
var staffingCmd = &cobra.Command{
	Use:   "staffing",
	Short: "Check bartender staffing against the guest ratio",
	Long: `Check whether the planned number of bartenders meets the minimum
safety ratio and the recommended service ratio.

Examples:
  event-economics staffing --guests 150 --staff 2
  event-economics staffing --guests 80 --staff 1 --format json`,
	Args: cobra.NoArgs,
	RunE: runStaffing,
}

func init() {
	staffingCmd.Flags().IntVarP(&staffingGuests, "guests", "g", 0, "expected guest count")
	staffingCmd.Flags().IntVarP(&staffingStaff, "staff", "s", 0, "planned number of bartenders")
	_ = staffingCmd.MarkFlagRequired("guests")
}

func runStaffing(cmd *cobra.Command, args []string) error {
	res, err := staffing.Check(staffingGuests, staffingStaff, config.Get().Economics.Staffing)
	if err != nil {
		return err
	}
	logging.Debug("staffing checked",
		zap.Int("guests", staffingGuests),
		zap.Int("staff", staffingStaff),
		zap.Bool("compliant", res.IsCompliant),
	)

	return render(cmd.OutOrStdout(), res, func(w io.Writer) {
		status := "COMPLIANT"
		if !res.IsCompliant {
			status = "NOT COMPLIANT"
		}
		fmt.Fprintf(w, "Staffing check: %d guests, %d bartenders\n\n", staffingGuests, staffingStaff)
		fmt.Fprintf(w, "  Minimum required: %d\n", res.MinimumRequired)
		fmt.Fprintf(w, "  Recommended:      %d\n", res.Recommended)
		fmt.Fprintf(w, "  Current ratio:    %s\n", res.CurrentRatio)
		fmt.Fprintf(w, "  Status:           %s\n\n", status)
		fmt.Fprintln(w, res.Message)
	})
}
