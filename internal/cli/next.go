package cli

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
	"github.com/ingagustinmarcel/prop-flow/internal/services"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print the next rent update for a lease",
	RunE:  runNext,
}

func init() {
	addLeaseFlags(nextCmd)
	rootCmd.AddCommand(nextCmd)
}

func runNext(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	lease, err := leaseFromFlags()
	if err != nil {
		return err
	}

	history, err := loadHistory(cmd.Context(), cfg, resolveSeries(cfg))
	if err != nil {
		return err
	}

	update, ok := services.NewEscalationEngine().NextRent(lease, history, resolveFrequency(cfg))
	if flagDump {
		spew.Fdump(os.Stderr, update)
	}
	if !ok {
		fmt.Println("\n  No pending update within the lease term.")
		return nil
	}

	fmt.Println()
	fmt.Println(RenderTitle("NEXT RENT UPDATE"))
	fmt.Println()
	fmt.Printf("  %-14s %s\n", "Date", FormatDate(update.NextDate))
	fmt.Printf("  %-14s %s\n", "Current rent", helpers.FormatARS(update.CurrentRent))
	fmt.Printf("  %-14s %s\n", "New rent", helpers.FormatARS(update.NewRent))
	fmt.Printf("  %-14s %s\n", "Increase", helpers.FormatARS(update.IncreaseAmount))
	if update.ManualOverride {
		fmt.Printf("  %-14s %s\n", "Change", "agreed amount")
	} else {
		fmt.Printf("  %-14s %s\n", "Change", FormatSignedPercent(update.PercentChange))
	}
	fmt.Println()

	rows := make([][]string, 0, len(update.Details))
	for _, detail := range update.Details {
		rate := FormatRate(detail.Rate)
		if detail.Projected {
			rate = Warn(rate + "*")
		}
		rows = append(rows, []string{FormatMonth(detail.Month), rate})
	}
	fmt.Print(RenderTable(Table{
		Headers: []string{"Month", "Rate"},
		Rows:    rows,
	}))
	if update.Projected {
		fmt.Println()
		fmt.Println("  " + Muted("* not published yet, assumed from the last known month"))
	}

	return nil
}
