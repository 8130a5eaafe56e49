package cli

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
	"github.com/ingagustinmarcel/prop-flow/internal/services"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print the full escalation schedule for a lease",
	RunE:  runSchedule,
}

func init() {
	addLeaseFlags(scheduleCmd)
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, _ []string) error {
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

	frequencyMonths := resolveFrequency(cfg)
	entries := services.NewEscalationEngine().FullSchedule(lease, history, frequencyMonths)
	if flagDump {
		spew.Fdump(os.Stderr, entries)
	}
	if len(entries) == 0 {
		fmt.Println("\n  No escalations fall within the lease term.")
		return nil
	}

	fmt.Println()
	fmt.Println(RenderTitle(fmt.Sprintf("ESCALATION SCHEDULE  every %d months", frequencyMonths)))
	fmt.Println()

	rows := make([][]string, 0, len(entries))
	projected := false
	for _, entry := range entries {
		// Completed entries predate the known rent, so there is no amount
		// to show for them.
		newRent, increase := "-", "-"
		if entry.RentKnown {
			newRent = helpers.FormatARS(entry.NewRent)
			increase = helpers.FormatARS(entry.IncreaseAmount)
		}

		// An agreed amount is exact even when the underlying interval relied
		// on projected months.
		change := FormatSignedPercent(entry.PercentChange)
		if entry.ManualOverride {
			change = "agreed"
		} else if entry.Projected {
			change = Warn(change + "*")
			projected = true
		}

		rows = append(rows, []string{
			FormatDate(entry.Date),
			newRent,
			increase,
			change,
			string(entry.Status),
		})
	}

	fmt.Print(RenderTable(Table{
		Headers: []string{"Date", "New rent", "Increase", "Change", "Status"},
		Rows:    rows,
	}))
	if projected {
		fmt.Println()
		fmt.Println("  " + Muted("* includes months the index has not published yet"))
	}

	return nil
}
