package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the latest published index months and their compounded increase",
	RunE:  runLatest,
}

var flagMonths int

func init() {
	latestCmd.Flags().IntVar(&flagMonths, "months", 0, "Recent months to show (default: one update interval)")
	rootCmd.AddCommand(latestCmd)
}

func runLatest(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	seriesID := resolveSeries(cfg)

	history, err := loadHistory(cmd.Context(), cfg, seriesID)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Println("\n  The series has no published months.")
		return nil
	}

	n := flagMonths
	if n <= 0 {
		n = resolveFrequency(cfg)
	}
	if n > len(history) {
		n = len(history)
	}
	recent := history[len(history)-n:]

	fmt.Println()
	fmt.Println(RenderTitle(fmt.Sprintf("LATEST INDEX MONTHS  %s", seriesID)))
	fmt.Println()

	rows := make([][]string, 0, len(recent))
	factor := 1.0
	for _, entry := range recent {
		factor *= 1 + entry.Value
		rows = append(rows, []string{FormatMonth(entry.Month), FormatRate(entry.Value)})
	}
	fmt.Print(RenderTable(Table{
		Headers: []string{"Month", "Rate"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  Compounded over %d months: %s\n", n, FormatSignedPercent((factor-1)*100))
	return nil
}
