package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/frauddesk/frauddesk/internal/core/query"
	"github.com/frauddesk/frauddesk/internal/stats"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show transaction summary cards and histograms",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)
	collector, stop := newCollector(logger)
	defer stop()
	client := query.NewClient(cfg.GraphQLURL, cfg.RequestTimeout, logger)

	start := time.Now()
	txs, err := client.Transactions(context.Background())
	collector.ObserveQuery(time.Since(start), err)
	if err != nil {
		return fmt.Errorf("error loading transactions: %w", err)
	}

	summary := stats.Summarize(txs, time.Now())
	fmt.Printf("Total Transactions:   %d\n", summary.Total)
	fmt.Printf("Today's Transactions: %d\n", summary.Today)
	fmt.Printf("Total Volume:         %s\n", stats.FormatUSD(summary.Volume))
	fmt.Printf("Flagged:              %d\n", summary.Flagged)

	fmt.Println("\nTransactions by Day of Week")
	weekday := stats.CountByWeekday(txs)
	printHistogram(stats.WeekdayLabels[:], weekday[:])

	fmt.Println("\nMonthly Transaction Counts")
	monthly := stats.CountByMonth(txs)
	printHistogram(stats.MonthLabels[:], monthly[:])

	fmt.Println("\nFlagged Transactions Over Time")
	flagged := stats.FlaggedByMonth(txs)
	printHistogram(stats.MonthLabels[:], flagged[:])

	return nil
}

// printHistogram renders counts as scaled hash bars, widest bucket 40 wide.
func printHistogram(labels []string, counts []int) {
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 1, ' ', 0)
	for i, c := range counts {
		width := 0
		if max > 0 {
			width = c * 40 / max
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", labels[i], c, strings.Repeat("#", width))
	}
	w.Flush()
}
