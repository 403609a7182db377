package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/frauddesk/frauddesk/internal/core/query"
	"github.com/frauddesk/frauddesk/internal/display"
	"github.com/frauddesk/frauddesk/internal/stats"
	"github.com/frauddesk/frauddesk/internal/types"
	"github.com/spf13/cobra"
)

var txStatusFlag string

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Browse client transactions",
}

var transactionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List client transactions",
	Long: `Lists client transactions from the listing endpoint. Transaction IDs
shown here feed the review command. Status values accept short forms:
"flagged", "in-review", "approved".`,
	RunE: runTransactionsList,
}

func init() {
	rootCmd.AddCommand(transactionsCmd)
	transactionsCmd.AddCommand(transactionsListCmd)
	transactionsListCmd.Flags().StringVar(&txStatusFlag, "status", "", "filter by review status")
}

func runTransactionsList(cmd *cobra.Command, args []string) error {
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

	txs, err = filterTransactions(txs, txStatusFlag)
	if err != nil {
		return err
	}
	return writeTransactionsTable(os.Stdout, txs)
}

// filterTransactions narrows a snapshot to one review status. An empty flag
// keeps the full snapshot.
func filterTransactions(txs []types.Transaction, raw string) ([]types.Transaction, error) {
	if raw == "" {
		return txs, nil
	}
	status, err := types.ParseReviewStatus(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --status %q: %w", raw, err)
	}
	return stats.FilterByReviewStatus(txs, status), nil
}

func writeTransactionsTable(out io.Writer, txs []types.Transaction) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tAMOUNT\tTYPE\tSTATUS\tREVIEW\tINFO STATUS\tINFO TYPE\tFLAGGED REASON")
	for _, tx := range txs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.ID,
			tx.CreateTime.Format(time.RFC3339),
			stats.FormatUSD(float64(tx.Amount)),
			display.TransactionTypeLabel(tx.TransactionType),
			display.TransactionStatusLabel(tx.Status),
			display.ReviewStatusLabel(tx.ReviewStatus),
			display.AdditionalInfoStatusLabel(tx.AdditionalInfoStatus),
			display.AdditionalInfoTypeLabel(tx.AdditionalInfoType),
			tx.FlaggedReason)
	}
	return w.Flush()
}
