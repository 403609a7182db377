package cmd

import (
	"context"
	"fmt"

	"github.com/frauddesk/frauddesk/internal/core/gateway"
	"github.com/frauddesk/frauddesk/internal/types"
	"github.com/spf13/cobra"
)

var (
	reviewStatusFlag string
	infoStatusFlag   string
	infoTypeFlag     string
	notesFlag        string
	escalateFlag     bool
)

var reviewCmd = &cobra.Command{
	Use:   "review <transaction-id>",
	Short: "Submit an analyst review for a transaction",
	Long: `Submits a review decision to the gateway. A review status is required
unless --escalate is given, which forces the status to ESCALATED. Status
values accept short forms: "approved", "in-review", "escalated".`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)
	reviewCmd.Flags().StringVar(&reviewStatusFlag, "status", "", "review status")
	reviewCmd.Flags().StringVar(&infoStatusFlag, "info-status", "", "additional info status")
	reviewCmd.Flags().StringVar(&infoTypeFlag, "info-type", "", "additional info type")
	reviewCmd.Flags().StringVar(&notesFlag, "notes", "", "analyst notes")
	reviewCmd.Flags().BoolVar(&escalateFlag, "escalate", false, "escalate the transaction")
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	req := gateway.ReviewRequest{
		TransactionID: args[0],
		Notes:         notesFlag,
	}

	// Escalation overrides whatever status was picked, as the dialog did.
	if escalateFlag {
		req.ReviewStatus = types.ReviewStatusEscalated
	} else if reviewStatusFlag != "" {
		rs, err := types.ParseReviewStatus(reviewStatusFlag)
		if err != nil {
			return fmt.Errorf("invalid --status %q: %w", reviewStatusFlag, err)
		}
		req.ReviewStatus = rs
	}

	if infoStatusFlag != "" {
		st, err := types.ParseAdditionalInfoStatus(infoStatusFlag)
		if err != nil {
			return fmt.Errorf("invalid --info-status %q: %w", infoStatusFlag, err)
		}
		req.AdditionalInfoStatus = st
	}
	if infoTypeFlag != "" {
		it, err := types.ParseAdditionalInfoType(infoTypeFlag)
		if err != nil {
			return fmt.Errorf("invalid --info-type %q: %w", infoTypeFlag, err)
		}
		req.AdditionalInfoType = it
	}

	logger := setupLogger(cfg)
	collector, stop := newCollector(logger)
	defer stop()
	client := gateway.NewClient(cfg.GatewayURL, cfg.RequestTimeout, logger)

	err = client.SubmitReview(context.Background(), req)
	collector.RecordReview(err)
	if err != nil {
		return fmt.Errorf("review failed: %w", err)
	}

	fmt.Printf("Review submitted for transaction %s\n", args[0])
	return nil
}
