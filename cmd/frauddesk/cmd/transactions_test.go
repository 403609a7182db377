package cmd

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/frauddesk/frauddesk/internal/types"
)

func sampleTransactions() []types.Transaction {
	return []types.Transaction{
		{
			ID:                   "tx-1",
			CreateTime:           time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC),
			Amount:               1250.75,
			TransactionType:      types.TransactionTypeDeposit,
			Status:               types.TransactionStatusCompleted,
			ReviewStatus:         types.ReviewStatusFlagged,
			AdditionalInfoStatus: types.AdditionalInfoStatusRequested,
			AdditionalInfoType:   types.AdditionalInfoTypeWaiver,
			FlaggedReason:        "matched rule High value",
		},
		{
			ID:              "tx-2",
			CreateTime:      time.Date(2024, time.March, 16, 10, 0, 0, 0, time.UTC),
			Amount:          42.5,
			TransactionType: types.TransactionTypeWithdrawal,
			Status:          types.TransactionStatusPending,
			ReviewStatus:    types.ReviewStatusApproved,
		},
	}
}

func TestWriteTransactionsTable(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTransactionsTable(&buf, sampleTransactions()); err != nil {
		t.Fatalf("writeTransactionsTable() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"ID", "REVIEW", "FLAGGED REASON",
		"tx-1", "2024-03-15T09:00:00Z", "$1,250.75",
		"Deposit", "Completed", "Flagged", "Requested", "Waiver",
		"matched rule High value",
		"tx-2", "$42.50", "Withdrawal", "Pending", "Approved",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}

	// Unset enum fields render as the placeholder, not the empty string.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("table has %d lines, want header + 2 rows", len(lines))
	}
	if !strings.Contains(lines[2], "—") {
		t.Errorf("tx-2 row missing placeholder for unset info fields: %q", lines[2])
	}
}

func TestFilterTransactions(t *testing.T) {
	txs := sampleTransactions()

	all, err := filterTransactions(txs, "")
	if err != nil {
		t.Fatalf("filterTransactions(\"\") error = %v", err)
	}
	if !reflect.DeepEqual(all, txs) {
		t.Errorf("empty filter changed the snapshot: %+v", all)
	}

	flagged, err := filterTransactions(txs, "flagged")
	if err != nil {
		t.Fatalf("filterTransactions(flagged) error = %v", err)
	}
	if len(flagged) != 1 || flagged[0].ID != "tx-1" {
		t.Errorf("filterTransactions(flagged) = %+v, want tx-1 only", flagged)
	}

	if _, err := filterTransactions(txs, "bogus"); err == nil {
		t.Error("filterTransactions(bogus) should fail")
	}
}
