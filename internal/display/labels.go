// Package display maps wire enum values to presentation labels and renders
// stored rule parameters for read-only viewing.
//
// One shared read-only table per enum, initialized once; every view reads
// from here instead of redefining its own copy. Labels are presentation
// only and never feed back into wire payloads.
package display

import "github.com/frauddesk/frauddesk/internal/types"

var matchTypeLabels = map[types.MatchType]string{
	types.MatchTypeUnspecified: "—",
	types.MatchTypeAll:         "ALL",
	types.MatchTypeAny:         "ANY",
}

var operatorLabels = map[types.Operator]string{
	types.OperatorUnspecified:  "—",
	types.OperatorEqual:        "=",
	types.OperatorNotEqual:     "≠",
	types.OperatorGreaterThan:  ">",
	types.OperatorGreaterEqual: "≥",
	types.OperatorLessThan:     "<",
	types.OperatorLessEqual:    "≤",
	types.OperatorIn:           "IN",
}

var transactionTypeLabels = map[types.TransactionType]string{
	types.TransactionTypeUnspecified: "—",
	types.TransactionTypeDeposit:     "Deposit",
	types.TransactionTypeWithdrawal:  "Withdrawal",
}

var transactionStatusLabels = map[types.TransactionStatus]string{
	types.TransactionStatusUnspecified: "—",
	types.TransactionStatusPending:     "Pending",
	types.TransactionStatusCompleted:   "Completed",
	types.TransactionStatusFailed:      "Failed",
}

var reviewStatusLabels = map[types.ReviewStatus]string{
	types.ReviewStatusUnspecified: "—",
	types.ReviewStatusFlagged:     "Flagged",
	types.ReviewStatusPending:     "Pending Review",
	types.ReviewStatusInReview:    "In Review",
	types.ReviewStatusEscalated:   "Escalated",
	types.ReviewStatusRejected:    "Rejected",
	types.ReviewStatusApproved:    "Approved",
	types.ReviewStatusCompleted:   "Completed Review",
}

var additionalInfoStatusLabels = map[types.AdditionalInfoStatus]string{
	types.AdditionalInfoStatusUnspecified: "—",
	types.AdditionalInfoStatusRequested:   "Requested",
	types.AdditionalInfoStatusReceived:    "Received",
	types.AdditionalInfoStatusInReview:    "In Review",
	types.AdditionalInfoStatusCompleted:   "Completed",
}

var additionalInfoTypeLabels = map[types.AdditionalInfoType]string{
	types.AdditionalInfoTypeUnspecified:   "—",
	types.AdditionalInfoTypeWaiver:        "Waiver",
	types.AdditionalInfoTypeSourceOfFunds: "Source of Funds",
	types.AdditionalInfoTypeOther:         "Other",
}

var kindLabels = map[types.ParameterKind]string{
	types.KindAmount:               "Amount",
	types.KindTransactionType:      "Transaction Type",
	types.KindTransactionStatus:    "Transaction Status",
	types.KindReviewStatus:         "Review Status",
	types.KindAdditionalInfoStatus: "Additional Info Status",
	types.KindAdditionalInfoType:   "Additional Info Type",
}

// Badge color per parameter kind, as the parameters view assigned them.
var kindColors = map[types.ParameterKind]string{
	types.KindAmount:               "info",
	types.KindTransactionType:      "primary",
	types.KindTransactionStatus:    "success",
	types.KindReviewStatus:         "warning",
	types.KindAdditionalInfoStatus: "error",
	types.KindAdditionalInfoType:   "secondary",
}

// MatchTypeLabel returns the display text for a match type, "—" if unknown.
func MatchTypeLabel(m types.MatchType) string {
	if l, ok := matchTypeLabels[m]; ok {
		return l
	}
	return "—"
}

// OperatorLabel returns the comparison symbol for an operator, "—" if unknown.
func OperatorLabel(op types.Operator) string {
	if l, ok := operatorLabels[op]; ok {
		return l
	}
	return "—"
}

// ReviewStatusLabel returns the display text for a review status.
func ReviewStatusLabel(rs types.ReviewStatus) string {
	if l, ok := reviewStatusLabels[rs]; ok {
		return l
	}
	return "—"
}

// TransactionTypeLabel returns the display text for a transaction type.
func TransactionTypeLabel(tt types.TransactionType) string {
	if l, ok := transactionTypeLabels[tt]; ok {
		return l
	}
	return "—"
}

// TransactionStatusLabel returns the display text for a transaction status.
func TransactionStatusLabel(ts types.TransactionStatus) string {
	if l, ok := transactionStatusLabels[ts]; ok {
		return l
	}
	return "—"
}

// AdditionalInfoStatusLabel returns the display text for an info status.
func AdditionalInfoStatusLabel(s types.AdditionalInfoStatus) string {
	if l, ok := additionalInfoStatusLabels[s]; ok {
		return l
	}
	return "—"
}

// AdditionalInfoTypeLabel returns the display text for an info type.
func AdditionalInfoTypeLabel(t types.AdditionalInfoType) string {
	if l, ok := additionalInfoTypeLabels[t]; ok {
		return l
	}
	return "—"
}

// KindLabel returns the display name of a parameter kind, "" if unknown.
func KindLabel(k types.ParameterKind) string {
	return kindLabels[k]
}

// KindColor returns the badge color name of a parameter kind, "" if unknown.
func KindColor(k types.ParameterKind) string {
	return kindColors[k]
}
