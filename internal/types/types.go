// Package types provides domain models shared across frauddesk components.
//
// Enum values are string aliases carrying the exact wire strings of the
// rule/review gateway (e.g. "TRANSACTION_TYPE_DEPOSIT"). These strings are a
// fixed backend contract: presentation labels live in internal/display and
// must never alter the wire value.
package types

import "strings"

// MatchType selects whether a rule requires all or any of its parameters.
type MatchType string

const (
	MatchTypeUnspecified MatchType = "MATCH_TYPE_UNSPECIFIED"
	MatchTypeAll         MatchType = "MATCH_TYPE_ALL"
	MatchTypeAny         MatchType = "MATCH_TYPE_ANY"
)

// Operator is the comparison operator of an amount parameter.
type Operator string

const (
	OperatorUnspecified  Operator = "OPERATOR_UNSPECIFIED"
	OperatorEqual        Operator = "OPERATOR_EQUAL"
	OperatorNotEqual     Operator = "OPERATOR_NOT_EQUAL"
	OperatorGreaterThan  Operator = "OPERATOR_GREATER_THAN"
	OperatorGreaterEqual Operator = "OPERATOR_GREATER_EQUAL"
	OperatorLessThan     Operator = "OPERATOR_LESS_THAN"
	OperatorLessEqual    Operator = "OPERATOR_LESS_EQUAL"
	OperatorIn           Operator = "OPERATOR_IN"
)

// TransactionType classifies the direction of funds movement.
type TransactionType string

const (
	TransactionTypeUnspecified TransactionType = "TRANSACTION_TYPE_UNSPECIFIED"
	TransactionTypeDeposit     TransactionType = "TRANSACTION_TYPE_DEPOSIT"
	TransactionTypeWithdrawal  TransactionType = "TRANSACTION_TYPE_WITHDRAWAL"
)

// TransactionStatus is the processing state of a transaction.
type TransactionStatus string

const (
	TransactionStatusUnspecified TransactionStatus = "TRANSACTION_STATUS_UNSPECIFIED"
	TransactionStatusPending     TransactionStatus = "TRANSACTION_STATUS_PENDING"
	TransactionStatusCompleted   TransactionStatus = "TRANSACTION_STATUS_COMPLETED"
	TransactionStatusFailed      TransactionStatus = "TRANSACTION_STATUS_FAILED"
)

// ReviewStatus is the analyst-assigned disposition of a transaction.
type ReviewStatus string

const (
	ReviewStatusUnspecified ReviewStatus = "REVIEW_STATUS_UNSPECIFIED"
	ReviewStatusFlagged     ReviewStatus = "REVIEW_STATUS_FLAGGED"
	ReviewStatusPending     ReviewStatus = "REVIEW_STATUS_PENDING"
	ReviewStatusInReview    ReviewStatus = "REVIEW_STATUS_IN_REVIEW"
	ReviewStatusEscalated   ReviewStatus = "REVIEW_STATUS_ESCALATED"
	ReviewStatusRejected    ReviewStatus = "REVIEW_STATUS_REJECTED"
	ReviewStatusApproved    ReviewStatus = "REVIEW_STATUS_APPROVED"
	ReviewStatusCompleted   ReviewStatus = "REVIEW_STATUS_COMPLETED"
)

// AdditionalInfoStatus tracks the supplementary information request on a
// transaction, independent of review status.
type AdditionalInfoStatus string

const (
	AdditionalInfoStatusUnspecified AdditionalInfoStatus = "ADDITIONAL_INFO_STATUS_UNSPECIFIED"
	AdditionalInfoStatusRequested   AdditionalInfoStatus = "ADDITIONAL_INFO_STATUS_REQUESTED"
	AdditionalInfoStatusReceived    AdditionalInfoStatus = "ADDITIONAL_INFO_STATUS_RECEIVED"
	AdditionalInfoStatusInReview    AdditionalInfoStatus = "ADDITIONAL_INFO_STATUS_IN_REVIEW"
	AdditionalInfoStatusCompleted   AdditionalInfoStatus = "ADDITIONAL_INFO_STATUS_COMPLETED"
)

// AdditionalInfoType names the kind of supplementary information requested.
type AdditionalInfoType string

const (
	AdditionalInfoTypeUnspecified   AdditionalInfoType = "ADDITIONAL_INFO_TYPE_UNSPECIFIED"
	AdditionalInfoTypeWaiver        AdditionalInfoType = "ADDITIONAL_INFO_TYPE_WAIVER"
	AdditionalInfoTypeSourceOfFunds AdditionalInfoType = "ADDITIONAL_INFO_TYPE_SOURCE_OF_FUNDS"
	AdditionalInfoTypeOther         AdditionalInfoType = "ADDITIONAL_INFO_TYPE_OTHER"
)

// ParameterKind discriminates the variants of a rule Parameter.
type ParameterKind int

const (
	KindUnknown ParameterKind = iota
	KindAmount
	KindTransactionType
	KindTransactionStatus
	KindReviewStatus
	KindAdditionalInfoStatus
	KindAdditionalInfoType
)

// String returns a stable identifier for the kind, used in logs and errors.
func (k ParameterKind) String() string {
	switch k {
	case KindAmount:
		return "amount"
	case KindTransactionType:
		return "transaction_type"
	case KindTransactionStatus:
		return "transaction_status"
	case KindReviewStatus:
		return "review_status"
	case KindAdditionalInfoStatus:
		return "additional_info_status"
	case KindAdditionalInfoType:
		return "additional_info_type"
	default:
		return "unknown"
	}
}

// Kinds lists the six parameter kinds in their canonical order.
func Kinds() []ParameterKind {
	return []ParameterKind{
		KindAmount,
		KindTransactionType,
		KindTransactionStatus,
		KindReviewStatus,
		KindAdditionalInfoStatus,
		KindAdditionalInfoType,
	}
}

// UnspecifiedEnumValue returns the kind's "*_UNSPECIFIED" wire sentinel.
// Returns "" for KindAmount and KindUnknown, which carry no enum value.
func UnspecifiedEnumValue(k ParameterKind) string {
	switch k {
	case KindTransactionType:
		return string(TransactionTypeUnspecified)
	case KindTransactionStatus:
		return string(TransactionStatusUnspecified)
	case KindReviewStatus:
		return string(ReviewStatusUnspecified)
	case KindAdditionalInfoStatus:
		return string(AdditionalInfoStatusUnspecified)
	case KindAdditionalInfoType:
		return string(AdditionalInfoTypeUnspecified)
	default:
		return ""
	}
}

var reviewStatuses = []ReviewStatus{
	ReviewStatusUnspecified,
	ReviewStatusFlagged,
	ReviewStatusPending,
	ReviewStatusInReview,
	ReviewStatusEscalated,
	ReviewStatusRejected,
	ReviewStatusApproved,
	ReviewStatusCompleted,
}

var additionalInfoStatuses = []AdditionalInfoStatus{
	AdditionalInfoStatusUnspecified,
	AdditionalInfoStatusRequested,
	AdditionalInfoStatusReceived,
	AdditionalInfoStatusInReview,
	AdditionalInfoStatusCompleted,
}

var additionalInfoTypes = []AdditionalInfoType{
	AdditionalInfoTypeUnspecified,
	AdditionalInfoTypeWaiver,
	AdditionalInfoTypeSourceOfFunds,
	AdditionalInfoTypeOther,
}

// ParseReviewStatus converts user input to a ReviewStatus wire value.
// Accepts the full wire string or a short form ("in-review", "escalated").
func ParseReviewStatus(s string) (ReviewStatus, error) {
	v := normalizeEnum(s, "REVIEW_STATUS_")
	for _, rs := range reviewStatuses {
		if ReviewStatus(v) == rs {
			return rs, nil
		}
	}
	return "", ErrUnknownEnumValue
}

// ParseAdditionalInfoStatus converts user input to an AdditionalInfoStatus.
func ParseAdditionalInfoStatus(s string) (AdditionalInfoStatus, error) {
	v := normalizeEnum(s, "ADDITIONAL_INFO_STATUS_")
	for _, st := range additionalInfoStatuses {
		if AdditionalInfoStatus(v) == st {
			return st, nil
		}
	}
	return "", ErrUnknownEnumValue
}

// ParseAdditionalInfoType converts user input to an AdditionalInfoType.
func ParseAdditionalInfoType(s string) (AdditionalInfoType, error) {
	v := normalizeEnum(s, "ADDITIONAL_INFO_TYPE_")
	for _, it := range additionalInfoTypes {
		if AdditionalInfoType(v) == it {
			return it, nil
		}
	}
	return "", ErrUnknownEnumValue
}

// ParseMatchType converts user input to a MatchType wire value.
func ParseMatchType(s string) (MatchType, error) {
	v := normalizeEnum(s, "MATCH_TYPE_")
	switch MatchType(v) {
	case MatchTypeUnspecified, MatchTypeAll, MatchTypeAny:
		return MatchType(v), nil
	}
	return "", ErrUnknownEnumValue
}

// normalizeEnum upper-cases input, maps dashes and spaces to underscores,
// and prepends the wire prefix when missing.
func normalizeEnum(s, prefix string) string {
	v := strings.ToUpper(strings.TrimSpace(s))
	v = strings.NewReplacer("-", "_", " ", "_").Replace(v)
	if v != "" && !strings.HasPrefix(v, prefix) {
		v = prefix + v
	}
	return v
}
