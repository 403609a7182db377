// internal/types/parameter.go
package types

import (
	"encoding/json"
	"fmt"
)

/*
 * Rule parameter union model.
 *
 * A Parameter is one condition within a rule: an amount comparison or an
 * enum-equality check against a transaction/review/additional-info field.
 * The gateway encodes the union as an object with at most one populated
 * field; callers there inspect which field is present. Here the variant is
 * carried as an explicit kind tag behind unexported fields, so a value with
 * two populated variants is unrepresentable: construction goes through the
 * per-kind constructors and the JSON decoder, both of which set exactly one.
 *
 * Wire asymmetry: the listing endpoint returns union fields named
 * "amount"/"transactionType"/..., while the save endpoint expects
 * "amount"/"transactionTypeRule"/... . UnmarshalJSON accepts both spellings;
 * MarshalJSON always emits the save endpoint's names.
 */

// Parameter is a single rule condition. The zero value is the unpopulated
// union (KindUnknown); IsZero reports it and MarshalJSON rejects it.
type Parameter struct {
	kind      ParameterKind
	operator  Operator // amount variant only
	amount    float64  // amount variant only
	enumValue string   // enum variants only
}

// AmountParameter builds an amount-comparison condition.
func AmountParameter(op Operator, value float64) Parameter {
	if op == "" {
		op = OperatorUnspecified
	}
	return Parameter{kind: KindAmount, operator: op, amount: value}
}

// TransactionTypeParameter builds a transaction-type equality condition.
func TransactionTypeParameter(v TransactionType) Parameter {
	return enumParameter(KindTransactionType, string(v))
}

// TransactionStatusParameter builds a transaction-status equality condition.
func TransactionStatusParameter(v TransactionStatus) Parameter {
	return enumParameter(KindTransactionStatus, string(v))
}

// ReviewStatusParameter builds a review-status equality condition.
func ReviewStatusParameter(v ReviewStatus) Parameter {
	return enumParameter(KindReviewStatus, string(v))
}

// AdditionalInfoStatusParameter builds an additional-info-status condition.
func AdditionalInfoStatusParameter(v AdditionalInfoStatus) Parameter {
	return enumParameter(KindAdditionalInfoStatus, string(v))
}

// AdditionalInfoTypeParameter builds an additional-info-type condition.
func AdditionalInfoTypeParameter(v AdditionalInfoType) Parameter {
	return enumParameter(KindAdditionalInfoType, string(v))
}

// EnumParameter builds an enum-equality condition for the given kind with a
// raw wire value. Empty values fall back to the kind's unspecified sentinel.
// KindAmount and KindUnknown yield the zero Parameter.
func EnumParameter(kind ParameterKind, value string) Parameter {
	if kind == KindAmount || kind == KindUnknown {
		return Parameter{}
	}
	return enumParameter(kind, value)
}

func enumParameter(kind ParameterKind, value string) Parameter {
	if value == "" {
		value = UnspecifiedEnumValue(kind)
	}
	return Parameter{kind: kind, enumValue: value}
}

// Kind returns the populated variant's discriminant.
func (p Parameter) Kind() ParameterKind { return p.kind }

// Amount returns the operator and value of an amount condition.
// Zero values for non-amount kinds.
func (p Parameter) Amount() (Operator, float64) {
	if p.kind != KindAmount {
		return "", 0
	}
	return p.operator, p.amount
}

// EnumValue returns the wire enum string of an enum condition, "" otherwise.
func (p Parameter) EnumValue() string { return p.enumValue }

// IsZero reports whether no variant is populated.
func (p Parameter) IsZero() bool { return p.kind == KindUnknown }

// amountWire carries the nested amount object. encoding/json matches keys
// case-insensitively, so both the listing's {Operator, Value} and the
// gateway's {operator, value} land here.
type amountWire struct {
	Operator Operator `json:"operator"`
	Value    float64  `json:"value"`
}

// parameterWire mirrors every union spelling seen on the wire.
type parameterWire struct {
	Amount *amountWire `json:"amount,omitempty"`

	// Listing endpoint names.
	TransactionType      string `json:"transactionType,omitempty"`
	TransactionStatus    string `json:"transactionStatus,omitempty"`
	ReviewStatus         string `json:"reviewStatus,omitempty"`
	AdditionalInfoStatus string `json:"additionalInfoStatus,omitempty"`
	AdditionalInfoType   string `json:"additionalInfoType,omitempty"`

	// Save endpoint names.
	TransactionTypeRule      string `json:"transactionTypeRule,omitempty"`
	TransactionStatusRule    string `json:"transactionStatusRule,omitempty"`
	ReviewStatusRule         string `json:"reviewStatusRule,omitempty"`
	AdditionalInfoStatusRule string `json:"additionalInfoStatusRule,omitempty"`
	AdditionalInfoTypeRule   string `json:"additionalInfoTypeRule,omitempty"`
}

// UnmarshalJSON decodes either wire spelling of the union. When no variant
// field is recognized the result is the zero Parameter, not an error: the
// editor decoder owns the defensive fallback for malformed input. When more
// than one field is populated, the first in canonical kind order wins.
func (p *Parameter) UnmarshalJSON(data []byte) error {
	var w parameterWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("rule parameter: %w", err)
	}

	switch {
	case w.Amount != nil:
		*p = AmountParameter(w.Amount.Operator, w.Amount.Value)
	case w.TransactionType != "" || w.TransactionTypeRule != "":
		*p = enumParameter(KindTransactionType, firstNonEmpty(w.TransactionType, w.TransactionTypeRule))
	case w.TransactionStatus != "" || w.TransactionStatusRule != "":
		*p = enumParameter(KindTransactionStatus, firstNonEmpty(w.TransactionStatus, w.TransactionStatusRule))
	case w.ReviewStatus != "" || w.ReviewStatusRule != "":
		*p = enumParameter(KindReviewStatus, firstNonEmpty(w.ReviewStatus, w.ReviewStatusRule))
	case w.AdditionalInfoStatus != "" || w.AdditionalInfoStatusRule != "":
		*p = enumParameter(KindAdditionalInfoStatus, firstNonEmpty(w.AdditionalInfoStatus, w.AdditionalInfoStatusRule))
	case w.AdditionalInfoType != "" || w.AdditionalInfoTypeRule != "":
		*p = enumParameter(KindAdditionalInfoType, firstNonEmpty(w.AdditionalInfoType, w.AdditionalInfoTypeRule))
	default:
		*p = Parameter{}
	}
	return nil
}

// MarshalJSON emits the save endpoint's union spelling with exactly one
// populated field. The zero Parameter cannot be encoded.
func (p Parameter) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case KindAmount:
		return json.Marshal(parameterWire{Amount: &amountWire{Operator: p.operator, Value: p.amount}})
	case KindTransactionType:
		return json.Marshal(parameterWire{TransactionTypeRule: p.enumValue})
	case KindTransactionStatus:
		return json.Marshal(parameterWire{TransactionStatusRule: p.enumValue})
	case KindReviewStatus:
		return json.Marshal(parameterWire{ReviewStatusRule: p.enumValue})
	case KindAdditionalInfoStatus:
		return json.Marshal(parameterWire{AdditionalInfoStatusRule: p.enumValue})
	case KindAdditionalInfoType:
		return json.Marshal(parameterWire{AdditionalInfoTypeRule: p.enumValue})
	default:
		return nil, ErrEmptyParameter
	}
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
