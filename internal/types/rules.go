// internal/types/rules.go
package types

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

/*
 * Rule and transaction aggregates.
 *
 * Shapes follow the listing endpoint's node objects: rules carry an ordered
 * parameter sequence under the "Parameters" key (capitalized by the backend
 * schema), transactions carry the review and additional-info tracks used by
 * the analyst workflow. createTime/updateTime are server-assigned and never
 * sent on save.
 */

// Rule is a named, analyst-authored condition set used to flag transactions.
// ID is empty for a rule that has not been created yet. AnalystID identifies
// the acting analyst on the last change, not the rule owner.
type Rule struct {
	ID          string      `json:"id,omitempty"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	IsActive    bool        `json:"isActive"`
	MatchType   MatchType   `json:"matchType"`
	AnalystID   string      `json:"analystID"`
	Parameters  []Parameter `json:"Parameters"`
	CreateTime  time.Time   `json:"createTime,omitzero"`
	UpdateTime  time.Time   `json:"updateTime,omitzero"`
}

// Transaction is a client transaction as returned by the listing endpoint.
type Transaction struct {
	ID                   string               `json:"id"`
	CreateTime           time.Time            `json:"createTime"`
	UpdateTime           time.Time            `json:"updateTime,omitzero"`
	Amount               Amount               `json:"amount"`
	TransactionType      TransactionType      `json:"transactionType"`
	Status               TransactionStatus    `json:"status"`
	ReviewStatus         ReviewStatus         `json:"reviewStatus"`
	AdditionalInfoStatus AdditionalInfoStatus `json:"additionalInfoStatus"`
	AdditionalInfoType   AdditionalInfoType   `json:"additionalInfoType"`
	FlaggedReason        string               `json:"flaggedReason"`
}

// Amount is a monetary value that tolerates the listing endpoint's habit of
// returning amounts as JSON strings. Unparseable input decodes to 0 rather
// than failing the whole listing.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*a = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}
