package types

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseReviewStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    ReviewStatus
		wantErr bool
	}{
		{"REVIEW_STATUS_APPROVED", ReviewStatusApproved, false},
		{"approved", ReviewStatusApproved, false},
		{"in-review", ReviewStatusInReview, false},
		{"in review", ReviewStatusInReview, false},
		{"  Escalated ", ReviewStatusEscalated, false},
		{"flagged", ReviewStatusFlagged, false},
		{"bogus", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseReviewStatus(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseReviewStatus(%q) error = %v, wantErr %t", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseReviewStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if tt.wantErr && !errors.Is(err, ErrUnknownEnumValue) {
			t.Errorf("ParseReviewStatus(%q) error = %v, want ErrUnknownEnumValue", tt.in, err)
		}
	}
}

func TestParseAdditionalInfoStatus(t *testing.T) {
	if got, err := ParseAdditionalInfoStatus("received"); err != nil || got != AdditionalInfoStatusReceived {
		t.Errorf("ParseAdditionalInfoStatus(received) = %q, %v", got, err)
	}
	if _, err := ParseAdditionalInfoStatus("nope"); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("error = %v, want ErrUnknownEnumValue", err)
	}
}

func TestParseAdditionalInfoType(t *testing.T) {
	if got, err := ParseAdditionalInfoType("source-of-funds"); err != nil || got != AdditionalInfoTypeSourceOfFunds {
		t.Errorf("ParseAdditionalInfoType(source-of-funds) = %q, %v", got, err)
	}
	if got, err := ParseAdditionalInfoType("ADDITIONAL_INFO_TYPE_WAIVER"); err != nil || got != AdditionalInfoTypeWaiver {
		t.Errorf("ParseAdditionalInfoType(full form) = %q, %v", got, err)
	}
}

func TestParseMatchType(t *testing.T) {
	if got, err := ParseMatchType("all"); err != nil || got != MatchTypeAll {
		t.Errorf("ParseMatchType(all) = %q, %v", got, err)
	}
	if got, err := ParseMatchType("ANY"); err != nil || got != MatchTypeAny {
		t.Errorf("ParseMatchType(ANY) = %q, %v", got, err)
	}
	if _, err := ParseMatchType("some"); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("error = %v, want ErrUnknownEnumValue", err)
	}
}

func TestUnspecifiedEnumValue(t *testing.T) {
	tests := []struct {
		kind ParameterKind
		want string
	}{
		{KindTransactionType, "TRANSACTION_TYPE_UNSPECIFIED"},
		{KindTransactionStatus, "TRANSACTION_STATUS_UNSPECIFIED"},
		{KindReviewStatus, "REVIEW_STATUS_UNSPECIFIED"},
		{KindAdditionalInfoStatus, "ADDITIONAL_INFO_STATUS_UNSPECIFIED"},
		{KindAdditionalInfoType, "ADDITIONAL_INFO_TYPE_UNSPECIFIED"},
		{KindAmount, ""},
		{KindUnknown, ""},
	}
	for _, tt := range tests {
		if got := UnspecifiedEnumValue(tt.kind); got != tt.want {
			t.Errorf("UnspecifiedEnumValue(%v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 6 {
		t.Fatalf("Kinds() = %d entries, want 6", len(kinds))
	}
	seen := make(map[ParameterKind]bool)
	for _, k := range kinds {
		if k == KindUnknown {
			t.Error("Kinds() includes KindUnknown")
		}
		if seen[k] {
			t.Errorf("Kinds() repeats %v", k)
		}
		seen[k] = true
	}
}

func TestNewRowID(t *testing.T) {
	a, b := NewRowID(), NewRowID()
	if a == b {
		t.Error("consecutive row IDs collided")
	}
	if len(a) != 36 {
		t.Errorf("row ID %q is not UUID-shaped", a)
	}
}

func TestParseAnalystID(t *testing.T) {
	got, err := ParseAnalystID("0192F7A4-0000-7000-8000-000000000001")
	if err != nil {
		t.Fatalf("ParseAnalystID() error = %v", err)
	}
	if got != "0192f7a4-0000-7000-8000-000000000001" {
		t.Errorf("ParseAnalystID() = %q, want normalized lowercase", got)
	}

	if _, err := ParseAnalystID("not-a-uuid"); err == nil {
		t.Error("ParseAnalystID(not-a-uuid) should fail")
	}
}

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want Amount
	}{
		{`123.45`, 123.45},
		{`"123.45"`, 123.45},
		{`"0"`, 0},
		{`null`, 0},
		{`"not a number"`, 0},
	}
	for _, tt := range tests {
		var a Amount
		if err := json.Unmarshal([]byte(tt.in), &a); err != nil {
			t.Errorf("Unmarshal(%s) error = %v", tt.in, err)
			continue
		}
		if a != tt.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, a, tt.want)
		}
	}
}

func TestRuleJSONKeys(t *testing.T) {
	data := `{
		"id": "rule-1",
		"name": "High value",
		"isActive": true,
		"matchType": "MATCH_TYPE_ALL",
		"analystID": "analyst-1",
		"Parameters": [{"transactionType": "TRANSACTION_TYPE_DEPOSIT"}]
	}`
	var r Rule
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(r.Parameters) != 1 || r.Parameters[0].Kind() != KindTransactionType {
		t.Errorf("Parameters = %+v", r.Parameters)
	}

	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	// Server-assigned timestamps stay off the wire when zero.
	if s := string(out); s != "" && (containsKey(t, out, "createTime") || containsKey(t, out, "updateTime")) {
		t.Errorf("Marshal() emitted zero timestamps: %s", s)
	}
}

func containsKey(t *testing.T, data []byte, key string) bool {
	t.Helper()
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	_, ok := m[key]
	return ok
}
