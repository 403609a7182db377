package types

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParameterUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantKind ParameterKind
		wantOp   Operator
		wantVal  float64
		wantEnum string
	}{
		{
			name:     "amount with listing capitalization",
			data:     `{"amount": {"Operator": "OPERATOR_GREATER_THAN", "Value": 100}}`,
			wantKind: KindAmount,
			wantOp:   OperatorGreaterThan,
			wantVal:  100,
		},
		{
			name:     "amount with gateway lowercase keys",
			data:     `{"amount": {"operator": "OPERATOR_LESS_EQUAL", "value": 25.5}}`,
			wantKind: KindAmount,
			wantOp:   OperatorLessEqual,
			wantVal:  25.5,
		},
		{
			name:     "amount with absent fields defaults",
			data:     `{"amount": {}}`,
			wantKind: KindAmount,
			wantOp:   OperatorUnspecified,
			wantVal:  0,
		},
		{
			name:     "transaction type, listing name",
			data:     `{"transactionType": "TRANSACTION_TYPE_DEPOSIT"}`,
			wantKind: KindTransactionType,
			wantEnum: "TRANSACTION_TYPE_DEPOSIT",
		},
		{
			name:     "transaction type, save name",
			data:     `{"transactionTypeRule": "TRANSACTION_TYPE_WITHDRAWAL"}`,
			wantKind: KindTransactionType,
			wantEnum: "TRANSACTION_TYPE_WITHDRAWAL",
		},
		{
			name:     "transaction status",
			data:     `{"transactionStatus": "TRANSACTION_STATUS_FAILED"}`,
			wantKind: KindTransactionStatus,
			wantEnum: "TRANSACTION_STATUS_FAILED",
		},
		{
			name:     "review status",
			data:     `{"reviewStatus": "REVIEW_STATUS_FLAGGED"}`,
			wantKind: KindReviewStatus,
			wantEnum: "REVIEW_STATUS_FLAGGED",
		},
		{
			name:     "additional info status, save name",
			data:     `{"additionalInfoStatusRule": "ADDITIONAL_INFO_STATUS_RECEIVED"}`,
			wantKind: KindAdditionalInfoStatus,
			wantEnum: "ADDITIONAL_INFO_STATUS_RECEIVED",
		},
		{
			name:     "additional info type",
			data:     `{"additionalInfoType": "ADDITIONAL_INFO_TYPE_WAIVER"}`,
			wantKind: KindAdditionalInfoType,
			wantEnum: "ADDITIONAL_INFO_TYPE_WAIVER",
		},
		{
			name:     "no recognized field yields zero parameter",
			data:     `{"somethingElse": true}`,
			wantKind: KindUnknown,
		},
		{
			name:     "empty object yields zero parameter",
			data:     `{}`,
			wantKind: KindUnknown,
		},
		{
			name:     "amount wins when two variants populated",
			data:     `{"amount": {"operator": "OPERATOR_EQUAL", "value": 1}, "reviewStatus": "REVIEW_STATUS_FLAGGED"}`,
			wantKind: KindAmount,
			wantOp:   OperatorEqual,
			wantVal:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Parameter
			if err := json.Unmarshal([]byte(tt.data), &p); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if p.Kind() != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", p.Kind(), tt.wantKind)
			}
			if tt.wantKind == KindAmount {
				op, val := p.Amount()
				if op != tt.wantOp || val != tt.wantVal {
					t.Errorf("Amount() = (%v, %v), want (%v, %v)", op, val, tt.wantOp, tt.wantVal)
				}
			}
			if p.EnumValue() != tt.wantEnum {
				t.Errorf("EnumValue() = %q, want %q", p.EnumValue(), tt.wantEnum)
			}
		})
	}
}

func TestParameterMarshal(t *testing.T) {
	tests := []struct {
		name  string
		param Parameter
		want  string
	}{
		{
			name:  "amount emits nested object",
			param: AmountParameter(OperatorGreaterThan, 100),
			want:  `{"amount":{"operator":"OPERATOR_GREATER_THAN","value":100}}`,
		},
		{
			name:  "amount with empty operator defaults to unspecified",
			param: AmountParameter("", 0),
			want:  `{"amount":{"operator":"OPERATOR_UNSPECIFIED","value":0}}`,
		},
		{
			name:  "transaction type uses save-side name",
			param: TransactionTypeParameter(TransactionTypeDeposit),
			want:  `{"transactionTypeRule":"TRANSACTION_TYPE_DEPOSIT"}`,
		},
		{
			name:  "transaction status uses save-side name",
			param: TransactionStatusParameter(TransactionStatusPending),
			want:  `{"transactionStatusRule":"TRANSACTION_STATUS_PENDING"}`,
		},
		{
			name:  "review status uses save-side name",
			param: ReviewStatusParameter(ReviewStatusEscalated),
			want:  `{"reviewStatusRule":"REVIEW_STATUS_ESCALATED"}`,
		},
		{
			name:  "additional info status uses save-side name",
			param: AdditionalInfoStatusParameter(AdditionalInfoStatusRequested),
			want:  `{"additionalInfoStatusRule":"ADDITIONAL_INFO_STATUS_REQUESTED"}`,
		},
		{
			name:  "additional info type uses save-side name",
			param: AdditionalInfoTypeParameter(AdditionalInfoTypeOther),
			want:  `{"additionalInfoTypeRule":"ADDITIONAL_INFO_TYPE_OTHER"}`,
		},
		{
			name:  "empty enum value falls back to sentinel",
			param: EnumParameter(KindReviewStatus, ""),
			want:  `{"reviewStatusRule":"REVIEW_STATUS_UNSPECIFIED"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.param)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParameterMarshalZero(t *testing.T) {
	var p Parameter
	if !p.IsZero() {
		t.Fatal("zero Parameter should report IsZero")
	}
	_, err := json.Marshal(p)
	if !errors.Is(err, ErrEmptyParameter) {
		t.Errorf("Marshal(zero) error = %v, want ErrEmptyParameter", err)
	}
}

func TestParameterRoundTrip(t *testing.T) {
	params := []Parameter{
		AmountParameter(OperatorGreaterEqual, 12.75),
		TransactionTypeParameter(TransactionTypeWithdrawal),
		ReviewStatusParameter(ReviewStatusFlagged),
		AdditionalInfoTypeParameter(AdditionalInfoTypeSourceOfFunds),
	}
	for _, p := range params {
		data, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("Marshal(%v) error = %v", p.Kind(), err)
		}
		var back Parameter
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", data, err)
		}
		if back != p {
			t.Errorf("round trip changed parameter: got %+v, want %+v", back, p)
		}
	}
}

func TestEnumParameterRejectsNonEnumKinds(t *testing.T) {
	if p := EnumParameter(KindAmount, "x"); !p.IsZero() {
		t.Error("EnumParameter(KindAmount) should be zero")
	}
	if p := EnumParameter(KindUnknown, "x"); !p.IsZero() {
		t.Error("EnumParameter(KindUnknown) should be zero")
	}
}
