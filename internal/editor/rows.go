// internal/editor/rows.go

// Package editor implements the rule parameter editing workflow: decoding
// stored parameters into editable rows, the row collection owned by an open
// edit dialog, encoding rows back into the save payload, and the save flow
// state machine.
package editor

import (
	"strconv"

	"github.com/frauddesk/frauddesk/internal/types"
)

/*
 * Editor rows and the payload decoder.
 *
 * A Row is the UI-local, mutable form of one stored parameter. Operator and
 * Value are meaningful only for amount rows; EnumValue only for the rest.
 * Value holds the raw form text, so a row may legally carry non-numeric
 * input; coercion to a number happens only at encode time.
 *
 * Row IDs exist purely for list keying in the editor: they are generated
 * fresh on every decode, are never reused within a session, and are excluded
 * from round-trip equality.
 */

// Row is the editable representation of one stored rule parameter.
type Row struct {
	ID        string
	Kind      types.ParameterKind
	Operator  types.Operator // amount rows only
	Value     string         // amount rows only, raw form text
	EnumValue string         // enum rows only
}

// newAmountRow returns the default row shape: an amount comparison with an
// unspecified operator and value zero.
func newAmountRow(id string) Row {
	return Row{
		ID:       id,
		Kind:     types.KindAmount,
		Operator: types.OperatorUnspecified,
		Value:    "0",
	}
}

// DecodeRows converts a fetched rule's parameter sequence into editor rows,
// one per parameter in the same order, each with a freshly generated ID.
// A nil or empty input produces an empty sequence. An unpopulated union
// decodes to the defensive fallback: an amount row with an unspecified
// operator and value zero.
func DecodeRows(params []types.Parameter) []Row {
	return decodeRows(params, types.NewRowID)
}

func decodeRows(params []types.Parameter, nextID func() string) []Row {
	rows := make([]Row, 0, len(params))
	for _, p := range params {
		rows = append(rows, decodeRow(p, nextID()))
	}
	return rows
}

func decodeRow(p types.Parameter, id string) Row {
	switch p.Kind() {
	case types.KindAmount:
		op, value := p.Amount()
		if op == "" {
			op = types.OperatorUnspecified
		}
		return Row{
			ID:       id,
			Kind:     types.KindAmount,
			Operator: op,
			Value:    formatValue(value),
		}
	case types.KindTransactionType,
		types.KindTransactionStatus,
		types.KindReviewStatus,
		types.KindAdditionalInfoStatus,
		types.KindAdditionalInfoType:
		return Row{
			ID:        id,
			Kind:      p.Kind(),
			EnumValue: p.EnumValue(),
		}
	default:
		// Malformed stored parameter: default, don't error.
		return newAmountRow(id)
	}
}

// formatValue renders an amount as form text without exponent notation.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseValue coerces form text to a number. Non-numeric or empty input
// yields 0; encoding never fails on bad input.
func parseValue(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
