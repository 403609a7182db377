// internal/display/render.go
package display

import (
	"strconv"
	"strings"

	"github.com/frauddesk/frauddesk/internal/types"
)

// Detail is one read-only parameter row: a kind label, a display value with
// the wire sentinel prefix stripped, and a badge color name.
type Detail struct {
	Label string
	Value string
	Color string
}

// Render converts a stored parameter directly into its display row, with no
// intermediate editor state. Enum values lose their wire prefix
// ("REVIEW_STATUS_FLAGGED" -> "FLAGGED"); amounts render as
// "GREATER_THAN 100". Returns false for an unpopulated union.
func Render(p types.Parameter) (Detail, bool) {
	kind := p.Kind()
	switch kind {
	case types.KindAmount:
		op, value := p.Amount()
		text := strings.TrimPrefix(string(op), "OPERATOR_") + " " +
			strconv.FormatFloat(value, 'f', -1, 64)
		return Detail{Label: kindLabels[kind], Value: text, Color: kindColors[kind]}, true
	case types.KindTransactionType:
		return enumDetail(kind, p.EnumValue(), "TRANSACTION_TYPE_"), true
	case types.KindTransactionStatus:
		return enumDetail(kind, p.EnumValue(), "TRANSACTION_STATUS_"), true
	case types.KindReviewStatus:
		return enumDetail(kind, p.EnumValue(), "REVIEW_STATUS_"), true
	case types.KindAdditionalInfoStatus:
		return enumDetail(kind, p.EnumValue(), "ADDITIONAL_INFO_STATUS_"), true
	case types.KindAdditionalInfoType:
		return enumDetail(kind, p.EnumValue(), "ADDITIONAL_INFO_TYPE_"), true
	default:
		return Detail{}, false
	}
}

// RenderAll renders a parameter sequence in order, skipping unpopulated
// entries.
func RenderAll(params []types.Parameter) []Detail {
	details := make([]Detail, 0, len(params))
	for _, p := range params {
		if d, ok := Render(p); ok {
			details = append(details, d)
		}
	}
	return details
}

func enumDetail(kind types.ParameterKind, value, prefix string) Detail {
	return Detail{
		Label: kindLabels[kind],
		Value: strings.TrimPrefix(value, prefix),
		Color: kindColors[kind],
	}
}
