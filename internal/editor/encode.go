// internal/editor/encode.go
package editor

import "github.com/frauddesk/frauddesk/internal/types"

/*
 * Payload encoder.
 *
 * EncodeRows is the inverse of DecodeRows for well-formed input:
 * decode(encode(rows)) reproduces rows up to ID values. Output order matches
 * row order. Defaulting rules follow the save endpoint's expectations:
 * amount values that don't parse become 0, empty operators and enum values
 * become the respective unspecified sentinel, and rows of an unknown kind
 * are dropped from the output entirely.
 */

// EncodeRows converts the current editor rows into the outbound stored
// parameter sequence for a save request. It never fails.
func EncodeRows(rows []Row) []types.Parameter {
	params := make([]types.Parameter, 0, len(rows))
	for _, r := range rows {
		switch r.Kind {
		case types.KindAmount:
			params = append(params, types.AmountParameter(r.Operator, parseValue(r.Value)))
		case types.KindTransactionType,
			types.KindTransactionStatus,
			types.KindReviewStatus,
			types.KindAdditionalInfoStatus,
			types.KindAdditionalInfoType:
			params = append(params, types.EnumParameter(r.Kind, r.EnumValue))
		default:
			// Unknown kind: drop the row.
		}
	}
	return params
}
