// internal/editor/session.go
package editor

import "github.com/frauddesk/frauddesk/internal/types"

/*
 * Editor state.
 *
 * A Session owns the ordered row sequence for the lifetime of one open edit
 * dialog. It is created by decoding an existing rule's parameters (or empty
 * for a new rule) and discarded when the dialog closes, saved or not.
 *
 * All operations are synchronous and local. Mutations by absent row ID are
 * silent no-ops. Changing a row's kind resets the fields not relevant to
 * the new kind so stale cross-kind values never leak into a payload:
 * operator and value are cleared when leaving the amount kind, the enum
 * value is cleared when entering it.
 */

// Session is the mutable collection of editor rows for one edit dialog.
type Session struct {
	rows   []Row
	nextID func() string
}

// NewSession builds a session from a rule's stored parameters. Pass nil for
// a new rule. Row IDs are UUIDv7.
func NewSession(params []types.Parameter) *Session {
	return NewSessionWithIDs(params, types.NewRowID)
}

// NewSessionWithIDs is NewSession with an injectable row ID generator.
// The generator is scoped to this session and must never repeat an ID.
func NewSessionWithIDs(params []types.Parameter, nextID func() string) *Session {
	return &Session{
		rows:   decodeRows(params, nextID),
		nextID: nextID,
	}
}

// Len returns the number of rows.
func (s *Session) Len() int { return len(s.rows) }

// Rows returns a copy of the row sequence in display order.
func (s *Session) Rows() []Row {
	out := make([]Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// Add appends a fresh amount row (unspecified operator, value zero) and
// returns it. Display order follows insertion order.
func (s *Session) Add() Row {
	row := newAmountRow(s.nextID())
	s.rows = append(s.rows, row)
	return row
}

// Remove deletes the row with the given ID. No-op if absent.
func (s *Session) Remove(id string) {
	for i, r := range s.rows {
		if r.ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return
		}
	}
}

// SetKind changes a row's parameter kind, resetting cross-kind fields.
func (s *Session) SetKind(id string, kind types.ParameterKind) {
	s.update(id, func(r *Row) {
		if r.Kind == kind {
			return
		}
		r.Kind = kind
		if kind == types.KindAmount {
			r.EnumValue = ""
		} else {
			r.Operator = ""
			r.Value = "0"
		}
	})
}

// SetOperator updates a row's amount operator. Permitted on non-amount rows
// but semantically unused there.
func (s *Session) SetOperator(id string, op types.Operator) {
	s.update(id, func(r *Row) { r.Operator = op })
}

// SetValue updates a row's amount value with raw form text.
func (s *Session) SetValue(id, raw string) {
	s.update(id, func(r *Row) { r.Value = raw })
}

// SetEnumValue updates a row's enum selection.
func (s *Session) SetEnumValue(id, value string) {
	s.update(id, func(r *Row) { r.EnumValue = value })
}

// Parameters encodes the current rows into the outbound parameter sequence.
func (s *Session) Parameters() []types.Parameter {
	return EncodeRows(s.rows)
}

func (s *Session) update(id string, fn func(*Row)) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			fn(&s.rows[i])
			return
		}
	}
}
