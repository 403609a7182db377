// internal/editor/save.go
package editor

import (
	"context"
	"strings"

	"github.com/frauddesk/frauddesk/internal/core/gateway"
	"github.com/frauddesk/frauddesk/internal/types"
)

/*
 * Save flow state machine.
 *
 * Idle -> Saving -> {Succeeded, Failed}. A save encodes the session rows,
 * assembles the full rule payload (a save replaces the entire parameter
 * sequence server-side; there are no partial updates), and issues it
 * through the RuleSaver. On failure the flow records the error text, drops
 * back to Failed, and leaves the session rows untouched so the analyst can
 * correct and resubmit; nothing retries automatically.
 *
 * Re-entrancy: a save requested while one is pending is rejected with
 * types.ErrSaveInFlight. The UI equivalent only disabled the issuing
 * button; the guard here closes the gap for a second dialog instance.
 */

// SaveState is the lifecycle state of a SaveFlow.
type SaveState int

const (
	StateIdle SaveState = iota
	StateSaving
	StateSucceeded
	StateFailed
)

// String returns the state name for logs.
func (s SaveState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSaving:
		return "saving"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// RuleSaver issues a rule save request. Implemented by *gateway.Client.
type RuleSaver interface {
	SaveRule(ctx context.Context, req gateway.SaveRuleRequest) error
}

// Draft carries the rule fields under edit alongside the parameter session.
// RuleID is empty when creating a new rule.
type Draft struct {
	RuleID      string
	Name        string
	Description string
	IsActive    bool
	MatchType   types.MatchType
	AnalystID   string
}

// SaveFlow drives one dialog's save lifecycle.
type SaveFlow struct {
	saver     RuleSaver
	onSuccess func()
	state     SaveState
	lastErr   string
}

// NewSaveFlow creates a flow in the idle state. onSuccess, if non-nil, runs
// after a successful save (the dialog's refresh-and-close callback).
func NewSaveFlow(saver RuleSaver, onSuccess func()) *SaveFlow {
	return &SaveFlow{saver: saver, onSuccess: onSuccess}
}

// State returns the current lifecycle state.
func (f *SaveFlow) State() SaveState { return f.state }

// Err returns the user-visible error text of the last failed save, or "".
func (f *SaveFlow) Err() string { return f.lastErr }

// Save encodes the session and submits the rule. Leading/trailing space on
// name, description, and analyst ID is trimmed, matching the form behavior.
func (f *SaveFlow) Save(ctx context.Context, draft Draft, session *Session) error {
	if f.state == StateSaving {
		return types.ErrSaveInFlight
	}
	f.state = StateSaving
	f.lastErr = ""

	req := gateway.SaveRuleRequest{
		AnalystID: strings.TrimSpace(draft.AnalystID),
		RuleID:    draft.RuleID,
		Rule: gateway.RulePayload{
			Name:        strings.TrimSpace(draft.Name),
			Description: strings.TrimSpace(draft.Description),
			IsActive:    draft.IsActive,
			Parameters:  session.Parameters(),
			MatchType:   draft.MatchType,
		},
	}

	if err := f.saver.SaveRule(ctx, req); err != nil {
		f.state = StateFailed
		f.lastErr = err.Error()
		return err
	}

	f.state = StateSucceeded
	if f.onSuccess != nil {
		f.onSuccess()
	}
	return nil
}
