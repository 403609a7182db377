// Package gateway provides the REST client for the rule and review gateway.
//
// Two endpoints are covered: rule save (POST /v1/rule to create, PUT with a
// ruleId to update; a save replaces the rule's entire parameter sequence)
// and review submission (POST /v1/transaction/review). Failures surface the
// gateway's textual response body via StatusError; nothing is retried
// automatically, the analyst resubmits by hand.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/frauddesk/frauddesk/internal/types"
)

// maxErrorBody caps how much of a failure response body is retained for
// display. Gateways return short text; a runaway body should not be held.
const maxErrorBody = 8 * 1024

// Client talks to the rule/review gateway over HTTP.
type Client struct {
	baseURL string
	hc      *http.Client
	logger  *slog.Logger
}

// NewClient creates a gateway client. The timeout bounds each request
// end-to-end; pass 0 to rely on caller contexts alone.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// RulePayload is the rule body of a save request. Parameters marshal into
// the gateway's union spelling via types.Parameter.
type RulePayload struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	IsActive    bool              `json:"isActive"`
	Parameters  []types.Parameter `json:"parameters"`
	MatchType   types.MatchType   `json:"matchType"`
}

// SaveRuleRequest is the full save envelope. RuleID empty means create.
type SaveRuleRequest struct {
	AnalystID string      `json:"analystId"`
	Rule      RulePayload `json:"rule"`
	RuleID    string      `json:"ruleId,omitempty"`
}

// ReviewRequest is an analyst's review submission for one transaction.
type ReviewRequest struct {
	TransactionID        string                     `json:"transaction_id"`
	ReviewStatus         types.ReviewStatus         `json:"review_status"`
	AdditionalInfoStatus types.AdditionalInfoStatus `json:"additional_info_status"`
	AdditionalInfoType   types.AdditionalInfoType   `json:"additional_info_type"`
	Notes                string                     `json:"notes"`
}

// StatusError is a non-2xx gateway response with its body text.
type StatusError struct {
	Code int
	Body string
}

// Error formats as the dialog displayed it: "HTTP 409: duplicate rule name".
func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Body)
}

// SaveRule creates or updates a rule. Method and payload follow the
// gateway contract: POST for create, PUT with ruleId for update.
func (c *Client) SaveRule(ctx context.Context, req SaveRuleRequest) error {
	if req.Rule.Parameters == nil {
		req.Rule.Parameters = []types.Parameter{}
	}
	method := http.MethodPost
	if req.RuleID != "" {
		method = http.MethodPut
	}
	c.logger.Debug("saving rule",
		slog.String("method", method),
		slog.String("rule_id", req.RuleID),
		slog.Int("parameters", len(req.Rule.Parameters)))
	return c.post(ctx, method, "/v1/rule", req)
}

// SubmitReview posts an analyst decision for a transaction. The review
// status must be a real selection; the additional-info fields default to
// their unspecified sentinels when left empty.
func (c *Client) SubmitReview(ctx context.Context, req ReviewRequest) error {
	if req.ReviewStatus == "" || req.ReviewStatus == types.ReviewStatusUnspecified {
		return types.ErrReviewStatusRequired
	}
	if req.AdditionalInfoStatus == "" {
		req.AdditionalInfoStatus = types.AdditionalInfoStatusUnspecified
	}
	if req.AdditionalInfoType == "" {
		req.AdditionalInfoType = types.AdditionalInfoTypeUnspecified
	}
	c.logger.Debug("submitting review",
		slog.String("transaction_id", req.TransactionID),
		slog.String("review_status", string(req.ReviewStatus)))
	return c.post(ctx, http.MethodPost, "/v1/transaction/review", req)
}

// post sends a JSON body and maps non-2xx responses to StatusError.
func (c *Client) post(ctx context.Context, method, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
