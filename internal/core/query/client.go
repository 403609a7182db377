// Package query provides the GraphQL listing client for rules and client
// transactions.
//
// The listing endpoint exposes edge/node collections over plain
// GraphQL-over-HTTP: a single POST with a {"query": ...} envelope and a
// {"data", "errors"} response. Query failures surface as Go errors; the
// caller renders its "Error loading data" placeholder and does not retry.
package query

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/frauddesk/frauddesk/internal/types"
)

const rulesQuery = `query GetAllRules {
  rules {
    edges {
      node {
        id
        createTime
        updateTime
        name
        description
        isActive
        matchType
        analystID
        Parameters {
          amount { Operator Value }
          transactionType
          transactionStatus
          reviewStatus
          additionalInfoStatus
          additionalInfoType
        }
      }
    }
  }
}`

const transactionsQuery = `query GetAllClientTransactions {
  clientTransactions {
    edges {
      node {
        id
        createTime
        updateTime
        amount
        transactionType
        status
        reviewStatus
        additionalInfoType
        additionalInfoStatus
        flaggedReason
      }
    }
  }
}`

// Client executes listing queries against the GraphQL endpoint.
type Client struct {
	url    string
	hc     *http.Client
	logger *slog.Logger
}

// NewClient creates a query client for the given endpoint URL.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		url:    url,
		hc:     &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type gqlRequest struct {
	Query string `json:"query"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// edge/node envelopes mirror the relay-style listing schema.
type ruleConnection struct {
	Rules struct {
		Edges []struct {
			Node types.Rule `json:"node"`
		} `json:"edges"`
	} `json:"rules"`
}

type transactionConnection struct {
	ClientTransactions struct {
		Edges []struct {
			Node types.Transaction `json:"node"`
		} `json:"edges"`
	} `json:"clientTransactions"`
}

// Rules fetches all rules with their stored parameters.
func (c *Client) Rules(ctx context.Context) ([]types.Rule, error) {
	var conn ruleConnection
	if err := c.do(ctx, rulesQuery, &conn); err != nil {
		return nil, err
	}
	rules := make([]types.Rule, 0, len(conn.Rules.Edges))
	for _, e := range conn.Rules.Edges {
		rules = append(rules, e.Node)
	}
	return rules, nil
}

// Transactions fetches all client transactions.
func (c *Client) Transactions(ctx context.Context) ([]types.Transaction, error) {
	var conn transactionConnection
	if err := c.do(ctx, transactionsQuery, &conn); err != nil {
		return nil, err
	}
	txs := make([]types.Transaction, 0, len(conn.ClientTransactions.Edges))
	for _, e := range conn.ClientTransactions.Edges {
		txs = append(txs, e.Node)
	}
	return txs, nil
}

// do posts one query and decodes data into dest. A non-2xx response or a
// populated errors array fails the call; partial data is not used.
func (c *Client) do(ctx context.Context, query string, dest any) error {
	start := time.Now()

	body, err := json.Marshal(gqlRequest{Query: query})
	if err != nil {
		return fmt.Errorf("marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("query %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("query %s: unexpected status %d", c.url, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var envelope gqlResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("graphql: %s", envelope.Errors[0].Message)
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}

	c.logger.Debug("query complete", slog.Duration("elapsed", time.Since(start)))
	return nil
}
