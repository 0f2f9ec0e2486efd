package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Config carries the recurring-billing provider credentials. The API key is
// sent as the basic-auth username with an empty password, per the provider's
// convention.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// ProviderError is any non-2xx answer from the provider. Message is the
// provider's own text, verbatim, so the operator sees exactly what the
// provider said.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("billing provider: %s (status %d)", e.Message, e.StatusCode)
}

type RecurringItem struct {
	Type          string  `json:"type"`
	ReferenceID   string  `json:"reference_id"`
	Name          string  `json:"name"`
	NetUnitAmount float64 `json:"net_unit_amount"`
	Quantity      int     `json:"quantity"`
}

type RecurringSchedule struct {
	Interval      string `json:"interval"`
	IntervalCount int    `json:"interval_count"`
}

type CreatePlanRequest struct {
	ReferenceID     string            `json:"reference_id"`
	CustomerID      string            `json:"customer_id"`
	Amount          float64           `json:"amount"`
	Currency        string            `json:"currency"`
	RecurringAction string            `json:"recurring_action"`
	Items           []RecurringItem   `json:"items"`
	Recurring       RecurringSchedule `json:"recurring"`
}

type UpdatePlanRequest struct {
	Items    []RecurringItem        `json:"items,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type Plan struct {
	ID          string `json:"id"`
	ReferenceID string `json:"reference_id"`
	Status      string `json:"status"`
}

type CreateCustomerRequest struct {
	ReferenceID string `json:"reference_id"`
	GivenNames  string `json:"given_names"`
	Email       string `json:"email,omitempty"`
}

type Customer struct {
	ID          string `json:"id"`
	ReferenceID string `json:"reference_id"`
}

// Client is a thin request wrapper over the provider's HTTP API. No retries
// happen at this layer; retry policy, if any, belongs to the caller.
type Client struct {
	cfg    Config
	client *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *Client) CreatePlan(ctx context.Context, req CreatePlanRequest) (*Plan, error) {
	var plan Plan
	if err := c.do(ctx, http.MethodPost, "/recurring/plans", req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *Client) UpdatePlan(ctx context.Context, externalID string, req UpdatePlanRequest) (*Plan, error) {
	var plan Plan
	if err := c.do(ctx, http.MethodPatch, "/recurring/plans/"+externalID, req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *Client) DeactivatePlan(ctx context.Context, externalID string) error {
	return c.do(ctx, http.MethodPost, "/recurring/plans/"+externalID+"/deactivate", nil, nil)
}

func (c *Client) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	var customer Customer
	if err := c.do(ctx, http.MethodPost, "/customers", req, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode billing request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build billing request: %w", err)
	}
	req.SetBasicAuth(c.cfg.APIKey, "")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("billing request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read billing response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ProviderError{
			StatusCode: resp.StatusCode,
			Message:    providerMessage(raw),
		}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode billing response: %w", err)
		}
	}
	return nil
}

func providerMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return strings.TrimSpace(string(raw))
}
