// file: internals/features/finance/payments/gateway/paystack.go
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const verifyBaseURL = "https://api.paystack.co/transaction/verify/"

var ErrNotConfigured = errors.New("paystack secret key not configured")

// Client talks to the Paystack REST API with a bearer secret key.
type Client struct {
	secretKey string
	baseURL   string
	http      *http.Client
}

var defaultClient *Client

// Init wires the package-level client at startup. An empty key leaves the
// gateway disabled; verification then fails fast with ErrNotConfigured.
func Init(secretKey string) {
	defaultClient = NewClient(secretKey)
}

func NewClient(secretKey string) *Client {
	return &Client{
		secretKey: secretKey,
		baseURL:   verifyBaseURL,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

// VerifyResult is the subset of Paystack's verify payload we act on.
type VerifyResult struct {
	Reference  string
	Status     string // "success", "failed", "abandoned", ...
	AmountKobo int64
	Channel    string
	PaidAt     string
	GatewayRaw json.RawMessage
}

// Success reports whether the gateway settled the charge.
func (r VerifyResult) Success() bool {
	return r.Status == "success"
}

type verifyResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type verifyData struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Channel   string `json:"channel"`
	PaidAt    string `json:"paid_at"`
}

// VerifyTransaction calls GET /transaction/verify/{reference} on the
// package-level client.
func VerifyTransaction(ctx context.Context, reference string) (*VerifyResult, error) {
	if defaultClient == nil || defaultClient.secretKey == "" {
		return nil, ErrNotConfigured
	}
	return defaultClient.VerifyTransaction(ctx, reference)
}

func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*VerifyResult, error) {
	if c.secretKey == "" {
		return nil, ErrNotConfigured
	}
	if reference == "" {
		return nil, errors.New("transaction reference required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+url.PathEscape(reference), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack verify request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("paystack verify: http %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var env verifyResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("paystack verify: bad payload: %w", err)
	}
	if !env.Status {
		return nil, fmt.Errorf("paystack verify: %s", env.Message)
	}

	var data verifyData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("paystack verify: bad data: %w", err)
	}

	return &VerifyResult{
		Reference:  data.Reference,
		Status:     data.Status,
		AmountKobo: data.Amount,
		Channel:    data.Channel,
		PaidAt:     data.PaidAt,
		GatewayRaw: env.Data,
	}, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
