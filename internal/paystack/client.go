package paystack

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

const defaultBaseURL = "https://api.paystack.co"

// ErrInvalidReference is returned for references that cannot form a single
// path segment of the verify URL. References arrive from the callback query
// string, so they are untrusted input.
var ErrInvalidReference = errors.New("paystack: invalid transaction reference")

// VerifyData is the subset of Paystack's transaction object the platform
// cares about. Amount is in kobo.
type VerifyData struct {
	Status          string `json:"status"`
	Reference       string `json:"reference"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	GatewayResponse string `json:"gateway_response"`
	PaidAt          string `json:"paid_at"`
}

type verifyEnvelope struct {
	Status  bool       `json:"status"`
	Message string     `json:"message"`
	Data    VerifyData `json:"data"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBaseURL exists for tests pointing at an httptest server.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// VerifyTransaction calls Paystack's server-to-server verification endpoint.
// The secret key comes from platform settings per call so a rotated key
// takes effect without a restart.
func (c *Client) VerifyTransaction(ctx context.Context, secretKey, reference string) (*VerifyData, error) {
	escaped := url.PathEscape(reference)
	if escaped == "" || escaped == "." || escaped == ".." {
		return nil, ErrInvalidReference
	}
	endpoint := fmt.Sprintf("%s/transaction/verify/%s", c.baseURL, escaped)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+secretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack verify request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("paystack verify read: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("paystack verify status %d", resp.StatusCode)
	}

	var envelope verifyEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("paystack verify decode: %w", err)
	}
	if !envelope.Status {
		return nil, fmt.Errorf("paystack verify rejected: %s", envelope.Message)
	}

	return &envelope.Data, nil
}
