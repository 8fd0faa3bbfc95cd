package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alovak/payment-gateway/gateway/models"
)

var (
	// ErrBankUnavailable means the authorization call could not be completed:
	// the bank was unreachable, the call timed out, or the bank answered with
	// a non-success status. This is distinct from a decline.
	ErrBankUnavailable = fmt.Errorf("acquiring bank unavailable")

	// ErrBankResponseMalformed means the bank answered with a success status
	// but the body could not be interpreted.
	ErrBankResponseMalformed = fmt.Errorf("acquiring bank response malformed")
)

// BankClient submits an authorization request to the acquiring bank and
// returns its decision. Implementations make a single attempt per call.
type BankClient interface {
	Authorize(ctx context.Context, req models.BankPaymentRequest) (models.BankPaymentResponse, error)
}

type bankHTTPClient struct {
	base string
	http *http.Client
}

// NewBankClient returns a BankClient for the bank at base. A non-positive
// timeout falls back to 10 seconds; an expired timeout surfaces as
// ErrBankUnavailable.
func NewBankClient(base string, timeout time.Duration) BankClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &bankHTTPClient{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

func (c *bankHTTPClient) Authorize(ctx context.Context, bankReq models.BankPaymentRequest) (models.BankPaymentResponse, error) {
	body, err := json.Marshal(bankReq)
	if err != nil {
		return models.BankPaymentResponse{}, fmt.Errorf("marshaling bank request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/payments", bytes.NewReader(body))
	if err != nil {
		return models.BankPaymentResponse{}, fmt.Errorf("building bank request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return models.BankPaymentResponse{}, fmt.Errorf("%w: %v", ErrBankUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return models.BankPaymentResponse{}, fmt.Errorf("%w: status %d", ErrBankUnavailable, resp.StatusCode)
	}

	bankResp := models.BankPaymentResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&bankResp); err != nil {
		return models.BankPaymentResponse{}, fmt.Errorf("%w: %v", ErrBankResponseMalformed, err)
	}

	return bankResp, nil
}
