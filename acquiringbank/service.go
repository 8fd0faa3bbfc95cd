// Package acquiringbank is a simulator of the acquiring bank the payment
// gateway authorizes against. It implements the bank's wire contract without
// a ledger: the decision is keyed off the card number so callers can drive
// either outcome.
package acquiringbank

import (
	"fmt"

	"github.com/alovak/payment-gateway/internal/cardgen"
	"github.com/alovak/payment-gateway/internal/expiry"
	"github.com/google/uuid"
)

var ErrInvalidRequest = fmt.Errorf("invalid authorization request")

// AuthorizationRequest is the wire shape gateways submit to the bank.
type AuthorizationRequest struct {
	CardNumber string `json:"card_number"`
	// ExpiryDate is the combined expiry in MM/YYYY.
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        int    `json:"cvv"`
}

// AuthorizationResponse is the bank's decision. AuthorizationCode is set only
// on approval.
type AuthorizationResponse struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}

// Service decides authorization outcomes: a card number with an odd last
// digit is authorized, an even one is declined.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Authorize(req AuthorizationRequest) (AuthorizationResponse, error) {
	pan := cardgen.NormalizePAN(req.CardNumber)
	if !cardgen.IsDigits(pan) {
		return AuthorizationResponse{}, fmt.Errorf("card_number must be digits: %w", ErrInvalidRequest)
	}
	if _, _, err := expiry.Parse(req.ExpiryDate); err != nil {
		return AuthorizationResponse{}, fmt.Errorf("expiry_date: %v: %w", err, ErrInvalidRequest)
	}
	if req.Amount <= 0 {
		return AuthorizationResponse{}, fmt.Errorf("amount must be positive: %w", ErrInvalidRequest)
	}

	last := pan[len(pan)-1] - '0'
	if last%2 == 1 {
		return AuthorizationResponse{
			Authorized:        true,
			AuthorizationCode: uuid.New().String(),
		}, nil
	}

	return AuthorizationResponse{Authorized: false}, nil
}
