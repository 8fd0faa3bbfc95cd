package gateway

import (
	"context"
	"fmt"

	"github.com/alovak/payment-gateway/gateway/models"
	"github.com/alovak/payment-gateway/internal/cardgen"
	"github.com/alovak/payment-gateway/internal/expiry"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Processor orchestrates a validated payment: it projects the request into a
// bank authorization request, submits it, interprets the decision and
// persists the resulting record. It must only be invoked after validation
// succeeds.
type Processor struct {
	repo   PaymentRepository
	bank   BankClient
	logger *slog.Logger
}

func NewProcessor(repo PaymentRepository, bank BankClient, logger *slog.Logger) *Processor {
	return &Processor{
		repo:   repo,
		bank:   bank,
		logger: logger,
	}
}

// Process submits the payment to the acquiring bank and stores the outcome.
// A transport failure or an uninterpretable bank response aborts the whole
// operation before anything is written; callers distinguish those from a
// decline via ErrBankUnavailable and ErrBankResponseMalformed. Only the last
// four digits of the card number survive past this call.
func (p *Processor) Process(ctx context.Context, req models.PaymentRequest) (*models.Payment, error) {
	bankReq := models.BankPaymentRequest{
		CardNumber: req.CardNumber,
		ExpiryDate: expiry.Format(req.ExpiryMonth, req.ExpiryYear),
		Currency:   req.Currency,
		Amount:     req.Amount,
		CVV:        req.CVV,
	}

	// Single attempt, no retries. There is no idempotency guard: a caller
	// retrying a failed submission can produce a duplicate record.
	bankResp, err := p.bank.Authorize(ctx, bankReq)
	if err != nil {
		return nil, fmt.Errorf("authorizing payment: %w", err)
	}

	status := models.StatusDeclined
	if bankResp.Authorized {
		status = models.StatusAuthorized
	}

	payment := &models.Payment{
		ID:                 uuid.New().String(),
		CardNumberLastFour: cardgen.LastN(req.CardNumber, 4),
		ExpiryMonth:        req.ExpiryMonth,
		ExpiryYear:         req.ExpiryYear,
		Currency:           req.Currency,
		Amount:             req.Amount,
		Status:             status,
		AuthorizationCode:  bankResp.AuthorizationCode,
	}

	if err := p.repo.Add(ctx, payment); err != nil {
		return nil, fmt.Errorf("storing payment: %w", err)
	}

	p.logger.Info("payment processed",
		slog.String("payment_id", payment.ID),
		slog.String("status", string(payment.Status)),
	)

	return payment, nil
}
