package gateway

import (
	"context"

	"github.com/alovak/payment-gateway/gateway/models"
)

// ReadService looks up stored payments by identifier. It decouples the HTTP
// boundary from the storage implementation and carries no logic of its own.
type ReadService struct {
	repo PaymentRepository
}

func NewReadService(repo PaymentRepository) *ReadService {
	return &ReadService{repo: repo}
}

func (s *ReadService) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	return s.repo.Get(ctx, id)
}
