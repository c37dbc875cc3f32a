package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/proptoken/proptoken-backend/internal/adapter"
	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/logger"
)

// Charge is a payment request for a sale
type Charge struct {
	SaleID         string
	BuyerAccountID string
	Amount         decimal.Decimal
	Currency       string
}

// Gateway collects payment for a sale and returns a payment reference
//
//go:generate mockgen -source=gateway.go -destination=../mocks/payment_gateway.go -package=mocks -mock_names=Gateway=MockPaymentGateway
type Gateway interface {
	Charge(ctx context.Context, charge Charge) (string, error)
}

// simulator approves every charge after a fixed latency
type simulator struct {
	latency time.Duration
	clock   adapter.Clock
}

// NewSimulator creates a gateway that always succeeds after latency
func NewSimulator(latency time.Duration, clock adapter.Clock) Gateway {
	return &simulator{latency: latency, clock: clock}
}

func (s *simulator) Charge(ctx context.Context, charge Charge) (string, error) {
	if !charge.Amount.IsPositive() {
		return "", domain.NewValidationError("amount", "must be positive")
	}

	if err := s.clock.Sleep(ctx, s.latency); err != nil {
		return "", fmt.Errorf("payment interrupted: %w", err)
	}

	ref := "SIM-" + ulid.MustNewDefault(s.clock.Now()).String()

	logger.InfoCtx(ctx, "Simulated payment approved",
		zap.String("saleID", charge.SaleID),
		zap.String("buyer", charge.BuyerAccountID),
		zap.String("amount", charge.Amount.String()),
		zap.String("currency", charge.Currency),
		zap.String("paymentRef", ref))

	return ref, nil
}
