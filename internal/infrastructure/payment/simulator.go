package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Simulator stands in for a payment gateway. Every charge succeeds after a
// fixed delay unless the context is cancelled first; no money moves.
type Simulator struct {
	delay  time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func NewSimulator(delay time.Duration, logger *zap.Logger) *Simulator {
	return &Simulator{
		delay:  delay,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Simulator) Charge(ctx context.Context, charge domain.Charge) (*domain.Receipt, error) {
	if charge.AmountUSD <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrPaymentDeclined)
	}

	s.logger.Info("presenting simulated payment",
		zap.Int("user_id", charge.UserID),
		zap.Int("amount_usd", charge.AmountUSD),
		zap.String("title", charge.Title),
	)

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("payment cancelled: %w", ctx.Err())
	case <-timer.C:
	}

	receipt := &domain.Receipt{
		Reference: uuid.NewString(),
		AmountUSD: charge.AmountUSD,
		PaidAt:    s.now(),
	}

	s.logger.Info("simulated payment confirmed",
		zap.Int("user_id", charge.UserID),
		zap.String("reference", receipt.Reference),
	)
	return receipt, nil
}
