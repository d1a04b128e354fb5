package payment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
)

func TestSimulator_Charge(t *testing.T) {
	s := NewSimulator(time.Millisecond, zap.NewNop())

	receipt, err := s.Charge(context.Background(), domain.Charge{UserID: 1, AmountUSD: 10, Title: "Church Filter"})
	require.NoError(t, err)
	assert.Equal(t, 10, receipt.AmountUSD)
	_, err = uuid.Parse(receipt.Reference)
	assert.NoError(t, err)
	assert.False(t, receipt.PaidAt.IsZero())
}

func TestSimulator_ChargeRejectsNonPositiveAmount(t *testing.T) {
	s := NewSimulator(time.Millisecond, zap.NewNop())

	_, err := s.Charge(context.Background(), domain.Charge{UserID: 1})
	assert.ErrorIs(t, err, domain.ErrPaymentDeclined)
}

func TestSimulator_ChargeCancelled(t *testing.T) {
	s := NewSimulator(time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Charge(ctx, domain.Charge{UserID: 1, AmountUSD: 20})
	assert.ErrorIs(t, err, context.Canceled)
}
