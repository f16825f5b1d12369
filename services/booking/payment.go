package booking

import (
	"context"
	"errors"
	"time"

	"github.com/J-Hunxho/LowkeyLuxuryMain/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// --- Interfaces ---

// PaymentProcessor charges a card. The only implementation is a simulation:
// no money moves, validation is structural, and the call is atomic from the
// caller's perspective (no idempotency key, no partial state).
type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentReceipt, error)
}

// MockPaymentProcessor approves any structurally valid card after a fixed
// simulated delay.
type MockPaymentProcessor struct {
	logger *zap.Logger
	delay  time.Duration
}

// NewMockPaymentProcessor builds a processor with the given simulated latency.
func NewMockPaymentProcessor(logger *zap.Logger, delay time.Duration) *MockPaymentProcessor {
	return &MockPaymentProcessor{logger: logger, delay: delay}
}

// ProcessPayment validates the request, waits the simulated processing delay,
// and returns a receipt. A card number with fewer than 13 digits is declined.
func (p *MockPaymentProcessor) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentReceipt, error) {
	if req.Amount <= 0 {
		return nil, errors.New("invalid payment amount")
	}
	if digitCount(req.Card.Number) < 13 {
		return nil, PaymentDeclinedError{Reason: "invalid card number"}
	}

	if err := wait(ctx, p.delay); err != nil {
		return nil, err
	}

	receipt := &models.PaymentReceipt{
		PaymentID: "pi_" + uuid.New().String(),
		Amount:    req.Amount,
		PaidAt:    time.Now(),
	}
	p.logger.Info("Card payment successful", zap.String("paymentId", receipt.PaymentID), zap.Int("amount", receipt.Amount))
	return receipt, nil
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// wait blocks for the simulated latency or until the context is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
