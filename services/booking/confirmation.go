package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingCreator finalizes a booking and returns an opaque reference.
type BookingCreator interface {
	CreateBooking(ctx context.Context, userID, serviceID, date, timeOfDay string) (string, error)
}

// MockBookingCreator always succeeds after a fixed delay. There is no conflict
// detection and the reference is not stored anywhere durable.
type MockBookingCreator struct {
	logger *zap.Logger
	delay  time.Duration
}

func NewMockBookingCreator(logger *zap.Logger, delay time.Duration) *MockBookingCreator {
	return &MockBookingCreator{logger: logger, delay: delay}
}

func (b *MockBookingCreator) CreateBooking(ctx context.Context, userID, serviceID, date, timeOfDay string) (string, error) {
	if err := wait(ctx, b.delay); err != nil {
		return "", err
	}
	ref := newBookingRef()
	b.logger.Info("Booking created",
		zap.String("ref", ref),
		zap.String("userId", userID),
		zap.String("serviceId", serviceID),
		zap.String("date", date),
		zap.String("time", timeOfDay),
	)
	return ref, nil
}

// newBookingRef produces an opaque uppercase alphanumeric reference.
func newBookingRef() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "BK-" + strings.ToUpper(raw[:9])
}
