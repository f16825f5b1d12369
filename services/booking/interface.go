package booking

import (
	"context"

	"github.com/J-Hunxho/LowkeyLuxuryMain/models"
)

// WizardService drives the five-step booking flow:
// catalog -> tier select -> schedule -> payment -> confirmed.
type WizardService interface {
	InitiateSession(ctx context.Context, userID string) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SelectService(ctx context.Context, sessionID, serviceID, userID string) (*models.BookingSession, error)
	SelectTier(ctx context.Context, sessionID, tierID, userID string) (*models.BookingSession, error)
	SetSchedule(ctx context.Context, sessionID, date, timeOfDay string) (*models.BookingSession, error)
	Back(ctx context.Context, sessionID string) (*models.BookingSession, error)
	ConfirmPayment(ctx context.Context, sessionID string, card models.CardDetails) (*models.BookingSession, error)
	ResetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
}

// DefaultWizardService implements WizardService.
type DefaultWizardService struct {
	Store    SessionStore
	Payments PaymentProcessor
	Bookings BookingCreator
}
