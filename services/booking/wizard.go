// File: services/booking/wizard.go
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/J-Hunxho/LowkeyLuxuryMain/models"
	"github.com/J-Hunxho/LowkeyLuxuryMain/services/catalog"

	"github.com/google/uuid"
)

// InitiateSession creates a new wizard session at the catalog step. The userID
// may be empty; authentication is enforced at the catalog->schedule and
// tier->schedule transitions, not at session creation.
func (s *DefaultWizardService) InitiateSession(ctx context.Context, userID string) (*models.BookingSession, error) {
	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Step:      models.StepCatalog,
		CreatedAt: time.Now(),
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession returns the session unchanged.
func (s *DefaultWizardService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// SelectService handles the catalog step. Packages with tiers advance to tier
// selection; packages without tiers advance straight to scheduling, gated on a
// signed-in user. When the gate fails the selection is kept, the step stays at
// catalog, and ErrAuthRequired is returned so the caller can prompt for auth.
func (s *DefaultWizardService) SelectService(ctx context.Context, sessionID, serviceID, userID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepCatalog {
		return nil, ErrInvalidTransition
	}

	pkg, err := catalog.GetByID(serviceID)
	if err != nil {
		return nil, err
	}

	session.Service = pkg
	session.OriginServiceID = pkg.ID

	if pkg.HasTiers() {
		session.Origin = models.OriginTier
		session.Step = models.StepTierSelect
		if err := s.Store.Save(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	}

	session.Origin = models.OriginDirect
	if userID == "" {
		if err := s.Store.Save(ctx, session); err != nil {
			return nil, err
		}
		return nil, ErrAuthRequired
	}

	session.UserID = userID
	session.Step = models.StepSchedule
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectTier derives the session's package from the chosen tier and advances
// to scheduling, behind the same auth gate as SelectService. Derivation always
// starts from the original catalog entry, so re-selecting a tier after backing
// up never compounds a previous derivation.
func (s *DefaultWizardService) SelectTier(ctx context.Context, sessionID, tierID, userID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepTierSelect || session.OriginServiceID == "" {
		return nil, ErrInvalidTransition
	}

	base, err := catalog.GetByID(session.OriginServiceID)
	if err != nil {
		return nil, fmt.Errorf("session references unknown service: %w", err)
	}
	tier, err := catalog.FindTier(*base, tierID)
	if err != nil {
		return nil, err
	}

	derived := ApplyTier(*base, *tier)
	session.Service = &derived
	session.Origin = models.OriginTier

	if userID == "" {
		if err := s.Store.Save(ctx, session); err != nil {
			return nil, err
		}
		return nil, ErrAuthRequired
	}

	session.UserID = userID
	session.Step = models.StepSchedule
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetSchedule records the consultation slot and advances to payment. Both
// fields must be non-empty; no further validation is applied to the values.
func (s *DefaultWizardService) SetSchedule(ctx context.Context, sessionID, date, timeOfDay string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSchedule {
		return nil, ErrInvalidTransition
	}
	if date == "" || timeOfDay == "" {
		return nil, ErrScheduleIncomplete
	}

	session.Date = date
	session.Time = timeOfDay
	session.Step = models.StepPayment
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back walks one step backwards. From the schedule step the session's stored
// origin decides the target: a tier-derived selection returns to tier select
// with the ORIGINAL catalog package restored, a direct selection returns to
// the catalog with the selection cleared.
func (s *DefaultWizardService) Back(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.Step {
	case models.StepTierSelect:
		session.Service = nil
		session.Origin = models.OriginNone
		session.OriginServiceID = ""
		session.Step = models.StepCatalog

	case models.StepSchedule:
		if session.Origin == models.OriginTier {
			base, err := catalog.GetByID(session.OriginServiceID)
			if err != nil {
				return nil, fmt.Errorf("session references unknown service: %w", err)
			}
			session.Service = base
			session.Step = models.StepTierSelect
		} else {
			session.Service = nil
			session.Origin = models.OriginNone
			session.OriginServiceID = ""
			session.Step = models.StepCatalog
		}

	case models.StepPayment:
		// Nothing is cleared; date and time survive a round trip.
		session.Step = models.StepSchedule

	default:
		return nil, ErrInvalidTransition
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmPayment charges the card and, on success, finalizes the booking and
// enters the confirmed step. A declined payment leaves the session untouched
// at the payment step; there is no retry logic here.
func (s *DefaultWizardService) ConfirmPayment(ctx context.Context, sessionID string, card models.CardDetails) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepPayment {
		return nil, ErrInvalidTransition
	}
	if session.Service == nil || session.Date == "" || session.Time == "" {
		return nil, ErrInvalidTransition
	}
	if session.UserID == "" {
		return nil, ErrAuthRequired
	}

	req := models.PaymentRequest{Amount: session.Service.Price, Card: card}
	if _, err := s.Payments.ProcessPayment(ctx, req); err != nil {
		return nil, err
	}

	ref, err := s.Bookings.CreateBooking(ctx, session.UserID, session.Service.ID, session.Date, session.Time)
	if err != nil {
		return nil, err
	}

	session.BookingRef = ref
	session.Step = models.StepConfirmed
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ResetSession is the explicit manual reset from the confirmed step back to
// the catalog, clearing the selection.
func (s *DefaultWizardService) ResetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirmed {
		return nil, ErrInvalidTransition
	}

	session.Service = nil
	session.Origin = models.OriginNone
	session.OriginServiceID = ""
	session.Date = ""
	session.Time = ""
	session.BookingRef = ""
	session.Step = models.StepCatalog
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
