// File: models/booking_session.go
package models

import "time"

// WizardStep enumerates the booking wizard's linear states.
type WizardStep int

const (
	StepCatalog WizardStep = iota + 1
	StepTierSelect
	StepSchedule
	StepPayment
	StepConfirmed
)

func (s WizardStep) String() string {
	switch s {
	case StepCatalog:
		return "catalog"
	case StepTierSelect:
		return "tier_select"
	case StepSchedule:
		return "schedule"
	case StepPayment:
		return "payment"
	case StepConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// ServiceOrigin records which path produced the session's current service
// object, so back-navigation from the schedule step never has to re-derive it.
type ServiceOrigin string

const (
	OriginNone   ServiceOrigin = ""
	OriginDirect ServiceOrigin = "direct"
	OriginTier   ServiceOrigin = "tier"
)

// BookingSession is the explicit state of one run through the booking wizard.
// Lifecycle is owned by the caller: sessions are created on demand, addressed
// by SessionID, and expire with the store's TTL.
type BookingSession struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId,omitempty"`

	Step WizardStep `json:"step"`

	// Service is the currently selected package. After a tier selection it is
	// a derived copy; OriginServiceID always points at the catalog entry the
	// selection started from.
	Service         *ServicePackage `json:"service,omitempty"`
	Origin          ServiceOrigin   `json:"origin,omitempty"`
	OriginServiceID string          `json:"originServiceId,omitempty"`

	Date string `json:"date,omitempty"`
	Time string `json:"time,omitempty"`

	BookingRef string `json:"bookingRef,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
