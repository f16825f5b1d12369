// File: models/payment.go
package models

import "time"

// CardDetails carries the raw card form fields. Nothing here is ever sent to
// a real gateway; the processor only runs structural validation.
type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// PaymentRequest is the processor's input.
type PaymentRequest struct {
	Amount int         `json:"amount"`
	Card   CardDetails `json:"card"`
}

// PaymentReceipt is returned by a successful (simulated) charge.
type PaymentReceipt struct {
	PaymentID string    `json:"paymentId"`
	Amount    int       `json:"amount"`
	PaidAt    time.Time `json:"paidAt"`
}
