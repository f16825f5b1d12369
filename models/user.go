// File: models/user.go
package models

import "time"

// User is the single signed-in identity the site works with. The record is
// fabricated by the mock auth service and persisted as the sole entry in the
// session store; it is overwritten by every login and removed on logout.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
