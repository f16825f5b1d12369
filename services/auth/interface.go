package auth

import (
	"context"
	"time"

	"github.com/J-Hunxho/LowkeyLuxuryMain/models"
)

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// AuthService is the mocked authentication collaborator. Login fabricates an
// identity instead of verifying one; only one user is signed in at a time.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Signup(ctx context.Context, name, email, password string) (*AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
}

// DefaultAuthService implements AuthService. The delay fields simulate
// network latency; tests zero them.
type DefaultAuthService struct {
	Store UserStore

	LoginDelay  time.Duration
	SignupDelay time.Duration
	LogoutDelay time.Duration
}

// NewDefaultAuthService builds the service with the simulated latencies the
// site front-end was written against.
func NewDefaultAuthService(store UserStore) *DefaultAuthService {
	return &DefaultAuthService{
		Store:       store,
		LoginDelay:  1 * time.Second,
		SignupDelay: 1200 * time.Millisecond,
		LogoutDelay: 500 * time.Millisecond,
	}
}
