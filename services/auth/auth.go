// File: services/auth/auth.go
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/J-Hunxho/LowkeyLuxuryMain/models"
	"github.com/J-Hunxho/LowkeyLuxuryMain/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// Login validates only the password length (the mock never checks a stored
// credential), fabricates a user record named after the email's local part,
// and overwrites the single current-user record.
func (s *DefaultAuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	if err := wait(ctx, s.LoginDelay); err != nil {
		return nil, err
	}
	if len(password) < 6 {
		return nil, ErrInvalidCredentials
	}

	name := strings.SplitN(email, "@", 2)[0]
	return s.establishUser(ctx, name, email, password)
}

// Signup never fails validation; it fabricates a fresh identity with the
// provided name.
func (s *DefaultAuthService) Signup(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	if err := wait(ctx, s.SignupDelay); err != nil {
		return nil, err
	}
	return s.establishUser(ctx, name, email, password)
}

// Logout clears the current-user record.
func (s *DefaultAuthService) Logout(ctx context.Context) error {
	if err := wait(ctx, s.LogoutDelay); err != nil {
		return err
	}
	return s.Store.ClearCurrentUser(ctx)
}

// CurrentUser returns the signed-in user or ErrNotAuthenticated.
func (s *DefaultAuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	user, err := s.Store.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	return user, nil
}

func (s *DefaultAuthService) establishUser(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	// The hash is stored for record completeness only; the mock login never
	// verifies it.
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("establishUser: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	user := models.User{
		ID:           fmt.Sprintf("user_%d", time.Now().UnixMilli()),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	}

	if err := s.Store.SaveCurrentUser(ctx, user); err != nil {
		utils.GetLogger().Error("establishUser: failed to save user record", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenTTL)
	if err != nil {
		utils.GetLogger().Error("establishUser: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:    user.ID,
		Token: token,
		Name:  user.Name,
		Email: user.Email,
	}, nil
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
