// File: services/intelligence/interface.go
package ai

import (
	"context"
	"errors"

	"github.com/J-Hunxho/LowkeyLuxuryMain/models"
)

var (
	// ErrChatUnavailable is returned when no generation credential is configured.
	ErrChatUnavailable = errors.New("chat is not configured")

	// ErrChatSessionNotFound is returned for unknown or expired chat sessions.
	ErrChatSessionNotFound = errors.New("chat session not found or expired")
)

// Generator produces a model reply for a transcript whose last turn is the
// pending user message.
type Generator interface {
	Generate(ctx context.Context, turns []models.ChatTurn) (string, error)
}

// ChatService manages chat sessions against the remote generation endpoint.
type ChatService interface {
	CreateSession(ctx context.Context) (string, error)
	SendMessage(ctx context.Context, sessionID, text string) (string, error)
	GetTranscript(ctx context.Context, sessionID string) (*models.ChatTranscript, error)
}

// DefaultChatService implements ChatService. A nil Generator disables the
// chat entirely (no credential configured).
type DefaultChatService struct {
	Generator Generator
	Store     TranscriptStore
}
