// File: services/intelligence/chat.go
package ai

import (
	"context"
	"time"

	"github.com/J-Hunxho/LowkeyLuxuryMain/models"
	"github.com/J-Hunxho/LowkeyLuxuryMain/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fallbackReply is returned verbatim when the remote call fails. The failed
// round trip keeps the user's turn in the transcript but adds no model turn;
// the fallback text exists only in the caller-visible reply.
const fallbackReply = "I encountered a momentary lapse in connection. Please rephrase your query."

// CreateSession starts a new empty transcript. Fails when chat is disabled
// (no credential configured).
func (s *DefaultChatService) CreateSession(ctx context.Context) (string, error) {
	if s.Generator == nil {
		return "", ErrChatUnavailable
	}

	transcript := &models.ChatTranscript{
		SessionID: uuid.New().String(),
		CreatedAt: time.Now(),
	}
	if err := s.Store.Save(ctx, transcript); err != nil {
		return "", err
	}
	return transcript.SessionID, nil
}

// SendMessage appends the user turn, forwards the whole transcript to the
// generation endpoint, appends the reply turn, and returns the reply text.
// Remote failures are swallowed into a fixed fallback reply; nothing is
// retried.
func (s *DefaultChatService) SendMessage(ctx context.Context, sessionID, text string) (string, error) {
	if s.Generator == nil {
		return "", ErrChatUnavailable
	}

	transcript, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}

	transcript.Turns = append(transcript.Turns, models.ChatTurn{Role: models.ChatRoleUser, Text: text})

	reply, err := s.Generator.Generate(ctx, transcript.Turns)
	if err != nil {
		utils.GetLogger().Warn("chat generation failed",
			zap.String("sessionId", sessionID),
			zap.Error(err),
		)
		if saveErr := s.Store.Save(ctx, transcript); saveErr != nil {
			return "", saveErr
		}
		return fallbackReply, nil
	}

	transcript.Turns = append(transcript.Turns, models.ChatTurn{Role: models.ChatRoleModel, Text: reply})
	if err := s.Store.Save(ctx, transcript); err != nil {
		return "", err
	}
	return reply, nil
}

// GetTranscript returns the session's transcript.
func (s *DefaultChatService) GetTranscript(ctx context.Context, sessionID string) (*models.ChatTranscript, error) {
	return s.Store.Get(ctx, sessionID)
}
