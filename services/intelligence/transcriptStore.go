// File: services/intelligence/transcriptStore.go
package ai

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/J-Hunxho/LowkeyLuxuryMain/models"

	"github.com/go-redis/redis/v8"
)

const transcriptPrefix = "chat:transcript:"

// TranscriptStore persists chat transcripts by session id.
type TranscriptStore interface {
	Get(ctx context.Context, sessionID string) (*models.ChatTranscript, error)
	Save(ctx context.Context, transcript *models.ChatTranscript) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisTranscriptStore keeps transcripts in Redis with a TTL.
type RedisTranscriptStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTranscriptStore(client *redis.Client, ttl time.Duration) *RedisTranscriptStore {
	return &RedisTranscriptStore{client: client, ttl: ttl}
}

func (s *RedisTranscriptStore) Get(ctx context.Context, sessionID string) (*models.ChatTranscript, error) {
	data, err := s.client.Get(ctx, transcriptPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrChatSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var transcript models.ChatTranscript
	if err := json.Unmarshal([]byte(data), &transcript); err != nil {
		return nil, err
	}
	return &transcript, nil
}

func (s *RedisTranscriptStore) Save(ctx context.Context, transcript *models.ChatTranscript) error {
	transcript.LastUpdatedAt = time.Now()
	data, err := json.Marshal(transcript)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, transcriptPrefix+transcript.SessionID, data, s.ttl).Err()
}

func (s *RedisTranscriptStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, transcriptPrefix+sessionID).Err()
}

// MemoryTranscriptStore keeps transcripts in-process; they are lost on restart,
// matching the lifetime of one chat widget session.
type MemoryTranscriptStore struct {
	mu          sync.Mutex
	transcripts map[string]models.ChatTranscript
}

func NewMemoryTranscriptStore() *MemoryTranscriptStore {
	return &MemoryTranscriptStore{transcripts: make(map[string]models.ChatTranscript)}
}

func (s *MemoryTranscriptStore) Get(ctx context.Context, sessionID string) (*models.ChatTranscript, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	transcript, ok := s.transcripts[sessionID]
	if !ok {
		return nil, ErrChatSessionNotFound
	}
	out := transcript
	out.Turns = append([]models.ChatTurn(nil), transcript.Turns...)
	return &out, nil
}

func (s *MemoryTranscriptStore) Save(ctx context.Context, transcript *models.ChatTranscript) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	transcript.LastUpdatedAt = time.Now()
	stored := *transcript
	stored.Turns = append([]models.ChatTurn(nil), transcript.Turns...)
	s.transcripts[transcript.SessionID] = stored
	return nil
}

func (s *MemoryTranscriptStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.transcripts, sessionID)
	return nil
}
