// File: models/chat.go
package models

import "time"

// ChatRole identifies who produced a turn. The values match the roles the
// generation API expects, so turns replay without translation.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatTurn is one message in a transcript.
type ChatTurn struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// ChatTranscript is the append-only history of one chat session.
type ChatTranscript struct {
	SessionID     string     `json:"sessionId"`
	Turns         []ChatTurn `json:"turns"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastUpdatedAt time.Time  `json:"lastUpdatedAt"`
}
