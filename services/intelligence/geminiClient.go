// File: services/intelligence/geminiClient.go
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/J-Hunxho/LowkeyLuxuryMain/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// systemInstruction is the fixed persona sent with every generation request.
const systemInstruction = `
You are "Luxe", the Lead Solutions Architect for Lowkey Luxury.
Your persona is sophisticated, highly technical, and focused on "Architecting Production".
You specialize in Full-Stack development (Front-end, Back-end), API integration, Marketing Infrastructure, and Bot automation.
Your responses should be strategic, architectural, and precise. You translate business visions into technical roadmaps.
Do not use emojis. Use elite technical vocabulary mixed with executive-level strategy.
You are talking to a Founder or C-suite executive looking to build a digital empire.
`

type GeminiClient struct {
	model *genai.GenerativeModel
}

// NewGeminiClient builds a client for the given model name with the persona
// instruction and the generation settings the site was tuned with.
func NewGeminiClient(apiKey, modelName string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}
	model.SetTemperature(0.7)
	model.SetTopK(40)
	model.SetTopP(0.95)

	return &GeminiClient{model: model}, nil
}

// Generate submits the whole transcript; the final turn must be the pending
// user message. Returns an error on transport failure or an empty candidate.
func (g *GeminiClient) Generate(ctx context.Context, turns []models.ChatTurn) (string, error) {
	if len(turns) == 0 {
		return "", fmt.Errorf("empty transcript")
	}

	chat := g.model.StartChat()
	for _, turn := range turns[:len(turns)-1] {
		chat.History = append(chat.History, &genai.Content{
			Role:  string(turn.Role),
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}

	resp, err := chat.SendMessage(ctx, genai.Text(turns[len(turns)-1].Text))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", fmt.Errorf("gemini returned empty text")
	}
	return sb.String(), nil
}
