// Package llm talks to an OpenAI-compatible completion endpoint. The
// endpoint is configurable so local models and test servers work the
// same way as the hosted API.
package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/ayurscope/ayurscope/pkg/almanac"
	"github.com/ayurscope/ayurscope/pkg/config"
	"github.com/ayurscope/ayurscope/pkg/domain"
)

// Advisor generates guidance responses from composed conversation turns
type Advisor struct {
	client *openai.Client
	config config.LLMConfig
}

// NewAdvisor creates an advisor for the configured endpoint and model
func NewAdvisor(cfg config.LLMConfig) *Advisor {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	return &Advisor{client: openai.NewClientWithConfig(clientConfig), config: cfg}
}

// Complete sends the composed turns to the model and returns the reply.
// The configured request timeout is applied on top of the caller's context.
func (a *Advisor) Complete(ctx context.Context, turns []domain.Turn) (string, error) {
	if len(turns) == 0 {
		return "", fmt.Errorf("no turns to complete")
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, len(turns))
	for i, t := range turns {
		messages[i] = openai.ChatCompletionMessage{Role: string(t.Role), Content: t.Content}
	}

	req := openai.ChatCompletionRequest{
		Model:       a.config.Model,
		Temperature: float32(a.config.Temperature),
		MaxTokens:   a.config.MaxTokens,
		TopP:        0.8,
		Messages:    messages,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}
	return resp.Choices[0].Message.Content, nil
}

// quickPracticeSystem frames the model for micro-practice generation
const quickPracticeSystem = "You are an Ayurvedic wellness guide. Provide brief, practical micro-practices that anyone can do immediately."

// QuickPractice asks the model for a one-minute balancing practice tuned
// to the current season, time of day, and the user's dominant dosha when
// known. An empty dominant means the constitution is not yet assessed.
func (a *Advisor) QuickPractice(ctx context.Context, ritu almanac.Ritu, part almanac.DayPart, dominant string) (string, error) {
	constitution := "- User constitution: Not yet assessed"
	if dominant != "" {
		constitution = fmt.Sprintf("- User's constitution: %s-dominant", dominant)
	}

	prompt := fmt.Sprintf(`Generate a concise 1-minute Ayurvedic balancing micro-practice for:
- Time of day: %s
- Current season: %s (%s dominant)
%s

Instructions:
1. Keep it under 100 words
2. Include ONE simple practice (breath, awareness, or sensory tip)
3. Make it doable right now in 60 seconds
4. Explain briefly WHY it helps balance doshas
5. Use warm, encouraging tone
6. Format: Start with the practice, then explain the benefit`,
		part.Period, ritu.Name, ritu.Dosha, constitution)

	return a.Complete(ctx, []domain.Turn{
		{Role: domain.RoleSystem, Content: quickPracticeSystem},
		{Role: domain.RoleUser, Content: prompt},
	})
}
