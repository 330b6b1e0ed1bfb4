package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/brandlab/positioning-api/internal/config"
	"google.golang.org/genai"
)

// GeminiService talks to the Gemini API. It is constructed once at boot
// and shared read-only across requests.
type GeminiService struct {
	client     *genai.Client
	model      string
	maxRetries int
	sleep      func(time.Duration)
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	if geminiConfig.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiService{
		client:     client,
		model:      geminiConfig.Model,
		maxRetries: maxGenerateRetries,
		sleep:      time.Sleep,
	}, nil
}

// GenerateText returns the model's text for the prompt, or "" when the
// response carries no text. Rate-limit failures are retried with delays of
// 10s, 20s, 40s (capped at 60s); every other error, and retry exhaustion,
// propagates to the caller unmodified.
func (s *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err == nil {
			return result.Text(), nil
		}
		lastErr = err
		if !isRateLimited(err) || attempt == s.maxRetries {
			return "", err
		}

		delay := backoffDelay(attempt)
		log.Printf("gemini rate limited, retry %d/%d after %s", attempt+1, s.maxRetries, delay)
		if err := ctx.Err(); err != nil {
			return "", err
		}
		s.sleep(delay)
	}
	return "", lastErr
}

// Chat answers one interview turn, seeding the session with the fixed
// system instruction and the replayed history.
func (s *GeminiService) Chat(ctx context.Context, history []Turn, message string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(interviewSystemInstruction, genai.RoleUser),
	}

	contents := make([]*genai.Content, 0, len(history))
	for _, t := range history {
		role := genai.Role(genai.RoleUser)
		if t.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Content, role))
	}

	chat, err := s.client.Chats.Create(ctx, s.model, cfg, contents)
	if err != nil {
		return "", err
	}
	result, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

// isRateLimited matches the upstream 429, by status code when the error is
// structured and by message substring otherwise.
func isRateLimited(err error) bool {
	if err == nil {
		return false
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return true
	}
	return strings.Contains(err.Error(), "429")
}
