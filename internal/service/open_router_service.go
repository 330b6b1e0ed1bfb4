package service

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/brandlab/positioning-api/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// OpenRouterService is the alternate gateway, selected with
// AI_PROVIDER=openrouter. Same contract and retry policy as the Gemini
// service, over the OpenAI-compatible chat completions endpoint.
type OpenRouterService struct {
	apiKey     string
	baseURL    string
	model      string
	client     *resty.Client
	maxRetries int
	sleep      func(time.Duration)
}

func NewOpenRouterService() *OpenRouterService {
	openRouterConfig := config.LoadOpenRouterConfig()
	return &OpenRouterService{
		apiKey:     openRouterConfig.APIKey,
		baseURL:    openRouterConfig.BaseURL,
		model:      openRouterConfig.Model,
		client:     resty.New().SetTimeout(90 * time.Second),
		maxRetries: maxGenerateRetries,
		sleep:      time.Sleep,
	}
}

func (s *OpenRouterService) GenerateText(ctx context.Context, prompt string) (string, error) {
	messages := []map[string]string{
		{"role": "user", "content": prompt},
	}

	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		text, status, err := s.complete(ctx, messages)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if status != http.StatusTooManyRequests || attempt == s.maxRetries {
			return "", err
		}

		delay := backoffDelay(attempt)
		log.Printf("openrouter rate limited, retry %d/%d after %s", attempt+1, s.maxRetries, delay)
		if err := ctx.Err(); err != nil {
			return "", err
		}
		s.sleep(delay)
	}
	return "", lastErr
}

func (s *OpenRouterService) Chat(ctx context.Context, history []Turn, message string) (string, error) {
	messages := make([]map[string]string, 0, len(history)+2)
	messages = append(messages, map[string]string{"role": "system", "content": interviewSystemInstruction})
	for _, t := range history {
		role := "user"
		if t.Role == "model" {
			role = "assistant"
		}
		messages = append(messages, map[string]string{"role": role, "content": t.Content})
	}
	messages = append(messages, map[string]string{"role": "user", "content": message})

	text, _, err := s.complete(ctx, messages)
	return text, err
}

func (s *OpenRouterService) complete(ctx context.Context, messages []map[string]string) (string, int, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model":    s.model,
			"messages": messages,
		}).
		Post(s.baseURL + "/chat/completions")
	if err != nil {
		return "", 0, err
	}
	if resp.IsError() {
		return "", resp.StatusCode(), fmt.Errorf("openrouter: status %d", resp.StatusCode())
	}

	body := resp.String()
	if msg := gjson.Get(body, "error.message").String(); msg != "" {
		return "", resp.StatusCode(), fmt.Errorf("openrouter: %s", msg)
	}
	return gjson.Get(body, "choices.0.message.content").String(), resp.StatusCode(), nil
}
