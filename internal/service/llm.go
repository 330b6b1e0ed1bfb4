package service

import (
	"context"
	"time"
)

// TextModel produces one completion for one prompt. The batch processor
// consumes this.
type TextModel interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ChatModel answers one turn of the guided interview given the replayed
// history. No retry policy is applied at this layer; a transient failure
// surfaces directly to the caller.
type ChatModel interface {
	Chat(ctx context.Context, history []Turn, message string) (string, error)
}

// Turn is one prior exchange, role "user" or "model".
type Turn struct {
	Role    string
	Content string
}

const maxGenerateRetries = 3

// backoffDelay returns the wait before retry number attempt+1:
// 10s, 20s, 40s, capped at 60s.
func backoffDelay(attempt int) time.Duration {
	sec := 10 * (1 << attempt)
	if sec > 60 {
		sec = 60
	}
	return time.Duration(sec) * time.Second
}
