package util

import (
	"bufio"
	"encoding/json"
	"fmt"
)

// SSEWriter serializes server-sent events onto a streaming response body.
// Each event is flushed immediately so the client sees row-level progress;
// a flush error means the client disconnected.
type SSEWriter struct {
	w *bufio.Writer
}

func NewSSEWriter(w *bufio.Writer) *SSEWriter {
	return &SSEWriter{w: w}
}

func (s *SSEWriter) Emit(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	return s.w.Flush()
}
