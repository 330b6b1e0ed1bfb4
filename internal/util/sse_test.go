package util

import (
	"bufio"
	"bytes"
	"testing"
)

func TestSSEWriterFraming(t *testing.T) {
	var buf bytes.Buffer
	w := NewSSEWriter(bufio.NewWriter(&buf))

	if err := w.Emit("progress", map[string]int{"current": 1, "total": 3}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	got := buf.String()
	want := "event: progress\ndata: {\"current\":1,\"total\":3}\n\n"
	if got != want {
		t.Fatalf("frame mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestSSEWriterFlushesEachEvent(t *testing.T) {
	var buf bytes.Buffer
	w := NewSSEWriter(bufio.NewWriter(&buf))

	if err := w.Emit("done", map[string]string{"jobId": "x"}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	// the event must be visible without any later flush
	if buf.Len() == 0 {
		t.Fatal("event not flushed to the underlying writer")
	}
}

func TestSSEWriterUnserializableData(t *testing.T) {
	var buf bytes.Buffer
	w := NewSSEWriter(bufio.NewWriter(&buf))

	if err := w.Emit("bad", func() {}); err == nil {
		t.Fatal("expected marshal error")
	}
	if buf.Len() != 0 {
		t.Fatal("partial frame written after marshal failure")
	}
}
