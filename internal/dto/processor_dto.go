package dto

import "github.com/brandlab/positioning-api/internal/model"

// BatchRow is one submitted (question, answer) pair.
type BatchRow struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ProcessorRequest struct {
	Title  *string    `json:"title"`
	Prompt string     `json:"prompt"`
	Rows   []BatchRow `json:"rows"`
}

// Stream event payloads, framed as SSE by the handler.

type ProgressEvent struct {
	Current  int    `json:"current"`
	Total    int    `json:"total"`
	Question string `json:"question"`
}

type ResultEvent struct {
	Index     int    `json:"index"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Processed string `json:"processed"`
}

type DoneEvent struct {
	JobID          string `json:"jobId"`
	TotalProcessed int    `json:"totalProcessed"`
}

type ErrorEvent struct {
	Error string `json:"error"`
}

type JobWithItems struct {
	Job   *model.BatchJob   `json:"job"`
	Items []model.BatchItem `json:"items"`
}
