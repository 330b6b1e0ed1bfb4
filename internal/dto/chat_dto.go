package dto

// ChatTurn is one prior exchange replayed to the model.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message     string     `json:"message"`
	History     []ChatTurn `json:"history"`
	InterviewID *string    `json:"interviewId"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
