package models

// ChatRequest is one user message. SessionID is optional; the server
// assigns one on the first message.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

// ChatReply carries the assistant answer. Source records which path
// produced it: "rules", "model" or "fallback".
type ChatReply struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Source    string `json:"source"`
}
