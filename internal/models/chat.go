package models

import "encoding/json"

// ChatRequest is the payload sent to the chat endpoint. Message is kept raw so
// that a missing or non-string value can be told apart from an empty one.
type ChatRequest struct {
	Message json.RawMessage `json:"message"`
}

// ChatResponse is the reply from the AI chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
