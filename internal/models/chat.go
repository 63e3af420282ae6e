package models

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	UserInput string `json:"user_input"`
}

// ChatResponse wraps the chatbot's reply.
type ChatResponse struct {
	Response string `json:"response"`
}
