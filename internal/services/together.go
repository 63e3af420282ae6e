package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

const (
	togetherAPIURL = "https://api.together.xyz/v1/chat/completions"
	togetherModel  = "meta-llama/Llama-2-7b-chat-hf"

	// Substituted when the upstream answer carries no usable content.
	noResponseFallback = "No response received."

	// The only detail callers ever see for an upstream failure; the real
	// cause goes to the log.
	upstreamFailureMessage = "Failed to fetch response from Together AI."
)

type TogetherService struct {
	apiKey string
	apiURL string
	client *http.Client
}

func NewTogetherService(apiKey string, timeout time.Duration) *TogetherService {
	return &TogetherService{
		apiKey: apiKey,
		apiURL: togetherAPIURL,
		client: &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Chat sends the prompt to Together AI as a single user-role message and
// returns the first choice's content. Failures are never retried; they
// surface as a *UpstreamError after the cause is logged.
func (s *TogetherService) Chat(ctx context.Context, prompt string) (string, error) {
	payload := chatCompletionRequest{
		Model:    togetherModel,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", &UpstreamError{Message: upstreamFailureMessage, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", &UpstreamError{Message: upstreamFailureMessage, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("Error calling Together AI API: %v", err)
		return "", &UpstreamError{Message: upstreamFailureMessage, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Printf("Error calling Together AI API: remote returned %s", resp.Status)
		return "", &UpstreamError{Message: upstreamFailureMessage, Err: fmt.Errorf("remote returned %s", resp.Status)}
	}

	var parsed chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Printf("Error decoding Together AI response: %v", err)
		return "", &UpstreamError{Message: upstreamFailureMessage, Err: err}
	}

	reply := noResponseFallback
	if len(parsed.Choices) > 0 && parsed.Choices[0].Message.Content != "" {
		reply = parsed.Choices[0].Message.Content
	}

	log.Printf("User: %s | Chatbot: %s", prompt, reply)
	return reply, nil
}
