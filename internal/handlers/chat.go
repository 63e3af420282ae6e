package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Akshat-Vision/Sarvam/internal/models"
	"github.com/Akshat-Vision/Sarvam/internal/services"
)

type ChatHandler struct {
	chatbot chatbotService
	limiter clientLimiter
}

type chatbotService interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

// clientLimiter reports whether one more request from the given client key
// fits in the current window. It is consulted only after the payload
// validates, so malformed requests never consume quota.
type clientLimiter interface {
	Allow(key string) bool
}

func NewChatHandler(chatbot chatbotService, limiter clientLimiter) *ChatHandler {
	return &ChatHandler{chatbot: chatbot, limiter: limiter}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.UserInput) == "" {
		writeJSON(w, http.StatusUnprocessableEntity, errorRespWithFields("VALIDATION_ERROR", "Validation failed",
			map[string]string{"user_input": "user_input is required"}, r))
		return
	}

	// RealIP runs earlier in the chain, so RemoteAddr is the caller.
	if !h.limiter.Allow(r.RemoteAddr) {
		writeJSON(w, http.StatusTooManyRequests, errorResp("RATE_LIMITED", "Too many requests. Please try again later.", r))
		return
	}

	reply, err := h.chatbot.Chat(r.Context(), req.UserInput)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Response: reply})
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func errorRespWithFields(code, message string, fields map[string]string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			Fields:    fields,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch e := err.(type) {
	case *services.UpstreamError:
		writeJSON(w, http.StatusInternalServerError, errorResp("UPSTREAM_ERROR", e.Message, r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "An unexpected error occurred", r))
	}
}
