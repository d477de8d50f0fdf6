package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wolfman30/beauty-advisor/internal/advisor"
	"github.com/wolfman30/beauty-advisor/pkg/logging"
)

// ChatConfig holds the chat handler's dependencies.
type ChatConfig struct {
	Advisor *advisor.Advisor
	Logger  *logging.Logger
}

// ChatHandler exposes the advisor over HTTP.
type ChatHandler struct {
	advisor *advisor.Advisor
	logger  *logging.Logger
}

func NewChatHandler(cfg ChatConfig) *ChatHandler {
	if cfg.Advisor == nil {
		panic("handlers: advisor cannot be nil")
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	return &ChatHandler{advisor: cfg.Advisor, logger: cfg.Logger}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Message  string `json:"message"`
	Response string `json:"response"`
}

// Chat answers one user message.
// Route: POST /api/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	reply := h.advisor.Respond(r.Context(), req.Message)
	writeJSON(w, http.StatusOK, chatResponse{Message: req.Message, Response: reply})
}
