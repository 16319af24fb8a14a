package moderation

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/quizforge/quizforge/internal/config"
)

type Handler struct {
	moderator *Moderator
}

func NewHandler(m *Moderator) *Handler {
	return &Handler{moderator: m}
}

// CheckContent lets clients pre-screen text before submitting a question.
func (h *Handler) CheckContent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Text) == "" {
		config.Error(w, http.StatusBadRequest, "text is required")
		return
	}

	config.JSON(w, http.StatusOK, h.moderator.Check(body.Text))
}
