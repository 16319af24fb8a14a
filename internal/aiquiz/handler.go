package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quizforge/quizforge/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Preview generates candidate questions without persisting them, so authors
// can review AI output before committing it to the bank.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	candidates, confidence, err := h.service.Generate(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			log.WithError(err).Error("All providers failed")
			config.Error(w, http.StatusBadGateway, "question generation unavailable")
			return
		}
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	config.JSON(w, http.StatusOK, GenerateResponse{
		Questions:  candidates,
		Confidence: confidence,
	})
}

// Search answers a free-text study question for any authenticated user.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var body struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := h.service.Ask(r.Context(), body.Query)
	if err != nil {
		switch {
		case errors.Is(err, ErrRateLimit):
			config.Error(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
		case errors.Is(err, ErrUnavailable):
			log.WithError(err).Error("All providers failed")
			config.Error(w, http.StatusBadGateway, "assistant unavailable")
		default:
			config.Error(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"response": answer,
		"query":    body.Query,
	})
}
