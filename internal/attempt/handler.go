package attempt

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/quiz"
)

type Handler struct {
	service AttemptService
}

func NewHandler(s AttemptService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	quizID, err := uuid.Parse(chi.URLParam(r, "quizID"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid quiz id")
		return
	}

	resp, err := h.service.Start(r.Context(), userID, quizID)
	if err != nil {
		if errors.Is(err, quiz.ErrQuizNotFound) {
			config.Error(w, http.StatusNotFound, "quiz not found")
			return
		}
		config.WithContext(r.Context()).WithError(err).Error("Failed to start attempt")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	attemptID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid attempt id")
		return
	}

	var dto SubmitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Submit(r.Context(), userID, attemptID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrAttemptNotFound):
			config.Error(w, http.StatusNotFound, "attempt not found")
		case errors.Is(err, ErrNotOwner):
			config.Error(w, http.StatusForbidden, "attempt belongs to another user")
		case errors.Is(err, ErrAlreadyCompleted):
			config.Error(w, http.StatusConflict, "attempt already completed")
		default:
			config.WithContext(r.Context()).WithError(err).Error("Failed to submit attempt")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Results(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	attemptID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid attempt id")
		return
	}

	resp, err := h.service.Results(r.Context(), userID, attemptID)
	if err != nil {
		switch {
		case errors.Is(err, ErrAttemptNotFound):
			config.Error(w, http.StatusNotFound, "attempt not found")
		case errors.Is(err, ErrNotOwner):
			config.Error(w, http.StatusForbidden, "attempt belongs to another user")
		default:
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	attempts, err := h.service.ListMine(r.Context(), userID, limit)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"attempts": attempts})
}

func currentUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	return id, true
}
