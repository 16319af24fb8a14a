package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/aiquiz"
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/taxonomy"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var dto GenerateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	presented, err := h.service.Generate(r.Context(), userID, dto)
	if err != nil {
		var insufficient *InsufficientQuestionsError
		switch {
		case errors.Is(err, taxonomy.ErrTopicNotFound):
			config.Error(w, http.StatusNotFound, "topic not found")
		case errors.As(err, &insufficient):
			config.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":      insufficient.Error(),
				"found":      insufficient.Found,
				"requested":  insufficient.Requested,
				"suggestion": "enable AI generation or reduce the number of questions",
			})
		case errors.Is(err, aiquiz.ErrUnavailable):
			log.WithError(err).Error("Quiz generation failed, providers unavailable")
			config.Error(w, http.StatusBadGateway, "question generation unavailable, try again later")
		default:
			log.WithError(err).Warn("Quiz generation rejected")
			config.Error(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	config.JSON(w, http.StatusCreated, presented)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	presented, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			config.Error(w, http.StatusNotFound, "quiz not found")
			return
		}
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, presented)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var summaries []QuizSummary
	var err error
	if r.URL.Query().Get("mine") == "true" {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		summaries, err = h.service.ListMine(r.Context(), userID)
	} else {
		summaries, err = h.service.ListPublic(r.Context())
	}
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to list quizzes")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"quizzes": summaries})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.service.Delete(r.Context(), userID, claims.Role, id); err != nil {
		switch {
		case errors.Is(err, ErrQuizNotFound):
			config.Error(w, http.StatusNotFound, "quiz not found")
		case errors.Is(err, ErrNotOwner):
			config.Error(w, http.StatusForbidden, "only the quiz creator can delete it")
		default:
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "quiz deleted"})
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
