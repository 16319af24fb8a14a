package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/aiquiz"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/taxonomy"
)

type Handler struct {
	service QuestionService
}

func NewHandler(s QuestionService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateQuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q, err := h.service.Create(r.Context(), dto)
	if err != nil {
		var rejected *ContentRejectedError
		switch {
		case errors.As(err, &rejected):
			config.Error(w, http.StatusBadRequest, rejected.Error())
		case errors.Is(err, taxonomy.ErrTopicNotFound):
			config.Error(w, http.StatusNotFound, "topic not found")
		default:
			log.WithError(err).Warn("Question creation rejected")
			config.Error(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	config.JSON(w, http.StatusCreated, q)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	q, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			config.Error(w, http.StatusNotFound, "question not found")
			return
		}
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := parseListFilter(r)

	resp, err := h.service.List(r.Context(), filter)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to list questions")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	var dto UpdateQuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		var rejected *ContentRejectedError
		switch {
		case errors.Is(err, ErrQuestionNotFound):
			config.Error(w, http.StatusNotFound, "question not found")
		case errors.As(err, &rejected):
			config.Error(w, http.StatusBadRequest, rejected.Error())
		default:
			config.Error(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	q, err := h.service.Verify(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			config.Error(w, http.StatusNotFound, "question not found")
			return
		}
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrQuestionNotFound):
			config.Error(w, http.StatusNotFound, "question not found")
		case errors.Is(err, ErrQuestionInUse):
			config.Error(w, http.StatusConflict, "question is referenced by attempts and cannot be deleted")
		default:
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "question deleted"})
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto GenerateQuestionsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	questions, confidence, err := h.service.Generate(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, taxonomy.ErrTopicNotFound):
			config.Error(w, http.StatusNotFound, "topic not found")
		case errors.Is(err, aiquiz.ErrUnavailable):
			log.WithError(err).Error("Generation unavailable")
			config.Error(w, http.StatusBadGateway, "question generation unavailable")
		default:
			config.Error(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"questions":  questions,
		"confidence": confidence,
	})
}

func parseListFilter(r *http.Request) ListFilter {
	q := r.URL.Query()

	var filter ListFilter
	if raw := q.Get("topic_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.TopicID = id
		}
	}
	filter.Type = QuestionType(q.Get("type"))
	if raw := q.Get("difficulty"); raw != "" {
		filter.Difficulty = ParseDifficulty(raw)
	}
	filter.Source = Source(q.Get("source"))
	if raw := q.Get("verified"); raw != "" {
		verified := raw == "true"
		filter.Verified = &verified
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.PageSize, _ = strconv.Atoi(q.Get("page_size"))
	return filter
}

func pathUUID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
