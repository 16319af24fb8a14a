package taxonomy

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/config"
)

type Handler struct {
	service TaxonomyService
}

func NewHandler(s TaxonomyService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list categories")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetCategory(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			config.Error(w, http.StatusNotFound, "category not found")
			return
		}
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var dto CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.service.CreateCategory(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrDuplicateName) {
			config.Error(w, http.StatusConflict, "category name already exists")
			return
		}
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	config.JSON(w, http.StatusCreated, c)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var dto UpdateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.service.UpdateCategory(r.Context(), id, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrCategoryNotFound):
			config.Error(w, http.StatusNotFound, "category not found")
		case errors.Is(err, ErrDuplicateName):
			config.Error(w, http.StatusConflict, "category name already exists")
		default:
			config.Error(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	config.JSON(w, http.StatusOK, c)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			config.Error(w, http.StatusNotFound, "category not found")
			return
		}
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "category deleted"})
}

func (h *Handler) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	var dto CreateSubcategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sc, err := h.service.CreateSubcategory(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrCategoryNotFound):
			config.Error(w, http.StatusNotFound, "category not found")
		case errors.Is(err, ErrDuplicateName):
			config.Error(w, http.StatusConflict, "subcategory name already exists in this category")
		default:
			config.Error(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	config.JSON(w, http.StatusCreated, sc)
}

func (h *Handler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	var dto CreateTopicDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.service.CreateTopic(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrSubcategoryNotFound):
			config.Error(w, http.StatusNotFound, "subcategory not found")
		case errors.Is(err, ErrDuplicateName):
			config.Error(w, http.StatusConflict, "topic name already exists in this subcategory")
		default:
			config.Error(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	config.JSON(w, http.StatusCreated, t)
}

func (h *Handler) GetTopic(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetTopic(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTopicNotFound) {
			config.Error(w, http.StatusNotFound, "topic not found")
			return
		}
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
