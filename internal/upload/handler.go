package upload

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
	service UploadService
}

func NewHandler(s UploadService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxFileSize+4096)
	if err := r.ParseMultipartForm(MaxFileSize); err != nil {
		config.Error(w, http.StatusBadRequest, "file too large or malformed form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		config.Error(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	a, err := h.service.Store(r.Context(), userID, header, file)
	if err != nil {
		if errors.Is(err, ErrTypeNotAllowed) {
			config.Error(w, http.StatusBadRequest, "file type not allowed, upload PDF, DOC, DOCX or TXT")
			return
		}
		config.WithContext(r.Context()).WithError(err).Error("Upload failed")
		config.Error(w, http.StatusInternalServerError, "failed to store file")
		return
	}

	config.JSON(w, http.StatusCreated, a)
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	fileID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid file id")
		return
	}

	var dto GenerateFromFileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, count, confidence, err := h.service.GenerateQuiz(r.Context(), userID, fileID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrFileNotFound):
			config.Error(w, http.StatusNotFound, "file not found")
		case errors.Is(err, taxonomy.ErrTopicNotFound):
			config.Error(w, http.StatusNotFound, "topic not found")
		case errors.Is(err, ErrEmptyExtract):
			config.Error(w, http.StatusBadRequest, "failed to extract text from file")
		case errors.Is(err, aiquiz.ErrUnavailable):
			config.Error(w, http.StatusBadGateway, "question generation unavailable")
		default:
			config.Error(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"quiz_id":       created.ID,
		"quiz_title":    created.Title,
		"num_questions": count,
		"confidence":    confidence,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	files, err := h.service.List(r.Context(), userID)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"files": files})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid file id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrFileNotFound) {
			config.Error(w, http.StatusNotFound, "file not found")
			return
		}
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "file deleted"})
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
