package cleanup

import (
	"net/http"
	"time"

	"github.com/quizforge/quizforge/internal/config"
	"gorm.io/gorm"
)

type Handler struct {
	service CleanupService
	db      *gorm.DB
}

func NewHandler(s CleanupService, db *gorm.DB) *Handler {
	return &Handler{service: s, db: db}
}

func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Run(r.Context())
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Cleanup sweep failed")
		config.Error(w, http.StatusInternalServerError, "cleanup failed")
		return
	}
	config.JSON(w, http.StatusOK, report)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	config.JSON(w, http.StatusOK, stats)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		config.JSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "degraded",
			"database": err.Error(),
		})
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
