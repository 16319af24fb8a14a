package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/config"
)

type Handler struct {
	service UserService
}

func NewHandler(s UserService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Register(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameTaken), errors.Is(err, ErrEmailTaken):
			config.Error(w, http.StatusConflict, err.Error())
		default:
			// Validation failures carry their own message.
			log.WithError(err).Warn("Registration rejected")
			config.Error(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Login(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			config.Error(w, http.StatusUnauthorized, "invalid credentials")
		case errors.Is(err, ErrInactiveAccount):
			config.Error(w, http.StatusForbidden, "account is inactive")
		default:
			log.WithError(err).Error("Login failed")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.RefreshToken == "" {
		config.Error(w, http.StatusBadRequest, "refresh_token required")
		return
	}

	access, err := h.service.Refresh(r.Context(), body.RefreshToken)
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"access_token": access})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Me(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			config.Error(w, http.StatusNotFound, "user not found")
			return
		}
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"user": resp})
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var dto UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.UpdateProfile(r.Context(), userID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			config.Error(w, http.StatusNotFound, "user not found")
		case errors.Is(err, ErrEmailTaken):
			config.Error(w, http.StatusConflict, "email already exists")
		default:
			log.WithError(err).Error("Failed to update profile")
			config.Error(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"user": resp})
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var dto ChangePasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if dto.CurrentPassword == "" || dto.NewPassword == "" {
		config.Error(w, http.StatusBadRequest, "current and new password are required")
		return
	}

	if err := h.service.ChangePassword(r.Context(), userID, dto); err != nil {
		switch {
		case errors.Is(err, ErrWrongPassword):
			config.Error(w, http.StatusUnauthorized, "current password is incorrect")
		case errors.Is(err, ErrUserNotFound):
			config.Error(w, http.StatusNotFound, "user not found")
		default:
			config.Error(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "password changed successfully"})
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
