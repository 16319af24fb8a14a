package user

import (
	"time"

	"github.com/google/uuid"
)

type RegisterDTO struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	FullName     string `json:"full_name"`
	Role         string `json:"role,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}

type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateProfileDTO struct {
	FullName     *string `json:"full_name"`
	Email        *string `json:"email"`
	ProfileImage *string `json:"profile_image"`
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type UserResponse struct {
	ID           uuid.UUID  `json:"user_id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	Role         string     `json:"role"`
	ProfileImage string     `json:"profile_image,omitempty"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type AuthResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
}
