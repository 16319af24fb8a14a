package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/config"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

type UserService interface {
	Register(ctx context.Context, dto RegisterDTO) (*AuthResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Me(ctx context.Context, userID uuid.UUID) (*UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, dto UpdateProfileDTO) (*UserResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, dto ChangePasswordDTO) error
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, dto RegisterDTO) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	if err := ValidateRegistration(dto); err != nil {
		return nil, err
	}

	if taken, err := s.repo.UsernameExists(dto.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrUsernameTaken
	}
	if taken, err := s.repo.EmailExists(dto.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}

	roleName := dto.Role
	if roleName == "" {
		roleName = RoleStudent
	}
	role, err := s.repo.FindRoleByName(roleName)
	if err != nil {
		return nil, err
	}
	if role == nil {
		// Unknown role names silently fall back to Student.
		if role, err = s.repo.FindRoleByName(RoleStudent); err != nil {
			return nil, err
		}
		if role == nil {
			return nil, errors.New("default roles not initialized")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := User{
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: string(hash),
		RoleID:       role.ID,
		Role:         *role,
		FullName:     dto.FullName,
		ProfileImage: dto.ProfileImage,
		IsActive:     true,
	}
	if err := s.repo.Create(&u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID.String()).Info("User registered")
	return s.issueTokens(&u)
}

func (s *userService) Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	if dto.Username == "" || dto.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.FindByUsernameOrEmail(dto.Username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrInactiveAccount
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	u.LastLogin = &now
	if err := s.repo.Update(u); err != nil {
		log.WithError(err).Warn("Failed to record last login")
	}

	return s.issueTokens(u)
}

func (s *userService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := auth.ValidateJWT(refreshToken)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	return auth.GenerateJWT(claims.UserID, claims.Role, auth.AccessTokenDuration)
}

func (s *userService) Me(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	u, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive {
		return nil, ErrUserNotFound
	}
	return toResponse(u), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, dto UpdateProfileDTO) (*UserResponse, error) {
	u, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	if dto.FullName != nil {
		u.FullName = *dto.FullName
	}
	if dto.ProfileImage != nil {
		u.ProfileImage = *dto.ProfileImage
	}
	if dto.Email != nil && *dto.Email != u.Email {
		if err := ValidateEmail(*dto.Email); err != nil {
			return nil, err
		}
		if taken, err := s.repo.EmailExists(*dto.Email); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrEmailTaken
		}
		u.Email = *dto.Email
	}

	if err := s.repo.Update(u); err != nil {
		return nil, err
	}
	return toResponse(u), nil
}

func (s *userService) ChangePassword(ctx context.Context, userID uuid.UUID, dto ChangePasswordDTO) error {
	u, err := s.repo.FindByID(userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}
	if err := ValidatePasswordStrength(dto.NewPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return s.repo.Update(u)
}

func (s *userService) issueTokens(u *User) (*AuthResponse, error) {
	access, err := auth.GenerateJWT(u.ID.String(), u.Role.Name, auth.AccessTokenDuration)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.GenerateJWT(u.ID.String(), u.Role.Name, auth.RefreshTokenDuration)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		User:         toResponse(u),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func toResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FullName:     u.FullName,
		Role:         u.Role.Name,
		ProfileImage: u.ProfileImage,
		LastLogin:    u.LastLogin,
		CreatedAt:    u.CreatedAt,
	}
}
