package dto

import (
	"time"

	authModel "jebshit_backend/internals/features/users/auth/model"
)

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SessionResponse struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	User        SessionResponse `json:"user"`
}

func NewSessionResponse(u *authModel.UserModel) SessionResponse {
	return SessionResponse{
		UserID:   u.UserID.String(),
		UserName: u.UserName,
		Email:    u.UserEmail,
		Role:     u.UserRole,
	}
}

type UserResponse struct {
	SessionResponse
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func NewUserResponse(u *authModel.UserModel) UserResponse {
	return UserResponse{
		SessionResponse: NewSessionResponse(u),
		IsActive:        u.UserIsActive,
		CreatedAt:       u.UserCreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       u.UserUpdatedAt.UTC().Format(time.RFC3339),
	}
}
