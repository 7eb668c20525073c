package request

import (
	"strings"

	"eventdeck/internal/domain/user"
)

type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	FullName string  `json:"full_name" binding:"required"`
	Role     string  `json:"role" binding:"required"`
	Company  *string `json:"company,omitempty"`
}

func (r *RegisterRequest) GetCompany() *string {
	if r.Company == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Company)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
