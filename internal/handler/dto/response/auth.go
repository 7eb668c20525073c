package response

import (
	"time"

	"eventdeck/internal/usecase/queries"

	"github.com/google/uuid"
)

type RegisterResponse struct {
	UserID uuid.UUID `json:"userId"`
}

type LoginResponse struct {
	UserID      uuid.UUID `json:"userId"`
	AccessToken string    `json:"accessToken"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"fullName"`
	Role      string     `json:"role"`
	Company   *string    `json:"company,omitempty"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:        v.ID,
		Email:     v.Email,
		FullName:  v.FullName,
		Role:      v.Role,
		Company:   v.Company,
		LastLogin: v.LastLogin,
		CreatedAt: v.CreatedAt,
	}
}
