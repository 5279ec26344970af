package dto

import (
	"time"

	"github.com/helpbridge/coord-service/internal/domain"
)

// UserView is the standard user payload. The password hash never
// crosses this boundary.
type UserView struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Phone          string    `json:"phone"`
	Location       string    `json:"location"`
	Bio            string    `json:"bio"`
	ProfilePicture string    `json:"profilePicture"`
	EmailVerified  bool      `json:"emailVerified"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewUserView(u domain.User) UserView {
	return UserView{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		Phone:          u.Phone,
		Location:       u.Location,
		Bio:            u.Bio,
		ProfilePicture: u.ProfilePicture,
		EmailVerified:  u.EmailVerified,
		CreatedAt:      u.CreatedAt,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Token     string   `json:"token"`
	TokenType string   `json:"token_type"` // "Bearer"
	ExpiresIn int64    `json:"expires_in"` // seconds
	User      UserView `json:"user"`
}

type UpdateProfileResponse struct {
	Message string   `json:"message"`
	User    UserView `json:"user"`
}

type GetUserResponse struct {
	User UserView `json:"user"`
}
