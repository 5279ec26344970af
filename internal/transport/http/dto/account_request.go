package dto

import (
	"strings"

	"github.com/helpbridge/coord-service/internal/domain"
)

// -------- Registration / login --------

type RegisterRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,simple_email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Phone           string `json:"phone"`
	Location        string `json:"location"`
	Bio             string `json:"bio"`
}

func (r *RegisterRequest) Validate() error {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if err := checkStruct(r); err != nil {
		return err
	}
	if r.Password != r.ConfirmPassword {
		return domain.ErrPasswordMismatch()
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	return checkStruct(r)
}

// -------- Profile --------

// UpdateProfileRequest distinguishes absent fields (nil, keep stored
// value) from explicit empty strings (overwrite).
type UpdateProfileRequest struct {
	Phone          *string `json:"phone"`
	Location       *string `json:"location"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profilePicture"`
}

func (r *UpdateProfileRequest) ToDomain() domain.ProfileUpdate {
	return domain.ProfileUpdate{
		Phone:          r.Phone,
		Location:       r.Location,
		Bio:            r.Bio,
		ProfilePicture: r.ProfilePicture,
	}
}
