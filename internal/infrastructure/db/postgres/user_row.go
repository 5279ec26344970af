package postgres

import (
	"database/sql"
	"time"

	"github.com/helpbridge/coord-service/internal/domain"
)

type userRow struct {
	ID                string
	Name              string
	Email             string
	PasswordHash      string
	Role              string
	Phone             string
	Location          string
	Bio               string
	ProfilePicture    string
	EmailVerified     bool
	VerificationToken sql.NullString
	CreatedAt         time.Time
}

func toDomainUser(ur userRow) domain.User {
	return domain.User{
		ID:                ur.ID,
		Name:              ur.Name,
		Email:             ur.Email,
		PasswordHash:      ur.PasswordHash,
		Role:              ur.Role,
		Phone:             ur.Phone,
		Location:          ur.Location,
		Bio:               ur.Bio,
		ProfilePicture:    ur.ProfilePicture,
		EmailVerified:     ur.EmailVerified,
		VerificationToken: ur.VerificationToken.String,
		CreatedAt:         ur.CreatedAt,
	}
}
