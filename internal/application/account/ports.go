package account

import (
	"context"
	"time"

	"github.com/helpbridge/coord-service/internal/domain"
)

/*
UserRepo
--------
Persistence port for users.
Only describes WHAT the account service needs, not HOW it's stored.
Email uniqueness is the store's job; Create must fail atomically on a
duplicate rather than relying on a prior lookup.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByVerificationToken(ctx context.Context, token string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)

	// MarkEmailVerified flips email_verified and clears the verification
	// token in one write, making the token single-use.
	MarkEmailVerified(ctx context.Context, userID string) error

	// UpdateProfile merges the supplied fields and returns the result.
	UpdateProfile(ctx context.Context, userID string, upd domain.ProfileUpdate) (domain.User, error)
}

/*
PasswordHasher
--------------
Abstracts bcrypt. Compare returns nil on match.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

/*
TokenSigner
-----------
Issues and verifies access tokens (JWT).
Used by service + auth middleware.
*/
type TokenClaims struct {
	UserID string
	Role   string
	Exp    time.Time
}

type TokenSigner interface {
	SignAccessToken(userID string, role string, ttl time.Duration) (string, error)
	VerifyAccessToken(token string) (TokenClaims, error)
}

/*
Notifier
--------
Delivers the verification mail, either directly over SMTP or as an
event for an external mailer. The service does not care which.
*/
type VerificationEmail struct {
	UserID string
	Name   string
	Email  string
	URL    string
}

type Notifier interface {
	SendVerificationEmail(ctx context.Context, msg VerificationEmail) error
}
