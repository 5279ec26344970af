package account

import (
	"context"
	"errors"
	"strings"

	"github.com/helpbridge/coord-service/internal/domain"
)

type LoginResult struct {
	User      domain.User
	Token     string
	TokenType string // "Bearer"
	ExpiresIn int64  // seconds
}

// Login authenticates a verified user and issues a time-boxed token.
// Login is blocked outright until the email is verified, regardless of
// password correctness.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return LoginResult{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return LoginResult{}, domain.ErrMissingField("password")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}

	if !u.EmailVerified {
		return LoginResult{}, domain.ErrEmailNotVerified()
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		var de *domain.Error
		if errors.As(err, &de) {
			// corrupted digest in storage, not a user mistake
			return LoginResult{}, err
		}
		return LoginResult{}, domain.ErrIncorrectPassword()
	}

	tok, err := s.signer.SignAccessToken(u.ID, u.Role, s.tokenTTL)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		User:      u,
		Token:     tok,
		TokenType: "Bearer",
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}
