package account

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/helpbridge/coord-service/internal/domain"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Location string
	Bio      string
}

// Register creates an unverified account and sends the verification
// mail. Hashing happens here, before the store write, so the side
// effect is explicit and testable; the repo never rehashes.
func (s *Service) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return domain.User{}, domain.ErrMissingField("name/email/password")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, domain.ErrHashFailed(err)
	}

	token, err := newVerificationToken()
	if err != nil {
		return domain.User{}, domain.ErrRandomFailed(err)
	}

	u := domain.User{
		ID:                uuid.NewString(),
		Name:              in.Name,
		Email:             in.Email,
		PasswordHash:      hash,
		Role:              string(domain.RoleUser),
		Phone:             in.Phone,
		Location:          in.Location,
		Bio:               in.Bio,
		ProfilePicture:    randomAvatar(),
		EmailVerified:     false,
		VerificationToken: token,
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}

	// Mail failure after the store write leaves a permanently
	// unverified account; there is no resend flow.
	link := s.verifyEmailBaseURL + token
	if err := s.notifier.SendVerificationEmail(ctx, VerificationEmail{
		UserID: created.ID,
		Name:   created.Name,
		Email:  created.Email,
		URL:    link,
	}); err != nil {
		return domain.User{}, err
	}

	return created, nil
}
