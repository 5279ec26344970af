package account

import (
	"context"
	"strings"

	"github.com/helpbridge/coord-service/internal/domain"
)

// VerifyEmail consumes a verification token. The matching lookup and
// the verified/cleared write make the token a single-use capability:
// once consumed, the same link matches no user and fails.
func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.ErrMissingField("token")
	}

	u, err := s.users.GetByVerificationToken(ctx, token)
	if err != nil {
		if domain.Is(err, "user_not_found") {
			return domain.ErrVerifyTokenInvalid()
		}
		return err
	}

	return s.users.MarkEmailVerified(ctx, u.ID)
}
