package account

import (
	"context"
	"strings"

	"github.com/helpbridge/coord-service/internal/domain"
)

// UpdateProfile merges the supplied profile fields for the
// authenticated subject. Field semantics are pointer-based: nil means
// "not supplied" and retains the stored value, while a present empty
// string overwrites.
func (s *Service) UpdateProfile(ctx context.Context, userID string, upd domain.ProfileUpdate) (domain.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.User{}, domain.ErrMissingField("user_id")
	}
	if upd.Empty() {
		return domain.User{}, domain.ErrEmptyProfileUpdate()
	}

	return s.users.UpdateProfile(ctx, userID, upd)
}

// GetUser fetches a user by id for the authenticated profile view.
func (s *Service) GetUser(ctx context.Context, id string) (domain.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}
	return s.users.GetByID(ctx, id)
}
