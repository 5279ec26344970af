package domain

import "time"

type User struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string
	Role           string
	Phone          string
	Location       string
	Bio            string
	ProfilePicture string
	EmailVerified  bool
	// VerificationToken is present only while the account is unverified.
	// Cleared (set empty) in the same update that flips EmailVerified.
	VerificationToken string
	CreatedAt         time.Time
}

// ProfileUpdate is a partial update of the optional profile fields.
// A nil field means "not supplied, keep the current value"; a non-nil
// field overwrites, including an explicit empty string.
type ProfileUpdate struct {
	Phone          *string
	Location       *string
	Bio            *string
	ProfilePicture *string
}

func (p ProfileUpdate) Empty() bool {
	return p.Phone == nil && p.Location == nil && p.Bio == nil && p.ProfilePicture == nil
}
