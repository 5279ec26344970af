package account

import (
	"context"
	"testing"

	"github.com/helpbridge/coord-service/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestUpdateProfile_EmptyUpdate_Rejected(t *testing.T) {
	t.Parallel()

	svc, users, _, _, _ := newSvcForTest(t)
	seedVerified(users, "u1", "e@x.com", "pw")

	_, err := svc.UpdateProfile(context.Background(), "u1", domain.ProfileUpdate{})
	requireDomainCode(t, err, "empty_profile_update")
}

func TestUpdateProfile_VanishedSubject_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newSvcForTest(t)

	_, err := svc.UpdateProfile(context.Background(), "gone", domain.ProfileUpdate{Bio: strPtr("x")})
	requireDomainCode(t, err, "user_not_found")
}

func TestUpdateProfile_PartialMergeTouchesOnlySuppliedFields(t *testing.T) {
	t.Parallel()

	svc, users, _, _, _ := newSvcForTest(t)
	u := seedVerified(users, "u1", "e@x.com", "pw")
	u.Phone = "123"
	u.Location = "Kyiv"
	u.Bio = "old bio"
	users.put(u)

	got, err := svc.UpdateProfile(context.Background(), "u1", domain.ProfileUpdate{Bio: strPtr("hello")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if got.Bio != "hello" {
		t.Fatalf("bio not updated: %q", got.Bio)
	}
	if got.Phone != "123" || got.Location != "Kyiv" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestUpdateProfile_ExplicitEmptyStringClearsField(t *testing.T) {
	t.Parallel()

	svc, users, _, _, _ := newSvcForTest(t)
	u := seedVerified(users, "u1", "e@x.com", "pw")
	u.Phone = "123"
	users.put(u)

	got, err := svc.UpdateProfile(context.Background(), "u1", domain.ProfileUpdate{Phone: strPtr("")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Phone != "" {
		t.Fatalf("present-but-empty must overwrite, got %q", got.Phone)
	}
}

func TestGetUser(t *testing.T) {
	t.Parallel()

	svc, users, _, _, _ := newSvcForTest(t)
	seedVerified(users, "u1", "e@x.com", "pw")

	u, err := svc.GetUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.Email != "e@x.com" {
		t.Fatalf("unexpected user: %+v", u)
	}

	_, err = svc.GetUser(context.Background(), "missing")
	requireDomainCode(t, err, "user_not_found")

	_, err = svc.GetUser(context.Background(), " ")
	requireDomainCode(t, err, "missing_field")
}
