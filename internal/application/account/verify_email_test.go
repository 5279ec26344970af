package account

import (
	"context"
	"testing"
)

func TestVerifyEmail_EmptyToken_MissingField(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newSvcForTest(t)

	err := svc.VerifyEmail(context.Background(), "  ")
	requireDomainCode(t, err, "missing_field")
}

func TestVerifyEmail_UnknownToken_Invalid(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newSvcForTest(t)

	err := svc.VerifyEmail(context.Background(), "deadbeef")
	requireDomainCode(t, err, "verify_token_invalid")
}

func TestVerifyEmail_SingleUse(t *testing.T) {
	t.Parallel()

	svc, users, _, _, _ := newSvcForTest(t)

	u, err := svc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	token := u.VerificationToken

	if err := svc.VerifyEmail(context.Background(), token); err != nil {
		t.Fatalf("verify: %v", err)
	}

	got := users.byID[u.ID]
	if !got.EmailVerified {
		t.Fatalf("expected verified account")
	}
	if got.VerificationToken != "" {
		t.Fatalf("expected token cleared, got %q", got.VerificationToken)
	}

	// The same link cannot succeed again.
	err = svc.VerifyEmail(context.Background(), token)
	requireDomainCode(t, err, "verify_token_invalid")
}

func TestVerifyEmail_EnablesLogin(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newSvcForTest(t)

	u, err := svc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(context.Background(), u.Email, "p1"); err == nil {
		t.Fatalf("login must fail before verification")
	}

	if err := svc.VerifyEmail(context.Background(), u.VerificationToken); err != nil {
		t.Fatalf("verify: %v", err)
	}

	if _, err := svc.Login(context.Background(), u.Email, "p1"); err != nil {
		t.Fatalf("login after verification: %v", err)
	}
}
