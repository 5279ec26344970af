package account

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"time"
)

type Service struct {
	users    UserRepo
	hasher   PasswordHasher
	signer   TokenSigner
	notifier Notifier

	tokenTTL time.Duration

	// verifyEmailBaseURL ends with `token=`; the raw token is appended.
	verifyEmailBaseURL string
}

type Config struct {
	TokenTTL           time.Duration
	VerifyEmailBaseURL string
}

func NewService(users UserRepo, hasher PasswordHasher, signer TokenSigner, notifier Notifier, cfg Config) *Service {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{
		users:    users,
		hasher:   hasher,
		signer:   signer,
		notifier: notifier,

		tokenTTL:           ttl,
		verifyEmailBaseURL: cfg.VerifyEmailBaseURL,
	}
}

// defaultAvatars is the fixed set a fresh account is assigned from.
var defaultAvatars = []string{
	"user_icon1.jpeg",
	"user_icon2.jpeg",
	"user_icon3.jpeg",
	"user_icon4.jpeg",
}

func randomAvatar() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(defaultAvatars))))
	if err != nil {
		return defaultAvatars[0]
	}
	return defaultAvatars[n.Int64()]
}

// newVerificationToken returns 32 random bytes, hex-encoded.
func newVerificationToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
