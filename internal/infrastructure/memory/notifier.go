package memory

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/helpbridge/coord-service/internal/application/account"
)

// NoopNotifier logs verification mail instead of sending it. Used when
// MAILER=noop, typically in local development.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier { return &NoopNotifier{} }

func (n *NoopNotifier) SendVerificationEmail(_ context.Context, mail account.VerificationEmail) error {
	log.Info().
		Str("email", mail.Email).
		Str("url", mail.URL).
		Msg("noop mailer: verification email suppressed")
	return nil
}
