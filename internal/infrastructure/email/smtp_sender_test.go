package email

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRenderBasicHTML_Escapes(t *testing.T) {
	out := renderBasicHTML("Hello & Welcome", "intro", "button", "https://example.com/verify?token=123")

	assert.Contains(t, out, "Hello &amp; Welcome")
	assert.Contains(t, out, `href="https://example.com/verify?token=123"`)
	assert.NotContains(t, out, "Hello & Welcome")
}

func TestNewSMTPSender_Config(t *testing.T) {
	sender := NewSMTPSender(SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer",
		Password: "secret",
		From:     "noreply@example.com",
		Timeout:  5 * time.Second,
	}, zerolog.Nop())

	assert.Equal(t, "smtp.example.com", sender.host)
	assert.Equal(t, 587, sender.port)
	assert.Equal(t, "noreply@example.com", sender.from)
	assert.Equal(t, 5*time.Second, sender.timeout)
}

// Real delivery needs a live SMTP endpoint; covered by integration runs
// against Mailpit, not here.
