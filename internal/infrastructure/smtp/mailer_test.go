package smtp

import (
	"errors"
	"net/smtp"
	"testing"

	"github.com/ainame-auth/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendEmail_BuildsMessage(t *testing.T) {
	m := NewMailer(&config.Config{SMTPHost: "mail.local", SMTPPort: "2525", SMTPFrom: "noreply@x.com"}).(*mailer)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	var gotAuth smtp.Auth
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotAuth, gotFrom, gotTo, gotMsg = addr, a, from, to, msg
		return nil
	}

	require.NoError(t, m.SendEmail("a@x.com", "Your code", "1234"))

	assert.Equal(t, "mail.local:2525", gotAddr)
	assert.Nil(t, gotAuth)
	assert.Equal(t, "noreply@x.com", gotFrom)
	assert.Equal(t, []string{"a@x.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Your code\r\n")
	assert.Contains(t, string(gotMsg), "\r\n\r\n1234")
}

func TestSendEmail_UsesAuthWhenConfigured(t *testing.T) {
	m := NewMailer(&config.Config{SMTPHost: "mail.local", SMTPPort: "587", SMTPUsername: "u", SMTPPassword: "p"}).(*mailer)
	var gotAuth smtp.Auth
	m.send = func(_ string, a smtp.Auth, _ string, _ []string, _ []byte) error {
		gotAuth = a
		return nil
	}

	require.NoError(t, m.SendEmail("a@x.com", "s", "b"))
	assert.NotNil(t, gotAuth)
}

func TestSendEmail_WrapsError(t *testing.T) {
	m := NewMailer(&config.Config{}).(*mailer)
	boom := errors.New("connection refused")
	m.send = func(string, smtp.Auth, string, []string, []byte) error { return boom }

	err := m.SendEmail("a@x.com", "s", "b")
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "a@x.com")
}
