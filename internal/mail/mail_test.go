package mail

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialapi/internal/config"
	"socialapi/internal/logging"
)

func TestActivationLink(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/members/activate?token=abc", ActivationLink("http://localhost:8080/", "abc"))
	assert.Equal(t, "https://x.io/members/activate?token=a%2Bb", ActivationLink("https://x.io", "a+b"))
}

func TestRenderActivation(t *testing.T) {
	link := ActivationLink("https://social.example", "tok-123")

	msg, err := RenderActivation("alice@example.com", ActivationData{Nickname: "alice", Link: link})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", msg.To)
	assert.Equal(t, "Activate your account", msg.Subject)
	assert.Contains(t, msg.HTML, `href="https://social.example/members/activate?token=tok-123"`)
	assert.Contains(t, msg.HTML, "Hi alice,")
	assert.Contains(t, msg.Text, link)
}

func TestRenderActivation_EscapesNickname(t *testing.T) {
	msg, err := RenderActivation("x@example.com", ActivationData{Nickname: "<b>x</b>", Link: "https://a/b"})

	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "<b>x</b>")
	assert.Contains(t, msg.HTML, "&lt;b&gt;x&lt;/b&gt;")
}

func TestBuildMsg(t *testing.T) {
	gm, err := buildMsg("no-reply@social.example", Message{
		To:      "bob@example.com",
		Subject: "Activate your account",
		HTML:    "<p>hi</p>",
		Text:    "hi",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = gm.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Subject: Activate your account")
	assert.Contains(t, out, "bob@example.com")
	assert.Contains(t, out, "no-reply@social.example")

	t.Run("invalid recipient", func(t *testing.T) {
		_, err := buildMsg("no-reply@social.example", Message{To: "not an address"})
		assert.Error(t, err)
	})
}

func TestNewSMTPMailer_RequiresHost(t *testing.T) {
	_, err := NewSMTPMailer(config.SMTPConfig{})
	assert.Error(t, err)
}

func TestLogMailer(t *testing.T) {
	var buf bytes.Buffer
	m := NewLogMailer(logging.New(&buf, nil))

	msg := Message{To: "a@b.c", Subject: "Activate", Text: "open http://localhost/members/activate?token=secret-tok"}
	require.NoError(t, m.Send(context.Background(), msg))

	assert.Contains(t, buf.String(), `"msg":"mail_not_sent"`)
	assert.Contains(t, buf.String(), `"to":"a@b.c"`)
	assert.Contains(t, buf.String(), `"subject":"Activate"`)
	assert.NotContains(t, buf.String(), "secret-tok")
}
