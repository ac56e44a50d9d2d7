// Package mail renders and delivers transactional emails.
package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"log/slog"
	"net/url"
	"strings"
	texttemplate "text/template"
)

//go:embed templates/*
var templateFS embed.FS

var (
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html"))
	textTemplates = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*.txt"))
)

// Message is a rendered email with an HTML body and a plain-text alternative.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// ActivationData feeds the activation templates.
type ActivationData struct {
	Nickname string
	Link     string
}

// ActivationLink builds <baseURL>/members/activate?token=<token>.
func ActivationLink(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/members/activate?token=" + url.QueryEscape(token)
}

func RenderActivation(to string, data ActivationData) (Message, error) {
	var html, text bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&html, "activation.html", data); err != nil {
		return Message{}, fmt.Errorf("render activation html: %w", err)
	}
	if err := textTemplates.ExecuteTemplate(&text, "activation.txt", data); err != nil {
		return Message{}, fmt.Errorf("render activation text: %w", err)
	}
	return Message{
		To:      to,
		Subject: "Activate your account",
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}

// LogMailer logs the envelope of each message instead of sending it. It is
// used when no SMTP host is configured. Bodies can carry activation tokens and
// are never logged.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger.With("component", "mail")}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.logger.Info("mail_not_sent", "to", msg.To, "subject", msg.Subject)
	return nil
}
