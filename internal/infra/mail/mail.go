// Package mail delivers enquiry notifications from the public site.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/resend/resend-go/v2"
)

type Message struct {
	To      []string
	Subject string
	HTML    string
	ReplyTo string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New returns a Resend-backed mailer, or a log-only mailer when apiKey is empty.
func New(apiKey, from string) Mailer {
	if strings.TrimSpace(apiKey) == "" {
		return LogMailer{}
	}
	return &ResendMailer{client: resend.NewClient(apiKey), from: from}
}

type ResendMailer struct {
	client *resend.Client
	from   string
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("mail: no recipient")
	}
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if msg.ReplyTo != "" {
		params.ReplyTo = msg.ReplyTo
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}
	slog.Info("mail sent", slog.String("message_id", sent.Id), slog.String("subject", msg.Subject))
	return nil
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg Message) error {
	slog.Info("mail not configured, logging message",
		slog.Any("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	return nil
}
