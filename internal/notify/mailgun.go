package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"
)

type Message struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers one rendered message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type MailgunMailer struct {
	client *mailgun.MailgunImpl
}

func NewMailgunMailer(domain, apiKey string) *MailgunMailer {
	return &MailgunMailer{client: mailgun.NewMailgun(domain, apiKey)}
}

func (m *MailgunMailer) Send(ctx context.Context, msg Message) error {
	message := m.client.NewMessage(msg.From, msg.Subject, msg.Text, msg.To)
	if msg.HTML != "" {
		message.SetHtml(msg.HTML)
	}

	sendCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, _, err := m.client.Send(sendCtx, message); err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}
	return nil
}
