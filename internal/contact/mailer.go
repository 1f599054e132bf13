package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/hamzabencheikh/portfolio-backend/config"
)

// Message is one contact-form submission to relay.
type Message struct {
	Name  string
	Email string
	Body  string
}

// Sender relays a contact message to the portfolio owner.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SendGridSender delivers through the SendGrid API.
type SendGridSender struct {
	apiKey    string
	sender    string
	recipient string
}

func NewSendGridSender(cfg config.MailConfig) *SendGridSender {
	return &SendGridSender{
		apiKey:    cfg.SendGridKey,
		sender:    cfg.Sender,
		recipient: cfg.Recipient,
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	from := sgmail.NewEmail("Portfolio Contact", s.sender)
	to := sgmail.NewEmail("", s.recipient)
	subject := fmt.Sprintf("Portfolio Contact: Message from %s", msg.Name)

	plain := fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", msg.Name, msg.Email, msg.Body)
	html := fmt.Sprintf(
		"<h3>New Contact Form Submission</h3><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Message:</strong></p><p>%s</p>",
		msg.Name, msg.Email, strings.ReplaceAll(msg.Body, "\n", "<br>"),
	)

	mail := sgmail.NewSingleEmail(from, subject, to, plain, html)
	mail.ReplyTo = sgmail.NewEmail(msg.Name, msg.Email)

	client := sendgrid.NewSendClient(s.apiKey)
	resp, err := client.SendWithContext(ctx, mail)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
