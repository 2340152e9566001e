package service

import (
	"context"
	"fmt"

	"teampulse-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *emailService) SendInviteLink(ctx context.Context, email, orgName, link string) error {
	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail("", email)
	subject := fmt.Sprintf("Invitation to join %s", orgName)

	body := fmt.Sprintf("Hello,\n\nYou have been invited to join %s on TeamPulse.\n\nFollow this link to accept:\n\n%s\n\nBest regards,\nThe TeamPulse Team", orgName, link)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	logger.Debug("Invite email sent", "to", email, "org", orgName)
	return nil
}
