package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"toolcrib-backend/internal/logger"
)

type sendGridService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewSendGridService wires the SendGrid transport for reservation lifecycle
// notifications.
func NewSendGridService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridService) send(to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "send", nil)
	return nil
}

func (s *sendGridService) SendReservationApproved(_ context.Context, email, name, toolName string) error {
	subject := fmt.Sprintf("Reservation approved: %s", toolName)
	plainText := fmt.Sprintf("Hi %s, your reservation for %s has been approved. You can pick it up at the counter.", name, toolName)
	htmlContent := fmt.Sprintf(`<html><body>
		<h2>Reservation Approved</h2>
		<p>Hi %s, your reservation for <strong>%s</strong> has been approved.</p>
		<p>You can pick it up at the counter.</p>
	</body></html>`, name, toolName)
	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *sendGridService) SendReservationRejected(_ context.Context, email, name, toolName string) error {
	subject := fmt.Sprintf("Reservation rejected: %s", toolName)
	plainText := fmt.Sprintf("Hi %s, your reservation for %s was rejected. Contact the crib administrator for details.", name, toolName)
	htmlContent := fmt.Sprintf(`<html><body>
		<h2>Reservation Rejected</h2>
		<p>Hi %s, your reservation for <strong>%s</strong> was rejected.</p>
		<p>Contact the crib administrator for details.</p>
	</body></html>`, name, toolName)
	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *sendGridService) SendReservationCompleted(_ context.Context, email, name, toolName string) error {
	subject := fmt.Sprintf("Return recorded: %s", toolName)
	plainText := fmt.Sprintf("Hi %s, the return of %s has been recorded. Thanks for bringing it back.", name, toolName)
	htmlContent := fmt.Sprintf(`<html><body>
		<h2>Return Recorded</h2>
		<p>Hi %s, the return of <strong>%s</strong> has been recorded.</p>
		<p>Thanks for bringing it back.</p>
	</body></html>`, name, toolName)
	return s.send(email, name, subject, plainText, htmlContent)
}
