package notify

// go generate: mockery --name Mailer

import (
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/pharmassist/pharmassist-api/models"
	templates "github.com/pharmassist/pharmassist-api/templates/html"
)

// Mailer sends transactional email for account and order lifecycle events
type Mailer interface {
	SendWelcomeEmail(toEmail, toName string) error
	SendOrderStatusEmail(toEmail, toName string, order *models.Order) error
	SendDailyReminderEmail(toEmail, toName string, medicines []models.Medicine) error
}

// SendGridMailer is the production Mailer backed by the SendGrid API
type SendGridMailer struct{}

// NewSendGridMailer creates a SendGrid-backed mailer
func NewSendGridMailer() *SendGridMailer {
	return &SendGridMailer{}
}

func (m *SendGridMailer) send(toEmail, toName, subject, htmlContent, plainText string) error {
	from := mail.NewEmail("PharmaAssist", "no-reply@pharmassist.app")
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)
	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
	}
	return nil
}

// SendWelcomeEmail greets a newly registered user
func (m *SendGridMailer) SendWelcomeEmail(toEmail, toName string) error {
	subject := "Welcome to PharmaAssist"
	htmlContent := templates.RenderWelcomeEmail(toName)
	plainText := "Welcome to PharmaAssist, " + toName + "! Your account is ready."

	return m.send(toEmail, toName, subject, htmlContent, plainText)
}

// SendOrderStatusEmail notifies a patient that their order moved to a new status
func (m *SendGridMailer) SendOrderStatusEmail(toEmail, toName string, order *models.Order) error {
	label := models.OrderStatusLabel(order.Status)
	subject := "Order Update: " + label + " - PharmaAssist"
	htmlContent := templates.RenderOrderStatusEmail(toName, order)
	plainText := "Your order " + order.ID.Hex() + " is now: " + label

	return m.send(toEmail, toName, subject, htmlContent, plainText)
}

// SendDailyReminderEmail sends the morning medication summary
func (m *SendGridMailer) SendDailyReminderEmail(toEmail, toName string, medicines []models.Medicine) error {
	subject := "Your Daily Medication Reminder - PharmaAssist"
	htmlContent := templates.RenderDailyReminderEmail(toName, medicines)
	plainText := "Good morning! You have medications scheduled today. Open PharmaAssist to see your schedule."

	return m.send(toEmail, toName, subject, htmlContent, plainText)
}
