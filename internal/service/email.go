package service

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aris-health/aris-backend/config"
	"github.com/aris-health/aris-backend/internal/models"
)

// EmailService sends transactional mail over SMTP. When SMTP is not
// configured it logs the message instead, which keeps local development and
// tests working without a mail server.
type EmailService struct {
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
	fromName     string
	adminEmail   string
	frontendURL  string
}

var _ IEmailService = (*EmailService)(nil)

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		smtpHost:     cfg.SMTPHost,
		smtpPort:     cfg.SMTPPort,
		smtpUsername: cfg.SMTPUsername,
		smtpPassword: cfg.SMTPPassword,
		fromEmail:    cfg.EmailFrom,
		fromName:     cfg.EmailName,
		adminEmail:   cfg.AdminEmail,
		frontendURL:  cfg.FrontendURL,
	}
}

func (s *EmailService) SendEmail(to, subject, body string) error {
	if s.smtpHost == "" || s.smtpPort == "" {
		log.Printf("[EmailService] SMTP not configured, logging email instead")
		log.Printf("[EmailService] To: %s", to)
		log.Printf("[EmailService] Subject: %s", subject)
		log.Printf("[EmailService] Body:\n%s", body)
		return nil
	}

	auth := smtp.PlainAuth("", s.smtpUsername, s.smtpPassword, s.smtpHost)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: text/html; charset=UTF-8\r\n"+
		"\r\n"+
		"%s\r\n", to, from, subject, body))

	addr := fmt.Sprintf("%s:%s", s.smtpHost, s.smtpPort)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *EmailService) SendVerificationEmail(user *models.User, token string) error {
	subject := "Verify Your Email - ARIS"
	verificationURL := fmt.Sprintf("%s/verify-email?token=%s", s.frontendURL, token)
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h2>Welcome to ARIS, %s!</h2>
	<p>Thank you for creating your allergy profile. Please verify your email address to activate your account.</p>
	<p style="text-align: center; margin: 30px 0;">
		<a href="%s" style="background-color: #2563eb; color: white; padding: 12px 28px; text-decoration: none; border-radius: 5px; font-weight: bold;">Verify Email Address</a>
	</p>
	<p style="color: #666; font-size: 13px;">If the button does not work, copy and paste this link into your browser:</p>
	<p style="background-color: #eee; padding: 10px; border-radius: 5px; word-break: break-all; font-size: 12px;">%s</p>
	<p style="color: #666; font-size: 12px;">This link expires in 24 hours. If you did not sign up for ARIS, you can ignore this email.</p>
</body>
</html>
`, user.FirstName, verificationURL, verificationURL)
	return s.SendEmail(user.Email, subject, body)
}

func (s *EmailService) SendPasswordResetEmail(user *models.User, token string) error {
	subject := "Reset Your Password - ARIS"
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h2>Hello %s,</h2>
	<p>We received a request to reset your ARIS password. Click the button below to choose a new one.</p>
	<p style="text-align: center; margin: 30px 0;">
		<a href="%s" style="background-color: #2563eb; color: white; padding: 12px 28px; text-decoration: none; border-radius: 5px; font-weight: bold;">Reset Password</a>
	</p>
	<p style="background-color: #eee; padding: 10px; border-radius: 5px; word-break: break-all; font-size: 12px;">%s</p>
	<p style="color: #666; font-size: 12px;">This link expires in one hour and can be used once. If you did not request a reset, no action is needed.</p>
</body>
</html>
`, user.FirstName, resetURL, resetURL)
	return s.SendEmail(user.Email, subject, body)
}

// SendRecommendationNotification notifies the admin inbox about a new
// submission.
func (s *EmailService) SendRecommendationNotification(rec *models.Recommendation, user *models.User) error {
	toEmail := s.adminEmail
	if toEmail == "" {
		toEmail = s.fromEmail
	}

	caser := cases.Title(language.English)
	subject := fmt.Sprintf("[ARIS] New %s", caser.String(strings.ToLower(rec.Type)))

	var userInfo string
	if user != nil {
		userInfo = fmt.Sprintf(`
			<p><strong>Submitted by:</strong></p>
			<ul>
				<li>Name: %s %s</li>
				<li>Email: %s</li>
				<li>User ID: %s</li>
			</ul>
		`, user.FirstName, user.LastName, user.Email, user.ID)
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<h2>New %s</h2>
	<div style="background-color: #f5f5f5; padding: 15px; border-radius: 5px;">
		%s
	</div>
	%s
	<p style="font-size: 12px; color: #666;">Recommendation ID: %s · Submitted: %s</p>
</body>
</html>
`,
		rec.Type,
		strings.ReplaceAll(rec.Content, "\n", "<br>"),
		userInfo,
		rec.ID,
		rec.CreatedAt.Format("2006-01-02 15:04:05 MST"),
	)

	return s.SendEmail(toEmail, subject, body)
}
