package services

import (
	"fmt"
	"net/smtp"

	"cafehub/pkg/config"
)

// SendStaffInviteEmail emails a new staff member their initial
// credentials. Without SMTP configuration the invite is logged instead,
// so local development works without a mail account.
func SendStaffInviteEmail(email, cafeName, tempPassword string) error {
	smtpEmail := config.AppConfig.SMTPEmail
	smtpPassword := config.AppConfig.SMTPPassword

	if smtpEmail == "" || smtpPassword == "" {
		fmt.Printf("📧 [DEV MODE] Staff invite for %s at %s, temp password: %s\n", email, cafeName, tempPassword)
		return nil
	}

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	subject := fmt.Sprintf("You've been added to %s", cafeName)
	body := fmt.Sprintf(`
		<html>
		<body style="font-family: Arial, sans-serif; padding: 20px;">
			<div style="max-width: 400px; margin: 0 auto; border-radius: 16px; padding: 32px;">
				<h2 style="margin-bottom: 8px;">%s</h2>
				<p>You've been invited to the staff dashboard.</p>
				<p>Sign in with this email and the temporary password below, then change it.</p>
				<div style="border-radius: 12px; padding: 20px; margin: 24px 0; background: #f4f4f5;">
					<span style="font-size: 24px; font-weight: bold; letter-spacing: 2px;">%s</span>
				</div>
			</div>
		</body>
		</html>
	`, cafeName, tempPassword)

	message := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		cafeName, smtpEmail, email, subject, body)

	auth := smtp.PlainAuth("", smtpEmail, smtpPassword, smtpHost)
	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, smtpEmail, []string{email}, []byte(message)); err != nil {
		fmt.Printf("📧 [EMAIL FAILED] Staff invite for %s (error: %v)\n", email, err)
		return nil
	}

	fmt.Printf("📧 Staff invite sent to %s\n", email)
	return nil
}
