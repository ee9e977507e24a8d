package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"lms/config"
	"lms/models"
)

// SendEmail delivers an HTML mail through the configured SMTP account.
// A missing sender config disables mail delivery.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" {
		log.Println("Email sender not configured, skipping mail:", subject)
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Course Marketplace <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	return nil
}

func emailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #00004D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; }
			.content { padding: 40px 30px; color: #00004D; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">You are receiving this mail because of activity on your account.</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendEnrollmentEmail confirms a new enrollment to the student, best effort
func SendEnrollmentEmail(user *models.User, course *models.Course) {
	body := fmt.Sprintf(
		"<h2>Hi %s,</h2><p>You are enrolled in <strong>%s</strong> (batch %d). Happy learning!</p>",
		user.Name, course.Title, course.Batch.BatchNumber,
	)
	if err := SendEmail([]string{user.Email}, "Enrollment confirmed: "+course.Title, emailTemplate("Enrollment Confirmed", body)); err != nil {
		log.Printf("Failed to send enrollment email to %s: %v", user.Email, err)
	}
}

// SendGradeEmail notifies a student that their assignment was graded, best effort
func SendGradeEmail(user *models.User, submission *models.AssignmentSubmission) {
	grade := 0
	if submission.Grade != nil {
		grade = *submission.Grade
	}
	body := fmt.Sprintf(
		"<h2>Hi %s,</h2><p>Your assignment for module %d has been graded: <strong>%d/100</strong>.</p><p>%s</p>",
		user.Name, submission.ModuleIndex, grade, submission.Feedback,
	)
	if err := SendEmail([]string{user.Email}, "Your assignment has been graded", emailTemplate("Assignment Graded", body)); err != nil {
		log.Printf("Failed to send grade email to %s: %v", user.Email, err)
	}
}
