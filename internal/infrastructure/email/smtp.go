package email

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPEmailService sends campaign invitations and low-rating alerts.
// Campaign templates are authored in markdown; the rendered HTML is
// sanitized before it leaves the service.
type SMTPEmailService struct {
	config   SMTPConfig
	dialer   *gomail.Dialer
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config:   config,
		dialer:   dialer,
		markdown: goldmark.New(),
		policy:   bluemonday.UGCPolicy(),
	}
}

// SendCampaignEmail renders the campaign's markdown template and delivers the
// review invitation. The plain-text alternative carries the raw template so
// the review link survives clients that strip HTML.
func (s *SMTPEmailService) SendCampaignEmail(to, subject, markdownBody string) error {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(markdownBody), &buf); err != nil {
		return fmt.Errorf("failed to render campaign template: %w", err)
	}
	htmlBody := s.policy.Sanitize(buf.String())

	return s.sendEmail(to, subject, htmlBody, markdownBody)
}

// SendReviewAlert notifies a business owner that a low-rating review arrived.
func (s *SMTPEmailService) SendReviewAlert(to, businessName, reviewerName, comment string, rating int) error {
	subject := fmt.Sprintf("New %d-star review for %s", rating, businessName)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Review Alert</h2>
			<p><strong>%s</strong> received a new %d-star review from %s:</p>
			<blockquote>%s</blockquote>
			<p>Log in to your dashboard to respond.</p>
		</body>
		</html>
	`, s.policy.Sanitize(businessName), rating, s.policy.Sanitize(reviewerName), s.policy.Sanitize(comment))

	plainBody := fmt.Sprintf(`
New Review Alert

%s received a new %d-star review from %s:

%s

Log in to your dashboard to respond.
	`, businessName, rating, reviewerName, comment)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
