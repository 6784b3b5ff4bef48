package notifications

import (
	"clasi/internal/model"
	"context"
	"fmt"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	log "github.com/sirupsen/logrus"
	"html"
	"net/http"
)

// Mailer is the part of *sendgrid.Client the sender uses.
type Mailer interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type Sender struct {
	client Mailer
	from   string
	to     string
}

func NewSender(client Mailer, from, to string) *Sender {
	return &Sender{
		client: client,
		from:   from,
		to:     to,
	}
}

// NewSendGridSender builds a Sender backed by the SendGrid API.
func NewSendGridSender(apiKey, from, to string) *Sender {
	return NewSender(sendgrid.NewSendClient(apiKey), from, to)
}

// NotifyReview mails a submitted course review to the reviewer mailbox.
func (s *Sender) NotifyReview(ctx context.Context, sub model.Submission) error {
	from := mail.NewEmail("Clasi", s.from)
	to := mail.NewEmail("Course reviews", s.to)
	subject := fmt.Sprintf("New review for course %s (%d/5)", sub.CourseID, sub.Rating)
	plainTextContent := fmt.Sprintf("Submission %s\nCourse: %s\nRating: %d\n\n%s", sub.ID, sub.CourseID, sub.Rating, sub.Text)
	htmlContent := fmt.Sprintf("<p><strong>Course %s</strong> rated %d/5</p><p>%s</p>",
		html.EscapeString(sub.CourseID), sub.Rating, html.EscapeString(sub.Text))

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sending review email: %w", err)
	}

	if response.StatusCode != http.StatusAccepted {
		log.Errorf("failure sending review email with sendgrid: %v", response.Body)
		return fmt.Errorf("sendgrid responded with status %d", response.StatusCode)
	}

	return nil
}
