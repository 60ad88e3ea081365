package email

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// Message is a transport-agnostic notification email. Both transports must
// deliver the same informational content; only wire formatting may differ.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// contactEmailTemplate is the HTML rendering of a contact notification.
const contactEmailTemplate = `<h2>New Contact Form Submission</h2>
<p><strong>From:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
<hr>
<p><em>Submitted at: {{.SubmittedAt}}</em></p>
`

var contactTmpl = template.Must(template.New("contact").Parse(contactEmailTemplate))

type contactTemplateData struct {
	Name        string
	Email       string
	Message     string
	SubmittedAt string
}

// NewContactMessage builds the owner notification for a contact-form
// submission. Reply-To is set to the submitter so the owner can answer
// directly from their mail client.
func NewContactMessage(to, name, email, message string, submittedAt time.Time) (Message, error) {
	stamp := submittedAt.Format("1/2/2006, 3:04:05 PM")

	text := fmt.Sprintf(
		"Name: %s\nEmail: %s\nMessage: %s\nSubmitted at: %s\n",
		name, email, message, stamp,
	)

	var html bytes.Buffer
	data := contactTemplateData{
		Name:        name,
		Email:       email,
		Message:     message,
		SubmittedAt: stamp,
	}
	if err := contactTmpl.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("failed to execute email template: %w", err)
	}

	return Message{
		To:      to,
		ReplyTo: email,
		Subject: "New Contact Form Submission from " + name,
		Text:    text,
		HTML:    html.String(),
	}, nil
}
