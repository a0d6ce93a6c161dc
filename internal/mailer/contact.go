package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"
)

// ContactSubmission carries the validated contact-form fields.
type ContactSubmission struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Message   string `json:"message"`
}

// FullName joins first and last name, skipping an empty last name.
func (s ContactSubmission) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

const contactTpl = `<!DOCTYPE html>
<html>
<body style="font-family:Arial,sans-serif;background:#f5f5f5;padding:20px">
<div style="max-width:600px;margin:0 auto;background:#fff;border:1px solid #ddd;border-radius:10px;padding:20px">
  <h2 style="color:#00ff99;border-bottom:2px solid #00ff99;padding-bottom:10px">New Contact Form Submission</h2>
  <table style="width:100%;border-collapse:collapse;margin:20px 0">
    <tr style="background-color:#f9f9f9">
      <td style="padding:10px;border:1px solid #ddd;font-weight:bold;width:30%">Name:</td>
      <td style="padding:10px;border:1px solid #ddd">{{.FullName}}</td>
    </tr>
    <tr>
      <td style="padding:10px;border:1px solid #ddd;font-weight:bold">Email:</td>
      <td style="padding:10px;border:1px solid #ddd"><a href="mailto:{{.Email}}" style="color:#00ff99">{{.Email}}</a></td>
    </tr>
    {{if .Phone}}
    <tr style="background-color:#f9f9f9">
      <td style="padding:10px;border:1px solid #ddd;font-weight:bold">Phone:</td>
      <td style="padding:10px;border:1px solid #ddd">{{.Phone}}</td>
    </tr>
    {{end}}
    {{if .Service}}
    <tr>
      <td style="padding:10px;border:1px solid #ddd;font-weight:bold">Service:</td>
      <td style="padding:10px;border:1px solid #ddd">{{.Service}}</td>
    </tr>
    {{end}}
  </table>
  <h3 style="color:#333">Message:</h3>
  <div style="padding:15px;background-color:#f9f9f9;border-left:4px solid #00ff99;border-radius:5px">
    <p style="color:#555;line-height:1.6;margin:0">{{.MessageHTML}}</p>
  </div>
  <p style="margin-top:30px;padding-top:20px;border-top:1px solid #ddd;text-align:center;color:#999;font-size:12px">
    This email was sent from your portfolio contact form<br/>Received at: {{.ReceivedAt}}
  </p>
</div>
</body>
</html>`

var contactTemplate = template.Must(template.New("contact").Parse(contactTpl))

// ComposeContact renders the notification email for one submission.
func ComposeContact(sub ContactSubmission, to string, now time.Time) (Message, error) {
	data := struct {
		ContactSubmission
		MessageHTML template.HTML
		ReceivedAt  string
	}{
		ContactSubmission: sub,
		MessageHTML: template.HTML(strings.ReplaceAll(
			template.HTMLEscapeString(sub.Message), "\n", "<br>")),
		ReceivedAt: now.Format("Jan 2, 2006 15:04:05 MST"),
	}

	var html bytes.Buffer
	if err := contactTemplate.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("render contact template: %w", err)
	}

	var text strings.Builder
	text.WriteString("New Contact Form Submission\n\n")
	fmt.Fprintf(&text, "Name: %s\n", sub.FullName())
	fmt.Fprintf(&text, "Email: %s\n", sub.Email)
	if sub.Phone != "" {
		fmt.Fprintf(&text, "Phone: %s\n", sub.Phone)
	}
	if sub.Service != "" {
		fmt.Fprintf(&text, "Service: %s\n", sub.Service)
	}
	fmt.Fprintf(&text, "\nMessage:\n%s\n", sub.Message)

	return Message{
		To:      []string{to},
		Subject: fmt.Sprintf("New Contact Form Submission from %s", sub.FullName()),
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
