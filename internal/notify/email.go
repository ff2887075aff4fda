package notify

import (
	"bytes"
	"html/template"
	"time"
)

// ContactEmail is the data of a contact form notification.
type ContactEmail struct {
	SiteName    string
	Name        string
	Email       string
	Message     string
	SubmittedAt time.Time
}

var contactTemplate = template.Must(template.New("contact").Parse(`<h2>New contact form submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Message:</strong></p>
<p style="white-space: pre-wrap">{{.Message}}</p>
<hr>
<p><small>Sent from the {{.SiteName}} contact form on {{.SubmittedAt.Format "2 Jan 2006 15:04 MST"}}</small></p>
`))

// RenderContact renders the subject and HTML body of a contact notification.
// Submitted fields are escaped.
func RenderContact(data ContactEmail) (subject, html string, err error) {
	var buf bytes.Buffer
	if err := contactTemplate.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return "New Contact Form Submission from " + data.Name, buf.String(), nil
}
