package content

import (
	"bytes"
	"html/template"
	"time"
)

var inquiryNotification = template.Must(template.New("inquiry").Parse(`<h2>New inquiry from {{.Name}}</h2>
<p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Received:</strong> {{.ReceivedAt.Format "2006-01-02 15:04 MST"}}</p>
<hr>
<p style="white-space:pre-wrap;">{{.Message}}</p>
`))

type InquiryNotificationData struct {
	Name       string
	Email      string
	Subject    string
	Message    string
	ReceivedAt time.Time
}

// InquiryNotification renders the operator alert for a new inquiry. User
// supplied fields are HTML-escaped.
func InquiryNotification(data InquiryNotificationData) (Message, error) {
	var buf bytes.Buffer
	if err := inquiryNotification.Execute(&buf, data); err != nil {
		return Message{}, err
	}
	return Message{
		Subject: "New inquiry: " + data.Subject,
		HTML:    buf.String(),
	}, nil
}
