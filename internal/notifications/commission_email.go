package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"catalog-backend/internal/commissions"
)

const commissionNotificationTemplate = `<!DOCTYPE html>
<html>
<body>
  <h3>New commission inquiry</h3>
  <p><strong>Service:</strong> {{.Service}}</p>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Phone:</strong> {{.Phone}}</p>
  <p><strong>Preferred channel:</strong> {{.Channel}}</p>
  <p><strong>Language:</strong> {{.Lang}}</p>
  <p><strong>ID:</strong> {{.ID}}</p>
  <p><strong>Message:</strong><br/>{{.Message}}</p>
</body>
</html>`

var commissionNotificationTmpl = template.Must(template.New("commission_notification").Parse(commissionNotificationTemplate))

var serviceLabels = map[string]string{
	commissions.ServiceWeb:    "Web Design",
	commissions.ServiceSketch: "Pointillism Sketch",
}

func buildCommissionNotificationHTML(inquiry commissions.Inquiry) (string, error) {
	if label, ok := serviceLabels[inquiry.Service]; ok {
		inquiry.Service = label
	}
	var buf bytes.Buffer
	if err := commissionNotificationTmpl.Execute(&buf, inquiry); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendCommissionNotification emails the site owner about a new inquiry.
func (c *BrevoClient) SendCommissionNotification(ctx context.Context, inquiry commissions.Inquiry) (string, error) {
	if c == nil {
		return "", fmt.Errorf("brevo client is nil")
	}
	htmlBody, err := buildCommissionNotificationHTML(inquiry)
	if err != nil {
		return "", err
	}
	subject := fmt.Sprintf("Commission inquiry: %s from %s", serviceLabel(inquiry.Service), inquiry.Name)
	return c.sendHTML(ctx, c.ownerEmail, "", inquiry.Email, subject, htmlBody)
}

func serviceLabel(service string) string {
	if label, ok := serviceLabels[service]; ok {
		return label
	}
	return service
}
