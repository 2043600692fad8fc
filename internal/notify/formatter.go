package notify

import (
	"bytes"
	"encoding/json"
	"text/template"

	"github.com/restup/restup/internal/model"
)

// Formatter formats notifications into a webhook payload.
type Formatter interface {
	// Format converts a notification into the payload bytes.
	Format(n *model.Notification) ([]byte, error)

	// ContentType returns the HTTP Content-Type for the payload.
	ContentType() string
}

// JSONFormatter formats notifications as a flat JSON document. An optional
// template overrides the default payload shape.
type JSONFormatter struct {
	Template string
}

// jsonPayload is the default webhook payload.
type jsonPayload struct {
	Type      string            `json:"type"`
	Kind      string            `json:"kind,omitempty"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	Timestamp string            `json:"timestamp"`
	Color     int               `json:"color,omitempty"`
}

// Format converts a notification to the webhook payload.
func (f *JSONFormatter) Format(n *model.Notification) ([]byte, error) {
	if f.Template != "" {
		return f.formatWithTemplate(n)
	}

	payload := jsonPayload{
		Type:      string(n.Type),
		Kind:      string(n.Kind),
		Title:     n.Title,
		Message:   n.Message,
		Fields:    n.Fields,
		Timestamp: n.Timestamp.UTC().Format("2006-01-02T15:04:05Z"),
		Color:     n.Color,
	}
	return json.Marshal(payload)
}

// formatWithTemplate renders the custom payload template.
func (f *JSONFormatter) formatWithTemplate(n *model.Notification) ([]byte, error) {
	tmpl, err := template.New("webhook").Parse(f.Template)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ContentType returns the payload content type.
func (f *JSONFormatter) ContentType() string {
	return "application/json"
}
