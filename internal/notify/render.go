// Package notify delivers domain notifications. Outbox queues rendered
// messages on Redis for an external mail worker; LogNotifier writes them to
// the structured log for local development.
package notify

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/mail"
	"time"

	"github.com/planner-app/planner/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// bodyDateLayout formats dates inside message bodies.
const bodyDateLayout = "Monday, January 2, 2006"

var templates = template.Must(
	template.New("").
		Funcs(template.FuncMap{
			"date": func(t time.Time) string { return t.Format(bodyDateLayout) },
		}).
		ParseFS(templateFS, "templates/*.html"),
)

// Render returns the HTML body for n, selected by n.Template.
func Render(n domain.Notification) (string, error) {
	tmpl := templates.Lookup(n.Template + ".html")
	if tmpl == nil {
		return "", fmt.Errorf("notify.Render: unknown template %q", n.Template)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, n.Data); err != nil {
		return "", fmt.Errorf("notify.Render: %s: %w", n.Template, err)
	}
	return buf.String(), nil
}

// address formats r as an RFC 5322 address, quoting the name when needed.
func address(r domain.Recipient) string {
	return (&mail.Address{Name: r.Name, Address: r.Email}).String()
}
