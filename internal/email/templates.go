package email

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"
)

// Встроенные шаблоны по умолчанию; AddTemplate может их переопределить
var defaultTemplates = map[string]string{
	"password_reset": `<html><body>
<h2>Password reset</h2>
<p>We received a request to reset the password for your account.</p>
<p><a href="{{.ResetURL}}">Reset your password</a></p>
<p>The link is valid for {{.TTLMinutes}} minutes. If you did not request a reset, ignore this email.</p>
</body></html>`,

	"lead_notification": `<html><body>
<h2>New {{.Kind}} submission</h2>
<p>Name: {{.Name}}</p>
<p>Email: {{.Email}}</p>
{{if .Company}}<p>Company: {{.Company}}</p>{{end}}
{{if .Message}}<p>Message: {{.Message}}</p>{{end}}
</body></html>`,
}

// HTMLRenderer рендерит html/template шаблоны писем
type HTMLRenderer struct {
	mu        sync.RWMutex
	templates map[string]*template.Template
}

// NewHTMLRenderer создает рендерер со встроенными шаблонами
func NewHTMLRenderer() (*HTMLRenderer, error) {
	r := &HTMLRenderer{templates: make(map[string]*template.Template)}
	for name, text := range defaultTemplates {
		if err := r.AddTemplate(name, text); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Render рендерит шаблон с данными
func (r *HTMLRenderer) Render(templateName string, data TemplateData) (string, error) {
	r.mu.RLock()
	tmpl, ok := r.templates[templateName]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("email template %q is not registered", templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", templateName, err)
	}
	return buf.String(), nil
}

// AddTemplate добавляет или переопределяет шаблон
func (r *HTMLRenderer) AddTemplate(name string, text string) error {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse template %q: %w", name, err)
	}

	r.mu.Lock()
	r.templates[name] = tmpl
	r.mu.Unlock()
	return nil
}
