package email

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"
)

// Built-in templates. Callers may override or extend them via AddTemplate.
const verificationTemplate = `Hello from <strong>ContactsApp</strong> <br />
<a href="{{.VerificationLink}}">Click here</a> to validate your account. <br />
Or insert the link in the URL: {{.VerificationLink}}`

// TemplateManager implements TemplateRenderer over html/template.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	// The default set; failures here are programmer errors caught in tests.
	_ = tm.AddTemplate("verification", verificationTemplate)
	return tm
}

// AddTemplate parses and registers a template under name.
func (tm *TemplateManager) AddTemplate(name string, tmpl string) error {
	parsed, err := template.New(name).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	defer tm.mutex.Unlock()
	tm.templates[name] = parsed
	return nil
}

// Render executes the named template with data.
func (tm *TemplateManager) Render(name string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tmpl, ok := tm.templates[name]
	tm.mutex.RUnlock()

	if !ok {
		return "", fmt.Errorf("template %s not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return buf.String(), nil
}
