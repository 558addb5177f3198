package email

// Email is an outbound message.
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData feeds the message templates.
type TemplateData map[string]interface{}
