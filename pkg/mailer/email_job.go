package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Template selects one of the kinds in pkg/mailer/templates; Data feeds it.
// Subject/Text/HTML may be set directly for raw sends.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "recovery_code", "listing_approved", "account_banned"
	Data     map[string]any `json:"data,omitempty"`
}
