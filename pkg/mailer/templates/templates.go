package templates

import (
	"bytes"
	"fmt"
	htmpl "html/template"
	"strings"
	texttpl "text/template"
)

// Template kinds understood by the email worker.
const (
	RecoveryCode     = "recovery_code"
	UsernameReminder = "username_reminder"
	ListingApproved  = "listing_approved"
	ListingDeleted   = "listing_deleted"
	AccountBanned    = "account_banned"
)

// Subject returns the subject line for a template kind.
func Subject(kind string) string {
	switch strings.ToLower(kind) {
	case RecoveryCode:
		return "Your recovery code"
	case UsernameReminder:
		return "Your username"
	case ListingApproved:
		return "Your listing is live"
	case ListingDeleted:
		return "Your listing was removed"
	case AccountBanned:
		return "Your account has been suspended"
	default:
		return "Notification"
	}
}

var textBodies = map[string]string{
	RecoveryCode: `Hi {{.Name | default "there"}},

Your one-time recovery code is {{.Code}}. It expires in {{.ExpiresIn}}.

If you did not request this, you can ignore this email.`,
	UsernameReminder: `Hi {{.Name | default "there"}},

The username for this account is: {{.Username}}`,
	ListingApproved: `Hi {{.Name | default "there"}},

Your listing "{{.ListingTitle}}" was approved and is now visible to buyers.`,
	ListingDeleted: `Hi {{.Name | default "there"}},

Your listing "{{.ListingTitle}}" was removed by a moderator.`,
	AccountBanned: `Hi {{.Name | default "there"}},

Your account has been suspended until {{.Until}}. Contact support if you believe this is a mistake.`,
}

var textTemplates = map[string]*texttpl.Template{}
var htmlTemplates = map[string]*htmpl.Template{}

func init() {
	tfuncs := texttpl.FuncMap{"default": defaultFn}
	hfuncs := htmpl.FuncMap{"default": defaultFn}
	for kind, body := range textBodies {
		textTemplates[kind] = texttpl.Must(texttpl.New(kind).Funcs(tfuncs).Parse(body))
		htmlBody := "<html><body><pre style=\"font-family:sans-serif\">" + body + "</pre></body></html>"
		htmlTemplates[kind] = htmpl.Must(htmpl.New(kind).Funcs(hfuncs).Parse(htmlBody))
	}
}

// defaultFn supports pipe usage: {{ .Value | default "Fallback" }}
func defaultFn(fallback any, value any) any {
	s := strings.TrimSpace(fmt.Sprintf("%v", value))
	if s == "" || s == "<nil>" {
		return fallback
	}
	return value
}

// Render produces the text and HTML bodies for a template kind.
func Render(kind string, data map[string]any) (text string, html string, err error) {
	kind = strings.ToLower(kind)
	tt, ok := textTemplates[kind]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", kind)
	}
	var tb bytes.Buffer
	if err := tt.Execute(&tb, data); err != nil {
		return "", "", err
	}
	var hb bytes.Buffer
	if err := htmlTemplates[kind].Execute(&hb, data); err != nil {
		return "", "", err
	}
	return tb.String(), hb.String(), nil
}
