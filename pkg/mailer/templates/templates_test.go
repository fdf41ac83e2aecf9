package templates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adityawp/campusmarket/pkg/mailer/templates"
)

func TestRenderRecoveryCode(t *testing.T) {
	text, html, err := templates.Render(templates.RecoveryCode, map[string]any{
		"Name":      "Alice",
		"Code":      "123456",
		"ExpiresIn": "15m0s",
	})
	assert.NoError(t, err)
	assert.Contains(t, text, "123456")
	assert.Contains(t, text, "Hi Alice")
	assert.Contains(t, html, "123456")
}

func TestRenderFallsBackOnMissingName(t *testing.T) {
	text, _, err := templates.Render(templates.ListingApproved, map[string]any{
		"ListingTitle": "Mini fridge",
	})
	assert.NoError(t, err)
	assert.Contains(t, text, "Hi there")
	assert.Contains(t, text, "Mini fridge")
}

func TestRenderUnknownKind(t *testing.T) {
	_, _, err := templates.Render("newsletter", nil)
	assert.Error(t, err)
}

func TestSubjects(t *testing.T) {
	assert.Equal(t, "Your recovery code", templates.Subject(templates.RecoveryCode))
	assert.Equal(t, "Notification", templates.Subject("whatever"))
}
