//go:build unit

package user_test

import (
	"strings"
	"testing"

	"padel-club-api/internal/domain/user"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"lea@example.com", true},
		{"lea.club@example.co.uk", true},
		{"", false},
		{"pas-un-email", false},
		{"manque@domaine", false},
		{"@example.com", false},
	}

	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.valid, user.ValidateEmail(tc.email))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, user.ValidatePassword("padel1234"))
	assert.True(t, user.ValidatePassword("12345678"))
	assert.False(t, user.ValidatePassword("court"))
	assert.False(t, user.ValidatePassword(""))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Léa", user.Sanitize("  Léa  ", "fallback"))
	assert.Equal(t, "fallback", user.Sanitize("   ", "fallback"))
	assert.Equal(t, "fallback", user.Sanitize("", "fallback"))
}

func TestRandomAvatarURL(t *testing.T) {
	url := user.RandomAvatarURL()
	assert.True(t, strings.HasPrefix(url, "/assets/images/avatar-"))
}
