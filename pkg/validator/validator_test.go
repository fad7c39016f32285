package validator_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/remindme/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all pass", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(
			validator.Required("title", "Dentist"),
			validator.MinLen("title", "Dentist", 3),
			validator.MaxLen("title", "Dentist", 10),
		))
	})

	t.Run("collects failures", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.Required("title", "  "),
			validator.ValidEmail("email", "nope"),
			validator.ValidPhone("phoneNumber", "+15551234567"),
		)
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))
		assert.Equal(t, "validation failed: title: field is required; email: must be a valid email address", err.Error())

		var ve validator.ValidationErrors
		require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &ve))
		assert.True(t, ve.Has("email"))
		assert.False(t, ve.Has("phoneNumber"))
		assert.Equal(t, []string{"field is required"}, ve.Get("title"))
	})

	t.Run("when", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.When(false, validator.ValidURL("avatarUrl", "bad"))))
		assert.Error(t, validator.Apply(validator.When(true, validator.ValidURL("avatarUrl", "bad"))))
	})
}

func TestRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule validator.Rule
		want bool
	}{
		{"email ok", validator.ValidEmail("e", "jane@example.com"), true},
		{"email display name", validator.ValidEmail("e", "Jane <jane@example.com>"), false},
		{"email no dot", validator.ValidEmail("e", "jane@localhost"), false},
		{"email empty", validator.ValidEmail("e", ""), false},
		{"url ok", validator.ValidURL("u", "https://cdn.example.com/a.png"), true},
		{"url relative", validator.ValidURL("u", "/a.png"), false},
		{"phone ok", validator.ValidPhone("p", "+1 555-123-4567"), true},
		{"phone short", validator.ValidPhone("p", "+12"), false},
		{"phone letters", validator.ValidPhone("p", "+1555CALLME"), false},
		{"min len runes", validator.MinLen("s", "äöü", 3), true},
		{"max len", validator.MaxLen("s", "abcd", 3), false},
		{"time set", validator.RequiredTime("t", time.Now()), true},
		{"time zero", validator.RequiredTime("t", time.Time{}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rule.Check())
		})
	}
}
