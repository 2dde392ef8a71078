package orgscout_test

import (
	"testing"

	"github.com/fwojciec/orgscout"
	"github.com/stretchr/testify/assert"
)

func TestExtractEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"standard", "Contact chess@bhsu.edu for meeting times", "chess@bhsu.edu"},
		{"bracket obfuscation", "Email: chessclub [at] bhsu [dot] edu", "chessclub@bhsu.edu"},
		{"paren obfuscation", "Email: chessclub(at)bhsu(dot)edu", "chessclub@bhsu.edu"},
		{"spaced", "Reach us at chess @ bhsu.edu anytime", "chess@bhsu.edu"},
		{"blacklisted skipped", "noreply@bhsu.edu or chess@bhsu.edu", "chess@bhsu.edu"},
		{"org token preferred", "info@bhsu.edu, chessclub@bhsu.edu", "chessclub@bhsu.edu"},
		{"image filename rejected", "logo@2x.png", ""},
		{"none", "Meets Tuesdays in the Student Union", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, orgscout.ExtractEmail(tt.text))
		})
	}
}

func TestExtractEmail_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Contact chess@bhsu.edu",
		"chessclub [at] bhsu [dot] edu",
		"chess @ bhsu.edu",
		"info@bhsu.edu, studentclub@bhsu.edu",
		"nothing here",
	}
	for _, in := range inputs {
		once := orgscout.ExtractEmail(in)
		assert.Equal(t, once, orgscout.ExtractEmail(once), "input %q", in)
	}
}

func TestExtractPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"parenthesized", "Phone (605) 642-6000", "(605) 642-6000"},
		{"dashes", "Call 605-642-6000 today", "(605) 642-6000"},
		{"country code", "+1 605 642 6000", "(605) 642-6000"},
		{"dots", "605.642.6000", "(605) 642-6000"},
		{"bare digits", "6056426000", "(605) 642-6000"},
		{"too short", "Room 12345", ""},
		{"none", "no numbers", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, orgscout.ExtractPhone(tt.text))
		})
	}
}

func TestFormatPhone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(605) 642-6000", orgscout.FormatPhone("16056426000"))
	assert.Equal(t, "(605) 642-6000", orgscout.FormatPhone("605 642 6000"))
	assert.Empty(t, orgscout.FormatPhone("123"))
	assert.Empty(t, orgscout.FormatPhone(""))

	for _, in := range []string{"(605) 642-6000", "+1-605-642-6000", "6056426000", "42"} {
		once := orgscout.FormatPhone(in)
		assert.Equal(t, once, orgscout.FormatPhone(once), "input %q", in)
	}
}

func TestExtractContact(t *testing.T) {
	t.Parallel()

	c := orgscout.ExtractContact("Email chess@bhsu.edu or call (605) 642-6000.")

	assert.Equal(t, "chess@bhsu.edu", c.Email)
	assert.Equal(t, "(605) 642-6000", c.Phone)
}

func TestContactFromLinks(t *testing.T) {
	t.Parallel()

	t.Run("mailto and tel", func(t *testing.T) {
		t.Parallel()

		c := orgscout.ContactFromLinks([]string{
			"/clubs/biology",
			"mailto:Biology@bhsu.edu?subject=Join",
			"tel:+1-605-642-6000",
		})

		assert.Equal(t, "Biology@bhsu.edu", c.Email)
		assert.Equal(t, "(605) 642-6000", c.Phone)
	})

	t.Run("first valid wins", func(t *testing.T) {
		t.Parallel()

		c := orgscout.ContactFromLinks([]string{
			"mailto:noreply@bhsu.edu",
			"mailto:not-an-address",
			"mailto:biology@bhsu.edu,dean@bhsu.edu",
			"mailto:other@bhsu.edu",
		})

		assert.Equal(t, "biology@bhsu.edu", c.Email)
		assert.Empty(t, c.Phone)
	})
}
