package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		err      error
	}{
		{"en-US", "en-US", nil},
		{"en_us", "en-US", nil},
		{"de-de", "de-DE", nil},
		{" fr-FR ", "fr-FR", nil},
		{"pt-BR", "pt-BR", nil},
		{"en", "", ErrMissingRegion},
		{"de", "", ErrMissingRegion},
		{"", "", ErrInvalidLocale},
		{"not a locale", "", ErrInvalidLocale},
		{"es-419", "", ErrInvalidLocale},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLocale(tt.input)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1,234,567", FormatNumber("en-US", 1234567))
	assert.Equal(t, "1.234.567", FormatNumber("de-DE", 1234567))
	assert.Equal(t, "42", FormatNumber("garbage", 42))
}
