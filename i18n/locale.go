package i18n

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ErrInvalidLocale = errors.New("invalid locale")
	ErrMissingRegion = errors.New("locale has no region")
)

// maxLocaleLen matches the width of the locale columns
const maxLocaleLen = 5

// ParseLocale parses a BCP 47 code such as en-US or de_de and returns it
// in the standard lang-REGION form. The region has to be given
// explicitly; a code like "en" fails with ErrMissingRegion.
func ParseLocale(code string) (string, error) {
	code = strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if code == "" {
		return "", ErrInvalidLocale
	}

	tag, err := language.Parse(code)
	if err != nil {
		return "", ErrInvalidLocale
	}

	base, conf := tag.Base()
	if conf != language.Exact {
		return "", ErrInvalidLocale
	}
	region, conf := tag.Region()
	if conf != language.Exact {
		return "", ErrMissingRegion
	}

	standard := base.String() + "-" + region.String()
	if len(standard) > maxLocaleLen {
		return "", ErrInvalidLocale
	}
	return standard, nil
}

// Tag parses a locale that was stored by ParseLocale. Unparseable values
// give language.AmericanEnglish.
func Tag(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// FormatNumber formats n with the grouping rules of the regional locale
func FormatNumber(regional string, n int64) string {
	return message.NewPrinter(Tag(regional)).Sprintf("%d", n)
}
