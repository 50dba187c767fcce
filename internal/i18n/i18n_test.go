package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	cases := map[string]language.Tag{
		"":        language.English,
		"en-US":   language.English,
		"de":      language.German,
		"fr-CA":   language.French,
		"pt-BR":   language.BrazilianPortuguese,
		"ja":      language.English,
		"garbage": language.English,
	}
	for locale, want := range cases {
		assert.Equal(t, want, Match(locale), "locale %q", locale)
	}
}

func TestPrinterTranslates(t *testing.T) {
	assert.Equal(t, "Stichpunkte", Printer("de").Sprintf(BulletPoints))
	assert.Equal(t, "Last Updated: 2024-05-01", Printer("en").Sprintf(LastUpdated, "2024-05-01"))
	assert.Equal(t, "Action Items", Printer("ja").Sprintf(ActionItems))
}
