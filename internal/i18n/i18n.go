// Package i18n localizes panel copy for the agent's locale.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys; the English text doubles as the key.
const (
	OneSentenceSummary = "One Sentence Summary"
	ActionItems        = "Action Items"
	BulletPoints       = "Bullet Points"
	LastUpdated        = "Last Updated: %s"
	Helpful            = "Helpful"
	NotHelpful         = "Not helpful"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		OneSentenceSummary: "One Sentence Summary",
		ActionItems:        "Action Items",
		BulletPoints:       "Bullet Points",
		LastUpdated:        "Last Updated: %s",
		Helpful:            "Helpful",
		NotHelpful:         "Not helpful",
	},
	language.German: {
		OneSentenceSummary: "Zusammenfassung in einem Satz",
		ActionItems:        "Aufgaben",
		BulletPoints:       "Stichpunkte",
		LastUpdated:        "Zuletzt aktualisiert: %s",
		Helpful:            "Hilfreich",
		NotHelpful:         "Nicht hilfreich",
	},
	language.Spanish: {
		OneSentenceSummary: "Resumen en una frase",
		ActionItems:        "Acciones pendientes",
		BulletPoints:       "Puntos clave",
		LastUpdated:        "Última actualización: %s",
		Helpful:            "Útil",
		NotHelpful:         "No útil",
	},
	language.French: {
		OneSentenceSummary: "Résumé en une phrase",
		ActionItems:        "Actions à mener",
		BulletPoints:       "Points clés",
		LastUpdated:        "Dernière mise à jour : %s",
		Helpful:            "Utile",
		NotHelpful:         "Pas utile",
	},
	language.BrazilianPortuguese: {
		OneSentenceSummary: "Resumo em uma frase",
		ActionItems:        "Itens de ação",
		BulletPoints:       "Tópicos",
		LastUpdated:        "Última atualização: %s",
		Helpful:            "Útil",
		NotHelpful:         "Não útil",
	},
}

// Supported is ordered so the first tag is the fallback.
var Supported = []language.Tag{
	language.English,
	language.German,
	language.Spanish,
	language.French,
	language.BrazilianPortuguese,
}

var (
	matcher = language.NewMatcher(Supported)
	cat     = buildCatalog()
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Match picks the supported tag closest to a platform locale such as
// "de" or "pt-BR". Unknown or empty locales fall back to English.
func Match(locale string) language.Tag {
	desired, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(desired) == 0 {
		return Supported[0]
	}
	_, idx, _ := matcher.Match(desired...)
	return Supported[idx]
}

func Printer(locale string) *message.Printer {
	return message.NewPrinter(Match(locale), message.Catalog(cat))
}
