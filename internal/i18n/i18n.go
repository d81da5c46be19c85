// Package i18n localizes button captions.
package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/sjoeboo/msgbox/internal/buttons"
)

// DefaultLanguage is used when the host locale cannot be determined.
const DefaultLanguage = "en"

var captions = map[string]map[buttons.Key]string{
	"de": {
		buttons.KeyCancel: "Abbrechen",
		buttons.KeyClose:  "Schließen",
		buttons.KeyIgnore: "Ignorieren",
		buttons.KeyNo:     "Nein",
		buttons.KeyOpen:   "Öffnen",
		buttons.KeySave:   "Speichern",
		buttons.KeyRetry:  "Wiederholen",
		buttons.KeyYes:    "Ja",
	},
	"fr": {
		buttons.KeyCancel: "Annuler",
		buttons.KeyClose:  "Fermer",
		buttons.KeyIgnore: "Ignorer",
		buttons.KeyNo:     "Non",
		buttons.KeyOpen:   "Ouvrir",
		buttons.KeySave:   "Sauvegarder",
		buttons.KeyRetry:  "Répéter",
		buttons.KeyYes:    "Oui",
	},
}

// Label returns the caption of a button key in the given two-letter language.
// Unsupported languages fall back to the English key; a key missing from a
// supported language's table falls back to "OK".
func Label(lang string, key buttons.Key) string {
	table, ok := captions[strings.ToLower(strings.TrimSpace(lang))]
	if !ok {
		return string(key)
	}
	if s, ok := table[key]; ok {
		return s
	}
	return "OK"
}

// Supported reports whether captions are translated for lang.
func Supported(lang string) bool {
	_, ok := captions[strings.ToLower(strings.TrimSpace(lang))]
	return ok
}

// DetectLanguage derives a two-letter language code from the POSIX locale
// variables, in their usual precedence order.
func DetectLanguage(getenv func(string) string) string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if code, ok := parseLocale(getenv(name)); ok {
			return code
		}
	}
	return DefaultLanguage
}

// parseLocale turns "de_DE.UTF-8@euro" into "de".
func parseLocale(v string) (string, bool) {
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "C" || v == "POSIX" {
		return "", false
	}
	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	return base.String(), true
}
