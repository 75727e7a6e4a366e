// Package localization holds the compiled-in translation tables for the
// ten supported languages. Lookup never fails: missing tables fall back
// to Portuguese and missing keys return the key itself, so the UI always
// has something displayable.
package localization

import (
	"github.com/cskyle2026/Diabetes/models"
)

// Translate returns the display string for key in lang.
func Translate(lang models.LanguageCode, key string) string {
	if table, ok := tables[lang]; ok {
		if v, ok := table[key]; ok {
			return v
		}
	}
	if v, ok := tables[models.DefaultLanguage][key]; ok {
		return v
	}
	return key
}
