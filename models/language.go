package models

// LanguageCode selects a translation table and names the language the
// analysis service is asked to answer in.
type LanguageCode string

const (
	LangPortuguese LanguageCode = "pt"
	LangEnglish    LanguageCode = "en"
	LangMandarin   LanguageCode = "zh"
	LangHindi      LanguageCode = "hi"
	LangSpanish    LanguageCode = "es"
	LangFrench     LanguageCode = "fr"
	LangArabic     LanguageCode = "ar"
	LangBengali    LanguageCode = "bn"
	LangRussian    LanguageCode = "ru"
	LangJapanese   LanguageCode = "ja"
)

// DefaultLanguage is used when no profile exists yet and as the fallback
// table for missing translations.
const DefaultLanguage = LangPortuguese

// Languages maps each supported code to its display name, as shown in the
// settings picker and embedded in the analysis prompt.
var Languages = map[LanguageCode]string{
	LangPortuguese: "Português",
	LangEnglish:    "English",
	LangMandarin:   "Mandarim (Chinês Simplificado)",
	LangHindi:      "Hindi",
	LangSpanish:    "Español",
	LangFrench:     "Français",
	LangArabic:     "Árabe",
	LangBengali:    "Bengali",
	LangRussian:    "Russo",
	LangJapanese:   "Japonês",
}

// Supported reports whether l is one of the ten supported codes.
func (l LanguageCode) Supported() bool {
	_, ok := Languages[l]
	return ok
}

// DisplayName returns the human-readable name used in the analysis
// prompt. Unsupported codes resolve to Portuguese.
func (l LanguageCode) DisplayName() string {
	if name, ok := Languages[l]; ok {
		return name
	}
	return "Portuguese"
}
