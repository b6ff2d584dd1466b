package render

import (
	"path"

	"golang.org/x/text/language"
)

// translationFile is the asset path of a locale bundle, relative to the
// translations directory for the given code.
func translationFile(code string) string {
	return path.Join("translations", code, "text.js")
}

// TranslationPath returns the asset path of the translation bundle for the
// given locale, trying the full region code, then the bare language, then
// English. The boolean is false when no candidate exists; that is "no
// translation available", not an error, and the caller renders untranslated.
func (l *Loader) TranslationPath(locale string) (string, bool) {
	if locale == "" {
		return "", false
	}

	candidates := []string{locale}
	if tag, err := language.Parse(locale); err == nil {
		base, confidence := tag.Base()
		if confidence != language.No && base.String() != locale {
			candidates = append(candidates, base.String())
		}
	}
	candidates = append(candidates, "en")

	for _, code := range candidates {
		if p := translationFile(code); l.Exists(p) {
			return p, true
		}
	}
	return "", false
}
