package render

import (
	"testing"
	"testing/fstest"
)

func TestTranslationPathFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"translations/en/text.js":    {Data: []byte("en")},
		"translations/es/text.js":    {Data: []byte("es")},
		"translations/pt-BR/text.js": {Data: []byte("pt-BR")},
	}
	loader := NewLoader(fsys, "/static")

	tests := []struct {
		name   string
		locale string
		want   string
		wantOK bool
	}{
		{name: "exact region match", locale: "pt-BR", want: "translations/pt-BR/text.js", wantOK: true},
		{name: "region falls back to language", locale: "es-MX", want: "translations/es/text.js", wantOK: true},
		{name: "unknown falls back to english", locale: "fr", want: "translations/en/text.js", wantOK: true},
		{name: "plain language match", locale: "es", want: "translations/es/text.js", wantOK: true},
		{name: "empty locale", locale: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := loader.TranslationPath(tt.locale)
			if ok != tt.wantOK {
				t.Fatalf("TranslationPath(%q) ok = %v, want %v", tt.locale, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("TranslationPath(%q) = %q, want %q", tt.locale, got, tt.want)
			}
		})
	}
}

func TestTranslationPathNoBundles(t *testing.T) {
	loader := NewLoader(fstest.MapFS{}, "/static")

	// All candidates missing is "no translation available", not an error.
	if got, ok := loader.TranslationPath("de-DE"); ok {
		t.Errorf("TranslationPath() = %q, want no bundle", got)
	}
}
