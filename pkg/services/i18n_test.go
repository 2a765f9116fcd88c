package services

import "testing"

func TestNewTranslator(t *testing.T) {
	tests := []struct {
		lang     string
		wantLang string
		loading  string
	}{
		{"it", "it", "Caricamento contenuti…"},
		{"", "it", "Caricamento contenuti…"},
		{"de", "it", "Caricamento contenuti…"},
		{"en", "en", "Loading content…"},
		{"en-GB", "en", "Loading content…"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			tr := NewTranslator(tt.lang)
			if tr.Lang() != tt.wantLang {
				t.Errorf("Lang() = %q, want %q", tr.Lang(), tt.wantLang)
			}
			if got := tr.T(MsgLoading); got != tt.loading {
				t.Errorf("T(MsgLoading) = %q, want %q", got, tt.loading)
			}
		})
	}
}

func TestTranslatorFormatsArgs(t *testing.T) {
	tr := NewTranslator("it")
	if got := tr.T(MsgFooterCopyright, "2025", "Le Marinelle"); got != "© 2025 Le Marinelle" {
		t.Errorf("copyright = %q", got)
	}
	if got := tr.T(MsgCTABody, "Termoli"); got != "Chiama ora e vivi un'esperienza autentica a Termoli." {
		t.Errorf("cta = %q", got)
	}
}

func TestCatalogComplete(t *testing.T) {
	for key := range catalog[supportedLanguages[0]] {
		for _, tag := range supportedLanguages[1:] {
			if _, ok := catalog[tag][key]; !ok {
				t.Errorf("%s: missing %q", tag, key)
			}
		}
	}
}
