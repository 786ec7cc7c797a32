package locale

import "testing"

func TestLanguagesFor(t *testing.T) {
	tests := []struct {
		country string
		want    []string
	}{
		{"India", []string{"en", "hi", "ta"}},
		{"Germany", []string{"de", "en"}},
		{"United States", []string{"en"}},
		{"Atlantis", []string{"en"}},
	}

	for _, tt := range tests {
		langs := LanguagesFor(tt.country)
		if len(langs) != len(tt.want) {
			t.Errorf("LanguagesFor(%q) returned %d languages, want %d", tt.country, len(langs), len(tt.want))
			continue
		}
		for i, lang := range langs {
			if lang.Code != tt.want[i] {
				t.Errorf("LanguagesFor(%q)[%d] = %q, want %q", tt.country, i, lang.Code, tt.want[i])
			}
		}
	}
}

func TestSupported(t *testing.T) {
	if !Supported("Germany", "de") {
		t.Error("expected German to be supported for Germany")
	}
	if Supported("Germany", "hi") {
		t.Error("did not expect Hindi to be supported for Germany")
	}
	if !Supported("Atlantis", "en") {
		t.Error("expected English fallback for unknown country")
	}
}

func TestSpeechTag(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "en-US"},
		{"hi", "hi-IN"},
		{"de", "de-DE"},
		{"ta", "ta-IN"},
		{"xx", "en-US"},
	}
	for _, tt := range tests {
		if got := SpeechTag(tt.code); got != tt.want {
			t.Errorf("SpeechTag(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestLanguageNameUnknownCodePassesThrough(t *testing.T) {
	if got := LanguageName("fr"); got != "fr" {
		t.Errorf("LanguageName(fr) = %q, want passthrough", got)
	}
	if got := LanguageName("hi"); got != "Hindi" {
		t.Errorf("LanguageName(hi) = %q, want Hindi", got)
	}
}
