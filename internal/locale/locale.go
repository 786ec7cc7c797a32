// Package locale holds the country and language catalog driving prompt
// selection and speech synthesis.
//
// Languages are keyed by ISO 639-1 codes; speech synthesis uses BCP-47 tags
// (e.g. "hi" -> "hi-IN"). Countries not listed here still work end to end,
// they just fall back to the generic prompt templates.
package locale

// Language pairs an ISO 639-1 code with its English display name.
type Language struct {
	Code string
	Name string
}

// Countries lists the supported countries in display order.
var Countries = []string{
	"India",
	"Germany",
	"United States",
}

var countryLanguages = map[string][]Language{
	"India": {
		{Code: "en", Name: "English"},
		{Code: "hi", Name: "Hindi"},
		{Code: "ta", Name: "Tamil"},
	},
	"Germany": {
		{Code: "de", Name: "German"},
		{Code: "en", Name: "English"},
	},
	"United States": {
		{Code: "en", Name: "English"},
	},
}

var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"de": "German",
	"ta": "Tamil",
}

var speechTags = map[string]string{
	"en": "en-US",
	"hi": "hi-IN",
	"de": "de-DE",
	"ta": "ta-IN",
}

// LanguagesFor returns the output languages offered for a country.
// Unknown countries get English only.
func LanguagesFor(country string) []Language {
	if langs, ok := countryLanguages[country]; ok {
		return langs
	}
	return []Language{{Code: "en", Name: "English"}}
}

// Supported reports whether the language code is offered for the country.
func Supported(country, languageCode string) bool {
	for _, lang := range LanguagesFor(country) {
		if lang.Code == languageCode {
			return true
		}
	}
	return false
}

// LanguageName returns the English display name for an ISO 639-1 code.
// Unknown codes are returned unchanged so prompts stay usable.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// SpeechTag maps an ISO 639-1 code to the BCP-47 tag used for text-to-speech.
func SpeechTag(code string) string {
	if tag, ok := speechTags[code]; ok {
		return tag
	}
	return "en-US"
}
