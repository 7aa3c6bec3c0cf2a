package transcription

import "strings"

// LanguageAuto is the sentinel language value requesting automatic detection.
// It is always accepted but never a key in the language registry.
const LanguageAuto = "auto"

// language pairs an ISO 639-1 code with its human-readable name. The slice
// order is the canonical enumeration order for capability listings and error
// hints.
type language struct {
	code string
	name string
}

var supportedLanguages = []language{
	{"af", "Afrikaans"},
	{"ar", "Arabic"},
	{"az", "Azerbaijani"},
	{"be", "Belarusian"},
	{"bg", "Bulgarian"},
	{"bs", "Bosnian"},
	{"ca", "Catalan"},
	{"cs", "Czech"},
	{"cy", "Welsh"},
	{"da", "Danish"},
	{"de", "German"},
	{"el", "Greek"},
	{"en", "English"},
	{"es", "Spanish"},
	{"et", "Estonian"},
	{"fa", "Persian"},
	{"fi", "Finnish"},
	{"fr", "French"},
	{"gl", "Galician"},
	{"he", "Hebrew"},
	{"hi", "Hindi"},
	{"hr", "Croatian"},
	{"hu", "Hungarian"},
	{"hy", "Armenian"},
	{"id", "Indonesian"},
	{"is", "Icelandic"},
	{"it", "Italian"},
	{"ja", "Japanese"},
	{"kk", "Kazakh"},
	{"kn", "Kannada"},
	{"ko", "Korean"},
	{"lt", "Lithuanian"},
	{"lv", "Latvian"},
	{"mk", "Macedonian"},
	{"mr", "Marathi"},
	{"ms", "Malay"},
	{"ne", "Nepali"},
	{"nl", "Dutch"},
	{"no", "Norwegian"},
	{"pl", "Polish"},
	{"pt", "Portuguese"},
	{"ro", "Romanian"},
	{"ru", "Russian"},
	{"sk", "Slovak"},
	{"sl", "Slovenian"},
	{"sr", "Serbian"},
	{"sv", "Swedish"},
	{"sw", "Swahili"},
	{"ta", "Tamil"},
	{"th", "Thai"},
	{"tl", "Tagalog"},
	{"tr", "Turkish"},
	{"uk", "Ukrainian"},
	{"ur", "Urdu"},
	{"vi", "Vietnamese"},
	{"zh", "Chinese"},
}

var languagesByCode = func() map[string]string {
	m := make(map[string]string, len(supportedLanguages))
	for _, l := range supportedLanguages {
		m[l.code] = l.name
	}
	return m
}()

// IsSupportedLanguage reports whether the code is in the language registry or
// is the automatic-detection sentinel.
func IsSupportedLanguage(code string) bool {
	if code == LanguageAuto {
		return true
	}
	_, ok := languagesByCode[code]
	return ok
}

// LanguageName returns the human-readable name for a registered code.
func LanguageName(code string) (string, bool) {
	name, ok := languagesByCode[code]
	return name, ok
}

// SupportedLanguages returns the full code-to-name registry.
func SupportedLanguages() map[string]string {
	m := make(map[string]string, len(languagesByCode))
	for k, v := range languagesByCode {
		m[k] = v
	}
	return m
}

// languageHint enumerates the first n registered codes plus the auto sentinel
// for use in validation error messages.
func languageHint(n int) string {
	if n > len(supportedLanguages) {
		n = len(supportedLanguages)
	}
	codes := make([]string, 0, n)
	for _, l := range supportedLanguages[:n] {
		codes = append(codes, l.code)
	}
	return strings.Join(codes, ", ") + "..., 'auto'"
}
