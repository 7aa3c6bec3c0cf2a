package transcription

import (
	"strings"
	"testing"

	"github.com/soundscribe/soundscribe/logger"
)

func TestParseProvider_Success(t *testing.T) {
	cases := []struct {
		in   string
		want Provider
	}{
		{"groq", ProviderGroq},
		{"GROQ", ProviderGroq},
		{"  openai  ", ProviderOpenAI},
		{"OpenAI", ProviderOpenAI},
	}
	for _, tc := range cases {
		got, err := ParseProvider(tc.in)
		if err != nil {
			t.Fatalf("ParseProvider(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseProvider(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseProvider_Unknown(t *testing.T) {
	_, err := ParseProvider("whisperx")
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
	if !strings.Contains(err.Error(), "groq") || !strings.Contains(err.Error(), "openai") {
		t.Errorf("error should list valid providers, got: %v", err)
	}
}

func TestCredentialEnvVar(t *testing.T) {
	if got := CredentialEnvVar(ProviderGroq); got != "GROQ_API_KEY" {
		t.Errorf("groq env var = %q", got)
	}
	if got := CredentialEnvVar(ProviderOpenAI); got != "OPENAI_API_KEY" {
		t.Errorf("openai env var = %q", got)
	}
}

func TestIsSupportedFormat(t *testing.T) {
	for _, ext := range []string{"mp3", "mp4", "mpeg", "mpga", "m4a", "wav", "webm", "flac", "ogg", "opus"} {
		if !IsSupportedFormat(ext) {
			t.Errorf("format %q should be supported", ext)
		}
	}
	for _, ext := range []string{"txt", "aac", "wma", "MP3", ""} {
		if IsSupportedFormat(ext) {
			t.Errorf("format %q should not be supported", ext)
		}
	}
}

func TestNewCatalog_BuiltinDefaults(t *testing.T) {
	c := NewCatalog(Defaults{}, logger.NewDefault("test"))

	if c.DefaultProvider() != ProviderGroq {
		t.Errorf("default provider = %q, want groq", c.DefaultProvider())
	}
	if got := c.DefaultModel(ProviderGroq); got != "whisper-large-v3-turbo" {
		t.Errorf("groq default model = %q", got)
	}
	if got := c.DefaultModel(ProviderOpenAI); got != "whisper-1" {
		t.Errorf("openai default model = %q", got)
	}
	if c.DefaultLanguage() != LanguageAuto {
		t.Errorf("default language = %q, want auto", c.DefaultLanguage())
	}
}

func TestNewCatalog_Overrides(t *testing.T) {
	c := NewCatalog(Defaults{
		Provider:    "openai",
		GroqModel:   "whisper-large-v3",
		OpenAIModel: "whisper-1",
		Language:    "en",
	}, logger.NewDefault("test"))

	if c.DefaultProvider() != ProviderOpenAI {
		t.Errorf("default provider = %q, want openai", c.DefaultProvider())
	}
	if got := c.DefaultModel(ProviderGroq); got != "whisper-large-v3" {
		t.Errorf("groq default model = %q", got)
	}
	if c.DefaultLanguage() != "en" {
		t.Errorf("default language = %q, want en", c.DefaultLanguage())
	}
}

func TestNewCatalog_InvalidOverridesFallBack(t *testing.T) {
	c := NewCatalog(Defaults{
		Provider:  "deepgram",
		GroqModel: "whisper-tiny",
		Language:  "klingon",
	}, logger.NewDefault("test"))

	if c.DefaultProvider() != ProviderGroq {
		t.Errorf("default provider = %q, want fallback groq", c.DefaultProvider())
	}
	if got := c.DefaultModel(ProviderGroq); got != "whisper-large-v3-turbo" {
		t.Errorf("groq default model = %q, want builtin fallback", got)
	}
	if c.DefaultLanguage() != LanguageAuto {
		t.Errorf("default language = %q, want fallback auto", c.DefaultLanguage())
	}
}

func TestCatalog_DefaultModelMembership(t *testing.T) {
	c := NewCatalog(Defaults{}, logger.NewDefault("test"))
	for _, p := range Providers() {
		def := c.DefaultModel(p)
		found := false
		for _, m := range ModelsFor(p) {
			if m == def {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("default model %q for %s is not in its catalog", def, p)
		}
	}
}

func TestIsSupportedLanguage(t *testing.T) {
	for _, code := range []string{"auto", "en", "fr", "zh", "uk"} {
		if !IsSupportedLanguage(code) {
			t.Errorf("language %q should be supported", code)
		}
	}
	for _, code := range []string{"xx", "english", "EN", ""} {
		if IsSupportedLanguage(code) {
			t.Errorf("language %q should not be supported", code)
		}
	}
}

func TestSupportedLanguages_ExcludesAuto(t *testing.T) {
	langs := SupportedLanguages()
	if _, ok := langs[LanguageAuto]; ok {
		t.Error("registry must not contain the auto sentinel")
	}
	if langs["de"] != "German" {
		t.Errorf(`langs["de"] = %q, want German`, langs["de"])
	}
	if len(langs) != len(supportedLanguages) {
		t.Errorf("registry size = %d, want %d", len(langs), len(supportedLanguages))
	}
}

func TestLanguageHint(t *testing.T) {
	hint := languageHint(10)
	if !strings.HasPrefix(hint, "af, ar, az") {
		t.Errorf("hint should start with the first registered codes, got %q", hint)
	}
	if !strings.Contains(hint, "'auto'") {
		t.Errorf("hint should mention the auto sentinel, got %q", hint)
	}
}
