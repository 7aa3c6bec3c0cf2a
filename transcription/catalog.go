package transcription

import (
	"fmt"
	"strings"

	"github.com/soundscribe/soundscribe/logger"
)

// Provider identifies an upstream speech-to-text vendor.
type Provider string

const (
	// ProviderGroq is the Groq transcription backend.
	ProviderGroq Provider = "groq"
	// ProviderOpenAI is the OpenAI transcription backend.
	ProviderOpenAI Provider = "openai"
)

// Providers returns all known providers in a stable order.
func Providers() []Provider {
	return []Provider{ProviderGroq, ProviderOpenAI}
}

// ParseProvider parses a freeform provider token case-insensitively.
func ParseProvider(s string) (Provider, error) {
	switch Provider(strings.ToLower(strings.TrimSpace(s))) {
	case ProviderGroq:
		return ProviderGroq, nil
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	default:
		names := make([]string, 0, len(Providers()))
		for _, p := range Providers() {
			names = append(names, string(p))
		}
		return "", fmt.Errorf("invalid provider %q; use one of: %s", s, strings.Join(names, ", "))
	}
}

// CredentialEnvVar returns the environment variable holding the provider's
// API key, for use in error messages.
func CredentialEnvVar(p Provider) string {
	switch p {
	case ProviderGroq:
		return "GROQ_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	default:
		return ""
	}
}

// availableModels is the closed per-provider model catalog.
var availableModels = map[Provider][]string{
	ProviderGroq: {
		"whisper-large-v3",
		"whisper-large-v3-turbo",
		"distil-whisper-large-v3-en",
	},
	ProviderOpenAI: {
		"whisper-1",
	},
}

// builtinDefaultModels are the fallback default models per provider.
var builtinDefaultModels = map[Provider]string{
	ProviderGroq:   "whisper-large-v3-turbo",
	ProviderOpenAI: "whisper-1",
}

// ModelsFor returns the ordered model list for a provider.
func ModelsFor(p Provider) []string {
	models := availableModels[p]
	out := make([]string, len(models))
	copy(out, models)
	return out
}

// supportedFormats is the audio container/codec extension allow-list.
var supportedFormats = []string{
	"mp3", "mp4", "mpeg", "mpga", "m4a", "wav", "webm", "flac", "ogg", "opus",
}

// IsSupportedFormat reports whether the lowercase extension is accepted.
func IsSupportedFormat(ext string) bool {
	for _, f := range supportedFormats {
		if ext == f {
			return true
		}
	}
	return false
}

// SupportedFormats returns the audio format allow-list.
func SupportedFormats() []string {
	out := make([]string, len(supportedFormats))
	copy(out, supportedFormats)
	return out
}

// MaxFileSize is the maximum accepted upload size in bytes (25 MiB).
const MaxFileSize = 25 * 1024 * 1024

// DefaultLanguage is the built-in default language selection.
const DefaultLanguage = LanguageAuto

// Defaults carries the environment-derived default selections, resolved once
// at process start.
type Defaults struct {
	Provider    string `yaml:"provider" mapstructure:"provider"`
	GroqModel   string `yaml:"groq_model" mapstructure:"groq_model"`
	OpenAIModel string `yaml:"openai_model" mapstructure:"openai_model"`
	Language    string `yaml:"language" mapstructure:"language"`
}

// Catalog is the read-only policy registry: providers, models, and language
// defaults. It is constructed once at startup and never fails — unrecognized
// overrides fall back to the built-in defaults with a warning.
type Catalog struct {
	defaultProvider Provider
	defaultModels   map[Provider]string
	defaultLanguage string
}

// NewCatalog builds a Catalog from the given defaults.
func NewCatalog(d Defaults, log *logger.Logger) *Catalog {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	log = log.WithComponent("catalog")

	defaultProvider := ProviderGroq
	if d.Provider != "" {
		p, err := ParseProvider(d.Provider)
		if err != nil {
			log.Warn("Unrecognized default provider override, falling back", logger.Fields(
				"override", d.Provider,
				"fallback", string(ProviderGroq),
			))
		} else {
			defaultProvider = p
		}
	}

	defaultModels := map[Provider]string{
		ProviderGroq:   resolveDefaultModel(ProviderGroq, d.GroqModel, log),
		ProviderOpenAI: resolveDefaultModel(ProviderOpenAI, d.OpenAIModel, log),
	}

	defaultLanguage := d.Language
	if defaultLanguage == "" {
		defaultLanguage = DefaultLanguage
	}
	if defaultLanguage != LanguageAuto && !IsSupportedLanguage(defaultLanguage) {
		log.Warn("Unsupported default language override, falling back", logger.Fields(
			"override", defaultLanguage,
			"fallback", DefaultLanguage,
		))
		defaultLanguage = DefaultLanguage
	}

	return &Catalog{
		defaultProvider: defaultProvider,
		defaultModels:   defaultModels,
		defaultLanguage: defaultLanguage,
	}
}

// resolveDefaultModel validates a per-provider default model override,
// guaranteeing membership in the provider's catalog.
func resolveDefaultModel(p Provider, override string, log *logger.Logger) string {
	if override == "" {
		return builtinDefaultModels[p]
	}
	for _, m := range availableModels[p] {
		if m == override {
			return override
		}
	}
	log.Warn("Default model override not in catalog, falling back", logger.Fields(
		"provider", string(p),
		"override", override,
		"fallback", builtinDefaultModels[p],
	))
	return builtinDefaultModels[p]
}

// DefaultProvider returns the default provider selection.
func (c *Catalog) DefaultProvider() Provider {
	return c.defaultProvider
}

// DefaultModel returns the default model for a provider; guaranteed to be a
// member of ModelsFor(p).
func (c *Catalog) DefaultModel(p Provider) string {
	return c.defaultModels[p]
}

// DefaultLanguage returns the default language selection.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLanguage
}
