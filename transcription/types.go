package transcription

// Upload is a request-scoped uploaded audio file together with the caller's
// optional provider, model, and language selections.
type Upload struct {
	// Filename is the original upload name; required.
	Filename string
	// Content is the raw file bytes.
	Content []byte
	// Size is the declared byte size. When zero, len(Content) is used.
	Size int64
	// Provider is the freeform provider token; empty selects the default.
	Provider string
	// Model is the requested model; empty selects the provider's default.
	Model string
	// Language is the requested ISO 639-1 code or "auto"; empty selects the
	// default.
	Language string
}

// Result is the normalized outcome of a transcription call.
type Result struct {
	Transcription string `json:"transcription"`
	Provider      string `json:"provider"`
	Model         string `json:"model"`
	Language      string `json:"language"`
	Filename      string `json:"filename"`
}

// Capabilities describes the configured providers, models, and languages.
type Capabilities struct {
	Providers          []string            `json:"providers"`
	Models             map[string][]string `json:"models"`
	DefaultProvider    string              `json:"default_provider"`
	DefaultModels      map[string]string   `json:"default_models"`
	SupportedLanguages map[string]string   `json:"supported_languages"`
	DefaultLanguage    string              `json:"default_language"`
}
