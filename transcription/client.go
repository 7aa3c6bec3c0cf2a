package transcription

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Call holds the parameters for one provider transcription call.
type Call struct {
	// AudioPath is the path to the spooled audio file.
	AudioPath string
	// Filename is the original upload name sent to the provider.
	Filename string
	// Model is the effective model identifier.
	Model string
	// Language constrains recognition to one language. Empty requests
	// automatic detection and must be omitted from the provider payload.
	Language string
}

// Client is the capability a provider binding must implement. Implementations
// request plain-text output and return the transcription verbatim; they do
// not retry failures.
type Client interface {
	// Name returns the provider name for logs and error messages.
	Name() string
	// Transcribe sends the audio for transcription and returns the text.
	Transcribe(ctx context.Context, call Call) (string, error)
}

// ExtractText normalizes a provider response body: upstreams return either
// the bare transcription text or a JSON object with a "text" member. Any
// other shape is an error.
func ExtractText(body []byte) (string, error) {
	trimmed := strings.TrimSpace(string(body))
	if !strings.HasPrefix(trimmed, "{") {
		return string(body), nil
	}

	var payload struct {
		Text *string `json:"text"`
	}
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		return "", fmt.Errorf("unrecognized response shape: %w", err)
	}
	if payload.Text == nil {
		return "", fmt.Errorf("unrecognized response shape: missing text field")
	}
	return *payload.Text, nil
}
