// Package openai binds the transcription pipeline to OpenAI's speech-to-text
// endpoint.
package openai

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/soundscribe/soundscribe/httpclient"
	"github.com/soundscribe/soundscribe/transcription"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultTimeout = 120 * time.Second

	transcriptionsPath = "/audio/transcriptions"
)

// Config configures the OpenAI client.
type Config struct {
	// APIKey is the OpenAI API key; required.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Timeout bounds one transcription call. Defaults to 120s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// Client calls OpenAI's audio transcription API.
type Client struct {
	http *httpclient.Client
}

// New creates an OpenAI transcription client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	hc, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Auth:    httpclient.BearerAuth(cfg.APIKey),
	})
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}

	return &Client{http: hc}, nil
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "openai"
}

// Transcribe sends the spooled audio as multipart form data and returns the
// plain transcription text. The language field is sent only when set; omitting
// it requests automatic detection.
func (c *Client) Transcribe(ctx context.Context, call transcription.Call) (string, error) {
	audio, err := os.Open(call.AudioPath)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer func() { _ = audio.Close() }()

	fields := map[string]string{
		"model":           call.Model,
		"response_format": "text",
	}
	if call.Language != "" {
		fields["language"] = call.Language
	}

	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   transcriptionsPath,
		Body: &httpclient.MultipartBody{
			Fields: fields,
			Files: []httpclient.FileField{{
				FieldName: "file",
				FileName:  call.Filename,
				Reader:    audio,
			}},
		},
	})
	if err != nil {
		return "", err
	}

	return transcription.ExtractText(resp.Body)
}
