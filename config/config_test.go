package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("soundscribe")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Name != "soundscribe" {
		t.Errorf("name = %q", cfg.Name)
	}
	if cfg.Environment != "development" {
		t.Errorf("environment = %q", cfg.Environment)
	}
	if !cfg.Debug {
		t.Error("debug should default on in development")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server port = %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging level = %q", cfg.Logging.Level)
	}
	if cfg.Observability.ServiceName != "soundscribe" {
		t.Errorf("observability service name = %q", cfg.Observability.ServiceName)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeFile(t, "config.yml", `
environment: production
logging:
  level: warn
  format: json
server:
  port: 9090
defaults:
  provider: openai
  language: en
`)

	cfg, err := Load("soundscribe", WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Environment != "production" {
		t.Errorf("environment = %q", cfg.Environment)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server port = %d", cfg.Server.Port)
	}
	if cfg.Defaults.Provider != "openai" {
		t.Errorf("default provider = %q", cfg.Defaults.Provider)
	}
	if cfg.Defaults.Language != "en" {
		t.Errorf("default language = %q", cfg.Defaults.Language)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-from-env")
	t.Setenv("OPENAI_API_KEY", "sk-from-env")
	t.Setenv("DEFAULT_PROVIDER", "openai")
	t.Setenv("DEFAULT_GROQ_MODEL", "whisper-large-v3")
	t.Setenv("DEFAULT_LANGUAGE", "de")

	cfg, err := Load("soundscribe")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Groq.APIKey != "gsk-from-env" {
		t.Errorf("groq api key = %q", cfg.Groq.APIKey)
	}
	if cfg.OpenAI.APIKey != "sk-from-env" {
		t.Errorf("openai api key = %q", cfg.OpenAI.APIKey)
	}
	if cfg.Defaults.Provider != "openai" {
		t.Errorf("default provider = %q", cfg.Defaults.Provider)
	}
	if cfg.Defaults.GroqModel != "whisper-large-v3" {
		t.Errorf("default groq model = %q", cfg.Defaults.GroqModel)
	}
	if cfg.Defaults.Language != "de" {
		t.Errorf("default language = %q", cfg.Defaults.Language)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	path := writeFile(t, ".env", "GROQ_API_KEY=gsk-from-dotenv\n")
	t.Setenv("GROQ_API_KEY", "")
	os.Unsetenv("GROQ_API_KEY")

	cfg, err := Load("soundscribe", WithEnvFile(path))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Groq.APIKey != "gsk-from-dotenv" {
		t.Errorf("groq api key = %q", cfg.Groq.APIKey)
	}
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	path := writeFile(t, "config.yml", "environment: qa\n")
	if _, err := Load("soundscribe", WithConfigFile(path)); err == nil {
		t.Fatal("expected error for invalid environment")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}

	cfg.Server.Port = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative port should fail validation")
	}
}

func TestEnvKeyVariants(t *testing.T) {
	variants := envKeyVariants("SERVER_READ_TIMEOUT")
	want := map[string]bool{
		"server_read_timeout": false,
		"server.read.timeout": false,
		"server.read_timeout": false,
	}
	for _, v := range variants {
		if _, ok := want[v]; ok {
			want[v] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("missing variant %q in %v", k, variants)
		}
	}
}
