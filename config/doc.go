// Package config loads and validates the service configuration.
//
// Configuration comes from an optional config.yml, an optional .env file, and
// process environment variables, in increasing precedence. Provider
// credentials and default selections use flat well-known variables
// (GROQ_API_KEY, OPENAI_API_KEY, DEFAULT_PROVIDER, DEFAULT_GROQ_MODEL,
// DEFAULT_OPENAI_MODEL, DEFAULT_LANGUAGE).
package config
