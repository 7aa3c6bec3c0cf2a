// Package transcription implements the speech-to-text pipeline: a read-only
// policy catalog (providers, models, formats, languages), request validation,
// scratch-file spooling, and dispatch to interchangeable provider clients.
//
// The Service is the single entry point. It validates fail-fast, spools the
// upload to a unique scratch file, invokes exactly one provider client, and
// normalizes the outcome. Spool files are removed on every path, success or
// failure. Provider bindings live in the groq and openai subpackages and are
// injected at startup via WithClient.
package transcription
