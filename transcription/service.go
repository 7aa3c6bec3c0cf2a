package transcription

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/soundscribe/soundscribe/errors"
	"github.com/soundscribe/soundscribe/logger"
	"github.com/soundscribe/soundscribe/observability"
	"github.com/soundscribe/soundscribe/util"
)

// emptyTranscription is returned when the upstream produced no usable text.
// Silence is not an error; the call still succeeds.
const emptyTranscription = "[no speech detected]"

// fallbackFilename is echoed back when the upload carried no usable name.
const fallbackFilename = "unnamed_file"

// Service orchestrates the transcription pipeline: validation, spooling,
// provider dispatch, and result normalization. The catalog and the client
// table are read-only after construction, so concurrent requests share no
// mutable state.
type Service struct {
	catalog  *Catalog
	clients  map[Provider]Client
	spoolDir string
	log      *logger.Logger
	metrics  *observability.Metrics
}

// Option configures the Service.
type Option func(*Service)

// WithClient registers a provider client. Providers without a client are
// reported unavailable at validation time.
func WithClient(p Provider, c Client) Option {
	return func(s *Service) {
		if c != nil {
			s.clients[p] = c
		}
	}
}

// WithSpoolDir overrides the scratch directory for uploaded audio.
func WithSpoolDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.spoolDir = dir
		}
	}
}

// WithMetrics enables metric recording for the pipeline.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs the Service. Construction never fails: providers without a
// configured client are only disabled, and their absence is logged.
func New(catalog *Catalog, log *logger.Logger, opts ...Option) *Service {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	s := &Service{
		catalog:  catalog,
		clients:  make(map[Provider]Client),
		spoolDir: os.TempDir(),
		log:      log.WithComponent("transcription"),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, p := range Providers() {
		if _, ok := s.clients[p]; ok {
			s.log.Info("Provider client configured", logger.Fields(
				logger.FieldProvider, string(p),
			))
		} else {
			s.log.Warn("Provider credential not set, provider disabled", logger.Fields(
				logger.FieldProvider, string(p),
				"env", CredentialEnvVar(p),
			))
		}
	}

	return s
}

// Capabilities returns the provider list, model catalog, defaults, and
// language registry. Pure read; no validation.
func (s *Service) Capabilities() Capabilities {
	providers := make([]string, 0, len(Providers()))
	models := make(map[string][]string, len(Providers()))
	defaultModels := make(map[string]string, len(Providers()))
	for _, p := range Providers() {
		providers = append(providers, string(p))
		models[string(p)] = ModelsFor(p)
		defaultModels[string(p)] = s.catalog.DefaultModel(p)
	}

	return Capabilities{
		Providers:          providers,
		Models:             models,
		DefaultProvider:    string(s.catalog.DefaultProvider()),
		DefaultModels:      defaultModels,
		SupportedLanguages: SupportedLanguages(),
		DefaultLanguage:    s.catalog.DefaultLanguage(),
	}
}

// Transcribe runs the fail-fast pipeline: resolve provider, validate file,
// validate provider+model, validate language, spool, dispatch, normalize.
// No stage is retried and no partial result is ever returned.
func (s *Service) Transcribe(ctx context.Context, upload Upload) (*Result, error) {
	start := time.Now()
	ctx, span := observability.StartSpan(ctx, "transcription.transcribe",
		trace.WithAttributes(attribute.String("filename", upload.Filename)))
	defer span.End()

	// The active gauge must drain on every exit path, not just after
	// dispatch, so the terminal recording is deferred once here.
	s.metrics.RecordStart(ctx)
	var (
		provider Provider
		model    string
		status   = "error"
	)
	defer func() {
		s.metrics.RecordEnd(ctx, string(provider), model, status, int64(len(upload.Content)), time.Since(start))
	}()

	provider, err := s.resolveProvider(upload.Provider)
	if err != nil {
		return nil, s.fail(ctx, "", err)
	}

	log := s.log.WithFields(logger.Fields(
		logger.FieldProvider, string(provider),
		logger.FieldFilename, upload.Filename,
	))
	log.Info("Starting transcription")

	if err := s.validateFile(upload); err != nil {
		return nil, s.fail(ctx, provider, err)
	}
	model, err = s.validateProviderModel(provider, upload.Model)
	if err != nil {
		return nil, s.fail(ctx, provider, err)
	}
	language, err := s.validateLanguage(upload.Language)
	if err != nil {
		return nil, s.fail(ctx, provider, err)
	}

	spoolPath, err := s.spool(upload.Content, util.FileExtension(upload.Filename))
	if err != nil {
		return nil, s.fail(ctx, provider, err)
	}
	defer s.cleanupSpool(spoolPath)

	span.SetAttributes(
		attribute.String("provider", string(provider)),
		attribute.String("model", model),
		attribute.String("language", language),
	)

	text, err := s.dispatch(ctx, provider, spoolPath, upload, model, language)
	if err != nil {
		return nil, s.fail(ctx, provider, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		log.Warn("Transcription produced no text")
		text = emptyTranscription
	}

	filename := upload.Filename
	if filename == "" {
		filename = fallbackFilename
	}

	status = "ok"
	log.Info("Transcription completed", logger.Fields(
		logger.FieldModel, model,
		logger.FieldLanguage, language,
		"chars", len(text),
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))

	return &Result{
		Transcription: text,
		Provider:      string(provider),
		Model:         model,
		Language:      language,
		Filename:      filename,
	}, nil
}

// resolveProvider picks the request's provider or the configured default.
// Unrecognized tokens are rejected.
func (s *Service) resolveProvider(token string) (Provider, error) {
	if token == "" {
		return s.catalog.DefaultProvider(), nil
	}
	p, err := ParseProvider(token)
	if err != nil {
		return "", apperrors.InvalidArgument(err.Error())
	}
	return p, nil
}

// validateFile checks the upload name, extension, and declared size.
func (s *Service) validateFile(upload Upload) error {
	if strings.TrimSpace(upload.Filename) == "" {
		return apperrors.InvalidArgument("uploaded file has no name")
	}

	ext := util.FileExtension(upload.Filename)
	if !IsSupportedFormat(ext) {
		return apperrors.InvalidArgument(fmt.Sprintf(
			"format %q is not supported; accepted formats: %s",
			ext, strings.Join(SupportedFormats(), ", "),
		))
	}

	size := upload.Size
	if size == 0 {
		size = int64(len(upload.Content))
	}
	if size > MaxFileSize {
		sizeMB := float64(size) / (1024 * 1024)
		return apperrors.InvalidArgument(fmt.Sprintf(
			"file too large (%.1fMB); maximum size is %dMB",
			sizeMB, MaxFileSize/(1024*1024),
		))
	}

	return nil
}

// validateProviderModel requires a configured client for the provider and
// resolves the effective model against the provider's catalog.
func (s *Service) validateProviderModel(p Provider, model string) (string, error) {
	if _, ok := s.clients[p]; !ok {
		return "", apperrors.ProviderUnavailable(string(p), CredentialEnvVar(p))
	}

	if model == "" {
		model = s.catalog.DefaultModel(p)
	}
	for _, m := range availableModels[p] {
		if m == model {
			return model, nil
		}
	}
	return "", apperrors.InvalidArgument(fmt.Sprintf(
		"model %q is not available for %s; available models: %s",
		model, p, strings.Join(ModelsFor(p), ", "),
	))
}

// validateLanguage resolves the effective language. "auto" always passes.
func (s *Service) validateLanguage(code string) (string, error) {
	if code == "" {
		code = s.catalog.DefaultLanguage()
	}
	if code == LanguageAuto {
		return code, nil
	}
	if !IsSupportedLanguage(code) {
		return "", apperrors.InvalidArgument(fmt.Sprintf(
			"language code %q is not supported; supported codes: %s",
			code, languageHint(10),
		))
	}
	return code, nil
}

// dispatch invokes the selected provider's client. The language field is
// included only when recognition is constrained to one language; omitting it
// signals auto-detection upstream. Any client failure is re-signaled as an
// upstream error and never retried.
func (s *Service) dispatch(ctx context.Context, p Provider, spoolPath string, upload Upload, model, language string) (string, error) {
	call := Call{
		AudioPath: spoolPath,
		Filename:  upload.Filename,
		Model:     model,
	}
	if language != LanguageAuto {
		call.Language = language
	}

	text, err := s.clients[p].Transcribe(ctx, call)
	if err != nil {
		return "", apperrors.Upstream(string(p), err)
	}
	return text, nil
}

// fail records the error on the span and metrics before returning it.
func (s *Service) fail(ctx context.Context, p Provider, err error) error {
	observability.SetSpanError(ctx, err)
	code := string(apperrors.ErrCodeInternal)
	if appErr, ok := apperrors.AsAppError(err); ok {
		code = string(appErr.Code)
	}
	s.metrics.RecordError(ctx, code, string(p))
	s.log.Error("Transcription failed", logger.Fields(
		logger.FieldProvider, string(p),
		"code", code,
		logger.FieldError, err.Error(),
	))
	return err
}
