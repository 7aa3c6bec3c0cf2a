// Package api wires the transcription service to HTTP routes.
package api

import (
	"io"

	"github.com/gin-gonic/gin"

	apperrors "github.com/soundscribe/soundscribe/errors"
	"github.com/soundscribe/soundscribe/logger"
	"github.com/soundscribe/soundscribe/server"
	"github.com/soundscribe/soundscribe/transcription"
	"github.com/soundscribe/soundscribe/validation"
)

// Handler serves the transcription API.
type Handler struct {
	svc *transcription.Service
	log *logger.Logger
}

// New creates the API handler.
func New(svc *transcription.Service, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &Handler{
		svc: svc,
		log: log.WithComponent("api"),
	}
}

// Register attaches the API routes.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/models", h.Models)
	r.POST("/transcribe", h.Transcribe)
}

// Models serves the capability listing: providers, models, defaults, and
// supported languages.
func (h *Handler) Models(c *gin.Context) {
	server.RespondOK(c, h.svc.Capabilities())
}

// transcribeForm carries the optional multipart form selections. Semantic
// checks (catalog membership, language registry) happen in the service; this
// only rejects oversized garbage early.
type transcribeForm struct {
	Provider string `form:"provider" mapstructure:"provider" validate:"omitempty,max=64"`
	Model    string `form:"model" mapstructure:"model" validate:"omitempty,max=128"`
	Language string `form:"language" mapstructure:"language" validate:"omitempty,max=16"`
}

// Transcribe accepts a multipart upload ("file" plus optional provider, model,
// and language fields) and returns the transcription.
func (h *Handler) Transcribe(c *gin.Context) {
	var form transcribeForm
	if err := c.ShouldBind(&form); err != nil {
		server.RespondWithError(c, apperrors.InvalidArgument("malformed form data: "+err.Error()))
		return
	}
	if err := validation.Validate(&form); err != nil {
		server.RespondWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		server.RespondWithError(c, apperrors.InvalidArgument("no file provided in the request"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}

	result, err := h.svc.Transcribe(c.Request.Context(), transcription.Upload{
		Filename: fileHeader.Filename,
		Content:  content,
		Size:     fileHeader.Size,
		Provider: form.Provider,
		Model:    form.Model,
		Language: form.Language,
	})
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	server.RespondOK(c, result)
}
