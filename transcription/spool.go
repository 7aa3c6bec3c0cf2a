package transcription

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	apperrors "github.com/soundscribe/soundscribe/errors"
	"github.com/soundscribe/soundscribe/logger"
)

// spool writes the upload bytes to a uniquely named file so provider clients
// can stream it. The suffix preserves the original extension ("tmp" when
// absent); uuid-based names keep concurrent requests from colliding.
func (s *Service) spool(content []byte, ext string) (string, error) {
	if len(content) == 0 {
		return "", apperrors.InvalidArgument("uploaded file is empty")
	}
	if ext == "" {
		ext = "tmp"
	}

	path := filepath.Join(s.spoolDir, fmt.Sprintf("soundscribe-%s.%s", uuid.NewString(), ext))
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return "", apperrors.Internal(fmt.Errorf("write spool file: %w", err))
	}

	s.log.Debug("Spooled upload", logger.Fields(
		"path", path,
		"bytes", len(content),
	))
	return path, nil
}

// cleanupSpool removes the spool file. Failures are logged, never escalated:
// they must not change the pipeline's outcome.
func (s *Service) cleanupSpool(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.log.Warn("Failed to remove spool file", logger.Fields(
			"path", path,
			"error", err.Error(),
		))
	}
}
