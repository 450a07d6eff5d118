// Package download lands generated artifacts in a local directory, playing
// the part of the browser's download folder.
package download

import (
	"fmt"
	"os"
	"path/filepath"

	"urbanfit-store/internal/infrastructure/logger"
)

type FileSink struct {
	dir    string
	logger *logger.Logger
}

func NewFileSink(dir string, logger *logger.Logger) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create download directory %s: %w", dir, err)
	}
	return &FileSink{dir: dir, logger: logger}, nil
}

func (s *FileSink) Save(filename string, content []byte) error {
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	s.logger.Info("Artifact written", "path", path)
	return nil
}
