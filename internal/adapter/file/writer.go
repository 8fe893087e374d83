package file

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Writer writes the rendered page to a file on disk.
// It implements pipeline.Publisher.
type Writer struct {
	path   string
	logger *slog.Logger
}

// NewWriter creates a Writer targeting path.
func NewWriter(path string, logger *slog.Logger) *Writer {
	return &Writer{path: path, logger: logger}
}

// Publish replaces the target file with page. The content is written to a
// temporary file in the same directory and renamed into place, so readers
// never observe a partial page.
func (w *Writer) Publish(ctx context.Context, page []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".quakemap-*.html")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(page); err != nil {
		tmp.Close()
		return fmt.Errorf("write page: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod page: %w", err)
	}
	if err := os.Rename(tmp.Name(), w.path); err != nil {
		return fmt.Errorf("rename page: %w", err)
	}

	w.logger.Info("page written", "path", w.path, "bytes", len(page))
	return nil
}

// Path returns the output file path.
func (w *Writer) Path() string {
	return w.path
}
