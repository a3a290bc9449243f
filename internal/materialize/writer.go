package materialize

import (
	"os"
	"path/filepath"

	"github.com/mitoteru/sprout/internal/debug"
)

// Writer writes files to the filesystem.
type Writer interface {
	// WriteFile writes content to a file with the specified permissions.
	WriteFile(path string, content []byte, mode os.FileMode) error

	// CreateDir creates a directory and any necessary parent directories.
	CreateDir(path string) error

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool
}

// FileWriter implements Writer for filesystem operations.
type FileWriter struct{}

// NewFileWriter creates a new FileWriter.
func NewFileWriter() Writer {
	return &FileWriter{}
}

// WriteFile writes content to a file with the specified permissions.
// Creates parent directories if they don't exist.
// Writes atomically using a temporary file and rename.
func (w *FileWriter) WriteFile(path string, content []byte, mode os.FileMode) error {
	debug.Debug("[materialize] Writing file: %s (size: %d bytes, mode: %o)", path, len(content), mode)

	// Create parent directories if needed
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := w.CreateDir(dir); err != nil {
			return newError(WriteFailed,
				"failed to create parent directory",
				path,
				err)
		}
	}

	// Regular files get 0644; the executable bit from the source is kept.
	fileMode := mode & 0o777
	if fileMode&0o600 == 0 {
		fileMode |= 0o644
	}

	// Write atomically using temporary file
	tempFile := path + ".tmp"
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return newError(WriteFailed,
			"failed to create temporary file",
			path,
			err)
	}

	// Write content
	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		_ = os.Remove(tempFile) // Clean up temp file
		return newError(WriteFailed,
			"failed to write file content",
			path,
			err)
	}

	if closeErr != nil {
		_ = os.Remove(tempFile) // Clean up temp file
		return newError(WriteFailed,
			"failed to close file",
			path,
			closeErr)
	}

	// Atomic rename
	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile) // Clean up temp file
		return newError(WriteFailed,
			"failed to rename temporary file",
			path,
			err)
	}

	return nil
}

// CreateDir creates a directory and any necessary parent directories.
// Uses 0755 permissions for created directories.
func (w *FileWriter) CreateDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return newError(WriteFailed,
			"failed to create directory",
			path,
			err)
	}
	return nil
}

// Exists checks if a file or directory exists at the given path.
func (w *FileWriter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
