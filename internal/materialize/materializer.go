package materialize

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitoteru/sprout/internal/config"
	"github.com/mitoteru/sprout/internal/debug"
)

// Materializer turns install-file declarations into actual files on disk.
type Materializer interface {
	// Apply materializes every declared file pair under the destination root.
	Apply(ctx context.Context, opts Options) (*Result, error)

	// DryRun reports what Apply would write without touching the filesystem.
	DryRun(ctx context.Context, opts Options) (*Result, error)
}

// Options configures one materialization pass.
type Options struct {
	// TemplateRoot is the directory source paths are resolved against.
	TemplateRoot string

	// DestRoot is the directory destination paths are resolved against.
	DestRoot string

	// Files is the merged, ordered install-file list (common config entries
	// before stack entries).
	Files []config.FilePair

	// Props is the substitution context available to every textual render.
	Props map[string]string
}

// Result contains materialization statistics.
type Result struct {
	// FilesWritten is the number of files written (or that would be written).
	FilesWritten int

	// BinaryCopies is the number of files copied verbatim.
	BinaryCopies int

	// Files contains the destination paths in processing order.
	Files []string
}

// DefaultMaterializer implements Materializer.
//
// Pairs are processed sequentially in declaration order. Overlapping the file
// I/O would be legal for disjoint destinations, but sequential processing is
// what keeps the last-writer-wins rule exact when two pairs collide on the
// same destination path.
type DefaultMaterializer struct {
	writer Writer
}

// New creates a Materializer backed by the default file writer.
func New() Materializer {
	return &DefaultMaterializer{writer: NewFileWriter()}
}

// NewWithWriter creates a Materializer with a custom writer.
func NewWithWriter(w Writer) Materializer {
	return &DefaultMaterializer{writer: w}
}

// Apply materializes every declared file pair under the destination root.
func (m *DefaultMaterializer) Apply(ctx context.Context, opts Options) (*Result, error) {
	return m.run(ctx, opts, false)
}

// DryRun reports what Apply would write without touching the filesystem.
func (m *DefaultMaterializer) DryRun(ctx context.Context, opts Options) (*Result, error) {
	return m.run(ctx, opts, true)
}

// run is the internal implementation for both Apply and DryRun.
func (m *DefaultMaterializer) run(ctx context.Context, opts Options, dryRun bool) (*Result, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	debug.Debug("[materialize] Starting: root=%s, dest=%s, pairs=%d, dryRun=%v",
		opts.TemplateRoot, opts.DestRoot, len(opts.Files), dryRun)

	result := &Result{Files: []string{}}

	for _, pair := range opts.Files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		srcPath := filepath.Join(opts.TemplateRoot, pair.Source)
		destPath := filepath.Join(opts.DestRoot, pair.Dest)

		content, mode, err := readSource(srcPath)
		if err != nil {
			return result, newError(SourceMissing, "failed to read template source", pair.Source, err)
		}

		binary := IsBinary(pair.Source, content)
		debug.Debug("[materialize] %s -> %s (size: %d bytes, binary: %v)",
			pair.Source, destPath, len(content), binary)

		output := content
		if !binary {
			output, err = Render(content, opts.Props)
			if err != nil {
				return result, newError(RenderFailed, "failed to render template", pair.Source, err)
			}
		}

		if !dryRun {
			if err := m.writer.WriteFile(destPath, output, mode); err != nil {
				return result, err
			}
		}

		result.FilesWritten++
		if binary {
			result.BinaryCopies++
		}
		result.Files = append(result.Files, destPath)
	}

	debug.Debug("[materialize] Complete: written=%d, binary=%d", result.FilesWritten, result.BinaryCopies)
	return result, nil
}

// readSource reads a source file's raw bytes and mode.
func readSource(path string) ([]byte, fs.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, err
	}
	if info.IsDir() {
		return nil, 0, fmt.Errorf("source is a directory")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}

	return content, info.Mode(), nil
}

// validateOptions validates Options.
func validateOptions(opts Options) error {
	if opts.TemplateRoot == "" {
		return fmt.Errorf("template root cannot be empty")
	}

	if opts.DestRoot == "" {
		return fmt.Errorf("destination root cannot be empty")
	}

	if opts.Props == nil {
		return fmt.Errorf("substitution context cannot be nil")
	}

	return nil
}
