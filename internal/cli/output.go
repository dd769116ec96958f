package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/pipeline"
)

// artifactWriteParams describes where rendered artifacts go.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	base      string // output path without extension
	output    string // the -o value as given, empty for the default name
	stdout    bool   // write the single artifact to stdout
}

// writeArtifacts writes every artifact in format order and prints the paths.
// A single format with an explicit output path is written to that exact path;
// otherwise each file is named base.format.
func writeArtifacts(ctx context.Context, p artifactWriteParams) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if p.stdout {
		out, err := openOutput("")
		if err != nil {
			return err
		}
		defer out.Close()
		for _, format := range p.formats {
			if _, err := out.Write(p.artifacts[format]); err != nil {
				return err
			}
		}
		return nil
	}

	paths := make([]string, 0, len(p.formats))
	for _, format := range p.formats {
		path := p.base + "." + format
		if len(p.formats) == 1 && p.output != "" && filepath.Ext(p.output) != "" {
			path = p.output
		}
		if err := writeFile(path, p.artifacts[format]); err != nil {
			return err
		}
		logger.Debug("wrote artifact", "path", path, "bytes", len(p.artifacts[format]))
		paths = append(paths, path)
	}

	for _, path := range paths {
		printFile(path)
	}
	prog.done(fmt.Sprintf("Wrote %d file(s)", len(paths)))
	return nil
}

func writeFile(path string, data []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// basePath derives the base output path from the output and fallback paths.
// If output is empty, it strips the extension from fallback.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, fallback string) string {
	if output == "" {
		return strings.TrimSuffix(fallback, filepath.Ext(fallback))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
