// Package jsonfile persists the journal's collections as whole JSON documents
// on local disk. Each collection is one file; every load re-reads it and
// every save rewrites it completely.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jsamuelsen/mindnotes/internal/platform/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// completer is implemented by documents that can tell a parsed-but-empty
// file (e.g. "{}") from a real one.
type completer interface {
	complete() bool
}

// Load reads the document at path into a value of type T.
//
// A missing file, a file that is not valid JSON for T, or a document that
// lacks its collection key yields def. None of these are returned as errors:
// the caller always gets a usable document.
func Load[T any](ctx context.Context, path string, def T) T {
	logger := logging.FromContext(ctx).With(slog.String("path", path))

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.WarnContext(ctx, "reading document failed, using default", slog.Any("error", err))
		} else {
			logger.DebugContext(ctx, "document absent, using default")
		}

		return def
	}

	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.WarnContext(ctx, "document malformed, using default", slog.Any("error", err))
		return def
	}

	if c, ok := any(&doc).(completer); ok && !c.complete() {
		logger.WarnContext(ctx, "document missing collection key, using default")
		return def
	}

	return doc
}

// Save encodes doc as indented JSON and replaces the file at path.
// The content is written to a temporary sibling first and renamed into place.
func Save[T any](ctx context.Context, path string, doc T) error {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpName := tmp.Name()
	defer func() {
		// No-op once the rename succeeded.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("setting file mode: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	logging.FromContext(ctx).DebugContext(ctx, "document saved",
		slog.String("path", path),
		slog.Int("bytes", buf.Len()),
	)

	return nil
}

// checkWritable verifies a document at path could be saved: the nearest
// existing ancestor directory must accept a new file.
func checkWritable(path string) error {
	dir := filepath.Dir(path)

	for {
		info, err := os.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", dir)
			}

			break
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", dir, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return fmt.Errorf("no existing ancestor for %s", path)
		}

		dir = parent
	}

	probe, err := os.CreateTemp(dir, ".mindnotes-probe-*")
	if err != nil {
		return fmt.Errorf("directory %s not writable: %w", dir, err)
	}

	name := probe.Name()
	_ = probe.Close()

	return os.Remove(name)
}
