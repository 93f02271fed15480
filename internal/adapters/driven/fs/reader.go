// Package fs provides a local filesystem FileReader for path-based
// document uploads.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/helix-tools/askbase/internal/core/domain"
	"github.com/helix-tools/askbase/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.FileReader = (*Reader)(nil)

// Reader reads local files and rejects anything that is not text.
type Reader struct{}

// NewReader creates a filesystem reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadContent returns a file's text content. Missing paths map to
// domain.ErrNotFound, binary or otherwise unsupported files to
// domain.ErrInvalidInput.
func (r *Reader) ReadContent(path string) (string, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: file %s", domain.ErrNotFound, path)
		}
		return "", fmt.Errorf("detect file type: %w", err)
	}

	if !isTextType(mtype) {
		return "", fmt.Errorf("%w: unsupported file type %s", domain.ErrInvalidInput, mtype.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: file %s", domain.ErrNotFound, path)
		}
		return "", fmt.Errorf("read file: %w", err)
	}

	return string(data), nil
}

// Info returns a file's display name, detected type and byte size.
func (r *Reader) Info(path string) (driven.FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return driven.FileInfo{}, fmt.Errorf("%w: file %s", domain.ErrNotFound, path)
		}
		return driven.FileInfo{}, fmt.Errorf("stat file: %w", err)
	}
	if stat.IsDir() {
		return driven.FileInfo{}, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	}

	return driven.FileInfo{
		Name: filepath.Base(path),
		Type: strings.TrimPrefix(filepath.Ext(path), "."),
		Size: stat.Size(),
	}, nil
}

// isTextType reports whether a detected MIME type is readable text.
// Checks the type hierarchy so e.g. application/json (a child of
// text/plain) is accepted.
func isTextType(mtype *mimetype.MIME) bool {
	for t := mtype; t != nil; t = t.Parent() {
		if t.Is("text/plain") {
			return true
		}
	}
	return false
}
