package driven

// FileReader reads local files on behalf of path-based uploads.
// It is a boundary collaborator, not part of the engine core.
type FileReader interface {
	// ReadContent returns a file's text content.
	// Returns domain.ErrInvalidInput for unsupported (binary) types
	// and domain.ErrNotFound for missing paths.
	ReadContent(path string) (string, error)

	// Info returns a file's display name, detected type and byte size.
	Info(path string) (FileInfo, error)
}

// FileInfo describes a local file.
type FileInfo struct {
	// Name is the base file name.
	Name string

	// Type is the detected type tag (extension without the dot).
	Type string

	// Size is the file size in bytes.
	Size int64
}
