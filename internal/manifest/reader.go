package manifest

import "context"

// Reader is the interface for a syntax-specific manifest reader.
type Reader interface {
	// Read loads and parses the manifest file at path.
	Read(ctx context.Context, path string) (*BuildManifest, error)

	// ReadBytes parses raw manifest text. filename is only used for
	// error positions.
	ReadBytes(ctx context.Context, src []byte, filename string) (*BuildManifest, error)

	// Extensions lists the file extensions (with leading dot) the reader accepts.
	Extensions() []string
}
