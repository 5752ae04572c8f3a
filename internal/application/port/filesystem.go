package port

import "context"

// FileSystem provides file system operations for the application layer.
type FileSystem interface {
	Exists(ctx context.Context, path string) (bool, error)
	IsDirectory(ctx context.Context, path string) (bool, error)
	GetSize(ctx context.Context, path string) (int64, error)
	RemoveAll(ctx context.Context, path string) error
	MkdirAll(ctx context.Context, path string) error

	// Move renames src to dst, falling back to a recursive copy followed by
	// removal of src when the rename crosses a filesystem boundary.
	Move(ctx context.Context, src, dst string) error

	// HasSessionData reports whether dir holds data left by a previous
	// browsing session.
	HasSessionData(ctx context.Context, dir string) (bool, error)
}
