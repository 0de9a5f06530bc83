package entry

import (
	"context"
	"fmt"

	"syker-uplink/pkg/models"
)

// Entry is a handle to a file or directory as exposed by a drop payload,
// distinct from an already-materialized file.
type Entry interface {
	Name() string
	// FullPath returns the slash-separated path of the entry from the drop
	// root, without a leading slash.
	FullPath() string
	IsDirectory() bool
}

// FileEntry resolves to exactly one item. Reading its content can fail.
type FileEntry interface {
	Entry
	Content(ctx context.Context) (models.Item, error)
}

// DirectoryEntry lists its children one page at a time. An empty page token
// requests the first page. A short page is not a completion signal: callers
// must keep requesting pages until an empty page with an empty next token
// comes back.
type DirectoryEntry interface {
	Entry
	List(ctx context.Context, pageSize int, pageToken string) (children []Entry, nextToken string, err error)
}

// ReadError reports that a dropped file or directory could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read dropped entry %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
