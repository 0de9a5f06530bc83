package entry

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"syker-uplink/pkg/models"
)

// NewLocalEntry resolves a filesystem path into an Entry rooted at the
// path's own base name, mirroring how a dropped file or folder is named by
// its drop root. Paths that do not resolve to a regular file or directory
// (missing paths, sockets, dangling symlinks) return nil and are dropped
// silently by the traverser.
func NewLocalEntry(p string) Entry {
	info, err := os.Stat(p)
	if err != nil {
		return nil
	}
	switch {
	case info.IsDir():
		return &localDir{path: p, full: filepath.Base(p)}
	case info.Mode().IsRegular():
		return &localFile{path: p, full: filepath.Base(p)}
	default:
		return nil
	}
}

type localFile struct {
	path string // on-disk location
	full string // slash-separated path from the drop root
}

func (f *localFile) Name() string      { return path.Base(f.full) }
func (f *localFile) FullPath() string  { return f.full }
func (f *localFile) IsDirectory() bool { return false }

func (f *localFile) Content(ctx context.Context) (models.Item, error) {
	if err := ctx.Err(); err != nil {
		return models.Item{}, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return models.Item{}, &ReadError{Path: f.full, Err: err}
	}
	return models.Item{Name: f.Name(), Data: data}, nil
}

// localDir pages through a directory with os.File.ReadDir. The returned page
// tokens are opaque continuation markers; the open handle carries the actual
// read position between pages.
type localDir struct {
	path string
	full string
	f    *os.File
}

func (d *localDir) Name() string      { return path.Base(d.full) }
func (d *localDir) FullPath() string  { return d.full }
func (d *localDir) IsDirectory() bool { return true }

func (d *localDir) List(ctx context.Context, pageSize int, pageToken string) ([]Entry, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	if d.f == nil {
		f, err := os.Open(d.path)
		if err != nil {
			return nil, "", &ReadError{Path: d.full, Err: err}
		}
		d.f = f
	}

	dirents, err := d.f.ReadDir(pageSize)
	if errors.Is(err, io.EOF) || (err == nil && len(dirents) == 0) {
		d.close()
		return nil, "", nil
	}
	if err != nil {
		d.close()
		return nil, "", &ReadError{Path: d.full, Err: err}
	}

	children := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		if child := d.child(de); child != nil {
			children = append(children, child)
		}
	}
	return children, "continue", nil
}

func (d *localDir) child(de fs.DirEntry) Entry {
	childPath := filepath.Join(d.path, de.Name())
	childFull := path.Join(d.full, de.Name())
	if de.IsDir() {
		return &localDir{path: childPath, full: childFull}
	}
	if de.Type().IsRegular() {
		return &localFile{path: childPath, full: childFull}
	}
	return nil
}

func (d *localDir) close() {
	if d.f != nil {
		d.f.Close()
		d.f = nil
	}
}
