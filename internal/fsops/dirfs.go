package fsops

import (
	"errors"
	"io/fs"
	"path/filepath"
)

// DirFS exposes the tree under root as an io/fs file system so that io/fs
// consumers such as glob matchers read through fsys. Only Stat and ReadDir
// are supported; Open always fails.
func DirFS(fsys FS, root string) fs.FS {
	return &dirFS{fsys: fsys, root: root}
}

type dirFS struct {
	fsys FS
	root string
}

var (
	_ fs.StatFS    = (*dirFS)(nil)
	_ fs.ReadDirFS = (*dirFS)(nil)
)

func (d *dirFS) path(op, name string) (string, error) {
	if !fs.ValidPath(name) {
		return "", &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}
	return filepath.Join(d.root, filepath.FromSlash(name)), nil
}

func (d *dirFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: errors.ErrUnsupported}
}

func (d *dirFS) Stat(name string) (fs.FileInfo, error) {
	path, err := d.path("stat", name)
	if err != nil {
		return nil, err
	}
	return d.fsys.Stat(path)
}

func (d *dirFS) ReadDir(name string) ([]fs.DirEntry, error) {
	path, err := d.path("readdir", name)
	if err != nil {
		return nil, err
	}
	return d.fsys.ReadDir(path)
}
