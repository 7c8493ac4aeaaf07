package meshcomp

import (
	"bufio"
	"context"
	"errors"
	"os"

	"github.com/hupe1980/meshcomp/internal/fs"
	"github.com/hupe1980/meshcomp/mesh"
	"github.com/hupe1980/meshcomp/snapshot"
)

// SaveFile writes a snapshot of m to path. The snapshot is written to a
// temporary file next to path and renamed into place once synced, so a
// failed save leaves any previous file untouched.
func SaveFile(path string, m *mesh.Mesh, l *Logger, opts ...snapshot.Option) error {
	return saveFile(fs.Default, path, m, l, opts...)
}

// LoadFile replaces the content of m with the snapshot at path.
func LoadFile(path string, m *mesh.Mesh, l *Logger) error {
	return loadFile(fs.Default, path, m, l)
}

func saveFile(fsys fs.FileSystem, path string, m *mesh.Mesh, l *Logger, opts ...snapshot.Option) (err error) {
	if l == nil {
		l = NoopLogger()
	}
	defer func() { l.LogSnapshot(context.Background(), "save", path, err) }()

	tmp := path + ".tmp"
	f, err := fsys.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = fsys.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	if err := snapshot.Write(w, m, append([]snapshot.Option{snapshot.WithLogger(l.Logger)}, opts...)...); err != nil {
		return errors.Join(err, f.Close())
	}
	if err := w.Flush(); err != nil {
		return errors.Join(err, f.Close())
	}
	if err := f.Sync(); err != nil {
		return errors.Join(err, f.Close())
	}
	if err := f.Close(); err != nil {
		return err
	}
	return fsys.Rename(tmp, path)
}

func loadFile(fsys fs.FileSystem, path string, m *mesh.Mesh, l *Logger) (err error) {
	if l == nil {
		l = NoopLogger()
	}
	defer func() { l.LogSnapshot(context.Background(), "load", path, err) }()

	f, err := fsys.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	return snapshot.Read(bufio.NewReader(f), m, snapshot.WithLogger(l.Logger))
}
