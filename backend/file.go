package backend

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// File stores each name as a file under a base directory. Written files
// are created 0600 — config regularly carries credentials.
type File struct {
	dir string
}

var _ Backend = (*File)(nil)

// NewFile returns a file backend rooted at dir. An empty dir selects the
// OS default config directory (os.UserConfigDir).
func NewFile(dir string) (*File, error) {
	if dir == "" {
		d, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return &File{dir: dir}, nil
}

// Dir returns the base directory names resolve against.
func (f *File) Dir() string { return f.dir }

func (f *File) path(name string) string { return filepath.Join(f.dir, name) }

func (f *File) Read(_ context.Context, name string) ([]byte, bool, error) {
	b, err := os.ReadFile(f.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (f *File) Write(_ context.Context, name string, data []byte) error {
	p := f.path(name)
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o600)
}

func (f *File) Delete(_ context.Context, name string) error {
	err := os.Remove(f.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (f *File) Close(context.Context) error { return nil }
