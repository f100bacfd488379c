package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
)

// Local implements FileStore on top of the local filesystem.
// Relative paths are resolved against the configured root directory;
// absolute paths are used as given.
type Local struct {
	root string
}

// NewLocal creates a Local store rooted at dir.
// The directory is created (with parents) if it does not already exist.
func NewLocal(dir string) (*Local, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}
	return &Local{root: abs}, nil
}

// resolve turns a storage path into an absolute filesystem path.
func (l *Local) resolve(path string) string {
	path = filepath.FromSlash(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.root, path)
}

// Read opens the named file for reading.
func (l *Local) Read(_ context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(l.resolve(path))
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Write buffers data in memory. Close opens the named file for writing,
// creating parent directories as needed, and writes the buffer in one call.
// The path is opened as given, so symlinks are followed and devices or
// named pipes receive the data. Discard drops the buffer without touching
// the filesystem.
func (l *Local) Write(_ context.Context, path string) (Writer, error) {
	return &localWriter{path: l.resolve(path)}, nil
}

type localWriter struct {
	path   string
	buf    bytes.Buffer
	closed bool
}

func (w *localWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, os.ErrClosed
	}
	return w.buf.Write(p)
}

func (w *localWriter) Close() error {
	if w.closed {
		return os.ErrClosed
	}
	w.closed = true

	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(w.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return err
	}
	if _, err := f.Write(w.buf.Bytes()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (w *localWriter) Discard() error {
	w.closed = true
	w.buf.Reset()
	return nil
}

var _ FileStore = (*Local)(nil)
