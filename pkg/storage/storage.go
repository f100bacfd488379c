// Package storage opens the locations gtts reads text from and writes audio
// to. A location is either a local path or an S3 object addressed as
// s3://bucket/key; both are reached through the FileStore interface so the
// command never cares which one it was given.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// FileStore is a minimal interface for file-oriented storage.
//
// Paths are forward-slash separated and relative to the store root.
type FileStore interface {
	// Read opens the named file for reading.
	// The caller must close the returned ReadCloser when done.
	// If the file does not exist, an error wrapping os.ErrNotExist is returned.
	Read(ctx context.Context, path string) (io.ReadCloser, error)

	// Write opens the named file for writing.
	// The caller must either Close the returned Writer to commit the data
	// or Discard it to abandon the write.
	Write(ctx context.Context, path string) (Writer, error)
}

// Writer is an in-progress write to a FileStore.
type Writer interface {
	io.WriteCloser

	// Discard abandons the write so that no partial file or object is
	// left at the destination. Further writes fail.
	Discard() error
}

// SchemeS3 is the URI scheme of S3 locations.
const SchemeS3 = "s3"

// Location is a parsed input or output path.
type Location struct {
	// Scheme is "s3" for object storage, empty for the local filesystem.
	Scheme string

	// Bucket is the S3 bucket, empty for local paths.
	Bucket string

	// Path is the object key or the local file path.
	Path string
}

// ParseLocation parses a command-line path. Paths starting with s3:// must
// name both a bucket and a key.
func ParseLocation(s string) (Location, error) {
	rest, ok := strings.CutPrefix(s, SchemeS3+"://")
	if !ok {
		return Location{Path: s}, nil
	}
	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return Location{}, fmt.Errorf("storage: invalid s3 location %q, want s3://bucket/key", s)
	}
	return Location{Scheme: SchemeS3, Bucket: bucket, Path: key}, nil
}

// IsS3 reports whether the location is an S3 object.
func (l Location) IsS3() bool {
	return l.Scheme == SchemeS3
}

// String returns the location in the form it was parsed from.
func (l Location) String() string {
	if l.IsS3() {
		return SchemeS3 + "://" + l.Bucket + "/" + l.Path
	}
	return l.Path
}
