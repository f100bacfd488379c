package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/1930s/gTTS/pkg/storage"
)

// stores opens input and output locations on local disk or S3.
type stores struct {
	local storage.FileStore
	s3    func(bucket string) storage.FileStore
}

func (s *stores) open(path string) (storage.FileStore, storage.Location, error) {
	loc, err := storage.ParseLocation(path)
	if err != nil {
		return nil, storage.Location{}, err
	}
	if !loc.IsS3() {
		return s.local, loc, nil
	}
	return s.s3(loc.Bucket), loc, nil
}

// decodeText decodes raw input as text: UTF-8 by default, UTF-16 when a
// byte order mark says so. A leading BOM is dropped.
func decodeText(raw []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}
	return string(out), nil
}

func readText(r io.Reader, what string) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", what, err)
	}
	return decodeText(raw)
}

// resolveText returns the text to speak from exactly one source: the TEXT
// argument, standard input (TEXT or --file equal to "-"), or a file.
func resolveText(ctx context.Context, o Options, stdin io.Reader, st *stores) (string, error) {
	var (
		text string
		err  error
	)

	switch {
	case o.File == stdioPath, o.File == "" && o.Text() == stdioPath:
		text, err = readText(stdin, "stdin")
	case o.File != "":
		text, err = readFile(ctx, o.File, st)
	default:
		text = o.Text()
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", usageErrorf("TEXT", "no text to speak")
	}
	return text, nil
}

func readFile(ctx context.Context, path string, st *stores) (string, error) {
	store, loc, err := st.open(path)
	if err != nil {
		return "", err
	}
	r, err := store.Read(ctx, loc.Path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", loc, err)
	}
	defer r.Close()
	return readText(r, loc.String())
}

// sink is the resolved audio destination.
type sink struct {
	w    storage.Writer
	name string
}

type stdoutWriter struct{ io.Writer }

func (stdoutWriter) Close() error   { return nil }
func (stdoutWriter) Discard() error { return nil }

// openOutput resolves where audio goes: stdout when no path (or "-") is
// given, otherwise a local file or S3 object opened for writing.
func openOutput(ctx context.Context, path string, stdout io.Writer, st *stores) (*sink, error) {
	if path == "" || path == stdioPath {
		return &sink{w: stdoutWriter{stdout}, name: "stdout"}, nil
	}

	store, loc, err := st.open(path)
	if err != nil {
		return nil, err
	}
	w, err := store.Write(ctx, loc.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", loc, err)
	}
	return &sink{w: w, name: loc.String()}, nil
}
