package commands

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/1930s/gTTS/pkg/cli"
	"github.com/1930s/gTTS/pkg/gtts"
	"github.com/1930s/gTTS/pkg/storage"
)

// fakeSynth answers every request with "mp3:" followed by the text.
type fakeSynth struct {
	mu    sync.Mutex
	calls []*gtts.Request
	err   error
}

func (f *fakeSynth) WriteTo(_ context.Context, w io.Writer, req *gtts.Request) (int64, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	n, err := io.WriteString(w, "mp3:"+req.Text)
	return int64(n), err
}

// fakeS3 keeps objects in memory, keyed by "bucket/key".
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &smithy.GenericAPIError{Code: "NoSuchKey", Message: "not found"}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[*in.Bucket+"/"+*in.Key] = data
	return &s3.PutObjectOutput{}, nil
}

// testEnv runs the root command against fakes and a scratch directory.
type testEnv struct {
	dir    string
	vars   map[string]string
	stdin  string
	stdout bytes.Buffer
	stderr bytes.Buffer

	synth      *fakeSynth
	s3         *fakeS3
	s3opts     storage.S3Options
	clientOpts []gtts.Option
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	return &testEnv{
		dir: dir,
		vars: map[string]string{
			cli.EnvConfig: filepath.Join(dir, "config.yaml"),
		},
		synth: &fakeSynth{},
		s3:    &fakeS3{objects: make(map[string][]byte)},
	}
}

func (e *testEnv) env() *Env {
	return &Env{
		Stdin:  strings.NewReader(e.stdin),
		Stdout: &e.stdout,
		Stderr: &e.stderr,
		LookupEnv: func(key string) (string, bool) {
			v, ok := e.vars[key]
			return v, ok
		},
		WorkDir: e.dir,
		NewSynthesizer: func(opts ...gtts.Option) Synthesizer {
			e.clientOpts = opts
			return e.synth
		},
		NewS3Client: func(opts storage.S3Options) storage.S3Client {
			e.s3opts = opts
			return e.s3
		},
	}
}

// runCmd executes gtts with args and returns the exit code and error.
func (e *testEnv) runCmd(t *testing.T, args ...string) (int, error) {
	t.Helper()
	e.stdout.Reset()
	e.stderr.Reset()
	cmd := NewRootCommand(e.env())
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return ExitCode(err), err
}

func (e *testEnv) path(name string) string {
	return filepath.Join(e.dir, name)
}

func (e *testEnv) writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := e.path(name)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func (e *testEnv) writeConfig(t *testing.T, content string) {
	t.Helper()
	e.writeFile(t, "config.yaml", []byte(content))
}

func (e *testEnv) lastRequest(t *testing.T) *gtts.Request {
	t.Helper()
	if len(e.synth.calls) == 0 {
		t.Fatal("synthesizer was not called")
	}
	return e.synth.calls[len(e.synth.calls)-1]
}

func assertNoFile(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("%s should not exist, stat err = %v", path, err)
	}
}
