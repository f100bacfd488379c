package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/1930s/gTTS/pkg/cli"
	"github.com/1930s/gTTS/pkg/gtts"
	"github.com/1930s/gTTS/pkg/storage"
)

// Version is the release version, set at build time with
// -ldflags "-X github.com/1930s/gTTS/cmd/gtts/commands.Version=...".
var Version = "dev"

// Synthesizer writes the audio for a request to w.
type Synthesizer interface {
	WriteTo(ctx context.Context, w io.Writer, req *gtts.Request) (int64, error)
}

// Env is the world a command runs in. Tests replace any of it.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// LookupEnv reads environment variables.
	LookupEnv func(key string) (string, bool)

	// WorkDir is the directory relative paths are resolved against.
	WorkDir string

	// NewSynthesizer builds the text-to-speech client.
	NewSynthesizer func(opts ...gtts.Option) Synthesizer

	// NewS3Client builds the client behind s3:// locations.
	NewS3Client func(opts storage.S3Options) storage.S3Client
}

// OSEnv returns an Env bound to the running process.
func OSEnv() *Env {
	return &Env{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		LookupEnv: os.LookupEnv,
		WorkDir:   ".",
		NewSynthesizer: func(opts ...gtts.Option) Synthesizer {
			return gtts.NewClient(opts...)
		},
		NewS3Client: func(opts storage.S3Options) storage.S3Client {
			return storage.NewS3Client(opts)
		},
	}
}

// NewRootCommand builds the gtts command bound to env.
func NewRootCommand(env *Env) *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   "gtts [flags] [TEXT]",
		Short: "Read TEXT to MP3 format using Google Translate's Text-to-Speech API",
		Long: `gtts - Read TEXT to MP3 format using Google Translate's Text-to-Speech API.

TEXT is read from the argument, from a file with -f/--file, or from
standard input when TEXT or PATH is '-'. Exactly one source is required.
Audio goes to standard output unless -o/--output names a file. Both PATH
values accept s3://bucket/key locations.

Defaults come from the current context in ~/.gtts/config.yaml and from
GTTS_* environment variables (a .env file in the working directory is
loaded first). Flags always win.

Examples:
  gtts "hello" > hello.mp3
  gtts -l fr -o bonjour.mp3 "bonjour"
  echo "hola" | gtts -l es - -o hola.mp3
  gtts -f speech.txt -o s3://audio/speech.mp3
  gtts --all`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Args = args
			changed := func(name string) bool { return cmd.Flags().Changed(name) }
			return run(cmd.Context(), env, opts, changed)
		},
	}

	cmd.SetIn(env.Stdin)
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)
	cmd.SetVersionTemplate("gtts {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Msg: err.Error()}
	})

	bindFlags(cmd.Flags(), &opts)
	return cmd
}

// Execute runs gtts against the process environment.
func Execute(ctx context.Context) error {
	if err := cli.LoadDotEnv(); err != nil {
		return err
	}
	return NewRootCommand(OSEnv()).ExecuteContext(ctx)
}
