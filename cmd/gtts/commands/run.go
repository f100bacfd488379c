package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/1930s/gTTS/pkg/cli"
	"github.com/1930s/gTTS/pkg/gtts"
	"github.com/1930s/gTTS/pkg/storage"
)

// defaultS3Region is used when neither the context nor the environment
// names a region.
const defaultS3Region = "us-east-1"

func run(ctx context.Context, env *Env, opts Options, changed func(string) bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := cli.NewLogger(env.Stderr, opts.Debug)

	if opts.All {
		return listAll(env, logger, opts)
	}

	settings, err := loadContext(env, logger, opts.Config, opts.Context)
	if err != nil {
		return err
	}
	opts = opts.withContext(settings, changed)

	catalog, err := loadCatalog(env.WorkDir, opts.Catalog)
	if err != nil {
		return err
	}

	if err := opts.Validate(catalog); err != nil {
		return err
	}

	logger.Debug("gtts: options",
		"lang", opts.Lang,
		"slow", opts.Slow,
		"nocheck", opts.NoCheck,
		"tld", opts.TLD,
		"file", opts.File,
		"output", opts.Output)

	st, err := newStores(env, settings)
	if err != nil {
		return err
	}

	text, err := resolveText(ctx, opts, env.Stdin, st)
	if err != nil {
		return err
	}
	logger.Debug("gtts: text", "runes", len([]rune(text)))

	out, err := openOutput(ctx, opts.Output, env.Stdout, st)
	if err != nil {
		return err
	}

	clientOpts := []gtts.Option{
		gtts.WithTLD(opts.TLD),
		gtts.WithLogger(logger),
		gtts.WithCatalog(catalog),
	}
	if d := settings.TimeoutDuration(); d > 0 {
		clientOpts = append(clientOpts, gtts.WithTimeout(d))
	}
	synth := env.NewSynthesizer(clientOpts...)

	start := time.Now()
	n, err := synth.WriteTo(ctx, out.w, &gtts.Request{
		Text:      text,
		Lang:      opts.Lang,
		Slow:      opts.Slow,
		LangCheck: !opts.NoCheck,
	})
	if err != nil {
		if e, ok := gtts.AsError(err); ok {
			logger.Debug("gtts: request failed", "status", e.HTTPStatus, "part", e.Part, "tld", e.TLD)
		}
		if derr := out.w.Discard(); derr != nil {
			logger.Warn("gtts: discard output", "output", out.name, "error", derr)
		}
		return synthesisError(err)
	}
	if err := out.w.Close(); err != nil {
		if derr := out.w.Discard(); derr != nil {
			logger.Warn("gtts: discard output", "output", out.name, "error", derr)
		}
		return fmt.Errorf("write %s: %w", out.name, err)
	}

	logger.Debug("gtts: saved",
		"output", out.name,
		"size", cli.FormatBytes(n),
		"elapsed", cli.FormatDuration(time.Since(start)))
	return nil
}

// loadContext resolves the settings for this invocation: the named context
// (flag, then GTTS_CONTEXT, then the file's current context) with
// environment overrides applied.
func loadContext(env *Env, logger *slog.Logger, configPath, name string) (*cli.Context, error) {
	if configPath == "" {
		if v, ok := env.LookupEnv(cli.EnvConfig); ok {
			configPath = v
		}
	}
	cfg, err := cli.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name, _ = env.LookupEnv(cli.EnvContext)
	}
	settings, err := cfg.ResolveContext(name)
	if err != nil {
		return nil, err
	}
	if err := settings.ApplyEnv(env.LookupEnv); err != nil {
		return nil, err
	}

	logger.Debug("gtts: config", "path", cfg.Path(), "context", settings.Name)
	if c := settings.S3; c != nil {
		logger.Debug("gtts: s3",
			"region", c.Region,
			"endpoint", c.Endpoint,
			"access_key", cli.MaskSecret(c.AccessKey))
	}
	return settings, nil
}

// listAll prints the catalog. Only the catalog location is looked up: the
// --catalog flag, then GTTS_CATALOG, then the context. A broken config or
// environment does not stop the listing.
func listAll(env *Env, logger *slog.Logger, opts Options) error {
	path := opts.Catalog
	if path == "" {
		if v, ok := env.LookupEnv(cli.EnvCatalog); ok {
			path = strings.TrimSpace(v)
		}
	}
	if path == "" {
		settings, err := loadContext(env, logger, opts.Config, opts.Context)
		if err != nil {
			logger.Debug("gtts: config ignored for --all", "error", err)
		} else {
			path = settings.Catalog
		}
	}

	catalog, err := loadCatalog(env.WorkDir, path)
	if err != nil {
		return err
	}
	return listLanguages(env.Stdout, catalog)
}

// loadCatalog returns the built-in catalog, or the one in the file at path.
// Relative paths are resolved against workDir.
func loadCatalog(workDir, path string) (gtts.Catalog, error) {
	if path == "" {
		return gtts.DefaultCatalog(), nil
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}
	m, err := cli.LoadStringMap(path)
	if err != nil {
		return nil, fmt.Errorf("load language catalog: %w", err)
	}
	return gtts.NewCatalog(m)
}

// listLanguages prints every catalog entry as "tag: name", sorted by tag.
func listLanguages(w io.Writer, catalog gtts.Catalog) error {
	p := cli.NewPrinter(w)
	for _, tag := range catalog.Tags() {
		if err := p.Entry(tag, catalog.Name(tag)); err != nil {
			return err
		}
	}
	return nil
}

func newStores(env *Env, settings *cli.Context) (*stores, error) {
	local, err := storage.NewLocal(env.WorkDir)
	if err != nil {
		return nil, err
	}

	s3opts := storage.S3Options{Region: defaultS3Region}
	if c := settings.S3; c != nil {
		s3opts = storage.S3Options{
			Region:    c.Region,
			Endpoint:  c.Endpoint,
			AccessKey: c.AccessKey,
			SecretKey: c.SecretKey,
			PathStyle: c.PathStyle,
		}
		if s3opts.Region == "" {
			s3opts.Region = defaultS3Region
		}
	}
	client := sync.OnceValue(func() storage.S3Client {
		return env.NewS3Client(s3opts)
	})

	return &stores{
		local: local,
		s3: func(bucket string) storage.FileStore {
			return storage.NewS3(client(), bucket, "")
		},
	}, nil
}

// synthesisError turns client errors caused by the input into usage errors.
func synthesisError(err error) error {
	switch {
	case errors.Is(err, gtts.ErrNoText):
		return usageErrorf("TEXT", "nothing speakable in the given text")
	case errors.Is(err, gtts.ErrUnsupportedLanguage):
		return usageErrorf("-l/--lang", "%v", err)
	}
	return err
}
