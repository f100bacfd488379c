package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

const (
	// DefaultBaseDir is the base configuration directory name
	DefaultBaseDir = ".gtts"
	// DefaultConfigFile is the default configuration filename
	DefaultConfigFile = "config.yaml"
	// DefaultContextName names the context used when none is configured
	DefaultContextName = "default"
)

// Environment variables overriding context settings.
const (
	EnvConfig     = "GTTS_CONFIG"
	EnvContext    = "GTTS_CONTEXT"
	EnvTLD        = "GTTS_TLD"
	EnvLang       = "GTTS_LANG"
	EnvTimeout    = "GTTS_TIMEOUT"
	EnvCatalog    = "GTTS_CATALOG"
	EnvS3Region   = "GTTS_S3_REGION"
	EnvS3Endpoint = "GTTS_S3_ENDPOINT"
	EnvAccessKey  = "AWS_ACCESS_KEY_ID"
	EnvSecretKey  = "AWS_SECRET_ACCESS_KEY"
)

// Config represents the configuration file
type Config struct {
	// CurrentContext is the name of the currently active context
	CurrentContext string `yaml:"current_context,omitempty"`

	// Contexts is a map of context name to context configuration
	Contexts map[string]*Context `yaml:"contexts,omitempty"`

	// configPath is the path to the config file
	configPath string
}

// Context holds the defaults applied to an invocation
type Context struct {
	// Name is the context name
	Name string `yaml:"name"`

	// TLD is the translate host top-level domain, e.g. "co.uk"
	TLD string `yaml:"tld,omitempty"`

	// Lang is the default language tag
	Lang string `yaml:"lang,omitempty"`

	// Slow requests slower speech by default
	Slow bool `yaml:"slow,omitempty"`

	// Timeout is the request timeout in seconds (optional)
	Timeout int `yaml:"timeout,omitempty"`

	// Catalog is the path of a language catalog file replacing the built-in one
	Catalog string `yaml:"catalog,omitempty"`

	// S3 configures s3:// input and output locations
	S3 *S3Config `yaml:"s3,omitempty"`
}

// S3Config contains object storage settings
type S3Config struct {
	Region    string `yaml:"region,omitempty"`
	Endpoint  string `yaml:"endpoint,omitempty"`
	AccessKey string `yaml:"access_key,omitempty"`
	SecretKey string `yaml:"secret_key,omitempty"`
	PathStyle bool   `yaml:"path_style,omitempty"`
}

// LoadConfig reads the configuration file at path, or at the default
// location when path is empty. A missing file yields an empty config.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		paths, err := NewPaths()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = paths.ConfigFile()
	}

	cfg := &Config{
		Contexts:   make(map[string]*Context),
		configPath: path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Contexts == nil {
		cfg.Contexts = make(map[string]*Context)
	}
	for name, ctx := range cfg.Contexts {
		if ctx == nil {
			ctx = &Context{}
			cfg.Contexts[name] = ctx
		}
		ctx.Name = name
	}

	return cfg, nil
}

// Path returns the config file path
func (c *Config) Path() string {
	return c.configPath
}

// GetContext returns a specific context
func (c *Config) GetContext(name string) (*Context, error) {
	ctx, ok := c.Contexts[name]
	if !ok {
		return nil, fmt.Errorf("context %q not found in %s", name, c.configPath)
	}
	return ctx, nil
}

// ResolveContext returns a copy of the named context. With an empty name
// the current context is used, and without a current context an empty
// default context is returned.
func (c *Config) ResolveContext(name string) (*Context, error) {
	if name == "" {
		name = c.CurrentContext
	}
	if name == "" {
		return &Context{Name: DefaultContextName}, nil
	}

	ctx, err := c.GetContext(name)
	if err != nil {
		return nil, err
	}
	resolved := *ctx
	if ctx.S3 != nil {
		s3 := *ctx.S3
		resolved.S3 = &s3
	}
	return &resolved, nil
}

// LoadDotEnv loads variables from the given .env files (".env" when none
// are given) into the process environment. Missing files are ignored and
// variables already set are kept.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
	}
	return nil
}

// ApplyEnv overrides context settings from environment variables looked up
// with lookup, typically os.LookupEnv.
func (ctx *Context) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvTLD); ok {
		ctx.TLD = v
	}
	if v, ok := get(EnvLang); ok {
		ctx.Lang = v
	}
	if v, ok := get(EnvCatalog); ok {
		ctx.Catalog = v
	}
	if v, ok := get(EnvTimeout); ok {
		secs, err := strconv.Atoi(v)
		if err != nil || secs < 0 {
			return fmt.Errorf("invalid %s %q: want a number of seconds", EnvTimeout, v)
		}
		ctx.Timeout = secs
	}

	s3 := ctx.S3
	if s3 == nil {
		s3 = &S3Config{}
	}
	var touched bool
	for key, dst := range map[string]*string{
		EnvS3Region:   &s3.Region,
		EnvS3Endpoint: &s3.Endpoint,
		EnvAccessKey:  &s3.AccessKey,
		EnvSecretKey:  &s3.SecretKey,
	} {
		if v, ok := get(key); ok {
			*dst = v
			touched = true
		}
	}
	if touched {
		ctx.S3 = s3
	}

	return nil
}

// TimeoutDuration returns the configured timeout, or zero when unset
func (ctx *Context) TimeoutDuration() time.Duration {
	return time.Duration(ctx.Timeout) * time.Second
}

// MaskSecret masks a secret for display
func MaskSecret(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
