package gtts

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultTLD is the default top-level domain of the translate host.
	DefaultTLD = "com"

	// DefaultTimeout is the default request timeout.
	DefaultTimeout = 30 * time.Second
)

// Client is the Google Translate text-to-speech client.
type Client struct {
	config *clientConfig
	http   *httpClient
}

// clientConfig holds the client configuration.
type clientConfig struct {
	tld        string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
	catalog    Catalog
}

// Option is a function that configures the client.
type Option func(*clientConfig)

// WithTLD sets the top-level domain of the translate host, e.g. "co.uk"
// for translate.google.co.uk. Localized hosts give localized accents.
func WithTLD(tld string) Option {
	return func(c *clientConfig) {
		c.tld = tld
	}
}

// WithBaseURL overrides the endpoint URL. The TLD is ignored when set.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger used for request debugging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithCatalog sets the catalog used for language checking.
func WithCatalog(catalog Catalog) Option {
	return func(c *clientConfig) {
		c.catalog = catalog
	}
}

// NewClient creates a new text-to-speech client.
//
// Example:
//
//	client := gtts.NewClient()
//	client := gtts.NewClient(gtts.WithTLD("co.uk"), gtts.WithTimeout(10*time.Second))
func NewClient(opts ...Option) *Client {
	cfg := &clientConfig{
		tld:     DefaultTLD,
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{
			Timeout: cfg.timeout,
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	if cfg.catalog == nil {
		cfg.catalog = DefaultCatalog()
	}
	if cfg.baseURL == "" {
		cfg.baseURL = TranslateURL(cfg.tld)
	}

	return &Client{
		config: cfg,
		http:   newHTTPClient(cfg),
	}
}

// TranslateURL returns the batchexecute endpoint URL for the given TLD.
func TranslateURL(tld string) string {
	return "https://translate.google." + tld + "/_/TranslateWebserverUi/data/batchexecute"
}

// TLD returns the configured top-level domain.
func (c *Client) TLD() string {
	return c.config.tld
}

// Catalog returns the catalog used for language checking.
func (c *Client) Catalog() Catalog {
	return c.config.catalog
}

// Request is a text-to-speech request.
type Request struct {
	// Text is the text to speak. It must contain speakable characters.
	Text string

	// Lang is the IETF language tag to speak in.
	Lang string

	// Slow requests a slower speech rate.
	Slow bool

	// LangCheck rejects tags missing from the client's catalog before any
	// request is made.
	LangCheck bool
}

func (c *Client) prepare(req *Request) ([]string, error) {
	if req == nil || strings.TrimSpace(req.Text) == "" {
		return nil, ErrNoText
	}
	if req.Lang == "" {
		return nil, fmt.Errorf("%w: empty tag", ErrUnsupportedLanguage)
	}
	if req.LangCheck && !c.config.catalog.Has(req.Lang) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, req.Lang)
	}

	parts := Tokenize(req.Text)
	if len(parts) == 0 {
		return nil, ErrNoText
	}
	return parts, nil
}

// Stream synthesizes the request part by part.
//
// Returns an iterator yielding the MP3 bytes of each part in order. Iteration
// stops at the first error.
func (c *Client) Stream(ctx context.Context, req *Request) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		parts, err := c.prepare(req)
		if err != nil {
			yield(nil, err)
			return
		}

		c.config.logger.Debug("gtts: synthesizing",
			"parts", len(parts), "lang", req.Lang, "slow", req.Slow, "tld", c.config.tld)

		for i, part := range parts {
			audio, err := c.http.synthesizePart(ctx, i, part, req)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(audio, nil) {
				return
			}
		}
	}
}

// Synthesize performs the whole request and returns the concatenated MP3
// audio. No bytes are returned unless every part succeeded.
func (c *Client) Synthesize(ctx context.Context, req *Request) ([]byte, error) {
	var audio []byte
	for chunk, err := range c.Stream(ctx, req) {
		if err != nil {
			return nil, err
		}
		audio = append(audio, chunk...)
	}
	return audio, nil
}

// WriteTo synthesizes the request and writes the complete audio to w in a
// single write. Nothing is written when synthesis fails.
func (c *Client) WriteTo(ctx context.Context, w io.Writer, req *Request) (int64, error) {
	audio, err := c.Synthesize(ctx, req)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(audio)
	if err != nil {
		return int64(n), fmt.Errorf("write audio: %w", err)
	}
	return int64(n), nil
}
