package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/1930s/gTTS/pkg/cli"
	"github.com/1930s/gTTS/pkg/gtts"
)

// stdioPath means standard input for --file and standard output for --output.
const stdioPath = "-"

// DefaultLang is the language spoken when neither a flag nor the context
// names one.
const DefaultLang = "en"

// Options is everything one invocation was asked to do. It is filled once
// by flag parsing and then only copied.
type Options struct {
	// Args are the positional arguments; at most one TEXT is allowed.
	Args []string

	File    string
	Output  string
	Slow    bool
	Lang    string
	NoCheck bool
	All     bool
	Debug   bool

	// Ambient settings.
	Config  string
	Context string
	TLD     string
	Catalog string
}

func bindFlags(fs *pflag.FlagSet, o *Options) {
	fs.StringVarP(&o.File, "file", "f", "", "input is contents of PATH instead of TEXT (use '-' for stdin)")
	fs.StringVarP(&o.Output, "output", "o", "", "write to PATH instead of stdout (s3://bucket/key for object storage)")
	fs.BoolVarP(&o.Slow, "slow", "s", false, "read more slowly")
	fs.StringVarP(&o.Lang, "lang", "l", DefaultLang, "IETF language tag to speak in, list documented tags with -a/--all")
	fs.BoolVarP(&o.NoCheck, "nocheck", "x", false, "disable strict IETF language tag checking, allows undocumented tags")
	fs.BoolVarP(&o.All, "all", "a", false, "print all documented IETF language tags and exit")
	fs.BoolVar(&o.Debug, "debug", false, "show debug information")

	fs.StringVar(&o.Config, "config", "", "config file (default is ~/.gtts/config.yaml)")
	fs.StringVar(&o.Context, "context", "", "config context to use (env "+cli.EnvContext+")")
	fs.StringVar(&o.TLD, "tld", "", "top-level domain of the translate host, e.g. co.uk (default \"com\")")
	fs.StringVar(&o.Catalog, "catalog", "", "YAML or JSON file of tag: name pairs replacing the built-in language list")
}

// Text returns the positional TEXT argument, empty when absent.
func (o Options) Text() string {
	if len(o.Args) == 0 {
		return ""
	}
	return o.Args[0]
}

// withContext returns a copy of o with context defaults filled in for
// every setting the user did not pass explicitly.
func (o Options) withContext(ctx *cli.Context, changed func(name string) bool) Options {
	if !changed("lang") && ctx.Lang != "" {
		o.Lang = ctx.Lang
	}
	if !changed("slow") && ctx.Slow {
		o.Slow = true
	}
	if o.TLD == "" {
		o.TLD = ctx.TLD
	}
	if o.TLD == "" {
		o.TLD = gtts.DefaultTLD
	}
	if o.Catalog == "" {
		o.Catalog = ctx.Catalog
	}
	o.Args = append([]string(nil), o.Args...)
	return o
}

// Validate checks the options as a whole. The language tag is checked here
// rather than at parse time because whether to check it depends on
// --nocheck.
func (o Options) Validate(catalog gtts.Catalog) error {
	if len(o.Args) > 1 {
		return usageErrorf("TEXT", "got %d arguments, want at most one (quote text containing spaces)", len(o.Args))
	}

	hasText, hasFile := o.Text() != "", o.File != ""
	switch {
	case !hasText && !hasFile:
		return usageErrorf("TEXT", "TEXT or -f/--file PATH required")
	case hasText && hasFile:
		return usageErrorf("TEXT", "TEXT and -f/--file PATH can't be used together")
	}

	if o.Lang == "" {
		return usageErrorf("-l/--lang", "language tag is empty")
	}
	if !o.NoCheck && !catalog.Has(o.Lang) {
		return unknownLangError(catalog, o.Lang)
	}
	return nil
}

func unknownLangError(catalog gtts.Catalog, lang string) *UsageError {
	var b strings.Builder
	fmt.Fprintf(&b, "unsupported language %q. ", lang)
	b.WriteString("Use --all to list languages, or add --nocheck to disable language check.")
	if s, ok := catalog.Suggest(lang); ok && s != lang {
		fmt.Fprintf(&b, " Did you mean %q (%s)?", s, catalog.Name(s))
	}
	return &UsageError{Param: "-l/--lang", Msg: b.String()}
}
