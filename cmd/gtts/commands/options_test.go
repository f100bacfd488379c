package commands

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/1930s/gTTS/pkg/cli"
	"github.com/1930s/gTTS/pkg/gtts"
)

func TestValidate(t *testing.T) {
	catalog := gtts.Catalog{"en": "English", "fr": "French", "pt-PT": "Portuguese (Portugal)"}

	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{"text", Options{Args: []string{"hi"}, Lang: "en"}, ""},
		{"file", Options{File: "a.txt", Lang: "fr"}, ""},
		{"nocheck", Options{Args: []string{"hi"}, Lang: "tlh", NoCheck: true}, ""},
		{"no source", Options{Lang: "en"}, "required"},
		{"two sources", Options{Args: []string{"hi"}, File: "a.txt", Lang: "en"}, "together"},
		{"empty lang", Options{Args: []string{"hi"}}, "empty"},
		{"unknown lang", Options{Args: []string{"hi"}, Lang: "tlh"}, `unsupported language "tlh"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate(catalog)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				return
			}
			if !IsUsageError(err) {
				t.Fatalf("Validate() = %v, want usage error", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestUnknownLangSuggestion(t *testing.T) {
	catalog := gtts.Catalog{"en": "English", "fr": "French"}

	err := Options{Args: []string{"salut"}, Lang: "fr-CH"}.Validate(catalog)
	if err == nil || !strings.Contains(err.Error(), `Did you mean "fr" (French)?`) {
		t.Fatalf("error = %v, want fr suggestion", err)
	}
}

func TestWithContext(t *testing.T) {
	ctx := &cli.Context{Lang: "fr", Slow: true, TLD: "ca", Catalog: "langs.yaml"}
	none := func(string) bool { return false }

	got := Options{Lang: DefaultLang}.withContext(ctx, none)
	if got.Lang != "fr" || !got.Slow || got.TLD != "ca" || got.Catalog != "langs.yaml" {
		t.Errorf("withContext = %+v", got)
	}

	flags := func(name string) bool { return name == "lang" }
	got = Options{Lang: "de", TLD: "co.uk", Catalog: "mine.json"}.withContext(ctx, flags)
	if got.Lang != "de" || got.TLD != "co.uk" || got.Catalog != "mine.json" {
		t.Errorf("flags lost to context: %+v", got)
	}

	got = Options{Lang: DefaultLang}.withContext(&cli.Context{}, none)
	if got.Lang != DefaultLang || got.TLD != gtts.DefaultTLD {
		t.Errorf("defaults = %+v", got)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{errors.New("boom"), ExitError},
		{usageErrorf("TEXT", "missing"), ExitUsage},
		{fmt.Errorf("wrapped: %w", &UsageError{Msg: "bad"}), ExitUsage},
		{&gtts.Error{HTTPStatus: 403, TLD: "com"}, ExitError},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestUsageErrorMessage(t *testing.T) {
	if got := usageErrorf("-l/--lang", "bad %s", "tag").Error(); got != "invalid value for -l/--lang: bad tag" {
		t.Errorf("Error() = %q", got)
	}
	if got := (&UsageError{Msg: "plain"}).Error(); got != "plain" {
		t.Errorf("Error() = %q", got)
	}
}
