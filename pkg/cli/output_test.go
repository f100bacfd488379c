package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinter_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	if err := p.Entry("en", "English"); err != nil {
		t.Fatal(err)
	}
	p.Error("bad %s", "thing")
	p.Hint("try %q", "--help")

	want := "  en: English\nError: bad thing\ntry \"--help\"\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	NewLogger(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug line logged without debug: %q", buf.String())
	}

	NewLogger(&buf, true).Debug("shown", "part", 1)
	if !strings.Contains(buf.String(), "msg=shown") || !strings.Contains(buf.String(), "part=1") {
		t.Errorf("debug output = %q", buf.String())
	}
}
