// Package main provides the gtts command line tool.
//
// Usage:
//
//	gtts [flags] [TEXT]
//
// The spoken MP3 is written to standard output, or to the file named by
// -o/--output. Run 'gtts --help' for the full flag list.
//
// Configuration:
//
//	Defaults are read from the current context in ~/.gtts/config.yaml and
//	from GTTS_* environment variables.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/1930s/gTTS/cmd/gtts/commands"
	"github.com/1930s/gTTS/pkg/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Execute(ctx)
	stop()

	if err != nil {
		p := cli.NewPrinter(os.Stderr)
		p.Error("%v", err)
		if commands.IsUsageError(err) {
			p.Hint("Try 'gtts --help' for help.")
		}
	}
	os.Exit(commands.ExitCode(err))
}
