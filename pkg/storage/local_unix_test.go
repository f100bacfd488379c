//go:build unix

package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func TestWriteToNamedPipe(t *testing.T) {
	s := newTestLocal(t)
	fifo := filepath.Join(s.root, "audio.fifo")
	if err := syscall.Mkfifo(fifo, 0o600); err != nil {
		t.Skipf("mkfifo: %v", err)
	}

	got := make(chan string, 1)
	go func() {
		f, err := os.Open(fifo)
		if err != nil {
			got <- "open: " + err.Error()
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		got <- string(data)
	}()

	w, err := s.Write(context.Background(), fifo)
	if err != nil {
		t.Fatal(err)
	}
	io.WriteString(w, "ID3 audio")
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	if data := <-got; data != "ID3 audio" {
		t.Fatalf("reader got %q", data)
	}
	info, err := os.Lstat(fifo)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&os.ModeNamedPipe == 0 {
		t.Fatalf("fifo replaced, mode = %v", info.Mode())
	}
}

func TestWriteToDevNull(t *testing.T) {
	s := newTestLocal(t)

	w, err := s.Write(context.Background(), os.DevNull)
	if err != nil {
		t.Fatal(err)
	}
	io.WriteString(w, "discarded")
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	info, err := os.Lstat(os.DevNull)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&os.ModeCharDevice == 0 {
		t.Fatalf("%s is no longer a device, mode = %v", os.DevNull, info.Mode())
	}
}
