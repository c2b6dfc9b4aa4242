package textio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"mpags/internal/failure"
)

func TestOpenInputUsesStdinWhenPathEmpty(t *testing.T) {
	rc, err := OpenInput("", strings.NewReader("abc"), nil)
	if err != nil {
		t.Fatalf("OpenInput returned error: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "abc" {
		t.Fatalf("unexpected stdin content %q", data)
	}
}

func TestOpenInputReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("file text"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	rc, err := OpenInput(path, nil, nil)
	if err != nil {
		t.Fatalf("OpenInput returned error: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "file text" {
		t.Fatalf("unexpected file content %q", data)
	}
}

func TestOpenInputMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")
	_, err := OpenInput(path, nil, nil)
	if !errors.Is(err, failure.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
	if !strings.Contains(err.Error(), "absent.txt") {
		t.Fatalf("error should name the file: %v", err)
	}
}

func TestWriteTextStdout(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(context.Background(), "", &buf, "MJQQT", WriteOptions{}); err != nil {
		t.Fatalf("WriteText returned error: %v", err)
	}
	if buf.String() != "MJQQT\n" {
		t.Fatalf("unexpected stdout %q", buf.String())
	}
}

func TestWriteTextFileWithLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteText(context.Background(), path, nil, "ABC", WriteOptions{Lock: true}); err != nil {
		t.Fatalf("WriteText returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "ABC\n" {
		t.Fatalf("unexpected file content %q", data)
	}

	// The lock must have been released.
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil || !ok {
		t.Fatalf("expected lock to be free, ok=%v err=%v", ok, err)
	}
	_ = lock.Unlock()
}

func TestWriteTextHonoursCancelledLockWait(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	held := flock.New(path + ".lock")
	if ok, err := held.TryLock(); err != nil || !ok {
		t.Fatalf("acquire lock: ok=%v err=%v", ok, err)
	}
	defer held.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := WriteText(ctx, path, nil, "ABC", WriteOptions{Lock: true})
	if !errors.Is(err, failure.ErrIO) {
		t.Fatalf("expected ErrIO while lock is held, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("output must not be written without the lock: %v", statErr)
	}
}

func TestWriteTextMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")
	err := WriteText(context.Background(), path, nil, "ABC", WriteOptions{})
	if !errors.Is(err, failure.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}
