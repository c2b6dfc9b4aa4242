package textio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"

	"mpags/internal/failure"
	"mpags/internal/logging"
)

const lockRetryDelay = 50 * time.Millisecond

// WriteOptions tunes how named output files are written.
type WriteOptions struct {
	// Lock holds <path>.lock for the duration of the write.
	Lock   bool
	Logger *slog.Logger
}

// WriteText writes text followed by a newline to path, or to stdout when path
// is empty.
func WriteText(ctx context.Context, path string, stdout io.Writer, text string, opts WriteOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	if path == "" {
		if _, err := io.WriteString(stdout, text+"\n"); err != nil {
			return failure.Wrap(failure.ErrIO, "", "", "failed to write output", err)
		}
		return nil
	}

	if err := checkWritableDir(path); err != nil {
		return err
	}

	if opts.Lock {
		lock := flock.New(path + ".lock")
		locked, err := lock.TryLockContext(ctx, lockRetryDelay)
		if err != nil || !locked {
			return failure.Wrap(failure.ErrIO, "", "", fmt.Sprintf("failed to lock output file '%s'", path), err)
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				logging.WarnWithContext(logger, "failed to release output lock", "output_unlock_failed",
					logging.String("path", path+".lock"),
					logging.Error(err),
					logging.String(logging.FieldErrorHint, "remove the stale lock file if no run is active"),
				)
			}
		}()
	}

	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return failure.Wrap(failure.ErrIO, "", "", fmt.Sprintf("failed to write output file '%s'", path), err)
	}
	logger.Debug("output written", logging.String("path", path), logging.Int("runes", len([]rune(text))))
	return nil
}

func checkWritableDir(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return failure.Wrap(failure.ErrIO, "", "", fmt.Sprintf("failed to create output file '%s'", path), err)
	}
	if !info.IsDir() {
		return failure.New(failure.ErrIO, fmt.Sprintf("failed to create output file '%s': %s is not a directory", path, dir))
	}
	if err := unix.Access(dir, unix.W_OK|unix.X_OK); err != nil {
		return failure.Wrap(failure.ErrIO, "", "", fmt.Sprintf("failed to create output file '%s': directory not writable", path), err)
	}
	return nil
}
