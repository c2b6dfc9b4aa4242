package textio

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"mpags/internal/failure"
	"mpags/internal/logging"
)

// OpenInput returns a reader for path, or for stdin when path is empty. The
// caller closes the returned reader.
func OpenInput(path string, stdin io.Reader, logger *slog.Logger) (io.ReadCloser, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if path == "" {
		if isTerminal(stdin) {
			logger.Info("reading from terminal; finish input with Ctrl-D",
				logging.String(logging.FieldEventType, "stdin_interactive"),
			)
		}
		return io.NopCloser(stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, failure.Wrap(failure.ErrIO, "", "", fmt.Sprintf("failed to open input file '%s'", path), err)
	}
	logger.Debug("input opened", logging.String("path", path))
	return file, nil
}

func isTerminal(r any) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
