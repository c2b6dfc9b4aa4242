package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"mpags/internal/cipher"
	"mpags/internal/logging"
)

// DefaultWorkers is the number of chunks, and goroutines, per run.
const DefaultWorkers = 4

// Executor applies cipher sequences to text.
type Executor struct {
	Workers        int
	LegacyChunking bool
	Logger         *slog.Logger
}

// NewExecutor returns an executor with the given worker count; values below 1
// select DefaultWorkers.
func NewExecutor(workers int, legacyChunking bool, logger *slog.Logger) *Executor {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Executor{Workers: workers, LegacyChunking: legacyChunking, Logger: logger}
}

// Order returns the execution order for mode without touching transforms.
func Order(transforms []cipher.Cipher, mode cipher.Mode) []cipher.Cipher {
	ordered := make([]cipher.Cipher, len(transforms))
	if mode != cipher.Decrypt {
		copy(ordered, transforms)
		return ordered
	}
	for i, t := range transforms {
		ordered[len(transforms)-1-i] = t
	}
	return ordered
}

// Run applies transforms to text in the order dictated by mode.
func (e *Executor) Run(ctx context.Context, transforms []cipher.Cipher, mode cipher.Mode, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	logger := logging.WithContext(ctx, e.logger())
	ordered := Order(transforms, mode)

	aligned := !e.LegacyChunking
	workers := e.ChunkCount(ordered)
	if workers != e.requestedWorkers() {
		logger.Debug("length-changing stage present; running as a single chunk",
			logging.String(logging.FieldDecisionType, "chunking"),
			logging.Int("requested_workers", e.requestedWorkers()),
		)
	}

	chunks := Partition(text, workers)
	results := make([]string, len(chunks))
	started := time.Now()

	// Plain Group: a failing worker does not cancel the others.
	var g errgroup.Group
	for _, chunk := range chunks {
		g.Go(func() error {
			out, err := applyStages(ordered, mode, chunk, aligned)
			if err != nil {
				return fmt.Errorf("chunk %d: %w", chunk.Index, err)
			}
			results[chunk.Index] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Debug("pipeline run failed",
			logging.String("mode", mode.String()),
			logging.Error(err),
		)
		return "", err
	}

	logger.Debug("pipeline run complete",
		logging.String("mode", mode.String()),
		logging.Int("stages", len(ordered)),
		logging.Int("workers", workers),
		logging.Bool("legacy_chunking", !aligned),
		logging.Duration("elapsed", time.Since(started)),
	)
	return strings.Join(results, ""), nil
}

// ChunkCount reports how many chunks Run splits text into for transforms.
// Aligned runs containing a length-changing stage use a single chunk.
func (e *Executor) ChunkCount(transforms []cipher.Cipher) int {
	workers := e.requestedWorkers()
	if !e.LegacyChunking && workers > 1 && !preservesLength(transforms) {
		return 1
	}
	return workers
}

func (e *Executor) requestedWorkers() int {
	if e.Workers < 1 {
		return DefaultWorkers
	}
	return e.Workers
}

func (e *Executor) logger() *slog.Logger {
	if e.Logger == nil {
		return logging.NewNop()
	}
	return e.Logger
}

func applyStages(stages []cipher.Cipher, mode cipher.Mode, chunk Chunk, aligned bool) (string, error) {
	text := chunk.Text
	for i, stage := range stages {
		var err error
		if positional, ok := stage.(cipher.Positional); ok && aligned {
			text, err = positional.ApplyAt(text, mode, chunk.Offset)
		} else {
			text, err = stage.Apply(text, mode)
		}
		if err != nil {
			return "", fmt.Errorf("stage %d: %w", i+1, err)
		}
	}
	return text, nil
}

func preservesLength(stages []cipher.Cipher) bool {
	for _, stage := range stages {
		lp, ok := stage.(cipher.LengthPreserver)
		if !ok || !lp.PreservesLength() {
			return false
		}
	}
	return true
}
