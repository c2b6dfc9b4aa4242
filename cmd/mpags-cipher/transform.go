package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"mpags/internal/cipher"
	"mpags/internal/cli"
	"mpags/internal/config"
	"mpags/internal/history"
	"mpags/internal/logging"
	"mpags/internal/pipeline"
	"mpags/internal/textio"
	"mpags/internal/textnorm"
)

type transformResult struct {
	inputRunes  int
	outputRunes int
	chunks      int
}

func runTransform(cmd *cobra.Command, ctx *commandContext, args []string) error {
	tokens := append([]string{programName}, args...)
	settings, err := cli.Parse(tokens)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if settings.HelpRequested {
		cli.WriteUsage(out, programName)
		return nil
	}
	if settings.VersionRequested {
		fmt.Fprintln(out, cli.Version)
		return nil
	}

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	runID := history.NewRunID()
	runCtx := logging.WithRunID(cmd.Context(), runID)
	logger = logging.WithContext(runCtx, logging.NewComponentLogger(logger, "transform"))
	specs := settings.Specs()

	started := time.Now()
	result, runErr := transform(runCtx, cmd, cfg, logger, settings, specs)
	elapsed := time.Since(started)

	if runErr != nil {
		logger.Debug("run failed", logging.Error(runErr))
	} else {
		logger.Info("run complete",
			logging.String("mode", settings.Mode.String()),
			logging.String("ciphers", cipher.FormatSpecs(specs)),
			logging.Int("input_runes", result.inputRunes),
			logging.Int("output_runes", result.outputRunes),
			logging.Int("chunks", result.chunks),
			logging.Duration("elapsed", elapsed),
		)
	}

	if cfg.History.Enabled {
		run := history.Run{
			ID:             runID,
			StartedAt:      started,
			Mode:           settings.Mode.String(),
			Ciphers:        cipher.FormatSpecs(specs),
			Workers:        result.chunks,
			LegacyChunking: cfg.Pipeline.LegacyChunking,
			InputRunes:     result.inputRunes,
			OutputRunes:    result.outputRunes,
			Duration:       elapsed,
			Status:         history.StatusSucceeded,
		}
		if runErr != nil {
			run.Status = history.StatusFailed
			run.Error = runErr.Error()
		}
		recordRun(runCtx, ctx, logger, run)
	}
	return runErr
}

func transform(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, settings cli.Settings, specs []cipher.Spec) (transformResult, error) {
	var result transformResult

	ciphers, err := cipher.Build(specs)
	if err != nil {
		return result, err
	}

	input, err := textio.OpenInput(settings.InputFile, cmd.InOrStdin(), logger)
	if err != nil {
		return result, err
	}
	defer input.Close()
	text, err := textnorm.Normalize(input)
	if err != nil {
		return result, err
	}
	result.inputRunes = utf8.RuneCountInString(text)

	executor := pipeline.NewExecutor(cfg.Pipeline.Workers, cfg.Pipeline.LegacyChunking, logger)
	result.chunks = executor.ChunkCount(ciphers)
	output, err := executor.Run(ctx, ciphers, settings.Mode, text)
	if err != nil {
		return result, err
	}
	result.outputRunes = utf8.RuneCountInString(output)

	return result, textio.WriteText(ctx, settings.OutputFile, cmd.OutOrStdout(), output, textio.WriteOptions{
		Lock:   cfg.Output.Lock,
		Logger: logger,
	})
}

func recordRun(ctx context.Context, cc *commandContext, logger *slog.Logger, run history.Run) {
	store, err := cc.openHistory()
	if err != nil {
		logging.WarnWithContext(logger, "history unavailable", "history_open_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check history.path in the config"),
		)
		return
	}
	defer store.Close()

	// Interrupted runs are still recorded.
	if err := store.Record(context.WithoutCancel(ctx), run); err != nil {
		logging.WarnWithContext(logger, "failed to record run", "history_record_failed",
			logging.Error(err),
			logging.String("path", store.Path()),
		)
	}
}
