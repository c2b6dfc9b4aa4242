package history

import (
	"database/sql"
	"fmt"
	"time"
)

// timeLayout is fixed-width so started_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const runColumns = `id, started_at, mode, ciphers, workers, legacy_chunking,
    input_runes, output_runes, duration_ns, status, error_message`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		run       Run
		startedAt string
		duration  int64
		status    string
		errMsg    sql.NullString
	)
	if err := row.Scan(
		&run.ID,
		&startedAt,
		&run.Mode,
		&run.Ciphers,
		&run.Workers,
		&run.LegacyChunking,
		&run.InputRunes,
		&run.OutputRunes,
		&duration,
		&status,
		&errMsg,
	); err != nil {
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	ts, err := time.Parse(timeLayout, startedAt)
	if err != nil {
		return Run{}, fmt.Errorf("parse started_at %q: %w", startedAt, err)
	}
	run.StartedAt = ts
	run.Duration = time.Duration(duration)
	run.Status = Status(status)
	run.Error = errMsg.String
	return run, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
