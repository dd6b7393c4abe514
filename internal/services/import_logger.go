package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type ImportLogger struct {
	logger *slog.Logger
}

func NewImportLogger(logger *slog.Logger) ImportLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportLogger{
		logger: logger,
	}
}

func (il *ImportLogger) LogImportStarted(ctx context.Context, batchID, accountID uuid.UUID, fileName, schema string, rows int) {
	il.logger.InfoContext(ctx, "import started",
		slog.String("event_type", "import_started"),
		slog.String("batch_id", batchID.String()),
		slog.String("account_id", accountID.String()),
		slog.String("file_name", fileName),
		slog.String("schema", schema),
		slog.Int("rows", rows),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *ImportLogger) LogRowSkipped(ctx context.Context, batchID uuid.UUID, row int, description string, projected bool) {
	il.logger.InfoContext(ctx, "duplicate row skipped",
		slog.String("event_type", "row_skipped"),
		slog.String("batch_id", batchID.String()),
		slog.Int("row", row),
		slog.String("description", description),
		slog.Bool("projected", projected),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *ImportLogger) LogRowFailed(ctx context.Context, batchID uuid.UUID, row int, errorMsg string) {
	il.logger.WarnContext(ctx, "row import failed",
		slog.String("event_type", "row_failed"),
		slog.String("batch_id", batchID.String()),
		slog.Int("row", row),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *ImportLogger) LogTransferFlagged(ctx context.Context, row int, description, classification string) {
	il.logger.InfoContext(ctx, "row flagged as internal transfer",
		slog.String("event_type", "transfer_flagged"),
		slog.Int("row", row),
		slog.String("description", description),
		slog.String("classification", classification),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *ImportLogger) LogPossibleDuplicate(ctx context.Context, batchID uuid.UUID, row int, description, existingDescription string, distance int) {
	il.logger.WarnContext(ctx, "possible duplicate imported",
		slog.String("event_type", "possible_duplicate"),
		slog.String("batch_id", batchID.String()),
		slog.Int("row", row),
		slog.String("description", description),
		slog.String("existing_description", existingDescription),
		slog.Int("distance", distance),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *ImportLogger) LogImportCompleted(ctx context.Context, batchID uuid.UUID, created, skipped, projected, failed int, durationMs int64) {
	il.logger.InfoContext(ctx, "import completed",
		slog.String("event_type", "import_completed"),
		slog.String("batch_id", batchID.String()),
		slog.Int("created", created),
		slog.Int("skipped", skipped),
		slog.Int("projected", projected),
		slog.Int("failed", failed),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *ImportLogger) LogImportFailed(ctx context.Context, batchID uuid.UUID, errorMsg string, durationMs int64) {
	il.logger.ErrorContext(ctx, "import failed",
		slog.String("event_type", "import_failed"),
		slog.String("batch_id", batchID.String()),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

type correlationIDKey struct{}

// WithCorrelationID returns a context whose import log events carry id
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationID returns the id stored by WithCorrelationID, or ""
func CorrelationID(ctx context.Context) string {
	return getCorrelationID(ctx)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return correlationID
	}

	return ""
}
