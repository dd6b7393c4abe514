package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedImportLogger() (ImportLoggerInterface, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewImportLogger(slog.New(handler)), &buf
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	buf.Reset()
	return entry
}

func TestImportLogger_Events(t *testing.T) {
	logger, buf := newBufferedImportLogger()
	ctx := WithCorrelationID(context.Background(), "corr-123")
	batchID := uuid.New()
	accountID := uuid.New()

	logger.LogImportStarted(ctx, batchID, accountID, "card.csv", "title_amount", 12)
	entry := decodeLogLine(t, buf)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "import_started", entry["event_type"])
	assert.Equal(t, batchID.String(), entry["batch_id"])
	assert.Equal(t, accountID.String(), entry["account_id"])
	assert.Equal(t, "card.csv", entry["file_name"])
	assert.Equal(t, float64(12), entry["rows"])
	assert.Equal(t, "corr-123", entry["correlation_id"])

	logger.LogRowSkipped(ctx, batchID, 4, "Bakery", true)
	entry = decodeLogLine(t, buf)
	assert.Equal(t, "row_skipped", entry["event_type"])
	assert.Equal(t, true, entry["projected"])

	logger.LogRowFailed(ctx, batchID, 5, "disk full")
	entry = decodeLogLine(t, buf)
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "disk full", entry["error"])

	logger.LogPossibleDuplicate(ctx, batchID, 6, "Uber *Trip", "UBER TRIP", 2)
	entry = decodeLogLine(t, buf)
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "possible_duplicate", entry["event_type"])
	assert.Equal(t, float64(2), entry["distance"])

	logger.LogImportCompleted(ctx, batchID, 10, 1, 3, 0, 250)
	entry = decodeLogLine(t, buf)
	assert.Equal(t, "import_completed", entry["event_type"])
	assert.Equal(t, float64(10), entry["created"])
	assert.Equal(t, float64(3), entry["projected"])
	assert.Equal(t, float64(250), entry["duration_ms"])

	logger.LogImportFailed(ctx, batchID, "context canceled", 10)
	entry = decodeLogLine(t, buf)
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "import_failed", entry["event_type"])
}

func TestImportLogger_TransferFlagged(t *testing.T) {
	logger, buf := newBufferedImportLogger()

	logger.LogTransferFlagged(context.Background(), 3, "Pagamento de fatura", "flagged_and_locked")

	entry := decodeLogLine(t, buf)
	assert.Equal(t, "transfer_flagged", entry["event_type"])
	assert.Equal(t, "flagged_and_locked", entry["classification"])
	assert.Equal(t, "", entry["correlation_id"])
}

func TestGetCorrelationID(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{"correlation id", WithCorrelationID(context.Background(), "c-1"), "c-1"},
		{"other key types are ignored", context.WithValue(context.Background(), struct{ name string }{"correlation_id"}, "r-1"), ""},
		{"nothing set", context.Background(), ""},
		{"nil context", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getCorrelationID(tt.ctx))
		})
	}
}

func TestNewImportLogger_NilFallsBackToDefault(t *testing.T) {
	logger := NewImportLogger(nil)

	require.NotNil(t, logger)
	assert.NotPanics(t, func() {
		logger.LogRowFailed(context.Background(), uuid.New(), 1, "boom")
	})
}
