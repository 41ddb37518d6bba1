package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// OperationLogger provides structured logging for ledger operations
type OperationLogger struct {
	logger *slog.Logger
}

// NewOperationLogger creates a new operation logger
func NewOperationLogger(logger *slog.Logger) OperationLoggerInterface {
	return &OperationLogger{
		logger: logger,
	}
}

// LogTransactionRecorded logs a newly recorded transaction
func (ol *OperationLogger) LogTransactionRecorded(ctx context.Context, id uuid.UUID, kind, category string, amount float64) {
	ol.logger.InfoContext(ctx, "transaction recorded",
		slog.String("event_type", "transaction_recorded"),
		slog.String("transaction_id", id.String()),
		slog.String("kind", kind),
		slog.String("category", category),
		slog.Float64("amount", amount),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogTransactionUpdated logs a transaction replacement
func (ol *OperationLogger) LogTransactionUpdated(ctx context.Context, id uuid.UUID) {
	ol.logger.InfoContext(ctx, "transaction updated",
		slog.String("event_type", "transaction_updated"),
		slog.String("transaction_id", id.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogTransactionDeleted logs a transaction removal
func (ol *OperationLogger) LogTransactionDeleted(ctx context.Context, id uuid.UUID) {
	ol.logger.InfoContext(ctx, "transaction deleted",
		slog.String("event_type", "transaction_deleted"),
		slog.String("transaction_id", id.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogBudgetCreated logs budget creation
func (ol *OperationLogger) LogBudgetCreated(ctx context.Context, id uuid.UUID, category, period string, amount float64) {
	ol.logger.InfoContext(ctx, "budget created",
		slog.String("event_type", "budget_created"),
		slog.String("budget_id", id.String()),
		slog.String("category", category),
		slog.String("period", period),
		slog.Float64("amount", amount),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogBudgetUpdated logs budget replacement
func (ol *OperationLogger) LogBudgetUpdated(ctx context.Context, id uuid.UUID) {
	ol.logger.InfoContext(ctx, "budget updated",
		slog.String("event_type", "budget_updated"),
		slog.String("budget_id", id.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogBudgetDeleted logs budget removal
func (ol *OperationLogger) LogBudgetDeleted(ctx context.Context, id uuid.UUID) {
	ol.logger.InfoContext(ctx, "budget deleted",
		slog.String("event_type", "budget_deleted"),
		slog.String("budget_id", id.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogSpentRecomputed logs a full spent-figure refresh
func (ol *OperationLogger) LogSpentRecomputed(ctx context.Context, budgetCount int, durationMs int64) {
	ol.logger.InfoContext(ctx, "budget spent figures recomputed",
		slog.String("event_type", "spent_recomputed"),
		slog.Int("budget_count", budgetCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogValidationFailure logs validation failures
func (ol *OperationLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	ol.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func getTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value("trace_id").(string); ok {
		return traceID
	}
	return ""
}
