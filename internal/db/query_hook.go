package db

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-pg/pg/v10"
)

// DefaultSlowQuery is the duration above which a query is logged as slow.
const DefaultSlowQuery = 200 * time.Millisecond

// QueryHook logs every SQL statement at debug level. Failed statements are logged as
// errors and statements slower than the threshold as warnings.
type QueryHook struct {
	logger    *slog.Logger
	slowQuery time.Duration
}

func NewQueryHook(logger *slog.Logger) *QueryHook {
	return &QueryHook{
		logger:    logger,
		slowQuery: DefaultSlowQuery,
	}
}

// WithSlowQuery sets the slow query threshold; d <= 0 disables slow query warnings.
func (h *QueryHook) WithSlowQuery(d time.Duration) *QueryHook {
	h.slowQuery = d
	return h
}

func (h *QueryHook) BeforeQuery(ctx context.Context, _ *pg.QueryEvent) (context.Context, error) {
	return ctx, nil
}

func (h *QueryHook) AfterQuery(ctx context.Context, event *pg.QueryEvent) error {
	duration := time.Since(event.StartTime)

	level := slog.LevelDebug
	switch {
	case event.Err != nil && !errors.Is(event.Err, pg.ErrNoRows):
		level = slog.LevelError
	case h.slowQuery > 0 && duration > h.slowQuery:
		level = slog.LevelWarn
	}
	if !h.logger.Enabled(ctx, level) {
		return nil
	}

	query, err := event.FormattedQuery()
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to format query", "error", err)
		return nil
	}

	attrs := []any{"query", string(query), "duration", duration}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err)
	}
	if event.Result != nil {
		attrs = append(attrs, "rows", event.Result.RowsReturned())
	}
	h.logger.Log(ctx, level, "SQL query executed", attrs...)

	return nil
}
