package logging

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/danielpatrickdp/ending-sim/internal/store"
)

// #region decision-entry
// DecisionEntry is a single row in the decision_log table: one step of a
// session and what it decided.
type DecisionEntry struct {
	SessionID string
	Step      string // "prologue" | "route_select" | "mode_check" | "resolve"
	Decision  string
	Reason    string
	CreatedAt time.Time
}

// #endregion decision-entry

// #region log-decision
// LogDecision writes a decision entry to the decision_log table. ex is the
// archive database or an open archive transaction.
func LogDecision(ctx context.Context, ex sqlx.ExecerContext, entry DecisionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := ex.ExecContext(ctx,
		`INSERT INTO decision_log (session_id, step, decision, reason, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.SessionID,
		entry.Step,
		entry.Decision,
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.UTC().Format(store.TimeLayout),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// #endregion log-decision

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
