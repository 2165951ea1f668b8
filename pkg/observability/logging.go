package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/rewind/pkg/history"
)

// LogHooks writes one structured record per command.
// Guarded moves are logged at Warn, everything else at Info.
func LogHooks(logger *slog.Logger) history.LifecycleHooks {
	attrs := func(e *history.Event) []any {
		return []any{
			"document", e.Document,
			"kind", e.Kind,
			"outcome", e.Outcome,
			"past", e.PastLen,
			"future", e.FutureLen,
		}
	}
	return history.LifecycleHooks{
		OnCommand: func(ctx context.Context, e *history.Event) {
			if e.Outcome == history.OutcomeGuarded {
				return
			}
			logger.InfoContext(ctx, "history_command", attrs(e)...)
		},
		OnGuarded: func(ctx context.Context, e *history.Event) {
			logger.WarnContext(ctx, "history_guarded", attrs(e)...)
		},
	}
}
