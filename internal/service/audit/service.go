package audit

import (
	"context"
	"log/slog"

	"github.com/talenthq/payroll-backend-go/internal/domain/audit"
)

type postgresSink struct {
	repo audit.Repository
}

// NewSink returns a best-effort audit sink backed by the repository. Write
// failures are logged and swallowed so business operations never fail on
// audit persistence.
func NewSink(repo audit.Repository) audit.Sink {
	return &postgresSink{repo: repo}
}

func (s *postgresSink) Record(ctx context.Context, event audit.Event) {
	if err := s.repo.Create(ctx, event); err != nil {
		slog.ErrorContext(ctx, "failed to record audit event",
			"action", event.Action,
			"resource", event.Resource,
			"resource_id", event.ResourceID,
			"error", err,
		)
	}
}
