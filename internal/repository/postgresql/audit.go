package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/talenthq/payroll-backend-go/internal/domain/audit"
	"github.com/talenthq/payroll-backend-go/internal/pkg/database"
)

type auditRepository struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.Repository {
	return &auditRepository{db: db}
}

// Create always writes against the pool, never a caller's transaction: an
// audit row must not be rolled back with the business operation it describes,
// and a failed write must not poison that transaction either.
func (r *auditRepository) Create(ctx context.Context, event audit.Event) error {
	payloadJSON, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal audit payload: %w", err)
	}

	query := `
		INSERT INTO audit_events (actor_id, company_id, action, resource, resource_id, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = r.db.Exec(ctx, query,
		event.ActorID, event.CompanyID, event.Action, event.Resource, event.ResourceID, payloadJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit event: %w", err)
	}

	return nil
}
