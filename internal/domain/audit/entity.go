package audit

import (
	"context"
	"time"
)

// Action names for recorded events.
const (
	ActionRunPayroll       = "RUN_PAYROLL"
	ActionCreateOffer      = "CREATE_OFFER"
	ActionGenerateContract = "GENERATE_CONTRACT"
	ActionUpdateUserRole   = "UPDATE_USER_ROLE"
)

// Payload is the structured event payload; exactly the fields relevant to the
// action are set. It replaces the source's untyped map.
type Payload struct {
	PeriodMonth   int    `json:"period_month,omitempty"`
	PeriodYear    int    `json:"period_year,omitempty"`
	EmployeeCount int    `json:"employee_count,omitempty"`
	OfferID       string `json:"offer_id,omitempty"`
	TargetUserID  string `json:"target_user_id,omitempty"`
	NewRole       string `json:"new_role,omitempty"`
}

type Event struct {
	ID         string
	ActorID    string
	CompanyID  string
	Action     string
	Resource   string
	ResourceID string
	Payload    Payload
	CreatedAt  time.Time
}

// Sink records audit events best-effort: implementations must swallow and log
// failures, never propagate them to the caller.
type Sink interface {
	Record(ctx context.Context, event Event)
}

// Repository is the persistence contract behind the postgres-backed sink.
type Repository interface {
	Create(ctx context.Context, event Event) error
}
