package offer

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/talenthq/payroll-backend-go/internal/domain/calculation"
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusExpired  Status = "expired"
)

// Offer carries a compensation preview computed at creation time, later
// referenced by contract generation.
type Offer struct {
	ID             string
	CompanyID      string
	CandidateName  string
	CandidateEmail string
	Position       string
	CountryCode    string
	GrossSalary    decimal.Decimal
	Currency       string
	Status         Status
	ValidUntil     time.Time
	Compensation   CompensationPreview
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CompensationPreview is the calculation snapshot attached to the offer.
type CompensationPreview struct {
	NetSalary          decimal.Decimal     `json:"net_salary"`
	TotalDeductions    decimal.Decimal     `json:"total_deductions"`
	TotalContributions decimal.Decimal     `json:"total_contributions"`
	Details            calculation.Details `json:"details"`
}

// Contract is generated from an accepted offer, one per offer.
type Contract struct {
	ID           string
	CompanyID    string
	OfferID      string
	EmployeeName string
	Position     string
	CountryCode  string
	GrossSalary  decimal.Decimal
	Currency     string
	Compensation CompensationPreview
	SignedAt     *time.Time
	CreatedAt    time.Time
}
