package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Employee struct {
	ID          string
	CompanyID   string
	UserID      *string
	FullName    string
	Email       string
	Position    string
	CountryCode string
	BaseSalary  *decimal.Decimal
	Status      Status
	HireDate    time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
